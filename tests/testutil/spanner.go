package testutil

import (
	"context"
	"fmt"
	"os"
	"testing"

	"cloud.google.com/go/spanner"
	"github.com/stretchr/testify/require"
)

// SetupSpannerTest creates a test Spanner client against the emulator and
// returns a cleanup function.
func SetupSpannerTest(t *testing.T) (*spanner.Client, func()) {
	t.Helper()

	ctx := context.Background()

	client, err := spanner.NewClient(ctx, GetTestSpannerDB())
	require.NoError(t, err, "failed to create Spanner client")

	CleanDatabase(t, client)

	cleanup := func() {
		CleanDatabase(t, client)
		client.Close()
	}

	return client, cleanup
}

// GetTestSpannerDB returns the test Spanner database string.
func GetTestSpannerDB() string {
	if db := os.Getenv("TEST_SPANNER_DATABASE"); db != "" {
		return db
	}
	return "projects/test-project/instances/test-instance/databases/catalog-lifecycle-test"
}

// CleanDatabase empties every table for test isolation. Children go
// first so the foreign key from variants to products never trips.
func CleanDatabase(t *testing.T, client *spanner.Client) {
	t.Helper()

	ctx := context.Background()
	mutations := []*spanner.Mutation{
		spanner.Delete("outbox_events", spanner.AllKeys()),
		spanner.Delete("inventory_log", spanner.AllKeys()),
		spanner.Delete("order_items", spanner.AllKeys()),
		spanner.Delete("cart_items", spanner.AllKeys()),
		spanner.Delete("product_variants", spanner.AllKeys()),
		spanner.Delete("products", spanner.AllKeys()),
	}

	_, err := client.Apply(ctx, mutations)
	require.NoError(t, err, "failed to clean database")
}

// AssertRowCount asserts the number of rows in a table.
func AssertRowCount(t *testing.T, client *spanner.Client, table string, expectedCount int) {
	t.Helper()

	ctx := context.Background()
	stmt := spanner.Statement{
		SQL: fmt.Sprintf("SELECT COUNT(*) FROM %s", table),
	}

	iter := client.Single().Query(ctx, stmt)
	defer iter.Stop()

	row, err := iter.Next()
	require.NoError(t, err, "failed to query row count")

	var count int64
	require.NoError(t, row.Columns(&count), "failed to parse count")
	require.Equal(t, int64(expectedCount), count, "unexpected row count in table %s", table)
}
