//go:build integration

package integration

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/catalog-lifecycle/internal/app/catalog/repo"
	"github.com/light-bringer/catalog-lifecycle/tests/testutil"
)

func TestReferenceCounter_CountsSnapshot(t *testing.T) {
	client, cleanup := testutil.SetupSpannerTest(t)
	defer cleanup()

	ctx := context.Background()
	counter := repo.NewReferenceCounter(client)

	productID := testutil.CreateTestProduct(t, client, "Trail Shoe")
	variantID := testutil.CreateTestVariant(t, client, productID, "SKU-CNT-1")
	siblingID := testutil.CreateTestVariant(t, client, productID, "SKU-CNT-2")
	testutil.CreateHiddenTestVariant(t, client, productID, "SKU-CNT-3", time.Now().UTC())

	testutil.CreateTestOrderItem(t, client, variantID)
	testutil.CreateTestOrderItem(t, client, variantID)
	testutil.CreateTestCartItem(t, client, variantID)
	testutil.CreateTestInventoryEntry(t, client, variantID, 10, 10)
	testutil.CreateTestInventoryEntry(t, client, variantID, -3, 7)
	testutil.CreateTestInventoryEntry(t, client, variantID, 5, 12)

	counts, err := counter.CountsSnapshot(ctx, variantID, productID)
	require.NoError(t, err)

	assert.Equal(t, int64(2), counts.OrderItems)
	assert.Equal(t, int64(1), counts.CartItems)
	assert.Equal(t, int64(3), counts.InventoryEntries)
	// The hidden sibling does not count as active.
	assert.Equal(t, int64(1), counts.OtherActiveVariants)

	// The sibling has no references and one active sibling of its own.
	siblingCounts, err := counter.CountsSnapshot(ctx, siblingID, productID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), siblingCounts.OrderItems)
	assert.Equal(t, int64(0), siblingCounts.CartItems)
	assert.Equal(t, int64(0), siblingCounts.InventoryEntries)
	assert.Equal(t, int64(1), siblingCounts.OtherActiveVariants)
}

func TestReferenceCounter_IgnoresOtherVariantsReferences(t *testing.T) {
	client, cleanup := testutil.SetupSpannerTest(t)
	defer cleanup()

	ctx := context.Background()
	counter := repo.NewReferenceCounter(client)

	productID := testutil.CreateTestProduct(t, client, "Trail Shoe")
	variantID := testutil.CreateTestVariant(t, client, productID, "SKU-ISO-1")
	otherID := testutil.CreateTestVariant(t, client, productID, "SKU-ISO-2")

	testutil.CreateTestOrderItem(t, client, otherID)
	testutil.CreateTestCartItem(t, client, otherID)
	testutil.CreateTestInventoryEntry(t, client, otherID, 4, 4)

	counts, err := counter.CountsSnapshot(ctx, variantID, productID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), counts.OrderItems)
	assert.Equal(t, int64(0), counts.CartItems)
	assert.Equal(t, int64(0), counts.InventoryEntries)
	assert.Equal(t, int64(1), counts.OtherActiveVariants)
}
