//go:build integration

package integration

import (
	"context"
	"testing"
	"time"

	"cloud.google.com/go/spanner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/catalog-lifecycle/internal/app/catalog/domain"
	"github.com/light-bringer/catalog-lifecycle/internal/app/catalog/repo"
	"github.com/light-bringer/catalog-lifecycle/internal/models/m_outbox"
	"github.com/light-bringer/catalog-lifecycle/tests/testutil"
)

func TestOutboxRepository_InsertMut(t *testing.T) {
	client, cleanup := testutil.SetupSpannerTest(t)
	defer cleanup()

	ctx := context.Background()
	outboxRepo := repo.NewOutboxRepo(client)

	event := &domain.VariantHiddenEvent{
		VariantID: "var-1",
		ProductID: "prod-1",
		HiddenAt:  time.Now().UTC(),
	}

	enriched := outboxRepo.EnrichEvent(event, `{"VariantID":"var-1"}`)
	assert.NotEmpty(t, enriched.EventID)
	assert.Equal(t, "variant.hidden", enriched.EventType)
	assert.Equal(t, "var-1", enriched.AggregateID)
	assert.Equal(t, m_outbox.StatusPending, enriched.Status)

	_, err := client.Apply(ctx, []*spanner.Mutation{outboxRepo.InsertMut(enriched)})
	require.NoError(t, err)

	testutil.AssertOutboxEvent(t, client, "variant.hidden")
	testutil.AssertRowCount(t, client, "outbox_events", 1)
}

func TestEventsReadModel_ListEvents(t *testing.T) {
	client, cleanup := testutil.SetupSpannerTest(t)
	defer cleanup()

	ctx := context.Background()
	outboxRepo := repo.NewOutboxRepo(client)
	readModel := repo.NewEventsReadModel(client)

	muts := []*spanner.Mutation{
		outboxRepo.InsertMut(outboxRepo.EnrichEvent(&domain.VariantHiddenEvent{VariantID: "var-1"}, `{}`)),
		outboxRepo.InsertMut(outboxRepo.EnrichEvent(&domain.VariantRestoredEvent{VariantID: "var-1"}, `{}`)),
		outboxRepo.InsertMut(outboxRepo.EnrichEvent(&domain.VariantHiddenEvent{VariantID: "var-2"}, `{}`)),
	}
	_, err := client.Apply(ctx, muts)
	require.NoError(t, err)

	all, err := readModel.ListEvents(ctx, &repo.EventsFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 3)

	hiddenOnly, err := readModel.ListEvents(ctx, &repo.EventsFilter{EventType: "variant.hidden"})
	require.NoError(t, err)
	assert.Len(t, hiddenOnly, 2)

	byAggregate, err := readModel.ListEvents(ctx, &repo.EventsFilter{AggregateID: "var-2"})
	require.NoError(t, err)
	require.Len(t, byAggregate, 1)
	assert.Equal(t, "variant.hidden", byAggregate[0].EventType)

	limited, err := readModel.ListEvents(ctx, &repo.EventsFilter{Limit: 2})
	require.NoError(t, err)
	assert.Len(t, limited, 2)
}
