package repo

import (
	"context"
	"fmt"

	"cloud.google.com/go/spanner"
	"google.golang.org/api/iterator"

	"github.com/light-bringer/catalog-lifecycle/internal/app/catalog/contracts"
	"github.com/light-bringer/catalog-lifecycle/internal/app/catalog/domain"
	"github.com/light-bringer/catalog-lifecycle/internal/models/m_cart_item"
	"github.com/light-bringer/catalog-lifecycle/internal/models/m_inventory_log"
	"github.com/light-bringer/catalog-lifecycle/internal/models/m_order_item"
	"github.com/light-bringer/catalog-lifecycle/internal/models/m_variant"
	"github.com/light-bringer/catalog-lifecycle/internal/pkg/query"
)

// ReferenceCounterImpl gathers the per-variant row counts that gate a
// hard delete. Counts takes the querier per call so the same queries run
// either on a read-only snapshot (advisory check) or inside the
// read-write transaction that buffers the physical delete.
type ReferenceCounterImpl struct {
	client *spanner.Client
}

// NewReferenceCounter creates a ReferenceCounter.
func NewReferenceCounter(client *spanner.Client) contracts.ReferenceCounter {
	return &ReferenceCounterImpl{client: client}
}

// CountsSnapshot runs the counts on a fresh read-only transaction, so
// all four counts observe one consistent snapshot.
func (rc *ReferenceCounterImpl) CountsSnapshot(ctx context.Context, variantID, productID string) (domain.ReferenceCounts, error) {
	txn := rc.client.ReadOnlyTransaction()
	defer txn.Close()

	return rc.Counts(ctx, txn, variantID, productID)
}

// Counts runs all four count queries for one variant over q.
func (rc *ReferenceCounterImpl) Counts(ctx context.Context, q contracts.Querier, variantID, productID string) (domain.ReferenceCounts, error) {
	var counts domain.ReferenceCounts
	var err error

	counts.OrderItems, err = rc.count(ctx, q,
		query.From(m_order_item.TableName).
			Where(query.Eq(m_order_item.VariantID, variantID)).
			Count())
	if err != nil {
		return counts, fmt.Errorf("failed to count order items: %w", err)
	}

	counts.CartItems, err = rc.count(ctx, q,
		query.From(m_cart_item.TableName).
			Where(query.Eq(m_cart_item.VariantID, variantID)).
			Count())
	if err != nil {
		return counts, fmt.Errorf("failed to count cart items: %w", err)
	}

	counts.InventoryEntries, err = rc.count(ctx, q,
		query.From(m_inventory_log.TableName).
			Where(query.Eq(m_inventory_log.VariantID, variantID)).
			Count())
	if err != nil {
		return counts, fmt.Errorf("failed to count inventory history: %w", err)
	}

	counts.OtherActiveVariants, err = rc.count(ctx, q,
		query.From(m_variant.TableName).
			Where(query.Eq(m_variant.ProductID, productID)).
			Where(query.Ne(m_variant.VariantID, variantID)).
			Where(query.IsNull(m_variant.DeletedAt)).
			Count())
	if err != nil {
		return counts, fmt.Errorf("failed to count sibling variants: %w", err)
	}

	return counts, nil
}

func (rc *ReferenceCounterImpl) count(ctx context.Context, q contracts.Querier, builder *query.Builder) (int64, error) {
	iter := q.Query(ctx, builder.Build())
	defer iter.Stop()

	row, err := iter.Next()
	if err == iterator.Done {
		return 0, fmt.Errorf("count query returned no rows")
	}
	if err != nil {
		return 0, err
	}

	var count int64
	if err := row.Columns(&count); err != nil {
		return 0, err
	}
	return count, nil
}
