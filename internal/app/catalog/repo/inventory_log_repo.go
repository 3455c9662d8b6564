package repo

import (
	"context"
	"fmt"

	"cloud.google.com/go/spanner"
	"google.golang.org/api/iterator"

	"github.com/light-bringer/catalog-lifecycle/internal/app/catalog/contracts"
	"github.com/light-bringer/catalog-lifecycle/internal/models/m_inventory_log"
	"github.com/light-bringer/catalog-lifecycle/internal/pkg/query"
)

// InventoryLogRepo implements InventoryLogRepository for Spanner.
type InventoryLogRepo struct {
	client *spanner.Client
	model  *m_inventory_log.Model
}

// NewInventoryLogRepo creates a new InventoryLogRepo.
func NewInventoryLogRepo(client *spanner.Client) contracts.InventoryLogRepository {
	return &InventoryLogRepo{
		client: client,
		model:  m_inventory_log.NewModel(),
	}
}

// InsertMut creates a mutation appending one audit entry.
func (r *InventoryLogRepo) InsertMut(entryID, variantID string, delta, resulting int64, reason, actor string) *spanner.Mutation {
	data := &m_inventory_log.Data{
		EntryID:           entryID,
		VariantID:         variantID,
		QuantityDelta:     delta,
		ResultingQuantity: resulting,
		Reason:            reason,
	}

	// actor is optional
	if actor != "" {
		data.Actor = spanner.NullString{StringVal: actor, Valid: true}
	}

	return r.model.InsertMut(data)
}

// ListByVariant retrieves audit entries for a variant, most recent first.
func (r *InventoryLogRepo) ListByVariant(ctx context.Context, variantID string, limit int64) ([]contracts.InventoryLogRecord, error) {
	stmt := query.From(m_inventory_log.TableName).
		Select(
			m_inventory_log.EntryID,
			m_inventory_log.VariantID,
			m_inventory_log.QuantityDelta,
			m_inventory_log.ResultingQuantity,
			m_inventory_log.Reason,
			m_inventory_log.Actor,
			m_inventory_log.CreatedAt,
		).
		Where(query.Eq(m_inventory_log.VariantID, variantID)).
		OrderBy(m_inventory_log.CreatedAt, query.Desc).
		Limit(limit).
		Build()

	iter := r.client.Single().Query(ctx, stmt)
	defer iter.Stop()

	var records []contracts.InventoryLogRecord
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate inventory history: %w", err)
		}

		var data m_inventory_log.Data
		if err := row.ToStruct(&data); err != nil {
			return nil, fmt.Errorf("failed to parse inventory entry: %w", err)
		}

		record := contracts.InventoryLogRecord{
			EntryID:           data.EntryID,
			VariantID:         data.VariantID,
			QuantityDelta:     data.QuantityDelta,
			ResultingQuantity: data.ResultingQuantity,
			Reason:            data.Reason,
			CreatedAt:         data.CreatedAt,
		}
		if data.Actor.Valid {
			record.Actor = data.Actor.StringVal
		}

		records = append(records, record)
	}

	return records, nil
}
