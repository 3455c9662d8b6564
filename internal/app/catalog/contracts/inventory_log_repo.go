package contracts

import (
	"context"
	"time"

	"cloud.google.com/go/spanner"
)

// InventoryLogRecord is one immutable stock-movement audit entry.
type InventoryLogRecord struct {
	EntryID           string
	VariantID         string
	QuantityDelta     int64
	ResultingQuantity int64
	Reason            string
	Actor             string
	CreatedAt         time.Time
}

// InventoryLogRepository appends and reads the stock audit trail. There
// is deliberately no update or delete: entries are immutable once
// written, and their mere existence blocks variant hard deletes.
type InventoryLogRepository interface {
	// InsertMut creates a mutation appending one audit entry
	InsertMut(entryID, variantID string, delta, resulting int64, reason, actor string) *spanner.Mutation

	// ListByVariant retrieves the most recent entries for a variant
	ListByVariant(ctx context.Context, variantID string, limit int64) ([]InventoryLogRecord, error)
}
