package m_inventory_log

import (
	"time"

	"cloud.google.com/go/spanner"
)

// Data represents a row of the inventory_log table. Rows are append-only:
// the engine inserts them when a variant's stock changes and never
// updates or deletes them.
type Data struct {
	EntryID           string
	VariantID         string
	QuantityDelta     int64
	ResultingQuantity int64
	Reason            string
	Actor             spanner.NullString
	CreatedAt         time.Time
}
