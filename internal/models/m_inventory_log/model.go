package m_inventory_log

import (
	"cloud.google.com/go/spanner"
)

// Model builds mutations for the inventory_log table. Only inserts exist;
// the audit trail is immutable.
type Model struct{}

// NewModel creates a Model instance.
func NewModel() *Model {
	return &Model{}
}

// InsertMut creates a mutation for appending an audit entry.
func (m *Model) InsertMut(data *Data) *spanner.Mutation {
	return spanner.Insert(
		TableName,
		[]string{
			EntryID,
			VariantID,
			QuantityDelta,
			ResultingQuantity,
			Reason,
			Actor,
			CreatedAt,
		},
		[]interface{}{
			data.EntryID,
			data.VariantID,
			data.QuantityDelta,
			data.ResultingQuantity,
			data.Reason,
			data.Actor,
			spanner.CommitTimestamp,
		},
	)
}
