package m_order_item

import (
	"time"

	"cloud.google.com/go/spanner"
)

// Data represents a row of the order_items table.
type Data struct {
	OrderItemID string
	OrderID     string
	VariantID   string
	Quantity    int64
	CreatedAt   time.Time
}

// Model builds mutations for the order_items table. The engine itself
// only counts these rows; inserts exist for test fixtures and seeding.
type Model struct{}

// NewModel creates a Model instance.
func NewModel() *Model {
	return &Model{}
}

// InsertMut creates a mutation for inserting an order item row.
func (m *Model) InsertMut(data *Data) *spanner.Mutation {
	return spanner.Insert(
		TableName,
		[]string{OrderItemID, OrderID, VariantID, Quantity, CreatedAt},
		[]interface{}{data.OrderItemID, data.OrderID, data.VariantID, data.Quantity, spanner.CommitTimestamp},
	)
}
