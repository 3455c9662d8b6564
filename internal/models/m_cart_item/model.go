package m_cart_item

import (
	"time"

	"cloud.google.com/go/spanner"
)

// Data represents a row of the cart_items table.
type Data struct {
	CartItemID string
	CartID     string
	VariantID  string
	Quantity   int64
	CreatedAt  time.Time
}

// Model builds mutations for the cart_items table, used by fixtures and
// seeding only.
type Model struct{}

// NewModel creates a Model instance.
func NewModel() *Model {
	return &Model{}
}

// InsertMut creates a mutation for inserting a cart item row.
func (m *Model) InsertMut(data *Data) *spanner.Mutation {
	return spanner.Insert(
		TableName,
		[]string{CartItemID, CartID, VariantID, Quantity, CreatedAt},
		[]interface{}{data.CartItemID, data.CartID, data.VariantID, data.Quantity, spanner.CommitTimestamp},
	)
}
