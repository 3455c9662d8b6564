package m_order_item

// Field name constants for the order_items table. The lifecycle engine
// never reads row contents; it only counts rows per variant to decide
// whether a hard delete may proceed.
const (
	TableName = "order_items"

	OrderItemID = "order_item_id"
	OrderID     = "order_id"
	VariantID   = "variant_id"
	Quantity    = "quantity"
	CreatedAt   = "created_at"
)
