package m_cart_item

// Field name constants for the cart_items table. Like order_items, the
// engine only counts these rows per variant.
const (
	TableName = "cart_items"

	CartItemID = "cart_item_id"
	CartID     = "cart_id"
	VariantID  = "variant_id"
	Quantity   = "quantity"
	CreatedAt  = "created_at"
)
