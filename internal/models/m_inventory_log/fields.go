package m_inventory_log

// Field name constants for the inventory_log table.
const (
	TableName = "inventory_log"

	EntryID           = "entry_id"
	VariantID         = "variant_id"
	QuantityDelta     = "quantity_delta"
	ResultingQuantity = "resulting_quantity"
	Reason            = "reason"
	Actor             = "actor"
	CreatedAt         = "created_at"
)
