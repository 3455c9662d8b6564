package m_variant

// Field name constants for the product_variants table.
const (
	TableName = "product_variants"

	VariantID      = "variant_id"
	ProductID      = "product_id"
	SKU            = "sku"
	PriceCents     = "price_cents"
	SalePriceCents = "sale_price_cents"
	StockQuantity  = "stock_quantity"
	CreatedAt      = "created_at"
	UpdatedAt      = "updated_at"
	DeletedAt      = "deleted_at"
)
