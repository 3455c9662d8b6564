package m_variant

import (
	"time"

	"cloud.google.com/go/spanner"
)

// Data represents a row of the product_variants table.
// Prices are stored in minor units. SalePriceCents is NULL when the
// variant is not on sale; DeletedAt is NULL while the variant is active.
type Data struct {
	VariantID      string
	ProductID      string
	SKU            string
	PriceCents     int64
	SalePriceCents spanner.NullInt64
	StockQuantity  int64
	CreatedAt      time.Time
	UpdatedAt      time.Time
	DeletedAt      spanner.NullTime
}
