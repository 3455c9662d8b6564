package contracts

import (
	"context"
	"time"
)

// VariantDTO is the read-side projection of a variant.
type VariantDTO struct {
	VariantID      string     `json:"variant_id"`
	ProductID      string     `json:"product_id"`
	SKU            string     `json:"sku"`
	PriceCents     int64      `json:"price_cents"`
	SalePriceCents *int64     `json:"sale_price_cents,omitempty"`
	StockQuantity  int64      `json:"stock_quantity"`
	Hidden         bool       `json:"hidden"`
	DeletedAt      *time.Time `json:"deleted_at,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

// ProductDTO is the read-side projection of a product with its variants
// and per-state counts, shaped for admin confirmation screens.
type ProductDTO struct {
	ProductID      string       `json:"product_id"`
	Name           string       `json:"name"`
	Description    string       `json:"description"`
	ImagePaths     []string     `json:"image_paths,omitempty"`
	Hidden         bool         `json:"hidden"`
	DeletedAt      *time.Time   `json:"deleted_at,omitempty"`
	TotalVariants  int          `json:"total_variants"`
	ActiveVariants int          `json:"active_variants"`
	HiddenVariants int          `json:"hidden_variants"`
	Variants       []VariantDTO `json:"variants"`
	CreatedAt      time.Time    `json:"created_at"`
	UpdatedAt      time.Time    `json:"updated_at"`
}

// ReadModel serves display queries without going through the aggregates.
type ReadModel interface {
	// GetProductByID retrieves a product projection with all variants.
	// Returns domain.ErrProductNotFound when no row exists.
	GetProductByID(ctx context.Context, productID string) (*ProductDTO, error)
}
