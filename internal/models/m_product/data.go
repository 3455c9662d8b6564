package m_product

import (
	"time"

	"cloud.google.com/go/spanner"
)

// Data represents a row of the products table.
// DeletedAt is NULL while the product is visible; a non-null value marks
// the product hidden (soft-deleted) at that instant.
type Data struct {
	ProductID   string
	Name        string
	Description string
	ImagePaths  []string
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   spanner.NullTime
}
