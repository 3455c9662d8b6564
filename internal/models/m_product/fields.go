package m_product

// Field name constants for the products table.
// These provide type-safe column references and prevent typos.
const (
	TableName = "products"

	ProductID   = "product_id"
	Name        = "name"
	Description = "description"
	ImagePaths  = "image_paths"
	CreatedAt   = "created_at"
	UpdatedAt   = "updated_at"
	DeletedAt   = "deleted_at"
)
