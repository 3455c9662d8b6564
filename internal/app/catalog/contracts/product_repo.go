package contracts

import (
	"context"

	"cloud.google.com/go/spanner"
	"github.com/light-bringer/catalog-lifecycle/internal/app/catalog/domain"
)

// ProductRepository defines product persistence. Repositories return
// mutations, they don't apply them; usecases collect mutations into a
// commit plan and apply the plan atomically.
type ProductRepository interface {
	// InsertMut creates a mutation for inserting a new product
	InsertMut(product *domain.Product) *spanner.Mutation

	// UpdateMut creates a mutation covering the product's dirty fields,
	// or nil when nothing changed
	UpdateMut(product *domain.Product) *spanner.Mutation

	// DeleteMut creates a mutation that physically removes the product
	// row; the schema cascades the removal to its variants
	DeleteMut(productID string) *spanner.Mutation

	// GetByID retrieves a product, reconstructing the domain aggregate.
	// Returns domain.ErrProductNotFound when no row exists.
	GetByID(ctx context.Context, productID string) (*domain.Product, error)

	// Exists checks whether a product row exists
	Exists(ctx context.Context, productID string) (bool, error)
}
