package contracts

import (
	"context"

	"cloud.google.com/go/spanner"
	"github.com/light-bringer/catalog-lifecycle/internal/app/catalog/domain"
)

// VariantRepository defines variant persistence following the same
// mutation-returning pattern as ProductRepository.
type VariantRepository interface {
	// InsertMut creates a mutation for inserting a new variant
	InsertMut(variant *domain.Variant) *spanner.Mutation

	// UpdateMut creates a mutation covering the variant's dirty fields,
	// or nil when nothing changed
	UpdateMut(variant *domain.Variant) *spanner.Mutation

	// DeleteMut creates a mutation that physically removes the variant row
	DeleteMut(variantID string) *spanner.Mutation

	// GetByID retrieves a variant, reconstructing the domain aggregate.
	// Returns domain.ErrVariantNotFound when no row exists.
	GetByID(ctx context.Context, variantID string) (*domain.Variant, error)

	// ListByProduct retrieves every variant of a product, hidden ones
	// included, ordered by creation time
	ListByProduct(ctx context.Context, productID string) ([]*domain.Variant, error)
}
