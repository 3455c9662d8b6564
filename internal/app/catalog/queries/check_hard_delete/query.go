package check_hard_delete

import (
	"context"

	"github.com/light-bringer/catalog-lifecycle/internal/app/catalog/contracts"
	"github.com/light-bringer/catalog-lifecycle/internal/app/catalog/domain"
)

// Request identifies the variant to evaluate.
type Request struct {
	VariantID string
}

// ProductRequest identifies the product whose variants to evaluate.
type ProductRequest struct {
	ProductID string
}

// Query is the hard-delete validator: a read-only precondition check
// shared by the variant-level and product-level delete paths so their
// rules can never drift apart. Verdicts are advisory; the delete
// usecases re-run the counts inside their transactions.
type Query struct {
	products contracts.ProductRepository
	variants contracts.VariantRepository
	counter  contracts.ReferenceCounter
}

// NewQuery creates the validator query.
func NewQuery(
	products contracts.ProductRepository,
	variants contracts.VariantRepository,
	counter contracts.ReferenceCounter,
) *Query {
	return &Query{
		products: products,
		variants: variants,
		counter:  counter,
	}
}

// Execute evaluates a single variant for hard deletion.
func (q *Query) Execute(ctx context.Context, req *Request) (*domain.VariantVerdict, error) {
	variant, err := q.variants.GetByID(ctx, req.VariantID)
	if err != nil {
		return nil, err
	}

	counts, err := q.counter.CountsSnapshot(ctx, variant.ID(), variant.ProductID())
	if err != nil {
		return nil, err
	}

	verdict := &domain.VariantVerdict{
		VariantID:     variant.ID(),
		SKU:           variant.SKU(),
		DeleteVerdict: domain.NewDeleteVerdict(counts, variant.IsDeleted(), false),
	}
	return verdict, nil
}

// ExecuteForProduct evaluates every variant of a product in cascade
// mode: the last-active-variant guard is suppressed because a product
// hard delete removes all siblings together, so the guard would
// otherwise reject every single-variant product (and, in combination,
// any fully-referenced-free product whose variants are each other's
// only siblings).
func (q *Query) ExecuteForProduct(ctx context.Context, req *ProductRequest) ([]domain.VariantVerdict, error) {
	if _, err := q.products.GetByID(ctx, req.ProductID); err != nil {
		return nil, err
	}

	variants, err := q.variants.ListByProduct(ctx, req.ProductID)
	if err != nil {
		return nil, err
	}

	verdicts := make([]domain.VariantVerdict, 0, len(variants))
	for _, variant := range variants {
		counts, err := q.counter.CountsSnapshot(ctx, variant.ID(), variant.ProductID())
		if err != nil {
			return nil, err
		}

		verdicts = append(verdicts, domain.VariantVerdict{
			VariantID:     variant.ID(),
			SKU:           variant.SKU(),
			DeleteVerdict: domain.NewDeleteVerdict(counts, variant.IsDeleted(), true),
		})
	}

	return verdicts, nil
}
