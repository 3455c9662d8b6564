package restore_variant

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"github.com/light-bringer/catalog-lifecycle/internal/app/catalog/contracts"
	"github.com/light-bringer/catalog-lifecycle/internal/app/catalog/domain"
	"github.com/light-bringer/catalog-lifecycle/internal/pkg/clock"
	"github.com/light-bringer/catalog-lifecycle/internal/pkg/committer"
)

// Request contains the variant ID to restore.
type Request struct {
	VariantID string
}

// Result reports the outcome. ParentHidden flags that the owning product
// is itself still hidden: the engine permits the restore regardless, and
// callers decide whether to warn or block at the UI boundary.
type Result struct {
	VariantID      string
	ProductID      string
	ParentHidden   bool
	AlreadyVisible bool
}

// Interactor handles the restore variant use case.
type Interactor struct {
	products    contracts.ProductRepository
	variants    contracts.VariantRepository
	outboxRepo  contracts.OutboxRepository
	committer   *committer.Committer
	clock       clock.Clock
	revalidator contracts.Revalidator
	logger      *zap.Logger
}

// NewInteractor creates a new restore variant interactor.
func NewInteractor(
	products contracts.ProductRepository,
	variants contracts.VariantRepository,
	outboxRepo contracts.OutboxRepository,
	committer *committer.Committer,
	clock clock.Clock,
	revalidator contracts.Revalidator,
	logger *zap.Logger,
) *Interactor {
	return &Interactor{
		products:    products,
		variants:    variants,
		outboxRepo:  outboxRepo,
		committer:   committer,
		clock:       clock,
		revalidator: revalidator,
		logger:      logger,
	}
}

// Execute restores a hidden variant.
func (i *Interactor) Execute(ctx context.Context, req *Request) (*Result, error) {
	variant, err := i.variants.GetByID(ctx, req.VariantID)
	if err != nil {
		return nil, err
	}

	product, err := i.products.GetByID(ctx, variant.ProductID())
	if err != nil {
		return nil, err
	}

	result := &Result{
		VariantID:    variant.ID(),
		ProductID:    product.ID(),
		ParentHidden: product.IsDeleted(),
	}

	now := i.clock.Now()
	if !variant.Restore(now) {
		result.AlreadyVisible = true
		return result, nil
	}

	plan := committer.NewPlan()
	plan.Add(i.variants.UpdateMut(variant))

	for _, event := range variant.DomainEvents() {
		payload, err := serializeEvent(event)
		if err != nil {
			return nil, fmt.Errorf("failed to serialize event: %w", err)
		}
		plan.Add(i.outboxRepo.InsertMut(i.outboxRepo.EnrichEvent(event, payload)))
	}

	if err := i.committer.Apply(ctx, plan); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	variant.ClearEvents()

	if err := i.revalidator.Invalidate(ctx, "products", "product:"+product.ID()); err != nil {
		i.logger.Warn("view revalidation failed after variant restore",
			zap.String("variant_id", variant.ID()),
			zap.Error(err))
	}

	return result, nil
}

func serializeEvent(event domain.DomainEvent) (string, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
