package restore_product

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

// Request contains the product ID to restore. RestoreAllVariants widens
// the restore from the proximity-paired subset to every hidden variant.
type Request struct {
	ProductID          string
	RestoreAllVariants bool
}

// Result reports what the restore brought back and the product's variant
// counts afterwards.
type Result struct {
	ProductID          string
	RestoredVariantIDs []string
	TotalVariants      int
	ActiveVariants     int
	HiddenVariants     int
}

// Interactor handles the restore product use case.
type Interactor struct {
	products    contracts.ProductRepository
	variants    contracts.VariantRepository
	outboxRepo  contracts.OutboxRepository
	committer   *committer.Committer
	clock       clock.Clock
	revalidator contracts.Revalidator
	logger      *zap.Logger
}

// NewInteractor creates a new restore product interactor.
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

// Execute restores a hidden product. By default only variants hidden
// within the proximity window of the product's own hide timestamp come
// back, so variants an operator had hidden individually before the
// cascade stay hidden.
func (i *Interactor) Execute(ctx context.Context, req *Request) (*Result, error) {
	product, err := i.products.GetByID(ctx, req.ProductID)
	if err != nil {
		return nil, err
	}

	allVariants, err := i.variants.ListByProduct(ctx, product.ID())
	if err != nil {
		return nil, err
	}

	restorePlan, err := domain.PlanProductRestore(product, allVariants, req.RestoreAllVariants)
	if err != nil {
		return nil, err
	}

	now := i.clock.Now()
	product.Restore()

	plan := committer.NewPlan()
	plan.Add(i.products.UpdateMut(product))

	restoredIDs := make([]string, 0, len(restorePlan.ToRestore))
	for _, v := range restorePlan.ToRestore {
		v.Restore(now)
		plan.Add(i.variants.UpdateMut(v))
		restoredIDs = append(restoredIDs, v.ID())
	}

	product.RecordRestored(restoredIDs, now)
	for _, event := range product.DomainEvents() {
		payload, err := serializeEvent(event)
		if err != nil {
			return nil, fmt.Errorf("failed to serialize event: %w", err)
		}
		plan.Add(i.outboxRepo.InsertMut(i.outboxRepo.EnrichEvent(event, payload)))
	}

	if err := i.committer.Apply(ctx, plan); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	product.ClearEvents()
	for _, v := range restorePlan.ToRestore {
		v.ClearEvents()
	}

	// Best-effort: a failed notification never fails the restore.
	if err := i.revalidator.Invalidate(ctx, "products", "product:"+product.ID()); err != nil {
		i.logger.Warn("view revalidation failed after product restore",
			zap.String("product_id", product.ID()),
			zap.Error(err))
	}

	return &Result{
		ProductID:          product.ID(),
		RestoredVariantIDs: restoredIDs,
		TotalVariants:      restorePlan.TotalVariants,
		ActiveVariants:     restorePlan.ActiveVariants,
		HiddenVariants:     restorePlan.HiddenVariants,
	}, nil
}

func serializeEvent(event domain.DomainEvent) (string, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
