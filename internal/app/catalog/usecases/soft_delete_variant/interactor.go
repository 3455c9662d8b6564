package soft_delete_variant

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/light-bringer/catalog-lifecycle/internal/app/catalog/contracts"
	"github.com/light-bringer/catalog-lifecycle/internal/app/catalog/domain"
	"github.com/light-bringer/catalog-lifecycle/internal/pkg/clock"
	"github.com/light-bringer/catalog-lifecycle/internal/pkg/committer"
)

// Request contains the variant ID to hide.
type Request struct {
	VariantID string
}

// Result reports the outcome. ProductID lets the caller invalidate any
// cached views of the owning product.
type Result struct {
	VariantID     string
	ProductID     string
	HiddenAt      time.Time
	AlreadyHidden bool
}

// Interactor handles the soft-delete variant use case.
type Interactor struct {
	variants    contracts.VariantRepository
	outboxRepo  contracts.OutboxRepository
	committer   *committer.Committer
	clock       clock.Clock
	revalidator contracts.Revalidator
	logger      *zap.Logger
}

// NewInteractor creates a new soft-delete variant interactor.
func NewInteractor(
	variants contracts.VariantRepository,
	outboxRepo contracts.OutboxRepository,
	committer *committer.Committer,
	clock clock.Clock,
	revalidator contracts.Revalidator,
	logger *zap.Logger,
) *Interactor {
	return &Interactor{
		variants:    variants,
		outboxRepo:  outboxRepo,
		committer:   committer,
		clock:       clock,
		revalidator: revalidator,
		logger:      logger,
	}
}

// Execute hides a variant. Soft delete is always permitted: it is
// reversible, so no referential checks apply. Hiding an already-hidden
// variant is a no-op that keeps the original timestamp.
func (i *Interactor) Execute(ctx context.Context, req *Request) (*Result, error) {
	variant, err := i.variants.GetByID(ctx, req.VariantID)
	if err != nil {
		return nil, err
	}

	now := i.clock.Now()
	if !variant.SoftDelete(now) {
		return &Result{
			VariantID:     variant.ID(),
			ProductID:     variant.ProductID(),
			HiddenAt:      *variant.DeletedAt(),
			AlreadyHidden: true,
		}, nil
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

	// Best-effort: a failed notification never fails the soft delete.
	if err := i.revalidator.Invalidate(ctx, "products", "product:"+variant.ProductID()); err != nil {
		i.logger.Warn("view revalidation failed after variant soft delete",
			zap.String("variant_id", variant.ID()),
			zap.Error(err))
	}

	return &Result{
		VariantID: variant.ID(),
		ProductID: variant.ProductID(),
		HiddenAt:  now,
	}, nil
}

func serializeEvent(event domain.DomainEvent) (string, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
