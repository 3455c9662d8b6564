package soft_delete_product

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

// Request contains the product ID to hide.
type Request struct {
	ProductID string
}

// Result reports the outcome of the cascade.
type Result struct {
	ProductID        string
	HiddenAt         time.Time
	HiddenVariantIDs []string
	AlreadyHidden    bool
}

// Interactor handles the soft-delete product use case: hiding a product
// cascades to every variant that is still visible.
type Interactor struct {
	products    contracts.ProductRepository
	variants    contracts.VariantRepository
	outboxRepo  contracts.OutboxRepository
	committer   *committer.Committer
	clock       clock.Clock
	revalidator contracts.Revalidator
	logger      *zap.Logger
}

// NewInteractor creates a new soft-delete product interactor.
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

// Execute hides a product and all of its visible variants in a single
// commit, stamping every row with the same timestamp. The shared
// timestamp is what later lets a restore recognize which variants were
// hidden by this cascade rather than individually.
func (i *Interactor) Execute(ctx context.Context, req *Request) (*Result, error) {
	product, err := i.products.GetByID(ctx, req.ProductID)
	if err != nil {
		return nil, err
	}

	now := i.clock.Now()
	if !product.SoftDelete(now) {
		return &Result{
			ProductID:     product.ID(),
			HiddenAt:      *product.DeletedAt(),
			AlreadyHidden: true,
		}, nil
	}

	variants, err := i.variants.ListByProduct(ctx, product.ID())
	if err != nil {
		return nil, err
	}

	plan := committer.NewPlan()
	plan.Add(i.products.UpdateMut(product))

	hiddenIDs := make([]string, 0, len(variants))
	hidden := make([]*domain.Variant, 0, len(variants))
	for _, v := range variants {
		if !v.SoftDelete(now) {
			continue // already hidden individually, keep its own timestamp
		}
		plan.Add(i.variants.UpdateMut(v))
		hiddenIDs = append(hiddenIDs, v.ID())
		hidden = append(hidden, v)
	}

	product.RecordHiddenCascade(hiddenIDs, now)

	events := product.DomainEvents()
	for _, v := range hidden {
		events = append(events, v.DomainEvents()...)
	}
	for _, event := range events {
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
	for _, v := range hidden {
		v.ClearEvents()
	}

	// Best-effort: a failed notification never fails the soft delete.
	if err := i.revalidator.Invalidate(ctx, "products", "product:"+product.ID()); err != nil {
		i.logger.Warn("view revalidation failed after product soft delete",
			zap.String("product_id", product.ID()),
			zap.Error(err))
	}

	return &Result{
		ProductID:        product.ID(),
		HiddenAt:         now,
		HiddenVariantIDs: hiddenIDs,
	}, nil
}

func serializeEvent(event domain.DomainEvent) (string, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
