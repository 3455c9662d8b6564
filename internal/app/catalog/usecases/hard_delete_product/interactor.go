package hard_delete_product

import (
	"context"
	"encoding/json"
	"fmt"

	"cloud.google.com/go/spanner"
	"go.uber.org/zap"

	"github.com/light-bringer/catalog-lifecycle/internal/app/catalog/contracts"
	"github.com/light-bringer/catalog-lifecycle/internal/app/catalog/domain"
	"github.com/light-bringer/catalog-lifecycle/internal/app/catalog/queries/check_hard_delete"
	"github.com/light-bringer/catalog-lifecycle/internal/pkg/clock"
	"github.com/light-bringer/catalog-lifecycle/internal/pkg/committer"
)

// Request contains the product ID to purge.
type Request struct {
	ProductID string
}

// Result reports the outcome. Warnings carries cleanup steps that failed
// after the rows were already gone; the delete itself still succeeded.
type Result struct {
	ProductID       string
	DeletedVariants int
	Warnings        []string
}

// Interactor handles the hard-delete product use case. Every variant of
// the product must individually pass the reference checks; one blocked
// variant blocks the whole product.
type Interactor struct {
	products    contracts.ProductRepository
	variants    contracts.VariantRepository
	counter     contracts.ReferenceCounter
	checker     *check_hard_delete.Query
	outboxRepo  contracts.OutboxRepository
	committer   *committer.Committer
	clock       clock.Clock
	revalidator contracts.Revalidator
	images      contracts.ImageStore
	logger      *zap.Logger
}

// NewInteractor creates a new hard-delete product interactor.
func NewInteractor(
	products contracts.ProductRepository,
	variants contracts.VariantRepository,
	counter contracts.ReferenceCounter,
	checker *check_hard_delete.Query,
	outboxRepo contracts.OutboxRepository,
	committer *committer.Committer,
	clock clock.Clock,
	revalidator contracts.Revalidator,
	images contracts.ImageStore,
	logger *zap.Logger,
) *Interactor {
	return &Interactor{
		products:    products,
		variants:    variants,
		counter:     counter,
		checker:     checker,
		outboxRepo:  outboxRepo,
		committer:   committer,
		clock:       clock,
		revalidator: revalidator,
		images:      images,
		logger:      logger,
	}
}

// Execute purges a product row; the foreign key cascade removes its
// variant rows in the same commit. The advisory per-variant verdicts run
// first, then the counts are re-evaluated inside the read-write
// transaction so a reference created in between still blocks the purge.
// Image and cache cleanup happen after the commit and are best-effort:
// their failures are reported as warnings, never as errors.
func (i *Interactor) Execute(ctx context.Context, req *Request) (*Result, error) {
	product, err := i.products.GetByID(ctx, req.ProductID)
	if err != nil {
		return nil, err
	}

	verdicts, err := i.checker.ExecuteForProduct(ctx, &check_hard_delete.ProductRequest{ProductID: product.ID()})
	if err != nil {
		return nil, err
	}
	if blocked := blockedVerdicts(verdicts); len(blocked) > 0 {
		return nil, &domain.PreconditionFailedError{Verdicts: blocked}
	}

	allVariants, err := i.variants.ListByProduct(ctx, product.ID())
	if err != nil {
		return nil, err
	}

	now := i.clock.Now()
	event := &domain.ProductPurgedEvent{
		ProductID:    product.ID(),
		VariantCount: len(allVariants),
		ImagePaths:   product.ImagePaths(),
		PurgedAt:     now,
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize event: %w", err)
	}
	outboxMut := i.outboxRepo.InsertMut(i.outboxRepo.EnrichEvent(event, string(payload)))

	err = i.committer.ApplyWithReadWriteTransaction(ctx, func(ctx context.Context, txn *spanner.ReadWriteTransaction) error {
		recheck := make([]domain.VariantVerdict, 0)
		for _, v := range allVariants {
			counts, err := i.counter.Counts(ctx, txn, v.ID(), v.ProductID())
			if err != nil {
				return err
			}
			verdict := domain.NewDeleteVerdict(counts, v.IsDeleted(), true)
			if !verdict.CanDelete {
				recheck = append(recheck, domain.VariantVerdict{
					VariantID:     v.ID(),
					SKU:           v.SKU(),
					DeleteVerdict: verdict,
				})
			}
		}
		if len(recheck) > 0 {
			return &domain.PreconditionFailedError{Verdicts: recheck}
		}

		return txn.BufferWrite([]*spanner.Mutation{
			i.products.DeleteMut(product.ID()),
			outboxMut,
		})
	})
	if err != nil {
		return nil, err
	}

	result := &Result{
		ProductID:       product.ID(),
		DeletedVariants: len(allVariants),
	}

	if len(product.ImagePaths()) > 0 {
		if err := i.images.Remove(ctx, product.ImagePaths()); err != nil {
			i.logger.Warn("image cleanup failed after product hard delete",
				zap.String("product_id", product.ID()),
				zap.Strings("image_paths", product.ImagePaths()),
				zap.Error(err))
			result.Warnings = append(result.Warnings, fmt.Sprintf("image cleanup failed: %v", err))
		}
	}

	if err := i.revalidator.Invalidate(ctx, "products", "product:"+product.ID()); err != nil {
		i.logger.Warn("view revalidation failed after product hard delete",
			zap.String("product_id", product.ID()),
			zap.Error(err))
		result.Warnings = append(result.Warnings, fmt.Sprintf("view revalidation failed: %v", err))
	}

	return result, nil
}

func blockedVerdicts(verdicts []domain.VariantVerdict) []domain.VariantVerdict {
	blocked := make([]domain.VariantVerdict, 0)
	for _, v := range verdicts {
		if !v.CanDelete {
			blocked = append(blocked, v)
		}
	}
	return blocked
}
