package hard_delete_variant

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

// Request contains the variant ID to purge.
type Request struct {
	VariantID string
}

// Result reports the outcome.
type Result struct {
	VariantID string
	ProductID string
}

// Interactor handles the hard-delete variant use case: the only
// destructive, non-reversible operation on a variant.
type Interactor struct {
	variants   contracts.VariantRepository
	counter    contracts.ReferenceCounter
	checker    *check_hard_delete.Query
	outboxRepo contracts.OutboxRepository
	committer  *committer.Committer
	clock      clock.Clock
	revalidator contracts.Revalidator
	logger      *zap.Logger
}

// NewInteractor creates a new hard-delete variant interactor.
func NewInteractor(
	variants contracts.VariantRepository,
	counter contracts.ReferenceCounter,
	checker *check_hard_delete.Query,
	outboxRepo contracts.OutboxRepository,
	committer *committer.Committer,
	clock clock.Clock,
	revalidator contracts.Revalidator,
	logger *zap.Logger,
) *Interactor {
	return &Interactor{
		variants:    variants,
		counter:     counter,
		checker:     checker,
		outboxRepo:  outboxRepo,
		committer:   committer,
		clock:       clock,
		revalidator: revalidator,
		logger:      logger,
	}
}

// Execute purges a variant row. The advisory verdict runs first so most
// rejections never open a read-write transaction; the counts are then
// re-evaluated inside the transaction that buffers the delete, so a
// reference created between check and act still blocks the purge.
func (i *Interactor) Execute(ctx context.Context, req *Request) (*Result, error) {
	variant, err := i.variants.GetByID(ctx, req.VariantID)
	if err != nil {
		return nil, err
	}

	verdict, err := i.checker.Execute(ctx, &check_hard_delete.Request{VariantID: req.VariantID})
	if err != nil {
		return nil, err
	}
	if !verdict.CanDelete {
		return nil, &domain.PreconditionFailedError{Verdicts: []domain.VariantVerdict{*verdict}}
	}

	now := i.clock.Now()
	event := &domain.VariantPurgedEvent{
		VariantID: variant.ID(),
		ProductID: variant.ProductID(),
		PurgedAt:  now,
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize event: %w", err)
	}
	outboxMut := i.outboxRepo.InsertMut(i.outboxRepo.EnrichEvent(event, string(payload)))

	err = i.committer.ApplyWithReadWriteTransaction(ctx, func(ctx context.Context, txn *spanner.ReadWriteTransaction) error {
		counts, err := i.counter.Counts(ctx, txn, variant.ID(), variant.ProductID())
		if err != nil {
			return err
		}

		recheck := domain.NewDeleteVerdict(counts, variant.IsDeleted(), false)
		if !recheck.CanDelete {
			return &domain.PreconditionFailedError{Verdicts: []domain.VariantVerdict{{
				VariantID:     variant.ID(),
				SKU:           variant.SKU(),
				DeleteVerdict: recheck,
			}}}
		}

		return txn.BufferWrite([]*spanner.Mutation{
			i.variants.DeleteMut(variant.ID()),
			outboxMut,
		})
	})
	if err != nil {
		return nil, err
	}

	if err := i.revalidator.Invalidate(ctx, "products", "product:"+variant.ProductID()); err != nil {
		i.logger.Warn("view revalidation failed after variant hard delete",
			zap.String("variant_id", variant.ID()),
			zap.Error(err))
	}

	return &Result{
		VariantID: variant.ID(),
		ProductID: variant.ProductID(),
	}, nil
}
