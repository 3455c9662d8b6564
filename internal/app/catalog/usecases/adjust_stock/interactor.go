package adjust_stock

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/light-bringer/catalog-lifecycle/internal/app/catalog/contracts"
	"github.com/light-bringer/catalog-lifecycle/internal/app/catalog/domain"
	"github.com/light-bringer/catalog-lifecycle/internal/pkg/clock"
	"github.com/light-bringer/catalog-lifecycle/internal/pkg/committer"
)

// Request describes one stock movement. Actor is optional and names who
// or what triggered the movement.
type Request struct {
	VariantID     string
	QuantityDelta int64
	Reason        string
	Actor         string
}

// Result reports the stock level after the adjustment.
type Result struct {
	VariantID         string
	EntryID           string
	QuantityDelta     int64
	ResultingQuantity int64
}

// Interactor handles the adjust-stock use case. The variant row update
// and the audit entry land in one commit, so the audit trail can never
// disagree with the stored quantity.
type Interactor struct {
	variants     contracts.VariantRepository
	inventoryLog contracts.InventoryLogRepository
	outboxRepo   contracts.OutboxRepository
	committer    *committer.Committer
	clock        clock.Clock
	logger       *zap.Logger
}

// NewInteractor creates a new adjust-stock interactor.
func NewInteractor(
	variants contracts.VariantRepository,
	inventoryLog contracts.InventoryLogRepository,
	outboxRepo contracts.OutboxRepository,
	committer *committer.Committer,
	clock clock.Clock,
	logger *zap.Logger,
) *Interactor {
	return &Interactor{
		variants:     variants,
		inventoryLog: inventoryLog,
		outboxRepo:   outboxRepo,
		committer:    committer,
		clock:        clock,
		logger:       logger,
	}
}

// Execute applies a quantity delta to a variant and appends the matching
// audit entry. Hidden variants still accept adjustments: stock keeps
// moving through receiving and returns while a variant is off sale.
func (i *Interactor) Execute(ctx context.Context, req *Request) (*Result, error) {
	variant, err := i.variants.GetByID(ctx, req.VariantID)
	if err != nil {
		return nil, err
	}

	now := i.clock.Now()
	resulting, err := variant.AdjustStock(req.QuantityDelta, req.Reason, req.Actor, now)
	if err != nil {
		return nil, err
	}

	entryID := uuid.New().String()

	plan := committer.NewPlan()
	plan.Add(i.variants.UpdateMut(variant))
	plan.Add(i.inventoryLog.InsertMut(entryID, variant.ID(), req.QuantityDelta, resulting, req.Reason, req.Actor))

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

	i.logger.Debug("stock adjusted",
		zap.String("variant_id", variant.ID()),
		zap.Int64("delta", req.QuantityDelta),
		zap.Int64("resulting", resulting))

	return &Result{
		VariantID:         variant.ID(),
		EntryID:           entryID,
		QuantityDelta:     req.QuantityDelta,
		ResultingQuantity: resulting,
	}, nil
}

func serializeEvent(event domain.DomainEvent) (string, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
