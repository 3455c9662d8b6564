package domain

import "time"

// DomainEvent is the base interface for all domain events.
type DomainEvent interface {
	EventType() string
	AggregateID() string
}

// ProductHiddenEvent is emitted when a product is soft-deleted, together
// with the variants hidden by the same cascade.
type ProductHiddenEvent struct {
	ProductID      string
	HiddenVariants []string
	HiddenAt       time.Time
}

func (e *ProductHiddenEvent) EventType() string {
	return "product.hidden"
}

func (e *ProductHiddenEvent) AggregateID() string {
	return e.ProductID
}

// ProductRestoredEvent is emitted when a hidden product is restored.
type ProductRestoredEvent struct {
	ProductID        string
	RestoredVariants []string
	RestoredAt       time.Time
}

func (e *ProductRestoredEvent) EventType() string {
	return "product.restored"
}

func (e *ProductRestoredEvent) AggregateID() string {
	return e.ProductID
}

// ProductPurgedEvent is emitted when a product row is physically deleted.
type ProductPurgedEvent struct {
	ProductID    string
	VariantCount int
	ImagePaths   []string
	PurgedAt     time.Time
}

func (e *ProductPurgedEvent) EventType() string {
	return "product.purged"
}

func (e *ProductPurgedEvent) AggregateID() string {
	return e.ProductID
}

// VariantHiddenEvent is emitted when a single variant is soft-deleted.
type VariantHiddenEvent struct {
	VariantID string
	ProductID string
	HiddenAt  time.Time
}

func (e *VariantHiddenEvent) EventType() string {
	return "variant.hidden"
}

func (e *VariantHiddenEvent) AggregateID() string {
	return e.VariantID
}

// VariantRestoredEvent is emitted when a hidden variant is restored.
type VariantRestoredEvent struct {
	VariantID  string
	ProductID  string
	RestoredAt time.Time
}

func (e *VariantRestoredEvent) EventType() string {
	return "variant.restored"
}

func (e *VariantRestoredEvent) AggregateID() string {
	return e.VariantID
}

// VariantPurgedEvent is emitted when a variant row is physically deleted.
type VariantPurgedEvent struct {
	VariantID string
	ProductID string
	PurgedAt  time.Time
}

func (e *VariantPurgedEvent) EventType() string {
	return "variant.purged"
}

func (e *VariantPurgedEvent) AggregateID() string {
	return e.VariantID
}

// StockAdjustedEvent is emitted when a variant's stock quantity changes.
// It mirrors the inventory_log entry written in the same commit.
type StockAdjustedEvent struct {
	VariantID         string
	ProductID         string
	QuantityDelta     int64
	ResultingQuantity int64
	Reason            string
	Actor             string
	AdjustedAt        time.Time
}

func (e *StockAdjustedEvent) EventType() string {
	return "variant.stock.adjusted"
}

func (e *StockAdjustedEvent) AggregateID() string {
	return e.VariantID
}
