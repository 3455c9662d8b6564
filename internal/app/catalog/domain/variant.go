package domain

import (
	"time"

	"github.com/light-bringer/catalog-lifecycle/internal/pkg/clock"
)

// Variant field names for change tracking
const (
	FieldSKU            = "sku"
	FieldPriceCents     = "price_cents"
	FieldSalePriceCents = "sale_price_cents"
	FieldStockQuantity  = "stock_quantity"
)

// Variant is a sellable SKU under a product. Visibility follows the same
// nullable deleted_at convention as Product. Stock changes always flow
// through AdjustStock so every movement leaves an audit event.
type Variant struct {
	id             string
	productID      string
	sku            string
	priceCents     int64
	salePriceCents *int64
	stockQuantity  int64
	createdAt      time.Time
	updatedAt      time.Time
	deletedAt      *time.Time

	clock clock.Clock

	changes *ChangeTracker
	events  []DomainEvent
}

// NewVariant creates a new Variant aggregate.
func NewVariant(id, productID, sku string, priceCents int64, salePriceCents *int64, stockQuantity int64, now time.Time, clk clock.Clock) (*Variant, error) {
	if sku == "" {
		return nil, ErrEmptySKU
	}

	if priceCents <= 0 {
		return nil, ErrInvalidPrice
	}

	if salePriceCents != nil && *salePriceCents > priceCents {
		return nil, ErrInvalidSalePrice
	}

	if stockQuantity < 0 {
		return nil, ErrNegativeStock
	}

	v := &Variant{
		id:             id,
		productID:      productID,
		sku:            sku,
		priceCents:     priceCents,
		salePriceCents: salePriceCents,
		stockQuantity:  stockQuantity,
		createdAt:      now,
		updatedAt:      now,
		clock:          clk,
		changes:        NewChangeTracker(),
		events:         make([]DomainEvent, 0),
	}

	v.changes.MarkDirty(FieldSKU)
	v.changes.MarkDirty(FieldPriceCents)
	v.changes.MarkDirty(FieldSalePriceCents)
	v.changes.MarkDirty(FieldStockQuantity)

	return v, nil
}

// ReconstructVariant reconstitutes a Variant loaded from the store.
func ReconstructVariant(
	id, productID, sku string,
	priceCents int64,
	salePriceCents *int64,
	stockQuantity int64,
	createdAt, updatedAt time.Time,
	deletedAt *time.Time,
	clk clock.Clock,
) *Variant {
	return &Variant{
		id:             id,
		productID:      productID,
		sku:            sku,
		priceCents:     priceCents,
		salePriceCents: salePriceCents,
		stockQuantity:  stockQuantity,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
		deletedAt:      deletedAt,
		clock:          clk,
		changes:        NewChangeTracker(),
		events:         make([]DomainEvent, 0),
	}
}

// Getters
func (v *Variant) ID() string                  { return v.id }
func (v *Variant) ProductID() string           { return v.productID }
func (v *Variant) SKU() string                 { return v.sku }
func (v *Variant) PriceCents() int64           { return v.priceCents }
func (v *Variant) SalePriceCents() *int64      { return v.salePriceCents }
func (v *Variant) StockQuantity() int64        { return v.stockQuantity }
func (v *Variant) CreatedAt() time.Time        { return v.createdAt }
func (v *Variant) UpdatedAt() time.Time        { return v.updatedAt }
func (v *Variant) DeletedAt() *time.Time       { return v.deletedAt }
func (v *Variant) Changes() *ChangeTracker     { return v.changes }
func (v *Variant) DomainEvents() []DomainEvent { return v.events }

// IsDeleted reports whether the variant is hidden.
func (v *Variant) IsDeleted() bool {
	return v.deletedAt != nil
}

// SoftDelete hides the variant at now. Soft delete has no referential
// preconditions: it is reversible, so orders and carts pointing at the
// variant keep working. Hiding an already-hidden variant is a no-op that
// preserves the original timestamp.
func (v *Variant) SoftDelete(now time.Time) bool {
	if v.deletedAt != nil {
		return false
	}

	ts := now
	v.deletedAt = &ts
	v.changes.MarkDirty(FieldDeletedAt)

	v.recordEvent(&VariantHiddenEvent{
		VariantID: v.id,
		ProductID: v.productID,
		HiddenAt:  now,
	})
	return true
}

// Restore makes a hidden variant visible again. Restoring an active
// variant is a no-op. The engine permits restoring a variant whose parent
// product is hidden; callers surface that state to the operator.
func (v *Variant) Restore(now time.Time) bool {
	if v.deletedAt == nil {
		return false
	}

	v.deletedAt = nil
	v.changes.MarkDirty(FieldDeletedAt)

	v.recordEvent(&VariantRestoredEvent{
		VariantID:  v.id,
		ProductID:  v.productID,
		RestoredAt: now,
	})
	return true
}

// SetSalePrice sets or clears the sale price.
func (v *Variant) SetSalePrice(salePriceCents *int64) error {
	if salePriceCents != nil && *salePriceCents > v.priceCents {
		return ErrInvalidSalePrice
	}

	v.salePriceCents = salePriceCents
	v.changes.MarkDirty(FieldSalePriceCents)
	return nil
}

// AdjustStock applies a signed delta to the stock quantity and records a
// StockAdjustedEvent carrying the delta and resulting balance, which the
// usecase mirrors into the inventory_log table in the same commit.
func (v *Variant) AdjustStock(delta int64, reason, actor string, now time.Time) (int64, error) {
	resulting := v.stockQuantity + delta
	if resulting < 0 {
		return v.stockQuantity, ErrStockBelowZero
	}

	v.stockQuantity = resulting
	v.changes.MarkDirty(FieldStockQuantity)

	v.recordEvent(&StockAdjustedEvent{
		VariantID:         v.id,
		ProductID:         v.productID,
		QuantityDelta:     delta,
		ResultingQuantity: resulting,
		Reason:            reason,
		Actor:             actor,
		AdjustedAt:        now,
	})

	return resulting, nil
}

// HiddenWithin reports whether the variant's deleted_at lies within
// window of anchor on either side. It approximates "hidden by the same
// cascade as the product": cascades stamp identical timestamps, while
// independently hidden variants usually fall outside the tolerance.
func (v *Variant) HiddenWithin(anchor time.Time, window time.Duration) bool {
	if v.deletedAt == nil {
		return false
	}

	diff := v.deletedAt.Sub(anchor)
	if diff < 0 {
		diff = -diff
	}
	return diff <= window
}

func (v *Variant) recordEvent(event DomainEvent) {
	v.events = append(v.events, event)
}

// ClearEvents clears recorded events after a successful commit.
func (v *Variant) ClearEvents() {
	v.events = make([]DomainEvent, 0)
}
