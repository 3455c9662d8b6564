package domain

import (
	"time"

	"github.com/light-bringer/catalog-lifecycle/internal/pkg/clock"
)

// Field names for change tracking
const (
	FieldName        = "name"
	FieldDescription = "description"
	FieldImagePaths  = "image_paths"
	FieldDeletedAt   = "deleted_at"
)

// Product is the aggregate root for a catalog item. Its lifecycle is
// driven entirely by the nullable deleted_at timestamp: nil means the
// product is visible, a value means it was hidden at that instant. The
// timestamp doubles as the anchor of the restore proximity window, so it
// is never refreshed once set.
type Product struct {
	id          string
	name        string
	description string
	imagePaths  []string
	createdAt   time.Time
	updatedAt   time.Time
	deletedAt   *time.Time

	clock clock.Clock

	// Change tracking for column-level repository updates
	changes *ChangeTracker

	// Domain events to be written to the outbox
	events []DomainEvent
}

// NewProduct creates a new Product aggregate.
func NewProduct(id, name, description string, imagePaths []string, now time.Time, clk clock.Clock) (*Product, error) {
	if name == "" {
		return nil, ErrEmptyName
	}

	p := &Product{
		id:          id,
		name:        name,
		description: description,
		imagePaths:  imagePaths,
		createdAt:   now,
		updatedAt:   now,
		clock:       clk,
		changes:     NewChangeTracker(),
		events:      make([]DomainEvent, 0),
	}

	p.changes.MarkDirty(FieldName)
	p.changes.MarkDirty(FieldDescription)
	p.changes.MarkDirty(FieldImagePaths)

	return p, nil
}

// ReconstructProduct reconstitutes a Product loaded from the store.
func ReconstructProduct(
	id, name, description string,
	imagePaths []string,
	createdAt, updatedAt time.Time,
	deletedAt *time.Time,
	clk clock.Clock,
) *Product {
	return &Product{
		id:          id,
		name:        name,
		description: description,
		imagePaths:  imagePaths,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
		deletedAt:   deletedAt,
		clock:       clk,
		changes:     NewChangeTracker(),
		events:      make([]DomainEvent, 0),
	}
}

// Getters
func (p *Product) ID() string                  { return p.id }
func (p *Product) Name() string                { return p.name }
func (p *Product) Description() string         { return p.description }
func (p *Product) ImagePaths() []string        { return p.imagePaths }
func (p *Product) CreatedAt() time.Time        { return p.createdAt }
func (p *Product) UpdatedAt() time.Time        { return p.updatedAt }
func (p *Product) DeletedAt() *time.Time       { return p.deletedAt }
func (p *Product) Changes() *ChangeTracker     { return p.changes }
func (p *Product) DomainEvents() []DomainEvent { return p.events }

// IsDeleted reports whether the product is hidden.
func (p *Product) IsDeleted() bool {
	return p.deletedAt != nil
}

// SoftDelete hides the product at now. Hiding an already-hidden product
// is a no-op that preserves the original timestamp; refreshing it would
// corrupt the proximity grouping of the cascade that hid it.
// The cascade event covering the variants hidden alongside the product
// is recorded separately via RecordHiddenCascade.
func (p *Product) SoftDelete(now time.Time) bool {
	if p.deletedAt != nil {
		return false
	}

	ts := now
	p.deletedAt = &ts
	p.changes.MarkDirty(FieldDeletedAt)
	return true
}

// Restore makes a hidden product visible again.
func (p *Product) Restore() bool {
	if p.deletedAt == nil {
		return false
	}

	p.deletedAt = nil
	p.changes.MarkDirty(FieldDeletedAt)
	return true
}

// RecordHiddenCascade records the product-hidden event once the set of
// variants hidden in the same batch is known.
func (p *Product) RecordHiddenCascade(hiddenVariantIDs []string, hiddenAt time.Time) {
	p.recordEvent(&ProductHiddenEvent{
		ProductID:      p.id,
		HiddenVariants: hiddenVariantIDs,
		HiddenAt:       hiddenAt,
	})
}

// RecordRestored records the product-restored event with the variants
// brought back by the restore.
func (p *Product) RecordRestored(restoredVariantIDs []string, restoredAt time.Time) {
	p.recordEvent(&ProductRestoredEvent{
		ProductID:        p.id,
		RestoredVariants: restoredVariantIDs,
		RestoredAt:       restoredAt,
	})
}

func (p *Product) recordEvent(event DomainEvent) {
	p.events = append(p.events, event)
}

// ClearEvents clears recorded events after a successful commit.
func (p *Product) ClearEvents() {
	p.events = make([]DomainEvent, 0)
}
