package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Domain errors as sentinel values
var (
	// Lookup errors
	ErrProductNotFound = errors.New("product not found")
	ErrVariantNotFound = errors.New("variant not found")

	// Field validation errors
	ErrEmptyName        = errors.New("product name cannot be empty")
	ErrEmptySKU         = errors.New("variant sku cannot be empty")
	ErrInvalidPrice     = errors.New("variant price must be positive")
	ErrInvalidSalePrice = errors.New("sale price cannot exceed the regular price")
	ErrNegativeStock    = errors.New("stock quantity cannot be negative")

	// Lifecycle errors
	ErrProductNotDeleted = errors.New("product is not hidden")
	ErrStockBelowZero    = errors.New("stock adjustment would drop quantity below zero")
)

// PreconditionFailedError rejects a hard delete while blocking references
// exist. It carries the complete per-variant breakdown so callers can
// present every obstacle at once; the reasons are never summarized.
type PreconditionFailedError struct {
	Verdicts []VariantVerdict
}

func (e *PreconditionFailedError) Error() string {
	reasons := e.Reasons()
	return fmt.Sprintf("hard delete blocked: %s", strings.Join(reasons, "; "))
}

// Reasons flattens the blocking reasons across all checked variants.
func (e *PreconditionFailedError) Reasons() []string {
	var reasons []string
	for _, v := range e.Verdicts {
		reasons = append(reasons, v.BlockingReasons...)
	}
	return reasons
}

// CannotRestoreError rejects a product restore whose preconditions do not
// hold. Message is written for the admin operator and states which flag
// to set when the failure is recoverable.
type CannotRestoreError struct {
	ProductID string
	Message   string
}

func (e *CannotRestoreError) Error() string {
	return fmt.Sprintf("cannot restore product %s: %s", e.ProductID, e.Message)
}
