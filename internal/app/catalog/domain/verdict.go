package domain

import "fmt"

// ReferenceCounts are the per-variant row counts that gate a hard delete.
// OtherActiveVariants counts the sibling variants of the same product
// that are currently visible, excluding the variant under evaluation.
type ReferenceCounts struct {
	OrderItems          int64
	CartItems           int64
	InventoryEntries    int64
	OtherActiveVariants int64
}

// VerdictDetails breaks a verdict down into its individual checks.
type VerdictDetails struct {
	HasOrderItems       bool `json:"has_order_items"`
	HasCartItems        bool `json:"has_cart_items"`
	HasInventoryHistory bool `json:"has_inventory_history"`
	IsLastActiveVariant bool `json:"is_last_active_variant"`
}

// DeleteVerdict is the result of evaluating whether a variant may be
// hard-deleted. It is advisory: the counts can go stale the moment they
// are read, so the physical delete re-evaluates inside its transaction.
type DeleteVerdict struct {
	CanDelete       bool           `json:"can_delete"`
	BlockingReasons []string       `json:"blocking_reasons"`
	Details         VerdictDetails `json:"details"`
}

// VariantVerdict tags a DeleteVerdict with the variant it describes, for
// the bulk (product-level) validation path.
type VariantVerdict struct {
	VariantID string `json:"variant_id"`
	SKU       string `json:"sku"`
	DeleteVerdict
}

// NewDeleteVerdict evaluates every blocking condition and accumulates
// human-readable reasons rather than short-circuiting, so the caller can
// present all obstacles at once.
//
// The last-active-variant guard is skipped when the variant is already
// hidden (removing a hidden variant cannot reduce the active count) and
// when the evaluation runs in cascade mode for a product-level hard
// delete, where every sibling is removed in the same operation.
func NewDeleteVerdict(counts ReferenceCounts, alreadyHidden, inCascade bool) DeleteVerdict {
	verdict := DeleteVerdict{
		BlockingReasons: []string{},
	}

	if counts.OrderItems > 0 {
		verdict.Details.HasOrderItems = true
		verdict.BlockingReasons = append(verdict.BlockingReasons,
			fmt.Sprintf("variant is referenced by %d order item(s)", counts.OrderItems))
	}

	if counts.CartItems > 0 {
		verdict.Details.HasCartItems = true
		verdict.BlockingReasons = append(verdict.BlockingReasons,
			fmt.Sprintf("variant is in %d shopping cart(s)", counts.CartItems))
	}

	if counts.InventoryEntries > 0 {
		verdict.Details.HasInventoryHistory = true
		verdict.BlockingReasons = append(verdict.BlockingReasons,
			fmt.Sprintf("variant has %d inventory history entries", counts.InventoryEntries))
	}

	if !alreadyHidden && !inCascade && counts.OtherActiveVariants == 0 {
		verdict.Details.IsLastActiveVariant = true
		verdict.BlockingReasons = append(verdict.BlockingReasons,
			"variant is the last active variant of its product")
	}

	verdict.CanDelete = len(verdict.BlockingReasons) == 0
	return verdict
}
