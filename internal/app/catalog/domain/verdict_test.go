package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDeleteVerdict(t *testing.T) {
	t.Run("no references and siblings remain: deletable", func(t *testing.T) {
		verdict := NewDeleteVerdict(ReferenceCounts{OtherActiveVariants: 2}, false, false)
		assert.True(t, verdict.CanDelete)
		assert.Empty(t, verdict.BlockingReasons)
		assert.Equal(t, VerdictDetails{}, verdict.Details)
	})

	t.Run("order items block", func(t *testing.T) {
		verdict := NewDeleteVerdict(ReferenceCounts{OrderItems: 3, OtherActiveVariants: 1}, false, false)
		assert.False(t, verdict.CanDelete)
		require.Len(t, verdict.BlockingReasons, 1)
		assert.Equal(t, "variant is referenced by 3 order item(s)", verdict.BlockingReasons[0])
		assert.True(t, verdict.Details.HasOrderItems)
	})

	t.Run("cart items block", func(t *testing.T) {
		verdict := NewDeleteVerdict(ReferenceCounts{CartItems: 2, OtherActiveVariants: 1}, false, false)
		assert.False(t, verdict.CanDelete)
		require.Len(t, verdict.BlockingReasons, 1)
		assert.Equal(t, "variant is in 2 shopping cart(s)", verdict.BlockingReasons[0])
		assert.True(t, verdict.Details.HasCartItems)
	})

	t.Run("inventory history blocks", func(t *testing.T) {
		verdict := NewDeleteVerdict(ReferenceCounts{InventoryEntries: 7, OtherActiveVariants: 1}, false, false)
		assert.False(t, verdict.CanDelete)
		require.Len(t, verdict.BlockingReasons, 1)
		assert.Equal(t, "variant has 7 inventory history entries", verdict.BlockingReasons[0])
		assert.True(t, verdict.Details.HasInventoryHistory)
	})

	t.Run("last active variant blocks", func(t *testing.T) {
		verdict := NewDeleteVerdict(ReferenceCounts{OtherActiveVariants: 0}, false, false)
		assert.False(t, verdict.CanDelete)
		require.Len(t, verdict.BlockingReasons, 1)
		assert.Equal(t, "variant is the last active variant of its product", verdict.BlockingReasons[0])
		assert.True(t, verdict.Details.IsLastActiveVariant)
	})

	t.Run("every blocker accumulates, none short-circuits", func(t *testing.T) {
		verdict := NewDeleteVerdict(ReferenceCounts{
			OrderItems:          1,
			CartItems:           4,
			InventoryEntries:    12,
			OtherActiveVariants: 0,
		}, false, false)

		assert.False(t, verdict.CanDelete)
		assert.Equal(t, []string{
			"variant is referenced by 1 order item(s)",
			"variant is in 4 shopping cart(s)",
			"variant has 12 inventory history entries",
			"variant is the last active variant of its product",
		}, verdict.BlockingReasons)
		assert.Equal(t, VerdictDetails{
			HasOrderItems:       true,
			HasCartItems:        true,
			HasInventoryHistory: true,
			IsLastActiveVariant: true,
		}, verdict.Details)
	})

	t.Run("already-hidden variant skips the last-active guard", func(t *testing.T) {
		verdict := NewDeleteVerdict(ReferenceCounts{OtherActiveVariants: 0}, true, false)
		assert.True(t, verdict.CanDelete)
		assert.False(t, verdict.Details.IsLastActiveVariant)
	})

	t.Run("cascade mode skips the last-active guard", func(t *testing.T) {
		verdict := NewDeleteVerdict(ReferenceCounts{OtherActiveVariants: 0}, false, true)
		assert.True(t, verdict.CanDelete)
		assert.False(t, verdict.Details.IsLastActiveVariant)
	})

	t.Run("cascade mode still honors reference blockers", func(t *testing.T) {
		verdict := NewDeleteVerdict(ReferenceCounts{OrderItems: 2, OtherActiveVariants: 0}, false, true)
		assert.False(t, verdict.CanDelete)
		assert.Equal(t, []string{"variant is referenced by 2 order item(s)"}, verdict.BlockingReasons)
	})
}

func TestPreconditionFailedError(t *testing.T) {
	err := &PreconditionFailedError{
		Verdicts: []VariantVerdict{
			{
				VariantID: "v-1",
				SKU:       "SKU-1",
				DeleteVerdict: DeleteVerdict{
					BlockingReasons: []string{"variant is referenced by 1 order item(s)"},
				},
			},
			{
				VariantID: "v-2",
				SKU:       "SKU-2",
				DeleteVerdict: DeleteVerdict{
					BlockingReasons: []string{
						"variant is in 2 shopping cart(s)",
						"variant has 5 inventory history entries",
					},
				},
			},
		},
	}

	assert.Equal(t, []string{
		"variant is referenced by 1 order item(s)",
		"variant is in 2 shopping cart(s)",
		"variant has 5 inventory history entries",
	}, err.Reasons())
	assert.Contains(t, err.Error(), "hard delete blocked")
	assert.Contains(t, err.Error(), "shopping cart")
}
