package e2e

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/catalog-lifecycle/internal/app/catalog/domain"
	"github.com/light-bringer/catalog-lifecycle/internal/app/catalog/usecases/adjust_stock"
	"github.com/light-bringer/catalog-lifecycle/internal/app/catalog/usecases/soft_delete_variant"
	"github.com/light-bringer/catalog-lifecycle/tests/testutil"
)

func TestAdjustStockWritesAuditTrail(t *testing.T) {
	services, cleanup := setupTest(t)
	defer cleanup()

	ctx := context.Background()
	productID := testutil.CreateTestProduct(t, services.Client, "Trail Shoe")
	variantID := testutil.CreateTestVariant(t, services.Client, productID, "SKU-ST-1")

	first, err := services.AdjustStock.Execute(ctx, &adjust_stock.Request{
		VariantID:     variantID,
		QuantityDelta: 15,
		Reason:        "restock",
		Actor:         "ops@example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(25), first.ResultingQuantity)

	second, err := services.AdjustStock.Execute(ctx, &adjust_stock.Request{
		VariantID:     variantID,
		QuantityDelta: -5,
		Reason:        "order",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(20), second.ResultingQuantity)

	assert.Equal(t, int64(20), testutil.GetVariantRow(t, services.Client, variantID).StockQuantity)
	testutil.AssertRowCount(t, services.Client, "inventory_log", 2)
	testutil.AssertOutboxEvent(t, services.Client, "variant.stock.adjusted")
}

func TestAdjustStockRejectsNegativeResult(t *testing.T) {
	services, cleanup := setupTest(t)
	defer cleanup()

	ctx := context.Background()
	productID := testutil.CreateTestProduct(t, services.Client, "Trail Shoe")
	variantID := testutil.CreateTestVariant(t, services.Client, productID, "SKU-ST-2")

	_, err := services.AdjustStock.Execute(ctx, &adjust_stock.Request{
		VariantID:     variantID,
		QuantityDelta: -11,
		Reason:        "order",
	})
	assert.ErrorIs(t, err, domain.ErrStockBelowZero)

	// Neither the row nor the audit trail changed.
	assert.Equal(t, int64(10), testutil.GetVariantRow(t, services.Client, variantID).StockQuantity)
	testutil.AssertRowCount(t, services.Client, "inventory_log", 0)
}

func TestAdjustStockOnHiddenVariant(t *testing.T) {
	services, cleanup := setupTest(t)
	defer cleanup()

	ctx := context.Background()
	productID := testutil.CreateTestProduct(t, services.Client, "Trail Shoe")
	variantID := testutil.CreateTestVariant(t, services.Client, productID, "SKU-ST-3")

	_, err := services.SoftDeleteVariant.Execute(ctx, &soft_delete_variant.Request{VariantID: variantID})
	require.NoError(t, err)

	// Receiving and returns keep moving stock while a variant is off sale.
	result, err := services.AdjustStock.Execute(ctx, &adjust_stock.Request{
		VariantID:     variantID,
		QuantityDelta: 3,
		Reason:        "return",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(13), result.ResultingQuantity)

	// The audit entry blocks any future hard delete of this variant.
	testutil.AssertRowCount(t, services.Client, "inventory_log", 1)
}
