package e2e

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/catalog-lifecycle/internal/app/catalog/domain"
	"github.com/light-bringer/catalog-lifecycle/internal/app/catalog/usecases/restore_product"
	"github.com/light-bringer/catalog-lifecycle/internal/app/catalog/usecases/restore_variant"
	"github.com/light-bringer/catalog-lifecycle/internal/app/catalog/usecases/soft_delete_product"
	"github.com/light-bringer/catalog-lifecycle/internal/app/catalog/usecases/soft_delete_variant"
	"github.com/light-bringer/catalog-lifecycle/tests/testutil"
)

func TestProductCascadeHideStampsOneTimestamp(t *testing.T) {
	services, cleanup := setupTest(t)
	defer cleanup()

	ctx := context.Background()
	productID := testutil.CreateTestProduct(t, services.Client, "Trail Shoe")
	v1 := testutil.CreateTestVariant(t, services.Client, productID, "SKU-A-1")
	v2 := testutil.CreateTestVariant(t, services.Client, productID, "SKU-A-2")
	v3 := testutil.CreateTestVariant(t, services.Client, productID, "SKU-A-3")

	result, err := services.SoftDeleteProduct.Execute(ctx, &soft_delete_product.Request{ProductID: productID})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{v1, v2, v3}, result.HiddenVariantIDs)

	productRow := testutil.GetProductRow(t, services.Client, productID)
	require.True(t, productRow.DeletedAt.Valid)

	for _, id := range []string{v1, v2, v3} {
		row := testutil.GetVariantRow(t, services.Client, id)
		require.True(t, row.DeletedAt.Valid)
		assert.True(t, row.DeletedAt.Time.Equal(productRow.DeletedAt.Time),
			"cascade must stamp the product's timestamp on every variant")
	}

	testutil.AssertOutboxEvent(t, services.Client, "product.hidden")
	testutil.AssertOutboxEvent(t, services.Client, "variant.hidden")
}

func TestProductCascadeHideIsIdempotent(t *testing.T) {
	services, cleanup := setupTest(t)
	defer cleanup()

	ctx := context.Background()
	productID := testutil.CreateTestProduct(t, services.Client, "Trail Shoe")
	testutil.CreateTestVariant(t, services.Client, productID, "SKU-B-1")

	first, err := services.SoftDeleteProduct.Execute(ctx, &soft_delete_product.Request{ProductID: productID})
	require.NoError(t, err)
	assert.False(t, first.AlreadyHidden)

	second, err := services.SoftDeleteProduct.Execute(ctx, &soft_delete_product.Request{ProductID: productID})
	require.NoError(t, err)
	assert.True(t, second.AlreadyHidden)
	assert.True(t, second.HiddenAt.Equal(first.HiddenAt), "repeat hide must keep the original timestamp")
}

func TestProductCascadeHideRestoreRoundTrip(t *testing.T) {
	services, cleanup := setupTest(t)
	defer cleanup()

	ctx := context.Background()
	productID := testutil.CreateTestProduct(t, services.Client, "Trail Shoe")
	v1 := testutil.CreateTestVariant(t, services.Client, productID, "SKU-H-1")
	v2 := testutil.CreateTestVariant(t, services.Client, productID, "SKU-H-2")

	_, err := services.SoftDeleteProduct.Execute(ctx, &soft_delete_product.Request{ProductID: productID})
	require.NoError(t, err)

	// Default restore brings back exactly the cascade-hidden set, even
	// though no variant is active at this point.
	result, err := services.RestoreProduct.Execute(ctx, &restore_product.Request{ProductID: productID})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{v1, v2}, result.RestoredVariantIDs)
	assert.Equal(t, 2, result.ActiveVariants)
	assert.Equal(t, 0, result.HiddenVariants)

	assert.False(t, testutil.GetProductRow(t, services.Client, productID).DeletedAt.Valid)
	assert.False(t, testutil.GetVariantRow(t, services.Client, v1).DeletedAt.Valid)
	assert.False(t, testutil.GetVariantRow(t, services.Client, v2).DeletedAt.Valid)

	testutil.AssertOutboxEvent(t, services.Client, "product.restored")
}

func TestProductRestoreSkipsIndividuallyHiddenVariants(t *testing.T) {
	services, mockClock, cleanup := setupTestWithMockClock(t)
	defer cleanup()

	ctx := context.Background()
	productID := testutil.CreateTestProduct(t, services.Client, "Trail Shoe")
	individually := testutil.CreateTestVariant(t, services.Client, productID, "SKU-C-1")
	cascade1 := testutil.CreateTestVariant(t, services.Client, productID, "SKU-C-2")
	cascade2 := testutil.CreateTestVariant(t, services.Client, productID, "SKU-C-3")

	// An operator hides one variant, then much later the whole product.
	_, err := services.SoftDeleteVariant.Execute(ctx, &soft_delete_variant.Request{VariantID: individually})
	require.NoError(t, err)

	mockClock.Advance(2 * time.Hour)
	_, err = services.SoftDeleteProduct.Execute(ctx, &soft_delete_product.Request{ProductID: productID})
	require.NoError(t, err)

	mockClock.Advance(30 * time.Minute)
	result, err := services.RestoreProduct.Execute(ctx, &restore_product.Request{ProductID: productID})
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{cascade1, cascade2}, result.RestoredVariantIDs)
	assert.Equal(t, 3, result.TotalVariants)
	assert.Equal(t, 2, result.ActiveVariants)
	assert.Equal(t, 1, result.HiddenVariants)

	assert.False(t, testutil.GetProductRow(t, services.Client, productID).DeletedAt.Valid)
	assert.True(t, testutil.GetVariantRow(t, services.Client, individually).DeletedAt.Valid,
		"individually hidden variant must stay hidden")
	assert.False(t, testutil.GetVariantRow(t, services.Client, cascade1).DeletedAt.Valid)
}

func TestProductRestoreAllVariants(t *testing.T) {
	services, mockClock, cleanup := setupTestWithMockClock(t)
	defer cleanup()

	ctx := context.Background()
	productID := testutil.CreateTestProduct(t, services.Client, "Trail Shoe")
	first := testutil.CreateTestVariant(t, services.Client, productID, "SKU-D-1")
	second := testutil.CreateTestVariant(t, services.Client, productID, "SKU-D-2")

	// Every variant goes dark individually, long before the product does,
	// so the default restore would bring back nothing.
	_, err := services.SoftDeleteVariant.Execute(ctx, &soft_delete_variant.Request{VariantID: first})
	require.NoError(t, err)
	_, err = services.SoftDeleteVariant.Execute(ctx, &soft_delete_variant.Request{VariantID: second})
	require.NoError(t, err)

	mockClock.Advance(time.Hour)
	_, err = services.SoftDeleteProduct.Execute(ctx, &soft_delete_product.Request{ProductID: productID})
	require.NoError(t, err)

	// Default restore refuses: it would leave a live product with zero
	// active variants.
	_, err = services.RestoreProduct.Execute(ctx, &restore_product.Request{ProductID: productID})
	var cannotRestore *domain.CannotRestoreError
	require.ErrorAs(t, err, &cannotRestore)
	assert.Contains(t, cannotRestore.Message, "restoreAllVariants=true")

	// Nothing was mutated by the failed attempt.
	assert.True(t, testutil.GetProductRow(t, services.Client, productID).DeletedAt.Valid)
	assert.True(t, testutil.GetVariantRow(t, services.Client, first).DeletedAt.Valid)

	result, err := services.RestoreProduct.Execute(ctx, &restore_product.Request{
		ProductID:          productID,
		RestoreAllVariants: true,
	})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{first, second}, result.RestoredVariantIDs)
	assert.Equal(t, 0, result.HiddenVariants)
}

func TestProductRestorePreconditions(t *testing.T) {
	services, cleanup := setupTest(t)
	defer cleanup()

	ctx := context.Background()

	t.Run("visible product", func(t *testing.T) {
		productID := testutil.CreateTestProduct(t, services.Client, "Visible")
		testutil.CreateTestVariant(t, services.Client, productID, "SKU-E-1")

		_, err := services.RestoreProduct.Execute(ctx, &restore_product.Request{ProductID: productID})
		assert.ErrorIs(t, err, domain.ErrProductNotDeleted)
	})

	t.Run("no variant rows", func(t *testing.T) {
		productID := testutil.CreateHiddenTestProduct(t, services.Client, "Empty", time.Now().UTC())

		_, err := services.RestoreProduct.Execute(ctx, &restore_product.Request{ProductID: productID})
		var cannotRestore *domain.CannotRestoreError
		require.ErrorAs(t, err, &cannotRestore)
		assert.Contains(t, cannotRestore.Message, "no variants exist")
	})

	t.Run("missing product", func(t *testing.T) {
		_, err := services.RestoreProduct.Execute(ctx, &restore_product.Request{ProductID: "missing"})
		assert.ErrorIs(t, err, domain.ErrProductNotFound)
	})
}

func TestVariantSoftDeleteRestoreRoundTrip(t *testing.T) {
	services, cleanup := setupTest(t)
	defer cleanup()

	ctx := context.Background()
	productID := testutil.CreateTestProduct(t, services.Client, "Trail Shoe")
	variantID := testutil.CreateTestVariant(t, services.Client, productID, "SKU-F-1")

	hidden, err := services.SoftDeleteVariant.Execute(ctx, &soft_delete_variant.Request{VariantID: variantID})
	require.NoError(t, err)
	assert.Equal(t, productID, hidden.ProductID)
	assert.False(t, hidden.AlreadyHidden)
	assert.True(t, testutil.GetVariantRow(t, services.Client, variantID).DeletedAt.Valid)

	// Hiding again is a no-op that reports the original timestamp.
	again, err := services.SoftDeleteVariant.Execute(ctx, &soft_delete_variant.Request{VariantID: variantID})
	require.NoError(t, err)
	assert.True(t, again.AlreadyHidden)
	assert.True(t, again.HiddenAt.Equal(hidden.HiddenAt))

	restored, err := services.RestoreVariant.Execute(ctx, &restore_variant.Request{VariantID: variantID})
	require.NoError(t, err)
	assert.False(t, restored.AlreadyVisible)
	assert.False(t, restored.ParentHidden)
	assert.False(t, testutil.GetVariantRow(t, services.Client, variantID).DeletedAt.Valid)

	testutil.AssertOutboxEvent(t, services.Client, "variant.restored")
}

func TestVariantRestoreUnderHiddenParent(t *testing.T) {
	services, cleanup := setupTest(t)
	defer cleanup()

	ctx := context.Background()
	productID := testutil.CreateTestProduct(t, services.Client, "Trail Shoe")
	variantID := testutil.CreateTestVariant(t, services.Client, productID, "SKU-G-1")

	_, err := services.SoftDeleteProduct.Execute(ctx, &soft_delete_product.Request{ProductID: productID})
	require.NoError(t, err)

	result, err := services.RestoreVariant.Execute(ctx, &restore_variant.Request{VariantID: variantID})
	require.NoError(t, err)
	assert.True(t, result.ParentHidden, "caller must learn the parent is still hidden")
	assert.False(t, testutil.GetVariantRow(t, services.Client, variantID).DeletedAt.Valid)
	assert.True(t, testutil.GetProductRow(t, services.Client, productID).DeletedAt.Valid)
}
