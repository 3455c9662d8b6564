//go:build integration

package integration

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/catalog-lifecycle/internal/app/catalog/domain"
	"github.com/light-bringer/catalog-lifecycle/internal/app/catalog/repo"
	"github.com/light-bringer/catalog-lifecycle/tests/testutil"
)

func TestReadModel_GetProductByID(t *testing.T) {
	client, cleanup := testutil.SetupSpannerTest(t)
	defer cleanup()

	ctx := context.Background()
	readModel := repo.NewReadModel(client)

	productID := testutil.CreateTestProduct(t, client, "Trail Shoe")
	testutil.CreateTestVariant(t, client, productID, "SKU-RM-1")
	testutil.CreateTestVariant(t, client, productID, "SKU-RM-2")
	testutil.CreateHiddenTestVariant(t, client, productID, "SKU-RM-3", time.Now().UTC())

	dto, err := readModel.GetProductByID(ctx, productID)
	require.NoError(t, err)

	assert.Equal(t, productID, dto.ProductID)
	assert.Equal(t, "Trail Shoe", dto.Name)
	assert.False(t, dto.Hidden)
	assert.Equal(t, 3, dto.TotalVariants)
	assert.Equal(t, 2, dto.ActiveVariants)
	assert.Equal(t, 1, dto.HiddenVariants)
	require.Len(t, dto.Variants, 3)

	hidden := 0
	for _, v := range dto.Variants {
		if v.Hidden {
			hidden++
			assert.NotNil(t, v.DeletedAt)
		}
	}
	assert.Equal(t, 1, hidden)
}

func TestReadModel_GetProductByID_NotFound(t *testing.T) {
	client, cleanup := testutil.SetupSpannerTest(t)
	defer cleanup()

	readModel := repo.NewReadModel(client)

	_, err := readModel.GetProductByID(context.Background(), "missing-product")
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}
