package testutil

import (
	"context"
	"testing"
	"time"

	"cloud.google.com/go/spanner"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/catalog-lifecycle/internal/models/m_cart_item"
	"github.com/light-bringer/catalog-lifecycle/internal/models/m_inventory_log"
	"github.com/light-bringer/catalog-lifecycle/internal/models/m_order_item"
	"github.com/light-bringer/catalog-lifecycle/internal/models/m_product"
	"github.com/light-bringer/catalog-lifecycle/internal/models/m_variant"
)

func apply(t *testing.T, client *spanner.Client, muts ...*spanner.Mutation) {
	t.Helper()
	_, err := client.Apply(context.Background(), muts)
	require.NoError(t, err, "failed to apply fixture mutations")
}

// CreateTestProduct inserts a visible product row and returns its id.
func CreateTestProduct(t *testing.T, client *spanner.Client, name string) string {
	t.Helper()

	productID := uuid.New().String()
	data := &m_product.Data{
		ProductID:   productID,
		Name:        name,
		Description: "Test product description",
		ImagePaths:  []string{"images/" + productID + ".jpg"},
	}

	apply(t, client, m_product.NewModel().InsertMut(data))
	return productID
}

// CreateHiddenTestProduct inserts a product already soft-deleted at
// deletedAt.
func CreateHiddenTestProduct(t *testing.T, client *spanner.Client, name string, deletedAt time.Time) string {
	t.Helper()

	productID := uuid.New().String()
	data := &m_product.Data{
		ProductID:   productID,
		Name:        name,
		Description: "Hidden test product",
		DeletedAt:   spanner.NullTime{Time: deletedAt, Valid: true},
	}

	apply(t, client, m_product.NewModel().InsertMut(data))
	return productID
}

// CreateTestVariant inserts a visible variant row under productID.
func CreateTestVariant(t *testing.T, client *spanner.Client, productID, sku string) string {
	t.Helper()

	variantID := uuid.New().String()
	data := &m_variant.Data{
		VariantID:     variantID,
		ProductID:     productID,
		SKU:           sku,
		PriceCents:    12900,
		StockQuantity: 10,
	}

	apply(t, client, m_variant.NewModel().InsertMut(data))
	return variantID
}

// CreateHiddenTestVariant inserts a variant already soft-deleted at
// deletedAt.
func CreateHiddenTestVariant(t *testing.T, client *spanner.Client, productID, sku string, deletedAt time.Time) string {
	t.Helper()

	variantID := uuid.New().String()
	data := &m_variant.Data{
		VariantID:     variantID,
		ProductID:     productID,
		SKU:           sku,
		PriceCents:    12900,
		StockQuantity: 10,
		DeletedAt:     spanner.NullTime{Time: deletedAt, Valid: true},
	}

	apply(t, client, m_variant.NewModel().InsertMut(data))
	return variantID
}

// CreateTestOrderItem inserts an order item referencing variantID.
func CreateTestOrderItem(t *testing.T, client *spanner.Client, variantID string) string {
	t.Helper()

	orderItemID := uuid.New().String()
	data := &m_order_item.Data{
		OrderItemID: orderItemID,
		OrderID:     uuid.New().String(),
		VariantID:   variantID,
		Quantity:    1,
	}

	apply(t, client, m_order_item.NewModel().InsertMut(data))
	return orderItemID
}

// CreateTestCartItem inserts a cart item referencing variantID.
func CreateTestCartItem(t *testing.T, client *spanner.Client, variantID string) string {
	t.Helper()

	cartItemID := uuid.New().String()
	data := &m_cart_item.Data{
		CartItemID: cartItemID,
		CartID:     uuid.New().String(),
		VariantID:  variantID,
		Quantity:   2,
	}

	apply(t, client, m_cart_item.NewModel().InsertMut(data))
	return cartItemID
}

// CreateTestInventoryEntry inserts an audit entry for variantID.
func CreateTestInventoryEntry(t *testing.T, client *spanner.Client, variantID string, delta, resulting int64) string {
	t.Helper()

	entryID := uuid.New().String()
	data := &m_inventory_log.Data{
		EntryID:           entryID,
		VariantID:         variantID,
		QuantityDelta:     delta,
		ResultingQuantity: resulting,
		Reason:            "restock",
	}

	apply(t, client, m_inventory_log.NewModel().InsertMut(data))
	return entryID
}

// GetProductRow reads a product row for verification.
func GetProductRow(t *testing.T, client *spanner.Client, productID string) *m_product.Data {
	t.Helper()

	row, err := client.Single().ReadRow(context.Background(), m_product.TableName, spanner.Key{productID}, []string{
		m_product.ProductID,
		m_product.Name,
		m_product.Description,
		m_product.ImagePaths,
		m_product.CreatedAt,
		m_product.UpdatedAt,
		m_product.DeletedAt,
	})
	require.NoError(t, err, "failed to read product row")

	var data m_product.Data
	require.NoError(t, row.ToStruct(&data), "failed to parse product row")
	return &data
}

// GetVariantRow reads a variant row for verification.
func GetVariantRow(t *testing.T, client *spanner.Client, variantID string) *m_variant.Data {
	t.Helper()

	row, err := client.Single().ReadRow(context.Background(), m_variant.TableName, spanner.Key{variantID}, []string{
		m_variant.VariantID,
		m_variant.ProductID,
		m_variant.SKU,
		m_variant.PriceCents,
		m_variant.SalePriceCents,
		m_variant.StockQuantity,
		m_variant.CreatedAt,
		m_variant.UpdatedAt,
		m_variant.DeletedAt,
	})
	require.NoError(t, err, "failed to read variant row")

	var data m_variant.Data
	require.NoError(t, row.ToStruct(&data), "failed to parse variant row")
	return &data
}

// AssertOutboxEvent verifies an outbox event of the given type exists.
func AssertOutboxEvent(t *testing.T, client *spanner.Client, eventType string) {
	t.Helper()

	stmt := spanner.Statement{
		SQL:    "SELECT event_id FROM outbox_events WHERE event_type = @eventType",
		Params: map[string]interface{}{"eventType": eventType},
	}

	iter := client.Single().Query(context.Background(), stmt)
	defer iter.Stop()

	row, err := iter.Next()
	require.NoError(t, err, "outbox event not found for type: %s", eventType)
	require.NotNil(t, row)
}
