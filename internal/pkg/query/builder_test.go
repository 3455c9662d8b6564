package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuilderBasicSelect(t *testing.T) {
	stmt := From("products").Select("product_id", "name").Build()

	assert.Equal(t, "SELECT product_id, name FROM products", stmt.SQL)
	assert.Empty(t, stmt.Params)
}

func TestBuilderSelectStar(t *testing.T) {
	stmt := From("products").Build()

	assert.Equal(t, "SELECT * FROM products", stmt.SQL)
}

func TestBuilderWhereConditions(t *testing.T) {
	t.Run("single equality", func(t *testing.T) {
		stmt := From("product_variants").
			Select("variant_id").
			Where(Eq("product_id", "p-1")).
			Build()

		assert.Equal(t, "SELECT variant_id FROM product_variants WHERE product_id = @p0", stmt.SQL)
		assert.Equal(t, "p-1", stmt.Params["p0"])
	})

	t.Run("conditions combine with AND and number their params", func(t *testing.T) {
		stmt := From("product_variants").
			Select("variant_id").
			Where(Eq("product_id", "p-1")).
			Where(Ne("variant_id", "v-9")).
			Build()

		assert.Equal(t,
			"SELECT variant_id FROM product_variants WHERE product_id = @p0 AND variant_id != @p1",
			stmt.SQL)
		assert.Equal(t, "p-1", stmt.Params["p0"])
		assert.Equal(t, "v-9", stmt.Params["p1"])
	})

	t.Run("null checks emit no parameters", func(t *testing.T) {
		stmt := From("product_variants").
			Select("variant_id").
			Where(Eq("product_id", "p-1")).
			Where(IsNull("deleted_at")).
			Build()

		assert.Equal(t,
			"SELECT variant_id FROM product_variants WHERE product_id = @p0 AND deleted_at IS NULL",
			stmt.SQL)
		assert.Len(t, stmt.Params, 1)
	})

	t.Run("is not null", func(t *testing.T) {
		stmt := From("products").Where(IsNotNull("deleted_at")).Build()
		assert.Equal(t, "SELECT * FROM products WHERE deleted_at IS NOT NULL", stmt.SQL)
	})
}

func TestBuilderOrderLimitOffset(t *testing.T) {
	stmt := From("inventory_log").
		Select("entry_id").
		Where(Eq("variant_id", "v-1")).
		OrderBy("created_at", Desc).
		Limit(50).
		Offset(10).
		Build()

	assert.Equal(t,
		"SELECT entry_id FROM inventory_log WHERE variant_id = @p0 ORDER BY created_at DESC LIMIT @limit OFFSET @offset",
		stmt.SQL)
	assert.Equal(t, int64(50), stmt.Params["limit"])
	assert.Equal(t, int64(10), stmt.Params["offset"])
}

func TestBuilderCount(t *testing.T) {
	base := From("order_items").
		Select("order_item_id").
		Where(Eq("variant_id", "v-1")).
		OrderBy("order_item_id", Asc).
		Limit(20)

	stmt := base.Count().Build()

	assert.Equal(t, "SELECT COUNT(*) FROM order_items WHERE variant_id = @p0", stmt.SQL)
	assert.Equal(t, "v-1", stmt.Params["p0"])
	assert.NotContains(t, stmt.SQL, "LIMIT")
	assert.NotContains(t, stmt.SQL, "ORDER BY")
}

func TestBuilderImmutability(t *testing.T) {
	base := From("products").Select("product_id")
	filtered := base.Where(Eq("name", "Trail Shoe"))

	assert.Equal(t, "SELECT product_id FROM products", base.Build().SQL)
	assert.Equal(t, "SELECT product_id FROM products WHERE name = @p0", filtered.Build().SQL)
}
