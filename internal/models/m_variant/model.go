package m_variant

import (
	"cloud.google.com/go/spanner"
)

// Model builds type-safe mutations for the product_variants table.
type Model struct{}

// NewModel creates a Model instance.
func NewModel() *Model {
	return &Model{}
}

// InsertMut creates a mutation for inserting a variant row.
func (m *Model) InsertMut(data *Data) *spanner.Mutation {
	return spanner.InsertOrUpdate(
		TableName,
		[]string{
			VariantID,
			ProductID,
			SKU,
			PriceCents,
			SalePriceCents,
			StockQuantity,
			CreatedAt,
			UpdatedAt,
			DeletedAt,
		},
		[]interface{}{
			data.VariantID,
			data.ProductID,
			data.SKU,
			data.PriceCents,
			data.SalePriceCents,
			data.StockQuantity,
			spanner.CommitTimestamp,
			spanner.CommitTimestamp,
			data.DeletedAt,
		},
	)
}

// UpdateMut creates a mutation updating the given fields of a variant.
func (m *Model) UpdateMut(variantID string, updates map[string]interface{}) *spanner.Mutation {
	if len(updates) == 0 {
		return nil
	}

	updates[UpdatedAt] = spanner.CommitTimestamp

	columns := make([]string, 0, len(updates)+1)
	values := make([]interface{}, 0, len(updates)+1)

	columns = append(columns, VariantID)
	values = append(values, variantID)

	for col, val := range updates {
		columns = append(columns, col)
		values = append(values, val)
	}

	return spanner.Update(TableName, columns, values)
}

// DeleteMut creates a mutation that physically removes a variant row.
func (m *Model) DeleteMut(variantID string) *spanner.Mutation {
	return spanner.Delete(TableName, spanner.Key{variantID})
}
