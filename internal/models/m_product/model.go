package m_product

import (
	"cloud.google.com/go/spanner"
)

// Model builds type-safe mutations for the products table.
type Model struct{}

// NewModel creates a Model instance.
func NewModel() *Model {
	return &Model{}
}

// InsertMut creates a mutation for inserting a product row.
func (m *Model) InsertMut(data *Data) *spanner.Mutation {
	return spanner.InsertOrUpdate(
		TableName,
		[]string{
			ProductID,
			Name,
			Description,
			ImagePaths,
			CreatedAt,
			UpdatedAt,
			DeletedAt,
		},
		[]interface{}{
			data.ProductID,
			data.Name,
			data.Description,
			data.ImagePaths,
			spanner.CommitTimestamp,
			spanner.CommitTimestamp,
			data.DeletedAt,
		},
	)
}

// UpdateMut creates a mutation updating the given fields of a product.
// updated_at is always refreshed alongside the caller's columns.
func (m *Model) UpdateMut(productID string, updates map[string]interface{}) *spanner.Mutation {
	if len(updates) == 0 {
		return nil
	}

	updates[UpdatedAt] = spanner.CommitTimestamp

	columns := make([]string, 0, len(updates)+1)
	values := make([]interface{}, 0, len(updates)+1)

	columns = append(columns, ProductID)
	values = append(values, productID)

	for col, val := range updates {
		columns = append(columns, col)
		values = append(values, val)
	}

	return spanner.Update(TableName, columns, values)
}

// DeleteMut creates a mutation that physically removes a product row.
// Variant rows referencing it are removed by the cascading foreign key.
func (m *Model) DeleteMut(productID string) *spanner.Mutation {
	return spanner.Delete(TableName, spanner.Key{productID})
}
