package get_product

import (
	"context"

	"github.com/light-bringer/catalog-lifecycle/internal/app/catalog/contracts"
)

// Request contains the product ID to retrieve.
type Request struct {
	ProductID string
}

// Query handles the get product read path.
type Query struct {
	readModel contracts.ReadModel
}

// NewQuery creates a new get product query.
func NewQuery(readModel contracts.ReadModel) *Query {
	return &Query{
		readModel: readModel,
	}
}

// Execute retrieves a product projection with variants and counts.
func (q *Query) Execute(ctx context.Context, req *Request) (*contracts.ProductDTO, error) {
	return q.readModel.GetProductByID(ctx, req.ProductID)
}
