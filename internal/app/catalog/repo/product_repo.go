package repo

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/spanner"
	"google.golang.org/grpc/codes"

	"github.com/light-bringer/catalog-lifecycle/internal/app/catalog/contracts"
	"github.com/light-bringer/catalog-lifecycle/internal/app/catalog/domain"
	"github.com/light-bringer/catalog-lifecycle/internal/models/m_product"
	"github.com/light-bringer/catalog-lifecycle/internal/pkg/clock"
)

// ProductRepo implements ProductRepository for Spanner.
type ProductRepo struct {
	client *spanner.Client
	model  *m_product.Model
	clock  clock.Clock
}

// NewProductRepo creates a new ProductRepo.
func NewProductRepo(client *spanner.Client, clk clock.Clock) contracts.ProductRepository {
	return &ProductRepo{
		client: client,
		model:  m_product.NewModel(),
		clock:  clk,
	}
}

// InsertMut creates a mutation for inserting a new product.
func (r *ProductRepo) InsertMut(product *domain.Product) *spanner.Mutation {
	return r.model.InsertMut(r.domainToData(product))
}

// UpdateMut creates a mutation for updating a product (only dirty fields).
func (r *ProductRepo) UpdateMut(product *domain.Product) *spanner.Mutation {
	changes := product.Changes()
	if !changes.HasChanges() {
		return nil
	}

	updates := make(map[string]interface{})

	if changes.Dirty(domain.FieldName) {
		updates[m_product.Name] = product.Name()
	}

	if changes.Dirty(domain.FieldDescription) {
		updates[m_product.Description] = product.Description()
	}

	if changes.Dirty(domain.FieldImagePaths) {
		updates[m_product.ImagePaths] = product.ImagePaths()
	}

	if changes.Dirty(domain.FieldDeletedAt) {
		if deletedAt := product.DeletedAt(); deletedAt != nil {
			updates[m_product.DeletedAt] = *deletedAt
		} else {
			updates[m_product.DeletedAt] = spanner.NullTime{}
		}
	}

	if len(updates) == 0 {
		return nil
	}

	return r.model.UpdateMut(product.ID(), updates)
}

// DeleteMut creates a mutation that physically removes the product row.
func (r *ProductRepo) DeleteMut(productID string) *spanner.Mutation {
	return r.model.DeleteMut(productID)
}

// GetByID retrieves a product by ID, reconstructing the domain aggregate.
func (r *ProductRepo) GetByID(ctx context.Context, productID string) (*domain.Product, error) {
	row, err := r.client.Single().ReadRow(ctx, m_product.TableName, spanner.Key{productID}, []string{
		m_product.ProductID,
		m_product.Name,
		m_product.Description,
		m_product.ImagePaths,
		m_product.CreatedAt,
		m_product.UpdatedAt,
		m_product.DeletedAt,
	})
	if err != nil {
		if spanner.ErrCode(err) == codes.NotFound {
			return nil, domain.ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to read product: %w", err)
	}

	var data m_product.Data
	if err := row.ToStruct(&data); err != nil {
		return nil, fmt.Errorf("failed to parse product: %w", err)
	}

	return r.dataToDomain(&data), nil
}

// Exists checks if a product exists.
func (r *ProductRepo) Exists(ctx context.Context, productID string) (bool, error) {
	_, err := r.client.Single().ReadRow(ctx, m_product.TableName, spanner.Key{productID}, []string{m_product.ProductID})
	if err != nil {
		if spanner.ErrCode(err) == codes.NotFound {
			return false, nil
		}
		return false, fmt.Errorf("failed to check product existence: %w", err)
	}
	return true, nil
}

// domainToData converts a domain Product to database Data.
func (r *ProductRepo) domainToData(product *domain.Product) *m_product.Data {
	data := &m_product.Data{
		ProductID:   product.ID(),
		Name:        product.Name(),
		Description: product.Description(),
		ImagePaths:  product.ImagePaths(),
		CreatedAt:   product.CreatedAt(),
		UpdatedAt:   product.UpdatedAt(),
	}

	if deletedAt := product.DeletedAt(); deletedAt != nil {
		data.DeletedAt = spanner.NullTime{Time: *deletedAt, Valid: true}
	}

	return data
}

// dataToDomain converts database Data to a domain Product.
func (r *ProductRepo) dataToDomain(data *m_product.Data) *domain.Product {
	var deletedAt *time.Time
	if data.DeletedAt.Valid {
		deletedAt = &data.DeletedAt.Time
	}

	return domain.ReconstructProduct(
		data.ProductID,
		data.Name,
		data.Description,
		data.ImagePaths,
		data.CreatedAt,
		data.UpdatedAt,
		deletedAt,
		r.clock,
	)
}
