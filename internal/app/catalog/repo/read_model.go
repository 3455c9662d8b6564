package repo

import (
	"context"
	"fmt"

	"cloud.google.com/go/spanner"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"

	"github.com/light-bringer/catalog-lifecycle/internal/app/catalog/contracts"
	"github.com/light-bringer/catalog-lifecycle/internal/app/catalog/domain"
	"github.com/light-bringer/catalog-lifecycle/internal/models/m_product"
	"github.com/light-bringer/catalog-lifecycle/internal/models/m_variant"
	"github.com/light-bringer/catalog-lifecycle/internal/pkg/query"
)

// ReadModelImpl implements ReadModel for Spanner.
type ReadModelImpl struct {
	client *spanner.Client
}

// NewReadModel creates a new ReadModel implementation.
func NewReadModel(client *spanner.Client) contracts.ReadModel {
	return &ReadModelImpl{
		client: client,
	}
}

// GetProductByID retrieves a product projection with all its variants
// and per-state counts. The product row and variant rows are read from
// one read-only transaction so the counts are mutually consistent.
func (rm *ReadModelImpl) GetProductByID(ctx context.Context, productID string) (*contracts.ProductDTO, error) {
	txn := rm.client.ReadOnlyTransaction()
	defer txn.Close()

	row, err := txn.ReadRow(ctx, m_product.TableName, spanner.Key{productID}, []string{
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

	dto := &contracts.ProductDTO{
		ProductID:   data.ProductID,
		Name:        data.Name,
		Description: data.Description,
		ImagePaths:  data.ImagePaths,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
		Variants:    []contracts.VariantDTO{},
	}
	if data.DeletedAt.Valid {
		dto.Hidden = true
		dto.DeletedAt = &data.DeletedAt.Time
	}

	stmt := query.From(m_variant.TableName).
		Select(
			m_variant.VariantID,
			m_variant.ProductID,
			m_variant.SKU,
			m_variant.PriceCents,
			m_variant.SalePriceCents,
			m_variant.StockQuantity,
			m_variant.CreatedAt,
			m_variant.UpdatedAt,
			m_variant.DeletedAt,
		).
		Where(query.Eq(m_variant.ProductID, productID)).
		OrderBy(m_variant.CreatedAt, query.Asc).
		Build()

	iter := txn.Query(ctx, stmt)
	defer iter.Stop()

	for {
		row, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate variants: %w", err)
		}

		var vdata m_variant.Data
		if err := row.ToStruct(&vdata); err != nil {
			return nil, fmt.Errorf("failed to parse variant: %w", err)
		}

		dto.Variants = append(dto.Variants, variantDataToDTO(&vdata))
	}

	dto.TotalVariants = len(dto.Variants)
	for _, v := range dto.Variants {
		if v.Hidden {
			dto.HiddenVariants++
		} else {
			dto.ActiveVariants++
		}
	}

	return dto, nil
}

func variantDataToDTO(data *m_variant.Data) contracts.VariantDTO {
	dto := contracts.VariantDTO{
		VariantID:     data.VariantID,
		ProductID:     data.ProductID,
		SKU:           data.SKU,
		PriceCents:    data.PriceCents,
		StockQuantity: data.StockQuantity,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}

	if data.SalePriceCents.Valid {
		dto.SalePriceCents = &data.SalePriceCents.Int64
	}

	if data.DeletedAt.Valid {
		dto.Hidden = true
		deletedAt := data.DeletedAt.Time
		dto.DeletedAt = &deletedAt
	}

	return dto
}
