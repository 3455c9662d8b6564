package repo

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/spanner"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"

	"github.com/light-bringer/catalog-lifecycle/internal/app/catalog/contracts"
	"github.com/light-bringer/catalog-lifecycle/internal/app/catalog/domain"
	"github.com/light-bringer/catalog-lifecycle/internal/models/m_variant"
	"github.com/light-bringer/catalog-lifecycle/internal/pkg/clock"
	"github.com/light-bringer/catalog-lifecycle/internal/pkg/query"
)

// VariantRepo implements VariantRepository for Spanner.
type VariantRepo struct {
	client *spanner.Client
	model  *m_variant.Model
	clock  clock.Clock
}

// NewVariantRepo creates a new VariantRepo.
func NewVariantRepo(client *spanner.Client, clk clock.Clock) contracts.VariantRepository {
	return &VariantRepo{
		client: client,
		model:  m_variant.NewModel(),
		clock:  clk,
	}
}

// InsertMut creates a mutation for inserting a new variant.
func (r *VariantRepo) InsertMut(variant *domain.Variant) *spanner.Mutation {
	return r.model.InsertMut(r.domainToData(variant))
}

// UpdateMut creates a mutation for updating a variant (only dirty fields).
func (r *VariantRepo) UpdateMut(variant *domain.Variant) *spanner.Mutation {
	changes := variant.Changes()
	if !changes.HasChanges() {
		return nil
	}

	updates := make(map[string]interface{})

	if changes.Dirty(domain.FieldSKU) {
		updates[m_variant.SKU] = variant.SKU()
	}

	if changes.Dirty(domain.FieldPriceCents) {
		updates[m_variant.PriceCents] = variant.PriceCents()
	}

	if changes.Dirty(domain.FieldSalePriceCents) {
		if sale := variant.SalePriceCents(); sale != nil {
			updates[m_variant.SalePriceCents] = *sale
		} else {
			updates[m_variant.SalePriceCents] = spanner.NullInt64{}
		}
	}

	if changes.Dirty(domain.FieldStockQuantity) {
		updates[m_variant.StockQuantity] = variant.StockQuantity()
	}

	if changes.Dirty(domain.FieldDeletedAt) {
		if deletedAt := variant.DeletedAt(); deletedAt != nil {
			updates[m_variant.DeletedAt] = *deletedAt
		} else {
			updates[m_variant.DeletedAt] = spanner.NullTime{}
		}
	}

	if len(updates) == 0 {
		return nil
	}

	return r.model.UpdateMut(variant.ID(), updates)
}

// DeleteMut creates a mutation that physically removes the variant row.
func (r *VariantRepo) DeleteMut(variantID string) *spanner.Mutation {
	return r.model.DeleteMut(variantID)
}

// GetByID retrieves a variant by ID, reconstructing the domain aggregate.
func (r *VariantRepo) GetByID(ctx context.Context, variantID string) (*domain.Variant, error) {
	row, err := r.client.Single().ReadRow(ctx, m_variant.TableName, spanner.Key{variantID}, variantColumns())
	if err != nil {
		if spanner.ErrCode(err) == codes.NotFound {
			return nil, domain.ErrVariantNotFound
		}
		return nil, fmt.Errorf("failed to read variant: %w", err)
	}

	var data m_variant.Data
	if err := row.ToStruct(&data); err != nil {
		return nil, fmt.Errorf("failed to parse variant: %w", err)
	}

	return r.dataToDomain(&data), nil
}

// ListByProduct retrieves every variant of a product, hidden ones
// included, ordered by creation time.
func (r *VariantRepo) ListByProduct(ctx context.Context, productID string) ([]*domain.Variant, error) {
	stmt := query.From(m_variant.TableName).
		Select(variantColumns()...).
		Where(query.Eq(m_variant.ProductID, productID)).
		OrderBy(m_variant.CreatedAt, query.Asc).
		Build()

	iter := r.client.Single().Query(ctx, stmt)
	defer iter.Stop()

	var variants []*domain.Variant
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate variants: %w", err)
		}

		var data m_variant.Data
		if err := row.ToStruct(&data); err != nil {
			return nil, fmt.Errorf("failed to parse variant: %w", err)
		}

		variants = append(variants, r.dataToDomain(&data))
	}

	return variants, nil
}

func variantColumns() []string {
	return []string{
		m_variant.VariantID,
		m_variant.ProductID,
		m_variant.SKU,
		m_variant.PriceCents,
		m_variant.SalePriceCents,
		m_variant.StockQuantity,
		m_variant.CreatedAt,
		m_variant.UpdatedAt,
		m_variant.DeletedAt,
	}
}

// domainToData converts a domain Variant to database Data.
func (r *VariantRepo) domainToData(variant *domain.Variant) *m_variant.Data {
	data := &m_variant.Data{
		VariantID:     variant.ID(),
		ProductID:     variant.ProductID(),
		SKU:           variant.SKU(),
		PriceCents:    variant.PriceCents(),
		StockQuantity: variant.StockQuantity(),
		CreatedAt:     variant.CreatedAt(),
		UpdatedAt:     variant.UpdatedAt(),
	}

	if sale := variant.SalePriceCents(); sale != nil {
		data.SalePriceCents = spanner.NullInt64{Int64: *sale, Valid: true}
	}

	if deletedAt := variant.DeletedAt(); deletedAt != nil {
		data.DeletedAt = spanner.NullTime{Time: *deletedAt, Valid: true}
	}

	return data
}

// dataToDomain converts database Data to a domain Variant.
func (r *VariantRepo) dataToDomain(data *m_variant.Data) *domain.Variant {
	var salePrice *int64
	if data.SalePriceCents.Valid {
		salePrice = &data.SalePriceCents.Int64
	}

	var deletedAt *time.Time
	if data.DeletedAt.Valid {
		deletedAt = &data.DeletedAt.Time
	}

	return domain.ReconstructVariant(
		data.VariantID,
		data.ProductID,
		data.SKU,
		data.PriceCents,
		salePrice,
		data.StockQuantity,
		data.CreatedAt,
		data.UpdatedAt,
		deletedAt,
		r.clock,
	)
}
