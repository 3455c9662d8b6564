package services

import (
	"context"
	"fmt"

	"cloud.google.com/go/spanner"
	"cloud.google.com/go/storage"
	"go.uber.org/zap"

	"github.com/light-bringer/catalog-lifecycle/internal/app/catalog/contracts"
	"github.com/light-bringer/catalog-lifecycle/internal/app/catalog/queries/check_hard_delete"
	"github.com/light-bringer/catalog-lifecycle/internal/app/catalog/queries/get_product"
	"github.com/light-bringer/catalog-lifecycle/internal/app/catalog/repo"
	"github.com/light-bringer/catalog-lifecycle/internal/app/catalog/usecases/adjust_stock"
	"github.com/light-bringer/catalog-lifecycle/internal/app/catalog/usecases/hard_delete_product"
	"github.com/light-bringer/catalog-lifecycle/internal/app/catalog/usecases/hard_delete_variant"
	"github.com/light-bringer/catalog-lifecycle/internal/app/catalog/usecases/restore_product"
	"github.com/light-bringer/catalog-lifecycle/internal/app/catalog/usecases/restore_variant"
	"github.com/light-bringer/catalog-lifecycle/internal/app/catalog/usecases/soft_delete_product"
	"github.com/light-bringer/catalog-lifecycle/internal/app/catalog/usecases/soft_delete_variant"
	"github.com/light-bringer/catalog-lifecycle/internal/pkg/clock"
	"github.com/light-bringer/catalog-lifecycle/internal/pkg/committer"
	"github.com/light-bringer/catalog-lifecycle/internal/pkg/imagestore"
	"github.com/light-bringer/catalog-lifecycle/internal/pkg/revalidate"
	transport "github.com/light-bringer/catalog-lifecycle/internal/transport/http"
)

// Config selects the external resources the service talks to. Empty
// RevalidateEndpoint or ImageBucket degrade those collaborators to
// no-ops.
type Config struct {
	SpannerDB          string
	RevalidateEndpoint string
	RevalidateSecret   string
	ImageBucket        string
}

// ServiceOptions holds all dependencies for the application.
type ServiceOptions struct {
	SpannerClient *spanner.Client
	StorageClient *storage.Client
	Handler       *transport.Handler
}

// NewServiceOptions creates and wires up all application dependencies.
func NewServiceOptions(ctx context.Context, cfg Config, logger *zap.Logger) (*ServiceOptions, error) {
	// 1. Initialize Spanner client
	spannerClient, err := spanner.NewClient(ctx, cfg.SpannerDB)
	if err != nil {
		return nil, fmt.Errorf("failed to create Spanner client: %w", err)
	}

	// 2. Create infrastructure components
	clk := clock.NewRealClock()
	comm := committer.NewCommitter(spannerClient)

	var revalidator contracts.Revalidator = revalidate.NewNoop()
	if cfg.RevalidateEndpoint != "" {
		revalidator = revalidate.NewClient(cfg.RevalidateEndpoint, cfg.RevalidateSecret)
	}

	var storageClient *storage.Client
	var images contracts.ImageStore = imagestore.NewNoop()
	if cfg.ImageBucket != "" {
		storageClient, err = storage.NewClient(ctx)
		if err != nil {
			spannerClient.Close()
			return nil, fmt.Errorf("failed to create storage client: %w", err)
		}
		images = imagestore.NewGCSStore(storageClient, cfg.ImageBucket)
	}

	// 3. Create repositories
	productRepo := repo.NewProductRepo(spannerClient, clk)
	variantRepo := repo.NewVariantRepo(spannerClient, clk)
	inventoryLogRepo := repo.NewInventoryLogRepo(spannerClient)
	outboxRepo := repo.NewOutboxRepo(spannerClient)
	counter := repo.NewReferenceCounter(spannerClient)
	readModel := repo.NewReadModel(spannerClient)
	eventsReadModel := repo.NewEventsReadModel(spannerClient)

	// 4. Create query use cases (read operations)
	checkHardDeleteQuery := check_hard_delete.NewQuery(productRepo, variantRepo, counter)
	getProductQuery := get_product.NewQuery(readModel)

	// 5. Create command use cases (write operations)
	softDeleteVariantUseCase := soft_delete_variant.NewInteractor(variantRepo, outboxRepo, comm, clk, revalidator, logger)
	restoreVariantUseCase := restore_variant.NewInteractor(productRepo, variantRepo, outboxRepo, comm, clk, revalidator, logger)
	hardDeleteVariantUseCase := hard_delete_variant.NewInteractor(variantRepo, counter, checkHardDeleteQuery, outboxRepo, comm, clk, revalidator, logger)
	softDeleteProductUseCase := soft_delete_product.NewInteractor(productRepo, variantRepo, outboxRepo, comm, clk, revalidator, logger)
	restoreProductUseCase := restore_product.NewInteractor(productRepo, variantRepo, outboxRepo, comm, clk, revalidator, logger)
	hardDeleteProductUseCase := hard_delete_product.NewInteractor(productRepo, variantRepo, counter, checkHardDeleteQuery, outboxRepo, comm, clk, revalidator, images, logger)
	adjustStockUseCase := adjust_stock.NewInteractor(variantRepo, inventoryLogRepo, outboxRepo, comm, clk, logger)

	// 6. Create HTTP handler
	handler := transport.NewHandler(
		softDeleteVariantUseCase,
		restoreVariantUseCase,
		hardDeleteVariantUseCase,
		softDeleteProductUseCase,
		restoreProductUseCase,
		hardDeleteProductUseCase,
		adjustStockUseCase,
		checkHardDeleteQuery,
		getProductQuery,
		eventsReadModel,
		logger,
	)

	return &ServiceOptions{
		SpannerClient: spannerClient,
		StorageClient: storageClient,
		Handler:       handler,
	}, nil
}

// Close closes all resources.
func (s *ServiceOptions) Close() {
	if s.SpannerClient != nil {
		s.SpannerClient.Close()
	}
	if s.StorageClient != nil {
		s.StorageClient.Close()
	}
}
