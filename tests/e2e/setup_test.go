package e2e

import (
	"testing"

	"cloud.google.com/go/spanner"
	"go.uber.org/zap"

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
	"github.com/light-bringer/catalog-lifecycle/tests/testutil"
)

// Services holds all use cases and queries for E2E tests.
type Services struct {
	// Commands
	SoftDeleteVariant *soft_delete_variant.Interactor
	RestoreVariant    *restore_variant.Interactor
	HardDeleteVariant *hard_delete_variant.Interactor
	SoftDeleteProduct *soft_delete_product.Interactor
	RestoreProduct    *restore_product.Interactor
	HardDeleteProduct *hard_delete_product.Interactor
	AdjustStock       *adjust_stock.Interactor

	// Queries
	CheckHardDelete *check_hard_delete.Query
	GetProduct      *get_product.Query

	// Infrastructure
	Clock  clock.Clock
	Client *spanner.Client
}

// setupTest initializes all dependencies for E2E testing against the
// Spanner emulator.
func setupTest(t *testing.T) (*Services, func()) {
	t.Helper()
	return setupWithClock(t, clock.NewRealClock())
}

// setupTestWithMockClock initializes services with a controllable clock,
// for tests exercising the restore proximity window.
func setupTestWithMockClock(t *testing.T) (*Services, *clock.MockClock, func()) {
	t.Helper()

	mockClock := testutil.NewMockClock()
	services, cleanup := setupWithClock(t, mockClock)
	return services, mockClock, cleanup
}

func setupWithClock(t *testing.T, clk clock.Clock) (*Services, func()) {
	t.Helper()

	client, cleanup := testutil.SetupSpannerTest(t)

	logger := zap.NewNop()
	comm := committer.NewCommitter(client)
	revalidator := revalidate.NewNoop()
	images := imagestore.NewNoop()

	productRepo := repo.NewProductRepo(client, clk)
	variantRepo := repo.NewVariantRepo(client, clk)
	inventoryLogRepo := repo.NewInventoryLogRepo(client)
	outboxRepo := repo.NewOutboxRepo(client)
	counter := repo.NewReferenceCounter(client)
	readModel := repo.NewReadModel(client)

	checkHardDeleteQuery := check_hard_delete.NewQuery(productRepo, variantRepo, counter)
	getProductQuery := get_product.NewQuery(readModel)

	services := &Services{
		SoftDeleteVariant: soft_delete_variant.NewInteractor(variantRepo, outboxRepo, comm, clk, revalidator, logger),
		RestoreVariant:    restore_variant.NewInteractor(productRepo, variantRepo, outboxRepo, comm, clk, revalidator, logger),
		HardDeleteVariant: hard_delete_variant.NewInteractor(variantRepo, counter, checkHardDeleteQuery, outboxRepo, comm, clk, revalidator, logger),
		SoftDeleteProduct: soft_delete_product.NewInteractor(productRepo, variantRepo, outboxRepo, comm, clk, revalidator, logger),
		RestoreProduct:    restore_product.NewInteractor(productRepo, variantRepo, outboxRepo, comm, clk, revalidator, logger),
		HardDeleteProduct: hard_delete_product.NewInteractor(productRepo, variantRepo, counter, checkHardDeleteQuery, outboxRepo, comm, clk, revalidator, images, logger),
		AdjustStock:       adjust_stock.NewInteractor(variantRepo, inventoryLogRepo, outboxRepo, comm, clk, logger),
		CheckHardDelete:   checkHardDeleteQuery,
		GetProduct:        getProductQuery,
		Clock:             clk,
		Client:            client,
	}

	return services, cleanup
}
