package contracts

import (
	"context"

	"cloud.google.com/go/spanner"
	"github.com/light-bringer/catalog-lifecycle/internal/app/catalog/domain"
)

// Querier is the read surface shared by single-use read-only transactions
// and read-write transactions. Passing the querier explicitly lets the
// hard-delete path re-run its counts inside the transaction that buffers
// the physical delete, closing the check-then-act window.
type Querier interface {
	Query(ctx context.Context, statement spanner.Statement) *spanner.RowIterator
}

// ReferenceCounter gathers the row counts that gate a hard delete.
type ReferenceCounter interface {
	// CountsSnapshot runs the counts on a fresh read-only snapshot, for
	// the advisory pre-check
	CountsSnapshot(ctx context.Context, variantID, productID string) (domain.ReferenceCounts, error)

	// Counts runs all four count queries for one variant over q
	Counts(ctx context.Context, q Querier, variantID, productID string) (domain.ReferenceCounts, error)
}
