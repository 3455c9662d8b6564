package contracts

import "context"

// Revalidator notifies the rendering layer that cached views of an
// entity group are stale. Strictly best-effort: usecases log failures
// and never fail the primary operation over them.
type Revalidator interface {
	Invalidate(ctx context.Context, keys ...string) error
}

// ImageStore removes image objects after a product hard delete. Also
// best-effort: the row delete is already committed when cleanup runs,
// and a cleanup failure is logged, not propagated.
type ImageStore interface {
	Remove(ctx context.Context, paths []string) error
}
