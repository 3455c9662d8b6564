package imagestore

import (
	"context"
	"errors"
	"fmt"

	"cloud.google.com/go/storage"
)

// GCSStore removes product image objects from a Cloud Storage bucket
// after the owning product row has been purged.
type GCSStore struct {
	bucket *storage.BucketHandle
}

// NewGCSStore creates an image store over the given bucket.
func NewGCSStore(client *storage.Client, bucket string) *GCSStore {
	return &GCSStore{
		bucket: client.Bucket(bucket),
	}
}

// Remove deletes the given object paths. Objects already gone are not an
// error; the cleanup may be retried after a partial failure. All other
// failures are joined so the caller sees every path that survived.
func (s *GCSStore) Remove(ctx context.Context, paths []string) error {
	var errs []error
	for _, path := range paths {
		err := s.bucket.Object(path).Delete(ctx)
		if err != nil && !errors.Is(err, storage.ErrObjectNotExist) {
			errs = append(errs, fmt.Errorf("failed to delete %q: %w", path, err))
		}
	}
	return errors.Join(errs...)
}

// Noop is used when no image bucket is configured.
type Noop struct{}

// NewNoop creates a no-op image store.
func NewNoop() *Noop { return &Noop{} }

// Remove does nothing.
func (*Noop) Remove(ctx context.Context, paths []string) error { return nil }
