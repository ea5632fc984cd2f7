package repositories

import "context"

// StorageInterface is the key-value persistence shim every collection writes through.
// Values are opaque JSON documents.
type StorageInterface interface {
	Get(ctx context.Context, key string) (value string, found bool, err error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
	Keys(ctx context.Context) ([]string, error)
}
