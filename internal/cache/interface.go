package cache

import (
	"context"
	"time"
)

//go:generate mockgen -destination=mocks/mock_cache.go -package=mocks nt-data-lab/internal/cache Cache

// Cache stores JSON-encoded values under string keys. Callers treat it as
// best effort: a miss and an error both mean "read the store".
type Cache interface {
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	// Get decodes the value into dest and reports whether key was present.
	Get(ctx context.Context, key string, dest interface{}) (bool, error)
	Delete(ctx context.Context, keys ...string) error
}

var _ Cache = (*Redis)(nil)
