// internal/core/ports/cache.go
package ports

import (
	"context"
	"time"
)

// CacheRepository defines the interface for cache operations
type CacheRepository interface {
	SetWithTTL(ctx context.Context, key string, value any, ttl time.Duration) error
	Get(ctx context.Context, key string, dest any) error
	Delete(ctx context.Context, keys ...string) error
	DeletePattern(ctx context.Context, pattern string) error

	// Incr bumps each counter by one. Counters never expire.
	Incr(ctx context.Context, keys ...string) error
	// Counters reads counters in key order; a missing counter reads as 0.
	Counters(ctx context.Context, keys ...string) ([]int64, error)

	// GetOrSet loads key into dest, calling fetch and caching its result on a miss.
	GetOrSet(ctx context.Context, key string, dest any, fetch func() (any, error), ttl time.Duration) error

	Ping(ctx context.Context) error
}
