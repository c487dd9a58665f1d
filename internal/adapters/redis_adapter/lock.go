// internal/adapters/redis_adapter/lock.go
package redis_a

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/bsm/redislock"
	"github.com/redis/go-redis/v9"

	"github.com/ammerola/fifo-ledger/internal/core/ports"
)

// ErrLockNotObtained is returned when another worker holds the product lock
// for longer than the configured wait.
var ErrLockNotObtained = errors.New("product lock not obtained")

// LockConfig tunes ProductLock.
type LockConfig struct {
	TTL          time.Duration
	RetryBackoff time.Duration
	MaxRetries   int
}

// ProductLock gives one writer per product at a time across processes.
type ProductLock struct {
	locker *redislock.Client
	cfg    LockConfig
	logger *slog.Logger
}

var _ ports.ProductLocker = (*ProductLock)(nil)

// NewProductLock creates a redis backed product lock.
func NewProductLock(client redis.UniversalClient, cfg LockConfig, logger *slog.Logger) *ProductLock {
	if cfg.TTL <= 0 {
		cfg.TTL = 30 * time.Second
	}
	if cfg.RetryBackoff <= 0 {
		cfg.RetryBackoff = 100 * time.Millisecond
	}
	return &ProductLock{
		locker: redislock.New(client),
		cfg:    cfg,
		logger: logger.With(slog.String("component", "product_lock")),
	}
}

// Lock blocks until the product's lock is held or the retries run out.
func (l *ProductLock) Lock(ctx context.Context, productID string) (func(context.Context) error, error) {
	key := BuildKey(PrefixLock, "product", productID)

	lock, err := l.locker.Obtain(ctx, key, l.cfg.TTL, &redislock.Options{
		RetryStrategy: redislock.LimitRetry(redislock.LinearBackoff(l.cfg.RetryBackoff), l.cfg.MaxRetries),
	})
	if errors.Is(err, redislock.ErrNotObtained) {
		return nil, fmt.Errorf("%w: %s", ErrLockNotObtained, productID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to obtain product lock: %w", err)
	}

	l.logger.DebugContext(ctx, "product lock obtained", slog.String("product_id", productID))

	return func(ctx context.Context) error {
		if err := lock.Release(ctx); err != nil && !errors.Is(err, redislock.ErrLockNotHeld) {
			return fmt.Errorf("failed to release product lock: %w", err)
		}
		return nil
	}, nil
}
