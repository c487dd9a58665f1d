// internal/core/services/inventory_status.go
package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/ammerola/fifo-ledger/internal/core/domain"
	"github.com/ammerola/fifo-ledger/internal/core/ports"
)

const (
	statusKeyPrefix = "status"

	// Generation counters live outside the status prefix so a full
	// invalidation never resets them.
	genKeyEpoch = "statusgen:epoch"
	genKeyAll   = "statusgen:all"

	defaultStatusTTL = 30 * time.Second
)

func genKey(productID string) string {
	return "statusgen:product:" + productID
}

func statusKey(productID string, epoch, gen int64) string {
	return fmt.Sprintf("%s:product:%s:%d.%d", statusKeyPrefix, productID, epoch, gen)
}

func statusKeyAll(epoch, gen int64) string {
	return fmt.Sprintf("%s:all:%d.%d", statusKeyPrefix, epoch, gen)
}

// InventoryAggregator serves inventory status to the reporting layer,
// optionally through a read-through cache.
//
// Cached entries are keyed by generation counters read before the fetch.
// Invalidate bumps the counters, so a fetch that started before a write
// commits stores its snapshot under a key no later read will use.
type InventoryAggregator struct {
	reader ports.InventoryReader
	cache  ports.CacheRepository
	ttl    time.Duration
	logger *slog.Logger
}

var (
	_ ports.InventoryReader   = (*InventoryAggregator)(nil)
	_ ports.StatusInvalidator = (*InventoryAggregator)(nil)
)

// NewInventoryAggregator creates an aggregator. cache may be nil.
func NewInventoryAggregator(reader ports.InventoryReader, cache ports.CacheRepository, ttl time.Duration, logger *slog.Logger) *InventoryAggregator {
	if ttl <= 0 {
		ttl = defaultStatusTTL
	}
	return &InventoryAggregator{
		reader: reader,
		cache:  cache,
		ttl:    ttl,
		logger: logger.With(slog.String("service", "inventory_status")),
	}
}

// generations reads the epoch and the given counter. ok is false when the
// cache cannot be trusted for this read.
func (a *InventoryAggregator) generations(ctx context.Context, counter string) (epoch, gen int64, ok bool) {
	vals, err := a.cache.Counters(ctx, genKeyEpoch, counter)
	if err != nil || len(vals) != 2 {
		a.logger.WarnContext(ctx, "status cache generations unavailable, reading through",
			slog.String("counter", counter),
			slog.Any("error", err))
		return 0, 0, false
	}
	return vals[0], vals[1], true
}

func (a *InventoryAggregator) GetInventoryStatus(ctx context.Context, productID string) (*domain.InventoryStatus, error) {
	if a.cache == nil {
		return a.reader.GetInventoryStatus(ctx, productID)
	}

	epoch, gen, ok := a.generations(ctx, genKey(productID))
	if !ok {
		return a.reader.GetInventoryStatus(ctx, productID)
	}

	var status domain.InventoryStatus
	err := a.cache.GetOrSet(ctx, statusKey(productID, epoch, gen), &status, func() (any, error) {
		return a.reader.GetInventoryStatus(ctx, productID)
	}, a.ttl)
	if err != nil {
		return nil, fmt.Errorf("failed to get inventory status: %w", err)
	}

	return &status, nil
}

func (a *InventoryAggregator) GetAllInventoryStatus(ctx context.Context) ([]domain.InventoryStatus, error) {
	if a.cache == nil {
		return a.reader.GetAllInventoryStatus(ctx)
	}

	epoch, gen, ok := a.generations(ctx, genKeyAll)
	if !ok {
		return a.reader.GetAllInventoryStatus(ctx)
	}

	var statuses []domain.InventoryStatus
	err := a.cache.GetOrSet(ctx, statusKeyAll(epoch, gen), &statuses, func() (any, error) {
		return a.reader.GetAllInventoryStatus(ctx)
	}, a.ttl)
	if err != nil {
		return nil, fmt.Errorf("failed to get inventory status: %w", err)
	}

	return statuses, nil
}

// Invalidate moves each product and the combined list to a new generation.
// With no ids the epoch moves, retiring every cached status, and the old
// entries are swept. Cache errors are logged only.
func (a *InventoryAggregator) Invalidate(ctx context.Context, productIDs ...string) {
	if a.cache == nil {
		return
	}

	if len(productIDs) == 0 {
		if err := a.cache.Incr(ctx, genKeyEpoch); err != nil {
			a.logger.WarnContext(ctx, "failed to invalidate status cache",
				slog.String("error", err.Error()))
			return
		}
		if err := a.cache.DeletePattern(ctx, statusKeyPrefix+":*"); err != nil {
			a.logger.WarnContext(ctx, "failed to sweep status cache",
				slog.String("error", err.Error()))
		}
		return
	}

	counters := make([]string, 0, len(productIDs)+1)
	for _, id := range productIDs {
		counters = append(counters, genKey(id))
	}
	counters = append(counters, genKeyAll)

	if err := a.cache.Incr(ctx, counters...); err != nil {
		a.logger.WarnContext(ctx, "failed to invalidate status cache",
			slog.Any("product_ids", productIDs),
			slog.String("error", err.Error()))
	}
}
