// internal/core/services/engine.go
package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/shopspring/decimal"

	"github.com/ammerola/fifo-ledger/internal/core/domain"
	"github.com/ammerola/fifo-ledger/internal/core/ports"
)

// EngineConfig controls how conflicting write transactions are retried.
type EngineConfig struct {
	MaxRetries  int
	BaseBackoff time.Duration
	MaxBackoff  time.Duration
}

// DefaultEngineConfig returns the retry policy used when none is configured.
func DefaultEngineConfig() EngineConfig {
	return EngineConfig{
		MaxRetries:  5,
		BaseBackoff: 20 * time.Millisecond,
		MaxBackoff:  time.Second,
	}
}

// LedgerEngine records purchases and costs sales first in, first out.
type LedgerEngine struct {
	scope  ports.TransactionScope
	config EngineConfig
	now    func() time.Time
	logger *slog.Logger
}

var _ ports.LedgerEngine = (*LedgerEngine)(nil)

// NewLedgerEngine creates a new ledger engine
func NewLedgerEngine(scope ports.TransactionScope, config EngineConfig, logger *slog.Logger) *LedgerEngine {
	if config.BaseBackoff <= 0 {
		config.BaseBackoff = DefaultEngineConfig().BaseBackoff
	}
	if config.MaxBackoff < config.BaseBackoff {
		config.MaxBackoff = config.BaseBackoff
	}

	return &LedgerEngine{
		scope:  scope,
		config: config,
		now:    time.Now,
		logger: logger.With(slog.String("service", "engine")),
	}
}

// RecordPurchase stores a new batch with its full quantity remaining.
func (e *LedgerEngine) RecordPurchase(ctx context.Context, productID string, quantity int64, unitPrice decimal.Decimal, ts time.Time) (*domain.Batch, error) {
	if ts.IsZero() {
		ts = e.now()
	}

	batch, err := domain.NewBatch(strings.TrimSpace(productID), quantity, unitPrice, ts)
	if err != nil {
		return nil, err
	}

	err = e.withRetry(ctx, "purchase", func() error {
		return e.scope.Execute(ctx, ports.TxWrite, func(repos ports.TxRepositories) error {
			return repos.Batches().Insert(ctx, batch)
		})
	})
	if err != nil {
		return nil, fmt.Errorf("failed to record purchase for %s: %w", batch.ProductID, err)
	}

	e.logger.InfoContext(ctx, "purchase recorded",
		slog.String("product_id", batch.ProductID),
		slog.Int64("batch_id", batch.ID),
		slog.Int64("quantity", batch.Quantity),
		slog.String("unit_price", batch.UnitPrice.String()))

	return batch, nil
}

// RecordSale consumes quantity units from the product's oldest batches.
// The product's available batches are locked before anything is summed, so
// concurrent sales of one product cannot both spend the same units.
func (e *LedgerEngine) RecordSale(ctx context.Context, productID string, quantity int64, ts time.Time) (*domain.SaleResult, error) {
	productID = strings.TrimSpace(productID)
	if productID == "" {
		return nil, fmt.Errorf("%w: product_id is required", domain.ErrInvalidArgument)
	}
	if quantity <= 0 {
		return nil, fmt.Errorf("%w: quantity must be positive, got %d", domain.ErrInvalidArgument, quantity)
	}
	if ts.IsZero() {
		ts = e.now()
	}

	var result *domain.SaleResult
	err := e.withRetry(ctx, "sale", func() error {
		result = nil
		return e.scope.Execute(ctx, ports.TxWrite, func(repos ports.TxRepositories) error {
			batches, err := repos.Batches().LockAvailable(ctx, productID)
			if err != nil {
				return err
			}

			alloc, err := domain.AllocateFIFO(productID, batches, quantity)
			if err != nil {
				return err
			}

			for _, d := range alloc.Details {
				if err := repos.Batches().Consume(ctx, d.BatchID, d.QuantityUsed); err != nil {
					return err
				}
			}

			sale := &domain.Sale{
				ProductID:     productID,
				Quantity:      quantity,
				TotalCost:     alloc.TotalCost,
				SaleTimestamp: domain.StoredTime(ts),
			}
			details := slices.Clone(alloc.Details)
			if err := repos.Sales().Insert(ctx, sale, details); err != nil {
				return err
			}

			result = &domain.SaleResult{Sale: sale, Details: details}
			return nil
		})
	})
	if err != nil {
		if errors.Is(err, domain.ErrInsufficientInventory) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to record sale for %s: %w", productID, err)
	}

	e.logger.InfoContext(ctx, "sale recorded",
		slog.String("product_id", productID),
		slog.Int64("sale_id", result.Sale.ID),
		slog.Int64("quantity", quantity),
		slog.String("total_cost", result.Sale.TotalCost.String()),
		slog.Int("batches_used", len(result.Details)))

	return result, nil
}

// GetInventoryStatus reads one product's batches from a single snapshot.
// An unknown product yields an empty status.
func (e *LedgerEngine) GetInventoryStatus(ctx context.Context, productID string) (*domain.InventoryStatus, error) {
	var status *domain.InventoryStatus
	err := e.scope.Execute(ctx, ports.TxSnapshot, func(repos ports.TxRepositories) error {
		batches, err := repos.Batches().ListByProduct(ctx, productID)
		if err != nil {
			return err
		}
		status = domain.NewInventoryStatus(productID, batches)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to read inventory status for %s: %w", productID, err)
	}

	return status, nil
}

// GetAllInventoryStatus returns one status per registered product, ordered
// by product id, all computed from the same snapshot.
func (e *LedgerEngine) GetAllInventoryStatus(ctx context.Context) ([]domain.InventoryStatus, error) {
	var statuses []domain.InventoryStatus
	err := e.scope.Execute(ctx, ports.TxSnapshot, func(repos ports.TxRepositories) error {
		products, err := repos.Products().List(ctx)
		if err != nil {
			return err
		}

		batches, err := repos.Batches().List(ctx, domain.LedgerFilter{})
		if err != nil {
			return err
		}

		byProduct := make(map[string][]domain.Batch, len(products))
		for _, b := range batches {
			byProduct[b.ProductID] = append(byProduct[b.ProductID], b)
		}

		statuses = make([]domain.InventoryStatus, 0, len(products))
		for _, p := range products {
			statuses = append(statuses, *domain.NewInventoryStatus(p.ID, byProduct[p.ID]))
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to read inventory status: %w", err)
	}

	return statuses, nil
}

// withRetry reruns op from scratch while it fails with a concurrency
// conflict, backing off exponentially between attempts.
func (e *LedgerEngine) withRetry(ctx context.Context, name string, op func() error) error {
	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = e.config.BaseBackoff
	policy.MaxInterval = e.config.MaxBackoff
	policy.MaxElapsedTime = 0

	maxRetries := max(e.config.MaxRetries, 0)
	b := backoff.WithContext(backoff.WithMaxRetries(policy, uint64(maxRetries)), ctx)

	attempt := 0
	return backoff.RetryNotify(func() error {
		attempt++
		err := op()
		if err == nil || errors.Is(err, domain.ErrConcurrencyConflict) {
			return err
		}
		return backoff.Permanent(err)
	}, b, func(err error, wait time.Duration) {
		e.logger.WarnContext(ctx, "write conflict, retrying",
			slog.String("operation", name),
			slog.Int("attempt", attempt),
			slog.Duration("wait", wait),
			slog.String("error", err.Error()))
	})
}
