// internal/adapters/db/tx_scope.go
package db

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/ammerola/fifo-ledger/internal/core/ports"
)

// TxConfig bounds how long a write transaction may wait on locks and run
// a single statement. Zero disables the limit.
type TxConfig struct {
	LockTimeout      time.Duration
	StatementTimeout time.Duration
}

// TxScope implements ports.TransactionScope on top of the connection pool.
type TxScope struct {
	db     *Database
	config TxConfig
	logger *slog.Logger
}

var _ ports.TransactionScope = (*TxScope)(nil)

// NewTxScope creates a transaction scope
func NewTxScope(db *Database, config TxConfig, logger *slog.Logger) *TxScope {
	return &TxScope{
		db:     db,
		config: config,
		logger: logger.With(slog.String("component", "tx_scope")),
	}
}

// Execute runs fn in a transaction opened for mode. Driver errors are
// classified so callers can match them with errors.Is.
func (s *TxScope) Execute(ctx context.Context, mode ports.TxMode, fn func(repos ports.TxRepositories) error) error {
	opts, err := txOptions(mode)
	if err != nil {
		return err
	}

	err = s.db.TransactionWithOptions(ctx, opts, func(tx pgx.Tx) error {
		if mode == ports.TxWrite {
			if err := s.applyTimeouts(ctx, tx); err != nil {
				return err
			}
		}
		return fn(newTxRepositories(tx, s.logger))
	})
	if err != nil {
		s.logger.DebugContext(ctx, "transaction rolled back",
			slog.String("mode", mode.String()),
			slog.String("error", err.Error()))
		return classifyError(err)
	}

	return nil
}

func txOptions(mode ports.TxMode) (pgx.TxOptions, error) {
	switch mode {
	case ports.TxWrite:
		return pgx.TxOptions{IsoLevel: pgx.ReadCommitted, AccessMode: pgx.ReadWrite}, nil
	case ports.TxSnapshot:
		return pgx.TxOptions{IsoLevel: pgx.RepeatableRead, AccessMode: pgx.ReadOnly}, nil
	default:
		return pgx.TxOptions{}, fmt.Errorf("unknown transaction mode %d", mode)
	}
}

// applyTimeouts sets transaction-local timeouts. set_config with is_local
// behaves like SET LOCAL but accepts bind parameters.
func (s *TxScope) applyTimeouts(ctx context.Context, tx pgx.Tx) error {
	settings := []struct {
		name  string
		value time.Duration
	}{
		{"lock_timeout", s.config.LockTimeout},
		{"statement_timeout", s.config.StatementTimeout},
	}

	for _, setting := range settings {
		if setting.value <= 0 {
			continue
		}
		ms := fmt.Sprintf("%dms", setting.value.Milliseconds())
		if _, err := tx.Exec(ctx, "SELECT set_config($1, $2, true)", setting.name, ms); err != nil {
			return fmt.Errorf("failed to set %s: %w", setting.name, err)
		}
	}

	return nil
}

// txRepositories binds the repositories to one transaction.
type txRepositories struct {
	products *productRepository
	batches  *batchRepository
	sales    *saleRepository
}

func newTxRepositories(tx pgx.Tx, logger *slog.Logger) *txRepositories {
	return &txRepositories{
		products: &productRepository{q: tx, logger: logger.With(slog.String("repository", "products"))},
		batches:  &batchRepository{q: tx, logger: logger.With(slog.String("repository", "batches"))},
		sales:    &saleRepository{q: tx, logger: logger.With(slog.String("repository", "sales"))},
	}
}

func (r *txRepositories) Products() ports.ProductRepository { return r.products }
func (r *txRepositories) Batches() ports.BatchRepository    { return r.batches }
func (r *txRepositories) Sales() ports.SaleRepository       { return r.sales }
