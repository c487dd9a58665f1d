// internal/core/services/ledger_view.go
package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ammerola/fifo-ledger/internal/core/domain"
	"github.com/ammerola/fifo-ledger/internal/core/ports"
)

// LedgerView merges purchases and sales into one history.
type LedgerView struct {
	scope  ports.TransactionScope
	logger *slog.Logger
}

var _ ports.LedgerReader = (*LedgerView)(nil)

// NewLedgerView creates a new ledger view
func NewLedgerView(scope ports.TransactionScope, logger *slog.Logger) *LedgerView {
	return &LedgerView{
		scope:  scope,
		logger: logger.With(slog.String("service", "ledger")),
	}
}

// Ledger reads batches and sales from one snapshot and returns them newest first.
func (v *LedgerView) Ledger(ctx context.Context, filter domain.LedgerFilter) ([]domain.LedgerEntry, error) {
	var entries []domain.LedgerEntry
	err := v.scope.Execute(ctx, ports.TxSnapshot, func(repos ports.TxRepositories) error {
		batches, err := repos.Batches().List(ctx, filter)
		if err != nil {
			return err
		}

		sales, err := repos.Sales().List(ctx, filter)
		if err != nil {
			return err
		}

		entries = domain.BuildLedger(batches, sales)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build ledger: %w", err)
	}

	v.logger.DebugContext(ctx, "ledger built",
		slog.String("product_id", filter.ProductID),
		slog.Int("entries", len(entries)))

	return entries, nil
}
