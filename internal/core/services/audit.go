// internal/core/services/audit.go
package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ammerola/fifo-ledger/internal/core/domain"
	"github.com/ammerola/fifo-ledger/internal/core/ports"
)

// LedgerAuditor checks every batch's remaining quantity against the
// consumption details recorded for it.
type LedgerAuditor struct {
	scope  ports.TransactionScope
	logger *slog.Logger
}

var _ ports.Auditor = (*LedgerAuditor)(nil)

// NewLedgerAuditor creates a new auditor
func NewLedgerAuditor(scope ports.TransactionScope, logger *slog.Logger) *LedgerAuditor {
	return &LedgerAuditor{
		scope:  scope,
		logger: logger.With(slog.String("service", "audit")),
	}
}

// Run returns every violating batch. Each violation is also logged.
func (a *LedgerAuditor) Run(ctx context.Context) ([]domain.BatchViolation, error) {
	var usage []domain.BatchUsage
	err := a.scope.Execute(ctx, ports.TxSnapshot, func(repos ports.TxRepositories) error {
		var err error
		usage, err = repos.Batches().Usage(ctx)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load batch usage: %w", err)
	}

	var violations []domain.BatchViolation
	for _, u := range usage {
		v := domain.CheckUsage(u)
		if v == nil {
			continue
		}
		violations = append(violations, *v)
		a.logger.ErrorContext(ctx, "ledger invariant violated",
			slog.Int64("batch_id", v.BatchID),
			slog.String("product_id", v.ProductID),
			slog.Int64("quantity", v.Quantity),
			slog.Int64("remaining_quantity", v.Remaining),
			slog.Int64("quantity_used", v.Used),
			slog.String("reason", v.Reason))
	}

	a.logger.InfoContext(ctx, "ledger audit finished",
		slog.Int("batches", len(usage)),
		slog.Int("violations", len(violations)))

	return violations, nil
}
