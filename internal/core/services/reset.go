// internal/core/services/reset.go
package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ammerola/fifo-ledger/internal/core/ports"
)

// ResetService wipes every product, batch and sale.
type ResetService struct {
	scope       ports.TransactionScope
	invalidator ports.StatusInvalidator
	logger      *slog.Logger
}

var _ ports.ResetService = (*ResetService)(nil)

// NewResetService creates a reset service. invalidator may be nil.
func NewResetService(scope ports.TransactionScope, invalidator ports.StatusInvalidator, logger *slog.Logger) *ResetService {
	return &ResetService{
		scope:       scope,
		invalidator: invalidator,
		logger:      logger.With(slog.String("service", "reset")),
	}
}

// ResetAll deletes children before parents in one transaction, so a failure
// leaves the ledger untouched.
func (s *ResetService) ResetAll(ctx context.Context) (*ports.ResetResult, error) {
	result := &ports.ResetResult{}

	err := s.scope.Execute(ctx, ports.TxWrite, func(repos ports.TxRepositories) error {
		details, sales, err := repos.Sales().DeleteAll(ctx)
		if err != nil {
			return err
		}

		batches, err := repos.Batches().DeleteAll(ctx)
		if err != nil {
			return err
		}

		products, err := repos.Products().DeleteAll(ctx)
		if err != nil {
			return err
		}

		result.Tables = []ports.TableCount{
			{Table: "sale_consumption_details", Deleted: details},
			{Table: "sales", Deleted: sales},
			{Table: "batches", Deleted: batches},
			{Table: "products", Deleted: products},
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to reset ledger data: %w", err)
	}

	if s.invalidator != nil {
		s.invalidator.Invalidate(ctx)
	}

	attrs := make([]any, 0, len(result.Tables))
	for _, t := range result.Tables {
		attrs = append(attrs, slog.Int64(t.Table, t.Deleted))
	}
	s.logger.WarnContext(ctx, "ledger data reset", attrs...)

	return result, nil
}
