// internal/workers/audit_processor.go
package workers

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/hibiken/asynq"

	"github.com/ammerola/fifo-ledger/internal/core/ports"
)

// AuditProcessor runs the scheduled ledger consistency check
type AuditProcessor struct {
	auditor ports.Auditor
	logger  *slog.Logger
}

// NewAuditProcessor creates a new audit processor
func NewAuditProcessor(auditor ports.Auditor, logger *slog.Logger) *AuditProcessor {
	return &AuditProcessor{
		auditor: auditor,
		logger:  logger.With(slog.String("processor", "audit")),
	}
}

// RunAudit fails the task when any batch violates the ledger invariants so
// the failure shows up in the asynq archive.
func (p *AuditProcessor) RunAudit(ctx context.Context, _ *asynq.Task) error {
	violations, err := p.auditor.Run(ctx)
	if err != nil {
		return fmt.Errorf("failed to run ledger audit: %w", err)
	}

	if len(violations) > 0 {
		return fmt.Errorf("ledger audit found %d violating batches: %w", len(violations), asynq.SkipRetry)
	}

	p.logger.InfoContext(ctx, "ledger audit passed")
	return nil
}
