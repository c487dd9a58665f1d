// internal/workers/export_processor.go
package workers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/hibiken/asynq"

	"github.com/ammerola/fifo-ledger/internal/core/ports"
	"github.com/ammerola/fifo-ledger/internal/core/services"
)

// ExportProcessor uploads ledger workbooks
type ExportProcessor struct {
	exporter ports.Exporter
	logger   *slog.Logger
}

// NewExportProcessor creates a new export processor
func NewExportProcessor(exporter ports.Exporter, logger *slog.Logger) *ExportProcessor {
	return &ExportProcessor{
		exporter: exporter,
		logger:   logger.With(slog.String("processor", "export")),
	}
}

// ProcessExport handles a ledger:export task and writes the stored
// location to the task result.
func (p *ExportProcessor) ProcessExport(ctx context.Context, t *asynq.Task) error {
	var payload ExportPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return fmt.Errorf("failed to unmarshal payload: %v: %w", err, asynq.SkipRetry)
	}

	p.logger.InfoContext(ctx, "exporting ledger",
		slog.String("product_id", payload.Request.ProductID),
		slog.String("requested_by", payload.Request.RequestedBy))

	result, err := p.exporter.ExportToStorage(ctx, payload.Request)
	if err != nil {
		if errors.Is(err, services.ErrStorageDisabled) {
			return fmt.Errorf("%v: %w", err, asynq.SkipRetry)
		}
		return fmt.Errorf("failed to export ledger: %w", err)
	}

	if w := t.ResultWriter(); w != nil {
		body, err := json.Marshal(result)
		if err == nil {
			if _, err := w.Write(body); err != nil {
				p.logger.WarnContext(ctx, "failed to write task result",
					slog.String("error", err.Error()))
			}
		}
	}

	p.logger.InfoContext(ctx, "ledger export completed",
		slog.String("key", result.Key),
		slog.Int("entries", result.Entries))

	return nil
}
