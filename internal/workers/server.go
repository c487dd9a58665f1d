// internal/workers/server.go
package workers

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/hibiken/asynq"

	"github.com/ammerola/fifo-ledger/internal/core/domain"
)

// NewServeMux routes every ledger task type to its processor.
func NewServeMux(events *EventProcessor, exports *ExportProcessor, audit *AuditProcessor) *asynq.ServeMux {
	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeLedgerEvent, events.ProcessEvent)
	mux.HandleFunc(TypeLedgerExport, exports.ProcessExport)
	mux.HandleFunc(TypeLedgerAudit, audit.RunAudit)
	return mux
}

// RetryDelay retries lock conflicts quickly and backs off exponentially,
// capped at ten minutes, for everything else.
func RetryDelay(n int, err error, _ *asynq.Task) time.Duration {
	if errors.Is(err, domain.ErrConcurrencyConflict) {
		return time.Second
	}

	const maxDelay = 10 * time.Minute
	if n > 10 {
		return maxDelay
	}
	delay := time.Second * time.Duration(1<<uint(n))
	if delay > maxDelay {
		delay = maxDelay
	}
	return delay
}

// NewErrorHandler logs failed task attempts.
func NewErrorHandler(logger *slog.Logger) asynq.ErrorHandler {
	logger = logger.With(slog.String("component", "task_errors"))
	return asynq.ErrorHandlerFunc(func(ctx context.Context, task *asynq.Task, err error) {
		retried, _ := asynq.GetRetryCount(ctx)
		maxRetry, _ := asynq.GetMaxRetry(ctx)

		level := slog.LevelWarn
		if errors.Is(err, asynq.SkipRetry) || retried >= maxRetry {
			level = slog.LevelError
		}

		logger.Log(ctx, level, "task processing failed",
			slog.String("type", task.Type()),
			slog.Int("retried", retried),
			slog.Int("max_retry", maxRetry),
			slog.String("error", err.Error()))
	})
}
