// internal/workers/event_processor.go
package workers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/hibiken/asynq"

	"github.com/ammerola/fifo-ledger/internal/core/domain"
	"github.com/ammerola/fifo-ledger/internal/core/ports"
	"github.com/ammerola/fifo-ledger/internal/pkg/logger"
)

// EventProcessor applies inbound purchase and sale events.
type EventProcessor struct {
	gateway ports.EventGateway
	logger  *slog.Logger
}

// NewEventProcessor creates a new event processor
func NewEventProcessor(gateway ports.EventGateway, logger *slog.Logger) *EventProcessor {
	return &EventProcessor{
		gateway: gateway,
		logger:  logger.With(slog.String("processor", "event")),
	}
}

// ProcessEvent handles a ledger:event task. Events that can never succeed
// are logged and dropped with asynq.SkipRetry; conflicts and storage
// failures are returned so asynq retries them.
func (p *EventProcessor) ProcessEvent(ctx context.Context, t *asynq.Task) error {
	var payload EventPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		p.logger.ErrorContext(ctx, "malformed event payload",
			slog.String("error", err.Error()))
		return fmt.Errorf("failed to unmarshal payload: %v: %w", err, asynq.SkipRetry)
	}

	raw := payload.Event
	ctx = logger.WithProductID(ctx, raw.ProductID)

	outcome, err := p.gateway.Process(ctx, raw)
	if err != nil {
		if permanent(err) {
			p.logger.WarnContext(ctx, "event rejected",
				slog.String("event_type", raw.EventType),
				slog.String("error", err.Error()))
			return fmt.Errorf("%v: %w", err, asynq.SkipRetry)
		}

		p.logger.ErrorContext(ctx, "event processing failed",
			slog.String("event_type", raw.EventType),
			slog.String("error", err.Error()))
		return err
	}

	attrs := []any{slog.String("event_type", string(outcome.EventType))}
	switch {
	case outcome.Batch != nil:
		attrs = append(attrs, slog.Int64("batch_id", outcome.Batch.ID))
	case outcome.Sale != nil && outcome.Sale.Sale != nil:
		attrs = append(attrs,
			slog.Int64("sale_id", outcome.Sale.Sale.ID),
			slog.String("total_cost", outcome.Sale.Sale.TotalCost.String()))
	}
	p.logger.InfoContext(ctx, "event processed", attrs...)

	return nil
}

func permanent(err error) bool {
	return errors.Is(err, domain.ErrValidation) ||
		errors.Is(err, domain.ErrUnsupportedEventType) ||
		errors.Is(err, domain.ErrInvalidArgument) ||
		errors.Is(err, domain.ErrInsufficientInventory)
}
