// internal/core/services/gateway.go
package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/ammerola/fifo-ledger/internal/core/domain"
	"github.com/ammerola/fifo-ledger/internal/core/ports"
)

// ErrNoPublisher is returned by Publish when the gateway was built without
// a task publisher.
var ErrNoPublisher = errors.New("event publishing is not configured")

// EventGateway validates inbound events, routes them to the engine and
// keeps the status cache in step with committed mutations.
type EventGateway struct {
	registry    ports.ProductRegistry
	engine      ports.LedgerEngine
	publisher   ports.TaskPublisher
	locker      ports.ProductLocker
	invalidator ports.StatusInvalidator
	now         func() time.Time
	logger      *slog.Logger
}

var _ ports.EventGateway = (*EventGateway)(nil)

// GatewayOption configures optional collaborators of the gateway.
type GatewayOption func(*EventGateway)

// WithPublisher lets the gateway enqueue events instead of handling them inline.
func WithPublisher(p ports.TaskPublisher) GatewayOption {
	return func(g *EventGateway) { g.publisher = p }
}

// WithLocker serializes handling per product across processes.
func WithLocker(l ports.ProductLocker) GatewayOption {
	return func(g *EventGateway) { g.locker = l }
}

// WithInvalidator drops cached status after each mutation.
func WithInvalidator(i ports.StatusInvalidator) GatewayOption {
	return func(g *EventGateway) { g.invalidator = i }
}

// WithClock overrides the time source used for events without a timestamp.
func WithClock(now func() time.Time) GatewayOption {
	return func(g *EventGateway) { g.now = now }
}

// NewEventGateway creates a new event gateway
func NewEventGateway(registry ports.ProductRegistry, engine ports.LedgerEngine, logger *slog.Logger, opts ...GatewayOption) *EventGateway {
	g := &EventGateway{
		registry: registry,
		engine:   engine,
		now:      time.Now,
		logger:   logger.With(slog.String("service", "gateway")),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Handle applies one validated event: the product is registered if needed,
// then the purchase or sale is recorded.
func (g *EventGateway) Handle(ctx context.Context, ev domain.Event) (*domain.EventOutcome, error) {
	productID := ev.Product()

	if g.locker != nil {
		unlock, err := g.locker.Lock(ctx, productID)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", domain.ErrConcurrencyConflict, err)
		}
		defer func() {
			if err := unlock(context.WithoutCancel(ctx)); err != nil {
				g.logger.WarnContext(ctx, "failed to release product lock",
					slog.String("product_id", productID),
					slog.String("error", err.Error()))
			}
		}()
	}

	if _, err := g.registry.EnsureExists(ctx, productID, ""); err != nil {
		return nil, err
	}

	outcome := &domain.EventOutcome{
		EventType: ev.Type(),
		ProductID: productID,
	}

	switch e := ev.(type) {
	case domain.PurchaseEvent:
		batch, err := g.engine.RecordPurchase(ctx, e.ProductID, e.Quantity, e.UnitPrice, e.Timestamp)
		if err != nil {
			return nil, err
		}
		outcome.Batch = batch
	case domain.SaleEvent:
		sale, err := g.engine.RecordSale(ctx, e.ProductID, e.Quantity, e.Timestamp)
		if err != nil {
			return nil, err
		}
		outcome.Sale = sale
	default:
		return nil, fmt.Errorf("%w: %T", domain.ErrUnsupportedEventType, ev)
	}

	if g.invalidator != nil {
		g.invalidator.Invalidate(ctx, productID)
	}

	g.logger.InfoContext(ctx, "event processed",
		slog.String("event_type", string(ev.Type())),
		slog.String("product_id", productID),
		slog.Int64("quantity", ev.Units()))

	return outcome, nil
}

// Process parses raw and handles it inline.
func (g *EventGateway) Process(ctx context.Context, raw domain.RawEvent) (*domain.EventOutcome, error) {
	ev, err := domain.ParseEvent(raw, g.now())
	if err != nil {
		return nil, err
	}
	return g.Handle(ctx, ev)
}

// Publish validates raw and enqueues it. The timestamp is fixed at publish
// time so queueing delay does not move the event.
func (g *EventGateway) Publish(ctx context.Context, raw domain.RawEvent) (domain.Event, string, error) {
	ev, err := domain.ParseEvent(raw, g.now())
	if err != nil {
		return nil, "", err
	}

	if g.publisher == nil {
		return nil, "", ErrNoPublisher
	}

	taskID, err := g.publisher.PublishEvent(ctx, domain.ToRaw(ev))
	if err != nil {
		return nil, "", fmt.Errorf("failed to publish event: %w", err)
	}

	g.logger.DebugContext(ctx, "event published",
		slog.String("task_id", taskID),
		slog.String("event_type", string(ev.Type())),
		slog.String("product_id", ev.Product()))

	return ev, taskID, nil
}

// SimulateScenario feeds the demo scenario through the gateway: enqueued
// when a publisher is configured, handled inline otherwise. A failing event
// is recorded and the run continues; only cancellation stops it early.
func (g *EventGateway) SimulateScenario(ctx context.Context) (*ports.SimulationReport, error) {
	events := DemoScenario(g.now())
	report := &ports.SimulationReport{
		Total:   len(events),
		Results: make([]ports.SimulatedEvent, 0, len(events)),
	}

	for i, raw := range events {
		if err := ctx.Err(); err != nil {
			return report, fmt.Errorf("demo scenario interrupted after %d events: %w", i, err)
		}

		result := ports.SimulatedEvent{
			Index:     i + 1,
			EventType: raw.EventType,
			ProductID: raw.ProductID,
		}

		var err error
		if g.publisher != nil {
			_, result.TaskID, err = g.Publish(ctx, raw)
		} else {
			result.Outcome, err = g.Process(ctx, raw)
		}

		if err != nil {
			result.Error = err.Error()
			report.Failed++
			g.logger.WarnContext(ctx, "demo scenario event failed",
				slog.Int("index", i+1),
				slog.String("event_type", raw.EventType),
				slog.String("product_id", raw.ProductID),
				slog.String("error", err.Error()))
		} else {
			result.Success = true
			report.Successful++
		}
		report.Results = append(report.Results, result)
	}

	g.logger.InfoContext(ctx, "demo scenario submitted",
		slog.Int("total", report.Total),
		slog.Int("successful", report.Successful),
		slog.Int("failed", report.Failed))

	return report, nil
}
