// internal/workers/tasks.go
package workers

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/hibiken/asynq"

	"github.com/ammerola/fifo-ledger/internal/core/domain"
	"github.com/ammerola/fifo-ledger/internal/core/ports"
)

const (
	TypeLedgerEvent  = "ledger:event"
	TypeLedgerExport = "ledger:export"
	TypeLedgerAudit  = "ledger:audit"
)

const (
	QueueEvents      = "events"
	QueueExports     = "exports"
	QueueMaintenance = "maintenance"
)

// DefaultQueues is the queue priority map used by the worker.
var DefaultQueues = map[string]int{
	QueueEvents:      6,
	QueueExports:     3,
	QueueMaintenance: 1,
}

// EventPayload is the body of a ledger:event task.
type EventPayload struct {
	Event      domain.RawEvent `json:"event"`
	EnqueuedAt time.Time       `json:"enqueued_at"`
}

// ExportPayload is the body of a ledger:export task.
type ExportPayload struct {
	Request ports.ExportRequest `json:"request"`
}

// NewEventTask builds a ledger:event task.
func NewEventTask(raw domain.RawEvent, maxRetry int) (*asynq.Task, error) {
	payload, err := json.Marshal(EventPayload{Event: raw, EnqueuedAt: time.Now().UTC()})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal event payload: %w", err)
	}
	return asynq.NewTask(TypeLedgerEvent, payload,
		asynq.Queue(QueueEvents),
		asynq.MaxRetry(maxRetry),
	), nil
}

// NewExportTask builds a ledger:export task.
func NewExportTask(req ports.ExportRequest) (*asynq.Task, error) {
	payload, err := json.Marshal(ExportPayload{Request: req})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal export payload: %w", err)
	}
	return asynq.NewTask(TypeLedgerExport, payload,
		asynq.Queue(QueueExports),
		asynq.MaxRetry(3),
		asynq.Timeout(5*time.Minute),
	), nil
}

// NewAuditTask builds a ledger:audit task. Only one may be pending at a time.
func NewAuditTask() *asynq.Task {
	return asynq.NewTask(TypeLedgerAudit, nil,
		asynq.Queue(QueueMaintenance),
		asynq.MaxRetry(0),
		asynq.Unique(time.Hour),
	)
}

// Enqueuer is the part of *asynq.Client used for publishing.
type Enqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

// TaskClient publishes ledger tasks through asynq.
type TaskClient struct {
	client        Enqueuer
	eventMaxRetry int
	logger        *slog.Logger
}

var _ ports.TaskPublisher = (*TaskClient)(nil)

// NewTaskClient creates a publisher. eventMaxRetry bounds redelivery of
// events that fail with retryable errors.
func NewTaskClient(client Enqueuer, eventMaxRetry int, logger *slog.Logger) *TaskClient {
	if eventMaxRetry <= 0 {
		eventMaxRetry = 10
	}
	return &TaskClient{
		client:        client,
		eventMaxRetry: eventMaxRetry,
		logger:        logger.With(slog.String("component", "task_client")),
	}
}

func (c *TaskClient) PublishEvent(ctx context.Context, raw domain.RawEvent) (string, error) {
	task, err := NewEventTask(raw, c.eventMaxRetry)
	if err != nil {
		return "", err
	}

	info, err := c.client.EnqueueContext(ctx, task)
	if err != nil {
		return "", fmt.Errorf("failed to enqueue event: %w", err)
	}

	c.logger.DebugContext(ctx, "event enqueued",
		slog.String("task_id", info.ID),
		slog.String("product_id", raw.ProductID),
		slog.String("event_type", raw.EventType))

	return info.ID, nil
}

func (c *TaskClient) PublishExport(ctx context.Context, req ports.ExportRequest) (string, error) {
	task, err := NewExportTask(req)
	if err != nil {
		return "", err
	}

	info, err := c.client.EnqueueContext(ctx, task)
	if err != nil {
		return "", fmt.Errorf("failed to enqueue export: %w", err)
	}

	c.logger.InfoContext(ctx, "export enqueued",
		slog.String("task_id", info.ID),
		slog.String("product_id", req.ProductID))

	return info.ID, nil
}
