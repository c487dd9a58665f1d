// internal/handlers/events.go
package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/ammerola/fifo-ledger/internal/core/domain"
	"github.com/ammerola/fifo-ledger/internal/core/ports"
)

// EventHandler accepts purchase and sale events over HTTP.
type EventHandler struct {
	gateway ports.EventGateway
	logger  *slog.Logger
}

// NewEventHandler creates a new event handler
func NewEventHandler(gateway ports.EventGateway, logger *slog.Logger) *EventHandler {
	return &EventHandler{
		gateway: gateway,
		logger:  logger.With(slog.String("handler", "events")),
	}
}

// AcceptedEvent is returned when an event was queued for the worker.
type AcceptedEvent struct {
	TaskID    string           `json:"task_id"`
	EventType domain.EventType `json:"event_type"`
	ProductID string           `json:"product_id"`
	Quantity  int64            `json:"quantity"`
}

// SubmitEvent handles POST /api/v1/events. Events are validated and queued;
// with ?sync=true they are applied before the response is written.
func (h *EventHandler) SubmitEvent(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var raw domain.RawEvent
	if err := decodeJSON(r, &raw, false); err != nil {
		respondDomainError(w, r, h.logger, err, "submit event")
		return
	}

	if sync, _ := strconv.ParseBool(r.URL.Query().Get("sync")); sync {
		outcome, err := h.gateway.Process(ctx, raw)
		if err != nil {
			h.logger.WarnContext(ctx, "event rejected",
				slog.String("product_id", raw.ProductID),
				slog.String("event_type", raw.EventType),
				slog.String("error", err.Error()))
			respondDomainError(w, r, h.logger, err, "process event")
			return
		}
		respondJSON(w, h.logger, http.StatusCreated, outcome)
		return
	}

	ev, taskID, err := h.gateway.Publish(ctx, raw)
	if err != nil {
		respondDomainError(w, r, h.logger, err, "enqueue event")
		return
	}

	respondJSON(w, h.logger, http.StatusAccepted, AcceptedEvent{
		TaskID:    taskID,
		EventType: ev.Type(),
		ProductID: ev.Product(),
		Quantity:  ev.Units(),
	})
}

// Simulate handles POST /api/v1/events/simulate
func (h *EventHandler) Simulate(w http.ResponseWriter, r *http.Request) {
	report, err := h.gateway.SimulateScenario(r.Context())
	if err != nil {
		respondDomainError(w, r, h.logger, err, "run demo scenario")
		return
	}

	respondJSON(w, h.logger, http.StatusAccepted, report)
}
