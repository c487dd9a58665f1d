// internal/handlers/export.go
package handlers

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/ammerola/fifo-ledger/internal/core/ports"
	"github.com/ammerola/fifo-ledger/internal/core/services"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExportHandler serves ledger workbooks, inline or through the export queue.
type ExportHandler struct {
	exporter  ports.Exporter
	publisher ports.TaskPublisher
	logger    *slog.Logger
}

// NewExportHandler creates a new export handler. publisher may be nil, in
// which case queued exports are unavailable.
func NewExportHandler(exporter ports.Exporter, publisher ports.TaskPublisher, logger *slog.Logger) *ExportHandler {
	return &ExportHandler{
		exporter:  exporter,
		publisher: publisher,
		logger:    logger.With(slog.String("handler", "export")),
	}
}

// QueuedExport is returned when an export task was enqueued.
type QueuedExport struct {
	TaskID string `json:"task_id"`
}

// DownloadLedger handles GET /api/v1/export/ledger.xlsx
func (h *ExportHandler) DownloadLedger(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	req := ports.ExportRequest{
		ProductID: strings.TrimSpace(r.URL.Query().Get("product_id")),
	}

	data, entries, err := h.exporter.BuildWorkbook(ctx, req)
	if err != nil {
		respondDomainError(w, r, h.logger, err, "build ledger workbook")
		return
	}

	filename := fmt.Sprintf("ledger_%s.xlsx", time.Now().UTC().Format("20060102_150405"))
	if req.ProductID != "" {
		filename = fmt.Sprintf("ledger_%s_%s.xlsx", req.ProductID, time.Now().UTC().Format("20060102_150405"))
	}

	w.Header().Set("Content-Type", xlsxContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.Header().Set("X-Ledger-Entries", strconv.Itoa(entries))
	w.WriteHeader(http.StatusOK)

	if _, err := w.Write(data); err != nil {
		h.logger.ErrorContext(ctx, "failed to write workbook",
			slog.String("error", err.Error()))
	}
}

// EnqueueExport handles POST /api/v1/export/ledger
func (h *ExportHandler) EnqueueExport(w http.ResponseWriter, r *http.Request) {
	if h.publisher == nil {
		respondDomainError(w, r, h.logger, services.ErrNoPublisher, "enqueue export")
		return
	}

	var req ports.ExportRequest
	if err := decodeJSON(r, &req, true); err != nil {
		respondDomainError(w, r, h.logger, err, "enqueue export")
		return
	}
	req.ProductID = strings.TrimSpace(req.ProductID)

	taskID, err := h.publisher.PublishExport(r.Context(), req)
	if err != nil {
		respondDomainError(w, r, h.logger, err, "enqueue export")
		return
	}

	h.logger.InfoContext(r.Context(), "export queued",
		slog.String("task_id", taskID),
		slog.String("product_id", req.ProductID))

	respondJSON(w, h.logger, http.StatusAccepted, QueuedExport{TaskID: taskID})
}
