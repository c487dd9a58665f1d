// internal/handlers/admin.go
package handlers

import (
	"log/slog"
	"net/http"

	"github.com/ammerola/fifo-ledger/internal/core/ports"
)

// AdminHandler exposes maintenance operations.
type AdminHandler struct {
	reset  ports.ResetService
	logger *slog.Logger
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(reset ports.ResetService, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{
		reset:  reset,
		logger: logger.With(slog.String("handler", "admin")),
	}
}

// ResetData handles DELETE /api/v1/admin/data
func (h *AdminHandler) ResetData(w http.ResponseWriter, r *http.Request) {
	result, err := h.reset.ResetAll(r.Context())
	if err != nil {
		respondDomainError(w, r, h.logger, err, "reset ledger data")
		return
	}

	h.logger.WarnContext(r.Context(), "ledger data reset",
		slog.Any("tables", result.Tables))

	respondJSON(w, h.logger, http.StatusOK, result)
}
