// internal/handlers/response.go
package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/ammerola/fifo-ledger/internal/core/domain"
	"github.com/ammerola/fifo-ledger/internal/core/services"
)

// maxBodyBytes caps JSON request bodies.
const maxBodyBytes = 1 << 20

// Response is the envelope every API endpoint writes.
type Response struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
	Field   string `json:"field,omitempty"`
}

func respondJSON(w http.ResponseWriter, logger *slog.Logger, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(Response{Success: true, Data: data}); err != nil {
		logger.Error("failed to encode JSON response",
			slog.String("error", err.Error()))
	}
}

func respondError(w http.ResponseWriter, logger *slog.Logger, status int, message string) {
	writeError(w, logger, status, Response{Error: message})
}

func writeError(w http.ResponseWriter, logger *slog.Logger, status int, body Response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	body.Success = false
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Error("failed to encode error response",
			slog.String("error", err.Error()))
	}
}

// respondDomainError maps core errors onto HTTP status codes. Anything it
// does not recognise is logged and reported as a 500 without detail.
func respondDomainError(w http.ResponseWriter, r *http.Request, logger *slog.Logger, err error, action string) {
	var validation *domain.ValidationError
	var insufficient *domain.InsufficientInventoryError

	switch {
	case errors.As(err, &validation):
		writeError(w, logger, http.StatusBadRequest, Response{Error: validation.Message, Field: validation.Field})
	case errors.Is(err, domain.ErrUnsupportedEventType), errors.Is(err, domain.ErrInvalidArgument):
		respondError(w, logger, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrProductNotFound):
		respondError(w, logger, http.StatusNotFound, err.Error())
	case errors.As(err, &insufficient):
		respondError(w, logger, http.StatusConflict, insufficient.Error())
	case errors.Is(err, domain.ErrConcurrencyConflict):
		respondError(w, logger, http.StatusConflict, "the product is being modified concurrently, retry the request")
	case errors.Is(err, services.ErrNoPublisher), errors.Is(err, services.ErrStorageDisabled):
		respondError(w, logger, http.StatusServiceUnavailable, err.Error())
	default:
		logger.ErrorContext(r.Context(), "request failed",
			slog.String("action", action),
			slog.String("error", err.Error()))
		respondError(w, logger, http.StatusInternalServerError, fmt.Sprintf("Failed to %s", action))
	}
}

// decodeJSON reads a single JSON document from the request body. An empty
// body leaves dst untouched when allowEmpty is set.
func decodeJSON(r *http.Request, dst any, allowEmpty bool) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	dec.UseNumber()
	if err := dec.Decode(dst); err != nil {
		if allowEmpty && errors.Is(err, io.EOF) {
			return nil
		}
		return &domain.ValidationError{Field: "body", Message: "must be a valid JSON object"}
	}
	return nil
}
