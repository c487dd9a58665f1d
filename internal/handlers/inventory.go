// internal/handlers/inventory.go
package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/ammerola/fifo-ledger/internal/core/domain"
	"github.com/ammerola/fifo-ledger/internal/core/ports"
)

// InventoryHandler serves the read side: stock status, the ledger and the
// product catalogue.
type InventoryHandler struct {
	inventory ports.InventoryReader
	ledger    ports.LedgerReader
	registry  ports.ProductRegistry
	logger    *slog.Logger
}

// NewInventoryHandler creates a new inventory handler
func NewInventoryHandler(inventory ports.InventoryReader, ledger ports.LedgerReader, registry ports.ProductRegistry, logger *slog.Logger) *InventoryHandler {
	return &InventoryHandler{
		inventory: inventory,
		ledger:    ledger,
		registry:  registry,
		logger:    logger.With(slog.String("handler", "inventory")),
	}
}

// LedgerResponse wraps ledger entries with their count.
type LedgerResponse struct {
	Entries []domain.LedgerEntry `json:"entries"`
	Count   int                  `json:"count"`
}

// ListStatus handles GET /api/v1/inventory/status
func (h *InventoryHandler) ListStatus(w http.ResponseWriter, r *http.Request) {
	statuses, err := h.inventory.GetAllInventoryStatus(r.Context())
	if err != nil {
		respondDomainError(w, r, h.logger, err, "load inventory status")
		return
	}

	respondJSON(w, h.logger, http.StatusOK, statuses)
}

// GetStatus handles GET /api/v1/inventory/status/{productId}
func (h *InventoryHandler) GetStatus(w http.ResponseWriter, r *http.Request) {
	productID := strings.TrimSpace(r.PathValue("productId"))
	if productID == "" {
		respondError(w, h.logger, http.StatusBadRequest, "productId is required")
		return
	}

	status, err := h.inventory.GetInventoryStatus(r.Context(), productID)
	if err != nil {
		respondDomainError(w, r, h.logger, err, "load inventory status")
		return
	}

	respondJSON(w, h.logger, http.StatusOK, status)
}

// GetLedger handles GET /api/v1/inventory/ledger
func (h *InventoryHandler) GetLedger(w http.ResponseWriter, r *http.Request) {
	filter := domain.LedgerFilter{
		ProductID: strings.TrimSpace(r.URL.Query().Get("product_id")),
	}

	entries, err := h.ledger.Ledger(r.Context(), filter)
	if err != nil {
		respondDomainError(w, r, h.logger, err, "load ledger")
		return
	}
	if entries == nil {
		entries = []domain.LedgerEntry{}
	}

	respondJSON(w, h.logger, http.StatusOK, LedgerResponse{Entries: entries, Count: len(entries)})
}

// ListProducts handles GET /api/v1/products
func (h *InventoryHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.registry.List(r.Context())
	if err != nil {
		respondDomainError(w, r, h.logger, err, "list products")
		return
	}
	if products == nil {
		products = []domain.Product{}
	}

	respondJSON(w, h.logger, http.StatusOK, products)
}

// GetProduct handles GET /api/v1/products/{productId}
func (h *InventoryHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	product, err := h.registry.Get(r.Context(), r.PathValue("productId"))
	if err != nil {
		respondDomainError(w, r, h.logger, err, "load product")
		return
	}

	respondJSON(w, h.logger, http.StatusOK, product)
}
