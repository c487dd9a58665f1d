// internal/core/domain/status.go
package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// BatchSummary is the reporting view of one batch.
type BatchSummary struct {
	ID                int64           `json:"id"`
	Quantity          int64           `json:"quantity"`
	UnitPrice         decimal.Decimal `json:"unitPrice"`
	PurchaseTimestamp time.Time       `json:"purchaseTimestamp"`
}

// InventoryStatus rolls up a product's remaining stock and its value.
type InventoryStatus struct {
	ProductID     string          `json:"productId"`
	TotalQuantity int64           `json:"totalQuantity"`
	TotalCost     decimal.Decimal `json:"totalCost"`
	AverageCost   decimal.Decimal `json:"averageCost"`
	Batches       []BatchSummary  `json:"batches"`
}

// NewInventoryStatus computes a status from every batch of one product.
// Batches must already be in FIFO order.
func NewInventoryStatus(productID string, batches []Batch) *InventoryStatus {
	status := &InventoryStatus{
		ProductID:   productID,
		TotalCost:   decimal.Zero,
		AverageCost: decimal.Zero,
		Batches:     make([]BatchSummary, 0, len(batches)),
	}

	for i := range batches {
		b := &batches[i]
		status.TotalQuantity += b.RemainingQuantity
		status.TotalCost = status.TotalCost.Add(b.RemainingValue())
		status.Batches = append(status.Batches, BatchSummary{
			ID:                b.ID,
			Quantity:          b.RemainingQuantity,
			UnitPrice:         b.UnitPrice,
			PurchaseTimestamp: b.PurchaseTimestamp,
		})
	}

	if status.TotalQuantity > 0 {
		status.AverageCost = status.TotalCost.DivRound(decimal.NewFromInt(status.TotalQuantity), CostScale)
	}

	return status
}
