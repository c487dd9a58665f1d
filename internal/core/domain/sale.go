// internal/core/domain/sale.go
package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale is an immutable record of units sold and their FIFO cost.
type Sale struct {
	ID            int64           `json:"id"`
	ProductID     string          `json:"product_id"`
	Quantity      int64           `json:"quantity"`
	TotalCost     decimal.Decimal `json:"total_cost"`
	SaleTimestamp time.Time       `json:"sale_timestamp"`
	CreatedAt     time.Time       `json:"created_at"`
}

// UnitCost is the blended cost per unit sold.
func (s *Sale) UnitCost() decimal.Decimal {
	if s.Quantity == 0 {
		return decimal.Zero
	}
	return s.TotalCost.DivRound(decimal.NewFromInt(s.Quantity), CostScale)
}

// ConsumptionDetail records how much of one batch a sale drew, at the
// batch's unit price at that moment.
type ConsumptionDetail struct {
	ID           int64           `json:"id,omitempty"`
	SaleID       int64           `json:"sale_id,omitempty"`
	BatchID      int64           `json:"batch_id"`
	QuantityUsed int64           `json:"quantity_used"`
	UnitPrice    decimal.Decimal `json:"unit_price"`
}

// Cost is quantity used times the price snapshot.
func (d ConsumptionDetail) Cost() decimal.Decimal {
	return d.UnitPrice.Mul(decimal.NewFromInt(d.QuantityUsed))
}

// SaleResult is what recording a sale returns.
type SaleResult struct {
	Sale    *Sale               `json:"sale"`
	Details []ConsumptionDetail `json:"details"`
}
