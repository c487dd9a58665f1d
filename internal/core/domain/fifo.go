// internal/core/domain/fifo.go
package domain

import (
	"slices"

	"github.com/shopspring/decimal"
)

// CostScale is the number of decimal places kept for derived per-unit costs.
const CostScale = 4

// Allocation is the outcome of walking a product's batches for one sale.
type Allocation struct {
	Details   []ConsumptionDetail
	TotalCost decimal.Decimal
	Available int64
}

// Quantity returns the total units the allocation draws.
func (a *Allocation) Quantity() int64 {
	var n int64
	for _, d := range a.Details {
		n += d.QuantityUsed
	}
	return n
}

// AllocateFIFO decides which batches a sale of quantity units consumes.
// Batches are ordered by purchase timestamp then id, so callers may pass them
// in any order. Exhausted batches are skipped. The input is not modified.
//
// If the batches cannot cover quantity an *InsufficientInventoryError is
// returned and nothing is allocated.
func AllocateFIFO(productID string, batches []Batch, quantity int64) (*Allocation, error) {
	if quantity <= 0 {
		return nil, invalidArgument("quantity must be positive, got %d", quantity)
	}

	ordered := make([]Batch, 0, len(batches))
	var available int64
	for _, b := range batches {
		if !b.Available() {
			continue
		}
		ordered = append(ordered, b)
		available += b.RemainingQuantity
	}

	if available < quantity {
		return nil, NewInsufficientInventoryError(productID, available, quantity)
	}

	slices.SortStableFunc(ordered, func(a, b Batch) int {
		switch {
		case a.Before(&b):
			return -1
		case b.Before(&a):
			return 1
		default:
			return 0
		}
	})

	alloc := &Allocation{
		TotalCost: decimal.Zero,
		Available: available,
	}

	needed := quantity
	for _, b := range ordered {
		if needed == 0 {
			break
		}

		take := min(needed, b.RemainingQuantity)
		detail := ConsumptionDetail{
			BatchID:      b.ID,
			QuantityUsed: take,
			UnitPrice:    b.UnitPrice,
		}
		alloc.Details = append(alloc.Details, detail)
		alloc.TotalCost = alloc.TotalCost.Add(detail.Cost())
		needed -= take
	}

	return alloc, nil
}
