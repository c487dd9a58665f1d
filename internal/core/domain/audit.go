// internal/core/domain/audit.go
package domain

import "fmt"

// BatchUsage pairs a batch with the units its consumption details account for.
type BatchUsage struct {
	Batch Batch
	Used  int64
}

// BatchViolation is a batch whose stored quantities disagree with its
// consumption history.
type BatchViolation struct {
	BatchID   int64  `json:"batch_id"`
	ProductID string `json:"product_id"`
	Quantity  int64  `json:"quantity"`
	Remaining int64  `json:"remaining_quantity"`
	Used      int64  `json:"quantity_used"`
	Reason    string `json:"reason"`
}

// CheckUsage returns a violation when remaining is out of bounds or the
// details do not add up to quantity minus remaining.
func CheckUsage(u BatchUsage) *BatchViolation {
	b := u.Batch
	var reason string
	switch {
	case b.RemainingQuantity < 0:
		reason = "remaining quantity is negative"
	case b.RemainingQuantity > b.Quantity:
		reason = "remaining quantity exceeds original quantity"
	case u.Used != b.Consumed():
		reason = fmt.Sprintf("details account for %d units, batch consumed %d", u.Used, b.Consumed())
	default:
		return nil
	}

	return &BatchViolation{
		BatchID:   b.ID,
		ProductID: b.ProductID,
		Quantity:  b.Quantity,
		Remaining: b.RemainingQuantity,
		Used:      u.Used,
		Reason:    reason,
	}
}
