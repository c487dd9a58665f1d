// internal/core/domain/batch.go
package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// PriceScale is the number of fractional digits a stored price may carry.
const PriceScale = 4

// MaxUnitPrice is the exclusive upper bound on a stored unit price.
var MaxUnitPrice = decimal.New(1, 14)

// TimestampPrecision is the resolution event timestamps are kept at.
const TimestampPrecision = time.Microsecond

// StoredTime normalises t to UTC at TimestampPrecision.
func StoredTime(t time.Time) time.Time {
	return t.UTC().Truncate(TimestampPrecision)
}

// checkUnitPrice returns a description of what is wrong with price, or "".
func checkUnitPrice(price decimal.Decimal) string {
	switch {
	case price.IsNegative():
		return "cannot be negative"
	case !price.Equal(price.Truncate(PriceScale)):
		return fmt.Sprintf("must have at most %d decimal places", PriceScale)
	case price.GreaterThanOrEqual(MaxUnitPrice):
		return "must be less than " + MaxUnitPrice.String()
	}
	return ""
}

// Batch is a purchase lot. Batches are consumed oldest first and never deleted.
//
// ID is assigned by the store from a monotonically increasing sequence and
// breaks ties between batches with equal purchase timestamps.
type Batch struct {
	ID                int64           `json:"id"`
	ProductID         string          `json:"product_id"`
	Quantity          int64           `json:"quantity"`
	UnitPrice         decimal.Decimal `json:"unit_price"`
	RemainingQuantity int64           `json:"remaining_quantity"`
	PurchaseTimestamp time.Time       `json:"purchase_timestamp"`
	CreatedAt         time.Time       `json:"created_at"`
}

// NewBatch validates a purchase and returns an unconsumed batch for it.
func NewBatch(productID string, quantity int64, unitPrice decimal.Decimal, purchasedAt time.Time) (*Batch, error) {
	if productID == "" {
		return nil, invalidArgument("product_id is required")
	}
	if quantity <= 0 {
		return nil, invalidArgument("quantity must be positive, got %d", quantity)
	}
	if msg := checkUnitPrice(unitPrice); msg != "" {
		return nil, invalidArgument("unit_price %s, got %s", msg, unitPrice)
	}
	if purchasedAt.IsZero() {
		purchasedAt = time.Now()
	}

	return &Batch{
		ProductID:         productID,
		Quantity:          quantity,
		UnitPrice:         unitPrice,
		RemainingQuantity: quantity,
		PurchaseTimestamp: StoredTime(purchasedAt),
	}, nil
}

// Available reports whether the batch still has units to sell.
func (b *Batch) Available() bool {
	return b.RemainingQuantity > 0
}

// Consumed returns how many units sales have drawn from the batch.
func (b *Batch) Consumed() int64 {
	return b.Quantity - b.RemainingQuantity
}

// RemainingValue is remaining quantity times unit price.
func (b *Batch) RemainingValue() decimal.Decimal {
	return b.UnitPrice.Mul(decimal.NewFromInt(b.RemainingQuantity))
}

// Before reports whether b is consumed ahead of other.
func (b *Batch) Before(other *Batch) bool {
	if !b.PurchaseTimestamp.Equal(other.PurchaseTimestamp) {
		return b.PurchaseTimestamp.Before(other.PurchaseTimestamp)
	}
	return b.ID < other.ID
}
