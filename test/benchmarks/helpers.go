// test/benchmarks/helpers.go
package benchmarks

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/ammerola/fifo-ledger/internal/core/domain"
)

var benchStart = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

// makeBatches returns n open batches of size units each, one minute apart,
// with prices cycling through a few cent values.
func makeBatches(productID string, n int, size int64) []domain.Batch {
	prices := []decimal.Decimal{
		decimal.RequireFromString("10.25"),
		decimal.RequireFromString("11.50"),
		decimal.RequireFromString("9.75"),
		decimal.RequireFromString("12.0001"),
	}

	batches := make([]domain.Batch, n)
	for i := range batches {
		batches[i] = domain.Batch{
			ID:                int64(i + 1),
			ProductID:         productID,
			Quantity:          size,
			UnitPrice:         prices[i%len(prices)],
			RemainingQuantity: size,
			PurchaseTimestamp: benchStart.Add(time.Duration(i) * time.Minute),
		}
	}
	return batches
}

// makeSales returns n sales of qty units, each drawing from two batches.
func makeSales(productID string, n int, qty int64) []domain.SaleWithDetails {
	half := qty / 2
	sales := make([]domain.SaleWithDetails, n)
	for i := range sales {
		id := int64(i + 1)
		details := []domain.ConsumptionDetail{
			{SaleID: id, BatchID: id, QuantityUsed: half, UnitPrice: decimal.NewFromInt(10)},
			{SaleID: id, BatchID: id + 1, QuantityUsed: qty - half, UnitPrice: decimal.NewFromInt(12)},
		}
		total := decimal.Zero
		for _, d := range details {
			total = total.Add(d.Cost())
		}
		sales[i] = domain.SaleWithDetails{
			Sale: domain.Sale{
				ID:            id,
				ProductID:     productID,
				Quantity:      qty,
				TotalCost:     total,
				SaleTimestamp: benchStart.Add(time.Duration(i)*time.Minute + 30*time.Second),
			},
			Details: details,
		}
	}
	return sales
}
