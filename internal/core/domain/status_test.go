package domain_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/ammerola/fifo-ledger/internal/core/domain"
)

func TestNewInventoryStatus(t *testing.T) {
	t.Run("after_partial_sale", func(t *testing.T) {
		b := batch(1, 100, "50", 0)
		b.RemainingQuantity = 40

		status := domain.NewInventoryStatus("PRD001", []domain.Batch{b})

		assert.Equal(t, int64(40), status.TotalQuantity)
		assert.True(t, status.TotalCost.Equal(decimal.NewFromInt(2000)))
		assert.True(t, status.AverageCost.Equal(decimal.NewFromInt(50)))
		assert.Len(t, status.Batches, 1)
		assert.Equal(t, int64(40), status.Batches[0].Quantity)
	})

	t.Run("blended_average", func(t *testing.T) {
		status := domain.NewInventoryStatus("PRD001", []domain.Batch{
			batch(1, 1, "1", 0),
			batch(2, 2, "2", 1),
		})

		assert.Equal(t, int64(3), status.TotalQuantity)
		assert.True(t, status.TotalCost.Equal(decimal.NewFromInt(5)))
		assert.Equal(t, "1.6667", status.AverageCost.StringFixed(4))
	})

	t.Run("empty_stock_has_zero_average", func(t *testing.T) {
		exhausted := batch(1, 10, "9.99", 0)
		exhausted.RemainingQuantity = 0

		status := domain.NewInventoryStatus("PRD001", []domain.Batch{exhausted})

		assert.Equal(t, int64(0), status.TotalQuantity)
		assert.True(t, status.TotalCost.IsZero())
		assert.True(t, status.AverageCost.IsZero())
		assert.Len(t, status.Batches, 1)
	})

	t.Run("unknown_product", func(t *testing.T) {
		status := domain.NewInventoryStatus("NOPE", nil)

		assert.Equal(t, "NOPE", status.ProductID)
		assert.NotNil(t, status.Batches)
		assert.Empty(t, status.Batches)
	})
}
