package domain_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ammerola/fifo-ledger/internal/core/domain"
)

func TestBuildLedger(t *testing.T) {
	b1 := batch(1, 100, "50", 0)
	b1.RemainingQuantity = 40
	b2 := batch(2, 50, "55", 4)

	sale := domain.SaleWithDetails{
		Sale: domain.Sale{
			ID:            1,
			ProductID:     "PRD001",
			Quantity:      60,
			TotalCost:     decimal.NewFromInt(3000),
			SaleTimestamp: t0.AddDate(0, 0, 9),
		},
		Details: []domain.ConsumptionDetail{{BatchID: 1, QuantityUsed: 60, UnitPrice: decimal.NewFromInt(50)}},
	}

	entries := domain.BuildLedger([]domain.Batch{b1, b2}, []domain.SaleWithDetails{sale})

	require.Len(t, entries, 3)
	assert.Equal(t, domain.EventTypeSale, entries[0].EventType)
	assert.Equal(t, int64(2), entries[1].ID)
	assert.Equal(t, int64(1), entries[2].ID)

	saleEntry := entries[0]
	require.NotNil(t, saleEntry.TotalCost)
	require.NotNil(t, saleEntry.UnitCost)
	assert.True(t, saleEntry.UnitCost.Equal(decimal.NewFromInt(50)))
	assert.Nil(t, saleEntry.UnitPrice)
	assert.Len(t, saleEntry.BatchDetails, 1)

	purchase := entries[2]
	require.NotNil(t, purchase.RemainingQuantity)
	assert.Equal(t, int64(40), *purchase.RemainingQuantity)
	assert.Equal(t, int64(100), purchase.Quantity)
	assert.Nil(t, purchase.TotalCost)
}

func TestBuildLedger_TiesListSalesFirst(t *testing.T) {
	b := batch(5, 10, "1", 0)
	s := domain.SaleWithDetails{Sale: domain.Sale{ID: 2, ProductID: "PRD001", Quantity: 1, SaleTimestamp: t0}}

	entries := domain.BuildLedger([]domain.Batch{b}, []domain.SaleWithDetails{s})

	require.Len(t, entries, 2)
	assert.Equal(t, domain.EventTypeSale, entries[0].EventType)
	assert.Equal(t, domain.EventTypePurchase, entries[1].EventType)
	assert.NotNil(t, entries[0].BatchDetails)
}

func TestBuildLedger_Empty(t *testing.T) {
	entries := domain.BuildLedger(nil, nil)
	assert.NotNil(t, entries)
	assert.Empty(t, entries)
}
