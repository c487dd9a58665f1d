package domain_test

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ammerola/fifo-ledger/internal/core/domain"
)

var t0 = time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)

func batch(id int64, remaining int64, price string, daysAfter int) domain.Batch {
	return domain.Batch{
		ID:                id,
		ProductID:         "PRD001",
		Quantity:          remaining,
		UnitPrice:         decimal.RequireFromString(price),
		RemainingQuantity: remaining,
		PurchaseTimestamp: t0.AddDate(0, 0, daysAfter),
	}
}

func TestAllocateFIFO(t *testing.T) {
	tests := []struct {
		name          string
		batches       []domain.Batch
		quantity      int64
		wantDetails   []domain.ConsumptionDetail
		wantTotal     string
		wantAvailable int64
		wantErr       error
	}{
		{
			name:          "single_batch_partial",
			batches:       []domain.Batch{batch(1, 100, "50", 0)},
			quantity:      60,
			wantDetails:   []domain.ConsumptionDetail{{BatchID: 1, QuantityUsed: 60, UnitPrice: decimal.NewFromInt(50)}},
			wantTotal:     "3000",
			wantAvailable: 100,
		},
		{
			name:     "spans_two_batches_oldest_first",
			batches:  []domain.Batch{batch(2, 50, "55", 4), batch(1, 100, "50", 0)},
			quantity: 120,
			wantDetails: []domain.ConsumptionDetail{
				{BatchID: 1, QuantityUsed: 100, UnitPrice: decimal.NewFromInt(50)},
				{BatchID: 2, QuantityUsed: 20, UnitPrice: decimal.NewFromInt(55)},
			},
			wantTotal:     "6100",
			wantAvailable: 150,
		},
		{
			name:     "equal_timestamps_break_on_id",
			batches:  []domain.Batch{batch(7, 10, "2", 0), batch(3, 10, "1", 0)},
			quantity: 15,
			wantDetails: []domain.ConsumptionDetail{
				{BatchID: 3, QuantityUsed: 10, UnitPrice: decimal.NewFromInt(1)},
				{BatchID: 7, QuantityUsed: 5, UnitPrice: decimal.NewFromInt(2)},
			},
			wantTotal:     "20",
			wantAvailable: 20,
		},
		{
			name:          "skips_exhausted_batches",
			batches:       []domain.Batch{batch(1, 0, "1", 0), batch(2, 5, "3", 1)},
			quantity:      5,
			wantDetails:   []domain.ConsumptionDetail{{BatchID: 2, QuantityUsed: 5, UnitPrice: decimal.NewFromInt(3)}},
			wantTotal:     "15",
			wantAvailable: 5,
		},
		{
			name:     "exact_decimal_arithmetic",
			batches:  []domain.Batch{batch(1, 3, "0.1", 0), batch(2, 3, "0.2", 1)},
			quantity: 6,
			wantDetails: []domain.ConsumptionDetail{
				{BatchID: 1, QuantityUsed: 3, UnitPrice: decimal.RequireFromString("0.1")},
				{BatchID: 2, QuantityUsed: 3, UnitPrice: decimal.RequireFromString("0.2")},
			},
			wantTotal:     "0.9",
			wantAvailable: 6,
		},
		{
			name:     "insufficient_inventory",
			batches:  []domain.Batch{batch(1, 40, "10", 0)},
			quantity: 41,
			wantErr:  domain.ErrInsufficientInventory,
		},
		{
			name:     "no_batches",
			quantity: 1,
			wantErr:  domain.ErrInsufficientInventory,
		},
		{
			name:     "zero_quantity",
			batches:  []domain.Batch{batch(1, 40, "10", 0)},
			quantity: 0,
			wantErr:  domain.ErrInvalidArgument,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			alloc, err := domain.AllocateFIFO("PRD001", tt.batches, tt.quantity)

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, alloc)
				return
			}

			require.NoError(t, err)
			require.Len(t, alloc.Details, len(tt.wantDetails))
			for i, want := range tt.wantDetails {
				got := alloc.Details[i]
				assert.Equal(t, want.BatchID, got.BatchID)
				assert.Equal(t, want.QuantityUsed, got.QuantityUsed)
				assert.True(t, want.UnitPrice.Equal(got.UnitPrice), "unit price %s != %s", want.UnitPrice, got.UnitPrice)
			}
			assert.True(t, decimal.RequireFromString(tt.wantTotal).Equal(alloc.TotalCost),
				"total %s != %s", tt.wantTotal, alloc.TotalCost)
			assert.Equal(t, tt.wantAvailable, alloc.Available)
			assert.Equal(t, tt.quantity, alloc.Quantity())
		})
	}
}

func TestAllocateFIFO_InsufficientReportsAvailable(t *testing.T) {
	batches := []domain.Batch{batch(1, 25, "10", 0), batch(2, 15, "12", 1)}

	_, err := domain.AllocateFIFO("PRD001", batches, 41)

	var insufficient *domain.InsufficientInventoryError
	require.True(t, errors.As(err, &insufficient))
	assert.Equal(t, "PRD001", insufficient.ProductID)
	assert.Equal(t, int64(40), insufficient.Available)
	assert.Equal(t, int64(41), insufficient.Requested)
}

func TestAllocateFIFO_DoesNotMutateInput(t *testing.T) {
	batches := []domain.Batch{batch(2, 50, "55", 4), batch(1, 100, "50", 0)}

	_, err := domain.AllocateFIFO("PRD001", batches, 120)
	require.NoError(t, err)

	assert.Equal(t, int64(2), batches[0].ID)
	assert.Equal(t, int64(50), batches[0].RemainingQuantity)
	assert.Equal(t, int64(100), batches[1].RemainingQuantity)
}

func TestNewBatch(t *testing.T) {
	tests := []struct {
		name     string
		product  string
		quantity int64
		price    decimal.Decimal
		wantErr  bool
	}{
		{name: "valid", product: "P", quantity: 10, price: decimal.NewFromInt(5)},
		{name: "free_goods", product: "P", quantity: 10, price: decimal.Zero},
		{name: "missing_product", quantity: 10, price: decimal.NewFromInt(5), wantErr: true},
		{name: "zero_quantity", product: "P", quantity: 0, price: decimal.NewFromInt(5), wantErr: true},
		{name: "negative_price", product: "P", quantity: 1, price: decimal.NewFromInt(-1), wantErr: true},
		{name: "four_decimal_places", product: "P", quantity: 3, price: decimal.RequireFromString("0.3333")},
		{name: "five_decimal_places", product: "P", quantity: 3, price: decimal.RequireFromString("0.33333"), wantErr: true},
		{name: "price_out_of_range", product: "P", quantity: 1, price: domain.MaxUnitPrice, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := domain.NewBatch(tt.product, tt.quantity, tt.price, t0)
			if tt.wantErr {
				assert.ErrorIs(t, err, domain.ErrInvalidArgument)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.quantity, b.RemainingQuantity)
			assert.Equal(t, int64(0), b.Consumed())
			assert.Equal(t, t0, b.PurchaseTimestamp)
		})
	}
}

func TestNewBatch_TruncatesToMicroseconds(t *testing.T) {
	early, err := domain.NewBatch("P", 1, decimal.NewFromInt(1), t0.Add(500*time.Nanosecond))
	require.NoError(t, err)
	late, err := domain.NewBatch("P", 1, decimal.NewFromInt(1), t0.Add(900*time.Nanosecond))
	require.NoError(t, err)

	assert.Equal(t, t0, early.PurchaseTimestamp)
	assert.Equal(t, t0, late.PurchaseTimestamp)

	early.ID, late.ID = 1, 2
	assert.True(t, early.Before(late), "equal stored timestamps fall back to arrival order")
}
