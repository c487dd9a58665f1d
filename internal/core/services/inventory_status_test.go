package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	redis_a "github.com/ammerola/fifo-ledger/internal/adapters/redis_adapter"
	"github.com/ammerola/fifo-ledger/internal/core/domain"
	"github.com/ammerola/fifo-ledger/internal/core/services"
	"github.com/ammerola/fifo-ledger/test/helpers"
	"github.com/ammerola/fifo-ledger/test/mocks"
)

func TestInventoryAggregator_WithoutCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	reader := mocks.NewMockInventoryReader(ctrl)
	agg := services.NewInventoryAggregator(reader, nil, time.Minute, helpers.TestLogger())

	want := &domain.InventoryStatus{ProductID: "PRD001", TotalQuantity: 4}
	reader.EXPECT().GetInventoryStatus(gomock.Any(), "PRD001").Return(want, nil).Times(2)

	for range 2 {
		got, err := agg.GetInventoryStatus(context.Background(), "PRD001")
		require.NoError(t, err)
		assert.Same(t, want, got)
	}

	agg.Invalidate(context.Background(), "PRD001")
}

func newStatusCache(t *testing.T) (*redis_a.Cache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return redis_a.NewCache(client, "fifo", helpers.TestLogger()), mr
}

func statusWithQuantity(productID string, qty int64) *domain.InventoryStatus {
	return &domain.InventoryStatus{
		ProductID:     productID,
		TotalQuantity: qty,
		TotalCost:     decimal.NewFromInt(qty * 50),
		AverageCost:   decimal.NewFromInt(50),
		Batches:       []domain.BatchSummary{},
	}
}

func TestInventoryAggregator_ReadThroughCache(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	reader := mocks.NewMockInventoryReader(ctrl)
	cache, mr := newStatusCache(t)

	agg := services.NewInventoryAggregator(reader, cache, time.Minute, helpers.TestLogger())

	first := statusWithQuantity("PRD001", 40)
	second := statusWithQuantity("PRD001", 10)
	gomock.InOrder(
		reader.EXPECT().GetInventoryStatus(gomock.Any(), "PRD001").Return(first, nil),
		reader.EXPECT().GetInventoryStatus(gomock.Any(), "PRD001").Return(second, nil),
	)
	reader.EXPECT().GetAllInventoryStatus(gomock.Any()).Return([]domain.InventoryStatus{*first}, nil)

	got, err := agg.GetInventoryStatus(ctx, "PRD001")
	require.NoError(t, err)
	assert.Equal(t, int64(40), got.TotalQuantity)
	assert.True(t, mr.Exists("fifo:status:product:PRD001:0.0"))

	got, err = agg.GetInventoryStatus(ctx, "PRD001")
	require.NoError(t, err)
	assert.Equal(t, int64(40), got.TotalQuantity, "second read should come from cache")

	all, err := agg.GetAllInventoryStatus(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.True(t, mr.Exists("fifo:status:all:0.0"))

	agg.Invalidate(ctx, "PRD001")
	v, err := mr.Get("fifo:statusgen:product:PRD001")
	require.NoError(t, err)
	assert.Equal(t, "1", v)
	v, err = mr.Get("fifo:statusgen:all")
	require.NoError(t, err)
	assert.Equal(t, "1", v)

	got, err = agg.GetInventoryStatus(ctx, "PRD001")
	require.NoError(t, err)
	assert.Equal(t, int64(10), got.TotalQuantity)
	assert.True(t, got.TotalCost.Equal(decimal.NewFromInt(500)))
	assert.True(t, mr.Exists("fifo:status:product:PRD001:0.1"))

	agg.Invalidate(ctx)
	assert.False(t, mr.Exists("fifo:status:product:PRD001:0.1"))
	assert.False(t, mr.Exists("fifo:status:all:0.0"))
	v, err = mr.Get("fifo:statusgen:epoch")
	require.NoError(t, err)
	assert.Equal(t, "1", v)
}

func TestInventoryAggregator_InvalidateDuringFetch(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	reader := mocks.NewMockInventoryReader(ctrl)
	cache, _ := newStatusCache(t)

	agg := services.NewInventoryAggregator(reader, cache, time.Minute, helpers.TestLogger())

	tests := []struct {
		name       string
		invalidate func()
	}{
		{name: "product_write", invalidate: func() { agg.Invalidate(ctx, "PRD001") }},
		{name: "full_reset", invalidate: func() { agg.Invalidate(ctx) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			agg.Invalidate(ctx, "PRD001")

			// The snapshot is taken before the sale commits; the sale then
			// commits and invalidates before the snapshot reaches the cache.
			gomock.InOrder(
				reader.EXPECT().GetInventoryStatus(gomock.Any(), "PRD001").
					DoAndReturn(func(context.Context, string) (*domain.InventoryStatus, error) {
						snapshot := statusWithQuantity("PRD001", 100)
						tt.invalidate()
						return snapshot, nil
					}),
				reader.EXPECT().GetInventoryStatus(gomock.Any(), "PRD001").
					Return(statusWithQuantity("PRD001", 40), nil),
			)

			got, err := agg.GetInventoryStatus(ctx, "PRD001")
			require.NoError(t, err)
			assert.Equal(t, int64(100), got.TotalQuantity)

			got, err = agg.GetInventoryStatus(ctx, "PRD001")
			require.NoError(t, err)
			assert.Equal(t, int64(40), got.TotalQuantity, "committed sale must be visible")

			got, err = agg.GetInventoryStatus(ctx, "PRD001")
			require.NoError(t, err)
			assert.Equal(t, int64(40), got.TotalQuantity)
		})
	}

	t.Run("combined_list", func(t *testing.T) {
		gomock.InOrder(
			reader.EXPECT().GetAllInventoryStatus(gomock.Any()).
				DoAndReturn(func(context.Context) ([]domain.InventoryStatus, error) {
					snapshot := []domain.InventoryStatus{*statusWithQuantity("PRD001", 100)}
					agg.Invalidate(ctx, "PRD001")
					return snapshot, nil
				}),
			reader.EXPECT().GetAllInventoryStatus(gomock.Any()).
				Return([]domain.InventoryStatus{*statusWithQuantity("PRD001", 40)}, nil),
		)

		_, err := agg.GetAllInventoryStatus(ctx)
		require.NoError(t, err)

		all, err := agg.GetAllInventoryStatus(ctx)
		require.NoError(t, err)
		require.Len(t, all, 1)
		assert.Equal(t, int64(40), all[0].TotalQuantity)
	})
}

func TestInventoryAggregator_CacheFailures(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	reader := mocks.NewMockInventoryReader(ctrl)
	cache := mocks.NewMockCacheRepository(ctrl)
	agg := services.NewInventoryAggregator(reader, cache, time.Minute, helpers.TestLogger())

	t.Run("invalidate_swallows_errors", func(t *testing.T) {
		cache.EXPECT().Incr(gomock.Any(), "statusgen:product:PRD001", "statusgen:all").Return(errors.New("redis down"))
		agg.Invalidate(ctx, "PRD001")
	})

	t.Run("reset_skips_sweep_when_epoch_fails", func(t *testing.T) {
		cache.EXPECT().Incr(gomock.Any(), "statusgen:epoch").Return(errors.New("redis down"))
		agg.Invalidate(ctx)
	})

	t.Run("unreadable_generations_read_through", func(t *testing.T) {
		want := statusWithQuantity("PRD001", 7)
		cache.EXPECT().Counters(gomock.Any(), "statusgen:epoch", "statusgen:product:PRD001").
			Return(nil, errors.New("redis down"))
		reader.EXPECT().GetInventoryStatus(gomock.Any(), "PRD001").Return(want, nil)

		got, err := agg.GetInventoryStatus(ctx, "PRD001")
		require.NoError(t, err)
		assert.Same(t, want, got)
	})

	t.Run("fetch_errors_propagate", func(t *testing.T) {
		boom := errors.New("db down")
		cache.EXPECT().Counters(gomock.Any(), "statusgen:epoch", "statusgen:product:PRD001").
			Return([]int64{2, 5}, nil)
		cache.EXPECT().
			GetOrSet(gomock.Any(), "status:product:PRD001:2.5", gomock.Any(), gomock.Any(), time.Minute).
			DoAndReturn(func(_ context.Context, _ string, _ any, fetch func() (any, error), _ time.Duration) error {
				_, err := fetch()
				return err
			})
		reader.EXPECT().GetInventoryStatus(gomock.Any(), "PRD001").Return(nil, boom)

		_, err := agg.GetInventoryStatus(ctx, "PRD001")
		assert.ErrorIs(t, err, boom)
	})
}
