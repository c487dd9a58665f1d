package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"

	"github.com/ammerola/fifo-ledger/internal/core/domain"
	"github.com/ammerola/fifo-ledger/internal/core/ports"
	"github.com/ammerola/fifo-ledger/internal/core/services"
	"github.com/ammerola/fifo-ledger/test/mocks"
)

var t0 = time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC)

// storeMocks wires repository mocks behind a transaction scope mock.
type storeMocks struct {
	scope    *mocks.MockTransactionScope
	repos    *mocks.MockTxRepositories
	products *mocks.MockProductRepository
	batches  *mocks.MockBatchRepository
	sales    *mocks.MockSaleRepository
}

func newStoreMocks(t *testing.T) *storeMocks {
	t.Helper()
	ctrl := gomock.NewController(t)

	m := &storeMocks{
		scope:    mocks.NewMockTransactionScope(ctrl),
		repos:    mocks.NewMockTxRepositories(ctrl),
		products: mocks.NewMockProductRepository(ctrl),
		batches:  mocks.NewMockBatchRepository(ctrl),
		sales:    mocks.NewMockSaleRepository(ctrl),
	}
	m.repos.EXPECT().Products().Return(m.products).AnyTimes()
	m.repos.EXPECT().Batches().Return(m.batches).AnyTimes()
	m.repos.EXPECT().Sales().Return(m.sales).AnyTimes()

	return m
}

// expectTx runs the scoped function against the repository mocks.
func (m *storeMocks) expectTx(mode ports.TxMode) *gomock.Call {
	return m.scope.EXPECT().
		Execute(gomock.Any(), mode, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ ports.TxMode, fn func(ports.TxRepositories) error) error {
			return fn(m.repos)
		})
}

func testBatch(id, quantity, remaining int64, price string, ts time.Time) domain.Batch {
	return domain.Batch{
		ID:                id,
		ProductID:         "PRD001",
		Quantity:          quantity,
		UnitPrice:         decimal.RequireFromString(price),
		RemainingQuantity: remaining,
		PurchaseTimestamp: ts,
	}
}

func fastRetries(n int) services.EngineConfig {
	return services.EngineConfig{
		MaxRetries:  n,
		BaseBackoff: time.Millisecond,
		MaxBackoff:  2 * time.Millisecond,
	}
}
