package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/ammerola/fifo-ledger/internal/core/domain"
	"github.com/ammerola/fifo-ledger/internal/core/ports"
	"github.com/ammerola/fifo-ledger/internal/core/services"
	"github.com/ammerola/fifo-ledger/test/helpers"
	"github.com/ammerola/fifo-ledger/test/mocks"
)

func TestResetService_ResetAll(t *testing.T) {
	t.Run("deletes_children_first_and_invalidates", func(t *testing.T) {
		m := newStoreMocks(t)
		invalidator := mocks.NewMockStatusInvalidator(gomock.NewController(t))
		svc := services.NewResetService(m.scope, invalidator, helpers.TestLogger())

		m.expectTx(ports.TxWrite)
		gomock.InOrder(
			m.sales.EXPECT().DeleteAll(gomock.Any()).Return(int64(5), int64(3), nil),
			m.batches.EXPECT().DeleteAll(gomock.Any()).Return(int64(4), nil),
			m.products.EXPECT().DeleteAll(gomock.Any()).Return(int64(2), nil),
			invalidator.EXPECT().Invalidate(gomock.Any()),
		)

		result, err := svc.ResetAll(context.Background())
		require.NoError(t, err)
		assert.Equal(t, []ports.TableCount{
			{Table: "sale_consumption_details", Deleted: 5},
			{Table: "sales", Deleted: 3},
			{Table: "batches", Deleted: 4},
			{Table: "products", Deleted: 2},
		}, result.Tables)
	})

	t.Run("failure_leaves_cache_alone", func(t *testing.T) {
		m := newStoreMocks(t)
		invalidator := mocks.NewMockStatusInvalidator(gomock.NewController(t))
		svc := services.NewResetService(m.scope, invalidator, helpers.TestLogger())
		boom := errors.New("boom")

		m.expectTx(ports.TxWrite)
		m.sales.EXPECT().DeleteAll(gomock.Any()).Return(int64(0), int64(0), boom)

		_, err := svc.ResetAll(context.Background())
		assert.ErrorIs(t, err, boom)
	})
}

func TestLedgerAuditor_Run(t *testing.T) {
	m := newStoreMocks(t)
	auditor := services.NewLedgerAuditor(m.scope, helpers.TestLogger())

	m.expectTx(ports.TxSnapshot)
	m.batches.EXPECT().Usage(gomock.Any()).Return([]domain.BatchUsage{
		{Batch: testBatch(1, 100, 40, "50", t0), Used: 60},
		{Batch: testBatch(2, 50, 50, "55", t0), Used: 0},
		{Batch: testBatch(3, 50, 10, "55", t0), Used: 30},
	}, nil)

	violations, err := auditor.Run(context.Background())
	require.NoError(t, err)
	require.Len(t, violations, 1)
	assert.Equal(t, int64(3), violations[0].BatchID)
	assert.Equal(t, int64(30), violations[0].Used)
}

func TestProductRegistry(t *testing.T) {
	ctx := context.Background()

	t.Run("ensure_defaults_name_to_id", func(t *testing.T) {
		repo := mocks.NewMockProductRepository(gomock.NewController(t))
		registry := services.NewProductRegistry(repo, helpers.TestLogger())

		repo.EXPECT().
			Ensure(gomock.Any(), &domain.Product{ID: "PRD001", Name: "PRD001"}).
			Return(&domain.Product{ID: "PRD001", Name: "PRD001"}, nil)

		p, err := registry.EnsureExists(ctx, " PRD001 ", "")
		require.NoError(t, err)
		assert.Equal(t, "PRD001", p.Name)
	})

	t.Run("existing_name_is_kept", func(t *testing.T) {
		repo := mocks.NewMockProductRepository(gomock.NewController(t))
		registry := services.NewProductRegistry(repo, helpers.TestLogger())

		repo.EXPECT().
			Ensure(gomock.Any(), &domain.Product{ID: "PRD001", Name: "B"}).
			Return(&domain.Product{ID: "PRD001", Name: "A"}, nil)

		p, err := registry.EnsureExists(ctx, "PRD001", "B")
		require.NoError(t, err)
		assert.Equal(t, "A", p.Name)
	})

	t.Run("blank_id_is_rejected", func(t *testing.T) {
		repo := mocks.NewMockProductRepository(gomock.NewController(t))
		registry := services.NewProductRegistry(repo, helpers.TestLogger())

		_, err := registry.EnsureExists(ctx, "   ", "x")
		assert.ErrorIs(t, err, domain.ErrInvalidArgument)
	})

	t.Run("get_unknown", func(t *testing.T) {
		repo := mocks.NewMockProductRepository(gomock.NewController(t))
		registry := services.NewProductRegistry(repo, helpers.TestLogger())

		repo.EXPECT().FindByID(gomock.Any(), "NOPE").Return(nil, domain.ErrProductNotFound)

		_, err := registry.Get(ctx, "NOPE")
		assert.ErrorIs(t, err, domain.ErrProductNotFound)
	})
}
