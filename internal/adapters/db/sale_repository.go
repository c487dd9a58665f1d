// internal/adapters/db/sale_repository.go
package db

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/ammerola/fifo-ledger/internal/core/domain"
	"github.com/ammerola/fifo-ledger/internal/core/ports"
)

// saleRepository implements ports.SaleRepository
type saleRepository struct {
	q      querier
	logger *slog.Logger
}

// NewSaleRepository creates a sale repository outside any transaction
func NewSaleRepository(db *Database, logger *slog.Logger) ports.SaleRepository {
	return &saleRepository{
		q:      db.pool,
		logger: logger.With(slog.String("repository", "sales")),
	}
}

// Insert stores the sale and queues every consumption detail in one round trip.
// Sale and detail ids are written back into the arguments.
func (r *saleRepository) Insert(ctx context.Context, sale *domain.Sale, details []domain.ConsumptionDetail) error {
	err := r.q.QueryRow(ctx, `
		INSERT INTO sales (product_id, quantity, total_cost, sale_timestamp)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at`,
		sale.ProductID, sale.Quantity, sale.TotalCost, sale.SaleTimestamp,
	).Scan(&sale.ID, &sale.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert sale: %w", err)
	}

	if len(details) == 0 {
		return nil
	}

	batch := &pgx.Batch{}
	for i := range details {
		details[i].SaleID = sale.ID
		batch.Queue(`
			INSERT INTO sale_consumption_details (sale_id, batch_id, quantity_used, unit_price)
			VALUES ($1, $2, $3, $4)
			RETURNING id`,
			sale.ID, details[i].BatchID, details[i].QuantityUsed, details[i].UnitPrice,
		)
	}

	br := r.q.SendBatch(ctx, batch)
	defer br.Close()

	for i := range details {
		if err := br.QueryRow().Scan(&details[i].ID); err != nil {
			return fmt.Errorf("failed to insert consumption detail %d: %w", i, err)
		}
	}

	r.logger.DebugContext(ctx, "sale inserted",
		slog.Int64("sale_id", sale.ID),
		slog.String("product_id", sale.ProductID),
		slog.Int("details", len(details)))

	return nil
}

// List returns sales with their consumption details in sale order.
func (r *saleRepository) List(ctx context.Context, filter domain.LedgerFilter) ([]domain.SaleWithDetails, error) {
	qb := squirrel.Select("id", "product_id", "quantity", "total_cost", "sale_timestamp", "created_at").
		From("sales").
		OrderBy("sale_timestamp ASC", "id ASC").
		PlaceholderFormat(squirrel.Dollar)

	if filter.ProductID != "" {
		qb = qb.Where(squirrel.Eq{"product_id": filter.ProductID})
	}

	query, args, err := qb.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sale query: %w", err)
	}

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list sales: %w", err)
	}

	sales, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.SaleWithDetails, error) {
		var s domain.SaleWithDetails
		err := row.Scan(&s.Sale.ID, &s.Sale.ProductID, &s.Sale.Quantity,
			&s.Sale.TotalCost, &s.Sale.SaleTimestamp, &s.Sale.CreatedAt)
		s.Sale.SaleTimestamp = s.Sale.SaleTimestamp.UTC()
		return s, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan sales: %w", err)
	}

	if len(sales) == 0 {
		return sales, nil
	}

	details, err := r.detailsFor(ctx, filter)
	if err != nil {
		return nil, err
	}

	for i := range sales {
		sales[i].Details = details[sales[i].Sale.ID]
	}

	return sales, nil
}

func (r *saleRepository) detailsFor(ctx context.Context, filter domain.LedgerFilter) (map[int64][]domain.ConsumptionDetail, error) {
	qb := squirrel.Select("d.id", "d.sale_id", "d.batch_id", "d.quantity_used", "d.unit_price").
		From("sale_consumption_details d").
		Join("sales s ON s.id = d.sale_id").
		OrderBy("d.sale_id", "d.id").
		PlaceholderFormat(squirrel.Dollar)

	if filter.ProductID != "" {
		qb = qb.Where(squirrel.Eq{"s.product_id": filter.ProductID})
	}

	query, args, err := qb.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build detail query: %w", err)
	}

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list consumption details: %w", err)
	}

	details, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.ConsumptionDetail, error) {
		var d domain.ConsumptionDetail
		err := row.Scan(&d.ID, &d.SaleID, &d.BatchID, &d.QuantityUsed, &d.UnitPrice)
		return d, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan consumption details: %w", err)
	}

	bySale := make(map[int64][]domain.ConsumptionDetail)
	for _, d := range details {
		bySale[d.SaleID] = append(bySale[d.SaleID], d)
	}

	return bySale, nil
}

func (r *saleRepository) DeleteAll(ctx context.Context) (int64, int64, error) {
	detailTag, err := r.q.Exec(ctx, `DELETE FROM sale_consumption_details`)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to delete consumption details: %w", err)
	}

	saleTag, err := r.q.Exec(ctx, `DELETE FROM sales`)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to delete sales: %w", err)
	}

	return detailTag.RowsAffected(), saleTag.RowsAffected(), nil
}
