// internal/adapters/db/batch_repository.go
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

const batchColumns = `id, product_id, quantity, unit_price, remaining_quantity, purchase_timestamp, created_at`

// batchRepository implements ports.BatchRepository
type batchRepository struct {
	q      querier
	logger *slog.Logger
}

// NewBatchRepository creates a batch repository outside any transaction
func NewBatchRepository(db *Database, logger *slog.Logger) ports.BatchRepository {
	return &batchRepository{
		q:      db.pool,
		logger: logger.With(slog.String("repository", "batches")),
	}
}

func (r *batchRepository) Insert(ctx context.Context, b *domain.Batch) error {
	err := r.q.QueryRow(ctx, `
		INSERT INTO batches (product_id, quantity, unit_price, remaining_quantity, purchase_timestamp)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at`,
		b.ProductID, b.Quantity, b.UnitPrice, b.RemainingQuantity, b.PurchaseTimestamp,
	).Scan(&b.ID, &b.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert batch: %w", err)
	}

	r.logger.DebugContext(ctx, "batch inserted",
		slog.Int64("batch_id", b.ID),
		slog.String("product_id", b.ProductID),
		slog.Int64("quantity", b.Quantity))

	return nil
}

// LockAvailable takes row locks on every batch with stock left before
// returning them, so the caller sums availability over locked rows only.
func (r *batchRepository) LockAvailable(ctx context.Context, productID string) ([]domain.Batch, error) {
	rows, err := r.q.Query(ctx, `
		SELECT `+batchColumns+`
		FROM batches
		WHERE product_id = $1 AND remaining_quantity > 0
		ORDER BY purchase_timestamp ASC, id ASC
		FOR UPDATE`, productID)
	if err != nil {
		return nil, fmt.Errorf("failed to lock batches: %w", err)
	}

	batches, err := collectBatches(rows)
	if err != nil {
		return nil, fmt.Errorf("failed to lock batches: %w", err)
	}

	return batches, nil
}

func (r *batchRepository) Consume(ctx context.Context, batchID, quantity int64) error {
	if quantity <= 0 {
		return fmt.Errorf("%w: consume quantity must be positive, got %d", domain.ErrInvalidArgument, quantity)
	}

	tag, err := r.q.Exec(ctx, `
		UPDATE batches
		SET remaining_quantity = remaining_quantity - $2
		WHERE id = $1 AND remaining_quantity >= $2`,
		batchID, quantity)
	if err != nil {
		return fmt.Errorf("failed to consume batch %d: %w", batchID, err)
	}

	if tag.RowsAffected() != 1 {
		return fmt.Errorf("%w: batch %d no longer holds %d units", domain.ErrConcurrencyConflict, batchID, quantity)
	}

	return nil
}

func (r *batchRepository) ListByProduct(ctx context.Context, productID string) ([]domain.Batch, error) {
	return r.List(ctx, domain.LedgerFilter{ProductID: productID})
}

func (r *batchRepository) List(ctx context.Context, filter domain.LedgerFilter) ([]domain.Batch, error) {
	qb := squirrel.Select(batchColumns).
		From("batches").
		OrderBy("product_id", "purchase_timestamp ASC", "id ASC").
		PlaceholderFormat(squirrel.Dollar)

	if filter.ProductID != "" {
		qb = qb.Where(squirrel.Eq{"product_id": filter.ProductID})
	}

	query, args, err := qb.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build batch query: %w", err)
	}

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list batches: %w", err)
	}

	batches, err := collectBatches(rows)
	if err != nil {
		return nil, fmt.Errorf("failed to list batches: %w", err)
	}

	return batches, nil
}

// Usage returns every batch with the units its consumption details sum to.
func (r *batchRepository) Usage(ctx context.Context) ([]domain.BatchUsage, error) {
	rows, err := r.q.Query(ctx, `
		SELECT b.id, b.product_id, b.quantity, b.unit_price, b.remaining_quantity,
		       b.purchase_timestamp, b.created_at,
		       COALESCE(SUM(d.quantity_used), 0)::BIGINT
		FROM batches b
		LEFT JOIN sale_consumption_details d ON d.batch_id = b.id
		GROUP BY b.id
		ORDER BY b.product_id, b.purchase_timestamp, b.id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query batch usage: %w", err)
	}

	usage, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.BatchUsage, error) {
		var u domain.BatchUsage
		err := row.Scan(
			&u.Batch.ID, &u.Batch.ProductID, &u.Batch.Quantity, &u.Batch.UnitPrice,
			&u.Batch.RemainingQuantity, &u.Batch.PurchaseTimestamp, &u.Batch.CreatedAt,
			&u.Used,
		)
		return u, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan batch usage: %w", err)
	}

	return usage, nil
}

func (r *batchRepository) DeleteAll(ctx context.Context) (int64, error) {
	tag, err := r.q.Exec(ctx, `DELETE FROM batches`)
	if err != nil {
		return 0, fmt.Errorf("failed to delete batches: %w", err)
	}
	return tag.RowsAffected(), nil
}

func collectBatches(rows pgx.Rows) ([]domain.Batch, error) {
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Batch, error) {
		var b domain.Batch
		err := row.Scan(
			&b.ID, &b.ProductID, &b.Quantity, &b.UnitPrice,
			&b.RemainingQuantity, &b.PurchaseTimestamp, &b.CreatedAt,
		)
		if err == nil {
			b.PurchaseTimestamp = b.PurchaseTimestamp.UTC()
		}
		return b, err
	})
}
