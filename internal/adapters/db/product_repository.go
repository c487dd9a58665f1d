// internal/adapters/db/product_repository.go
package db

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"

	"github.com/ammerola/fifo-ledger/internal/core/domain"
	"github.com/ammerola/fifo-ledger/internal/core/ports"
)

// productRepository implements ports.ProductRepository
type productRepository struct {
	q      querier
	logger *slog.Logger
}

// NewProductRepository creates a product repository outside any transaction
func NewProductRepository(db *Database, logger *slog.Logger) ports.ProductRepository {
	return &productRepository{
		q:      db.pool,
		logger: logger.With(slog.String("repository", "products")),
	}
}

// Ensure inserts the product if it is missing and returns the stored row.
// The first name stored for an id wins.
func (r *productRepository) Ensure(ctx context.Context, p *domain.Product) (*domain.Product, error) {
	tag, err := r.q.Exec(ctx,
		`INSERT INTO products (id, name) VALUES ($1, $2) ON CONFLICT (id) DO NOTHING`,
		p.ID, p.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to ensure product: %w", err)
	}

	if tag.RowsAffected() == 1 {
		r.logger.DebugContext(ctx, "product registered", slog.String("product_id", p.ID))
	}

	return r.FindByID(ctx, p.ID)
}

// FindByID returns domain.ErrProductNotFound when the product is unknown.
func (r *productRepository) FindByID(ctx context.Context, id string) (*domain.Product, error) {
	var p domain.Product
	err := r.q.QueryRow(ctx,
		`SELECT id, name, created_at FROM products WHERE id = $1`, id,
	).Scan(&p.ID, &p.Name, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", domain.ErrProductNotFound, id)
		}
		return nil, fmt.Errorf("failed to find product: %w", err)
	}

	return &p, nil
}

func (r *productRepository) List(ctx context.Context) ([]domain.Product, error) {
	rows, err := r.q.Query(ctx, `SELECT id, name, created_at FROM products ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}

	products, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Product, error) {
		var p domain.Product
		err := row.Scan(&p.ID, &p.Name, &p.CreatedAt)
		return p, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan products: %w", err)
	}

	return products, nil
}

func (r *productRepository) DeleteAll(ctx context.Context) (int64, error) {
	tag, err := r.q.Exec(ctx, `DELETE FROM products`)
	if err != nil {
		return 0, fmt.Errorf("failed to delete products: %w", err)
	}
	return tag.RowsAffected(), nil
}
