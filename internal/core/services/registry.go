// internal/core/services/registry.go
package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ammerola/fifo-ledger/internal/core/domain"
	"github.com/ammerola/fifo-ledger/internal/core/ports"
)

// ProductRegistry creates products on first sight.
type ProductRegistry struct {
	products ports.ProductRepository
	logger   *slog.Logger
}

var _ ports.ProductRegistry = (*ProductRegistry)(nil)

// NewProductRegistry creates a new product registry
func NewProductRegistry(products ports.ProductRepository, logger *slog.Logger) *ProductRegistry {
	return &ProductRegistry{
		products: products,
		logger:   logger.With(slog.String("service", "registry")),
	}
}

// EnsureExists registers productID unless it is already known. An empty
// displayName defaults to the id; an existing product keeps its name.
func (r *ProductRegistry) EnsureExists(ctx context.Context, productID, displayName string) (*domain.Product, error) {
	product, err := domain.NewProduct(productID, displayName)
	if err != nil {
		return nil, err
	}

	stored, err := r.products.Ensure(ctx, product)
	if err != nil {
		return nil, fmt.Errorf("failed to ensure product %s: %w", product.ID, err)
	}

	return stored, nil
}

// Get returns domain.ErrProductNotFound for unknown ids.
func (r *ProductRegistry) Get(ctx context.Context, productID string) (*domain.Product, error) {
	return r.products.FindByID(ctx, productID)
}

func (r *ProductRegistry) List(ctx context.Context) ([]domain.Product, error) {
	products, err := r.products.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return products, nil
}
