// internal/core/domain/product.go
package domain

import (
	"strings"
	"time"
)

// Product is a stock keeping unit known to the ledger.
type Product struct {
	ID        string    `json:"product_id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// NewProduct returns a product whose name falls back to its id.
func NewProduct(id, name string) (*Product, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, invalidArgument("product_id is required")
	}

	name = strings.TrimSpace(name)
	if name == "" {
		name = id
	}

	return &Product{ID: id, Name: name}, nil
}
