// internal/core/ports/repositories.go
package ports

import (
	"context"

	"github.com/ammerola/fifo-ledger/internal/core/domain"
)

// TxMode selects how a transaction scope is opened.
type TxMode int

const (
	// TxWrite is a read-write transaction that takes row locks and runs
	// under the configured lock and statement timeouts.
	TxWrite TxMode = iota
	// TxSnapshot is a read-only transaction over a single consistent snapshot.
	TxSnapshot
)

func (m TxMode) String() string {
	switch m {
	case TxWrite:
		return "write"
	case TxSnapshot:
		return "snapshot"
	default:
		return "unknown"
	}
}

// TransactionScope runs fn inside one database transaction. The transaction
// commits when fn returns nil and rolls back on error, panic or context
// cancellation.
type TransactionScope interface {
	Execute(ctx context.Context, mode TxMode, fn func(repos TxRepositories) error) error
}

// TxRepositories exposes repositories bound to the surrounding transaction.
type TxRepositories interface {
	Products() ProductRepository
	Batches() BatchRepository
	Sales() SaleRepository
}

// ProductRepository persists products.
type ProductRepository interface {
	// Ensure inserts p unless a product with the same id exists and returns
	// the stored record either way.
	Ensure(ctx context.Context, p *domain.Product) (*domain.Product, error)
	FindByID(ctx context.Context, id string) (*domain.Product, error)
	List(ctx context.Context) ([]domain.Product, error)
	DeleteAll(ctx context.Context) (int64, error)
}

// BatchRepository persists purchase lots.
type BatchRepository interface {
	Insert(ctx context.Context, b *domain.Batch) error
	// LockAvailable locks and returns the product's batches with stock left,
	// in FIFO order.
	LockAvailable(ctx context.Context, productID string) ([]domain.Batch, error)
	// Consume decrements a batch's remaining quantity. It fails rather than
	// letting the quantity go negative.
	Consume(ctx context.Context, batchID, quantity int64) error
	ListByProduct(ctx context.Context, productID string) ([]domain.Batch, error)
	List(ctx context.Context, filter domain.LedgerFilter) ([]domain.Batch, error)
	Usage(ctx context.Context) ([]domain.BatchUsage, error)
	DeleteAll(ctx context.Context) (int64, error)
}

// SaleRepository persists sales and their consumption details.
type SaleRepository interface {
	Insert(ctx context.Context, sale *domain.Sale, details []domain.ConsumptionDetail) error
	List(ctx context.Context, filter domain.LedgerFilter) ([]domain.SaleWithDetails, error)
	// DeleteAll removes consumption details, then sales.
	DeleteAll(ctx context.Context) (details int64, sales int64, err error)
}
