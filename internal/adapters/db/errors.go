// internal/adapters/db/errors.go
package db

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/ammerola/fifo-ledger/internal/core/domain"
)

// PostgreSQL error codes the ledger reacts to.
const (
	codeSerializationFailure = "40001"
	codeDeadlockDetected     = "40P01"
	codeLockNotAvailable     = "55P03"
	codeForeignKeyViolation  = "23503"
	codeNumericOutOfRange    = "22003"
)

// classifyError maps driver errors onto domain sentinels while keeping the
// original error in the chain.
func classifyError(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}

	switch pgErr.Code {
	case codeSerializationFailure, codeDeadlockDetected, codeLockNotAvailable:
		return fmt.Errorf("%w: %w", domain.ErrConcurrencyConflict, err)
	case codeNumericOutOfRange:
		return fmt.Errorf("%w: %w", domain.ErrInvalidArgument, err)
	case codeForeignKeyViolation:
		if pgErr.ConstraintName == "batches_product_id_fkey" || pgErr.ConstraintName == "sales_product_id_fkey" {
			return fmt.Errorf("%w: %w", domain.ErrProductNotFound, err)
		}
	}

	return err
}

// IsRetryable reports whether err is a lock or serialization conflict.
func IsRetryable(err error) bool {
	return errors.Is(classifyError(err), domain.ErrConcurrencyConflict)
}
