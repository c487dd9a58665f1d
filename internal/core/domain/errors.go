// internal/core/domain/errors.go
package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors shared by the engine, the gateway and the transport adapters.
var (
	ErrInvalidArgument       = errors.New("invalid argument")
	ErrValidation            = errors.New("validation error")
	ErrUnsupportedEventType  = errors.New("unsupported event type")
	ErrInsufficientInventory = errors.New("insufficient inventory")
	ErrConcurrencyConflict   = errors.New("concurrency conflict")
	ErrProductNotFound       = errors.New("product not found")
)

// ValidationError describes a malformed inbound event field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed for %s: %s", e.Field, e.Message)
}

// Is lets errors.Is(err, ErrValidation) match any ValidationError.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// InsufficientInventoryError is returned when a sale asks for more units
// than the product's batches can supply.
type InsufficientInventoryError struct {
	ProductID string
	Available int64
	Requested int64
}

func (e *InsufficientInventoryError) Error() string {
	return fmt.Sprintf("insufficient inventory for product %s: available %d, requested %d",
		e.ProductID, e.Available, e.Requested)
}

func (e *InsufficientInventoryError) Is(target error) bool {
	return target == ErrInsufficientInventory
}

// NewInsufficientInventoryError builds an InsufficientInventoryError.
func NewInsufficientInventoryError(productID string, available, requested int64) *InsufficientInventoryError {
	return &InsufficientInventoryError{
		ProductID: productID,
		Available: available,
		Requested: requested,
	}
}

func invalidArgument(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidArgument, fmt.Sprintf(format, args...))
}
