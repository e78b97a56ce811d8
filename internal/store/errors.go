package store

import (
	"errors"
	"fmt"
)

// Common store errors used across all store implementations.
var (
	// ErrNotFound is returned when a requested document does not exist in
	// the store. This is the generic version of the entity-specific
	// not found errors.
	ErrNotFound = errors.New("document not found")

	// ErrDuplicate is returned when an insert would violate a uniqueness
	// constraint.
	ErrDuplicate = errors.New("document already exists")

	// ErrInvalidID is returned when an identifier is not a valid ObjectID
	// hex string.
	ErrInvalidID = errors.New("invalid document id")

	// ErrTransactionFailed is returned when a multi-document transaction
	// fails to commit or an operation inside it fails.
	ErrTransactionFailed = errors.New("transaction failed")

	// ErrFoodNotFound indicates that the requested listing does not exist.
	ErrFoodNotFound = fmt.Errorf("%w: food", ErrNotFound)

	// ErrRequestNotFound indicates that the requested claim does not exist.
	ErrRequestNotFound = fmt.Errorf("%w: food request", ErrNotFound)

	// ErrDuplicateRequest indicates that a claim for the same
	// (foodId, requesterEmail) pair already exists. The unique index on the
	// request collection is the authority; implementations translate the
	// driver's duplicate-key error into this.
	ErrDuplicateRequest = fmt.Errorf("%w: food request", ErrDuplicate)
)

// IsNotFoundError checks if the error is any kind of "not found" error.
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsDuplicateError checks if the error is any kind of "duplicate" error.
func IsDuplicateError(err error) bool {
	return errors.Is(err, ErrDuplicate)
}

// StoreError is a custom error type for store-specific errors with
// additional context.
type StoreError struct {
	Entity    string // The collection the operation targeted ("food", "food request")
	Operation string // The operation that failed ("create", "list", "fulfill", ...)
	Message   string // Error message
	Err       error  // Original error
}

// Error implements the error interface for StoreError.
func (e *StoreError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s operation on %s failed: %s: %v", e.Operation, e.Entity, e.Message, e.Err)
	}
	return fmt.Sprintf("%s operation on %s failed: %s", e.Operation, e.Entity, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *StoreError) Unwrap() error {
	return e.Err
}

// NewStoreError creates a new StoreError with the given entity, operation,
// message, and wrapped error.
func NewStoreError(entity, operation, message string, err error) *StoreError {
	return &StoreError{
		Entity:    entity,
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}
