package service

import (
	"errors"
	"fmt"

	"github.com/keepsakelabs/keepsake-api/internal/store"
)

// Common sentinel errors for the service layer.
var (
	// ErrMemoryNotFound indicates that the memory does not exist.
	ErrMemoryNotFound = errors.New("memory not found")
)

// MemoryServiceError wraps errors from the memory service with context.
type MemoryServiceError struct {
	// Operation is the operation that failed (e.g., "create_memory").
	Operation string
	// Message is a human-readable description of the error.
	Message string
	// Err is the underlying error that caused the failure.
	Err error
}

// Error implements the error interface for MemoryServiceError.
func (e *MemoryServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("memory service %s failed: %s: %v", e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("memory service %s failed: %s", e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *MemoryServiceError) Unwrap() error {
	return e.Err
}

// NewMemoryServiceError creates a new MemoryServiceError.
// It returns known sentinel errors directly without wrapping, and passes
// storage availability errors through so callers can map them precisely.
func NewMemoryServiceError(operation, message string, err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, ErrMemoryNotFound) {
		return ErrMemoryNotFound
	}

	if errors.Is(err, store.ErrMemoryNotFound) {
		return ErrMemoryNotFound
	}

	if errors.Is(err, store.ErrStorageUnavailable) {
		return err
	}

	return &MemoryServiceError{
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}
