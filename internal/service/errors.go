package service

import (
	"errors"
	"fmt"
)

// ErrNilStore is returned by NewClassroomService when no store is provided.
var ErrNilStore = errors.New("classroom store cannot be nil")

// ClassroomServiceError is the error type returned by ClassroomService
// operations. It names the failed operation and wraps the cause.
type ClassroomServiceError struct {
	Operation string
	Err       error
}

// Error implements the error interface for ClassroomServiceError.
func (e *ClassroomServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("classroom service %s failed: %v", e.Operation, e.Err)
	}
	return fmt.Sprintf("classroom service %s failed", e.Operation)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *ClassroomServiceError) Unwrap() error {
	return e.Err
}

// NewClassroomServiceError creates a new ClassroomServiceError.
func NewClassroomServiceError(operation string, err error) *ClassroomServiceError {
	return &ClassroomServiceError{
		Operation: operation,
		Err:       err,
	}
}
