package store

import (
	"errors"
	"fmt"
)

// Common store errors used across all store implementations.
var (
	// ErrNotFound is returned when a requested entity does not exist in the store.
	// Entity-specific not found errors wrap it.
	ErrNotFound = errors.New("entity not found")

	// ErrDuplicate is returned when an operation would create a duplicate
	// of a unique entity. Entity-specific duplicate errors wrap it.
	ErrDuplicate = errors.New("entity already exists")

	// ErrClassroomNotFound indicates that the named classroom does not exist.
	ErrClassroomNotFound = fmt.Errorf("%w: classroom", ErrNotFound)

	// ErrStudentNotFound indicates that no student with the ID is enrolled
	// in the classroom.
	ErrStudentNotFound = fmt.Errorf("%w: student", ErrNotFound)

	// ErrAssignmentNotFound indicates that the assignment details were never
	// scheduled for the classroom.
	ErrAssignmentNotFound = fmt.Errorf("%w: assignment", ErrNotFound)

	// ErrDuplicateClassroom indicates that a classroom with the name already exists.
	ErrDuplicateClassroom = fmt.Errorf("%w: classroom", ErrDuplicate)

	// ErrStudentAlreadyExists indicates that the student ID is already
	// enrolled in the classroom.
	ErrStudentAlreadyExists = fmt.Errorf("%w: student", ErrDuplicate)
)

// IsNotFoundError checks if the error is any kind of "not found" error.
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsDuplicateError checks if the error is any kind of "duplicate" error.
func IsDuplicateError(err error) bool {
	return errors.Is(err, ErrDuplicate)
}

// StoreError is a store error with the context needed to explain it to a
// user: the entity, the operation and a human readable message.
type StoreError struct {
	Entity    string // The entity type (e.g., "classroom", "student")
	Operation string // The operation that failed (e.g., "add_student")
	Message   string // Human readable message
	Err       error  // Sentinel or original error
}

// Error implements the error interface for StoreError.
func (e *StoreError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return fmt.Sprintf("%s operation on %s failed: %v", e.Operation, e.Entity, e.Err)
	}
	return fmt.Sprintf("%s operation on %s failed", e.Operation, e.Entity)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *StoreError) Unwrap() error {
	return e.Err
}

// NewStoreError creates a new StoreError with the given entity, operation, message, and wrapped error.
func NewStoreError(entity, operation, message string, err error) *StoreError {
	return &StoreError{
		Entity:    entity,
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}

// NewClassroomNotFoundError reports a missing classroom.
func NewClassroomNotFoundError(operation, classroomName string) *StoreError {
	return NewStoreError("classroom", operation,
		fmt.Sprintf("Classroom %s does not exist.", classroomName), ErrClassroomNotFound)
}

// NewDuplicateClassroomError reports a classroom name that is already taken.
func NewDuplicateClassroomError(operation, classroomName string) *StoreError {
	return NewStoreError("classroom", operation,
		fmt.Sprintf("Classroom %s already exists.", classroomName), ErrDuplicateClassroom)
}

// NewStudentAlreadyExistsError reports a student ID already enrolled in the classroom.
func NewStudentAlreadyExistsError(operation, studentID, classroomName string) *StoreError {
	return NewStoreError("student", operation,
		fmt.Sprintf("Student ID %s already exists in %s.", studentID, classroomName), ErrStudentAlreadyExists)
}

// NewStudentNotFoundError reports a student ID that is not enrolled in the classroom.
func NewStudentNotFoundError(operation, studentID, classroomName string) *StoreError {
	return NewStoreError("student", operation,
		fmt.Sprintf("Student %s is not enrolled in %s.", studentID, classroomName), ErrStudentNotFound)
}

// NewAssignmentNotFoundError reports assignment details never scheduled for the classroom.
func NewAssignmentNotFoundError(operation, details, classroomName string) *StoreError {
	return NewStoreError("assignment", operation,
		fmt.Sprintf("Assignment %s is not scheduled for %s.", details, classroomName), ErrAssignmentNotFound)
}
