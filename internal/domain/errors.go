package domain

import (
	"errors"
	"fmt"
)

// ErrValidation is returned when a domain entity fails validation.
// Every entity-specific validation error wraps it.
var ErrValidation = errors.New("validation failed")

// Entity validation errors.
var (
	ErrEmptyClassroomName     = fmt.Errorf("%w: classroom name cannot be empty", ErrValidation)
	ErrEmptyStudentID         = fmt.Errorf("%w: student ID cannot be empty", ErrValidation)
	ErrEmptyStudentName       = fmt.Errorf("%w: student name cannot be empty", ErrValidation)
	ErrEmptyAssignmentDetails = fmt.Errorf("%w: assignment details cannot be empty", ErrValidation)
)
