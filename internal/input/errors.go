package input

import (
	"errors"
	"fmt"
)

// ErrValidation is wrapped by every error this package returns.
var ErrValidation = errors.New("invalid input")

// Input validation errors. Their messages are shown to the user as is.
var (
	ErrInvalidClassroomName = fmt.Errorf(
		"%w: Classroom name must be alphanumeric and cannot contain special characters.", ErrValidation)
	ErrInvalidStudentID = fmt.Errorf(
		"%w: Student ID must be a unique positive integer.", ErrValidation)
	ErrEmptyField = fmt.Errorf("%w: Enter all fields.", ErrValidation)
)

// Message returns the user-facing part of an input validation error.
func Message(err error) string {
	switch {
	case errors.Is(err, ErrInvalidClassroomName):
		return "Classroom name must be alphanumeric and cannot contain special characters."
	case errors.Is(err, ErrInvalidStudentID):
		return "Student ID must be a unique positive integer."
	case errors.Is(err, ErrEmptyField):
		return "Enter all fields."
	default:
		return err.Error()
	}
}
