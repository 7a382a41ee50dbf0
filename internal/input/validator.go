package input

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

var classroomNamePattern = regexp.MustCompile(`^[a-zA-Z0-9 ]+$`)

// IsValidClassroomName reports whether name is non-empty and consists of
// letters, digits and spaces only.
func IsValidClassroomName(name string) bool {
	return classroomNamePattern.MatchString(name)
}

// IsValidStudentID reports whether id is a strictly positive base-10
// integer of any length. Leading zeros are accepted; signs, decimals and
// surrounding text are not.
func IsValidStudentID(id string) bool {
	id = strings.TrimSpace(id)
	if id == "" {
		return false
	}
	for _, r := range id {
		if r < '0' || r > '9' {
			return false
		}
	}
	return strings.TrimLeft(id, "0") != ""
}

// Validator checks operation requests against their struct tags.
type Validator struct {
	validate *validator.Validate
}

// NewValidator creates a Validator with the classroom_name and student_id
// tags registered. Free-text fields use the built-in notblank tag.
func NewValidator() *Validator {
	validate := validator.New(validator.WithRequiredStructEnabled())

	// Registration only fails on empty tags or nil functions.
	_ = validate.RegisterValidation("classroom_name", func(fl validator.FieldLevel) bool {
		return IsValidClassroomName(fl.Field().String())
	})
	_ = validate.RegisterValidation("student_id", func(fl validator.FieldLevel) bool {
		return IsValidStudentID(fl.Field().String())
	})
	_ = validate.RegisterValidation("notblank", validators.NotBlank)

	return &Validator{validate: validate}
}

// StudentID checks a single student ID as soon as it is entered.
func (v *Validator) StudentID(id string) error {
	if err := v.validate.Var(id, "student_id"); err != nil {
		return ErrInvalidStudentID
	}
	return nil
}

// Validate checks req and translates the first failing rule into one of
// ErrInvalidClassroomName, ErrInvalidStudentID or ErrEmptyField.
func (v *Validator) Validate(req interface{}) error {
	err := v.validate.Struct(req)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) || len(validationErrs) == 0 {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}

	switch first := validationErrs[0]; first.Tag() {
	case "classroom_name":
		return ErrInvalidClassroomName
	case "student_id":
		return ErrInvalidStudentID
	case "notblank", "required":
		return ErrEmptyField
	default:
		return fmt.Errorf("%w: %s failed on %s", ErrValidation, first.Field(), first.Tag())
	}
}
