package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Assignment is a piece of work scheduled for a classroom.
// Submissions are matched against Details verbatim; ID only identifies the
// scheduling itself in listings and audit records.
type Assignment struct {
	ID          uuid.UUID `json:"id"`
	Details     string    `json:"details"`
	ScheduledAt time.Time `json:"scheduled_at"`
}

// NewAssignment creates an Assignment with a fresh ID.
// Returns an error if validation fails.
func NewAssignment(details string) (*Assignment, error) {
	assignment := &Assignment{
		ID:          uuid.New(),
		Details:     details,
		ScheduledAt: time.Now().UTC(),
	}

	if err := assignment.Validate(); err != nil {
		return nil, err
	}

	return assignment, nil
}

// Validate checks if the Assignment has valid data.
func (a *Assignment) Validate() error {
	if strings.TrimSpace(a.Details) == "" {
		return ErrEmptyAssignmentDetails
	}
	return nil
}
