package domain

import (
	"testing"

	"github.com/google/uuid"
)

func TestNewAssignment(t *testing.T) {
	t.Parallel()

	assignment, err := NewAssignment("Read chapter 3")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if assignment.ID == uuid.Nil {
		t.Error("Expected non-nil UUID, got nil UUID")
	}

	if assignment.Details != "Read chapter 3" {
		t.Errorf("Expected details %q, got %q", "Read chapter 3", assignment.Details)
	}

	if assignment.ScheduledAt.IsZero() {
		t.Error("Expected non-zero ScheduledAt time")
	}

	other, err := NewAssignment("Read chapter 3")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if other.ID == assignment.ID {
		t.Error("Expected each scheduling to get its own ID")
	}

	_, err = NewAssignment(" \t")
	if err != ErrEmptyAssignmentDetails {
		t.Errorf("Expected error %v, got %v", ErrEmptyAssignmentDetails, err)
	}
}
