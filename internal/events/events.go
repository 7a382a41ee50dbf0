package events

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Audit event types, one per mutating classroom operation.
const (
	TypeClassroomCreated    = "classroom.created"
	TypeClassroomDeleted    = "classroom.deleted"
	TypeStudentEnrolled     = "student.enrolled"
	TypeStudentRemoved      = "student.removed"
	TypeAssignmentScheduled = "assignment.scheduled"
	TypeAssignmentSubmitted = "assignment.submitted"
)

// AuditEvent records a successful change to the classroom store.
type AuditEvent struct {
	// ID is a unique identifier for this event
	ID uuid.UUID `json:"id"`

	// Type is one of the Type* constants
	Type string `json:"type"`

	// Classroom is the name of the classroom the change applies to
	Classroom string `json:"classroom"`

	// Payload contains the event-specific data serialized as JSON
	Payload json.RawMessage `json:"payload,omitempty"`

	// CreatedAt is the timestamp when the event was created
	CreatedAt time.Time `json:"created_at"`
}

// StudentPayload is the payload of student.* events.
type StudentPayload struct {
	StudentID   string `json:"student_id"`
	StudentName string `json:"student_name,omitempty"`
}

// AssignmentPayload is the payload of assignment.* events.
type AssignmentPayload struct {
	AssignmentID string `json:"assignment_id,omitempty"`
	StudentID    string `json:"student_id,omitempty"`
	Details      string `json:"details"`
}

// UnmarshalPayload decodes the event payload into the provided structure.
func (e *AuditEvent) UnmarshalPayload(v interface{}) error {
	return json.Unmarshal(e.Payload, v)
}

// NewAuditEvent creates a new AuditEvent. A nil payload leaves Payload empty.
func NewAuditEvent(eventType, classroom string, payload interface{}) (*AuditEvent, error) {
	event := &AuditEvent{
		ID:        uuid.New(),
		Type:      eventType,
		Classroom: classroom,
		CreatedAt: time.Now().UTC(),
	}

	if payload != nil {
		payloadBytes, err := json.Marshal(payload)
		if err != nil {
			return nil, err
		}
		event.Payload = payloadBytes
	}

	return event, nil
}

// EventHandler defines an interface for components that can handle events.
type EventHandler interface {
	// HandleEvent processes the given event within the provided context.
	// Returns an error if the event cannot be handled successfully.
	HandleEvent(ctx context.Context, event *AuditEvent) error
}

// EventEmitter defines an interface for components that can emit events.
type EventEmitter interface {
	// EmitEvent publishes the given event to all registered handlers.
	// Returns an error if the event cannot be emitted.
	EmitEvent(ctx context.Context, event *AuditEvent) error
}
