package service

import (
	"context"
	"errors"

	"github.com/phrazzld/classroom-manager/internal/domain"
	"github.com/phrazzld/classroom-manager/internal/events"
	"github.com/phrazzld/classroom-manager/internal/store"
)

// errStoreUnavailable simulates an infrastructure failure in the store.
var errStoreUnavailable = errors.New("store unavailable")

// failingStore is a store.ClassroomStore whose every method fails with err.
type failingStore struct {
	err error
}

var _ store.ClassroomStore = failingStore{}

func (f failingStore) AddClassroom(context.Context, string) error    { return f.err }
func (f failingStore) DeleteClassroom(context.Context, string) error { return f.err }
func (f failingStore) AddStudent(context.Context, string, string, string) error {
	return f.err
}
func (f failingStore) RemoveStudent(context.Context, string, string) (bool, error) {
	return false, f.err
}
func (f failingStore) ScheduleAssignment(context.Context, string, string) (*domain.Assignment, error) {
	return nil, f.err
}
func (f failingStore) SubmitAssignment(context.Context, string, string, string) error {
	return f.err
}
func (f failingStore) ListClassrooms(context.Context) ([]string, error) { return nil, f.err }
func (f failingStore) ListStudents(context.Context, string) ([]domain.StudentSummary, error) {
	return nil, f.err
}
func (f failingStore) ListAssignments(context.Context, string) ([]domain.Assignment, error) {
	return nil, f.err
}
func (f failingStore) ListSubmissions(context.Context, string, string) ([]string, error) {
	return nil, f.err
}

// recordingEmitter collects emitted events and optionally fails.
type recordingEmitter struct {
	events []*events.AuditEvent
	err    error
}

func (r *recordingEmitter) EmitEvent(_ context.Context, event *events.AuditEvent) error {
	r.events = append(r.events, event)
	return r.err
}

func (r *recordingEmitter) types() []string {
	result := make([]string, 0, len(r.events))
	for _, event := range r.events {
		result = append(result, event.Type)
	}
	return result
}
