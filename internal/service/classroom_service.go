package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/phrazzld/classroom-manager/internal/domain"
	"github.com/phrazzld/classroom-manager/internal/events"
	"github.com/phrazzld/classroom-manager/internal/platform/logger"
	"github.com/phrazzld/classroom-manager/internal/store"
)

// ClassroomService provides the classroom operations offered by the menu.
type ClassroomService interface {
	// AddClassroom creates an empty classroom.
	AddClassroom(ctx context.Context, name string) error

	// DeleteClassroom removes a classroom with all its students and assignments.
	DeleteClassroom(ctx context.Context, name string) error

	// EnrollStudent adds a new student to an existing classroom.
	EnrollStudent(ctx context.Context, studentID, studentName, classroomName string) error

	// RemoveStudent unenrolls a student and reports whether one was found.
	RemoveStudent(ctx context.Context, studentID, classroomName string) (bool, error)

	// ScheduleAssignment registers assignment details against a classroom.
	ScheduleAssignment(ctx context.Context, classroomName, details string) (*domain.Assignment, error)

	// SubmitAssignment records a student's submission of a scheduled assignment.
	SubmitAssignment(ctx context.Context, studentID, classroomName, details string) error

	// ListClassrooms returns classroom names in creation order.
	ListClassrooms(ctx context.Context) ([]string, error)

	// ListStudents returns the (id, name) pairs enrolled in a classroom.
	ListStudents(ctx context.Context, classroomName string) ([]domain.StudentSummary, error)

	// ListAssignments returns the assignments scheduled for a classroom.
	ListAssignments(ctx context.Context, classroomName string) ([]domain.Assignment, error)

	// ListSubmissions returns the assignment details a student has submitted.
	ListSubmissions(ctx context.Context, studentID, classroomName string) ([]string, error)
}

type classroomServiceImpl struct {
	store   store.ClassroomStore
	emitter events.EventEmitter
	logger  *slog.Logger
}

// NewClassroomService creates a ClassroomService.
// A nil emitter disables audit events and a nil logger falls back to slog.Default().
func NewClassroomService(
	classroomStore store.ClassroomStore,
	emitter events.EventEmitter,
	logger *slog.Logger,
) (ClassroomService, error) {
	if classroomStore == nil {
		return nil, ErrNilStore
	}
	if emitter == nil {
		emitter = events.NopEmitter{}
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &classroomServiceImpl{
		store:   classroomStore,
		emitter: emitter,
		logger:  logger.With("component", "classroom_service"),
	}, nil
}

// AddClassroom implements ClassroomService.AddClassroom.
func (s *classroomServiceImpl) AddClassroom(ctx context.Context, name string) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := s.store.AddClassroom(ctx, name); err != nil {
		return s.fail(ctx, "add_classroom", err, "classroom", name)
	}

	log.Info(fmt.Sprintf("Classroom %s has been created.", name), "classroom", name)
	s.emit(ctx, events.TypeClassroomCreated, name, nil)
	return nil
}

// DeleteClassroom implements ClassroomService.DeleteClassroom.
func (s *classroomServiceImpl) DeleteClassroom(ctx context.Context, name string) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := s.store.DeleteClassroom(ctx, name); err != nil {
		return s.fail(ctx, "delete_classroom", err, "classroom", name)
	}

	log.Info(fmt.Sprintf("Classroom %s has been deleted.", name), "classroom", name)
	s.emit(ctx, events.TypeClassroomDeleted, name, nil)
	return nil
}

// EnrollStudent implements ClassroomService.EnrollStudent.
func (s *classroomServiceImpl) EnrollStudent(
	ctx context.Context,
	studentID, studentName, classroomName string,
) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := s.store.AddStudent(ctx, studentID, studentName, classroomName); err != nil {
		return s.fail(ctx, "enroll_student", err,
			"classroom", classroomName, "student_id", studentID)
	}

	log.Info(
		fmt.Sprintf("Student %s (%s) has been enrolled in %s.", studentName, studentID, classroomName),
		"classroom", classroomName,
		"student_id", studentID)
	s.emit(ctx, events.TypeStudentEnrolled, classroomName,
		events.StudentPayload{StudentID: studentID, StudentName: studentName})
	return nil
}

// RemoveStudent implements ClassroomService.RemoveStudent.
func (s *classroomServiceImpl) RemoveStudent(ctx context.Context, studentID, classroomName string) (bool, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	removed, err := s.store.RemoveStudent(ctx, studentID, classroomName)
	if err != nil {
		return false, s.fail(ctx, "remove_student", err,
			"classroom", classroomName, "student_id", studentID)
	}

	if !removed {
		log.Debug("no student to remove",
			"classroom", classroomName,
			"student_id", studentID)
		return false, nil
	}

	log.Info(fmt.Sprintf("Student %s has been removed from %s.", studentID, classroomName),
		"classroom", classroomName,
		"student_id", studentID)
	s.emit(ctx, events.TypeStudentRemoved, classroomName, events.StudentPayload{StudentID: studentID})
	return true, nil
}

// ScheduleAssignment implements ClassroomService.ScheduleAssignment.
func (s *classroomServiceImpl) ScheduleAssignment(
	ctx context.Context,
	classroomName, details string,
) (*domain.Assignment, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	assignment, err := s.store.ScheduleAssignment(ctx, classroomName, details)
	if err != nil {
		return nil, s.fail(ctx, "schedule_assignment", err, "classroom", classroomName)
	}

	log.Info(fmt.Sprintf("Assignment for %s has been scheduled.", classroomName),
		"classroom", classroomName,
		"assignment_id", assignment.ID.String())
	s.emit(ctx, events.TypeAssignmentScheduled, classroomName, events.AssignmentPayload{
		AssignmentID: assignment.ID.String(),
		Details:      assignment.Details,
	})
	return assignment, nil
}

// SubmitAssignment implements ClassroomService.SubmitAssignment.
func (s *classroomServiceImpl) SubmitAssignment(
	ctx context.Context,
	studentID, classroomName, details string,
) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := s.store.SubmitAssignment(ctx, studentID, classroomName, details); err != nil {
		return s.fail(ctx, "submit_assignment", err,
			"classroom", classroomName, "student_id", studentID)
	}

	log.Info(fmt.Sprintf("Assignment submitted by Student %s in %s.", studentID, classroomName),
		"classroom", classroomName,
		"student_id", studentID)
	s.emit(ctx, events.TypeAssignmentSubmitted, classroomName, events.AssignmentPayload{
		StudentID: studentID,
		Details:   details,
	})
	return nil
}

// ListClassrooms implements ClassroomService.ListClassrooms.
func (s *classroomServiceImpl) ListClassrooms(ctx context.Context) ([]string, error) {
	names, err := s.store.ListClassrooms(ctx)
	if err != nil {
		return nil, s.fail(ctx, "list_classrooms", err)
	}
	return names, nil
}

// ListStudents implements ClassroomService.ListStudents.
func (s *classroomServiceImpl) ListStudents(
	ctx context.Context,
	classroomName string,
) ([]domain.StudentSummary, error) {
	students, err := s.store.ListStudents(ctx, classroomName)
	if err != nil {
		return nil, s.fail(ctx, "list_students", err, "classroom", classroomName)
	}
	return students, nil
}

// ListAssignments implements ClassroomService.ListAssignments.
func (s *classroomServiceImpl) ListAssignments(
	ctx context.Context,
	classroomName string,
) ([]domain.Assignment, error) {
	assignments, err := s.store.ListAssignments(ctx, classroomName)
	if err != nil {
		return nil, s.fail(ctx, "list_assignments", err, "classroom", classroomName)
	}
	return assignments, nil
}

// ListSubmissions implements ClassroomService.ListSubmissions.
func (s *classroomServiceImpl) ListSubmissions(
	ctx context.Context,
	studentID, classroomName string,
) ([]string, error) {
	submissions, err := s.store.ListSubmissions(ctx, studentID, classroomName)
	if err != nil {
		return nil, s.fail(ctx, "list_submissions", err,
			"classroom", classroomName, "student_id", studentID)
	}
	return submissions, nil
}

// fail logs a failed operation and wraps err. Not found, duplicate and
// validation errors are expected outcomes of user input and only logged at
// debug level.
func (s *classroomServiceImpl) fail(ctx context.Context, operation string, err error, attrs ...any) error {
	log := logger.FromContextOrDefault(ctx, s.logger)
	attrs = append(attrs, "operation", operation, "error", err)

	if store.IsNotFoundError(err) || store.IsDuplicateError(err) || errors.Is(err, domain.ErrValidation) {
		log.Debug("classroom operation rejected", attrs...)
	} else {
		log.Error("classroom operation failed", attrs...)
	}

	return NewClassroomServiceError(operation, err)
}

func (s *classroomServiceImpl) emit(ctx context.Context, eventType, classroomName string, payload interface{}) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	event, err := events.NewAuditEvent(eventType, classroomName, payload)
	if err != nil {
		log.Error("failed to build audit event", "error", err, "event_type", eventType)
		return
	}

	if err := s.emitter.EmitEvent(ctx, event); err != nil {
		log.Error("failed to emit audit event",
			"error", err,
			"event_id", event.ID,
			"event_type", eventType)
	}
}
