package store

import (
	"context"

	"github.com/phrazzld/classroom-manager/internal/domain"
)

// ClassroomStore defines the interface for classroom data persistence.
// Every method either fully succeeds or leaves the store unchanged.
type ClassroomStore interface {
	// AddClassroom creates an empty classroom.
	// Returns ErrDuplicateClassroom if the name is already taken.
	AddClassroom(ctx context.Context, name string) error

	// DeleteClassroom removes a classroom with all its students and assignments.
	// Returns ErrClassroomNotFound if the classroom does not exist.
	DeleteClassroom(ctx context.Context, name string) error

	// AddStudent enrolls a new student in a classroom.
	// Returns ErrClassroomNotFound if the classroom does not exist and
	// ErrStudentAlreadyExists if the ID is already enrolled there.
	AddStudent(ctx context.Context, studentID, studentName, classroomName string) error

	// RemoveStudent unenrolls a student and reports whether one was found.
	// A missing student is not an error.
	// Returns ErrClassroomNotFound if the classroom does not exist.
	RemoveStudent(ctx context.Context, studentID, classroomName string) (bool, error)

	// ScheduleAssignment registers assignment details against a classroom
	// and returns the scheduled assignment.
	// Returns ErrClassroomNotFound if the classroom does not exist.
	ScheduleAssignment(ctx context.Context, classroomName, details string) (*domain.Assignment, error)

	// SubmitAssignment records that a student turned in a scheduled assignment.
	// Returns ErrClassroomNotFound, ErrStudentNotFound or ErrAssignmentNotFound,
	// checked in that order.
	SubmitAssignment(ctx context.Context, studentID, classroomName, details string) error

	// ListClassrooms returns classroom names in creation order.
	// An empty store yields an empty slice, not an error.
	ListClassrooms(ctx context.Context) ([]string, error)

	// ListStudents returns the (id, name) pairs of a classroom in enrollment order.
	// Returns ErrClassroomNotFound if the classroom does not exist.
	ListStudents(ctx context.Context, classroomName string) ([]domain.StudentSummary, error)

	// ListAssignments returns the scheduled assignments of a classroom in schedule order.
	// Returns ErrClassroomNotFound if the classroom does not exist.
	ListAssignments(ctx context.Context, classroomName string) ([]domain.Assignment, error)

	// ListSubmissions returns the assignment details a student has submitted.
	// Returns ErrClassroomNotFound or ErrStudentNotFound.
	ListSubmissions(ctx context.Context, studentID, classroomName string) ([]string, error)
}
