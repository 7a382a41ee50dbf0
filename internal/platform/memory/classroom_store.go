package memory

import (
	"context"
	"log/slog"
	"sync"

	"github.com/phrazzld/classroom-manager/internal/domain"
	"github.com/phrazzld/classroom-manager/internal/platform/logger"
	"github.com/phrazzld/classroom-manager/internal/store"
)

// Option configures a ClassroomStore.
type Option func(*ClassroomStore)

// WithAssignmentDedupe makes scheduling details that are already scheduled
// for a classroom return the existing assignment instead of appending.
func WithAssignmentDedupe(enabled bool) Option {
	return func(s *ClassroomStore) {
		s.dedupeAssignments = enabled
	}
}

// ClassroomStore implements the store.ClassroomStore interface with maps
// held in memory. Classroom creation order is preserved for listing.
type ClassroomStore struct {
	mu                sync.RWMutex
	classrooms        map[string]*domain.Classroom
	order             []string
	dedupeAssignments bool
	logger            *slog.Logger
}

// NewClassroomStore creates an empty in-memory ClassroomStore.
// If logger is nil, a default logger will be used.
func NewClassroomStore(logger *slog.Logger, opts ...Option) *ClassroomStore {
	if logger == nil {
		logger = slog.Default()
	}

	s := &ClassroomStore{
		classrooms: make(map[string]*domain.Classroom),
		logger:     logger.With(slog.String("component", "classroom_store")),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Ensure ClassroomStore implements store.ClassroomStore interface
var _ store.ClassroomStore = (*ClassroomStore)(nil)

// AddClassroom implements store.ClassroomStore.AddClassroom.
func (s *ClassroomStore) AddClassroom(ctx context.Context, name string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	log := logger.FromContextOrDefault(ctx, s.logger)

	classroom, err := domain.NewClassroom(name)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.classrooms[name]; exists {
		return store.NewDuplicateClassroomError("add_classroom", name)
	}

	s.classrooms[name] = classroom
	s.order = append(s.order, name)

	log.Debug("classroom stored", slog.String("classroom", name), slog.Int("classroom_count", len(s.order)))
	return nil
}

// DeleteClassroom implements store.ClassroomStore.DeleteClassroom.
func (s *ClassroomStore) DeleteClassroom(ctx context.Context, name string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	log := logger.FromContextOrDefault(ctx, s.logger)

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.classrooms[name]; !exists {
		return store.NewClassroomNotFoundError("delete_classroom", name)
	}

	delete(s.classrooms, name)
	for i, existing := range s.order {
		if existing == name {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}

	log.Debug("classroom removed", slog.String("classroom", name), slog.Int("classroom_count", len(s.order)))
	return nil
}

// AddStudent implements store.ClassroomStore.AddStudent.
func (s *ClassroomStore) AddStudent(ctx context.Context, studentID, studentName, classroomName string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	classroom, exists := s.classrooms[classroomName]
	if !exists {
		return store.NewClassroomNotFoundError("add_student", classroomName)
	}

	student, err := domain.NewStudent(studentID, studentName)
	if err != nil {
		return err
	}

	if !classroom.Enroll(student) {
		return store.NewStudentAlreadyExistsError("add_student", studentID, classroomName)
	}
	return nil
}

// RemoveStudent implements store.ClassroomStore.RemoveStudent.
func (s *ClassroomStore) RemoveStudent(ctx context.Context, studentID, classroomName string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	classroom, exists := s.classrooms[classroomName]
	if !exists {
		return false, store.NewClassroomNotFoundError("remove_student", classroomName)
	}

	return classroom.Remove(studentID), nil
}

// ScheduleAssignment implements store.ClassroomStore.ScheduleAssignment.
func (s *ClassroomStore) ScheduleAssignment(
	ctx context.Context,
	classroomName, details string,
) (*domain.Assignment, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	log := logger.FromContextOrDefault(ctx, s.logger)

	s.mu.Lock()
	defer s.mu.Unlock()

	classroom, exists := s.classrooms[classroomName]
	if !exists {
		return nil, store.NewClassroomNotFoundError("schedule_assignment", classroomName)
	}

	if s.dedupeAssignments {
		if existing, found := classroom.FindAssignment(details); found {
			log.Debug("assignment already scheduled, keeping existing",
				slog.String("classroom", classroomName),
				slog.String("assignment_id", existing.ID.String()))
			scheduled := *existing
			return &scheduled, nil
		}
	}

	assignment, err := domain.NewAssignment(details)
	if err != nil {
		return nil, err
	}
	classroom.Schedule(assignment)

	scheduled := *assignment
	return &scheduled, nil
}

// SubmitAssignment implements store.ClassroomStore.SubmitAssignment.
func (s *ClassroomStore) SubmitAssignment(ctx context.Context, studentID, classroomName, details string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	log := logger.FromContextOrDefault(ctx, s.logger)

	s.mu.Lock()
	defer s.mu.Unlock()

	classroom, exists := s.classrooms[classroomName]
	if !exists {
		return store.NewClassroomNotFoundError("submit_assignment", classroomName)
	}

	student, enrolled := classroom.Student(studentID)
	if !enrolled {
		return store.NewStudentNotFoundError("submit_assignment", studentID, classroomName)
	}

	if _, scheduled := classroom.FindAssignment(details); !scheduled {
		return store.NewAssignmentNotFoundError("submit_assignment", details, classroomName)
	}

	if student.HasSubmitted(details) {
		log.Debug("assignment already submitted",
			slog.String("classroom", classroomName),
			slog.String("student_id", studentID))
	}
	student.Submit(details)
	return nil
}

// ListClassrooms implements store.ClassroomStore.ListClassrooms.
func (s *ClassroomStore) ListClassrooms(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	names := make([]string, len(s.order))
	copy(names, s.order)
	return names, nil
}

// ListStudents implements store.ClassroomStore.ListStudents.
func (s *ClassroomStore) ListStudents(ctx context.Context, classroomName string) ([]domain.StudentSummary, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	classroom, exists := s.classrooms[classroomName]
	if !exists {
		return nil, store.NewClassroomNotFoundError("list_students", classroomName)
	}
	return classroom.Students(), nil
}

// ListAssignments implements store.ClassroomStore.ListAssignments.
func (s *ClassroomStore) ListAssignments(ctx context.Context, classroomName string) ([]domain.Assignment, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	classroom, exists := s.classrooms[classroomName]
	if !exists {
		return nil, store.NewClassroomNotFoundError("list_assignments", classroomName)
	}
	return classroom.Assignments(), nil
}

// ListSubmissions implements store.ClassroomStore.ListSubmissions.
func (s *ClassroomStore) ListSubmissions(ctx context.Context, studentID, classroomName string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	classroom, exists := s.classrooms[classroomName]
	if !exists {
		return nil, store.NewClassroomNotFoundError("list_submissions", classroomName)
	}

	student, enrolled := classroom.Student(studentID)
	if !enrolled {
		return nil, store.NewStudentNotFoundError("list_submissions", studentID, classroomName)
	}
	return student.Submissions(), nil
}
