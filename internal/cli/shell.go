package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/phrazzld/classroom-manager/internal/domain"
	"github.com/phrazzld/classroom-manager/internal/input"
	"github.com/phrazzld/classroom-manager/internal/platform/logger"
	"github.com/phrazzld/classroom-manager/internal/service"
	"github.com/phrazzld/classroom-manager/internal/store"
)

const menu = `
  1. Add Classroom
  2. Add Student
  3. Schedule Assignment
  4. List Classrooms
  5. List Students
  6. Delete Classroom
  7. Remove Student from Classroom
  8. Submit Assignment
  9. Exit
`

// UnknownErrorMessage is logged for failures that are neither input nor
// domain errors.
const UnknownErrorMessage = "An unknown error occurred"

// errInputClosed ends the loop when the input runs out mid-operation.
var errInputClosed = errors.New("input closed")

// inputLine is one read from the input: a line without its terminator, or the
// error that ended the input.
type inputLine struct {
	text string
	err  error
}

// Shell is the numbered-menu loop. It reads one line per prompt from its
// input and writes prompts and listings to its output.
type Shell struct {
	service   service.ClassroomService
	validator *input.Validator
	logger    *slog.Logger
	in        *bufio.Reader
	out       io.Writer

	lines   <-chan inputLine
	readErr error
}

// NewShell creates a Shell. A nil logger falls back to slog.Default().
func NewShell(
	svc service.ClassroomService,
	validator *input.Validator,
	in io.Reader,
	out io.Writer,
	logger *slog.Logger,
) *Shell {
	if logger == nil {
		logger = slog.Default()
	}
	return &Shell{
		service:   svc,
		validator: validator,
		logger:    logger,
		in:        bufio.NewReader(in),
		out:       out,
	}
}

// Run shows the menu and handles options until Exit is chosen, the input
// ends or ctx is cancelled. Cancellation is noticed while waiting for input.
// Operation failures never stop the loop; only a read error from the input
// is returned.
func (s *Shell) Run(ctx context.Context) error {
	done := make(chan struct{})
	defer close(done)
	s.lines = readLines(s.in, done)

	for {
		if err := ctx.Err(); err != nil {
			return s.stop(err)
		}

		s.print(menu)
		option, err := s.prompt(ctx, "Select an option: ")
		if err != nil {
			return s.stop(err)
		}

		switch strings.TrimSpace(option) {
		case "1":
			err = s.dispatch(ctx, "add_classroom", s.addClassroom)
		case "2":
			err = s.dispatch(ctx, "add_student", s.addStudent)
		case "3":
			err = s.dispatch(ctx, "schedule_assignment", s.scheduleAssignment)
		case "4":
			err = s.dispatch(ctx, "list_classrooms", s.listClassrooms)
		case "5":
			err = s.dispatch(ctx, "list_students", s.listStudents)
		case "6":
			err = s.dispatch(ctx, "delete_classroom", s.deleteClassroom)
		case "7":
			err = s.dispatch(ctx, "remove_student", s.removeStudent)
		case "8":
			err = s.dispatch(ctx, "submit_assignment", s.submitAssignment)
		case "9":
			s.exit()
			return nil
		default:
			s.print("Invalid option. Please try again.\n")
		}

		if err != nil {
			return s.stop(err)
		}
	}
}

// stop ends the loop. Only a failed read is reported to the caller; end of
// input and cancellation are normal exits.
func (s *Shell) stop(err error) error {
	s.exit()
	if errors.Is(err, errInputClosed) {
		return s.readErr
	}
	return nil
}

// dispatch runs one menu option with a logger naming the command in ctx and
// reports its failure. Only errInputClosed and cancellation are passed back
// to the loop.
func (s *Shell) dispatch(ctx context.Context, command string, op func(context.Context) error) (err error) {
	log := s.logger.With(slog.String("command", command))
	ctx = logger.WithLogger(ctx, log)

	defer func() {
		if r := recover(); r != nil {
			log.Error(UnknownErrorMessage, "panic", fmt.Sprint(r))
			err = nil
		}
	}()

	err = op(ctx)
	if err == nil || errors.Is(err, errInputClosed) {
		return err
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		return ctxErr
	}
	s.report(log, err)
	return nil
}

// report presents a failed operation: input errors on the output, domain
// errors and anything else through the logger.
func (s *Shell) report(log *slog.Logger, err error) {
	var storeErr *store.StoreError
	switch {
	case errors.Is(err, input.ErrValidation):
		s.print(fmt.Sprintf("Error: %s\n", input.Message(err)))
	case errors.As(err, &storeErr):
		log.Error(storeErr.Error())
	case errors.Is(err, domain.ErrValidation):
		log.Error(err.Error())
	default:
		log.Error(UnknownErrorMessage, "error", err)
	}
}

func (s *Shell) addClassroom(ctx context.Context) error {
	name, err := s.prompt(ctx, "Enter classroom name: ")
	if err != nil {
		return err
	}
	if err = s.validator.Validate(input.AddClassroomRequest{ClassroomName: name}); err != nil {
		return err
	}
	return s.service.AddClassroom(ctx, name)
}

func (s *Shell) addStudent(ctx context.Context) error {
	id, err := s.prompt(ctx, "Enter student ID: ")
	if err != nil {
		return err
	}
	if err = s.validator.StudentID(id); err != nil {
		return err
	}
	name, err := s.prompt(ctx, "Enter student name: ")
	if err != nil {
		return err
	}
	classroom, err := s.prompt(ctx, "Enter classroom name: ")
	if err != nil {
		return err
	}

	req := input.EnrollStudentRequest{StudentID: id, StudentName: name, ClassroomName: classroom}
	if err = s.validator.Validate(req); err != nil {
		return err
	}
	return s.service.EnrollStudent(ctx, strings.TrimSpace(id), name, classroom)
}

func (s *Shell) scheduleAssignment(ctx context.Context) error {
	classroom, err := s.prompt(ctx, "Enter classroom name: ")
	if err != nil {
		return err
	}
	details, err := s.prompt(ctx, "Enter assignment details: ")
	if err != nil {
		return err
	}

	req := input.ScheduleAssignmentRequest{ClassroomName: classroom, Details: details}
	if err = s.validator.Validate(req); err != nil {
		return err
	}
	_, err = s.service.ScheduleAssignment(ctx, classroom, details)
	return err
}

func (s *Shell) listClassrooms(ctx context.Context) error {
	names, err := s.service.ListClassrooms(ctx)
	if err != nil {
		return err
	}

	if len(names) == 0 {
		s.print("No classrooms available.\n")
		return nil
	}
	s.print("Classrooms:\n")
	for _, name := range names {
		s.print(fmt.Sprintf("- %s\n", name))
	}
	return nil
}

func (s *Shell) listStudents(ctx context.Context) error {
	classroom, err := s.prompt(ctx, "Enter classroom name: ")
	if err != nil {
		return err
	}
	if err = s.validator.Validate(input.ListStudentsRequest{ClassroomName: classroom}); err != nil {
		return err
	}

	students, err := s.service.ListStudents(ctx, classroom)
	if err != nil {
		return err
	}

	if len(students) == 0 {
		s.print(fmt.Sprintf("No students enrolled in %s.\n", classroom))
	} else {
		s.print(fmt.Sprintf("Students in %s:\n", classroom))
		for _, student := range students {
			submissions, err := s.service.ListSubmissions(ctx, student.ID, classroom)
			if err != nil {
				return err
			}
			line := fmt.Sprintf("- %s (%s)", student.Name, student.ID)
			if len(submissions) > 0 {
				line += " submitted: " + strings.Join(submissions, ", ")
			}
			s.print(line + "\n")
		}
	}

	assignments, err := s.service.ListAssignments(ctx, classroom)
	if err != nil {
		return err
	}
	if len(assignments) > 0 {
		s.print(fmt.Sprintf("Assignments for %s:\n", classroom))
		for _, assignment := range assignments {
			s.print(fmt.Sprintf("- %s\n", assignment.Details))
		}
	}
	return nil
}

func (s *Shell) deleteClassroom(ctx context.Context) error {
	name, err := s.prompt(ctx, "Enter classroom name to delete: ")
	if err != nil {
		return err
	}
	if err = s.validator.Validate(input.DeleteClassroomRequest{ClassroomName: name}); err != nil {
		return err
	}
	return s.service.DeleteClassroom(ctx, name)
}

func (s *Shell) removeStudent(ctx context.Context) error {
	id, err := s.prompt(ctx, "Enter student ID: ")
	if err != nil {
		return err
	}
	if err = s.validator.StudentID(id); err != nil {
		return err
	}
	classroom, err := s.prompt(ctx, "Enter classroom name: ")
	if err != nil {
		return err
	}

	req := input.RemoveStudentRequest{StudentID: id, ClassroomName: classroom}
	if err = s.validator.Validate(req); err != nil {
		return err
	}

	id = strings.TrimSpace(id)
	removed, err := s.service.RemoveStudent(ctx, id, classroom)
	if err != nil {
		return err
	}
	if !removed {
		s.print(fmt.Sprintf("No student with ID %s found in %s.\n", id, classroom))
		return nil
	}
	s.print(fmt.Sprintf("Student %s has been removed from %s.\n", id, classroom))
	return nil
}

func (s *Shell) submitAssignment(ctx context.Context) error {
	id, err := s.prompt(ctx, "Enter student ID: ")
	if err != nil {
		return err
	}
	if err = s.validator.StudentID(id); err != nil {
		return err
	}
	classroom, err := s.prompt(ctx, "Enter classroom name: ")
	if err != nil {
		return err
	}
	details, err := s.prompt(ctx, "Enter assignment details: ")
	if err != nil {
		return err
	}

	req := input.SubmitAssignmentRequest{StudentID: id, ClassroomName: classroom, Details: details}
	if err = s.validator.Validate(req); err != nil {
		return err
	}
	return s.service.SubmitAssignment(ctx, strings.TrimSpace(id), classroom, details)
}

func (s *Shell) exit() {
	s.print("Exiting...\nThank you!!\n")
}

// prompt writes label and waits for the next line. It returns
// errInputClosed once the input is exhausted and ctx.Err() if ctx is
// cancelled first.
func (s *Shell) prompt(ctx context.Context, label string) (string, error) {
	s.print(label)
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case l, ok := <-s.lines:
		if !ok {
			return "", errInputClosed
		}
		if l.err != nil {
			s.readErr = l.err
			return "", errInputClosed
		}
		return l.text, nil
	}
}

// readLines reads r line by line in the background so a prompt can give up
// on cancellation. Lines have no length limit. The channel is closed at end
// of input; a read failure is delivered first. Sending stops once done is
// closed, though a Read already blocked on r only returns when r does.
func readLines(r *bufio.Reader, done <-chan struct{}) <-chan inputLine {
	lines := make(chan inputLine)
	go func() {
		defer close(lines)
		send := func(l inputLine) bool {
			select {
			case lines <- l:
				return true
			case <-done:
				return false
			}
		}

		for {
			text, err := r.ReadString('\n')
			if text != "" {
				text = strings.TrimSuffix(strings.TrimSuffix(text, "\n"), "\r")
				if !send(inputLine{text: text}) {
					return
				}
			}
			if err != nil {
				if !errors.Is(err, io.EOF) {
					send(inputLine{err: err})
				}
				return
			}
		}
	}()
	return lines
}

func (s *Shell) print(text string) {
	_, _ = io.WriteString(s.out, text)
}
