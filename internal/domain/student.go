package domain

import (
	"sort"
	"strings"
)

// Student is a learner enrolled in exactly one classroom. The same ID may
// appear in several classrooms as unrelated students.
type Student struct {
	ID   string `json:"id"`
	Name string `json:"name"`

	submissions map[string]struct{}
}

// StudentSummary is the (id, name) pair reported when listing a classroom.
type StudentSummary struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// NewStudent creates a Student with no submissions.
// Returns an error if validation fails.
func NewStudent(id, name string) (*Student, error) {
	student := &Student{
		ID:          id,
		Name:        name,
		submissions: make(map[string]struct{}),
	}

	if err := student.Validate(); err != nil {
		return nil, err
	}

	return student, nil
}

// Validate checks if the Student has valid data.
func (s *Student) Validate() error {
	if strings.TrimSpace(s.ID) == "" {
		return ErrEmptyStudentID
	}

	if strings.TrimSpace(s.Name) == "" {
		return ErrEmptyStudentName
	}

	return nil
}

// Submit records that the student turned in the assignment with the given
// details. Submitting the same details again has no effect.
func (s *Student) Submit(details string) {
	if s.submissions == nil {
		s.submissions = make(map[string]struct{})
	}
	s.submissions[details] = struct{}{}
}

// HasSubmitted reports whether details were submitted by the student.
func (s *Student) HasSubmitted(details string) bool {
	_, ok := s.submissions[details]
	return ok
}

// Submissions returns the submitted assignment details in lexical order.
func (s *Student) Submissions() []string {
	result := make([]string, 0, len(s.submissions))
	for details := range s.submissions {
		result = append(result, details)
	}
	sort.Strings(result)
	return result
}

// Summary returns the (id, name) pair of the student.
func (s *Student) Summary() StudentSummary {
	return StudentSummary{ID: s.ID, Name: s.Name}
}
