package domain

import (
	"strings"
)

// Classroom is a named container of enrolled students and scheduled
// assignments. Student IDs are unique within a classroom; enrollment order
// and schedule order are preserved.
type Classroom struct {
	Name string `json:"name"`

	students     map[string]*Student
	studentOrder []string
	assignments  []*Assignment
}

// NewClassroom creates an empty Classroom.
// Returns an error if validation fails.
func NewClassroom(name string) (*Classroom, error) {
	classroom := &Classroom{
		Name:     name,
		students: make(map[string]*Student),
	}

	if err := classroom.Validate(); err != nil {
		return nil, err
	}

	return classroom, nil
}

// Validate checks if the Classroom has valid data.
func (c *Classroom) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return ErrEmptyClassroomName
	}
	return nil
}

// Enroll adds the student to the classroom. It returns false, leaving the
// classroom untouched, when a student with the same ID is already enrolled.
func (c *Classroom) Enroll(student *Student) bool {
	if c.students == nil {
		c.students = make(map[string]*Student)
	}
	if _, exists := c.students[student.ID]; exists {
		return false
	}
	c.students[student.ID] = student
	c.studentOrder = append(c.studentOrder, student.ID)
	return true
}

// Remove unenrolls the student with the given ID and reports whether one
// was found.
func (c *Classroom) Remove(studentID string) bool {
	if _, exists := c.students[studentID]; !exists {
		return false
	}
	delete(c.students, studentID)
	for i, id := range c.studentOrder {
		if id == studentID {
			c.studentOrder = append(c.studentOrder[:i], c.studentOrder[i+1:]...)
			break
		}
	}
	return true
}

// Student looks up an enrolled student by ID.
func (c *Classroom) Student(studentID string) (*Student, bool) {
	student, ok := c.students[studentID]
	return student, ok
}

// Students returns the enrolled students as (id, name) pairs in enrollment
// order.
func (c *Classroom) Students() []StudentSummary {
	result := make([]StudentSummary, 0, len(c.studentOrder))
	for _, id := range c.studentOrder {
		result = append(result, c.students[id].Summary())
	}
	return result
}

// Schedule appends the assignment to the classroom's schedule.
func (c *Classroom) Schedule(assignment *Assignment) {
	c.assignments = append(c.assignments, assignment)
}

// FindAssignment returns the first scheduled assignment whose details match
// exactly.
func (c *Classroom) FindAssignment(details string) (*Assignment, bool) {
	for _, assignment := range c.assignments {
		if assignment.Details == details {
			return assignment, true
		}
	}
	return nil, false
}

// Assignments returns copies of the scheduled assignments in schedule order.
func (c *Classroom) Assignments() []Assignment {
	result := make([]Assignment, 0, len(c.assignments))
	for _, assignment := range c.assignments {
		result = append(result, *assignment)
	}
	return result
}
