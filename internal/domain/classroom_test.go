package domain

import (
	"reflect"
	"testing"
)

func mustStudent(t *testing.T, id, name string) *Student {
	t.Helper()
	student, err := NewStudent(id, name)
	if err != nil {
		t.Fatalf("Expected no error creating student, got %v", err)
	}
	return student
}

func TestNewClassroom(t *testing.T) {
	t.Parallel()

	classroom, err := NewClassroom("Math101")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if classroom.Name != "Math101" {
		t.Errorf("Expected name %s, got %s", "Math101", classroom.Name)
	}

	if len(classroom.Students()) != 0 {
		t.Errorf("Expected no students, got %v", classroom.Students())
	}

	if len(classroom.Assignments()) != 0 {
		t.Errorf("Expected no assignments, got %v", classroom.Assignments())
	}

	_, err = NewClassroom("")
	if err != ErrEmptyClassroomName {
		t.Errorf("Expected error %v, got %v", ErrEmptyClassroomName, err)
	}
}

func TestClassroomEnrollment(t *testing.T) {
	t.Parallel()

	classroom, err := NewClassroom("Science Lab")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if !classroom.Enroll(mustStudent(t, "2", "Bob")) {
		t.Fatal("Expected first enrollment to succeed")
	}
	if !classroom.Enroll(mustStudent(t, "1", "Alice")) {
		t.Fatal("Expected second enrollment to succeed")
	}
	if classroom.Enroll(mustStudent(t, "1", "Impostor")) {
		t.Error("Expected duplicate ID enrollment to fail")
	}

	want := []StudentSummary{{ID: "2", Name: "Bob"}, {ID: "1", Name: "Alice"}}
	if got := classroom.Students(); !reflect.DeepEqual(got, want) {
		t.Errorf("Expected students %v, got %v", want, got)
	}

	if !classroom.Remove("2") {
		t.Error("Expected removal of enrolled student to succeed")
	}
	if classroom.Remove("2") {
		t.Error("Expected second removal to report false")
	}

	want = []StudentSummary{{ID: "1", Name: "Alice"}}
	if got := classroom.Students(); !reflect.DeepEqual(got, want) {
		t.Errorf("Expected students %v, got %v", want, got)
	}

	if _, ok := classroom.Student("2"); ok {
		t.Error("Expected removed student to be gone")
	}
	if student, ok := classroom.Student("1"); !ok || student.Name != "Alice" {
		t.Errorf("Expected to find Alice, got %v", student)
	}
}

func TestClassroomSchedule(t *testing.T) {
	t.Parallel()

	classroom, err := NewClassroom("History")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	first, _ := NewAssignment("Essay")
	second, _ := NewAssignment("Quiz")
	duplicate, _ := NewAssignment("Essay")
	classroom.Schedule(first)
	classroom.Schedule(second)
	classroom.Schedule(duplicate)

	assignments := classroom.Assignments()
	if len(assignments) != 3 {
		t.Fatalf("Expected 3 assignments, got %d", len(assignments))
	}

	found, ok := classroom.FindAssignment("Essay")
	if !ok || found.ID != first.ID {
		t.Errorf("Expected to find the first Essay scheduling, got %v", found)
	}

	if _, ok := classroom.FindAssignment("essay"); ok {
		t.Error("Expected assignment matching to be case-sensitive")
	}

	assignments[0].Details = "mutated"
	if _, ok := classroom.FindAssignment("Essay"); !ok {
		t.Error("Expected Assignments to return copies")
	}
}
