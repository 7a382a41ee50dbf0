package input

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidClassroomName(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{"letters and digits", "Math101", true},
		{"with spaces", "Intro to Physics", true},
		{"digits only", "101", true},
		{"empty", "", false},
		{"hyphen", "Math-101", false},
		{"underscore", "Math_101", false},
		{"punctuation", "Art!", false},
		{"accented letter", "Français", false},
		{"tab", "Math\t101", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsValidClassroomName(tt.input))
		})
	}
}

func TestIsValidStudentID(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{"simple", "1", true},
		{"leading zeros", "007", true},
		{"surrounding spaces", " 42 ", true},
		{"beyond 64 bits", "1234567890123456789012345", true},
		{"zero", "0", false},
		{"all zeros", "000", false},
		{"inner space", "1 2", false},
		{"negative", "-1", false},
		{"explicit plus", "+5", false},
		{"decimal", "3.5", false},
		{"letters", "abc", false},
		{"trailing letters", "12abc", false},
		{"empty", "", false},
		{"blank", "   ", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsValidStudentID(tt.input))
		})
	}
}

func TestValidatorValidate(t *testing.T) {
	v := NewValidator()

	tests := []struct {
		name    string
		req     interface{}
		wantErr error
	}{
		{
			name: "valid add classroom",
			req:  AddClassroomRequest{ClassroomName: "Math101"},
		},
		{
			name:    "add classroom with special characters",
			req:     AddClassroomRequest{ClassroomName: "Math#101"},
			wantErr: ErrInvalidClassroomName,
		},
		{
			name:    "delete classroom with empty name",
			req:     DeleteClassroomRequest{ClassroomName: ""},
			wantErr: ErrInvalidClassroomName,
		},
		{
			name: "valid enrollment",
			req:  EnrollStudentRequest{StudentID: "1", StudentName: "Alice", ClassroomName: "Math101"},
		},
		{
			name:    "enrollment with non numeric id",
			req:     EnrollStudentRequest{StudentID: "abc", StudentName: "Alice", ClassroomName: "Math101"},
			wantErr: ErrInvalidStudentID,
		},
		{
			name:    "enrollment with negative id",
			req:     EnrollStudentRequest{StudentID: "-5", StudentName: "Alice", ClassroomName: "Math101"},
			wantErr: ErrInvalidStudentID,
		},
		{
			name:    "enrollment with blank name",
			req:     EnrollStudentRequest{StudentID: "1", StudentName: "  ", ClassroomName: "Math101"},
			wantErr: ErrEmptyField,
		},
		{
			name:    "enrollment reports id before name",
			req:     EnrollStudentRequest{StudentID: "0", StudentName: "", ClassroomName: ""},
			wantErr: ErrInvalidStudentID,
		},
		{
			name:    "schedule with empty details",
			req:     ScheduleAssignmentRequest{ClassroomName: "Math101", Details: ""},
			wantErr: ErrEmptyField,
		},
		{
			name: "schedule only requires a non-empty classroom",
			req:  ScheduleAssignmentRequest{ClassroomName: "Math-101", Details: "HW1"},
		},
		{
			name:    "list students with blank classroom",
			req:     ListStudentsRequest{ClassroomName: " "},
			wantErr: ErrEmptyField,
		},
		{
			name:    "remove student with decimal id",
			req:     RemoveStudentRequest{StudentID: "3.5", ClassroomName: "Math101"},
			wantErr: ErrInvalidStudentID,
		},
		{
			name: "valid submission",
			req:  SubmitAssignmentRequest{StudentID: "007", ClassroomName: "Math101", Details: "HW1"},
		},
		{
			name:    "submission with empty classroom",
			req:     SubmitAssignmentRequest{StudentID: "7", ClassroomName: "", Details: "HW1"},
			wantErr: ErrEmptyField,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(tt.req)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
			assert.ErrorIs(t, err, ErrValidation)
		})
	}
}

func TestMessage(t *testing.T) {
	assert.Equal(t, "Enter all fields.", Message(ErrEmptyField))
	assert.Equal(t, "Student ID must be a unique positive integer.", Message(ErrInvalidStudentID))
	assert.Equal(t,
		"Classroom name must be alphanumeric and cannot contain special characters.",
		Message(ErrInvalidClassroomName))
	assert.Equal(t, "invalid input", Message(ErrValidation))
}

func TestValidatorSingleFields(t *testing.T) {
	v := NewValidator()

	assert.NoError(t, v.StudentID("12"))
	assert.ErrorIs(t, v.StudentID("abc"), ErrInvalidStudentID)
	assert.ErrorIs(t, v.StudentID("-5"), ErrInvalidStudentID)
	assert.NoError(t, v.StudentID("1234567890123456789012345"))
	assert.ErrorIs(t, v.StudentID("000"), ErrInvalidStudentID)
}
