package service

import (
	"errors"
	"testing"

	"github.com/phrazzld/classroom-manager/internal/store"
	"github.com/stretchr/testify/assert"
)

func TestClassroomServiceError(t *testing.T) {
	tests := []struct {
		name     string
		op       string
		err      error
		expected string
	}{
		{
			name:     "with underlying error",
			op:       "add_classroom",
			err:      errors.New("boom"),
			expected: "classroom service add_classroom failed: boom",
		},
		{
			name:     "without underlying error",
			op:       "list_classrooms",
			err:      nil,
			expected: "classroom service list_classrooms failed",
		},
		{
			name:     "with store error",
			op:       "delete_classroom",
			err:      store.NewClassroomNotFoundError("delete_classroom", "Art"),
			expected: "classroom service delete_classroom failed: Classroom Art does not exist.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewClassroomServiceError(tt.op, tt.err)
			assert.Equal(t, tt.expected, err.Error())
			assert.Equal(t, tt.err, err.Unwrap())
		})
	}
}
