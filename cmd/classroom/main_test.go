package main

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/phrazzld/classroom-manager/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func restoreDefaultLogger(t *testing.T) {
	t.Helper()
	original := slog.Default()
	t.Cleanup(func() { slog.SetDefault(original) })
}

func TestRunWritesAuditLog(t *testing.T) {
	restoreDefaultLogger(t)
	logPath := filepath.Join(t.TempDir(), "classroom-manager.log")
	t.Setenv("CLASSROOM_LOG_FILE", logPath)
	t.Setenv("CLASSROOM_LOG_FORMAT", "json")
	t.Setenv("CLASSROOM_LOG_LEVEL", "info")

	in := strings.NewReader(strings.Join([]string{
		"1", "Math101",
		"2", "1", "Alice", "Math101",
		"2", "1", "Alice", "Math101",
		"9",
	}, "\n") + "\n")
	out := &bytes.Buffer{}

	require.NoError(t, run(context.Background(), in, out))

	assert.Contains(t, out.String(), "info: Classroom Math101 has been created.\n")
	assert.Contains(t, out.String(), "error: Student ID 1 already exists in Math101.\n")
	assert.NotContains(t, out.String(), "audit event")

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	logText := string(data)
	assert.Contains(t, logText, `"msg":"Classroom Math101 has been created."`)
	assert.Contains(t, logText, `"command":"add_classroom"`)
	assert.Contains(t, logText, `"msg":"Student ID 1 already exists in Math101."`)
	assert.Contains(t, logText, `"event_type":"classroom.created"`)
	assert.Contains(t, logText, `"event_type":"student.enrolled"`)
	assert.Equal(t, 2, strings.Count(logText, `"msg":"audit event"`))
}

func TestRunFailsOnInvalidConfig(t *testing.T) {
	t.Setenv("CLASSROOM_LOG_LEVEL", "chatty")

	err := run(context.Background(), strings.NewReader(""), &bytes.Buffer{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load configuration")
}

func TestNewApplicationHonoursDedupe(t *testing.T) {
	restoreDefaultLogger(t)
	cfg := &config.Config{
		Log: config.LogConfig{
			Level:  "info",
			File:   filepath.Join(t.TempDir(), "classroom.log"),
			Format: "text",
		},
		Classroom: config.ClassroomConfig{DedupeAssignments: true},
	}

	app, err := newApplication(cfg, strings.NewReader(""), &bytes.Buffer{})
	require.NoError(t, err)
	defer app.Close()

	ctx := context.Background()
	require.NoError(t, app.service.AddClassroom(ctx, "Math101"))
	first, err := app.service.ScheduleAssignment(ctx, "Math101", "HW1")
	require.NoError(t, err)
	second, err := app.service.ScheduleAssignment(ctx, "Math101", "HW1")
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
}

func TestNewApplicationFailsWithoutLogFile(t *testing.T) {
	cfg := &config.Config{
		Log: config.LogConfig{
			Level:  "info",
			File:   filepath.Join(t.TempDir(), "missing", "classroom.log"),
			Format: "text",
		},
	}

	_, err := newApplication(cfg, strings.NewReader(""), &bytes.Buffer{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to set up logger")
}
