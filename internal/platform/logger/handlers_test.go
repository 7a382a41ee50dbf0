package logger

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type failingHandler struct {
	slog.Handler
}

func (h failingHandler) Enabled(context.Context, slog.Level) bool { return true }

func (h failingHandler) Handle(context.Context, slog.Record) error {
	return errors.New("sink unavailable")
}

func TestFanoutHandlerContinuesPastFailingSink(t *testing.T) {
	buf := &TestLogBuffer{}
	handler := NewFanoutHandler(
		failingHandler{},
		NewConsoleHandler(buf, &slog.HandlerOptions{Level: slog.LevelInfo}),
	)

	record := slog.NewRecord(time.Now(), slog.LevelWarn, "Invalid option. Please try again.", 0)
	err := handler.Handle(context.Background(), record)

	assert.EqualError(t, err, "sink unavailable")
	assert.Equal(t, "warn: Invalid option. Please try again.\n", buf.String())
}

func TestFanoutHandlerEnabled(t *testing.T) {
	quiet := NewConsoleHandler(&TestLogBuffer{}, &slog.HandlerOptions{Level: slog.LevelError})
	verbose := NewConsoleHandler(&TestLogBuffer{}, &slog.HandlerOptions{Level: slog.LevelDebug})

	assert.False(t, NewFanoutHandler(quiet).Enabled(context.Background(), slog.LevelInfo))
	assert.True(t, NewFanoutHandler(quiet, verbose).Enabled(context.Background(), slog.LevelInfo))
}

func TestFanoutHandlerRespectsPerSinkLevels(t *testing.T) {
	quietBuf := &TestLogBuffer{}
	verboseBuf := &TestLogBuffer{}
	logger := slog.New(NewFanoutHandler(
		NewConsoleHandler(quietBuf, &slog.HandlerOptions{Level: slog.LevelError}),
		NewConsoleHandler(verboseBuf, &slog.HandlerOptions{Level: slog.LevelDebug}),
	))

	logger.Debug("scanning classrooms")

	assert.Empty(t, quietBuf.String())
	assert.Equal(t, "debug: scanning classrooms\n", verboseBuf.String())
}
