package logger

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"
)

// ConsoleHandler is a slog.Handler that prints only the level and message
// of each record, e.g. "info: Classroom Math101 has been created.".
// Attributes are left to the file sink.
type ConsoleHandler struct {
	out   io.Writer
	level slog.Leveler
	mu    *sync.Mutex
}

// NewConsoleHandler creates a ConsoleHandler writing to out.
func NewConsoleHandler(out io.Writer, opts *slog.HandlerOptions) *ConsoleHandler {
	var level slog.Leveler = slog.LevelInfo
	if opts != nil && opts.Level != nil {
		level = opts.Level
	}
	return &ConsoleHandler{out: out, level: level, mu: &sync.Mutex{}}
}

// Enabled implements the slog.Handler interface.
func (h *ConsoleHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

// WithAttrs implements the slog.Handler interface.
func (h *ConsoleHandler) WithAttrs(_ []slog.Attr) slog.Handler {
	return h
}

// WithGroup implements the slog.Handler interface.
func (h *ConsoleHandler) WithGroup(_ string) slog.Handler {
	return h
}

// Handle implements the slog.Handler interface.
func (h *ConsoleHandler) Handle(_ context.Context, record slog.Record) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := fmt.Fprintf(h.out, "%s: %s\n", strings.ToLower(record.Level.String()), record.Message)
	return err
}

// FanoutHandler is a slog.Handler that forwards every record to a set of
// underlying handlers, each applying its own level filter.
type FanoutHandler struct {
	handlers []slog.Handler
}

// NewFanoutHandler creates a FanoutHandler over the given handlers.
func NewFanoutHandler(handlers ...slog.Handler) *FanoutHandler {
	return &FanoutHandler{handlers: handlers}
}

// Enabled implements the slog.Handler interface.
func (h *FanoutHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, handler := range h.handlers {
		if handler.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

// WithAttrs implements the slog.Handler interface.
func (h *FanoutHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	handlers := make([]slog.Handler, len(h.handlers))
	for i, handler := range h.handlers {
		handlers[i] = handler.WithAttrs(attrs)
	}
	return &FanoutHandler{handlers: handlers}
}

// WithGroup implements the slog.Handler interface.
func (h *FanoutHandler) WithGroup(name string) slog.Handler {
	handlers := make([]slog.Handler, len(h.handlers))
	for i, handler := range h.handlers {
		handlers[i] = handler.WithGroup(name)
	}
	return &FanoutHandler{handlers: handlers}
}

// Handle implements the slog.Handler interface. A failing sink does not stop
// the record from reaching the others; all failures are joined.
func (h *FanoutHandler) Handle(ctx context.Context, record slog.Record) error {
	var errs []error
	for _, handler := range h.handlers {
		if !handler.Enabled(ctx, record.Level) {
			continue
		}
		if err := handler.Handle(ctx, record.Clone()); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
