package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/phrazzld/classroom-manager/internal/config"
)

// ParseLevel converts a configured level name into a slog.Level.
// Unknown names fall back to info and report ok=false.
func ParseLevel(name string) (slog.Level, bool) {
	switch strings.ToLower(name) {
	case "debug":
		return slog.LevelDebug, true
	case "info":
		return slog.LevelInfo, true
	case "warn":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	default:
		return slog.LevelInfo, false
	}
}

// Logging bundles the loggers built from configuration and the log file
// they write to.
type Logging struct {
	// Logger echoes to the console and appends to the log file.
	Logger *slog.Logger
	// Audit appends to the log file only.
	Audit *slog.Logger

	file *os.File
}

// Close releases the log file.
func (l *Logging) Close() error {
	if l == nil || l.file == nil {
		return nil
	}
	return l.file.Close()
}

// Setup initializes the application's logging system based on the provided
// configuration. Records are written to console and appended to cfg.File.
// The console logger is also installed as the slog default.
//
// The caller owns the returned Logging and must Close it on exit.
func Setup(cfg config.LogConfig, console io.Writer) (*Logging, error) {
	level, ok := ParseLevel(cfg.Level)
	if !ok {
		tmpLogger := slog.New(slog.NewTextHandler(os.Stderr, nil))
		tmpLogger.Warn("invalid log level configured, using default level",
			"configured_level", cfg.Level,
			"default_level", "info")
	}

	file, err := os.OpenFile(cfg.File, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}

	logging := &Logging{
		Logger: New(console, file, cfg.Format, level),
		Audit:  slog.New(newFileHandler(file, cfg.Format, level)),
		file:   file,
	}
	slog.SetDefault(logging.Logger)

	return logging, nil
}

// New builds a logger that echoes to console and appends to sink in the
// given format ("json" or "text").
func New(console, sink io.Writer, format string, level slog.Level) *slog.Logger {
	return slog.New(NewFanoutHandler(
		NewConsoleHandler(console, &slog.HandlerOptions{Level: level}),
		newFileHandler(sink, format, level),
	))
}

func newFileHandler(sink io.Writer, format string, level slog.Level) slog.Handler {
	opts := &slog.HandlerOptions{Level: level}
	if strings.EqualFold(format, "json") {
		return slog.NewJSONHandler(sink, opts)
	}
	return slog.NewTextHandler(sink, opts)
}
