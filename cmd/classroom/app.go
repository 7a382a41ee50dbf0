package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/phrazzld/classroom-manager/internal/cli"
	"github.com/phrazzld/classroom-manager/internal/config"
	"github.com/phrazzld/classroom-manager/internal/events"
	"github.com/phrazzld/classroom-manager/internal/input"
	"github.com/phrazzld/classroom-manager/internal/platform/logger"
	"github.com/phrazzld/classroom-manager/internal/platform/memory"
	"github.com/phrazzld/classroom-manager/internal/service"
)

// application owns every component for the lifetime of the process.
type application struct {
	config  *config.Config
	logging *logger.Logging
	logger  *slog.Logger
	service service.ClassroomService
	shell   *cli.Shell
}

// newApplication wires the store, audit log, service and shell from cfg.
func newApplication(cfg *config.Config, in io.Reader, out io.Writer) (*application, error) {
	logging, err := logger.Setup(cfg.Log, out)
	if err != nil {
		return nil, fmt.Errorf("failed to set up logger: %w", err)
	}
	log := logging.Logger

	log.Debug("configuration loaded",
		"log_level", cfg.Log.Level,
		"log_file", cfg.Log.File,
		"log_format", cfg.Log.Format,
		"dedupe_assignments", cfg.Classroom.DedupeAssignments)

	classroomStore := memory.NewClassroomStore(log,
		memory.WithAssignmentDedupe(cfg.Classroom.DedupeAssignments))
	emitter := events.NewInMemoryEventEmitter(log)
	emitter.RegisterHandler(events.NewLogHandler(logging.Audit))

	svc, err := service.NewClassroomService(classroomStore, emitter, log)
	if err != nil {
		_ = logging.Close()
		return nil, fmt.Errorf("failed to create classroom service: %w", err)
	}

	return &application{
		config:  cfg,
		logging: logging,
		logger:  log,
		service: svc,
		shell:   cli.NewShell(svc, input.NewValidator(), in, out, log),
	}, nil
}

// Run drives the interactive menu.
func (a *application) Run(ctx context.Context) error {
	a.logger.Debug("classroom manager started")
	return a.shell.Run(ctx)
}

// Close releases the log file.
func (a *application) Close() error {
	return a.logging.Close()
}
