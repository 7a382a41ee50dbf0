package events

import (
	"context"
	"log/slog"
)

// LogHandler writes every audit event to a logger. The application hands it
// the file-only audit logger so records do not reach the console.
type LogHandler struct {
	logger *slog.Logger
}

// NewLogHandler creates a LogHandler. If logger is nil, slog.Default() is used.
func NewLogHandler(logger *slog.Logger) *LogHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogHandler{logger: logger.With("component", "audit")}
}

// HandleEvent implements EventHandler.
func (h *LogHandler) HandleEvent(ctx context.Context, event *AuditEvent) error {
	h.logger.InfoContext(ctx, "audit event",
		"event_id", event.ID.String(),
		"event_type", event.Type,
		"classroom", event.Classroom,
		"payload", string(event.Payload))
	return nil
}
