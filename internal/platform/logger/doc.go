// Package logger provides structured logging functionality for the application.
//
// It utilizes Go's standard library log/slog package. Every record is echoed
// to the console as a short "level: message" line and appended to a log file
// with its timestamp and attributes, which serves as the audit trail of the
// classroom manager.
package logger
