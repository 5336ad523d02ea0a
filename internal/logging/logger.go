// Package logging provides the shared logger for the worlds core.
//
// The core never surfaces log output to the user; user-visible failures go
// through the notify package instead. Logging exists for preference-write
// failures, discarded pipeline runs and other diagnostics.
package logging

import (
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
)

var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: true,
	TimeFormat:      time.RFC3339,
	Level:           log.InfoLevel,
})

// SetOutput redirects log output. Tests typically pass io.Discard.
func SetOutput(w io.Writer) {
	logger.SetOutput(w)
}

// SetLevel adjusts the minimum level that gets written.
func SetLevel(level log.Level) {
	logger.SetLevel(level)
}

// Debug logs a debug message.
func Debug(msg string, keyvals ...interface{}) {
	logger.Debug(msg, keyvals...)
}

// Info logs an info message.
func Info(msg string, keyvals ...interface{}) {
	logger.Info(msg, keyvals...)
}

// Warn logs a warning message.
func Warn(msg string, keyvals ...interface{}) {
	logger.Warn(msg, keyvals...)
}

// Error logs an error message.
func Error(msg string, keyvals ...interface{}) {
	logger.Error(msg, keyvals...)
}

// WithPrefix returns a logger scoped to a subsystem prefix.
func WithPrefix(prefix string) *log.Logger {
	return logger.WithPrefix(prefix)
}
