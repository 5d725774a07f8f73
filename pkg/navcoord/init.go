// Package navcoord provides a navigation coordinator for applications that
// keep their view-stack and modal state outside of the views themselves.
//
// The state machine lives in the coordinator subpackage. This package only
// handles framework setup: logging configuration shared by the coordinator
// and the tools built on top of it.
package navcoord

import (
	"log/slog"
	"os"

	"github.com/BrandonKowalski/navcoord/pkg/navcoord/constants"
	"github.com/BrandonKowalski/navcoord/pkg/navcoord/internal"
)

// Options configures navcoord initialization.
type Options struct {
	LogPath  string // Full path for the log file including filename (creates parent directories)
	LogLevel string // Application log level name ("debug", "info", "warn", "error")
	Debug    bool   // Log ignored transitions from the coordinator itself
}

// Init configures logging. Call it once before creating coordinators.
// NAVCOORD_LOG_PATH and NAVCOORD_DEBUG override the corresponding options.
func Init(options Options) {
	if p := os.Getenv(constants.LogPathEnvVar); p != "" {
		internal.SetLogPath(p)
	} else if options.LogPath != "" {
		internal.SetLogPath(options.LogPath)
	}

	if options.Debug || constants.IsDebug() {
		internal.SetInternalLogLevel(slog.LevelDebug)
	} else {
		internal.SetInternalLogLevel(slog.LevelError)
	}

	internal.SetRawLogLevel(options.LogLevel)
}

// Close flushes and closes the log file, if any.
func Close() {
	internal.CloseLogger()
}

// SetLogPath sets the full path for the log file, including filename.
// Call before Init() to take effect during initialization.
func SetLogPath(path string) {
	internal.SetLogPath(path)
}

// GetLogger returns the application logger for structured logging.
func GetLogger() *slog.Logger {
	return internal.GetLogger()
}

// SetLogLevel sets the minimum log level for the application logger.
func SetLogLevel(level slog.Level) {
	internal.SetLogLevel(level)
}

// SetRawLogLevel parses and sets the log level from a string (e.g., "debug", "info", "error").
func SetRawLogLevel(level string) {
	internal.SetRawLogLevel(level)
}
