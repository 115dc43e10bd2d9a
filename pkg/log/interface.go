// Package log provides a structured logging interface for synthgen.
//
// This package defines a minimal, slog-compatible logging interface so the
// generators and the experiment grid driver can log without depending on a
// particular backend. Two backends are provided: a zerolog implementation used
// by the command line tool, and an adapter over log/slog configured by
// SetupLogger.
//
// Example usage:
//
//	logger := log.GetLogger().With(
//	    log.ExperimentKey, "synthetic/0.1/pmf",
//	)
//	logger.Info("Experiment initialized",
//	    log.RecipeKey, "pmf",
//	    log.RowsKey, 200,
//	    log.ColsKey, 200,
//	)

package log

import (
	"context"
)

// Logger defines a structured logging interface compatible with Go's log/slog.
//
// The interface supports method chaining through the With method, allowing
// for creation of contextual loggers with pre-populated fields.
type Logger interface {
	// Debug logs a debug-level message with optional structured fields.
	//
	// Example:
	//   logger.Debug("Drawing factor",
	//       log.FactorKey, "U",
	//       log.RowsKey, 200,
	//   )
	Debug(msg string, fields ...any)

	// Info logs an info-level message with optional structured fields.
	//
	// Example:
	//   logger.Info("Grid cell done",
	//       log.ConditionKey, "1.0",
	//       log.RecipeKey, "irm",
	//   )
	Info(msg string, fields ...any)

	// Warn logs a warning-level message with optional structured fields.
	Warn(msg string, fields ...any)

	// Error logs an error-level message with optional structured fields.
	// If an error value is provided as the first field, it is recorded under
	// the "error" key and its stack trace may be included.
	//
	// Example:
	//   logger.Error("Experiment initialization failed",
	//       err,
	//       log.ExperimentKey, name,
	//   )
	Error(msg string, fields ...any)

	// With returns a new Logger with the given fields pre-populated.
	With(fields ...any) Logger

	// Enabled reports whether the logger emits log records at the given level.
	Enabled(ctx context.Context, level Level) bool
}

// Level represents a logging level, compatible with slog.Level.
type Level int

// Standard logging levels, values are compatible with slog.Level.
const (
	LevelDebug Level = -4 // Detailed diagnostic information
	LevelInfo  Level = 0  // General operational information
	LevelWarn  Level = 4  // Warning conditions
	LevelError Level = 8  // Error conditions
)

// String returns the string representation of the log level.
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}
