// Package log provides structured logging for boostsplit.
//
// The package defines a minimal, slog-compatible Logger interface backed by
// zerolog. Components obtain a named logger with GetLoggerWithName and attach
// structured key-value fields to every message:
//
//	logger := log.GetLoggerWithName("boostsplit.binning")
//	logger.Debug("binned feature matrix",
//	    "features", cols,
//	    "rows", rows,
//	)
package log

import (
	"sync"
)

// Logger is a structured logger with slog-style variadic key-value fields.
type Logger interface {
	// Debug logs detailed diagnostic information.
	Debug(msg string, fields ...any)

	// Info logs general operational information.
	Info(msg string, fields ...any)

	// Warn logs potentially problematic situations.
	Warn(msg string, fields ...any)

	// Error logs error conditions. If a field value is an error created by
	// pkg/errors, its stack trace is attached to the event.
	Error(msg string, fields ...any)

	// With returns a new Logger with the given fields pre-populated.
	With(fields ...any) Logger
}

// Level represents a logging level. Values are compatible with slog.Level.
type Level int

const (
	LevelDebug Level = -4
	LevelInfo  Level = 0
	LevelWarn  Level = 4
	LevelError Level = 8
)

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

var (
	providerMu sync.RWMutex
	provider   LoggerProvider = newZerologProvider()
)

// LoggerProvider creates and configures loggers.
type LoggerProvider interface {
	GetLogger() Logger
	GetLoggerWithName(name string) Logger
	SetLevel(level Level)
}

// SetProvider replaces the global logger provider. Intended for tests and for
// applications that bring their own logging backend.
func SetProvider(p LoggerProvider) {
	providerMu.Lock()
	defer providerMu.Unlock()
	provider = p
}

// GetLogger returns the default logger.
func GetLogger() Logger {
	providerMu.RLock()
	defer providerMu.RUnlock()
	return provider.GetLogger()
}

// GetLoggerWithName returns a logger with a component name attached.
func GetLoggerWithName(name string) Logger {
	providerMu.RLock()
	defer providerMu.RUnlock()
	return provider.GetLoggerWithName(name)
}

// SetLevel sets the minimum level emitted by the global provider.
func SetLevel(level Level) {
	providerMu.RLock()
	defer providerMu.RUnlock()
	provider.SetLevel(level)
}
