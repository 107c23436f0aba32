// Package logging defines the leveled diagnostic sink used by the action
// tracker, together with a log/slog adapter and a logger that discards
// everything.
package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// Level is the minimum severity a logger emits.
type Level int

// The supported levels, from most to least verbose.
const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

// String returns the string representation of the level.
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "debug"
	case LevelInfo:
		return "info"
	case LevelWarn:
		return "warn"
	case LevelError:
		return "error"
	default:
		return "unknown"
	}
}

// ParseLevel converts a level name into a Level.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug, nil
	case "info", "":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	default:
		return LevelInfo, fmt.Errorf("unknown log level %q", s)
	}
}

// Logger accepts leveled text messages. Messages are passed verbatim, callers
// are responsible for formatting.
type Logger interface {
	Error(msg string)
	Warning(msg string)
	Info(msg string)
	Debug(msg string)

	IsErrorEnabled() bool
	IsWarningEnabled() bool
	IsInfoEnabled() bool
	IsDebugEnabled() bool
}

// SlogLogger adapts a *slog.Logger to the Logger interface.
type SlogLogger struct {
	logger *slog.Logger
	level  Level
}

// NewSlogLogger creates a logger that writes to w in the given format, which
// is either "json" or "text".
func NewSlogLogger(w io.Writer, level Level, format string) *SlogLogger {
	opts := &slog.HandlerOptions{Level: slogLevel(level)}

	var handler slog.Handler
	if format == "json" {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	return &SlogLogger{logger: slog.New(handler), level: level}
}

// NewSlogAdapter wraps an existing *slog.Logger.
func NewSlogAdapter(l *slog.Logger, level Level) *SlogLogger {
	return &SlogLogger{logger: l, level: level}
}

func slogLevel(l Level) slog.Level {
	switch l {
	case LevelDebug:
		return slog.LevelDebug
	case LevelWarn:
		return slog.LevelWarn
	case LevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func (l *SlogLogger) log(level slog.Level, msg string) {
	l.logger.Log(context.Background(), level, msg)
}

// Error logs at error level.
func (l *SlogLogger) Error(msg string) {
	l.log(slog.LevelError, msg)
}

// Warning logs at warn level.
func (l *SlogLogger) Warning(msg string) {
	l.log(slog.LevelWarn, msg)
}

// Info logs at info level.
func (l *SlogLogger) Info(msg string) {
	l.log(slog.LevelInfo, msg)
}

// Debug logs at debug level.
func (l *SlogLogger) Debug(msg string) {
	l.log(slog.LevelDebug, msg)
}

// IsErrorEnabled reports whether error messages are emitted.
func (l *SlogLogger) IsErrorEnabled() bool { return l.level <= LevelError }

// IsWarningEnabled reports whether warnings are emitted.
func (l *SlogLogger) IsWarningEnabled() bool { return l.level <= LevelWarn }

// IsInfoEnabled reports whether info messages are emitted.
func (l *SlogLogger) IsInfoEnabled() bool { return l.level <= LevelInfo }

// IsDebugEnabled reports whether debug messages are emitted.
func (l *SlogLogger) IsDebugEnabled() bool { return l.level <= LevelDebug }

// NopLogger discards all messages.
type NopLogger struct{}

func (NopLogger) Error(string)   {}
func (NopLogger) Warning(string) {}
func (NopLogger) Info(string)    {}
func (NopLogger) Debug(string)   {}

func (NopLogger) IsErrorEnabled() bool   { return false }
func (NopLogger) IsWarningEnabled() bool { return false }
func (NopLogger) IsInfoEnabled() bool    { return false }
func (NopLogger) IsDebugEnabled() bool   { return false }
