// Package log wraps log/slog with component tagging and request-scoped
// context helpers.
package log

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"time"
)

// Logger wraps slog.Logger with a component tag attached to every record.
type Logger struct {
	*slog.Logger
	component string
}

// New creates a logger writing text records at the given level.
func New(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	return &Logger{
		Logger:    slog.New(handler),
		component: ComponentApp,
	}
}

// ParseLevel maps a config string to a slog level, defaulting to Info.
func ParseLevel(s string) slog.Level {
	switch s {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// With returns a new logger with the given attributes.
func (l *Logger) With(args ...any) *Logger {
	return &Logger{
		Logger:    l.Logger.With(args...),
		component: l.component,
	}
}

// WithComponent returns a new logger tagged with a component name.
func (l *Logger) WithComponent(component string) *Logger {
	return &Logger{
		Logger:    l.Logger.With(FieldComponent, component),
		component: component,
	}
}

// LogRequest records one completed HTTP request, escalating the level for
// client and server errors.
func (l *Logger) LogRequest(ctx context.Context, method, path string, status int, duration time.Duration) {
	level := slog.LevelInfo
	if status >= http.StatusInternalServerError {
		level = slog.LevelError
	} else if status >= http.StatusBadRequest {
		level = slog.LevelWarn
	}
	l.Log(ctx, level, "Request completed",
		FieldMethod, method,
		FieldPath, path,
		FieldStatusCode, status,
		FieldDuration, duration.Milliseconds(),
	)
}

// SetDefault installs the logger as the process default for slog.
func SetDefault(logger *Logger) {
	slog.SetDefault(logger.Logger)
}
