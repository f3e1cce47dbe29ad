package panacus

import (
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with panacus-specific helpers so all components
// log with consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a Logger with the given handler. A nil handler falls
// back to a text handler on stderr at info level.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{Logger: slog.New(handler)}
}

// NewTextLogger creates a Logger with human-readable output at the given
// level.
func NewTextLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// NewJSONLogger creates a Logger with JSON output at the given level.
func NewJSONLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// NoopLogger creates a Logger that discards all output.
func NoopLogger() *Logger {
	return NewLogger(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // unreachable level
	}))
}

// WithKind adds the count kind to the logger.
func (l *Logger) WithKind(kind string) *Logger {
	return &Logger{Logger: l.Logger.With("kind", kind)}
}

// WithGroups adds the group count to the logger.
func (l *Logger) WithGroups(n int) *Logger {
	return &Logger{Logger: l.Logger.With("groups", n)}
}
