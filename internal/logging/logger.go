// Package logging wraps log/slog with field names shared by the loader,
// classifier and CLI.
package logging

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"
)

// Logger wraps slog.Logger with gesture-specific helpers.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{Logger: slog.New(handler)}
}

// NewJSONLogger creates a Logger that writes JSON records to w.
func NewJSONLogger(w io.Writer, level slog.Level) *Logger {
	return NewLogger(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
}

// NewTextLogger creates a Logger that writes human-readable records to w.
func NewTextLogger(w io.Writer, level slog.Level) *Logger {
	return NewLogger(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// NoopLogger creates a Logger that discards all output.
func NoopLogger() *Logger {
	return NewLogger(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
		Level: slog.Level(1000),
	}))
}

// ParseLevel maps debug, info, warn and error to slog levels. Unknown names
// map to info.
func ParseLevel(name string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// New builds a Logger from a format ("text" or "json") and level name.
func New(w io.Writer, format, level string) *Logger {
	if strings.EqualFold(format, "json") {
		return NewJSONLogger(w, ParseLevel(level))
	}
	return NewTextLogger(w, ParseLevel(level))
}

// WithK adds a k (neighbor count) field to the logger.
func (l *Logger) WithK(k int) *Logger {
	return &Logger{Logger: l.Logger.With("k", k)}
}

// LogClassSkipped logs a class that contributed no samples.
func (l *Logger) LogClassSkipped(ctx context.Context, class int, path, reason string) {
	l.WarnContext(ctx, "class skipped",
		"class", class,
		"path", path,
		"reason", reason,
	)
}

// LogClassLoaded logs the number of samples kept for a class.
func (l *Logger) LogClassLoaded(ctx context.Context, class, records, kept int) {
	l.InfoContext(ctx, "class loaded",
		"class", class,
		"samples", kept,
		"records", records,
		"subsampled", kept != records,
	)
}

// LogLoadComplete logs the outcome of a training load.
func (l *Logger) LogLoadComplete(ctx context.Context, basePath string, total int) {
	if total == 0 {
		l.ErrorContext(ctx, "no training data loaded",
			"base_path", basePath,
		)
		return
	}
	l.InfoContext(ctx, "training set loaded",
		"base_path", basePath,
		"total", total,
	)
}

// LogClassify logs a classification result.
func (l *Logger) LogClassify(ctx context.Context, label int, confidence float32, neighbors int) {
	l.DebugContext(ctx, "classify completed",
		"label", label,
		"confidence", confidence,
		"neighbors", neighbors,
	)
}
