// Package logger wraps slog.Logger with the field names used across vecmath.
package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// Logger wraps slog.Logger with vecmath-specific context.
type Logger struct {
	*slog.Logger
}

// New creates a Logger with the given handler.
// If handler is nil, uses a text handler to stderr at info level.
func New(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{Logger: slog.New(handler)}
}

// From wraps an existing slog.Logger. A nil l yields a no-op Logger.
func From(l *slog.Logger) *Logger {
	if l == nil {
		return Noop()
	}
	return &Logger{Logger: l}
}

// NewJSON creates a Logger that writes JSON records to w.
func NewJSON(w io.Writer, level slog.Level) *Logger {
	return New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
}

// NewText creates a Logger that writes human-readable records to w.
func NewText(w io.Writer, level slog.Level) *Logger {
	return New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// Noop creates a Logger that discards all output.
func Noop() *Logger {
	return &Logger{Logger: slog.New(slog.DiscardHandler)}
}

// ParseLevel parses debug, info, warn or error.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("logger: unknown level %q", s)
}

// WithKind adds the element kind field.
func (l *Logger) WithKind(kind fmt.Stringer) *Logger {
	return &Logger{Logger: l.Logger.With("kind", kind.String())}
}

// LogPut logs a store write.
func (l *Logger) LogPut(ctx context.Context, id string, dimension int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "put failed", "id", id, "dimension", dimension, "error", err)
		return
	}
	l.DebugContext(ctx, "put completed", "id", id, "dimension", dimension)
}

// LogGet logs a store read.
func (l *Logger) LogGet(ctx context.Context, id string, err error) {
	if err != nil {
		l.DebugContext(ctx, "get failed", "id", id, "error", err)
		return
	}
	l.DebugContext(ctx, "get completed", "id", id)
}

// LogRemove logs a store delete.
func (l *Logger) LogRemove(ctx context.Context, id string, err error) {
	if err != nil {
		l.WarnContext(ctx, "remove failed", "id", id, "error", err)
		return
	}
	l.DebugContext(ctx, "remove completed", "id", id)
}

// LogQuery logs a nearest-neighbour query.
func (l *Logger) LogQuery(ctx context.Context, k, results int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "query failed", "k", k, "error", err)
		return
	}
	l.DebugContext(ctx, "query completed", "k", k, "results", results)
}
