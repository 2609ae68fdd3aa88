package rkmatch

import (
	"context"
	"io"
	"log/slog"
	"os"
	"time"
)

// Logger wraps slog.Logger with rkmatch-specific context.
// This provides structured logging with consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs to stderr.
func NewJSONLogger(level slog.Level) *Logger {
	return NewJSONLoggerTo(os.Stderr, level)
}

// NewJSONLoggerTo creates a JSON Logger writing to w.
func NewJSONLoggerTo(w io.Writer, level slog.Level) *Logger {
	return &Logger{
		Logger: slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})),
	}
}

// NewTextLogger creates a Logger that outputs human-readable text logs to stderr.
func NewTextLogger(level slog.Level) *Logger {
	return NewTextLoggerTo(os.Stderr, level)
}

// NewTextLoggerTo creates a text Logger writing to w.
func NewTextLoggerTo(w io.Writer, level slog.Level) *Logger {
	return &Logger{
		Logger: slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})),
	}
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	handler := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// WithAlgorithm adds an algorithm field to the logger.
func (l *Logger) WithAlgorithm(a Algorithm) *Logger {
	return &Logger{
		Logger: l.Logger.With("algorithm", a.String()),
	}
}

// WithChunkSize adds a chunk size field to the logger.
func (l *Logger) WithChunkSize(k int) *Logger {
	return &Logger{
		Logger: l.Logger.With("k", k),
	}
}

// WithDocument adds a document name field to the logger.
func (l *Logger) WithDocument(name string) *Logger {
	return &Logger{
		Logger: l.Logger.With("document", name),
	}
}

// LogMatch logs a completed (or failed) match.
func (l *Logger) LogMatch(ctx context.Context, res *Result, err error) {
	if err != nil {
		l.ErrorContext(ctx, "match failed",
			"error", err,
		)
		return
	}
	l.DebugContext(ctx, "match completed",
		"chunks", res.TotalChunks,
		"matched", res.Matched,
		"distinct", res.Distinct.GetCardinality(),
		"duration", res.Duration,
	)
}

// LogLoad logs a document load.
func (l *Logger) LogLoad(ctx context.Context, source string, size int64, elapsed time.Duration, err error) {
	if err != nil {
		l.ErrorContext(ctx, "load failed",
			"source", source,
			"error", err,
		)
		return
	}
	l.DebugContext(ctx, "document loaded",
		"source", source,
		"bytes", size,
		"duration", elapsed,
	)
}
