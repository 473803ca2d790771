package hopgo

import (
	"context"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with hopgo-specific context.
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

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewJSONLogger(level slog.Level) *Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all log output.
// Use this to disable logging entirely.
func NoopLogger() *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// WithDimension adds a dimension field to the logger.
func (l *Logger) WithDimension(dim int) *Logger {
	return &Logger{
		Logger: l.Logger.With("dimension", dim),
	}
}

// LogTrain logs a training run.
func (l *Logger) LogTrain(ctx context.Context, patterns int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "train failed",
			"patterns", patterns,
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "train completed",
			"patterns", patterns,
		)
	}
}

// LogRecall logs a recall run.
func (l *Logger) LogRecall(ctx context.Context, mode string, steps int, converged bool, err error) {
	if err != nil {
		l.ErrorContext(ctx, "recall failed",
			"mode", mode,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "recall completed",
			"mode", mode,
			"steps", steps,
			"converged", converged,
		)
	}
}

// LogBatchRecall logs a batch recall run.
func (l *Logger) LogBatchRecall(ctx context.Context, count, failed int) {
	if failed > 0 {
		l.WarnContext(ctx, "batch recall completed with failures",
			"total", count,
			"failed", failed,
			"success", count-failed,
		)
	} else {
		l.InfoContext(ctx, "batch recall completed",
			"count", count,
		)
	}
}

// LogSnapshot logs a snapshot save or load.
func (l *Logger) LogSnapshot(ctx context.Context, op, name string, err error) {
	if err != nil {
		l.ErrorContext(ctx, "snapshot "+op+" failed",
			"name", name,
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "snapshot "+op+" completed",
			"name", name,
		)
	}
}
