package kmeans

import (
	"context"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with kmeans-specific context.
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

// WithRunID tags every record with the id of a clustering run.
func (l *Logger) WithRunID(id string) *Logger {
	return &Logger{
		Logger: l.Logger.With("run_id", id),
	}
}

// WithK adds a k (cluster count) field to the logger.
func (l *Logger) WithK(k int) *Logger {
	return &Logger{
		Logger: l.Logger.With("k", k),
	}
}

// WithDimension adds a dimension field to the logger.
func (l *Logger) WithDimension(dim int) *Logger {
	return &Logger{
		Logger: l.Logger.With("dimension", dim),
	}
}

// WithCount adds a record count field to the logger.
func (l *Logger) WithCount(count int) *Logger {
	return &Logger{
		Logger: l.Logger.With("count", count),
	}
}

// LogRound logs one assign/update round.
func (l *Logger) LogRound(ctx context.Context, round int, shift, inertia float64, reseeded int) {
	if reseeded > 0 {
		l.WarnContext(ctx, "round reseeded empty clusters",
			"round", round,
			"shift", shift,
			"inertia", inertia,
			"reseeded", reseeded,
		)
		return
	}
	l.DebugContext(ctx, "round completed",
		"round", round,
		"shift", shift,
		"inertia", inertia,
	)
}

// LogFit logs the outcome of a clustering run.
func (l *Logger) LogFit(ctx context.Context, rounds int, converged bool, err error) {
	switch {
	case err != nil:
		l.ErrorContext(ctx, "clustering failed",
			"rounds", rounds,
			"error", err,
		)
	case !converged:
		l.WarnContext(ctx, "clustering stopped at round limit without converging",
			"rounds", rounds,
		)
	default:
		l.InfoContext(ctx, "clustering converged",
			"rounds", rounds,
		)
	}
}
