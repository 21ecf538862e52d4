package logger

import (
	"context"
	"log/slog"
)

// loggerContextKey is the context key for request-scoped loggers.
type loggerContextKey struct{}

// WithLogger returns a context carrying the given logger. Request
// middleware uses this to propagate a logger annotated with the trace
// ID down the handler chain.
func WithLogger(ctx context.Context, log *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerContextKey{}, log)
}

// FromContext retrieves the logger from the context, falling back to
// the process default.
func FromContext(ctx context.Context) *slog.Logger {
	if log, ok := ctx.Value(loggerContextKey{}).(*slog.Logger); ok {
		return log
	}
	return slog.Default()
}

// FromContextOrDefault retrieves the logger from the context, falling
// back to the supplied logger rather than the process default.
func FromContextOrDefault(ctx context.Context, def *slog.Logger) *slog.Logger {
	if log, ok := ctx.Value(loggerContextKey{}).(*slog.Logger); ok {
		return log
	}
	return def
}
