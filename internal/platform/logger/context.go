package logger

import (
	"context"
	"log/slog"
)

// loggerContextKey is an unexported type for the context key, preventing
// collisions with keys defined in other packages.
type loggerContextKey struct{}

// WithLogger returns a copy of the parent context carrying the given logger.
// Handlers and middleware use this to thread request-scoped loggers (with
// trace IDs attached) down to stores and services.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerContextKey{}, logger)
}

// FromContext retrieves the logger stored in the context, if any.
// The second return value reports whether a logger was present.
func FromContext(ctx context.Context) (*slog.Logger, bool) {
	logger, ok := ctx.Value(loggerContextKey{}).(*slog.Logger)
	return logger, ok
}

// FromContextOrDefault retrieves the logger stored in the context, falling
// back to the provided default, and finally to slog.Default() if both are
// absent. It never returns nil.
func FromContextOrDefault(ctx context.Context, def *slog.Logger) *slog.Logger {
	if logger, ok := FromContext(ctx); ok && logger != nil {
		return logger
	}
	if def != nil {
		return def
	}
	return slog.Default()
}
