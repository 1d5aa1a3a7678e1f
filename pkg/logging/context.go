package logging

import (
	"context"

	"github.com/rs/zerolog"
)

// contextKey is a custom type for context keys to avoid collisions.
type contextKey int

const (
	// loggerKey is the context key for the logger.
	loggerKey contextKey = iota
	// caseKey is the context key for the case reference being processed.
	caseKey
)

// WithLogger adds a logger to the context.
func WithLogger(ctx context.Context, logger *zerolog.Logger) context.Context {
	if logger == nil {
		logger = Default()
	}
	return context.WithValue(ctx, loggerKey, logger)
}

// FromContext extracts the logger from context, or returns the default logger.
func FromContext(ctx context.Context) *zerolog.Logger {
	if ctx == nil {
		return Default()
	}

	if logger, ok := ctx.Value(loggerKey).(*zerolog.Logger); ok && logger != nil {
		return logger
	}

	return Default()
}

// Ctx returns a logger from the context or the default logger.
// This is a shorter alias for FromContext.
func Ctx(ctx context.Context) *zerolog.Logger {
	return FromContext(ctx)
}

// WithCase tags the context logger with the case-file reference being
// reconciled so every downstream log line carries it.
func WithCase(ctx context.Context, expediente string) context.Context {
	ctx = context.WithValue(ctx, caseKey, expediente)

	logger := FromContext(ctx)
	newLogger := logger.With().Str("expediente", expediente).Logger()
	return WithLogger(ctx, &newLogger)
}

// Case extracts the case-file reference from context.
func Case(ctx context.Context) string {
	if ref, ok := ctx.Value(caseKey).(string); ok {
		return ref
	}
	return ""
}
