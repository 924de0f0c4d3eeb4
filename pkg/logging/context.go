package logging

import (
	"context"

	"github.com/rs/zerolog"
)

// contextKey is a custom type for context keys to avoid collisions.
type contextKey int

const loggerKey contextKey = iota

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

// WithField adds a single field to the logger in the context.
func WithField(ctx context.Context, key string, value any) context.Context {
	logCtx := addField(FromContext(ctx).With(), key, value)
	logger := logCtx.Logger()
	return WithLogger(ctx, &logger)
}

// WithContributor tags log lines with a contributor id.
func WithContributor(ctx context.Context, id string) context.Context {
	return WithField(ctx, "contributor_id", id)
}

// WithStage tags log lines with the pipeline stage producing them.
func WithStage(ctx context.Context, stage string) context.Context {
	return WithField(ctx, "stage", stage)
}

// WithRegistry tags log lines with the registry being read.
func WithRegistry(ctx context.Context, registry string) context.Context {
	return WithField(ctx, "registry", registry)
}
