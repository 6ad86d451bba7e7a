package logging

import (
	"context"
	"strconv"

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
	logger := FromContext(ctx)
	logCtx := addField(logger.With(), key, value)
	newLogger := logCtx.Logger()
	return WithLogger(ctx, &newLogger)
}

// WithSource tags the context logger with an ingestion source name.
func WithSource(ctx context.Context, source string) context.Context {
	return WithField(ctx, "source", source)
}

// WithCommand tags the context logger with a protocol command verb.
func WithCommand(ctx context.Context, command string) context.Context {
	return WithField(ctx, "command", command)
}

// WithMovie tags the context logger with a movie id.
func WithMovie(ctx context.Context, movieID int) context.Context {
	return WithField(ctx, "movie_id", strconv.Itoa(movieID))
}

// WithActor tags the context logger with an actor id.
func WithActor(ctx context.Context, actorID int) context.Context {
	return WithField(ctx, "actor_id", strconv.Itoa(actorID))
}
