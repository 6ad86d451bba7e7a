package query

import (
	"github.com/rs/zerolog"

	"github.com/agentstation/cinemap/pkg/catalogs"
)

// InsertHook is called after INSERT_ACTOR registers an actor into a movie.
type InsertHook func(actor *catalogs.Actor, movieID int)

// RemoveHook is called after REMOVE_ACTOR drops an actor.
type RemoveHook func(actor *catalogs.Actor)

// Options configures an Engine.
type Options struct {
	Logger   *zerolog.Logger
	OnInsert []InsertHook
	OnRemove []RemoveHook
}

// Option is a function that configures engine Options.
type Option func(*Options)

// WithLogger sets the logger used for dispatch diagnostics.
func WithLogger(logger *zerolog.Logger) Option {
	return func(o *Options) {
		o.Logger = logger
	}
}

// WithOnInsert registers a hook for successful actor insertions.
func WithOnInsert(fn InsertHook) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnInsert = append(o.OnInsert, fn)
		}
	}
}

// WithOnRemove registers a hook for successful actor removals.
func WithOnRemove(fn RemoveHook) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnRemove = append(o.OnRemove, fn)
		}
	}
}
