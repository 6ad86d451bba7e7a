// Package query implements the line-oriented command protocol over a catalog.
//
// A command line is a verb followed by space-separated arguments. Arguments
// that may contain spaces (actor and genre names) are rebuilt by rejoining
// the remaining tokens with single spaces. Every command returns a string;
// only a numeric argument that fails to parse surfaces as an error.
//
// Example usage:
//
//	engine := query.New(cat)
//	out, err := engine.Execute(ctx, "GET_TITLES_YEAR 2000")
package query

import (
	"context"
	"slices"
	"strings"
	"time"

	"github.com/agnivade/levenshtein"
	"github.com/rs/zerolog"

	"github.com/agentstation/cinemap/internal/fields"
	"github.com/agentstation/cinemap/pkg/catalogs"
	"github.com/agentstation/cinemap/pkg/constants"
	"github.com/agentstation/cinemap/pkg/logging"
)

// Command verbs.
const (
	CountMoviesYear       = "COUNT_MOVIES_YEAR"
	CountMoviesActor      = "COUNT_MOVIES_ACTOR"
	CountMoviesActors     = "COUNT_MOVIES_ACTORS"
	GetTitlesYear         = "GET_TITLES_YEAR"
	HardModeOn1           = "HARD_MODE_ON_1"
	GetTopVotedTitlesYear = "GET_TOP_VOTED_TITLES_YEAR"
	CountMoviesActorYear  = "COUNT_MOVIES_ACTOR_YEAR"
	GetTopActorYear       = "GET_TOP_ACTOR_YEAR"
	CountMoviesYearGenre  = "COUNT_MOVIES_YEAR_GENRE"
	GetMaleRatioYear      = "GET_MALE_RATIO_YEAR"
	CountMoviesManyActors = "COUNT_MOVIES_WITH_MANY_ACTORS"
	GetTopActorsByGenre   = "GET_TOP_ACTORS_BY_GENRE"
	InsertActor           = "INSERT_ACTOR"
	RemoveActor           = "REMOVE_ACTOR"
)

// handler answers one command. tokens[0] is the verb.
type handler func(e *Engine, ctx context.Context, tokens []string) (string, error)

var handlers = map[string]handler{
	CountMoviesYear:       (*Engine).countMoviesYear,
	CountMoviesActor:      (*Engine).countMoviesActor,
	CountMoviesActors:     (*Engine).countMoviesActors,
	GetTitlesYear:         (*Engine).getTitlesYear,
	HardModeOn1:           (*Engine).hardModeOn1,
	GetTopVotedTitlesYear: (*Engine).getTopVotedTitlesYear,
	CountMoviesActorYear:  (*Engine).countMoviesActorYear,
	GetTopActorYear:       (*Engine).getTopActorYear,
	CountMoviesYearGenre:  (*Engine).countMoviesYearGenre,
	GetMaleRatioYear:      (*Engine).getMaleRatioYear,
	CountMoviesManyActors: (*Engine).countMoviesWithManyActors,
	GetTopActorsByGenre:   (*Engine).getTopActorsByGenre,
	InsertActor:           (*Engine).insertActor,
	RemoveActor:           (*Engine).removeActor,
}

// Engine dispatches command lines against a catalog.
// It is not safe for concurrent use; callers serialize commands.
type Engine struct {
	cat  catalogs.Catalog
	opts Options
}

// New creates an engine over cat.
func New(cat catalogs.Catalog, opts ...Option) *Engine {
	e := &Engine{cat: cat}
	for _, opt := range opts {
		opt(&e.opts)
	}
	return e
}

// Execute runs one command line and returns its response.
// Unknown or malformed lines yield constants.InvalidQuery with a nil error.
// A numeric argument that does not parse yields an *errors.ArgumentError.
func (e *Engine) Execute(ctx context.Context, line string) (string, error) {
	logger := e.logger(ctx)

	if !strings.Contains(line, constants.TokenSeparator) {
		logger.Debug().Str("line", line).Msg("Command without arguments")
		return constants.InvalidQuery, nil
	}

	tokens := fields.Split(line, constants.TokenSeparator)
	if len(tokens) == 0 {
		logger.Debug().Str("line", line).Msg("Blank command")
		return constants.InvalidQuery, nil
	}
	verb := tokens[0]
	h, ok := handlers[verb]
	if !ok {
		if hint, ok := e.Suggest(verb); ok {
			logger.Debug().Str("verb", verb).Str("suggestion", hint).Msg("Unknown command")
		}
		return constants.InvalidQuery, nil
	}

	ctx = logging.WithCommand(logging.WithLogger(ctx, logger), verb)
	start := time.Now()
	out, err := h(e, ctx, tokens)
	logging.FromContext(ctx).Debug().
		Dur("elapsed", time.Since(start)).
		Err(err).
		Msg("Command executed")
	return out, err
}

// Commands returns the supported verbs in sorted order.
func (e *Engine) Commands() []string {
	verbs := make([]string, 0, len(handlers))
	for verb := range handlers {
		verbs = append(verbs, verb)
	}
	slices.Sort(verbs)
	return verbs
}

// Suggest returns the verb closest to token by edit distance, if any verb
// is within a third of its length.
func (e *Engine) Suggest(token string) (string, bool) {
	token = strings.ToUpper(strings.TrimSpace(token))
	if token == "" {
		return "", false
	}

	best, bestDist := "", -1
	for _, verb := range e.Commands() {
		d := levenshtein.ComputeDistance(token, verb)
		if bestDist < 0 || d < bestDist {
			best, bestDist = verb, d
		}
	}
	if bestDist > len(best)/3 {
		return "", false
	}
	return best, true
}

func (e *Engine) logger(ctx context.Context) *zerolog.Logger {
	if e.opts.Logger != nil {
		return e.opts.Logger
	}
	return logging.FromContext(ctx)
}
