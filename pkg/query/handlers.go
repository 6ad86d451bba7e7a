package query

import (
	"context"
	"strconv"
	"strings"

	"github.com/samber/lo"

	"github.com/agentstation/cinemap/internal/fields"
	"github.com/agentstation/cinemap/pkg/catalogs"
	"github.com/agentstation/cinemap/pkg/constants"
	"github.com/agentstation/cinemap/pkg/errors"
	"github.com/agentstation/cinemap/pkg/logging"
)

func (e *Engine) countMoviesYear(_ context.Context, tokens []string) (string, error) {
	if len(tokens) < 2 {
		return constants.InvalidQuery, nil
	}
	year, err := intArg(tokens[0], "year", tokens[1])
	if err != nil {
		return "", err
	}
	return strconv.Itoa(len(e.cat.Movies().InYear(year))), nil
}

func (e *Engine) countMoviesActor(_ context.Context, tokens []string) (string, error) {
	if len(tokens) < 2 {
		return constants.InvalidQuery, nil
	}
	name := fields.Join(tokens, 1, constants.TokenSeparator)
	n := lo.SumBy(e.cat.Movies().List(), func(m *catalogs.Movie) int {
		return m.CountActorNamed(name)
	})
	return strconv.Itoa(n), nil
}

func (e *Engine) countMoviesActors(_ context.Context, tokens []string) (string, error) {
	names := fields.Split(fields.Join(tokens, 1, constants.TokenSeparator), constants.NameSeparator)
	if len(names) < 2 {
		return constants.InvalidQuery, nil
	}
	n := lo.CountBy(e.cat.Movies().List(), func(m *catalogs.Movie) bool {
		return m.HasActorNamed(names[0]) && m.HasActorNamed(names[1])
	})
	return strconv.Itoa(n), nil
}

func (e *Engine) getTitlesYear(_ context.Context, tokens []string) (string, error) {
	if len(tokens) < 2 {
		return constants.InvalidQuery, nil
	}
	year, err := intArg(tokens[0], "year", tokens[1])
	if err != nil {
		return "", err
	}
	return joinTitles(e.cat.Movies().InYear(year)), nil
}

// hardModeOn1 lists movies released after the reference movie with the same
// rating and at least one actor name in common.
func (e *Engine) hardModeOn1(_ context.Context, tokens []string) (string, error) {
	if len(tokens) < 2 {
		return constants.InvalidQuery, nil
	}
	id, err := intArg(tokens[0], "movie id", tokens[1])
	if err != nil {
		return "", err
	}
	ref, err := e.cat.Movie(id)
	if err != nil {
		return "", nil
	}

	matches := lo.Filter(e.cat.Movies().List(), func(m *catalogs.Movie, _ int) bool {
		return m.ID != ref.ID &&
			m.Released.After(ref.Released) &&
			m.Rating == ref.Rating &&
			ref.SharesActorName(m)
	})
	return joinTitles(matches), nil
}

// getTopVotedTitlesYear ranks the year's movies by rating, highest first.
func (e *Engine) getTopVotedTitlesYear(_ context.Context, tokens []string) (string, error) {
	if len(tokens) < 3 {
		return constants.InvalidQuery, nil
	}
	year, err := intArg(tokens[0], "year", tokens[1])
	if err != nil {
		return "", err
	}
	n, err := intArg(tokens[0], "count", tokens[2])
	if err != nil {
		return "", err
	}

	movies := e.cat.Movies()
	r := newRanking[int, float64]()
	for _, m := range movies.InYear(year) {
		r.Set(m.ID, m.Rating)
	}

	limit := r.Len()
	switch {
	case n == constants.AllResults:
	case n < 0:
		limit = 0
	default:
		limit = min(limit, n)
	}

	var b strings.Builder
	for i := 0; i < limit; i++ {
		id, rating, _ := r.Max()
		m, _ := movies.Get(id)
		b.WriteString(m.Title)
		b.WriteString(constants.PairSeparator)
		b.WriteString(formatRating(rating))
		b.WriteByte('\n')
		r.Remove(id)
	}
	return b.String(), nil
}

func (e *Engine) countMoviesActorYear(_ context.Context, tokens []string) (string, error) {
	if len(tokens) < 3 {
		return constants.InvalidQuery, nil
	}
	year, err := intArg(tokens[0], "year", tokens[1])
	if err != nil {
		return "", err
	}
	name := fields.Join(tokens, 2, constants.TokenSeparator)
	n := lo.SumBy(e.cat.Movies().InYear(year), func(m *catalogs.Movie) int {
		return m.CountActorNamed(name)
	})
	return strconv.Itoa(n), nil
}

func (e *Engine) getTopActorYear(_ context.Context, tokens []string) (string, error) {
	if len(tokens) < 2 {
		return constants.InvalidQuery, nil
	}
	year, err := intArg(tokens[0], "year", tokens[1])
	if err != nil {
		return "", err
	}

	r := newRanking[int, int]()
	for _, m := range e.cat.Movies().InYear(year) {
		for _, a := range m.Cast() {
			r.Inc(a.ID)
		}
	}
	id, count, ok := r.Max()
	if !ok {
		return "", nil
	}
	return pair(e.actorName(id), count), nil
}

func (e *Engine) countMoviesYearGenre(_ context.Context, tokens []string) (string, error) {
	if len(tokens) < 3 {
		return constants.InvalidQuery, nil
	}
	year, err := intArg(tokens[0], "year", tokens[1])
	if err != nil {
		return "", err
	}
	genre := fields.Join(tokens, 2, constants.TokenSeparator)
	n := lo.CountBy(e.cat.Movies().InYear(year), func(m *catalogs.Movie) bool {
		return m.HasGenre(genre)
	})
	return strconv.Itoa(n), nil
}

// getMaleRatioYear is the truncated percentage of the year's distinct
// actors whose gender flag is true.
func (e *Engine) getMaleRatioYear(_ context.Context, tokens []string) (string, error) {
	if len(tokens) < 2 {
		return constants.InvalidQuery, nil
	}
	year, err := intArg(tokens[0], "year", tokens[1])
	if err != nil {
		return "", err
	}

	var cast []*catalogs.Actor
	for _, m := range e.cat.Movies().InYear(year) {
		cast = append(cast, m.Cast()...)
	}
	actors := lo.UniqBy(cast, func(a *catalogs.Actor) int { return a.ID })
	if len(actors) == 0 {
		return "0%", nil
	}
	male := lo.CountBy(actors, func(a *catalogs.Actor) bool { return a.Gender })
	return strconv.Itoa(male*100/len(actors)) + "%", nil
}

func (e *Engine) countMoviesWithManyActors(_ context.Context, tokens []string) (string, error) {
	if len(tokens) < 2 {
		return constants.InvalidQuery, nil
	}
	threshold, err := intArg(tokens[0], "threshold", tokens[1])
	if err != nil {
		return "", err
	}
	n := lo.CountBy(e.cat.Movies().List(), func(m *catalogs.Movie) bool {
		return m.CastSize() > threshold
	})
	return strconv.Itoa(n), nil
}

// getTopActorsByGenre ranks actors by appearances in movies of a genre.
// With more candidates than the limit, picks are removed by actor id.
// Otherwise each pick removes every candidate sharing the picked name, so
// same-named actors are reported once.
func (e *Engine) getTopActorsByGenre(_ context.Context, tokens []string) (string, error) {
	if len(tokens) < 2 {
		return constants.InvalidQuery, nil
	}
	genre := fields.Join(tokens, 1, constants.TokenSeparator)

	r := newRanking[int, int]()
	for _, m := range e.cat.Movies().List() {
		if !m.HasGenre(genre) {
			continue
		}
		for _, a := range m.Cast() {
			r.Inc(a.ID)
		}
	}

	var b strings.Builder
	if r.Len() > constants.TopActorsByGenreLimit {
		for i := 0; i < constants.TopActorsByGenreLimit; i++ {
			id, count, _ := r.Max()
			b.WriteString(pair(e.actorName(id), count))
			b.WriteByte('\n')
			r.Remove(id)
		}
		return b.String(), nil
	}

	for r.Len() > 0 {
		id, count, _ := r.Max()
		name := e.actorName(id)
		b.WriteString(pair(name, count))
		b.WriteByte('\n')
		r.RemoveFunc(func(k int) bool { return k == id || e.actorName(k) == name })
	}
	return b.String(), nil
}

// insertActor registers a new actor into an existing movie.
// The argument is id,name,genderFlag,movieId.
func (e *Engine) insertActor(ctx context.Context, tokens []string) (string, error) {
	f := fields.Split(fields.Join(tokens, 1, constants.TokenSeparator), constants.FieldSeparator)
	if len(f) < constants.ActorFields {
		return constants.InvalidQuery, nil
	}
	movieID, err := intArg(tokens[0], "movie id", f[3])
	if err != nil {
		return "", err
	}
	if !e.cat.Movies().Exists(movieID) {
		return constants.MutationFailed, nil
	}
	id, err := intArg(tokens[0], "actor id", f[0])
	if err != nil {
		return "", err
	}
	if e.cat.Actors().Exists(id) {
		return constants.MutationFailed, nil
	}

	actor := &catalogs.Actor{ID: id, Name: f[1], Gender: catalogs.ParseGender(f[2])}
	if err := e.cat.AddActor(actor); err != nil {
		return "", errors.WrapResource("insert", "actor", strconv.Itoa(id), err)
	}
	if err := e.cat.CastActor(movieID, id); err != nil {
		return "", errors.WrapResource("insert", "actor", strconv.Itoa(id), err)
	}

	logging.FromContext(logging.WithMovie(logging.WithActor(ctx, id), movieID)).Debug().
		Str("name", actor.Name).
		Msg("Actor inserted")
	for _, hook := range e.opts.OnInsert {
		hook(actor, movieID)
	}
	return constants.InsertOK, nil
}

func (e *Engine) removeActor(ctx context.Context, tokens []string) (string, error) {
	if len(tokens) < 2 {
		return constants.InvalidQuery, nil
	}
	id, err := intArg(tokens[0], "actor id", tokens[1])
	if err != nil {
		return "", err
	}
	actor, err := e.cat.RemoveActor(id)
	if err != nil {
		if errors.IsNotFound(err) {
			return constants.MutationFailed, nil
		}
		return "", errors.WrapResource("remove", "actor", strconv.Itoa(id), err)
	}

	logging.FromContext(logging.WithActor(ctx, id)).Debug().
		Str("name", actor.Name).
		Msg("Actor removed")
	for _, hook := range e.opts.OnRemove {
		hook(actor)
	}
	return constants.RemoveOK, nil
}

// actorName returns the registered name for id, or "" if unknown.
func (e *Engine) actorName(id int) string {
	a, err := e.cat.Actor(id)
	if err != nil {
		return ""
	}
	return a.Name
}

func intArg(command, argument, s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, errors.NewArgumentError(command, argument, s, err)
	}
	return n, nil
}

func joinTitles(movies []*catalogs.Movie) string {
	titles := lo.Map(movies, func(m *catalogs.Movie, _ int) string { return m.Title })
	return strings.Join(titles, constants.TitleSeparator)
}

func pair(name string, count int) string {
	return name + constants.PairSeparator + strconv.Itoa(count)
}

// formatRating writes a rating in its shortest form, keeping at least one
// fractional digit: 7.5 stays "7.5", 7 becomes "7.0".
func formatRating(r float64) string {
	s := strconv.FormatFloat(r, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
