package query

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/cinemap/pkg/catalogs"
	"github.com/agentstation/cinemap/pkg/constants"
	"github.com/agentstation/cinemap/pkg/errors"
	"github.com/agentstation/cinemap/pkg/logging"
)

func newEngine(t *testing.T, cat catalogs.Catalog, opts ...Option) *Engine {
	t.Helper()
	return New(cat, append([]Option{WithLogger(logging.NewNopLogger())}, opts...)...)
}

func run(t *testing.T, e *Engine, line string) string {
	t.Helper()
	out, err := e.Execute(context.Background(), line)
	require.NoError(t, err, line)
	return out
}

// workedExample is the single-movie catalog from the protocol documentation.
func workedExample(t *testing.T) catalogs.Catalog {
	t.Helper()
	cat := catalogs.New()
	require.NoError(t, cat.AddMovie(&catalogs.Movie{
		ID:       1,
		Title:    "Alpha",
		Released: catalogs.ReleaseDate{Day: 1, Month: 1, Year: 2000},
		Budget:   100,
		Duration: 90.0,
		Rating:   7.5,
		Votes:    1000,
	}))
	require.NoError(t, cat.AddActor(&catalogs.Actor{ID: 1, Name: "John", Gender: true}))
	require.NoError(t, cat.CastActor(1, 1))
	require.NoError(t, cat.TagGenre(1, "Drama"))
	return cat
}

func TestWorkedExample(t *testing.T) {
	e := newEngine(t, workedExample(t))

	tests := map[string]string{
		"COUNT_MOVIES_YEAR 2000":            "1",
		"GET_TITLES_YEAR 2000":              "Alpha",
		"COUNT_MOVIES_ACTOR John":           "1",
		"GET_MALE_RATIO_YEAR 2000":          "100%",
		"GET_TOP_VOTED_TITLES_YEAR 2000 -1": "Alpha;7.5\n",
	}
	for line, want := range tests {
		t.Run(line, func(t *testing.T) {
			assert.Equal(t, want, run(t, e, line))
		})
	}
}

func TestQueries(t *testing.T) {
	e := newEngine(t, catalogs.TestCatalog(t))

	tests := []struct {
		line string
		want string
	}{
		{"COUNT_MOVIES_YEAR 2000", "2"},
		{"COUNT_MOVIES_YEAR 1999", "0"},
		{"COUNT_MOVIES_ACTOR John", "2"},
		{"COUNT_MOVIES_ACTOR john", "0"},
		{"COUNT_MOVIES_ACTORS John;Mary", "1"},
		{"COUNT_MOVIES_ACTORS Mary;Nobody", "0"},
		{"GET_TITLES_YEAR 2000", "Alpha||Beta"},
		{"GET_TITLES_YEAR 1999", ""},
		{"HARD_MODE_ON_1 1", "Gamma"},
		{"HARD_MODE_ON_1 3", ""},
		{"HARD_MODE_ON_1 99", ""},
		{"GET_TOP_VOTED_TITLES_YEAR 2000 -1", "Alpha;5.0\nBeta;5.0\n"},
		{"GET_TOP_VOTED_TITLES_YEAR 2000 1", "Alpha;5.0\n"},
		{"GET_TOP_VOTED_TITLES_YEAR 2000 5", "Alpha;5.0\nBeta;5.0\n"},
		{"GET_TOP_VOTED_TITLES_YEAR 2000 0", ""},
		{"GET_TOP_VOTED_TITLES_YEAR 2000 -2", ""},
		{"COUNT_MOVIES_ACTOR_YEAR 2000 John", "2"},
		{"COUNT_MOVIES_ACTOR_YEAR 2001 John", "0"},
		{"GET_TOP_ACTOR_YEAR 2000", "John;2"},
		{"GET_TOP_ACTOR_YEAR 1999", ""},
		{"COUNT_MOVIES_YEAR_GENRE 2000 Drama", "2"},
		{"COUNT_MOVIES_YEAR_GENRE 2000 Comedy", "1"},
		{"GET_MALE_RATIO_YEAR 2000", "50%"},
		{"GET_MALE_RATIO_YEAR 2001", "0%"},
		{"GET_MALE_RATIO_YEAR 1999", "0%"},
		{"COUNT_MOVIES_WITH_MANY_ACTORS 1", "1"},
		{"COUNT_MOVIES_WITH_MANY_ACTORS 0", "3"},
		{"GET_TOP_ACTORS_BY_GENRE Drama", "John;2\nMary;1\n"},
		{"GET_TOP_ACTORS_BY_GENRE Comedy", "John;1\nMary;1\n"},
		{"GET_TOP_ACTORS_BY_GENRE Horror", ""},
	}
	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			assert.Equal(t, tt.want, run(t, e, tt.line))
		})
	}
}

func TestInvalidQueries(t *testing.T) {
	e := newEngine(t, catalogs.TestCatalog(t))

	lines := []string{
		"FOO",
		"FOO BAR",
		"",
		" ",
		"   ",
		"COUNT_MOVIES_YEAR",
		"count_movies_year 2000",
		" COUNT_MOVIES_YEAR 2000",
		"COUNT_MOVIES_YEAR ",
		"GET_TOP_VOTED_TITLES_YEAR 2000",
		"COUNT_MOVIES_ACTORS John",
		"COUNT_MOVIES_ACTOR_YEAR 2000",
		"INSERT_ACTOR 10,Tom,true",
	}
	for _, line := range lines {
		t.Run(line, func(t *testing.T) {
			assert.Equal(t, constants.InvalidQuery, run(t, e, line))
		})
	}
}

func TestNumericArgumentErrors(t *testing.T) {
	e := newEngine(t, catalogs.TestCatalog(t))

	lines := []string{
		"COUNT_MOVIES_YEAR abc",
		"GET_TITLES_YEAR 20x0",
		"HARD_MODE_ON_1 one",
		"GET_TOP_VOTED_TITLES_YEAR 2000 all",
		"GET_MALE_RATIO_YEAR 2000.5",
		"COUNT_MOVIES_WITH_MANY_ACTORS many",
		"INSERT_ACTOR x,Tom,true,1",
		"INSERT_ACTOR 10,Tom,true,movie",
		"REMOVE_ACTOR john",
	}
	for _, line := range lines {
		t.Run(line, func(t *testing.T) {
			_, err := e.Execute(context.Background(), line)
			require.Error(t, err)
			assert.True(t, errors.IsValidationError(err))

			var argErr *errors.ArgumentError
			require.True(t, errors.As(err, &argErr))
			assert.NotEmpty(t, argErr.Command)
		})
	}
}

func TestMultiWordArguments(t *testing.T) {
	cat := catalogs.New()
	require.NoError(t, cat.AddMovie(catalogs.TestMovie(t, 1, "Big", 1988)))
	require.NoError(t, cat.AddActor(catalogs.TestActor(t, 1, "Tom Hanks", true)))
	require.NoError(t, cat.AddActor(catalogs.TestActor(t, 2, "Elizabeth Perkins", false)))
	require.NoError(t, cat.CastActor(1, 1))
	require.NoError(t, cat.CastActor(1, 2))
	require.NoError(t, cat.TagGenre(1, "Romantic Comedy"))
	e := newEngine(t, cat)

	assert.Equal(t, "1", run(t, e, "COUNT_MOVIES_ACTOR Tom Hanks"))
	assert.Equal(t, "1", run(t, e, "COUNT_MOVIES_ACTORS Tom Hanks;Elizabeth Perkins"))
	assert.Equal(t, "1", run(t, e, "COUNT_MOVIES_ACTOR_YEAR 1988 Tom Hanks"))
	assert.Equal(t, "1", run(t, e, "COUNT_MOVIES_YEAR_GENRE 1988 Romantic Comedy"))
	assert.Equal(t, "Tom Hanks;1\nElizabeth Perkins;1\n", run(t, e, "GET_TOP_ACTORS_BY_GENRE Romantic Comedy"))
	assert.Equal(t, "Tom Hanks;1", run(t, e, "GET_TOP_ACTOR_YEAR 1988"))
}

func TestTopActorsByGenreSharedNames(t *testing.T) {
	cat := catalogs.New()
	require.NoError(t, cat.AddMovie(catalogs.TestMovie(t, 1, "A", 2000)))
	require.NoError(t, cat.AddMovie(catalogs.TestMovie(t, 2, "B", 2000)))
	require.NoError(t, cat.TagGenre(1, "Drama"))
	require.NoError(t, cat.TagGenre(2, "Drama"))
	require.NoError(t, cat.AddActor(catalogs.TestActor(t, 1, "Sam", true)))
	require.NoError(t, cat.AddActor(catalogs.TestActor(t, 2, "Sam", false)))
	require.NoError(t, cat.AddActor(catalogs.TestActor(t, 3, "Ann", false)))
	require.NoError(t, cat.CastActor(1, 1))
	require.NoError(t, cat.CastActor(2, 1))
	require.NoError(t, cat.CastActor(1, 2))
	require.NoError(t, cat.CastActor(1, 3))
	e := newEngine(t, cat)

	// Picking Sam (id 1) also drops the other Sam (id 2).
	assert.Equal(t, "Sam;2\nAnn;1\n", run(t, e, "GET_TOP_ACTORS_BY_GENRE Drama"))
}

func TestTopActorsByGenreLimit(t *testing.T) {
	cat := catalogs.New()
	require.NoError(t, cat.AddMovie(catalogs.TestMovie(t, 1, "A", 2000)))
	require.NoError(t, cat.TagGenre(1, "Drama"))
	for id := 1; id <= 12; id++ {
		// Every actor is named Sam; the by-id branch still lists ten of them.
		require.NoError(t, cat.AddActor(catalogs.TestActor(t, id, "Sam", true)))
		require.NoError(t, cat.CastActor(1, id))
	}
	e := newEngine(t, cat)

	out := run(t, e, "GET_TOP_ACTORS_BY_GENRE Drama")
	want := ""
	for i := 0; i < constants.TopActorsByGenreLimit; i++ {
		want += "Sam;1\n"
	}
	assert.Equal(t, want, out)
}

func TestTopVotedOrdering(t *testing.T) {
	cat := catalogs.New()
	ratings := []float64{6.1, 8.0, 7.25, 8.0}
	for i, r := range ratings {
		m := catalogs.TestMovie(t, i+1, string(rune('A'+i)), 2010)
		m.Rating = r
		require.NoError(t, cat.AddMovie(m))
	}
	e := newEngine(t, cat)

	assert.Equal(t, "B;8.0\nD;8.0\nC;7.25\nA;6.1\n", run(t, e, "GET_TOP_VOTED_TITLES_YEAR 2010 -1"))
	assert.Equal(t, "B;8.0\nD;8.0\n", run(t, e, "GET_TOP_VOTED_TITLES_YEAR 2010 2"))
}

func TestTiesFollowInsertionOrder(t *testing.T) {
	cat := catalogs.New()
	// Higher ids first: ties must go to the earlier record, not the lower id.
	require.NoError(t, cat.AddMovie(catalogs.TestMovie(t, 9, "Nine", 2005)))
	require.NoError(t, cat.AddMovie(catalogs.TestMovie(t, 3, "Three", 2005)))
	require.NoError(t, cat.AddActor(catalogs.TestActor(t, 8, "Eve", false)))
	require.NoError(t, cat.AddActor(catalogs.TestActor(t, 2, "Bob", true)))
	require.NoError(t, cat.CastActor(9, 8))
	require.NoError(t, cat.CastActor(3, 2))
	require.NoError(t, cat.TagGenre(9, "Noir"))
	require.NoError(t, cat.TagGenre(3, "Noir"))
	e := newEngine(t, cat)

	assert.Equal(t, "Nine;5.0\nThree;5.0\n", run(t, e, "GET_TOP_VOTED_TITLES_YEAR 2005 -1"))
	assert.Equal(t, "Eve;1", run(t, e, "GET_TOP_ACTOR_YEAR 2005"))
	assert.Equal(t, "Eve;1\nBob;1\n", run(t, e, "GET_TOP_ACTORS_BY_GENRE Noir"))
}

func TestInsertAndRemoveActor(t *testing.T) {
	cat := catalogs.TestCatalog(t)

	var inserted, removed []int
	e := newEngine(t, cat,
		WithOnInsert(func(a *catalogs.Actor, movieID int) { inserted = append(inserted, a.ID, movieID) }),
		WithOnRemove(func(a *catalogs.Actor) { removed = append(removed, a.ID) }),
	)

	movie, err := cat.Movie(3)
	require.NoError(t, err)
	before := movie.CastSize()

	assert.Equal(t, constants.InsertOK, run(t, e, "INSERT_ACTOR 10,Tom Hanks,true,3"))
	assert.Equal(t, before+1, movie.CastSize())
	assert.Equal(t, "1", run(t, e, "COUNT_MOVIES_ACTOR Tom Hanks"))
	assert.Equal(t, []int{10, 3}, inserted)

	t.Run("duplicate id", func(t *testing.T) {
		assert.Equal(t, constants.MutationFailed, run(t, e, "INSERT_ACTOR 10,Other,false,1"))
	})

	t.Run("unknown movie leaves registry unchanged", func(t *testing.T) {
		n := cat.Actors().Len()
		assert.Equal(t, constants.MutationFailed, run(t, e, "INSERT_ACTOR 11,Ghost,false,99"))
		assert.Equal(t, n, cat.Actors().Len())
		assert.False(t, cat.Actors().Exists(11))
	})

	assert.Equal(t, constants.RemoveOK, run(t, e, "REMOVE_ACTOR 10"))
	assert.Equal(t, before, movie.CastSize())
	assert.Equal(t, "0", run(t, e, "COUNT_MOVIES_ACTOR Tom Hanks"))
	assert.Equal(t, []int{10}, removed)

	assert.Equal(t, constants.MutationFailed, run(t, e, "REMOVE_ACTOR 10"))
}

func TestRemoveActorClearsEveryCast(t *testing.T) {
	cat := catalogs.TestCatalog(t)
	e := newEngine(t, cat)

	assert.Equal(t, constants.RemoveOK, run(t, e, "REMOVE_ACTOR 1"))
	assert.Equal(t, "0", run(t, e, "COUNT_MOVIES_ACTOR John"))
	assert.Equal(t, "Mary;1", run(t, e, "GET_TOP_ACTOR_YEAR 2000"))
	assert.Equal(t, "0%", run(t, e, "GET_MALE_RATIO_YEAR 2000"))
}

func TestCommandsAndSuggest(t *testing.T) {
	e := newEngine(t, catalogs.New())

	assert.Len(t, e.Commands(), 14)
	assert.Contains(t, e.Commands(), InsertActor)

	hint, ok := e.Suggest("COUNT_MOVIE_YEAR")
	assert.True(t, ok)
	assert.Equal(t, CountMoviesYear, hint)

	hint, ok = e.Suggest("get_titles_year")
	assert.True(t, ok)
	assert.Equal(t, GetTitlesYear, hint)

	_, ok = e.Suggest("XYZ")
	assert.False(t, ok)
}

func TestUnknownCommandLogsSuggestion(t *testing.T) {
	tl := logging.NewTestLogger(t)
	e := New(catalogs.New(), WithLogger(tl.Logger))

	out, err := e.Execute(context.Background(), "GET_TITLE_YEAR 2000")
	require.NoError(t, err)
	assert.Equal(t, constants.InvalidQuery, out)
	tl.AssertContains(t, "GET_TITLES_YEAR")
}

func TestMutationsLogContext(t *testing.T) {
	tl := logging.NewTestLogger(t)
	e := New(catalogs.TestCatalog(t), WithLogger(tl.Logger))
	ctx := context.Background()

	out, err := e.Execute(ctx, "INSERT_ACTOR 7,Zed,true,3")
	require.NoError(t, err)
	require.Equal(t, constants.InsertOK, out)
	out, err = e.Execute(ctx, "REMOVE_ACTOR 7")
	require.NoError(t, err)
	require.Equal(t, constants.RemoveOK, out)

	tl.AssertContains(t, "Actor inserted")
	tl.AssertContains(t, "Actor removed")
	tl.AssertContains(t, `"command":"INSERT_ACTOR"`)
	tl.AssertContains(t, `"command":"REMOVE_ACTOR"`)
	tl.AssertContains(t, `"actor_id":"7"`)
	tl.AssertContains(t, `"movie_id":"3"`)
}

func TestFormatRating(t *testing.T) {
	tests := map[float64]string{
		7.5:  "7.5",
		7:    "7.0",
		0:    "0.0",
		6.25: "6.25",
		10:   "10.0",
	}
	for in, want := range tests {
		assert.Equal(t, want, formatRating(in))
	}
}
