package cinemap

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/cinemap/pkg/catalogs"
	"github.com/agentstation/cinemap/pkg/constants"
	"github.com/agentstation/cinemap/pkg/errors"
	"github.com/agentstation/cinemap/pkg/logging"
)

func testFs(t *testing.T) afero.Fs {
	t.Helper()
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/data/deisi_movies.txt", []byte(
		"1,Alpha,01-01-2000,100,90.0,7.5,1000\n"+
			"2,Beta,15-06-2000,200,120.5,8.1,300\n"+
			"3,Gamma,01-01-2003,50,80.0,7.5,20\n"), 0o644))
	require.NoError(t, afero.WriteFile(fs, "/data/deisi_actors.txt", []byte(
		"1,John,true,1\n"+
			"2,Mary,false,1\n"+
			"2,Mary,false,3\n"+
			"3,Paul,true,2\n"), 0o644))
	require.NoError(t, afero.WriteFile(fs, "/data/deisi_genres.txt", []byte(
		"Drama,1\nDrama,3\nAction,2\n"), 0o644))
	return fs
}

func newTestCinemap(t *testing.T) Cinemap {
	t.Helper()
	cm, err := New(
		WithFS(testFs(t)),
		WithDataDir("/data"),
		WithLogger(logging.NewNopLogger()),
	)
	require.NoError(t, err)
	_, err = cm.Load(context.Background())
	require.NoError(t, err)
	return cm
}

func TestLoadAndQuery(t *testing.T) {
	cm := newTestCinemap(t)
	ctx := context.Background()

	tests := []struct {
		line string
		want string
	}{
		{"COUNT_MOVIES_YEAR 2000", "2"},
		{"GET_TITLES_YEAR 2000", "Alpha||Beta"},
		{"HARD_MODE_ON_1 1", "Gamma"},
		{"GET_TOP_VOTED_TITLES_YEAR 2000 -1", "Beta;8.1\nAlpha;7.5\n"},
		{"GET_MALE_RATIO_YEAR 2000", "66%"},
		{"GET_TOP_ACTORS_BY_GENRE Drama", "Mary;2\nJohn;1\n"},
		{"FOO BAR", constants.InvalidQuery},
	}
	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			out, err := cm.Execute(ctx, tt.line)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestBlankCommandKeepsServing(t *testing.T) {
	cm := newTestCinemap(t)
	ctx := context.Background()

	for _, line := range []string{" ", "   "} {
		out, err := cm.Execute(ctx, line)
		require.NoError(t, err)
		assert.Equal(t, constants.InvalidQuery, out)
	}

	done := make(chan string, 1)
	go func() {
		out, _ := cm.Execute(ctx, "COUNT_MOVIES_YEAR 2000")
		done <- out
	}()
	select {
	case out := <-done:
		assert.Equal(t, "2", out)
	case <-time.After(time.Second):
		t.Fatal("command lock still held after a blank command")
	}
}

func TestReportAndStats(t *testing.T) {
	cm, err := New(WithFS(testFs(t)), WithDataDir("/data"), WithLogger(logging.NewNopLogger()))
	require.NoError(t, err)
	assert.Nil(t, cm.Report(), "no report before Load")

	report, err := cm.Load(context.Background())
	require.NoError(t, err)
	assert.Same(t, report, cm.Report())

	assert.Equal(t, catalogs.Stats{
		Movies:      3,
		Actors:      3,
		Genres:      2,
		CastEntries: 4,
		GenreTags:   3,
	}, cm.Stats())

	again, err := cm.Load(context.Background())
	require.NoError(t, err)
	assert.Same(t, report, again)
	assert.Equal(t, 3, cm.Stats().Movies)
}

func TestHooks(t *testing.T) {
	cm := newTestCinemap(t)
	ctx := context.Background()

	var (
		inserted []string
		removed  []string
	)
	cm.OnActorInserted(func(a catalogs.Actor, movieID int) {
		inserted = append(inserted, fmt.Sprintf("%s@%d", a.Name, movieID))
		// Hooks run outside the command lock.
		_, err := cm.Execute(ctx, "COUNT_MOVIES_YEAR 2000")
		assert.NoError(t, err)
	})
	cm.OnActorRemoved(func(a catalogs.Actor) {
		removed = append(removed, a.Name)
	})

	out, err := cm.Execute(ctx, "INSERT_ACTOR 9,Ann Lee,false,2")
	require.NoError(t, err)
	assert.Equal(t, constants.InsertOK, out)

	out, err = cm.Execute(ctx, "INSERT_ACTOR 9,Ann Lee,false,2")
	require.NoError(t, err)
	assert.Equal(t, constants.MutationFailed, out)

	out, err = cm.Execute(ctx, "REMOVE_ACTOR 9")
	require.NoError(t, err)
	assert.Equal(t, constants.RemoveOK, out)

	assert.Equal(t, []string{"Ann Lee@2"}, inserted)
	assert.Equal(t, []string{"Ann Lee"}, removed)
}

func TestView(t *testing.T) {
	cm := newTestCinemap(t)

	err := cm.View(func(r catalogs.Reader) error {
		movie, err := r.Movie(3)
		if err != nil {
			return err
		}
		assert.Equal(t, "Gamma", movie.Title)
		assert.True(t, movie.HasActorNamed("Mary"))
		return nil
	})
	require.NoError(t, err)

	err = cm.View(func(r catalogs.Reader) error {
		_, err := r.Movie(42)
		return err
	})
	assert.True(t, errors.IsNotFound(err))
}

func TestConcurrentCommands(t *testing.T) {
	cm := newTestCinemap(t)
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		i := i
		wg.Add(1)
		go func() {
			defer wg.Done()
			id := 100 + i
			_, err := cm.Execute(ctx, fmt.Sprintf("INSERT_ACTOR %d,Extra,true,1", id))
			assert.NoError(t, err)
			_, err = cm.Execute(ctx, "GET_TOP_ACTORS_BY_GENRE Drama")
			assert.NoError(t, err)
			_, err = cm.Execute(ctx, fmt.Sprintf("REMOVE_ACTOR %d", id))
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.Equal(t, 3, cm.Stats().Actors)
	out, err := cm.Execute(ctx, "COUNT_MOVIES_ACTOR Extra")
	require.NoError(t, err)
	assert.Equal(t, "0", out)
}

func TestNewOptions(t *testing.T) {
	t.Run("unsupported encoding", func(t *testing.T) {
		_, err := New(WithEncoding("klingon"), WithLogger(logging.NewNopLogger()))
		assert.True(t, errors.IsValidationError(err))
	})

	t.Run("nil filesystem", func(t *testing.T) {
		_, err := New(WithFS(nil))
		assert.True(t, errors.IsValidationError(err))
	})

	t.Run("initial catalog", func(t *testing.T) {
		cat := catalogs.TestCatalog(t)
		cm, err := New(WithInitialCatalog(cat), WithFS(afero.NewMemMapFs()), WithLogger(logging.NewNopLogger()))
		require.NoError(t, err)

		out, err := cm.Execute(context.Background(), "GET_TITLES_YEAR 2000")
		require.NoError(t, err)
		assert.Equal(t, "Alpha||Beta", out)
	})

	t.Run("custom source names", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		require.NoError(t, afero.WriteFile(fs, "/in/m.csv", []byte("7,Solo,02-02-1999,1,1.0,6.0,1\n"), 0o644))
		cm, err := New(WithFS(fs), WithDataDir("/in"), WithSources("m.csv", "", ""), WithLogger(logging.NewNopLogger()))
		require.NoError(t, err)

		report, err := cm.Load(context.Background())
		require.NoError(t, err)
		assert.Len(t, report.Skipped(), 2)

		out, err := cm.Execute(context.Background(), "GET_TITLES_YEAR 1999")
		require.NoError(t, err)
		assert.Equal(t, "Solo", out)
	})
}
