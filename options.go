package cinemap

import (
	"github.com/rs/zerolog"
	"github.com/spf13/afero"

	"github.com/agentstation/cinemap/pkg/catalogs"
	"github.com/agentstation/cinemap/pkg/errors"
	"github.com/agentstation/cinemap/pkg/ingest"
	"github.com/agentstation/cinemap/pkg/logging"
)

// config holds the settings applied by Options.
type config struct {
	fs         afero.Fs
	dataDir    string
	moviesFile string
	actorsFile string
	genresFile string
	encoding   string
	logger     *zerolog.Logger

	initialCatalog catalogs.Catalog
}

func defaultConfig() *config {
	return &config{
		fs:     afero.NewOsFs(),
		logger: logging.Default(),
	}
}

// ingestOptions translates the configuration for the ingestion pipeline.
func (c *config) ingestOptions() []ingest.Option {
	return []ingest.Option{
		ingest.WithFs(c.fs),
		ingest.WithDataDir(c.dataDir),
		ingest.WithMoviesFile(c.moviesFile),
		ingest.WithActorsFile(c.actorsFile),
		ingest.WithGenresFile(c.genresFile),
		ingest.WithEncoding(c.encoding),
		ingest.WithLogger(c.logger),
	}
}

// Option is a function that configures a Cinemap instance
type Option func(*config) error

// WithFS reads sources from fs instead of the OS filesystem.
func WithFS(fs afero.Fs) Option {
	return func(c *config) error {
		if fs == nil {
			return errors.NewValidationError("fs", nil, "cannot be nil")
		}
		c.fs = fs
		return nil
	}
}

// WithDataDir resolves relative source paths against dir.
func WithDataDir(dir string) Option {
	return func(c *config) error {
		c.dataDir = dir
		return nil
	}
}

// WithSources sets the movies, actors and genres source paths.
// Empty paths keep the defaults.
func WithSources(movies, actors, genres string) Option {
	return func(c *config) error {
		c.moviesFile = movies
		c.actorsFile = actors
		c.genresFile = genres
		return nil
	}
}

// WithMoviesFile sets the movies source path.
func WithMoviesFile(path string) Option {
	return func(c *config) error {
		c.moviesFile = path
		return nil
	}
}

// WithActorsFile sets the actors source path.
func WithActorsFile(path string) Option {
	return func(c *config) error {
		c.actorsFile = path
		return nil
	}
}

// WithGenresFile sets the genres source path.
func WithGenresFile(path string) Option {
	return func(c *config) error {
		c.genresFile = path
		return nil
	}
}

// WithEncoding configures the character encoding of the sources
// (utf-8, latin1 or windows-1252).
func WithEncoding(name string) Option {
	return func(c *config) error {
		c.encoding = name
		return nil
	}
}

// WithLogger configures the logger used by ingestion and dispatch
func WithLogger(logger *zerolog.Logger) Option {
	return func(c *config) error {
		if logger != nil {
			c.logger = logger
		}
		return nil
	}
}

// WithInitialCatalog configures the catalog to load into and query.
// The Cinemap takes ownership of it.
func WithInitialCatalog(catalog catalogs.Catalog) Option {
	return func(c *config) error {
		c.initialCatalog = catalog
		return nil
	}
}
