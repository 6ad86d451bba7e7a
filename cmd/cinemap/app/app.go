// Package app provides the application context and dependency management
// for the cinemap CLI: configuration, logging, and the lazily created
// catalog shared by every command.
package app

import (
	"context"
	"io"
	"os"
	"sync"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"

	"github.com/agentstation/cinemap"
	"github.com/agentstation/cinemap/pkg/errors"
)

// App represents the cinemap application with all its dependencies.
type App struct {
	// Version information
	version string
	commit  string
	date    string
	builtBy string

	// Configuration
	config *Config

	// Logger
	logger *zerolog.Logger

	// Standard streams, replaceable for tests
	in     io.Reader
	out    io.Writer
	errOut io.Writer

	// Filesystem sources are read from
	fs afero.Fs

	// Cinemap instance (lazy-initialized, singleton)
	mu      sync.Mutex
	cinemap cinemap.Cinemap
}

// New creates a new App instance with the given version information.
func New(version, commit, date, builtBy string, opts ...Option) (*App, error) {
	app := &App{
		version: version,
		commit:  commit,
		date:    date,
		builtBy: builtBy,
		in:      os.Stdin,
		out:     os.Stdout,
		errOut:  os.Stderr,
		fs:      afero.NewOsFs(),
	}

	config, err := LoadConfig()
	if err != nil {
		return nil, errors.WrapResource("load", "config", "", err)
	}
	app.config = config

	logger := NewLogger(config)
	app.logger = &logger

	for _, opt := range opts {
		if err := opt(app); err != nil {
			return nil, err
		}
	}

	return app, nil
}

// Version returns the version information.
func (a *App) Version() string {
	return a.version
}

// Commit returns the git commit hash.
func (a *App) Commit() string {
	return a.commit
}

// Date returns the build date.
func (a *App) Date() string {
	return a.date
}

// BuiltBy returns the build system identifier.
func (a *App) BuiltBy() string {
	return a.builtBy
}

// Config returns the application configuration.
func (a *App) Config() *Config {
	return a.config
}

// Logger returns the application logger.
func (a *App) Logger() *zerolog.Logger {
	return a.logger
}

// Cinemap returns the loaded cinemap instance, creating and loading it on
// first use. Later calls return the same instance.
func (a *App) Cinemap(ctx context.Context) (cinemap.Cinemap, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.cinemap == nil {
		cm, err := cinemap.New(a.cinemapOptions()...)
		if err != nil {
			return nil, errors.WrapResource("create", "cinemap", "", err)
		}
		a.cinemap = cm
	}

	if _, err := a.cinemap.Load(ctx); err != nil {
		return nil, errors.WrapResource("load", "catalog", "", err)
	}
	return a.cinemap, nil
}

// Shutdown performs graceful shutdown of the application.
// There is no background work; it only records that shutdown happened.
func (a *App) Shutdown(_ context.Context) error {
	a.logger.Debug().Msg("Shutting down")
	return nil
}

// cinemapOptions constructs cinemap options from the app configuration.
func (a *App) cinemapOptions() []cinemap.Option {
	return []cinemap.Option{
		cinemap.WithFS(a.fs),
		cinemap.WithDataDir(a.config.DataDir),
		cinemap.WithSources(a.config.MoviesFile, a.config.ActorsFile, a.config.GenresFile),
		cinemap.WithEncoding(a.config.Encoding),
		cinemap.WithLogger(a.logger),
	}
}

// Option is a functional option for configuring the App.
type Option func(*App) error

// WithConfig sets a custom configuration.
func WithConfig(config *Config) Option {
	return func(a *App) error {
		a.config = config
		return nil
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger *zerolog.Logger) Option {
	return func(a *App) error {
		a.logger = logger
		return nil
	}
}

// WithIO replaces the standard input, output and error streams.
func WithIO(in io.Reader, out, errOut io.Writer) Option {
	return func(a *App) error {
		a.in = in
		a.out = out
		a.errOut = errOut
		return nil
	}
}

// WithFS reads sources from fs instead of the OS filesystem.
func WithFS(fs afero.Fs) Option {
	return func(a *App) error {
		a.fs = fs
		return nil
	}
}

// WithCinemap sets a custom cinemap instance (useful for testing).
func WithCinemap(cm cinemap.Cinemap) Option {
	return func(a *App) error {
		a.cinemap = cm
		return nil
	}
}

// OutputFormat returns the configured output format.
func (a *App) OutputFormat() string {
	return a.config.Format
}
