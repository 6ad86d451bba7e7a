package ingest

import (
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"

	"github.com/agentstation/cinemap/pkg/constants"
	"github.com/agentstation/cinemap/pkg/errors"
)

// Options configures where and how the sources are read.
type Options struct {
	// Filesystem and location
	Fs      afero.Fs // Filesystem sources are read from (defaults to the OS)
	DataDir string   // Directory relative source paths are resolved against

	// Source paths
	MoviesFile string
	ActorsFile string
	GenresFile string

	// Decoding
	Encoding string // utf-8, latin1 or windows-1252

	// Logger receives per-source summaries; nil means the context or default logger
	Logger *zerolog.Logger
}

// Option is a function that configures ingest Options.
type Option func(*Options)

// Defaults returns the default ingest options.
func Defaults() *Options {
	return &Options{
		Fs:         afero.NewOsFs(),
		MoviesFile: constants.DefaultMoviesFile,
		ActorsFile: constants.DefaultActorsFile,
		GenresFile: constants.DefaultGenresFile,
		Encoding:   constants.DefaultEncoding,
	}
}

// Apply applies the given options.
func (o *Options) Apply(opts ...Option) *Options {
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Validate checks the options for values the pipeline cannot work with.
func (o *Options) Validate() error {
	if o.Fs == nil {
		return errors.NewValidationError("Fs", nil, "filesystem cannot be nil")
	}
	if _, err := lookupEncoding(o.Encoding); err != nil {
		return err
	}
	return nil
}

// Path returns the resolved path of a source.
func (o *Options) Path(id SourceID) string {
	var name string
	switch id {
	case MoviesID:
		name = o.MoviesFile
	case ActorsID:
		name = o.ActorsFile
	case GenresID:
		name = o.GenresFile
	}
	if o.DataDir == "" || filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(o.DataDir, name)
}

// WithFs reads sources from fs instead of the OS filesystem.
func WithFs(fs afero.Fs) Option {
	return func(o *Options) {
		o.Fs = fs
	}
}

// WithDataDir resolves relative source paths against dir.
func WithDataDir(dir string) Option {
	return func(o *Options) {
		o.DataDir = dir
	}
}

// WithMoviesFile sets the movies source path.
func WithMoviesFile(path string) Option {
	return func(o *Options) {
		if path != "" {
			o.MoviesFile = path
		}
	}
}

// WithActorsFile sets the actors source path.
func WithActorsFile(path string) Option {
	return func(o *Options) {
		if path != "" {
			o.ActorsFile = path
		}
	}
}

// WithGenresFile sets the genres source path.
func WithGenresFile(path string) Option {
	return func(o *Options) {
		if path != "" {
			o.GenresFile = path
		}
	}
}

// WithEncoding sets the character encoding of the sources.
func WithEncoding(name string) Option {
	return func(o *Options) {
		if name != "" {
			o.Encoding = name
		}
	}
}

// WithLogger sets the logger used for ingestion diagnostics.
func WithLogger(logger *zerolog.Logger) Option {
	return func(o *Options) {
		o.Logger = logger
	}
}
