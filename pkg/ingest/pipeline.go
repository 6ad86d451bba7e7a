// Package ingest loads the movies, actors and genres sources into a catalog.
//
// The three sources are read concurrently and then applied strictly in the
// order movies, actors, genres, so the resulting catalog is the same as if
// they had been read one after the other. Ingestion is additive: a source that
// cannot be read is skipped with a warning and malformed records are dropped.
//
// Example usage:
//
//	cat := catalogs.New()
//	p, err := ingest.New(cat, ingest.WithDataDir("./data"))
//	if err != nil {
//	    return err
//	}
//	report, err := p.Load(ctx)
package ingest

import (
	"bufio"
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/rs/zerolog"
	"github.com/sourcegraph/conc"
	"golang.org/x/text/encoding"

	"github.com/agentstation/cinemap/pkg/catalogs"
	"github.com/agentstation/cinemap/pkg/constants"
	"github.com/agentstation/cinemap/pkg/errors"
	"github.com/agentstation/cinemap/pkg/logging"
)

// Pipeline ingests the three sources into a catalog exactly once.
type Pipeline struct {
	cat  catalogs.Catalog
	opts *Options
	enc  encoding.Encoding

	once   sync.Once
	done   atomic.Bool
	report *Report
	err    error
}

// sourceLines is the raw content of one source.
type sourceLines struct {
	path  string
	lines []string
	err   error
}

// New creates a pipeline that fills cat.
func New(cat catalogs.Catalog, opts ...Option) (*Pipeline, error) {
	if cat == nil {
		return nil, errors.NewValidationError("catalog", nil, "cannot be nil")
	}
	o := Defaults().Apply(opts...)
	if err := o.Validate(); err != nil {
		return nil, errors.NewConfigError("ingest", "invalid options", err)
	}
	enc, _ := lookupEncoding(o.Encoding)

	return &Pipeline{
		cat:  cat,
		opts: o,
		enc:  enc,
	}, nil
}

// Load ingests the sources. Only the first call does any work; later calls
// return the first call's report and error.
func (p *Pipeline) Load(ctx context.Context) (*Report, error) {
	p.once.Do(func() {
		p.report, p.err = p.load(ctx)
		p.done.Store(true)
	})
	return p.report, p.err
}

// Loaded reports whether Load has run.
func (p *Pipeline) Loaded() bool {
	return p.done.Load()
}

// Options returns the resolved options.
func (p *Pipeline) Options() Options {
	return *p.opts
}

func (p *Pipeline) logger(ctx context.Context) *zerolog.Logger {
	if p.opts.Logger != nil {
		return p.opts.Logger
	}
	return logging.FromContext(ctx)
}

func (p *Pipeline) load(ctx context.Context) (*Report, error) {
	logger := p.logger(ctx)
	ids := SourceIDs()

	contents := make([]sourceLines, len(ids))
	var wg conc.WaitGroup
	for i, id := range ids {
		i, id := i, id
		wg.Go(func() {
			contents[i] = p.read(ctx, id)
		})
	}
	wg.Wait()

	report := &Report{Sources: make([]*SourceReport, 0, len(ids))}
	for i, id := range ids {
		src := contents[i]
		sr := &SourceReport{Source: id, Path: src.path}
		report.Sources = append(report.Sources, sr)
		srcLogger := logging.FromContext(logging.WithSource(logging.WithLogger(ctx, logger), id.String()))

		if src.err != nil {
			if errors.IsCanceled(src.err) {
				return report, src.err
			}
			sr.Skipped = true
			sr.Err = src.err
			sr.Cause = src.err.Error()
			srcLogger.Warn().
				Err(src.err).
				Str("path", src.path).
				Msg("Source unavailable, skipping")
			continue
		}

		sr.Lines = len(src.lines)
		for n, line := range src.lines {
			if err := ctx.Err(); err != nil {
				return report, canceled(err)
			}
			if err := p.apply(id, line); err != nil {
				sr.Rejected++
				var perr *errors.ParseError
				if errors.As(err, &perr) {
					perr.File = src.path
					perr.Line = n + 1
					srcLogger.Debug().Err(perr).Msg("Record rejected")
				}
				continue
			}
			sr.Accepted++
		}

		srcLogger.Debug().
			Str("path", src.path).
			Int("lines", sr.Lines).
			Int("accepted", sr.Accepted).
			Int("rejected", sr.Rejected).
			Msg("Source ingested")
	}

	stats := p.cat.Stats()
	logger.Info().
		Int("movies", stats.Movies).
		Int("actors", stats.Actors).
		Int("genres", stats.Genres).
		Int("cast_entries", stats.CastEntries).
		Msg("Catalog loaded")

	return report, nil
}

// read loads every line of a source, decoded to UTF-8.
func (p *Pipeline) read(ctx context.Context, id SourceID) sourceLines {
	path := p.opts.Path(id)
	out := sourceLines{path: path}

	f, err := p.opts.Fs.Open(path)
	if err != nil {
		out.err = errors.WrapIO("open", path, err)
		return out
	}
	defer func() { _ = f.Close() }()

	scanner := bufio.NewScanner(decode(f, p.enc))
	scanner.Buffer(make([]byte, 0, 64*1024), constants.MaxLineLength)
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			out.err = canceled(err)
			return out
		}
		out.lines = append(out.lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		out.err = errors.WrapIO("read", path, err)
	}
	return out
}

// apply adds one record to the catalog. A nil error means the record was
// accepted even if one of its links (a cast edge or genre tag) was skipped.
func (p *Pipeline) apply(id SourceID, line string) error {
	f, err := split(id, line)
	if err != nil {
		return err
	}

	switch id {
	case MoviesID:
		movie, err := parseMovie(f)
		if err != nil {
			return err
		}
		return p.cat.AddMovie(movie)

	case ActorsID:
		actor, movieID, err := parseActor(f)
		if err != nil {
			return err
		}
		// A repeated actor id keeps the first registration; the edge below
		// then links that registered actor.
		if err := p.cat.AddActor(actor); err != nil && !errors.IsAlreadyExists(err) {
			return err
		}
		return ignoreLinkErr(p.cat.CastActor(movieID, actor.ID))

	case GenresID:
		name, movieID, err := parseGenre(f)
		if err != nil {
			return err
		}
		return ignoreLinkErr(p.cat.TagGenre(movieID, name))
	}
	return fmt.Errorf("unknown source %q", id)
}

// ignoreLinkErr drops the errors a missing movie or an existing edge produce.
func ignoreLinkErr(err error) error {
	if errors.IsNotFound(err) || errors.IsAlreadyExists(err) {
		return nil
	}
	return err
}

func canceled(err error) error {
	return fmt.Errorf("%w: %w", errors.ErrCanceled, err)
}
