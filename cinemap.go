// Package cinemap is an in-memory movie catalog answering a line-oriented
// command protocol.
//
// A Cinemap owns one catalog, the pipeline that ingests the movies, actors
// and genres sources into it, and the engine that answers commands. Every
// command runs under a single exclusive lock, so a Cinemap can be shared by
// goroutines even though the commands themselves are sequential.
//
// Example usage:
//
//	cm, err := cinemap.New(cinemap.WithDataDir("./data"))
//	if err != nil {
//	    return err
//	}
//	if _, err := cm.Load(ctx); err != nil {
//	    return err
//	}
//	out, err := cm.Execute(ctx, "GET_TITLES_YEAR 2000")
package cinemap

import (
	"context"
	"fmt"
	"sync"

	"github.com/agentstation/cinemap/pkg/catalogs"
	"github.com/agentstation/cinemap/pkg/ingest"
	"github.com/agentstation/cinemap/pkg/query"
)

// Cinemap manages a catalog, its ingestion and its command protocol.
type Cinemap interface {
	// Load ingests the configured sources; later calls are no-ops
	Load(ctx context.Context) (*ingest.Report, error)

	// Execute runs one command line and returns its response
	Execute(ctx context.Context, line string) (string, error)

	// Report returns the ingestion report, or nil before Load
	Report() *ingest.Report

	// Stats returns the current catalog counts
	Stats() catalogs.Stats

	// View calls fn with read access to the catalog under the command lock
	View(fn func(catalogs.Reader) error) error

	// Commands lists the protocol verbs
	Commands() []string

	// Suggest returns the verb closest to token
	Suggest(token string) (string, bool)

	// OnActorInserted registers a callback for successful INSERT_ACTOR commands
	OnActorInserted(ActorInsertedHook)

	// OnActorRemoved registers a callback for successful REMOVE_ACTOR commands
	OnActorRemoved(ActorRemovedHook)
}

// cinemap is the internal implementation of the Cinemap interface
type cinemap struct {
	mu       sync.Mutex
	catalog  catalogs.Catalog
	config   *config
	pipeline *ingest.Pipeline
	engine   *query.Engine

	// Event hooks, fired after the command lock is released
	hooks   *hooks
	pending []func()
}

// New creates a new Cinemap instance with the given options.
// Sources are not read until Load is called.
func New(opts ...Option) (Cinemap, error) {
	cm := &cinemap{
		config: defaultConfig(),
		hooks:  newHooks(),
	}

	if err := cm.options(opts...); err != nil {
		return nil, fmt.Errorf("applying options: %w", err)
	}

	if cm.config.initialCatalog != nil {
		cm.catalog = cm.config.initialCatalog
	} else {
		cm.catalog = catalogs.New()
	}

	pipeline, err := ingest.New(cm.catalog, cm.config.ingestOptions()...)
	if err != nil {
		return nil, fmt.Errorf("creating ingestion pipeline: %w", err)
	}
	cm.pipeline = pipeline

	cm.engine = query.New(cm.catalog,
		query.WithLogger(cm.config.logger),
		query.WithOnInsert(func(a *catalogs.Actor, movieID int) {
			actor := *a
			cm.pending = append(cm.pending, func() { cm.hooks.triggerActorInserted(actor, movieID) })
		}),
		query.WithOnRemove(func(a *catalogs.Actor) {
			actor := *a
			cm.pending = append(cm.pending, func() { cm.hooks.triggerActorRemoved(actor) })
		}),
	)

	return cm, nil
}

// options applies the given options to the configuration.
func (c *cinemap) options(opts ...Option) error {
	for _, opt := range opts {
		if err := opt(c.config); err != nil {
			return err
		}
	}
	return nil
}

// Load ingests the sources into the catalog.
func (c *cinemap) Load(ctx context.Context) (*ingest.Report, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	report, err := c.pipeline.Load(ctx)
	if err != nil {
		return report, fmt.Errorf("loading catalog: %w", err)
	}
	return report, nil
}

// Execute runs one command line under the command lock.
func (c *cinemap) Execute(ctx context.Context, line string) (string, error) {
	out, events, err := c.execute(ctx, line)
	for _, fire := range events {
		fire()
	}
	return out, err
}

// execute runs line under the command lock and hands back the hook calls
// it queued, to be fired once the lock is released.
func (c *cinemap) execute(ctx context.Context, line string) (string, []func(), error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	defer func() { c.pending = nil }()

	out, err := c.engine.Execute(ctx, line)
	return out, c.pending, err
}

// Report returns the ingestion report, or nil before Load.
func (c *cinemap) Report() *ingest.Report {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.pipeline.Loaded() {
		return nil
	}
	report, _ := c.pipeline.Load(context.Background())
	return report
}

// Stats returns the current catalog counts.
func (c *cinemap) Stats() catalogs.Stats {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.catalog.Stats()
}

// View calls fn with read access to the catalog. fn must not retain
// references past its return or call back into the Cinemap.
func (c *cinemap) View(fn func(catalogs.Reader) error) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	return fn(c.catalog)
}

// Commands lists the protocol verbs.
func (c *cinemap) Commands() []string {
	return c.engine.Commands()
}

// Suggest returns the verb closest to token.
func (c *cinemap) Suggest(token string) (string, bool) {
	return c.engine.Suggest(token)
}

// OnActorInserted registers a callback for actor insertions.
func (c *cinemap) OnActorInserted(fn ActorInsertedHook) {
	c.hooks.OnActorInserted(fn)
}

// OnActorRemoved registers a callback for actor removals.
func (c *cinemap) OnActorRemoved(fn ActorRemovedHook) {
	c.hooks.OnActorRemoved(fn)
}
