package cinemap

import (
	"sync"

	"github.com/agentstation/cinemap/pkg/catalogs"
)

// Hook function types for actor events
type (
	// ActorInsertedHook is called when INSERT_ACTOR adds an actor to a movie
	ActorInsertedHook func(actor catalogs.Actor, movieID int)

	// ActorRemovedHook is called when REMOVE_ACTOR drops an actor
	ActorRemovedHook func(actor catalogs.Actor)
)

// hooks manages event callbacks for catalog mutations
type hooks struct {
	mu              sync.RWMutex
	onActorInserted []ActorInsertedHook
	onActorRemoved  []ActorRemovedHook
}

// newHooks creates a new hooks instance
func newHooks() *hooks {
	return &hooks{}
}

// OnActorInserted registers a callback for when actors are inserted
func (h *hooks) OnActorInserted(fn ActorInsertedHook) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.onActorInserted = append(h.onActorInserted, fn)
}

// OnActorRemoved registers a callback for when actors are removed
func (h *hooks) OnActorRemoved(fn ActorRemovedHook) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.onActorRemoved = append(h.onActorRemoved, fn)
}

func (h *hooks) triggerActorInserted(actor catalogs.Actor, movieID int) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, hook := range h.onActorInserted {
		hook(actor, movieID)
	}
}

func (h *hooks) triggerActorRemoved(actor catalogs.Actor) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, hook := range h.onActorRemoved {
		hook(actor)
	}
}
