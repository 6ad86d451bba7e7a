package catalogs

import (
	"slices"
	"strconv"

	"github.com/agentstation/cinemap/pkg/errors"
)

// Actors is the global actor registry, kept in registration order.
type Actors struct {
	byID  map[int]*Actor
	order []*Actor
}

// NewActors creates an empty registry.
func NewActors() *Actors {
	return &Actors{byID: make(map[int]*Actor)}
}

// Get returns an actor by id and whether it exists.
func (a *Actors) Get(id int) (*Actor, bool) {
	actor, ok := a.byID[id]
	return actor, ok
}

// Add registers an actor, returning an error if the id is already registered.
func (a *Actors) Add(actor *Actor) error {
	if actor == nil {
		return errors.NewValidationError("actor", nil, "cannot be nil")
	}
	if _, exists := a.byID[actor.ID]; exists {
		return errors.NewAlreadyExistsError("actor", strconv.Itoa(actor.ID))
	}

	a.byID[actor.ID] = actor
	a.order = append(a.order, actor)
	return nil
}

// Delete unregisters an actor by id. Returns an error if it doesn't exist.
func (a *Actors) Delete(id int) error {
	if _, exists := a.byID[id]; !exists {
		return errors.NewNotFoundError("actor", strconv.Itoa(id))
	}

	delete(a.byID, id)
	a.order = slices.DeleteFunc(a.order, func(actor *Actor) bool { return actor.ID == id })
	return nil
}

// Exists checks if an actor is registered.
func (a *Actors) Exists(id int) bool {
	_, ok := a.byID[id]
	return ok
}

// Len returns the number of registered actors.
func (a *Actors) Len() int {
	return len(a.order)
}

// List returns the actors in registration order.
func (a *Actors) List() []*Actor {
	return slices.Clone(a.order)
}
