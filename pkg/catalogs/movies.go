package catalogs

import (
	"slices"
	"strconv"

	"github.com/agentstation/cinemap/pkg/errors"
)

// Movies is an id-indexed, insertion-ordered collection of movies.
type Movies struct {
	byID  map[int]*Movie
	order []*Movie
}

// NewMovies creates an empty Movies collection.
func NewMovies() *Movies {
	return &Movies{byID: make(map[int]*Movie)}
}

// Get returns a movie by id and whether it exists.
func (m *Movies) Get(id int) (*Movie, bool) {
	movie, ok := m.byID[id]
	return movie, ok
}

// Add appends a movie, returning an error if its id is already taken.
func (m *Movies) Add(movie *Movie) error {
	if movie == nil {
		return errors.NewValidationError("movie", nil, "cannot be nil")
	}
	if _, exists := m.byID[movie.ID]; exists {
		return errors.NewAlreadyExistsError("movie", strconv.Itoa(movie.ID))
	}

	m.byID[movie.ID] = movie
	m.order = append(m.order, movie)
	return nil
}

// Exists checks if a movie exists without returning it.
func (m *Movies) Exists(id int) bool {
	_, ok := m.byID[id]
	return ok
}

// Len returns the number of movies.
func (m *Movies) Len() int {
	return len(m.order)
}

// List returns the movies in insertion order.
func (m *Movies) List() []*Movie {
	return slices.Clone(m.order)
}

// ForEach calls fn for each movie in insertion order until fn returns false.
// fn must not add or remove movies.
func (m *Movies) ForEach(fn func(movie *Movie) bool) {
	for _, movie := range m.order {
		if !fn(movie) {
			return
		}
	}
}

// InYear returns the movies released in year, in insertion order.
func (m *Movies) InYear(year int) []*Movie {
	var out []*Movie
	for _, movie := range m.order {
		if movie.Released.Year == year {
			out = append(out, movie)
		}
	}
	return out
}
