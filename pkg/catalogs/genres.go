package catalogs

import "slices"

// Genres interns genre names: one *Genre per distinct name, in first-seen order.
type Genres struct {
	byName map[string]*Genre
	order  []*Genre
}

// NewGenres creates an empty genre table.
func NewGenres() *Genres {
	return &Genres{byName: make(map[string]*Genre)}
}

// Intern returns the shared genre for name, creating it on first sight.
// created reports whether this call added it.
func (g *Genres) Intern(name string) (genre *Genre, created bool) {
	if genre, ok := g.byName[name]; ok {
		return genre, false
	}
	genre = &Genre{Name: name}
	g.byName[name] = genre
	g.order = append(g.order, genre)
	return genre, true
}

// Get returns the genre for name and whether it exists.
func (g *Genres) Get(name string) (*Genre, bool) {
	genre, ok := g.byName[name]
	return genre, ok
}

// Len returns the number of distinct genres.
func (g *Genres) Len() int {
	return len(g.order)
}

// List returns the genres in first-seen order.
func (g *Genres) List() []*Genre {
	return slices.Clone(g.order)
}
