package catalogs

import (
	"fmt"
	"slices"
)

// ReleaseDate is the day/month/year a movie was released.
type ReleaseDate struct {
	Day   int `json:"day" yaml:"day"`
	Month int `json:"month" yaml:"month"`
	Year  int `json:"year" yaml:"year"`
}

// DayCount approximates the date as a day number: year*365 + month*30 + day.
// It is not calendar arithmetic; comparisons between movies rely on it as is.
func (d ReleaseDate) DayCount() int {
	return d.Year*365 + d.Month*30 + d.Day
}

// After reports whether d is strictly later than other by DayCount.
func (d ReleaseDate) After(other ReleaseDate) bool {
	return d.DayCount() > other.DayCount()
}

// String formats the date as dd-mm-yyyy.
func (d ReleaseDate) String() string {
	return fmt.Sprintf("%02d-%02d-%04d", d.Day, d.Month, d.Year)
}

// Movie is a catalog entry with its ordered cast and genre lists.
// Cast and genres are only changed through the Catalog so that the
// no-duplicate invariants hold.
type Movie struct {
	ID       int         `json:"id" yaml:"id"`
	Title    string      `json:"title" yaml:"title"`
	Released ReleaseDate `json:"released" yaml:"released"`
	Budget   int         `json:"budget" yaml:"budget"`
	Duration float64     `json:"duration" yaml:"duration"`
	Rating   float64     `json:"rating" yaml:"rating"`
	Votes    int         `json:"votes" yaml:"votes"`

	cast   []*Actor
	genres []*Genre
}

// Year returns the release year.
func (m *Movie) Year() int {
	return m.Released.Year
}

// Cast returns the cast in insertion order.
func (m *Movie) Cast() []*Actor {
	return slices.Clone(m.cast)
}

// CastSize returns the number of actors in the cast.
func (m *Movie) CastSize() int {
	return len(m.cast)
}

// Genres returns the genres in insertion order.
func (m *Movie) Genres() []*Genre {
	return slices.Clone(m.genres)
}

// HasActor reports whether an actor with the given id is in the cast.
func (m *Movie) HasActor(id int) bool {
	return slices.ContainsFunc(m.cast, func(a *Actor) bool { return a.ID == id })
}

// CountActorNamed counts cast entries whose name equals name exactly.
// Different actor ids may share a name, so the result can exceed one.
func (m *Movie) CountActorNamed(name string) int {
	n := 0
	for _, a := range m.cast {
		if a.Name == name {
			n++
		}
	}
	return n
}

// HasActorNamed reports whether any cast entry is named name.
func (m *Movie) HasActorNamed(name string) bool {
	return slices.ContainsFunc(m.cast, func(a *Actor) bool { return a.Name == name })
}

// SharesActorName reports whether m and other have at least one cast name in common.
func (m *Movie) SharesActorName(other *Movie) bool {
	for _, a := range m.cast {
		if other.HasActorNamed(a.Name) {
			return true
		}
	}
	return false
}

// HasGenre reports whether the movie carries the named genre.
func (m *Movie) HasGenre(name string) bool {
	return slices.ContainsFunc(m.genres, func(g *Genre) bool { return g.Name == name })
}

func (m *Movie) addActor(a *Actor) bool {
	if m.HasActor(a.ID) {
		return false
	}
	m.cast = append(m.cast, a)
	return true
}

func (m *Movie) removeActor(id int) bool {
	i := slices.IndexFunc(m.cast, func(a *Actor) bool { return a.ID == id })
	if i < 0 {
		return false
	}
	m.cast = slices.Delete(m.cast, i, i+1)
	return true
}

func (m *Movie) addGenre(g *Genre) bool {
	if m.HasGenre(g.Name) {
		return false
	}
	m.genres = append(m.genres, g)
	return true
}
