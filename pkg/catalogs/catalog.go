// Package catalogs provides the in-memory catalog of movies, actors and genres.
//
// The catalog is a single owned value: the ingestion pipeline fills it and the
// query dispatcher reads and mutates it. It keeps three collections (movies by
// id in insertion order, the actor registry in registration order and interned
// genres) plus the cast and genre edges hanging off each movie.
//
// The catalog does no locking of its own. Callers that share it between
// goroutines hold one exclusive lock around each command.
//
// Example usage:
//
//	cat := catalogs.New()
//	_ = cat.AddMovie(&catalogs.Movie{ID: 1, Title: "Alpha"})
//	_ = cat.AddActor(&catalogs.Actor{ID: 7, Name: "John", Gender: true})
//	_ = cat.CastActor(1, 7)
//	_ = cat.TagGenre(1, "Drama")
package catalogs

import (
	"strconv"

	"github.com/agentstation/cinemap/pkg/errors"
)

// Compile-time interface checks to ensure proper implementation.
var (
	_ Catalog = (*catalog)(nil)
	_ Reader  = (*catalog)(nil)
	_ Writer  = (*catalog)(nil)
)

// catalog is the single concrete implementation of the Catalog interface.
type catalog struct {
	movies *Movies
	actors *Actors
	genres *Genres
}

// New creates an empty in-memory catalog.
func New() Catalog {
	return &catalog{
		movies: NewMovies(),
		actors: NewActors(),
		genres: NewGenres(),
	}
}

// Movies returns the movies collection.
func (cat *catalog) Movies() *Movies {
	return cat.movies
}

// Actors returns the actor registry.
func (cat *catalog) Actors() *Actors {
	return cat.actors
}

// Genres returns the interned genres.
func (cat *catalog) Genres() *Genres {
	return cat.genres
}

// Movie returns a movie by id.
func (cat *catalog) Movie(id int) (*Movie, error) {
	movie, ok := cat.movies.Get(id)
	if !ok {
		return nil, errors.NewNotFoundError("movie", strconv.Itoa(id))
	}
	return movie, nil
}

// Actor returns a registered actor by id.
func (cat *catalog) Actor(id int) (*Actor, error) {
	actor, ok := cat.actors.Get(id)
	if !ok {
		return nil, errors.NewNotFoundError("actor", strconv.Itoa(id))
	}
	return actor, nil
}

// AddMovie stores a movie. Its cast and genre lists start empty.
func (cat *catalog) AddMovie(movie *Movie) error {
	return cat.movies.Add(movie)
}

// AddActor registers an actor.
func (cat *catalog) AddActor(actor *Actor) error {
	return cat.actors.Add(actor)
}

// CastActor appends the registered actor to the movie's cast.
// It returns an AlreadyExistsError when the actor is already in that cast.
func (cat *catalog) CastActor(movieID, actorID int) error {
	movie, err := cat.Movie(movieID)
	if err != nil {
		return err
	}
	actor, err := cat.Actor(actorID)
	if err != nil {
		return err
	}
	if !movie.addActor(actor) {
		return errors.NewAlreadyExistsError("cast entry", strconv.Itoa(movieID)+"/"+strconv.Itoa(actorID))
	}
	return nil
}

// InternGenre returns the shared genre for name, creating it if new.
func (cat *catalog) InternGenre(name string) *Genre {
	genre, _ := cat.genres.Intern(name)
	return genre
}

// TagGenre interns name and appends it to the movie's genre list.
// The genre is interned even when the movie does not exist.
func (cat *catalog) TagGenre(movieID int, name string) error {
	genre := cat.InternGenre(name)
	movie, err := cat.Movie(movieID)
	if err != nil {
		return err
	}
	if !movie.addGenre(genre) {
		return errors.NewAlreadyExistsError("genre tag", strconv.Itoa(movieID)+"/"+name)
	}
	return nil
}

// RemoveActor removes the actor from every cast it appears in and then
// from the registry. It returns the removed actor.
func (cat *catalog) RemoveActor(id int) (*Actor, error) {
	actor, err := cat.Actor(id)
	if err != nil {
		return nil, err
	}
	for _, movie := range cat.movies.order {
		movie.removeActor(id)
	}
	if err := cat.actors.Delete(id); err != nil {
		return nil, err
	}
	return actor, nil
}
