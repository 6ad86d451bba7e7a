package catalogs

// Reader provides read-only access to catalog data.
type Reader interface {
	// Collections in insertion order
	Movies() *Movies
	Actors() *Actors
	Genres() *Genres

	// Lookups by key
	Movie(id int) (*Movie, error)
	Actor(id int) (*Actor, error)

	// Stats summarizes entity and relationship counts
	Stats() Stats
}

// Writer provides the mutations ingestion and the command protocol need.
type Writer interface {
	// AddMovie stores a movie; the id must be new
	AddMovie(movie *Movie) error

	// AddActor registers an actor; the id must be new
	AddActor(actor *Actor) error

	// CastActor appends a registered actor to a movie's cast
	CastActor(movieID, actorID int) error

	// InternGenre returns the shared genre for a name
	InternGenre(name string) *Genre

	// TagGenre appends the named genre to a movie's genre list
	TagGenre(movieID int, name string) error

	// RemoveActor drops an actor from every cast and from the registry
	RemoveActor(id int) (*Actor, error)
}

// Catalog is the complete interface combining read and write access.
type Catalog interface {
	Reader
	Writer
}
