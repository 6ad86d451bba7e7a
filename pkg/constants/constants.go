// Package constants provides shared constants used throughout the cinemap codebase:
// protocol literals, default source file names, record layouts and limits.
package constants

import "time"

// FilePermissions is the permission for log files the logger creates (rw-r--r--)
const FilePermissions = 0644

// Source file defaults
const (
	// DefaultMoviesFile is the movies source read when no path is configured
	DefaultMoviesFile = "deisi_movies.txt"

	// DefaultActorsFile is the actors source read when no path is configured
	DefaultActorsFile = "deisi_actors.txt"

	// DefaultGenresFile is the genres source read when no path is configured
	DefaultGenresFile = "deisi_genres.txt"

	// DefaultEncoding is the character encoding assumed for source files
	DefaultEncoding = "utf-8"
)

// Record layouts: number of comma-separated fields per source line
const (
	// MovieFields is the field count of a movies record
	MovieFields = 7

	// ActorFields is the field count of an actors record
	ActorFields = 4

	// GenreFields is the field count of a genres record
	GenreFields = 2
)

// Separators used by the source files and the command protocol
const (
	// FieldSeparator splits source records and INSERT_ACTOR arguments
	FieldSeparator = ","

	// DateSeparator splits the dd-mm-yyyy release date
	DateSeparator = "-"

	// TokenSeparator splits a command line into tokens
	TokenSeparator = " "

	// NameSeparator splits the two names of COUNT_MOVIES_ACTORS
	NameSeparator = ";"

	// TitleSeparator joins titles in GET_TITLES_YEAR and HARD_MODE_ON_1
	TitleSeparator = "||"

	// PairSeparator joins the two columns of ranked result lines
	PairSeparator = ";"
)

// Protocol responses
const (
	// InvalidQuery is returned for unknown or malformed command lines
	InvalidQuery = "Query com formato inválido. Tente novamente."

	// InsertOK is returned by a successful INSERT_ACTOR
	InsertOK = "ok"

	// RemoveOK is returned by a successful REMOVE_ACTOR
	RemoveOK = "OK"

	// MutationFailed is returned by INSERT_ACTOR / REMOVE_ACTOR on rejection
	MutationFailed = "Erro"

	// QuitCommand terminates the interactive read loop
	QuitCommand = "QUIT"

	// AllResults asks GET_TOP_VOTED_TITLES_YEAR for every movie of the year
	AllResults = -1
)

// Limit constants
const (
	// TopActorsByGenreLimit caps GET_TOP_ACTORS_BY_GENRE output lines
	TopActorsByGenreLimit = 10

	// MaxLineLength is the longest source or command line accepted by the scanners
	MaxLineLength = 1024 * 1024

	// ShutdownTimeout bounds graceful shutdown of the CLI
	ShutdownTimeout = 5 * time.Second
)
