package ingest

import (
	"slices"

	"github.com/agentstation/cinemap/pkg/constants"
)

// SourceID identifies one of the three catalog sources.
type SourceID string

// String returns the string representation of a source id.
func (id SourceID) String() string {
	return string(id)
}

// Catalog sources, in the order they are applied.
const (
	MoviesID SourceID = "movies"
	ActorsID SourceID = "actors"
	GenresID SourceID = "genres"
)

// SourceIDs returns every source id in application order.
func SourceIDs() []SourceID {
	return []SourceID{MoviesID, ActorsID, GenresID}
}

// IsValid returns true if the id is one of the defined constants.
func (id SourceID) IsValid() bool {
	return slices.Contains(SourceIDs(), id)
}

// fieldCount returns the exact number of fields a record of this source has.
func (id SourceID) fieldCount() int {
	switch id {
	case MoviesID:
		return constants.MovieFields
	case ActorsID:
		return constants.ActorFields
	case GenresID:
		return constants.GenreFields
	default:
		return 0
	}
}
