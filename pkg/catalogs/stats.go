package catalogs

// Stats summarizes a catalog snapshot.
type Stats struct {
	Movies      int `json:"movies" yaml:"movies"`
	Actors      int `json:"actors" yaml:"actors"`
	Genres      int `json:"genres" yaml:"genres"`
	CastEntries int `json:"cast_entries" yaml:"cast_entries"`
	GenreTags   int `json:"genre_tags" yaml:"genre_tags"`
}

// Stats counts entities and edges.
func (cat *catalog) Stats() Stats {
	s := Stats{
		Movies: cat.movies.Len(),
		Actors: cat.actors.Len(),
		Genres: cat.genres.Len(),
	}
	for _, movie := range cat.movies.order {
		s.CastEntries += len(movie.cast)
		s.GenreTags += len(movie.genres)
	}
	return s
}
