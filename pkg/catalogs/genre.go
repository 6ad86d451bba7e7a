package catalogs

// Genre is identified by name only. Genres are interned by the catalog,
// so every movie tagged with a name points at the same value.
type Genre struct {
	Name string `json:"name" yaml:"name"`
}
