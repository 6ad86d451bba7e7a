package catalogs

import "strings"

// Actor is a person in the global registry. Movies share the same *Actor
// value rather than holding copies.
type Actor struct {
	ID   int    `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
	// Gender is the binary marker from the actors source; true is counted
	// by GET_MALE_RATIO_YEAR.
	Gender bool `json:"gender" yaml:"gender"`
}

// ParseGender reads a gender flag as the sources and INSERT_ACTOR write it:
// "true" in any letter case is true, everything else is false.
func ParseGender(s string) bool {
	return strings.EqualFold(s, "true")
}
