// Package fields splits delimited text the way the catalog sources and the
// command protocol expect: empty fields are kept, except trailing ones,
// which are dropped. "a,,b,," therefore yields ["a", "", "b"].
package fields

import "strings"

// Split splits s around sep and drops trailing empty fields.
// An empty s yields a single empty field.
func Split(s, sep string) []string {
	parts := strings.Split(s, sep)
	end := len(parts)
	for end > 0 && parts[end-1] == "" {
		end--
	}
	if end == 0 {
		if s == "" {
			return []string{""}
		}
		return []string{}
	}
	return parts[:end]
}

// Join rebuilds a multi-word argument from tokens[from:] with sep.
// It returns "" when from is past the end.
func Join(tokens []string, from int, sep string) string {
	if from >= len(tokens) {
		return ""
	}
	return strings.Join(tokens[from:], sep)
}
