package location

import "strings"

// Filter returns the registry entries whose name contains query as a
// case-insensitive substring, preserving registry order. An empty query
// matches nothing: the UI hides suggestions until the user types.
func Filter(query string, registry []Location) []Location {
	if query == "" {
		return []Location{}
	}

	q := strings.ToLower(query)
	matches := make([]Location, 0, len(registry))
	for _, loc := range registry {
		if strings.Contains(strings.ToLower(loc.Name), q) {
			matches = append(matches, loc)
		}
	}
	return matches
}
