package repository

import "strings"

// Genres are stored in a single column as a comma-separated list. The list
// is ordered and duplicates are kept as submitted; splitting and joining are
// exact inverses as long as individual genre names contain no comma, which
// holds for the fixed genre vocabulary used by the forms.

// joinGenres flattens a genre list into its column representation.
func joinGenres(genres []string) string {
	return strings.Join(genres, ",")
}

// splitGenres expands the column representation back into a list. An empty
// column yields an empty list rather than a list holding one empty string.
func splitGenres(s string) []string {
	if s == "" {
		return []string{}
	}
	return strings.Split(s, ",")
}
