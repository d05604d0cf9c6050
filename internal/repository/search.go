package repository

import "strings"

// likePattern builds the argument for a case-insensitive substring match
// against LOWER(name). An empty term yields "%%", which matches every row.
func likePattern(term string) string {
	return "%" + strings.ToLower(term) + "%"
}
