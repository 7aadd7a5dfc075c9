package query

import "strings"

// matchesAny reports whether at least one of the distinct values contains
// the search term as a case-insensitive substring. An empty value set never
// matches; that is a normal outcome, not an error.
func matchesAny(term string, values []string) bool {
	needle := strings.ToLower(term)
	for _, v := range values {
		if strings.Contains(strings.ToLower(v), needle) {
			return true
		}
	}
	return false
}
