package contact

import "strings"

// Filter describes the derived view over the full contact set: a free-text
// search term, a category (CategoryAll or empty means no restriction) and a
// favorites-only flag.
type Filter struct {
	Search        string
	Category      Category
	FavoritesOnly bool
}

// Match reports whether c passes all three predicates. The search term
// matches case-insensitively as a substring of name, email or company.
func (f Filter) Match(c Contact) bool {
	if term := strings.ToLower(strings.TrimSpace(f.Search)); term != "" {
		if !strings.Contains(strings.ToLower(c.Name), term) &&
			!strings.Contains(strings.ToLower(c.Email), term) &&
			!strings.Contains(strings.ToLower(c.Company), term) {
			return false
		}
	}

	if f.Category != "" && f.Category != CategoryAll && c.Category != f.Category {
		return false
	}

	if f.FavoritesOnly && !c.IsFavorite {
		return false
	}

	return true
}

// Apply returns the contacts matching f, preserving input order. The input
// slice is never mutated; the result is always a fresh slice.
func (f Filter) Apply(contacts []Contact) []Contact {
	filtered := make([]Contact, 0, len(contacts))
	for _, c := range contacts {
		if f.Match(c) {
			filtered = append(filtered, c)
		}
	}
	return filtered
}
