package enrichment

import "strings"

// keySeparator joins title and year in a cache key.
const keySeparator = "-"

// Query identifies the movie to enrich.
// Year is kept as exported by the watchlist and may contain non-digits.
type Query struct {
	Title string
	Year  string
}

// NormalizedYear returns only the ASCII digits of Year.
func (q Query) NormalizedYear() string {
	return digitsOnly(q.Year)
}

// Key returns the canonical cache key for the query.
// Queries whose years differ only in non-digit characters share a key.
func (q Query) Key() string {
	return q.Title + keySeparator + q.NormalizedYear()
}

func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
