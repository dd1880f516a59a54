// Package filter provides pure filter functions over catalog entries.
// All functions are simple: []Entry in, new []Entry out. No side effects,
// and the input slice is never reordered or modified.
package filter

import (
	"math/rand"
	"strings"

	"github.com/abelbrown/bookfinder/internal/catalog"
	"golang.org/x/text/cases"
)

// fold returns the case-folded form of s used for all comparisons.
// A Caser is stateful, so a fresh one is taken per call.
func fold(s string) string {
	return cases.Fold().String(s)
}

// Blank reports whether a query is empty or whitespace-only.
func Blank(query string) bool {
	return strings.TrimSpace(query) == ""
}

// Suggest returns up to limit suggestions for entries whose title or
// space-joined authors start with query, ignoring case.
//
// Suggestions are keyed by title: a later entry with the same title
// replaces the earlier suggestion in place, so two books sharing a title
// but not an author produce a single row carrying the last author.
func Suggest(entries []catalog.Entry, query string, limit int) []catalog.Suggestion {
	if Blank(query) || limit <= 0 {
		return []catalog.Suggestion{}
	}
	q := fold(query)

	order := make([]string, 0, len(entries))
	byTitle := make(map[string]catalog.Suggestion)
	for _, e := range entries {
		if !strings.HasPrefix(fold(e.Title), q) && !strings.HasPrefix(fold(e.AuthorKey()), q) {
			continue
		}
		if _, seen := byTitle[e.Title]; !seen {
			order = append(order, e.Title)
		}
		byTitle[e.Title] = e.Suggestion()
	}

	if len(order) > limit {
		order = order[:limit]
	}
	result := make([]catalog.Suggestion, 0, len(order))
	for _, title := range order {
		result = append(result, byTitle[title])
	}
	return result
}

// Search returns the entries whose title or space-joined authors contain
// query, ignoring case. Order follows the input.
func Search(entries []catalog.Entry, query string) []catalog.Entry {
	q := fold(query)
	result := make([]catalog.Entry, 0, len(entries))
	for _, e := range entries {
		if strings.Contains(fold(e.Title), q) || strings.Contains(fold(e.AuthorKey()), q) {
			result = append(result, e)
		}
	}
	return result
}

// ByTitle returns every entry whose title equals title, ignoring case.
// More than one entry is returned when titles collide.
func ByTitle(entries []catalog.Entry, title string) []catalog.Entry {
	t := fold(title)
	result := make([]catalog.Entry, 0, 1)
	for _, e := range entries {
		if fold(e.Title) == t {
			result = append(result, e)
		}
	}
	return result
}

// Sample returns n distinct entries picked at random, or a shuffled copy
// of all entries when there are fewer than n.
func Sample(entries []catalog.Entry, n int, rng *rand.Rand) []catalog.Entry {
	if n > len(entries) {
		n = len(entries)
	}
	if n <= 0 {
		return []catalog.Entry{}
	}
	result := make([]catalog.Entry, n)
	for i, idx := range rng.Perm(len(entries))[:n] {
		result[i] = entries[idx]
	}
	return result
}
