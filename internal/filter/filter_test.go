package filter

import (
	"fmt"
	"math/rand"
	"strings"
	"testing"

	"github.com/abelbrown/bookfinder/internal/catalog"
)

func dune() []catalog.Entry {
	return []catalog.Entry{
		{ID: "d1", Title: "Dune", Authors: []string{"Frank Herbert"}},
		{ID: "d2", Title: "Dune Messiah", Authors: []string{"Frank Herbert"}},
		{ID: "f1", Title: "Foundation", Authors: []string{"Isaac Asimov"}},
		{ID: "g1", Title: "Good Omens", Authors: []string{"Terry Pratchett", "Neil Gaiman"}},
		{ID: "n1", Title: "Neuromancer", Authors: []string{"William Gibson"}},
		{ID: "x1", Title: "Untitled Notes"},
	}
}

// makeEntries creates n entries titled "Book 0".."Book n-1" by "Author i".
func makeEntries(n int) []catalog.Entry {
	entries := make([]catalog.Entry, n)
	for i := range entries {
		entries[i] = catalog.Entry{
			ID:      fmt.Sprintf("id%d", i),
			Title:   fmt.Sprintf("Book %d", i),
			Authors: []string{fmt.Sprintf("Author %d", i)},
		}
	}
	return entries
}

func entryTitles(entries []catalog.Entry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Title
	}
	return out
}

func suggestionTitles(suggestions []catalog.Suggestion) []string {
	out := make([]string, len(suggestions))
	for i, s := range suggestions {
		out[i] = s.Title
	}
	return out
}

func TestBlank(t *testing.T) {
	for _, q := range []string{"", " ", "\t\n"} {
		if !Blank(q) {
			t.Errorf("Blank(%q) = false, want true", q)
		}
	}
	if Blank(" d") {
		t.Error(`Blank(" d") = true, want false`)
	}
}

func TestSuggestDuneScenario(t *testing.T) {
	got := Suggest(dune(), "dune", 5)
	want := []string{"Dune", "Dune Messiah"}
	if strings.Join(suggestionTitles(got), "|") != strings.Join(want, "|") {
		t.Fatalf("Suggest(dune) = %v, want %v", suggestionTitles(got), want)
	}
	for _, s := range got {
		if s.Authors != "Frank Herbert" {
			t.Errorf("suggestion %q authors = %q", s.Title, s.Authors)
		}
	}
}

func TestSuggestMatchesAuthorPrefix(t *testing.T) {
	got := Suggest(dune(), "FRANK", 5)
	if len(got) != 2 {
		t.Fatalf("expected 2 suggestions for author prefix, got %v", suggestionTitles(got))
	}

	// Second author is not a prefix of the joined author string.
	if got := Suggest(dune(), "neil", 5); len(got) != 0 {
		t.Errorf("expected no suggestions for non-leading author, got %v", suggestionTitles(got))
	}
}

func TestSuggestIsPrefixNotSubstring(t *testing.T) {
	if got := Suggest(dune(), "messiah", 5); len(got) != 0 {
		t.Errorf("expected no suggestions for inner word, got %v", suggestionTitles(got))
	}
}

func TestSuggestBlankQuery(t *testing.T) {
	for _, q := range []string{"", "   "} {
		got := Suggest(dune(), q, 5)
		if got == nil || len(got) != 0 {
			t.Errorf("Suggest(%q) = %v, want empty non-nil", q, got)
		}
	}
}

func TestSuggestCap(t *testing.T) {
	got := Suggest(makeEntries(12), "book", 5)
	if len(got) != 5 {
		t.Fatalf("expected 5 suggestions, got %d", len(got))
	}
	want := []string{"Book 0", "Book 1", "Book 2", "Book 3", "Book 4"}
	if strings.Join(suggestionTitles(got), "|") != strings.Join(want, "|") {
		t.Errorf("suggestions = %v, want scan order %v", suggestionTitles(got), want)
	}
}

func TestSuggestDedupLastWriteWins(t *testing.T) {
	entries := []catalog.Entry{
		{ID: "1", Title: "Collected Poems", Authors: []string{"W. H. Auden"}},
		{ID: "2", Title: "Cold Mountain", Authors: []string{"Charles Frazier"}},
		{ID: "3", Title: "Collected Poems", Authors: []string{"Sylvia Plath"}},
	}
	got := Suggest(entries, "col", 5)
	if len(got) != 2 {
		t.Fatalf("expected 2 unique titles, got %v", suggestionTitles(got))
	}
	if got[0].Title != "Collected Poems" || got[0].Authors != "Sylvia Plath" {
		t.Errorf("first suggestion = %+v, want Collected Poems by the later author", got[0])
	}
	if got[1].Title != "Cold Mountain" {
		t.Errorf("second suggestion = %+v", got[1])
	}
}

func TestSuggestProperties(t *testing.T) {
	entries := append(makeEntries(30), dune()...)
	entries = append(entries, catalog.Entry{ID: "dup", Title: "Book 3", Authors: []string{"Someone Else"}})

	for _, q := range []string{"b", "book 1", "d", "dune", "f", "a", "z", "BOOK"} {
		got := Suggest(entries, q, 5)
		if len(got) > 5 {
			t.Errorf("%q: %d suggestions exceeds cap", q, len(got))
		}

		distinct := map[string]bool{}
		folded := strings.ToLower(q)
		for _, e := range entries {
			if strings.HasPrefix(strings.ToLower(e.Title), folded) || strings.HasPrefix(strings.ToLower(e.AuthorKey()), folded) {
				distinct[e.Title] = true
			}
		}
		if len(got) > len(distinct) {
			t.Errorf("%q: %d suggestions exceeds %d distinct matching titles", q, len(got), len(distinct))
		}

		seen := map[string]bool{}
		for _, s := range got {
			if seen[s.Title] {
				t.Errorf("%q: duplicate suggestion title %q", q, s.Title)
			}
			seen[s.Title] = true
		}
	}
}

func TestSearch(t *testing.T) {
	tests := []struct {
		query string
		want  []string
	}{
		{"dune", []string{"Dune", "Dune Messiah"}},
		{"MESSIAH", []string{"Dune Messiah"}},
		{"herbert", []string{"Dune", "Dune Messiah"}},
		{"gaiman", []string{"Good Omens"}},
		{"pratchett neil", []string{"Good Omens"}},
		{"nothing matches", []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			got := Search(dune(), tt.query)
			if strings.Join(entryTitles(got), "|") != strings.Join(tt.want, "|") {
				t.Errorf("Search(%q) = %v, want %v", tt.query, entryTitles(got), tt.want)
			}
		})
	}
}

func TestSearchResultsContainQuery(t *testing.T) {
	entries := append(makeEntries(40), dune()...)
	for _, q := range []string{"1", "book 2", "or", "an", "e", "Frank", " "} {
		for _, e := range Search(entries, q) {
			if !strings.Contains(strings.ToLower(e.Title), strings.ToLower(q)) &&
				!strings.Contains(strings.ToLower(e.AuthorKey()), strings.ToLower(q)) {
				t.Errorf("Search(%q) returned %q which does not contain the query", q, e.Title)
			}
		}
	}
}

func TestByTitle(t *testing.T) {
	entries := append(dune(), catalog.Entry{ID: "d3", Title: "DUNE", Authors: []string{"Someone"}})

	got := ByTitle(entries, "dune")
	if len(got) != 2 {
		t.Fatalf("ByTitle(dune) = %v, want 2 colliding entries", entryTitles(got))
	}
	for _, e := range got {
		if !strings.EqualFold(e.Title, "dune") {
			t.Errorf("ByTitle returned %q", e.Title)
		}
	}

	if got := ByTitle(entries, "Dune Mess"); len(got) != 0 {
		t.Errorf("ByTitle should require full equality, got %v", entryTitles(got))
	}
}

func TestSample(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	entries := makeEntries(40)

	for i := 0; i < 20; i++ {
		got := Sample(entries, 4, rng)
		if len(got) != 4 {
			t.Fatalf("expected 4 entries, got %d", len(got))
		}
		seen := map[string]bool{}
		for _, e := range got {
			if seen[e.ID] {
				t.Fatalf("duplicate entry %s in sample", e.ID)
			}
			seen[e.ID] = true
		}
	}

	// Input order is preserved.
	for i, e := range entries {
		if e.ID != fmt.Sprintf("id%d", i) {
			t.Fatalf("Sample reordered its input at %d: %s", i, e.ID)
		}
	}
}

func TestSampleFewerThanN(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	got := Sample(makeEntries(3), 4, rng)
	if len(got) != 3 {
		t.Errorf("expected all 3 entries, got %d", len(got))
	}

	got = Sample(nil, 4, rng)
	if got == nil || len(got) != 0 {
		t.Errorf("Sample(nil) = %v, want empty non-nil", got)
	}
}
