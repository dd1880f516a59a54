package catalog

import "testing"

func TestAuthorLine(t *testing.T) {
	tests := []struct {
		name    string
		authors []string
		want    string
	}{
		{"none", nil, UnknownAuthor},
		{"one", []string{"Frank Herbert"}, "Frank Herbert"},
		{"two", []string{"Terry Pratchett", "Neil Gaiman"}, "Terry Pratchett, Neil Gaiman"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := Entry{Authors: tt.authors}
			if got := e.AuthorLine(); got != tt.want {
				t.Errorf("AuthorLine() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestAuthorKey(t *testing.T) {
	e := Entry{Authors: []string{"Terry Pratchett", "Neil Gaiman"}}
	if got := e.AuthorKey(); got != "Terry Pratchett Neil Gaiman" {
		t.Errorf("AuthorKey() = %q", got)
	}
	if got := (Entry{}).AuthorKey(); got != "" {
		t.Errorf("AuthorKey() of no authors = %q, want empty", got)
	}
}

func TestPlaceholders(t *testing.T) {
	var e Entry
	if got := e.PublisherOrNA(); got != NotAvailable {
		t.Errorf("PublisherOrNA() = %q", got)
	}
	if got := e.PublishedOrNA(); got != NotAvailable {
		t.Errorf("PublishedOrNA() = %q", got)
	}
	if got := e.PageCountOrNA(); got != NotAvailable {
		t.Errorf("PageCountOrNA() = %q", got)
	}
	if got := e.ThumbnailOr(DetailPlaceholder); got != DetailPlaceholder {
		t.Errorf("ThumbnailOr() = %q", got)
	}

	full := Entry{Publisher: "Ace", PublishedDate: "1965", PageCount: 412, Thumbnail: "http://img/1"}
	if got := full.PublisherOrNA(); got != "Ace" {
		t.Errorf("PublisherOrNA() = %q", got)
	}
	if got := full.PublishedOrNA(); got != "1965" {
		t.Errorf("PublishedOrNA() = %q", got)
	}
	if got := full.PageCountOrNA(); got != "412" {
		t.Errorf("PageCountOrNA() = %q", got)
	}
	if got := full.ThumbnailOr(DetailPlaceholder); got != "http://img/1" {
		t.Errorf("ThumbnailOr() = %q", got)
	}
}

func TestSuggestionProjection(t *testing.T) {
	e := Entry{Title: "Dune", Authors: []string{"Frank Herbert"}}
	s := e.Suggestion()
	if s.Title != "Dune" || s.Authors != "Frank Herbert" {
		t.Errorf("Suggestion() = %+v", s)
	}
	s = Entry{Title: "Anon"}.Suggestion()
	if s.Authors != UnknownAuthor {
		t.Errorf("Suggestion().Authors = %q, want %q", s.Authors, UnknownAuthor)
	}
}
