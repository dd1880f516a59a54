package route

import (
	"errors"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		path string
		want Route
	}{
		{"", Home},
		{"/", Home},
		{"/book/abc123", Book("abc123")},
		{"/book/abc123/", Book("abc123")},
		{"/book/a%2Fb", Book("a/b")},
		{"/book/zyTCAlFPjgYC", Book("zyTCAlFPjgYC")},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, err := Parse(tt.path)
			if err != nil {
				t.Fatalf("Parse(%q) error = %v", tt.path, err)
			}
			if got != tt.want {
				t.Errorf("Parse(%q) = %+v, want %+v", tt.path, got, tt.want)
			}
		})
	}
}

func TestParseNotFound(t *testing.T) {
	for _, path := range []string{"/book", "/book/", "/books/1", "/book/a/b", "/about", "book/1"} {
		t.Run(path, func(t *testing.T) {
			_, err := Parse(path)
			if !errors.Is(err, ErrNotFound) {
				t.Errorf("Parse(%q) error = %v, want ErrNotFound", path, err)
			}
		})
	}
}

func TestPathRoundTrip(t *testing.T) {
	for _, r := range []Route{Home, Book("abc123"), Book("a/b c")} {
		got, err := Parse(r.Path())
		if err != nil {
			t.Fatalf("Parse(%q) error = %v", r.Path(), err)
		}
		if got != r {
			t.Errorf("round trip of %+v gave %+v", r, got)
		}
	}
}

func TestKindString(t *testing.T) {
	if KindCatalog.String() != "catalog" || KindDetail.String() != "detail" {
		t.Errorf("unexpected kind names %q %q", KindCatalog, KindDetail)
	}
}

func TestHistory(t *testing.T) {
	h := NewHistory(Home)
	if h.Len() != 1 || h.Current() != Home {
		t.Fatalf("new history = %d entries, current %v", h.Len(), h.Current())
	}

	if h.Back() {
		t.Error("Back at the first entry should return false")
	}
	if h.Current() != Home {
		t.Errorf("Back at the first entry changed current to %v", h.Current())
	}

	h.Push(Book("abc"))
	h.Push(Home)
	if h.Len() != 3 || h.Current() != Home {
		t.Fatalf("after pushes: %d entries, current %v", h.Len(), h.Current())
	}

	if !h.Back() || h.Current() != Book("abc") {
		t.Errorf("Back should return to /book/abc, got %v", h.Current())
	}
	if !h.Back() || h.Current() != Home {
		t.Errorf("Back should return to /, got %v", h.Current())
	}
}
