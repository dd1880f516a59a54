// Package catalog defines the book records shown by bookfinder.
package catalog

import (
	"strconv"
	"strings"
)

// Placeholder text and images for fields the catalog API omitted.
const (
	UnknownAuthor     = "Unknown Author"
	NotAvailable      = "N/A"
	NoDescription     = "No description available for this book."
	CardPlaceholder   = "https://via.placeholder.com/128x180?text=No+Image"
	DetailPlaceholder = "https://via.placeholder.com/200x300?text=No+Image"
)

// Entry is a single volume as returned by the catalog API.
// Optional fields are left at their zero value when absent.
// Entries are never modified after they are fetched.
type Entry struct {
	ID            string
	Title         string
	Authors       []string
	Publisher     string
	PublishedDate string
	PageCount     int
	Thumbnail     string
	Description   string // may contain HTML markup
}

// Suggestion is the projection of an Entry shown in the suggestion list.
type Suggestion struct {
	Title   string
	Authors string
}

// AuthorLine joins the author names for display, or returns UnknownAuthor.
func (e Entry) AuthorLine() string {
	if len(e.Authors) == 0 {
		return UnknownAuthor
	}
	return strings.Join(e.Authors, ", ")
}

// AuthorKey joins the author names with single spaces. Used for matching.
func (e Entry) AuthorKey() string {
	return strings.Join(e.Authors, " ")
}

// Suggestion projects the entry into a suggestion row.
func (e Entry) Suggestion() Suggestion {
	return Suggestion{Title: e.Title, Authors: e.AuthorLine()}
}

// PublisherOrNA returns the publisher or NotAvailable.
func (e Entry) PublisherOrNA() string {
	return orNA(e.Publisher)
}

// PublishedOrNA returns the publication date or NotAvailable.
func (e Entry) PublishedOrNA() string {
	return orNA(e.PublishedDate)
}

// PageCountOrNA returns the page count as text. Zero counts as absent.
func (e Entry) PageCountOrNA() string {
	if e.PageCount <= 0 {
		return NotAvailable
	}
	return strconv.Itoa(e.PageCount)
}

// ThumbnailOr returns the thumbnail URL or the given placeholder.
func (e Entry) ThumbnailOr(placeholder string) string {
	if e.Thumbnail == "" {
		return placeholder
	}
	return e.Thumbnail
}

func orNA(s string) string {
	if strings.TrimSpace(s) == "" {
		return NotAvailable
	}
	return s
}
