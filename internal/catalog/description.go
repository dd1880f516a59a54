package catalog

import (
	"html"
	"strings"
	"unicode/utf8"

	"github.com/microcosm-cc/bluemonday"
)

// ToggleThreshold is the description length, in characters, above which
// the detail view offers a Read More / Show Less toggle.
const ToggleThreshold = 80

// strict removes every element and keeps only text content.
var strict = bluemonday.StrictPolicy()

// StripMarkup removes HTML tags from s and decodes the entities the
// sanitizer leaves behind.
func StripMarkup(s string) string {
	if s == "" {
		return ""
	}
	return html.UnescapeString(strict.Sanitize(s))
}

// PlainDescription returns the markup-free description, or NoDescription
// when the entry has none.
func (e Entry) PlainDescription() string {
	plain := strings.TrimSpace(StripMarkup(e.Description))
	if plain == "" {
		return NoDescription
	}
	return plain
}

// NeedsToggle reports whether a description is long enough to be clamped
// behind an expand/collapse toggle.
func NeedsToggle(description string, threshold int) bool {
	return utf8.RuneCountInString(description) > threshold
}
