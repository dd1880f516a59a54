package catalog

import (
	"strings"
	"testing"
)

func TestStripMarkup(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"plain", "A desert planet.", "A desert planet."},
		{"tags", "<p>A <b>desert</b> planet.</p>", "A desert planet."},
		{"break", "Line one<br>Line two", "Line oneLine two"},
		{"entities", "<i>Tom &amp; Jerry</i>", "Tom & Jerry"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StripMarkup(tt.in); got != tt.want {
				t.Errorf("StripMarkup(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestPlainDescription(t *testing.T) {
	if got := (Entry{}).PlainDescription(); got != NoDescription {
		t.Errorf("missing description = %q, want placeholder", got)
	}
	if got := (Entry{Description: "<p></p>"}).PlainDescription(); got != NoDescription {
		t.Errorf("markup-only description = %q, want placeholder", got)
	}
	e := Entry{Description: "<p>Spice must flow.</p>"}
	if got := e.PlainDescription(); got != "Spice must flow." {
		t.Errorf("PlainDescription() = %q", got)
	}
}

func TestNeedsToggle(t *testing.T) {
	if NeedsToggle(NoDescription, ToggleThreshold) {
		t.Error("placeholder description should not need a toggle")
	}
	if NeedsToggle(strings.Repeat("x", ToggleThreshold), ToggleThreshold) {
		t.Error("description of exactly the threshold should not need a toggle")
	}
	if !NeedsToggle(strings.Repeat("x", ToggleThreshold+1), ToggleThreshold) {
		t.Error("description over the threshold should need a toggle")
	}
	// Counted in characters, not bytes.
	if NeedsToggle(strings.Repeat("é", ToggleThreshold), ToggleThreshold) {
		t.Error("multi-byte runes should be counted once")
	}
}
