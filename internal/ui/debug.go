package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/abelbrown/bookfinder/internal/activity"
	"github.com/mattn/go-runewidth"
)

// debugPanelChrome is the number of lines DebugPanel's border and vertical
// padding take. Must be updated if DebugPanel style changes.
const debugPanelChrome = 4

// debugOverlay renders fetch and navigation activity. Returns empty string
// if ring is nil.
func debugOverlay(ring *activity.Ring, width, height int) string {
	if ring == nil {
		return ""
	}

	stats := ring.Stats()

	var lines []string
	lines = append(lines, DebugHeaderStyle.Render("Activity"))
	lines = append(lines, fmt.Sprintf("  Fetches:    %d complete, %d errors, %d dropped",
		stats[activity.KindFetchComplete], stats[activity.KindFetchError], stats[activity.KindDropped]))
	lines = append(lines, fmt.Sprintf("  Navigation: %d push, %d back",
		stats[activity.KindNavigate], stats[activity.KindBack]))
	lines = append(lines, fmt.Sprintf("  Buffer:     %d / %d events", ring.Len(), ring.Cap()))
	lines = append(lines, "")

	lines = append(lines, DebugHeaderStyle.Render("Recent"))
	for _, e := range ring.Last(20) {
		line := fmt.Sprintf("  %6s  %-15s  view:%-3d", formatAge(time.Since(e.Time)), string(e.Kind), e.View)
		if e.Route != "" {
			line += "  " + runewidth.Truncate(e.Route, 30, "…")
		}
		if e.Count > 0 {
			line += fmt.Sprintf("  n:%d", e.Count)
		}
		if e.Dur > 0 {
			line += "  " + formatAge(e.Dur)
		}
		if e.Err != "" {
			line += "  ERR:" + runewidth.Truncate(e.Err, 30, "…")
		}
		lines = append(lines, line)
	}

	maxHeight := height - debugPanelChrome
	if maxHeight < 1 {
		maxHeight = 1
	}
	if len(lines) > maxHeight {
		lines = lines[:maxHeight]
	}

	panelWidth := 76
	if panelWidth > width-4 {
		panelWidth = width - 4
	}
	if panelWidth < 20 {
		panelWidth = 20
	}

	return DebugPanel.Width(panelWidth).Render(strings.Join(lines, "\n"))
}

// formatAge formats a duration compactly. Negative durations read "0ms".
func formatAge(d time.Duration) string {
	if d < 0 {
		return "0ms"
	}
	switch {
	case d < time.Second:
		return fmt.Sprintf("%dms", d.Milliseconds())
	case d < time.Minute:
		return fmt.Sprintf("%.1fs", d.Seconds())
	default:
		return fmt.Sprintf("%.0fm", d.Minutes())
	}
}

func debugStatusBar(width int) string {
	return renderStatusBar("[DEBUG]", helpLine(width, debugKey), width)
}
