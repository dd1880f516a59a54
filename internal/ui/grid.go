package ui

import (
	"strings"

	"github.com/abelbrown/bookfinder/internal/catalog"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

const (
	// cardTextWidth is the text column inside a card.
	cardTextWidth = 24
	// cardTitleLines is how many wrapped title lines a card shows.
	cardTitleLines = 2
)

// cardOuterWidth and cardOuterHeight are the terminal cells one card uses,
// including border, padding and margin. Computed from the Card style so the
// grid math follows style changes.
var (
	cardOuterWidth  = lipgloss.Width(renderCard(catalog.Entry{}, false))
	cardOuterHeight = lipgloss.Height(renderCard(catalog.Entry{}, false))
)

// gridColumns returns how many cards fit side by side in width.
func gridColumns(width int) int {
	cols := width / cardOuterWidth
	if cols < 1 {
		cols = 1
	}
	return cols
}

// RenderGrid renders entries as rows of cards, scrolled so the cursor row
// is visible. highlight marks the cursor card; pass false while the grid
// does not have focus.
func RenderGrid(entries []catalog.Entry, cursor int, highlight bool, width, height int) string {
	if len(entries) == 0 {
		return HelpStyle.Render("No books found.")
	}

	cols := gridColumns(width)
	rows := (len(entries) + cols - 1) / cols

	visibleRows := height / cardOuterHeight
	if visibleRows < 1 {
		visibleRows = 1
	}
	offset := calcRowOffset(cursor/cols, visibleRows)

	var rendered []string
	for row := offset; row < rows && row < offset+visibleRows; row++ {
		var cards []string
		for col := 0; col < cols; col++ {
			i := row*cols + col
			if i >= len(entries) {
				break
			}
			cards = append(cards, renderCard(entries[i], highlight && i == cursor))
		}
		rendered = append(rendered, lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rendered...)
}

// calcRowOffset returns the first visible row such that cursorRow is on
// screen when visibleRows rows fit.
func calcRowOffset(cursorRow, visibleRows int) int {
	if cursorRow < 0 || visibleRows < 1 {
		return 0
	}
	if cursorRow >= visibleRows {
		return cursorRow - visibleRows + 1
	}
	return 0
}

// renderCard renders one grid card: title, authors, publication date and
// cover link.
func renderCard(e catalog.Entry, selected bool) string {
	title, _ := clampText(e.Title, cardTextWidth, cardTitleLines)
	for len(title) < cardTitleLines {
		title = append(title, "")
	}

	lines := make([]string, 0, cardTitleLines+3)
	for _, l := range title {
		lines = append(lines, CardTitle.Render(l))
	}
	lines = append(lines,
		MetaText.Render(runewidth.Truncate(e.AuthorLine(), cardTextWidth, "…")),
		MetaText.Render("Published: "+runewidth.Truncate(e.PublishedOrNA(), cardTextWidth-11, "…")),
		LinkText.Render(runewidth.Truncate(e.ThumbnailOr(catalog.CardPlaceholder), cardTextWidth, "…")),
	)

	style := Card
	if selected {
		style = CardSelected
	}
	return style.Width(cardTextWidth + style.GetHorizontalPadding()).Render(strings.Join(lines, "\n"))
}

// clampText word-wraps text to width and keeps at most n lines. When lines
// are dropped the last kept line ends in an ellipsis and truncated is true.
func clampText(text string, width, n int) (lines []string, truncated bool) {
	lines = wrapText(text, width)
	if n <= 0 || len(lines) <= n {
		return lines, false
	}
	lines = lines[:n]
	last := runewidth.Truncate(lines[n-1], width-1, "")
	lines[n-1] = last + "…"
	return lines, true
}

// wrapText word-wraps text to width, returning one string per line.
func wrapText(text string, width int) []string {
	if width < 1 {
		width = 1
	}
	wrapped := lipgloss.NewStyle().Width(width).Render(text)
	lines := strings.Split(wrapped, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimRight(l, " ")
	}
	return lines
}

// renderStatusBar renders the bottom bar with left-aligned status text and
// right-aligned key hints.
func renderStatusBar(status, hints string, width int) string {
	inner := width - StatusBar.GetHorizontalPadding()
	padding := inner - lipgloss.Width(status) - lipgloss.Width(hints)
	if padding < 1 {
		padding = 1
	}
	bar := status + strings.Repeat(" ", padding) + hints
	return StatusBar.Width(width).MaxHeight(1).Render(bar)
}
