package ui

import "github.com/charmbracelet/lipgloss"

// Colors used in the application.
var (
	colorPrimary   = lipgloss.Color("62")  // Purple
	colorSecondary = lipgloss.Color("241") // Gray
	colorMuted     = lipgloss.Color("240") // Darker gray
	colorHighlight = lipgloss.Color("212") // Pink
	colorLink      = lipgloss.Color("39")  // Blue
)

// Header style for the top bar.
var Header = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("255")).
	Background(colorPrimary).
	Padding(0, 1)

// HeaderPath style for the current route shown in the header.
var HeaderPath = lipgloss.NewStyle().
	Foreground(lipgloss.Color("250")).
	Background(colorPrimary)

// Heading style for the catalog title block.
var Heading = lipgloss.NewStyle().
	Bold(true).
	Foreground(colorLink)

// Subheading style for the line under the heading.
var Subheading = lipgloss.NewStyle().
	Foreground(lipgloss.Color("255"))

// SearchBox style for the query input.
var SearchBox = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(colorSecondary).
	Padding(0, 1)

// SearchBoxFocused style for the query input while it has focus.
var SearchBoxFocused = SearchBox.
	BorderForeground(colorLink)

// SearchButton style for the enabled search action.
var SearchButton = lipgloss.NewStyle().
	Foreground(lipgloss.Color("255")).
	Background(colorLink).
	Padding(0, 1)

// SearchButtonDisabled style for the search action while the query is blank.
var SearchButtonDisabled = lipgloss.NewStyle().
	Foreground(colorMuted).
	Background(lipgloss.Color("236")).
	Padding(0, 1)

// ClearButton style for the clear control.
var ClearButton = lipgloss.NewStyle().
	Foreground(lipgloss.Color("203")).
	Padding(0, 1)

// Suggestions style for the suggestion dropdown.
var Suggestions = lipgloss.NewStyle().
	Border(lipgloss.NormalBorder()).
	BorderForeground(colorSecondary)

// SuggestionTitle style for a suggestion's title.
var SuggestionTitle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("255")).
	Bold(true).
	Padding(0, 1)

// SuggestionAuthors style for a suggestion's author line.
var SuggestionAuthors = lipgloss.NewStyle().
	Foreground(colorSecondary).
	Padding(0, 1)

// SuggestionSelected style for the highlighted suggestion.
var SuggestionSelected = lipgloss.NewStyle().
	Background(lipgloss.Color("24"))

// Card style for a book in the grid.
var Card = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(colorMuted).
	Padding(0, 1).
	MarginRight(1)

// CardSelected style for the grid cursor.
var CardSelected = Card.
	BorderForeground(colorHighlight)

// CardTitle style for the title inside a card.
var CardTitle = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("255"))

// MetaText style for authors, dates and other secondary text.
var MetaText = lipgloss.NewStyle().
	Foreground(colorSecondary)

// LinkText style for URLs.
var LinkText = lipgloss.NewStyle().
	Foreground(colorLink).
	Underline(true)

// DetailTitle style for the title on the detail view.
var DetailTitle = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("255")).
	MarginBottom(1)

// FieldLabel style for "Authors:", "Publisher:" and the like.
var FieldLabel = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("250"))

// ToggleStyle for the Read More / Show Less control.
var ToggleStyle = lipgloss.NewStyle().
	Foreground(colorLink)

// StatusBar style for the bottom status bar.
var StatusBar = lipgloss.NewStyle().
	Foreground(lipgloss.Color("255")).
	Background(lipgloss.Color("236")).
	Padding(0, 1)

// HelpStyle for empty-state and loading text.
var HelpStyle = lipgloss.NewStyle().
	Foreground(colorMuted).
	Padding(1, 2)

// DebugPanel style for the activity overlay.
var DebugPanel = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(colorPrimary).
	Padding(1, 2)

// DebugHeaderStyle for section headers inside the overlay.
var DebugHeaderStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(colorHighlight)
