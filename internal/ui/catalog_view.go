package ui

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/abelbrown/bookfinder/internal/catalog"
	"github.com/abelbrown/bookfinder/internal/filter"
	"github.com/abelbrown/bookfinder/internal/logging"
	"github.com/abelbrown/bookfinder/internal/route"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

type catalogFocus int

const (
	focusInput catalogFocus = iota
	focusGrid
)

// CatalogView shows a random handful of books, live suggestions while the
// user types, and search results. All state belongs to one mounted
// instance and is rebuilt on every mount.
type CatalogView struct {
	id       int
	load     func(viewID int) tea.Cmd
	rng      *rand.Rand
	gridSize int
	maxSugg  int

	input       textinput.Model
	entries     []catalog.Entry      // full batch, never modified
	shown       []catalog.Entry      // displayed subset of entries
	suggestions []catalog.Suggestion // at most maxSugg, unique titles

	suggCursor int // -1 when no suggestion is highlighted
	gridCursor int
	focus      catalogFocus
	loading    bool

	width  int
	height int
}

// NewCatalogView creates an unmounted catalog view. load returns the
// command that fetches the batch for the given mount ID.
func NewCatalogView(id int, load func(viewID int) tea.Cmd, rng *rand.Rand, gridSize, suggestionLimit int) *CatalogView {
	ti := textinput.New()
	ti.Placeholder = "Enter your book name..."
	ti.Prompt = "> "
	ti.PromptStyle = lipgloss.NewStyle().Foreground(colorLink).Bold(true)
	ti.CharLimit = 120
	ti.Width = 40

	return &CatalogView{
		id:         id,
		load:       load,
		rng:        rng,
		gridSize:   gridSize,
		maxSugg:    suggestionLimit,
		input:      ti,
		suggCursor: -1,
	}
}

// MountID returns the instance ID fetch results are addressed to.
func (v *CatalogView) MountID() int { return v.id }

// Init focuses the input and starts the batch fetch.
func (v *CatalogView) Init() tea.Cmd {
	focus := v.input.Focus()
	if v.load == nil {
		return focus
	}
	v.loading = true
	return tea.Batch(focus, v.load(v.id))
}

// SetSize updates the view dimensions.
func (v *CatalogView) SetSize(width, height int) {
	v.width = width
	v.height = height
	w := width - 30
	if w > 60 {
		w = 60
	}
	if w < 10 {
		w = 10
	}
	v.input.Width = w
}

// Update handles messages addressed to this view.
func (v *CatalogView) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case CatalogLoaded:
		v.loading = false
		if msg.Err != nil {
			logging.Error("Error fetching books", "view", v.id, "err", msg.Err)
			return nil
		}
		v.entries = msg.Entries
		v.shown = filter.Sample(v.entries, v.gridSize, v.rng)
		v.gridCursor = 0
		logging.Debug("Catalog batch loaded", "view", v.id, "count", len(v.entries))
		return nil

	case tea.KeyMsg:
		if v.focus == focusGrid {
			return v.handleGridKey(msg)
		}
		return v.handleInputKey(msg)
	}

	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	return cmd
}

func (v *CatalogView) handleInputKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, catalogKeys.Clear):
		if v.Query() != "" {
			v.Clear()
		}
		return nil

	case key.Matches(msg, catalogKeys.Down):
		if v.suggCursor < len(v.suggestions)-1 {
			v.suggCursor++
		}
		return nil

	case key.Matches(msg, catalogKeys.Up):
		if v.suggCursor >= 0 {
			v.suggCursor--
		}
		return nil

	case key.Matches(msg, catalogKeys.Enter):
		if v.suggCursor >= 0 && v.suggCursor < len(v.suggestions) {
			v.SelectSuggestion(v.suggestions[v.suggCursor].Title)
			return nil
		}
		v.Submit()
		return nil

	case key.Matches(msg, catalogKeys.Focus):
		if len(v.shown) > 0 {
			v.focus = focusGrid
			v.input.Blur()
		}
		return nil
	}

	before := v.input.Value()
	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	if after := v.input.Value(); after != before {
		v.SetQuery(after)
	}
	return cmd
}

func (v *CatalogView) handleGridKey(msg tea.KeyMsg) tea.Cmd {
	cols := gridColumns(v.width)
	last := len(v.shown) - 1

	switch {
	case key.Matches(msg, catalogKeys.Quit):
		return tea.Quit

	case key.Matches(msg, catalogKeys.Focus), key.Matches(msg, catalogKeys.Clear):
		v.focus = focusInput
		return v.input.Focus()

	case key.Matches(msg, catalogKeys.Left):
		if v.gridCursor > 0 {
			v.gridCursor--
		}
	case key.Matches(msg, catalogKeys.Right):
		if v.gridCursor < last {
			v.gridCursor++
		}
	case key.Matches(msg, catalogKeys.Up):
		if v.gridCursor-cols >= 0 {
			v.gridCursor -= cols
		}
	case key.Matches(msg, catalogKeys.Down):
		if v.gridCursor+cols <= last {
			v.gridCursor += cols
		}

	case key.Matches(msg, catalogKeys.Enter):
		return v.Open()
	}
	return nil
}

// SetQuery applies a new input value. A blank value clears suggestions and
// reshuffles the grid; anything else recomputes suggestions and leaves the
// grid alone until the user searches or picks a suggestion.
func (v *CatalogView) SetQuery(value string) {
	if v.input.Value() != value {
		v.input.SetValue(value)
	}
	v.suggCursor = -1

	if filter.Blank(value) {
		v.suggestions = nil
		v.showRandom()
		return
	}
	v.suggestions = filter.Suggest(v.entries, value, v.maxSugg)
}

// SelectSuggestion puts title in the input and shows every entry with that
// title.
func (v *CatalogView) SelectSuggestion(title string) {
	v.input.SetValue(title)
	v.input.CursorEnd()
	v.suggestions = nil
	v.suggCursor = -1
	v.setShown(filter.ByTitle(v.entries, title))
}

// Submit shows every entry whose title or authors contain the query.
// Does nothing while the query is blank.
func (v *CatalogView) Submit() {
	q := v.input.Value()
	if filter.Blank(q) {
		return
	}
	v.setShown(filter.Search(v.entries, q))
	v.suggestions = nil
	v.suggCursor = -1
	logging.Debug("Catalog search", "view", v.id, "query", q, "matches", len(v.shown))
}

// Clear empties the query and shows a fresh random handful.
func (v *CatalogView) Clear() {
	v.input.SetValue("")
	v.suggestions = nil
	v.suggCursor = -1
	v.showRandom()
}

// Open navigates to the detail route of the entry under the grid cursor.
func (v *CatalogView) Open() tea.Cmd {
	if v.gridCursor < 0 || v.gridCursor >= len(v.shown) {
		return nil
	}
	r := route.Book(v.shown[v.gridCursor].ID)
	return func() tea.Msg { return Navigate{Route: r} }
}

func (v *CatalogView) showRandom() {
	v.setShown(filter.Sample(v.entries, v.gridSize, v.rng))
}

func (v *CatalogView) setShown(entries []catalog.Entry) {
	v.shown = entries
	v.gridCursor = 0
	if len(entries) == 0 && v.focus == focusGrid {
		v.focus = focusInput
		v.input.Focus()
	}
}

// Query returns the current input text.
func (v *CatalogView) Query() string { return v.input.Value() }

// Entries returns the full batch.
func (v *CatalogView) Entries() []catalog.Entry { return v.entries }

// Shown returns the displayed entries.
func (v *CatalogView) Shown() []catalog.Entry { return v.shown }

// Suggestions returns the current suggestion list.
func (v *CatalogView) Suggestions() []catalog.Suggestion { return v.suggestions }

// GridFocused reports whether the grid has keyboard focus.
func (v *CatalogView) GridFocused() bool { return v.focus == focusGrid }

// View renders the catalog.
func (v *CatalogView) View() string {
	var sections []string

	heading := lipgloss.JoinVertical(lipgloss.Center,
		Heading.Render("BookFinder"),
		Subheading.Render("Find Your Book"),
	)
	sections = append(sections, lipgloss.PlaceHorizontal(v.width, lipgloss.Center, heading))
	sections = append(sections, lipgloss.PlaceHorizontal(v.width, lipgloss.Center, v.renderSearchBar()))

	if len(v.suggestions) > 0 {
		sections = append(sections, lipgloss.PlaceHorizontal(v.width, lipgloss.Center, v.renderSuggestions()))
	}

	used := lipgloss.Height(strings.Join(sections, "\n")) + 1 // status bar
	gridHeight := v.height - used
	if v.loading {
		sections = append(sections, HelpStyle.Render("Loading..."))
	} else {
		sections = append(sections, RenderGrid(v.shown, v.gridCursor, v.focus == focusGrid, v.width, gridHeight))
	}

	body := lipgloss.JoinVertical(lipgloss.Left, sections...)
	if pad := v.height - 1 - lipgloss.Height(body); pad > 0 {
		body += strings.Repeat("\n", pad)
	}
	return body + "\n" + v.renderStatus()
}

func (v *CatalogView) renderSearchBar() string {
	box := SearchBox
	if v.focus == focusInput {
		box = SearchBoxFocused
	}
	parts := []string{box.Render(v.input.View())}

	// The clear control only makes sense with something to clear.
	if v.Query() != "" {
		parts = append(parts, ClearButton.Render("X"))
	}
	if filter.Blank(v.Query()) {
		parts = append(parts, SearchButtonDisabled.Render("Search"))
	} else {
		parts = append(parts, SearchButton.Render("Search"))
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, parts...)
}

func (v *CatalogView) renderSuggestions() string {
	rowWidth := v.input.Width + 4
	rows := make([]string, 0, len(v.suggestions))
	for i, s := range v.suggestions {
		row := lipgloss.JoinVertical(lipgloss.Left,
			SuggestionTitle.Render(runewidth.Truncate(s.Title, rowWidth-2, "…")),
			SuggestionAuthors.Render(runewidth.Truncate(s.Authors, rowWidth-2, "…")),
		)
		row = lipgloss.NewStyle().Width(rowWidth).Render(row)
		if i == v.suggCursor {
			row = SuggestionSelected.Render(row)
		}
		rows = append(rows, row)
	}
	return Suggestions.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func (v *CatalogView) renderStatus() string {
	var status string
	switch {
	case v.loading:
		status = "Loading catalog..."
	case len(v.entries) > 0:
		status = fmt.Sprintf("%d of %d books", len(v.shown), len(v.entries))
	}

	var hints string
	if v.focus == focusGrid {
		hints = helpLine(v.width, catalogKeys.Up, catalogKeys.Enter, catalogKeys.Focus, catalogKeys.Quit)
	} else {
		hints = helpLine(v.width, catalogKeys.Down, catalogKeys.Enter, catalogKeys.Clear, catalogKeys.Focus)
	}
	return renderStatusBar(status, hints, v.width)
}
