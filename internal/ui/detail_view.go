package ui

import (
	"strings"

	"github.com/abelbrown/bookfinder/internal/catalog"
	"github.com/abelbrown/bookfinder/internal/logging"
	"github.com/abelbrown/bookfinder/internal/route"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const maxBodyWidth = 80

// DetailView shows one book. It stays in the loading state until its
// lookup succeeds; a failed lookup is logged and the spinner keeps going.
type DetailView struct {
	id     int
	bookID string
	load   func(viewID int, bookID string) tea.Cmd

	entry    *catalog.Entry
	expanded bool

	threshold  int
	clampLines int

	spinner  spinner.Model
	viewport viewport.Model
	width    int
	height   int
}

// NewDetailView creates an unmounted detail view for bookID.
func NewDetailView(id int, bookID string, load func(viewID int, bookID string) tea.Cmd, threshold, clampLines int) *DetailView {
	return &DetailView{
		id:         id,
		bookID:     bookID,
		load:       load,
		threshold:  threshold,
		clampLines: clampLines,
		spinner: spinner.New(
			spinner.WithSpinner(spinner.Dot),
			spinner.WithStyle(lipgloss.NewStyle().Foreground(colorHighlight)),
		),
		viewport: viewport.New(0, 0),
	}
}

func (v *DetailView) MountID() int { return v.id }

// Init starts the spinner and the volume lookup.
func (v *DetailView) Init() tea.Cmd {
	if v.load == nil {
		return v.spinner.Tick
	}
	return tea.Batch(v.spinner.Tick, v.load(v.id, v.bookID))
}

func (v *DetailView) SetSize(width, height int) {
	v.width = width
	v.height = height
	v.viewport.Width = width
	v.viewport.Height = max(height-1, 1)
	v.refresh()
}

func (v *DetailView) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case VolumeLoaded:
		if msg.Err != nil {
			logging.Error("Error fetching book details", "view", v.id, "id", v.bookID, "err", msg.Err)
			return nil
		}
		e := msg.Entry
		v.entry = &e
		v.refresh()
		return nil

	case spinner.TickMsg:
		if v.entry != nil {
			return nil
		}
		var cmd tea.Cmd
		v.spinner, cmd = v.spinner.Update(msg)
		return cmd

	case tea.KeyMsg:
		return v.handleKey(msg)
	}
	return nil
}

func (v *DetailView) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, detailKeys.Quit):
		return tea.Quit

	case key.Matches(msg, detailKeys.Back):
		return func() tea.Msg { return Back{} }

	case key.Matches(msg, detailKeys.Home):
		return func() tea.Msg { return Navigate{Route: route.Home} }

	case key.Matches(msg, detailKeys.Toggle):
		if v.ToggleVisible() {
			v.expanded = !v.expanded
			v.refresh()
		}
		return nil

	case key.Matches(msg, detailKeys.Up, detailKeys.Down, detailKeys.PageUp, detailKeys.PageDown):
		var cmd tea.Cmd
		v.viewport, cmd = v.viewport.Update(msg)
		return cmd
	}
	return nil
}

// Loading reports whether the lookup has not succeeded yet.
func (v *DetailView) Loading() bool { return v.entry == nil }

// Expanded reports whether the full description is shown.
func (v *DetailView) Expanded() bool { return v.expanded }

// BookID returns the identifier from the route.
func (v *DetailView) BookID() string { return v.bookID }

// Description returns the stripped description or its placeholder.
func (v *DetailView) Description() string {
	if v.entry == nil {
		return ""
	}
	return v.entry.PlainDescription()
}

// ToggleVisible reports whether the Read More control is offered.
func (v *DetailView) ToggleVisible() bool {
	if v.entry == nil {
		return false
	}
	return catalog.NeedsToggle(v.entry.PlainDescription(), v.threshold)
}

func (v *DetailView) refresh() {
	if v.entry == nil {
		return
	}
	v.viewport.SetContent(v.renderBody())
}

func (v *DetailView) bodyWidth() int {
	w := v.width - 4
	if w > maxBodyWidth {
		w = maxBodyWidth
	}
	if w < 20 {
		w = 20
	}
	return w
}

func (v *DetailView) renderBody() string {
	e := v.entry
	width := v.bodyWidth()

	field := func(label, value string) string {
		return FieldLabel.Render(label+":") + " " + value
	}

	lines := []string{
		DetailTitle.Width(width).Render(e.Title),
		field("Authors", e.AuthorLine()),
		field("Publisher", e.PublisherOrNA()),
		field("Published Date", e.PublishedOrNA()),
		field("Page Count", e.PageCountOrNA()),
		field("Cover", LinkText.Render(e.ThumbnailOr(catalog.DetailPlaceholder))),
		"",
		FieldLabel.Render("Description"),
	}

	desc := e.PlainDescription()
	if v.expanded {
		lines = append(lines, wrapText(desc, width)...)
	} else {
		clamped, _ := clampText(desc, width, v.clampLines)
		lines = append(lines, clamped...)
	}

	if v.ToggleVisible() {
		label := "Read More"
		if v.expanded {
			label = "Show Less"
		}
		lines = append(lines, "", ToggleStyle.Render("["+label+"]"))
	}

	return lipgloss.NewStyle().PaddingLeft(2).Render(strings.Join(lines, "\n"))
}

func (v *DetailView) View() string {
	var body string
	if v.entry == nil {
		body = "\n  " + v.spinner.View() + " Loading..."
		if pad := v.height - 1 - lipgloss.Height(body); pad > 0 {
			body += strings.Repeat("\n", pad)
		}
	} else {
		body = v.viewport.View()
	}

	bindings := []key.Binding{detailKeys.Back, detailKeys.Home, detailKeys.Quit}
	if v.ToggleVisible() {
		bindings = append([]key.Binding{detailKeys.Toggle}, bindings...)
	}
	if v.entry != nil && !v.viewport.AtBottom() {
		bindings = append(bindings, detailKeys.Up)
	}
	status := ""
	if v.entry == nil {
		status = "Loading " + v.bookID
	}
	return body + "\n" + renderStatusBar(status, helpLine(v.width, bindings...), v.width)
}
