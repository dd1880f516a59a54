package ui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
)

type catalogKeyMap struct {
	Up        key.Binding
	Down      key.Binding
	Left      key.Binding
	Right     key.Binding
	Enter     key.Binding
	Clear     key.Binding
	Focus     key.Binding
	Quit      key.Binding
	ForceQuit key.Binding
}

var catalogKeys = catalogKeyMap{
	Up:        key.NewBinding(key.WithKeys("up", "ctrl+p"), key.WithHelp("↑", "up")),
	Down:      key.NewBinding(key.WithKeys("down", "ctrl+n"), key.WithHelp("↓", "down")),
	Left:      key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←", "left")),
	Right:     key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→", "right")),
	Enter:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
	Clear:     key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "clear")),
	Focus:     key.NewBinding(key.WithKeys("tab", "shift+tab"), key.WithHelp("tab", "grid/search")),
	Quit:      key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
	ForceQuit: key.NewBinding(key.WithKeys("ctrl+c")),
}

type detailKeyMap struct {
	Toggle   key.Binding
	Back     key.Binding
	Home     key.Binding
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Quit     key.Binding
}

var detailKeys = detailKeyMap{
	Toggle:   key.NewBinding(key.WithKeys("enter", " ", "space"), key.WithHelp("enter", "read more")),
	Back:     key.NewBinding(key.WithKeys("esc", "backspace", "b"), key.WithHelp("esc", "back")),
	Home:     key.NewBinding(key.WithKeys("h"), key.WithHelp("h", "home")),
	Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "scroll")),
	Down:     key.NewBinding(key.WithKeys("down", "j")),
	PageUp:   key.NewBinding(key.WithKeys("pgup", "ctrl+u")),
	PageDown: key.NewBinding(key.WithKeys("pgdown", "ctrl+d")),
	Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

var debugKey = key.NewBinding(key.WithKeys("ctrl+o"), key.WithHelp("ctrl+o", "activity"))

// helpLine renders key hints for the status bar.
func helpLine(width int, bindings ...key.Binding) string {
	h := help.New()
	h.Width = width
	return h.ShortHelpView(bindings)
}
