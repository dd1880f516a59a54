package ui

import (
	"math/rand"
	"time"

	"github.com/abelbrown/bookfinder/internal/activity"
	"github.com/abelbrown/bookfinder/internal/logging"
	"github.com/abelbrown/bookfinder/internal/route"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// screen is a mounted view instance. Views are pointers so the App can keep
// a preserved instance on the stack while another one is shown.
type screen interface {
	MountID() int
	Init() tea.Cmd
	Update(msg tea.Msg) tea.Cmd
	View() string
	SetSize(width, height int)
}

// AppConfig carries the command constructors and UI settings for NewApp.
// LoadCatalog and LoadVolume return commands that perform the fetch and
// report back with a CatalogLoaded or VolumeLoaded addressed to viewID.
type AppConfig struct {
	LoadCatalog func(viewID int) tea.Cmd
	LoadVolume  func(viewID int, bookID string) tea.Cmd

	GridSize        int
	SuggestionLimit int
	ToggleThreshold int
	ClampLines      int

	Rand     *rand.Rand
	Start    route.Route
	Activity *activity.Ring // optional; NewApp creates one when nil
}

// App is the root Bubble Tea model.
// IMPORTANT: App does NOT do I/O. Fetches happen in the commands it is given
// and results come back as messages carrying the requesting view's mount ID.
type App struct {
	cfg     AppConfig
	history *route.History
	stack   []screen // one live view per history entry
	nextID  int
	events  *activity.Ring
	debug   bool

	width  int
	height int
	ready  bool
}

// NewApp creates an App showing cfg.Start.
func NewApp(cfg AppConfig) App {
	if cfg.Rand == nil {
		cfg.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if cfg.GridSize <= 0 {
		cfg.GridSize = 4
	}
	if cfg.SuggestionLimit <= 0 {
		cfg.SuggestionLimit = 5
	}
	if cfg.ToggleThreshold <= 0 {
		cfg.ToggleThreshold = 80
	}
	if cfg.ClampLines <= 0 {
		cfg.ClampLines = 3
	}
	if cfg.Activity == nil {
		cfg.Activity = activity.NewRing(activity.DefaultSize)
	}

	a := App{
		cfg:     cfg,
		history: route.NewHistory(cfg.Start),
		events:  cfg.Activity,
	}
	a.stack = []screen{a.mount(cfg.Start)}
	return a
}

// Init starts the first view.
func (a App) Init() tea.Cmd {
	return a.top().Init()
}

// Update handles messages and returns the updated model and any commands.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.ready = true
		for _, s := range a.stack {
			s.SetSize(a.width, a.contentHeight())
		}
		return a, nil

	case tea.KeyMsg:
		switch {
		case msg.String() == "ctrl+c":
			return a, tea.Quit
		case key.Matches(msg, debugKey):
			a.debug = !a.debug
			return a, nil
		case a.debug:
			return a, nil
		}
		return a, a.top().Update(msg)

	case CatalogLoaded, VolumeLoaded:
		ev, _ := resultEvent(msg)
		s := a.find(ev.View)
		if s == nil {
			ev.Kind = activity.KindDropped
			a.events.Push(ev)
			logging.Debug("Dropping result for unmounted view", "view", ev.View)
			return a, nil
		}
		a.events.Push(ev)
		return a, s.Update(msg)

	case Navigate:
		return a.push(msg.Route)

	case Back:
		if !a.history.Back() {
			return a, nil
		}
		popped := a.top().MountID()
		a.stack = a.stack[:len(a.stack)-1]
		a.events.Push(activity.Event{Kind: activity.KindBack, View: popped, Route: a.history.Current().Path()})
		logging.Debug("Navigated back", "route", a.history.Current())
		return a, nil

	case spinner.TickMsg:
		// Ticks are filtered by spinner ID inside each view.
		var cmds []tea.Cmd
		for _, s := range a.stack {
			cmds = append(cmds, s.Update(msg))
		}
		return a, tea.Batch(cmds...)
	}

	return a, a.top().Update(msg)
}

func (a App) push(r route.Route) (tea.Model, tea.Cmd) {
	a.history.Push(r)
	s := a.mount(r)
	a.stack = append(a.stack, s)
	a.events.Push(activity.Event{Kind: activity.KindNavigate, View: s.MountID(), Route: r.Path()})
	logging.Debug("Navigated", "route", r, "view", s.MountID())
	return a, s.Init()
}

// mount creates a fresh view for r with a new mount ID.
func (a *App) mount(r route.Route) screen {
	a.nextID++
	var s screen
	switch r.Kind {
	case route.KindDetail:
		s = NewDetailView(a.nextID, r.ID, a.cfg.LoadVolume, a.cfg.ToggleThreshold, a.cfg.ClampLines)
	default:
		s = NewCatalogView(a.nextID, a.cfg.LoadCatalog, a.cfg.Rand, a.cfg.GridSize, a.cfg.SuggestionLimit)
	}
	if a.ready {
		s.SetSize(a.width, a.contentHeight())
	}
	return s
}

func (a App) find(id int) screen {
	for _, s := range a.stack {
		if s.MountID() == id {
			return s
		}
	}
	return nil
}

func (a App) top() screen {
	return a.stack[len(a.stack)-1]
}

func (a App) contentHeight() int {
	return max(a.height-1, 1)
}

// View renders the header and the current view.
func (a App) View() string {
	if !a.ready {
		return "Loading..."
	}
	header := Header.Width(a.width).Render("BookFinder " + HeaderPath.Render(a.history.Current().Path()))
	if a.debug {
		overlay := debugOverlay(a.events, a.width, a.contentHeight()-1)
		body := lipgloss.Place(a.width, a.contentHeight()-1, lipgloss.Center, lipgloss.Center, overlay)
		return header + "\n" + body + "\n" + debugStatusBar(a.width)
	}
	return header + "\n" + a.top().View()
}

// Route returns the current route (for testing).
func (a App) Route() route.Route {
	return a.history.Current()
}

// Depth returns the number of live views (for testing).
func (a App) Depth() int {
	return len(a.stack)
}

// Activity returns the activity ring (for testing).
func (a App) Activity() *activity.Ring {
	return a.events
}

// DebugVisible reports whether the activity overlay is shown (for testing).
func (a App) DebugVisible() bool {
	return a.debug
}

// Catalog returns the current view if it is a catalog view (for testing).
func (a App) Catalog() *CatalogView {
	c, _ := a.top().(*CatalogView)
	return c
}

// Detail returns the current view if it is a detail view (for testing).
func (a App) Detail() *DetailView {
	d, _ := a.top().(*DetailView)
	return d
}
