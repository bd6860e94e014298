package ui

import (
	"slices"

	"github.com/abelbrown/cupid/internal/catalog"
	"github.com/abelbrown/cupid/internal/engine"
	"github.com/abelbrown/cupid/internal/filter"
	"github.com/abelbrown/cupid/internal/logging"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// AppConfig wires the App to the outside world.
type AppConfig struct {
	Reducer engine.Reducer
	// State is the starting state, usually hydrated with the owned ids.
	State engine.State

	// LoadCatalog returns a Cmd that loads the catalog and replies with CatalogLoaded.
	LoadCatalog func() tea.Cmd
	// SaveOwned returns a Cmd that persists ids and replies with OwnedSaved.
	SaveOwned func(ids []int) tea.Cmd

	BrowseLimit int
	SearchLimit int
}

// App is the root Bubble Tea model.
// IMPORTANT: App does NOT hold the store. Loads and saves go through the
// injected commands and come back as messages.
type App struct {
	reducer engine.Reducer
	state   engine.State

	loadCatalog func() tea.Cmd
	saveOwned   func(ids []int) tea.Cmd

	browseLimit int
	searchLimit int

	search    textinput.Model
	searching bool
	spinner   spinner.Model
	help      help.Model

	cursor int
	status string
	width  int
	height int
	ready  bool
}

// NewApp creates a new App. When a catalog loader is wired the App starts in
// the loading state.
func NewApp(cfg AppConfig) App {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = Label

	ti := textinput.New()
	ti.Prompt = "/"
	ti.Placeholder = "search games"
	ti.CharLimit = 60
	ti.Width = 40

	if cfg.BrowseLimit <= 0 {
		cfg.BrowseLimit = filter.DefaultBrowseLimit
	}
	if cfg.SearchLimit <= 0 {
		cfg.SearchLimit = filter.DefaultQueryLimit
	}

	a := App{
		reducer:     cfg.Reducer,
		state:       cfg.State,
		loadCatalog: cfg.LoadCatalog,
		saveOwned:   cfg.SaveOwned,
		browseLimit: cfg.BrowseLimit,
		searchLimit: cfg.SearchLimit,
		search:      ti,
		spinner:     s,
		help:        help.New(),
	}
	if a.loadCatalog != nil {
		a.state = a.reducer.Reduce(a.state, engine.LoadStarted{})
	}
	return a
}

// Init starts the catalog load.
func (a App) Init() tea.Cmd {
	if a.loadCatalog == nil {
		return nil
	}
	return tea.Batch(a.spinner.Tick, a.loadCatalog())
}

// Update handles messages and returns the updated model and any commands.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return a.handleKeyMsg(msg)

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.help.Width = msg.Width
		a.ready = true
		return a, nil

	case spinner.TickMsg:
		if !a.state.Loading() {
			return a, nil
		}
		var cmd tea.Cmd
		a.spinner, cmd = a.spinner.Update(msg)
		return a, cmd

	case CatalogLoaded:
		if msg.Err != nil {
			logging.Warn("catalog load failed", "err", msg.Err)
			return a.dispatch(engine.LoadFailed{Err: msg.Err})
		}
		logging.Info("catalog loaded", "games", len(msg.Items))
		next, cmd := a.dispatch(engine.LoadSucceeded{Items: msg.Items})
		next.clampCursor()
		return next, cmd

	case OwnedSaved:
		logging.Debug("owned saved", "count", msg.Count)
		return a, nil
	}

	return a, nil
}

// dispatch runs an action through the reducer and schedules a save when the
// owned selection changed.
func (a App) dispatch(action engine.Action) (App, tea.Cmd) {
	before := a.state.Owned().IDs()
	a.state = a.reducer.Reduce(a.state, action)
	logging.Debug("action", "name", action.Name(), "phase", a.state.Phase())

	after := a.state.Owned().IDs()
	if a.saveOwned == nil || slices.Equal(before, after) {
		return a, nil
	}
	return a, a.saveOwned(after)
}

func (a App) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	a.status = ""

	switch a.state.Phase() {
	case engine.PhaseCollection:
		if a.searching {
			return a.handleSearchKey(msg)
		}
		return a.handleCollectionKey(msg)
	case engine.PhaseFeed:
		return a.handlePhaseKey(msg, []phaseBinding{
			{keys.Like, engine.Like{}},
			{keys.Reject, engine.Reject{}},
			{keys.Back, engine.Back{}},
		})
	case engine.PhaseTournament:
		return a.handlePhaseKey(msg, []phaseBinding{
			{keys.Keep, engine.KeepWinner{}},
			{keys.Replace, engine.ReplaceWinner{}},
			{keys.Back, engine.Back{}},
		})
	case engine.PhaseResult:
		return a.handlePhaseKey(msg, []phaseBinding{
			{keys.Reset, engine.Reset{}},
			{keys.Back, engine.Back{}},
		})
	}
	return a, nil
}

type phaseBinding struct {
	binding key.Binding
	action  engine.Action
}

func (a App) handlePhaseKey(msg tea.KeyMsg, bindings []phaseBinding) (tea.Model, tea.Cmd) {
	if key.Matches(msg, keys.Quit) {
		return a, tea.Quit
	}
	for _, b := range bindings {
		if key.Matches(msg, b.binding) {
			next, cmd := a.dispatch(b.action)
			if next.state.Phase() == engine.PhaseCollection {
				next.clampCursor()
			}
			return next, cmd
		}
	}
	return a, nil
}

func (a App) handleCollectionKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Quit):
		return a, tea.Quit

	case key.Matches(msg, keys.Up):
		a.moveCursor(-1)
		return a, nil

	case key.Matches(msg, keys.Down):
		a.moveCursor(1)
		return a, nil

	case key.Matches(msg, keys.Toggle):
		return a.toggleCurrent()

	case key.Matches(msg, keys.Search):
		a.searching = true
		cmd := a.search.Focus()
		return a, cmd

	case key.Matches(msg, keys.LeaveSearch):
		a.clearSearch()
		return a, nil

	case key.Matches(msg, keys.Clear):
		return a.dispatch(engine.ClearOwned{})

	case key.Matches(msg, keys.Start):
		if !a.state.CanStart() {
			a.status = "Mark at least one game you own first."
			return a, nil
		}
		return a.dispatch(engine.Start{})

	case key.Matches(msg, keys.Reload):
		if a.state.Loading() || a.loadCatalog == nil {
			return a, nil
		}
		next, _ := a.dispatch(engine.LoadStarted{})
		return next, tea.Batch(next.spinner.Tick, next.loadCatalog())
	}
	return a, nil
}

func (a App) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, searchKeys.Quit):
		return a, tea.Quit
	case key.Matches(msg, keys.LeaveSearch):
		a.clearSearch()
		return a, nil
	case key.Matches(msg, searchKeys.Up):
		a.moveCursor(-1)
		return a, nil
	case key.Matches(msg, searchKeys.Down):
		a.moveCursor(1)
		return a, nil
	case key.Matches(msg, searchKeys.Toggle):
		return a.toggleCurrent()
	}

	before := a.search.Value()
	var cmd tea.Cmd
	a.search, cmd = a.search.Update(msg)
	if a.search.Value() != before {
		a.cursor = 0
	}
	return a, cmd
}

func (a App) toggleCurrent() (tea.Model, tea.Cmd) {
	visible := a.Visible()
	if a.cursor < 0 || a.cursor >= len(visible) {
		return a, nil
	}
	return a.dispatch(engine.ToggleOwned{ID: visible[a.cursor].ID})
}

func (a *App) clearSearch() {
	a.searching = false
	a.search.Blur()
	a.search.SetValue("")
	a.cursor = 0
}

func (a *App) moveCursor(delta int) {
	a.cursor += delta
	a.clampCursor()
}

func (a *App) clampCursor() {
	n := len(a.Visible())
	if a.cursor >= n {
		a.cursor = n - 1
	}
	if a.cursor < 0 {
		a.cursor = 0
	}
}

// Visible returns the catalog rows shown in the collection list.
func (a App) Visible() []catalog.Item {
	return filter.View(a.state.Catalog(), a.search.Value(), a.browseLimit, a.searchLimit)
}

// State returns the engine state (for testing).
func (a App) State() engine.State {
	return a.state
}

// Cursor returns the current cursor position (for testing).
func (a App) Cursor() int {
	return a.cursor
}

// Searching reports whether the search box has focus.
func (a App) Searching() bool {
	return a.searching
}

// Query returns the current search text.
func (a App) Query() string {
	return a.search.Value()
}

// Status returns the transient hint shown above the help line.
func (a App) Status() string {
	return a.status
}
