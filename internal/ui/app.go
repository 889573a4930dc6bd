package ui

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/pupbowl/kennel/internal/config"
	"github.com/pupbowl/kennel/internal/logtail"
	"github.com/pupbowl/kennel/internal/prefs"
	"github.com/pupbowl/kennel/internal/pupbowl"
	"github.com/pupbowl/kennel/internal/state"
)

// View represents the current active view.
type View int

const (
	ViewRoster View = iota
	ViewDetail
	ViewLogs
)

// requestTimeout bounds every API call issued from the UI, on top of the
// client's own HTTP timeout.
const requestTimeout = 10 * time.Second

// Options configures the UI.
type Options struct {
	Context   context.Context
	API       pupbowl.API
	Store     *state.Store
	Config    *config.Config
	PollEvery time.Duration
	ThemeName string
	PrefsPath string
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx       context.Context
	api       pupbowl.API
	store     *state.Store
	config    *config.Config
	prefsPath string
	pollEvery time.Duration

	// UI state
	keys        keyMap
	theme       Theme
	currentView View
	width       int
	height      int
	ready       bool

	// Data state
	snapshot    state.Snapshot
	lastUpdated time.Time
	refreshing  bool
	notice      string

	// Roster state
	selectedRow int
	search      searchState

	// Detail state
	detailViewport viewport.Model
	detail         detailState

	// Diagnostics state
	logViewport viewport.Model
	diag        diagState

	// Help overlay
	showHelp bool

	// Add-player form modal
	showForm     bool
	formInputs   [4]textinput.Model
	formFocusIdx int
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	themeName := opts.ThemeName
	if themeName == "" {
		themeName = defaultTheme().Name
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	return Model{
		ctx:         ctx,
		api:         opts.API,
		store:       opts.Store,
		config:      opts.Config,
		prefsPath:   prefsPath,
		pollEvery:   opts.PollEvery,
		keys:        DefaultKeyMap(),
		theme:       GetTheme(themeName),
		currentView: ViewRoster,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{tea.EnterAltScreen}
	if m.pollEvery > 0 {
		cmds = append(cmds, tickCmd(m.pollEvery))
	}
	// Pick up the roster the bootstrapper already loaded
	if m.store != nil {
		cmds = append(cmds, fetchSnapshotCmd(m.store))
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if !m.ready {
			m.initSearchInput()
			m.initFormInputs()
			m.initDetailViewport()
			m.initLogViewport()
		}
		m.ready = true
		m.updateRosterSelection()
		m.updateDetailViewport()
		m.updateLogViewport()
		return m, nil

	case tickMsg:
		return m.handleTick()

	case snapshotMsg:
		m.applySnapshot(state.Snapshot(msg))
		return m, nil

	case rosterMsg:
		return m.handleRoster(msg)

	case detailMsg:
		return m.handleDetail(msg)

	case createdMsg:
		return m.handleCreated(msg)

	case deletedMsg:
		return m.handleDeleted(msg)

	case diagMsg:
		return m.handleDiagnostics(msg)
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	// Overlays replace the whole frame while active
	if m.showHelp {
		return m.renderHelp()
	}

	if m.showForm {
		return m.renderForm()
	}

	return m.renderMain()
}

// handleKey processes keyboard input. Overlays take the key first, then
// global bindings, then the current view.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Handle help overlay
	if m.showHelp {
		// Any key closes help
		m.showHelp = false
		return m, nil
	}

	// Handle the add-player modal
	if m.showForm {
		return m.handleFormKey(msg)
	}

	// Handle live search input
	if m.search.active {
		return m.handleSearchKey(msg)
	}

	// Global keys
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit

	case "h", "?":
		m.showHelp = true
		return m, nil

	case "T":
		// Cycle theme and persist the choice
		m.theme = GetTheme(NextTheme(m.theme.Name))
		if m.prefsPath != "" {
			_ = prefs.Save(m.prefsPath, prefs.Prefs{Theme: m.theme.Name})
		}
		return m, nil

	case "r":
		return m.handleRefreshKey()

	case "l":
		m.currentView = ViewLogs
		return m, m.loadDiagnostics()

	case "esc":
		return m.handleEscape()
	}

	// View-specific keys
	switch m.currentView {
	case ViewRoster:
		return m.handleRosterKey(msg)
	case ViewDetail:
		return m.handleDetailKey(msg)
	case ViewLogs:
		return m.handleLogsKey(msg)
	}

	return m, nil
}

// handleRefreshKey reloads whatever the current view is showing.
func (m Model) handleRefreshKey() (tea.Model, tea.Cmd) {
	switch m.currentView {
	case ViewDetail:
		m.detail.loading = true
		m.detail.failed = false
		m.updateDetailViewport()
		return m, m.fetchDetail(m.detail.id)
	case ViewLogs:
		return m, m.loadDiagnostics()
	default:
		if cmd := m.refreshRoster(); cmd != nil {
			m.refreshing = true
			return m, cmd
		}
		return m, nil
	}
}

// handleEscape backs out of the current view, or clears an applied
// roster filter when already home.
func (m Model) handleEscape() (tea.Model, tea.Cmd) {
	switch m.currentView {
	case ViewDetail:
		cmd := m.closeDetail()
		return m, cmd
	case ViewLogs:
		m.currentView = ViewRoster
		return m, nil
	default:
		if m.search.query != "" {
			m.clearSearch()
		}
		return m, nil
	}
}

// handleTick processes the auto-refresh tick.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.pollEvery <= 0 {
		return m, nil
	}

	cmds := []tea.Cmd{tickCmd(m.pollEvery)}
	if !m.refreshing {
		if cmd := m.refreshRoster(); cmd != nil {
			m.refreshing = true
			cmds = append(cmds, cmd)
		}
	}
	return m, tea.Batch(cmds...)
}

// renderMain renders the full UI frame.
func (m Model) renderMain() string {
	var b strings.Builder

	// Header line 1: logo + status
	b.WriteString(m.renderHeader())
	b.WriteString("\n")

	// Header line 2: command bar
	b.WriteString(m.renderCommandBar())
	b.WriteString("\n")

	// Main content
	b.WriteString(m.renderContent())

	return b.String()
}

// renderContent renders the main content area based on current view.
func (m Model) renderContent() string {
	switch m.currentView {
	case ViewRoster:
		return m.renderRoster()
	case ViewDetail:
		return m.renderDetail()
	case ViewLogs:
		return m.renderDiagnostics()
	default:
		return ""
	}
}

// Messages

type tickMsg time.Time

type snapshotMsg state.Snapshot

// rosterMsg reports the outcome of a full roster fetch.
type rosterMsg struct {
	players []pupbowl.Player
	err     error
}

// detailMsg reports the outcome of a single-player fetch.
type detailMsg struct {
	id     int
	player *pupbowl.Player
	err    error
}

// createdMsg reports the outcome of a create request.
type createdMsg struct {
	player *pupbowl.Player
	err    error
}

// deletedMsg reports the outcome of a delete request.
type deletedMsg struct {
	id  int
	err error
}

// diagMsg carries freshly read diagnostics log entries.
type diagMsg struct {
	entries []logtail.Entry
	err     error
}

// Commands

func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func fetchSnapshotCmd(store *state.Store) tea.Cmd {
	return func() tea.Msg {
		return snapshotMsg(store.Snapshot())
	}
}

// refreshRoster fetches the full player list. Every path back to the
// roster funnels through this: manual refresh, detail close, create.
func (m Model) refreshRoster() tea.Cmd {
	if m.api == nil {
		return nil
	}
	api := m.api
	parent := m.ctx
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(parent, requestTimeout)
		defer cancel()
		players, err := api.ListPlayers(ctx)
		return rosterMsg{players: players, err: err}
	}
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
