package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog/log"

	"github.com/pupbowl/kennel/internal/logtail"
)

// diagTailLines bounds how much of the log file the view loads.
const diagTailLines = 200

// diagState holds the loaded tail of the diagnostics file.
type diagState struct {
	entries  []logtail.Entry
	loadedAt time.Time
}

// loadDiagnostics reads the tail of the diagnostics file.
func (m Model) loadDiagnostics() tea.Cmd {
	if m.config == nil || strings.TrimSpace(m.config.LogFile) == "" {
		return nil
	}
	path := m.config.LogFile
	return func() tea.Msg {
		entries, err := logtail.ReadEntries(path, diagTailLines)
		return diagMsg{entries: entries, err: err}
	}
}

// handleDiagnostics applies a finished log read.
func (m Model) handleDiagnostics(msg diagMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.notice = "diagnostics load failed"
		log.Warn().Err(msg.err).Msg("diagnostics load failed")
		return m, nil
	}
	m.diag.entries = msg.entries
	m.diag.loadedAt = time.Now()
	m.updateLogViewport()
	// Newest entries sit at the bottom of the tail
	m.logViewport.GotoBottom()
	return m, nil
}

// handleLogsKey processes keyboard input for the diagnostics view.
func (m Model) handleLogsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Back):
		m.currentView = ViewRoster
	case key.Matches(msg, m.keys.Top):
		m.logViewport.GotoTop()
	case key.Matches(msg, m.keys.Bottom):
		m.logViewport.GotoBottom()
	case key.Matches(msg, m.keys.Down):
		m.logViewport.ScrollDown(1)
	case key.Matches(msg, m.keys.Up):
		m.logViewport.ScrollUp(1)
	case key.Matches(msg, m.keys.HalfPageDown):
		m.logViewport.HalfPageDown()
	case key.Matches(msg, m.keys.HalfPageUp):
		m.logViewport.HalfPageUp()
	}
	return m, nil
}

// initLogViewport creates the diagnostics viewport once the window size is known.
func (m *Model) initLogViewport() {
	m.logViewport = viewport.New(max(m.width-4, 0), max(m.height-5, 0))
	m.logViewport.Style = lipgloss.NewStyle()
}

// updateLogViewport re-renders the diagnostics tail into the viewport.
func (m *Model) updateLogViewport() {
	if !m.ready {
		return
	}

	// Box height = m.height - 3 (header, cmdbar, status bar below)
	// Box inner = box height - 2 (top and bottom borders) = m.height - 5
	m.logViewport.Width = max(m.width-4, 0)
	m.logViewport.Height = max(m.height-5, 0)
	m.logViewport.Style = lipgloss.NewStyle().Background(lipgloss.Color(m.theme.FocusBg))

	m.logViewport.SetContent(m.renderDiagContent())
}

// renderDiagnostics renders the diagnostics view.
func (m Model) renderDiagnostics() string {
	contentHeight := m.height - 3 // Account for header + cmdbar + status bar below

	title := fmt.Sprintf("Diagnostics (%d)", len(m.diag.entries))
	box := m.renderTitledBox(title, m.logViewport.View(), m.width, contentHeight, true)
	return box + "\n" + m.renderDiagStatus()
}

// renderDiagContent renders the colorized diagnostics lines.
func (m Model) renderDiagContent() string {
	// Diagnostics view is always focused when shown, so use FocusBg
	bg := NewBgStyle(m.theme.FocusBg)
	styles := m.theme.Styles()
	width := m.logViewport.Width

	if len(m.diag.entries) == 0 {
		return bg.FillLine(bg.Render("No log entries", styles.MutedText), width)
	}

	var b strings.Builder
	for i, entry := range m.diag.entries {
		b.WriteString(bg.FillLine(m.renderDiagEntry(entry, styles, bg), width))
		if i < len(m.diag.entries)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

// renderDiagEntry renders one entry: clock, level, message, then fields.
func (m Model) renderDiagEntry(entry logtail.Entry, styles Styles, bg BgStyle) string {
	var b strings.Builder

	clock := "--:--:--"
	if !entry.Time.IsZero() {
		clock = entry.Time.Local().Format("15:04:05")
	}
	b.WriteString(bg.Render(clock, styles.FaintText))
	b.WriteString(bg.Space())

	level := strings.ToLower(strings.TrimSpace(entry.Level))
	label := strings.ToUpper(level)
	if label == "" {
		label = "LOG"
	}
	b.WriteString(bg.Render(fmt.Sprintf("%-5s", label), m.levelStyle(level, styles).Bold(true)))
	b.WriteString(bg.Space())

	b.WriteString(bg.Render(entry.Message, styles.Text))

	for _, field := range entry.Fields {
		b.WriteString(bg.Space())
		b.WriteString(bg.Render(field.Key+"="+field.Value, styles.MutedText))
	}

	return b.String()
}

// levelStyle returns the style for a zerolog level name.
func (m Model) levelStyle(level string, styles Styles) lipgloss.Style {
	switch level {
	case "info":
		return styles.SuccessText
	case "warn", "warning":
		return styles.WarningText
	case "error", "fatal", "panic":
		return styles.DangerText
	case "debug", "trace":
		return styles.InfoText
	default:
		return styles.Text
	}
}

// renderDiagStatus renders the status line below the diagnostics box.
func (m Model) renderDiagStatus() string {
	bg := NewBgStyle(m.theme.Surface)
	styles := m.theme.Styles().WithBackground(m.theme.Surface)

	var parts []string
	parts = append(parts, bg.Render(fmt.Sprintf("%d entries", len(m.diag.entries)), styles.FaintText))
	if m.config != nil {
		parts = append(parts, bg.Render(truncateMiddle(m.config.LogFile, 48), styles.MutedText))
	}
	if !m.diag.loadedAt.IsZero() {
		parts = append(parts, bg.Render("loaded "+humanizeSince(m.diag.loadedAt), styles.FaintText))
	}
	parts = append(parts, bg.Render("r to reload", styles.FaintText))

	sep := bg.Space() + bg.Render("•", styles.FaintText) + bg.Space()
	return styles.Header.Width(m.width).Render(strings.Join(parts, sep))
}
