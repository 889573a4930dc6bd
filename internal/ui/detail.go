package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog/log"

	"github.com/pupbowl/kennel/internal/pupbowl"
)

// detailState tracks the full player card behind the roster.
type detailState struct {
	id      int
	player  *pupbowl.Player
	loading bool
	failed  bool
}

// openDetail switches to the detail view and refetches the player. The
// cached roster row never stands in for the full card.
func (m Model) openDetail(id int) (tea.Model, tea.Cmd) {
	m.detail = detailState{id: id, loading: true}
	m.currentView = ViewDetail
	m.updateDetailViewport()
	return m, m.fetchDetail(id)
}

// closeDetail returns to the roster and refetches it, so the roster is
// never a stale restore.
func (m *Model) closeDetail() tea.Cmd {
	m.currentView = ViewRoster
	m.detail = detailState{}
	cmd := m.refreshRoster()
	if cmd != nil {
		m.refreshing = true
	}
	return cmd
}

// fetchDetail issues the single-player request.
func (m Model) fetchDetail(id int) tea.Cmd {
	if m.api == nil {
		return nil
	}
	api := m.api
	parent := m.ctx
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(parent, requestTimeout)
		defer cancel()
		player, err := api.GetPlayer(ctx, id)
		if err != nil {
			return detailMsg{id: id, err: err}
		}
		return detailMsg{id: id, player: &player}
	}
}

// handleDetail applies a finished detail fetch. Responses land in
// arrival order: overlapping fetches resolve to the last one received.
func (m Model) handleDetail(msg detailMsg) (tea.Model, tea.Cmd) {
	m.detail.id = msg.id
	m.detail.loading = false
	m.detail.failed = msg.err != nil
	m.detail.player = msg.player
	if msg.err != nil {
		log.Warn().Err(msg.err).Int("id", msg.id).Msg("player fetch failed")
	}
	m.updateDetailViewport()
	return m, nil
}

// handleDetailKey processes keyboard input for the detail view.
func (m Model) handleDetailKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Back):
		cmd := m.closeDetail()
		return m, cmd
	case key.Matches(msg, m.keys.Down):
		m.detailViewport.ScrollDown(1)
	case key.Matches(msg, m.keys.Up):
		m.detailViewport.ScrollUp(1)
	case key.Matches(msg, m.keys.Top):
		m.detailViewport.GotoTop()
	case key.Matches(msg, m.keys.Bottom):
		m.detailViewport.GotoBottom()
	case key.Matches(msg, m.keys.HalfPageDown):
		m.detailViewport.HalfPageDown()
	case key.Matches(msg, m.keys.HalfPageUp):
		m.detailViewport.HalfPageUp()
	}
	return m, nil
}

// initDetailViewport creates the detail viewport once the window size is known.
func (m *Model) initDetailViewport() {
	m.detailViewport = viewport.New(max(m.width-4, 0), max(m.height-5, 0))
}

// updateDetailViewport re-renders the player card into the viewport.
func (m *Model) updateDetailViewport() {
	if !m.ready {
		return
	}
	m.detailViewport.Width = max(m.width-4, 0)
	m.detailViewport.Height = max(m.height-5, 0)
	m.detailViewport.SetContent(m.renderDetailContent(m.detailViewport.Width))
	m.detailViewport.GotoTop()
}

// renderDetail renders the full player card view.
func (m Model) renderDetail() string {
	styles := m.theme.Styles()
	contentHeight := m.height - 3 // Account for header + cmdbar + status line

	switch {
	case m.detail.loading:
		msg := styles.MutedText.Render("Loading player...")
		body := lipgloss.Place(m.width, contentHeight, lipgloss.Center, lipgloss.Center, msg)
		return body + "\n" + m.renderDetailStatus()

	case m.detail.failed || m.detail.player == nil:
		msg := styles.MutedText.Render("Player not found.")
		body := lipgloss.Place(m.width, contentHeight, lipgloss.Center, lipgloss.Center, msg)
		return body + "\n" + m.renderDetailStatus()
	}

	box := m.renderTitledBox(fmt.Sprintf("Player #%d", m.detail.id), m.detailViewport.View(), m.width, contentHeight, true)
	return box + "\n" + m.renderDetailStatus()
}

// renderDetailContent builds the card text shown inside the viewport.
func (m Model) renderDetailContent(width int) string {
	player := m.detail.player
	if player == nil {
		return ""
	}

	bgColor := m.theme.SurfaceAlt
	bg := NewBgStyle(bgColor)
	styles := m.theme.Styles().WithBackground(bgColor)

	name := strings.TrimSpace(player.Name)
	if name == "" {
		name = "(unnamed)"
	}

	var b strings.Builder
	b.WriteString(bg.Render(name, styles.Text.Bold(true)))
	b.WriteString(bg.Spaces(2))
	b.WriteString(styles.StatusStyle(player.Status.String()).Render(player.Status.Display()))
	b.WriteString("\n\n")

	writeField := func(label, value string) {
		b.WriteString(bg.Render(label, styles.MutedText))
		b.WriteString(bg.Space())
		b.WriteString(bg.Render(value, styles.Text))
		b.WriteString("\n")
	}

	writeField("ID:     ", fmt.Sprintf("#%d", player.ID))

	breed := strings.TrimSpace(player.Breed)
	if breed == "" {
		breed = "(unknown)"
	}
	writeField("Breed:  ", breed)

	image := strings.TrimSpace(player.ImageURL)
	if image == "" {
		image = "(no image)"
	} else {
		image = truncateMiddle(image, max(width-9, 10))
	}
	writeField("Image:  ", image)

	team := "Unassigned"
	if player.TeamID != nil {
		team = fmt.Sprintf("Team #%d", *player.TeamID)
	}
	writeField("Team:   ", team)

	writeField("Joined: ", formatStamp(player.ParsedCreatedAt()))
	writeField("Updated:", formatStamp(player.ParsedUpdatedAt()))

	b.WriteString("\n")
	b.WriteString(bg.Render("b to go back, r to reload", styles.FaintText))

	return b.String()
}

// renderDetailStatus renders the status line below the detail card.
func (m Model) renderDetailStatus() string {
	bg := NewBgStyle(m.theme.Surface)
	styles := m.theme.Styles().WithBackground(m.theme.Surface)

	var parts []string
	parts = append(parts, bg.Render(fmt.Sprintf("player #%d", m.detail.id), styles.FaintText))
	switch {
	case m.detail.loading:
		parts = append(parts, bg.Render("loading", styles.WarningText))
	case m.detail.failed:
		parts = append(parts, bg.Render("fetch failed", styles.DangerText))
	case m.detail.player != nil && !m.detailViewport.AtBottom():
		parts = append(parts, bg.Render(fmt.Sprintf("%.0f%%", m.detailViewport.ScrollPercent()*100), styles.MutedText))
	}

	sep := bg.Space() + bg.Render("•", styles.FaintText) + bg.Space()
	return styles.Header.Width(m.width).Render(strings.Join(parts, sep))
}
