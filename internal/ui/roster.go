package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog/log"

	"github.com/pupbowl/kennel/internal/pupbowl"
	"github.com/pupbowl/kennel/internal/state"
)

// visiblePlayers returns the roster narrowed by the active search query,
// in stored order. Filtering never reorders.
func (m Model) visiblePlayers() []pupbowl.Player {
	if m.search.query == "" {
		return m.snapshot.Players
	}
	matched := make([]pupbowl.Player, 0, len(m.snapshot.Players))
	for _, player := range m.snapshot.Players {
		if matchesQuery(m.search.query, player) {
			matched = append(matched, player)
		}
	}
	return matched
}

// getSelectedPlayer returns the player under the cursor, or nil.
func (m Model) getSelectedPlayer() *pupbowl.Player {
	players := m.visiblePlayers()
	if m.selectedRow < 0 || m.selectedRow >= len(players) {
		return nil
	}
	return &players[m.selectedRow]
}

// selectedPlayerID returns the id under the cursor, or 0.
func (m Model) selectedPlayerID() int {
	if player := m.getSelectedPlayer(); player != nil {
		return player.ID
	}
	return 0
}

// applySnapshot swaps in a new snapshot while keeping the cursor on the
// same player when it is still visible.
func (m *Model) applySnapshot(snap state.Snapshot) {
	prevID := m.selectedPlayerID()
	m.snapshot = snap
	m.lastUpdated = snap.LastUpdated
	m.followSelection(prevID)
}

// followSelection moves the cursor to the row holding id, clamping to
// the visible range when the player is gone.
func (m *Model) followSelection(id int) {
	count := len(m.visiblePlayers())
	if count == 0 {
		m.selectedRow = 0
		return
	}

	if id > 0 {
		for i, player := range m.visiblePlayers() {
			if player.ID == id {
				m.selectedRow = i
				return
			}
		}
	}

	if m.selectedRow >= count {
		m.selectedRow = count - 1
	}
}

// updateRosterSelection re-clamps the cursor against the current roster.
func (m *Model) updateRosterSelection() {
	m.followSelection(m.selectedPlayerID())
}

// handleRosterKey processes keyboard input for the roster view.
func (m Model) handleRosterKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Search):
		m.startSearch()
		return m, nil

	case key.Matches(msg, m.keys.Add):
		m.openForm()
		return m, nil

	case key.Matches(msg, m.keys.Delete):
		if player := m.getSelectedPlayer(); player != nil {
			return m, m.deletePlayer(player.ID)
		}
		return m, nil

	case key.Matches(msg, m.keys.Details):
		if player := m.getSelectedPlayer(); player != nil {
			return m.openDetail(player.ID)
		}
		return m, nil
	}

	count := len(m.visiblePlayers())
	if count == 0 {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Down):
		if m.selectedRow < count-1 {
			m.selectedRow++
		}
	case key.Matches(msg, m.keys.Up):
		if m.selectedRow > 0 {
			m.selectedRow--
		}
	case key.Matches(msg, m.keys.Top):
		m.selectedRow = 0
	case key.Matches(msg, m.keys.Bottom):
		m.selectedRow = count - 1
	}

	return m, nil
}

// handleRoster applies a finished roster fetch. A failed fetch empties
// the store; a successful one replaces it wholesale.
func (m Model) handleRoster(msg rosterMsg) (tea.Model, tea.Cmd) {
	m.refreshing = false
	if msg.err != nil {
		if m.store != nil {
			m.store.Fail(msg.err)
		}
		m.notice = "roster refresh failed"
		log.Warn().Err(msg.err).Msg("roster refresh failed")
	} else {
		if m.store != nil {
			m.store.Replace(msg.players)
		}
		m.notice = ""
		log.Debug().Int("players", len(msg.players)).Msg("roster replaced")
	}
	if m.store != nil {
		m.applySnapshot(m.store.Snapshot())
	}
	return m, nil
}

// handleDeleted applies a finished delete. Only the success path touches
// the store; a failure leaves the roster exactly as it was.
func (m Model) handleDeleted(msg deletedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.notice = fmt.Sprintf("delete player #%d failed", msg.id)
		log.Warn().Err(msg.err).Int("id", msg.id).Msg("delete player failed")
		return m, nil
	}

	m.notice = ""
	if m.store != nil {
		if m.store.RemoveByID(msg.id) {
			log.Info().Int("id", msg.id).Msg("player removed")
		}
		m.applySnapshot(m.store.Snapshot())
	}
	return m, nil
}

// deletePlayer issues the delete request for one player.
func (m Model) deletePlayer(id int) tea.Cmd {
	if m.api == nil {
		return nil
	}
	api := m.api
	parent := m.ctx
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(parent, requestTimeout)
		defer cancel()
		return deletedMsg{id: id, err: api.DeletePlayer(ctx, id)}
	}
}

// renderRoster renders the roster view with split layout (list + summary).
func (m Model) renderRoster() string {
	styles := m.theme.Styles()
	contentHeight := m.height - 3 // Account for header + cmdbar + status line

	if len(m.snapshot.Players) == 0 {
		emptyMsg := styles.MutedText.Render("No players.")
		body := lipgloss.Place(m.width, contentHeight, lipgloss.Center, lipgloss.Center, emptyMsg)
		return body + "\n" + m.renderRosterStatus()
	}

	// The list is the primary surface; the summary pane takes the rest.
	var listWidth int
	if m.width >= 160 {
		listWidth = m.width * 40 / 100
	} else {
		listWidth = m.width * 55 / 100
	}
	summaryWidth := m.width - listWidth

	player := m.getSelectedPlayer()

	listContent := m.renderRosterTable(listWidth-2, m.theme.SurfaceAlt) // -2 for borders
	listPane := m.renderTitledBox(m.rosterTitle(), listContent, listWidth, contentHeight, true)

	var summaryContent string
	if player != nil {
		summaryContent = m.renderPlayerSummary(*player, summaryWidth-4, m.theme.SurfaceAlt)
	} else {
		summaryContent = lipgloss.NewStyle().
			Foreground(lipgloss.Color(m.theme.Muted)).
			Background(lipgloss.Color(m.theme.SurfaceAlt)).
			Render("No matching players")
	}
	summaryPane := m.renderTitledBox("Player", summaryContent, summaryWidth, contentHeight, false)

	panes := lipgloss.JoinHorizontal(lipgloss.Top, listPane, summaryPane)
	return panes + "\n" + m.renderRosterStatus()
}

// renderRosterTable renders the roster as styled rows.
func (m Model) renderRosterTable(width int, bgColor string) string {
	players := m.visiblePlayers()
	if len(players) == 0 {
		return lipgloss.NewStyle().
			Foreground(lipgloss.Color(m.theme.Muted)).
			Background(lipgloss.Color(bgColor)).
			Width(width).
			Render("No matches")
	}

	var lines []string
	for i, player := range players {
		if i == m.selectedRow {
			// Selected row: use selection background and text color
			content := m.formatRosterRowContent(player, width, m.theme.SelectionBg, true)
			line := lipgloss.NewStyle().
				Background(lipgloss.Color(m.theme.SelectionBg)).
				Width(width).
				Render(content)
			lines = append(lines, line)
		} else {
			content := m.formatRosterRowContent(player, width, bgColor, false)
			line := lipgloss.NewStyle().
				Background(lipgloss.Color(bgColor)).
				Width(width).
				Render(content)
			lines = append(lines, line)
		}
	}

	return strings.Join(lines, "\n")
}

// formatRosterRowContent formats a roster row with inline colors.
// Format: "#ID Name · Status ◉" where the marker flags a stored image.
// When selected is true, uses SelectionText color for all text to ensure contrast.
func (m Model) formatRosterRowContent(player pupbowl.Player, width int, bgColor string, selected bool) string {
	bg := NewBgStyle(bgColor)

	statusStr := player.Status.Display()
	if strings.TrimSpace(player.ImageURL) != "" {
		statusStr += " ◉"
	}

	name := strings.TrimSpace(player.Name)
	if name == "" {
		name = "(unnamed)"
	}

	// Calculate available name width
	idStr := fmt.Sprintf("#%d", player.ID)
	separatorLen := 3 // " · "
	nameWidth := max(width-len(idStr)-len([]rune(statusStr))-separatorLen-2, 10)

	// For selected rows, use SelectionText for all parts to ensure contrast
	var idStyle, nameStyle, sepStyle, statusStyle lipgloss.Style
	if selected {
		selText := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.SelectionText))
		idStyle = selText
		nameStyle = selText
		sepStyle = selText
		statusStyle = selText
	} else {
		styles := m.theme.Styles()
		idStyle = styles.MutedText
		nameStyle = styles.Text
		sepStyle = styles.FaintText
		statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(m.colorForStatus(player.Status.String())))
	}

	idPart := bg.Render(idStr, idStyle)
	namePart := bg.Render(truncate(name, nameWidth), nameStyle)
	sepPart := bg.Render(" · ", sepStyle)
	statusPart := bg.Render(statusStr, statusStyle)

	return idPart + bg.Space() + namePart + sepPart + statusPart
}

// colorForStatus returns the theme color for a given player status.
func (m Model) colorForStatus(status string) string {
	status = strings.ToLower(strings.TrimSpace(status))
	if color, ok := m.theme.StatusColors[status]; ok {
		return color
	}
	return m.theme.Muted
}

// renderPlayerSummary renders the cached summary card for the selected
// player. The full card behind enter always refetches.
func (m Model) renderPlayerSummary(player pupbowl.Player, width int, bgColor string) string {
	bg := NewBgStyle(bgColor)
	styles := m.theme.Styles().WithBackground(bgColor)

	name := strings.TrimSpace(player.Name)
	if name == "" {
		name = "(unnamed)"
	}

	var b strings.Builder
	b.WriteString(bg.Render(truncate(name, max(width, 10)), styles.Text.Bold(true)))
	b.WriteString("\n")
	b.WriteString(styles.StatusStyle(player.Status.String()).Render(player.Status.Display()))
	b.WriteString("\n\n")

	writeField := func(label, value string) {
		b.WriteString(bg.Render(label, styles.MutedText))
		b.WriteString(bg.Space())
		b.WriteString(bg.Render(value, styles.Text))
		b.WriteString("\n")
	}

	writeField("ID:    ", fmt.Sprintf("#%d", player.ID))

	breed := strings.TrimSpace(player.Breed)
	if breed == "" {
		breed = "(unknown)"
	}
	writeField("Breed: ", truncate(breed, max(width-8, 10)))

	image := strings.TrimSpace(player.ImageURL)
	if image == "" {
		image = "(none)"
	} else {
		image = truncateMiddle(image, max(width-8, 10))
	}
	writeField("Image: ", image)

	if joined := player.ParsedCreatedAt(); !joined.IsZero() {
		writeField("Joined:", humanizeSince(joined))
	}

	b.WriteString("\n")
	b.WriteString(bg.Render("enter: full details", styles.FaintText))

	return b.String()
}

// rosterTitle returns the list pane title with the visible/total counts.
func (m Model) rosterTitle() string {
	total := len(m.snapshot.Players)
	if m.search.query == "" {
		return fmt.Sprintf("Roster (%d)", total)
	}
	return fmt.Sprintf("Roster (%d/%d)", len(m.visiblePlayers()), total)
}

// renderRosterStatus renders the status line below the roster panes.
func (m Model) renderRosterStatus() string {
	bg := NewBgStyle(m.theme.Surface)
	styles := m.theme.Styles().WithBackground(m.theme.Surface)

	// Live search input replaces the status line while typing
	if m.search.active {
		return styles.Header.Width(m.width).Render(
			bg.Render("search: "+m.search.input.Value(), styles.AccentText) +
				bg.Spaces(2) +
				bg.Render("enter to apply, esc to cancel", styles.FaintText))
	}

	var parts []string

	total := len(m.snapshot.Players)
	if m.search.query != "" {
		parts = append(parts, bg.Render(fmt.Sprintf("%d of %d players", len(m.visiblePlayers()), total), styles.FaintText))
		parts = append(parts, bg.Render("/"+truncate(m.search.query, 18), styles.AccentText)+
			bg.Space()+bg.Render("esc to clear", styles.FaintText))
	} else {
		parts = append(parts, bg.Render(fmt.Sprintf("%d players", total), styles.FaintText))
	}

	field, bench := m.countStatuses()
	parts = append(parts,
		bg.Render("field", styles.MutedText)+bg.Space()+bg.Render(fmt.Sprintf("%d", field), styles.SuccessText)+
			bg.Spaces(2)+bg.Render("bench", styles.MutedText)+bg.Space()+bg.Render(fmt.Sprintf("%d", bench), styles.WarningText))

	if m.refreshing {
		parts = append(parts, bg.Render("refreshing", styles.WarningText))
	}

	sep := bg.Space() + bg.Render("•", styles.FaintText) + bg.Space()
	return styles.Header.Width(m.width).Render(strings.Join(parts, sep))
}

// renderTitledBox renders content in a box with the title embedded in the top border.
// When focused is true, uses BorderFocus color.
func (m Model) renderTitledBox(title, content string, width, height int, focused bool) string {
	var borderColorStr, bgColorStr string
	if focused {
		borderColorStr = m.theme.BorderFocus
		bgColorStr = m.theme.SurfaceAlt
	} else {
		borderColorStr = m.theme.Border
		bgColorStr = m.theme.SurfaceAlt
	}
	bg := NewBgStyle(bgColorStr)
	borderColor := lipgloss.Color(borderColorStr)
	bgColor := lipgloss.Color(bgColorStr)
	borderStyle := lipgloss.NewStyle().Foreground(borderColor)
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(m.theme.Text))

	// Build the top border with embedded title
	innerWidth := max(width-2, 0) // Account for left and right border chars
	titleLen := len([]rune(title))
	leftPad := max((innerWidth-titleLen-2)/2, 0)
	rightPad := max(innerWidth-titleLen-2-leftPad, 0)

	topBorder := bg.Render("┌", borderStyle) +
		bg.Render(strings.Repeat("─", leftPad), borderStyle) +
		bg.Render(" "+title+" ", titleStyle) +
		bg.Render(strings.Repeat("─", rightPad), borderStyle) +
		bg.Render("┐", borderStyle)

	// Build the bottom border
	bottomBorder := bg.Render("└", borderStyle) +
		bg.Render(strings.Repeat("─", innerWidth), borderStyle) +
		bg.Render("┘", borderStyle)

	// Style for side borders and content background
	contentStyle := lipgloss.NewStyle().Width(innerWidth).Background(bgColor)

	// Split content into lines and pad to fill the box
	contentLines := strings.Split(content, "\n")
	boxHeight := max(height-2, 0) // -2 for top and bottom borders

	var paddedLines []string
	for i := 0; i < boxHeight; i++ {
		var line string
		if i < len(contentLines) {
			line = contentLines[i]
		}
		paddedLines = append(paddedLines,
			bg.Render("│", borderStyle)+
				contentStyle.Render(line)+
				bg.Render("│", borderStyle))
	}

	return topBorder + "\n" + strings.Join(paddedLines, "\n") + "\n" + bottomBorder
}
