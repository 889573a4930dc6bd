package ui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog/log"

	"github.com/pupbowl/kennel/internal/pupbowl"
)

// initFormInputs creates the add-player form fields.
func (m *Model) initFormInputs() {
	placeholders := [...]string{
		"e.g. Biscuit",
		"e.g. Golden Retriever",
		"https://example.com/pup.jpg",
		"field or bench",
	}
	limits := [...]int{60, 60, 200, 20}
	for i := range m.formInputs {
		input := textinput.New()
		input.Placeholder = placeholders[i]
		input.CharLimit = limits[i]
		input.Width = 30
		m.formInputs[i] = input
	}
}

// openForm resets and shows the add-player form.
func (m *Model) openForm() {
	for i := range m.formInputs {
		m.formInputs[i].SetValue("")
		m.formInputs[i].Blur()
	}
	m.formFocusIdx = 0
	m.formInputs[0].Focus()
	m.showForm = true
}

// handleFormKey processes keyboard input while the add-player form is open.
func (m Model) handleFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape):
		// Cancel and close without sending anything
		m.showForm = false
		return m, nil

	case key.Matches(msg, m.keys.Confirm):
		cmd := m.submitForm()
		return m, cmd

	// Bare arrows only: j/k must keep typing into the fields
	case key.Matches(msg, m.keys.Tab), msg.String() == "down":
		// Move to next field
		m.formInputs[m.formFocusIdx].Blur()
		m.formFocusIdx = (m.formFocusIdx + 1) % len(m.formInputs)
		m.formInputs[m.formFocusIdx].Focus()
		return m, nil

	case key.Matches(msg, m.keys.ShiftTab), msg.String() == "up":
		// Move to previous field
		m.formInputs[m.formFocusIdx].Blur()
		m.formFocusIdx = (m.formFocusIdx + len(m.formInputs) - 1) % len(m.formInputs)
		m.formInputs[m.formFocusIdx].Focus()
		return m, nil

	case msg.String() == "ctrl+c":
		// Clear all fields (modal-specific, doesn't quit)
		for i := range m.formInputs {
			m.formInputs[i].SetValue("")
		}
		return m, nil
	}

	// Let the focused input handle the key
	var cmd tea.Cmd
	m.formInputs[m.formFocusIdx], cmd = m.formInputs[m.formFocusIdx].Update(msg)
	return m, cmd
}

// submitForm sends the form as typed. Values are trimmed but otherwise
// unvalidated; the service is the authority on what it accepts.
func (m *Model) submitForm() tea.Cmd {
	params := pupbowl.CreatePlayerParams{
		Name:     strings.TrimSpace(m.formInputs[0].Value()),
		Breed:    strings.TrimSpace(m.formInputs[1].Value()),
		ImageURL: strings.TrimSpace(m.formInputs[2].Value()),
		Status:   pupbowl.Status(strings.TrimSpace(m.formInputs[3].Value())),
	}
	m.showForm = false
	return m.createPlayer(params)
}

// createPlayer issues the create request.
func (m Model) createPlayer(params pupbowl.CreatePlayerParams) tea.Cmd {
	if m.api == nil {
		return nil
	}
	api := m.api
	parent := m.ctx
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(parent, requestTimeout)
		defer cancel()
		player, err := api.CreatePlayer(ctx, params)
		if err != nil {
			return createdMsg{err: err}
		}
		return createdMsg{player: &player}
	}
}

// handleCreated applies a finished create. The roster is refetched no
// matter how the create went, so the list always reflects the server.
func (m Model) handleCreated(msg createdMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.notice = "add player failed"
		log.Warn().Err(msg.err).Msg("add player failed")
	} else {
		m.notice = ""
		if msg.player != nil {
			log.Info().Int("id", msg.player.ID).Str("name", msg.player.Name).Msg("player added")
		}
	}

	cmd := m.refreshRoster()
	if cmd != nil {
		m.refreshing = true
	}
	return m, cmd
}

// renderForm renders the add-player modal.
func (m Model) renderForm() string {
	styles := m.theme.Styles()

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(m.theme.Accent))
	b.WriteString(titleStyle.Render("Add Player"))
	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render(strings.Repeat("─", 44)))
	b.WriteString("\n\n")

	b.WriteString(styles.MutedText.Render("Blank fields are sent as empty values."))
	b.WriteString("\n\n")

	labels := [...]string{"Name:      ", "Breed:     ", "Image URL: ", "Status:    "}
	for i, input := range m.formInputs {
		labelStyle := styles.MutedText
		if i == m.formFocusIdx {
			labelStyle = styles.AccentText
		}
		b.WriteString(labelStyle.Render(labels[i]))
		b.WriteString(input.View())
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render("Enter: Add  •  Esc: Cancel  •  Ctrl+C: Clear"))

	modalWidth := 50
	modalStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(m.theme.Accent)).
		Padding(1, 2).
		Width(modalWidth)

	modal := modalStyle.Render(b.String())
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, modal,
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceForeground(lipgloss.Color(m.theme.Background)))
}
