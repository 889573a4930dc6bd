package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

// renderHelp renders the help overlay. Rows come straight from the key
// map so the overlay never drifts from the real bindings.
func (m Model) renderHelp() string {
	styles := m.theme.Styles()

	sections := []helpSection{
		{
			title: "Navigation",
			items: []helpItem{
				bindingItem(m.keys.Up),
				bindingItem(m.keys.Down),
				bindingItem(m.keys.Top),
				bindingItem(m.keys.Bottom),
				bindingItem(m.keys.HalfPageUp),
				bindingItem(m.keys.HalfPageDown),
			},
		},
		{
			title: "Roster",
			items: []helpItem{
				bindingItem(m.keys.Add),
				bindingItem(m.keys.Delete),
				bindingItem(m.keys.Details),
				bindingItem(m.keys.Search),
				bindingItem(m.keys.Back),
			},
		},
		{
			title: "Views",
			items: []helpItem{
				bindingItem(m.keys.Logs),
				bindingItem(m.keys.Refresh),
				bindingItem(m.keys.Escape),
			},
		},
		{
			title: "General",
			items: []helpItem{
				bindingItem(m.keys.CycleTheme),
				bindingItem(m.keys.Help),
				bindingItem(m.keys.Quit),
			},
		},
	}

	// Build help content
	var b strings.Builder

	// Title
	title := styles.Text.Bold(true).Render("Keyboard Shortcuts")
	b.WriteString(title)
	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render(strings.Repeat("─", 30)))
	b.WriteString("\n\n")

	for i, section := range sections {
		// Section title
		b.WriteString(styles.AccentText.Bold(true).Render(section.title))
		b.WriteString("\n")

		for _, item := range section.items {
			// Key
			keyStyle := lipgloss.NewStyle().
				Foreground(lipgloss.Color(m.theme.Warning)).
				Width(12)
			b.WriteString(keyStyle.Render(item.key))
			// Description
			b.WriteString(styles.Text.Render(item.desc))
			b.WriteString("\n")
		}

		if i < len(sections)-1 {
			b.WriteString("\n")
		}
	}

	// Build the modal
	content := b.String()

	// Calculate modal dimensions
	modalWidth := 40

	// Modal style
	modal := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(m.theme.Accent)).
		Padding(1, 2).
		Width(modalWidth)

	// Center the modal
	modalContent := modal.Render(content)

	// Create overlay
	return lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Center,
		lipgloss.Center,
		modalContent,
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceForeground(lipgloss.Color(m.theme.Background)),
	)
}

type helpSection struct {
	title string
	items []helpItem
}

type helpItem struct {
	key  string
	desc string
}

func bindingItem(b key.Binding) helpItem {
	return helpItem{b.Help().Key, b.Help().Desc}
}
