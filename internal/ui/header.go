package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/pupbowl/kennel/internal/pupbowl"
)

// renderHeader renders the status bar with all information.
func (m Model) renderHeader() string {
	// Header uses Surface background
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)

	compact := m.width < 100

	var parts []string

	// Logo
	parts = append(parts, bg.Render("kennel", styles.Logo))

	// Connection indicator
	switch {
	case m.snapshot.IsOffline():
		parts = append(parts, bg.Render("● OFFLINE", styles.DangerText))
	case m.snapshot.LastError != nil:
		parts = append(parts, bg.Render("● RETRY", styles.WarningText))
	case m.lastUpdated.IsZero():
		parts = append(parts, bg.Render("● CONNECTING", styles.WarningText))
	default:
		parts = append(parts, bg.Render("● OK", styles.SuccessText))
	}

	// Roster count
	parts = append(parts,
		bg.Render("Players:", styles.MutedText)+bg.Space()+
			bg.Render(fmt.Sprintf("%d", len(m.snapshot.Players)), styles.Text),
	)

	// Timestamp with relative time
	if timeStr := m.formatTimestamp(); timeStr != "" {
		parts = append(parts, bg.Render(timeStr, styles.MutedText))
	}

	// Error indicator with a short classification label
	if m.snapshot.LastError != nil {
		maxErr := 80
		if compact {
			maxErr = 40
		}
		label := classifyConnectionError(m.snapshot.LastError)
		errText := truncate(fmt.Sprintf("%v", m.snapshot.LastError), maxErr)
		parts = append(parts,
			bg.Render(label, styles.DangerText.Bold(true))+bg.Space()+
				bg.Render(errText, styles.DangerText),
		)
	}

	// Transient notice (delete/create/diagnostics failures)
	if m.notice != "" {
		parts = append(parts,
			bg.Render("!", styles.WarningText.Bold(true))+bg.Space()+
				bg.Render(m.notice, styles.WarningText),
		)
	}

	return styles.Header.Width(m.width).Render(bg.Join(parts, "  "))
}

// countStatuses returns how many players are on the field and on the bench.
func (m Model) countStatuses() (field, bench int) {
	for _, player := range m.snapshot.Players {
		switch {
		case strings.EqualFold(player.Status.String(), pupbowl.StatusField.String()):
			field++
		case strings.EqualFold(player.Status.String(), pupbowl.StatusBench.String()):
			bench++
		}
	}
	return
}

// formatTimestamp formats the last update time with relative indicator.
func (m Model) formatTimestamp() string {
	if m.lastUpdated.IsZero() {
		return ""
	}

	timeSince := time.Since(m.lastUpdated)
	timeStr := m.lastUpdated.Format("15:04:05")

	if timeSince < time.Minute {
		timeStr += " (now)"
	} else if timeSince < time.Hour {
		timeStr += fmt.Sprintf(" (%dm ago)", int(timeSince.Minutes()))
	} else if timeSince < 24*time.Hour {
		timeStr += fmt.Sprintf(" (%dh ago)", int(timeSince.Hours()))
	}

	return timeStr
}

// classifyConnectionError returns a short description of the connection error.
func classifyConnectionError(err error) string {
	if err == nil {
		return ""
	}
	msg := err.Error()
	switch {
	case strings.Contains(msg, "connection refused"):
		return "OFFLINE"
	case strings.Contains(msg, "no such host"):
		return "HOST NOT FOUND"
	case strings.Contains(msg, "timeout"):
		return "TIMEOUT"
	default:
		return "ERROR"
	}
}

// renderCommandBar renders the command hints bar.
func (m Model) renderCommandBar() string {
	// Command bar uses Surface background
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)

	type cmd struct{ key, desc string }
	var commands []cmd

	switch m.currentView {
	case ViewDetail:
		commands = []cmd{
			{"b/esc", "Back"},
			{"r", "Reload"},
			{"j/k", "Scroll"},
			{"?", "More"},
		}
	case ViewLogs:
		commands = []cmd{
			{"r", "Reload"},
			{"j/k", "Scroll"},
			{"g/G", "Top/Bottom"},
			{"esc", "Back"},
			{"?", "More"},
		}
	default: // ViewRoster
		commands = []cmd{
			{"a", "Add"},
			{"d", "Delete"},
			{"Enter", "Details"},
			{"/", "Search"},
			{"r", "Refresh"},
			{"l", "Diagnostics"},
			{"?", "More"},
		}
	}

	colon := bg.Sep(":")
	sep := bg.Spaces(2)

	segments := make([]string, 0, len(commands))
	for _, c := range commands {
		segments = append(segments,
			bg.Render(c.key, styles.AccentText)+colon+bg.Render(c.desc, styles.MutedText))
	}

	// Show the applied roster filter
	if m.currentView == ViewRoster && m.search.query != "" {
		pattern := truncate(m.search.query, 18)
		segments = append(segments,
			bg.Render("/"+pattern, styles.AccentText))
	}

	// Add theme indicator
	segments = append(segments,
		bg.Render("T", styles.AccentText)+colon+bg.Render(m.theme.Name, styles.FaintText))

	return styles.Header.Width(m.width).Render(strings.Join(segments, sep))
}
