package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/pupbowl/kennel/internal/pupbowl"
)

// searchState holds the live roster filter. The query narrows the list
// as it is typed and never touches the store.
type searchState struct {
	active bool
	query  string
	input  textinput.Model
}

// matchesQuery reports whether a player matches the search query by
// name or breed. Matching is fuzzy and case-insensitive.
func matchesQuery(query string, player pupbowl.Player) bool {
	return fuzzy.MatchNormalizedFold(query, player.Name) ||
		fuzzy.MatchNormalizedFold(query, player.Breed)
}

// initSearchInput creates the search field once the window size is known.
func (m *Model) initSearchInput() {
	input := textinput.New()
	input.Placeholder = "name or breed"
	input.CharLimit = 100
	input.Width = 40
	m.search.input = input
}

// startSearch opens the live filter with a fresh query.
func (m *Model) startSearch() {
	m.search.active = true
	m.search.query = ""
	m.search.input.SetValue("")
	m.search.input.Focus()
	m.updateRosterSelection()
}

// clearSearch drops the filter and restores the full roster.
func (m *Model) clearSearch() {
	prevID := m.selectedPlayerID()
	m.search.active = false
	m.search.query = ""
	m.search.input.SetValue("")
	m.search.input.Blur()
	m.followSelection(prevID)
}

// handleSearchKey processes keyboard input while the filter is being
// typed. Every keystroke re-narrows the visible roster.
func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Confirm):
		// Keep the query applied, return keys to the roster
		m.search.active = false
		m.search.input.Blur()
		if strings.TrimSpace(m.search.query) == "" {
			m.clearSearch()
		}
		return m, nil

	case key.Matches(msg, m.keys.Escape):
		m.clearSearch()
		return m, nil
	}

	prevID := m.selectedPlayerID()
	var cmd tea.Cmd
	m.search.input, cmd = m.search.input.Update(msg)
	m.search.query = m.search.input.Value()
	m.followSelection(prevID)
	return m, cmd
}
