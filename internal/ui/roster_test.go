package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/pupbowl/kennel/internal/state"
)

func loadedModel(t *testing.T, api *stubAPI) Model {
	t.Helper()
	store := &state.Store{}
	store.Replace(rosterPlayers())
	m := newTestModel(t, api, store)
	updated, _ := m.Update(snapshotMsg(store.Snapshot()))
	return updated.(Model)
}

func TestRenderRosterEmptyPlaceholder(t *testing.T) {
	m := newTestModel(t, &stubAPI{}, &state.Store{})

	view := m.View()
	if got := strings.Count(view, "No players."); got != 1 {
		t.Fatalf("empty roster view shows %d placeholders, want exactly 1", got)
	}
	if strings.Contains(view, "#") {
		t.Fatal("empty roster view still renders player rows")
	}
}

func TestRenderRosterShowsRows(t *testing.T) {
	m := loadedModel(t, &stubAPI{})

	view := m.View()
	for _, want := range []string{"#1", "Biscuit", "Mochi", "Pepper", "Roster (3)"} {
		if !strings.Contains(view, want) {
			t.Fatalf("roster view missing %q", want)
		}
	}
}

func TestSelectionFollowsPlayerAcrossReorder(t *testing.T) {
	m := loadedModel(t, &stubAPI{})

	updated, _ := m.Update(keyRunes("j"))
	m = updated.(Model)
	if got := m.selectedPlayerID(); got != 2 {
		t.Fatalf("selected id = %d, want 2", got)
	}

	// Server returns the same players in a different order
	reordered := rosterPlayers()
	reordered[0], reordered[2] = reordered[2], reordered[0]
	updated, _ = m.Update(rosterMsg{players: reordered})
	m = updated.(Model)

	if got := m.selectedPlayerID(); got != 2 {
		t.Fatalf("selected id after reorder = %d, want 2", got)
	}
}

func TestSelectionClampsWhenSelectedPlayerRemoved(t *testing.T) {
	m := loadedModel(t, &stubAPI{})

	updated, _ := m.Update(keyRunes("G"))
	m = updated.(Model)
	if got := m.selectedPlayerID(); got != 3 {
		t.Fatalf("selected id = %d, want 3", got)
	}

	updated, _ = m.Update(deletedMsg{id: 3})
	m = updated.(Model)
	if got := m.selectedPlayerID(); got != 2 {
		t.Fatalf("selected id after removing tail = %d, want 2", got)
	}
}

func TestRosterNavigationStaysInBounds(t *testing.T) {
	m := loadedModel(t, &stubAPI{})

	for i := 0; i < 10; i++ {
		updated, _ := m.Update(keyRunes("j"))
		m = updated.(Model)
	}
	if m.selectedRow != 2 {
		t.Fatalf("selectedRow after overshooting down = %d, want 2", m.selectedRow)
	}

	updated, _ := m.Update(keyRunes("g"))
	m = updated.(Model)
	if m.selectedRow != 0 {
		t.Fatalf("selectedRow after g = %d, want 0", m.selectedRow)
	}

	updated, _ = m.Update(keyRunes("k"))
	m = updated.(Model)
	if m.selectedRow != 0 {
		t.Fatalf("selectedRow after overshooting up = %d, want 0", m.selectedRow)
	}
}

func TestSearchNarrowsWithoutReordering(t *testing.T) {
	m := loadedModel(t, &stubAPI{})

	updated, _ := m.Update(keyRunes("/"))
	m = updated.(Model)
	if !m.search.active {
		t.Fatal("search.active = false after /, want true")
	}

	updated, _ = m.Update(keyRunes("er"))
	m = updated.(Model)

	// "er" hits Biscuit through its breed and Pepper through its name
	visible := m.visiblePlayers()
	if len(visible) != 2 || visible[0].ID != 1 || visible[1].ID != 3 {
		ids := make([]int, 0, len(visible))
		for _, p := range visible {
			ids = append(ids, p.ID)
		}
		t.Fatalf("visible ids = %v, want [1 3]", ids)
	}

	// Enter keeps the filter applied while leaving typing mode
	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(Model)
	if m.search.active {
		t.Fatal("search.active = true after enter, want false")
	}
	if m.search.query != "er" {
		t.Fatalf("query after enter = %q, want %q", m.search.query, "er")
	}

	// Esc on the roster clears the applied filter
	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = updated.(Model)
	if m.search.query != "" {
		t.Fatalf("query after esc = %q, want empty", m.search.query)
	}
	if got := len(m.visiblePlayers()); got != 3 {
		t.Fatalf("visible players after clearing = %d, want 3", got)
	}
}

func TestSearchMatchesBreedCaseInsensitive(t *testing.T) {
	m := loadedModel(t, &stubAPI{})
	m.search.query = "COLLIE"

	visible := m.visiblePlayers()
	if len(visible) != 1 || visible[0].Name != "Pepper" {
		t.Fatalf("visible = %+v, want just Pepper", visible)
	}
}

func TestSearchNeverTouchesStore(t *testing.T) {
	store := &state.Store{}
	store.Replace(rosterPlayers())
	m := newTestModel(t, &stubAPI{}, store)
	updated, _ := m.Update(snapshotMsg(store.Snapshot()))
	m = updated.(Model)

	m.search.query = "nothing matches this"
	if got := len(m.visiblePlayers()); got != 0 {
		t.Fatalf("visible players = %d, want 0", got)
	}
	if snap := store.Snapshot(); len(snap.Players) != 3 {
		t.Fatalf("store players = %d, want 3", len(snap.Players))
	}
}

func TestDeleteKeySendsDeleteForSelection(t *testing.T) {
	api := &stubAPI{}
	m := loadedModel(t, api)

	updated, _ := m.Update(keyRunes("j"))
	m = updated.(Model)

	updated, cmd := m.Update(keyRunes("d"))
	m = updated.(Model)
	if cmd == nil {
		t.Fatal("d returned no command")
	}

	msg, ok := cmd().(deletedMsg)
	if !ok {
		t.Fatalf("delete command returned %T, want deletedMsg", cmd())
	}
	if msg.id != 2 {
		t.Fatalf("deleted id = %d, want 2", msg.id)
	}
	if len(api.deleted) != 1 || api.deleted[0] != 2 {
		t.Fatalf("api.deleted = %v, want [2]", api.deleted)
	}
}

func TestEnterOpensDetailAndFetches(t *testing.T) {
	api := &stubAPI{player: rosterPlayers()[0]}
	m := loadedModel(t, api)

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(Model)

	if m.currentView != ViewDetail {
		t.Fatalf("currentView = %v, want ViewDetail", m.currentView)
	}
	if !m.detail.loading {
		t.Fatal("detail.loading = false, want true while fetching")
	}
	if cmd == nil {
		t.Fatal("enter returned no fetch command")
	}

	msg, ok := cmd().(detailMsg)
	if !ok {
		t.Fatalf("detail command returned %T, want detailMsg", cmd())
	}
	if msg.id != 1 || msg.player == nil || msg.player.Name != "Biscuit" {
		t.Fatalf("detailMsg = %+v, want player #1 Biscuit", msg)
	}
}

func TestDetailViewRendersFetchedCard(t *testing.T) {
	m := loadedModel(t, &stubAPI{})
	m.currentView = ViewDetail
	m.detail = detailState{id: 3, loading: true}

	team := 12
	player := rosterPlayers()[2]
	player.TeamID = &team
	updated, _ := m.Update(detailMsg{id: 3, player: &player})
	m = updated.(Model)

	view := m.View()
	for _, want := range []string{"Pepper", "Border Collie", "Team #12", "pepper.jpg"} {
		if !strings.Contains(view, want) {
			t.Fatalf("detail view missing %q", want)
		}
	}
}
