package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/pupbowl/kennel/internal/pupbowl"
	"github.com/pupbowl/kennel/internal/state"
)

func openedForm(t *testing.T, api *stubAPI) Model {
	t.Helper()
	m := newTestModel(t, api, &state.Store{})
	updated, _ := m.Update(keyRunes("a"))
	return updated.(Model)
}

func TestAddKeyOpensFormWithFreshFields(t *testing.T) {
	m := openedForm(t, &stubAPI{})

	if !m.showForm {
		t.Fatal("showForm = false after a, want true")
	}
	if m.formFocusIdx != 0 {
		t.Fatalf("formFocusIdx = %d, want 0", m.formFocusIdx)
	}
	for i, input := range m.formInputs {
		if input.Value() != "" {
			t.Fatalf("formInputs[%d] = %q, want empty", i, input.Value())
		}
	}
	if !strings.Contains(m.View(), "Add Player") {
		t.Fatal("form view missing title")
	}
}

func TestFormTabCyclesThroughFields(t *testing.T) {
	m := openedForm(t, &stubAPI{})

	for want := 1; want <= 3; want++ {
		updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
		m = updated.(Model)
		if m.formFocusIdx != want {
			t.Fatalf("formFocusIdx after %d tabs = %d, want %d", want, m.formFocusIdx, want)
		}
	}

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = updated.(Model)
	if m.formFocusIdx != 0 {
		t.Fatalf("formFocusIdx after wrap = %d, want 0", m.formFocusIdx)
	}

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	m = updated.(Model)
	if m.formFocusIdx != 3 {
		t.Fatalf("formFocusIdx after shift+tab from 0 = %d, want 3", m.formFocusIdx)
	}
}

func TestFormTypingReachesFocusedField(t *testing.T) {
	m := openedForm(t, &stubAPI{})

	updated, _ := m.Update(keyRunes("Rex"))
	m = updated.(Model)
	if got := m.formInputs[0].Value(); got != "Rex" {
		t.Fatalf("name field = %q, want %q", got, "Rex")
	}

	// j and k are plain letters inside the form, not navigation
	updated, _ = m.Update(keyRunes("j"))
	m = updated.(Model)
	if got := m.formInputs[0].Value(); got != "Rexj" {
		t.Fatalf("name field after j = %q, want %q", got, "Rexj")
	}
	if m.formFocusIdx != 0 {
		t.Fatalf("formFocusIdx after j = %d, want 0", m.formFocusIdx)
	}
}

func TestFormSubmitSendsTrimmedValues(t *testing.T) {
	api := &stubAPI{player: pupbowl.Player{ID: 7, Name: "Rex"}}
	m := openedForm(t, api)

	m.formInputs[0].SetValue("  Rex  ")
	m.formInputs[1].SetValue("Corgi")
	m.formInputs[2].SetValue(" https://cdn.example.com/rex.jpg ")
	m.formInputs[3].SetValue("bench")

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(Model)

	if m.showForm {
		t.Fatal("showForm = true after submit, want false")
	}
	if cmd == nil {
		t.Fatal("submit returned no command")
	}
	if _, ok := cmd().(createdMsg); !ok {
		t.Fatalf("submit command returned %T, want createdMsg", cmd())
	}

	want := pupbowl.CreatePlayerParams{
		Name:     "Rex",
		Breed:    "Corgi",
		ImageURL: "https://cdn.example.com/rex.jpg",
		Status:   pupbowl.StatusBench,
	}
	if len(api.created) != 1 || api.created[0] != want {
		t.Fatalf("api.created = %+v, want [%+v]", api.created, want)
	}
}

func TestFormSubmitAllowsBlankFields(t *testing.T) {
	api := &stubAPI{}
	m := openedForm(t, api)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("submit returned no command")
	}
	cmd()

	if len(api.created) != 1 || api.created[0] != (pupbowl.CreatePlayerParams{}) {
		t.Fatalf("api.created = %+v, want one empty params struct", api.created)
	}
}

func TestFormEscCancelsWithoutRequest(t *testing.T) {
	api := &stubAPI{}
	m := openedForm(t, api)

	updated, _ := m.Update(keyRunes("Rex"))
	m = updated.(Model)

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = updated.(Model)

	if m.showForm {
		t.Fatal("showForm = true after esc, want false")
	}
	if cmd != nil {
		t.Fatal("esc returned a command, want none")
	}
	if len(api.created) != 0 {
		t.Fatalf("api.created = %+v, want empty", api.created)
	}
}

func TestFormCtrlCClearsWithoutQuitting(t *testing.T) {
	m := openedForm(t, &stubAPI{})

	m.formInputs[0].SetValue("Rex")
	m.formInputs[1].SetValue("Corgi")

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	m = updated.(Model)

	if cmd != nil {
		t.Fatal("ctrl+c in form returned a command, want none")
	}
	if !m.showForm {
		t.Fatal("showForm = false after ctrl+c, want true")
	}
	for i, input := range m.formInputs {
		if input.Value() != "" {
			t.Fatalf("formInputs[%d] = %q after clear, want empty", i, input.Value())
		}
	}
}
