package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func typeInto(m pickerModel, s string) pickerModel {
	for _, r := range s {
		updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
		m = updated.(pickerModel)
	}
	return m
}

func press(m pickerModel, key tea.KeyType) pickerModel {
	updated, _ := m.Update(tea.KeyMsg{Type: key})
	return updated.(pickerModel)
}

func TestPickerModel_Filter(t *testing.T) {
	items := []string{"cmd/root.go", "internal/domain/link.go", "internal/services/link_service.go", "README.md"}
	m := newPickerModel("Open", items, DefaultTheme())

	if len(m.matches) != len(items) {
		t.Fatalf("empty query should match everything, got %d", len(m.matches))
	}

	m = typeInto(m, "linksvc")
	got, ok := m.selected()
	if !ok {
		t.Fatal("expected a match for 'linksvc'")
	}
	if got != "internal/services/link_service.go" {
		t.Errorf("selected() = %q, want internal/services/link_service.go", got)
	}

	m = typeInto(m, "zzz")
	if len(m.matches) != 0 {
		t.Errorf("expected no matches, got %v", m.matches)
	}
	if !strings.Contains(m.View(), "no matches") {
		t.Error("View() should say there are no matches")
	}
}

func TestPickerModel_Navigation(t *testing.T) {
	m := newPickerModel("Open", []string{"a.go", "b.go", "c.go"}, DefaultTheme())

	m = press(m, tea.KeyDown)
	m = press(m, tea.KeyDown)
	m = press(m, tea.KeyDown)
	if m.cursor != 2 {
		t.Errorf("cursor = %d, want 2 (clamped)", m.cursor)
	}

	m = press(m, tea.KeyUp)
	if got, _ := m.selected(); got != "b.go" {
		t.Errorf("selected() = %q, want b.go", got)
	}

	m = press(m, tea.KeyEnter)
	if !m.chosen {
		t.Error("enter should choose the highlighted item")
	}
}

func TestPickerModel_Abort(t *testing.T) {
	m := newPickerModel("Open", []string{"a.go"}, DefaultTheme())
	m = press(m, tea.KeyEsc)
	if !m.aborted {
		t.Error("esc should abort")
	}
}

func TestPickerModel_EnterWithoutMatches(t *testing.T) {
	m := newPickerModel("Open", nil, DefaultTheme())
	m = press(m, tea.KeyEnter)
	if m.chosen {
		t.Error("enter with no matches should not choose")
	}
}
