package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"
)

// maxVisible caps how many matches the picker renders at once.
const maxVisible = 12

// PickerResult holds the outcome of a picker interaction.
type PickerResult struct {
	Value   string
	Aborted bool
}

type pickerModel struct {
	title   string
	items   []string
	input   textinput.Model
	matches []string
	cursor  int
	chosen  bool
	aborted bool
	theme   Theme
}

func newPickerModel(title string, items []string, theme Theme) pickerModel {
	ti := textinput.New()
	ti.Placeholder = "type to filter"
	ti.CharLimit = 256
	ti.Width = 60
	ti.Focus()

	m := pickerModel{
		title: title,
		items: items,
		input: ti,
		theme: theme,
	}
	m.filter()
	return m
}

// filter recomputes matches for the current query, best match first.
func (m *pickerModel) filter() {
	query := strings.TrimSpace(m.input.Value())
	if query == "" {
		m.matches = m.items
	} else {
		found := fuzzy.Find(query, m.items)
		m.matches = make([]string, 0, len(found))
		for _, match := range found {
			m.matches = append(m.matches, match.Str)
		}
	}
	if m.cursor >= len(m.matches) {
		m.cursor = max(len(m.matches)-1, 0)
	}
}

func (m pickerModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m pickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "up", "ctrl+p":
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil
		case "down", "ctrl+n":
			if m.cursor < len(m.matches)-1 {
				m.cursor++
			}
			return m, nil
		case "enter":
			if len(m.matches) == 0 {
				return m, nil
			}
			m.chosen = true
			return m, tea.Quit
		case "ctrl+c", "esc":
			m.aborted = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.filter()
	return m, cmd
}

func (m pickerModel) View() string {
	var b strings.Builder

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(m.theme.Title)
	activeStyle := lipgloss.NewStyle().Foreground(m.theme.Accent).Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(m.theme.Dim)

	b.WriteString("\n")
	b.WriteString(titleStyle.Render("  "+m.title) + " ")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	start := 0
	if m.cursor >= maxVisible {
		start = m.cursor - maxVisible + 1
	}
	end := min(start+maxVisible, len(m.matches))

	for i := start; i < end; i++ {
		if i == m.cursor {
			b.WriteString("  " + activeStyle.Render("▸ "+m.matches[i]) + "\n")
		} else {
			b.WriteString(dimStyle.Render("    "+m.matches[i]) + "\n")
		}
	}
	if len(m.matches) == 0 {
		b.WriteString(dimStyle.Render("    no matches") + "\n")
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render(fmt.Sprintf("  %d/%d · ↑/↓ navigate · enter select · esc cancel", len(m.matches), len(m.items))) + "\n")

	return b.String()
}

// selected returns the highlighted match, if any.
func (m pickerModel) selected() (string, bool) {
	if len(m.matches) == 0 {
		return "", false
	}
	return m.matches[m.cursor], true
}

// RunPicker launches an interactive fuzzy picker over items.
func RunPicker(title string, items []string, theme Theme) PickerResult {
	p := tea.NewProgram(newPickerModel(title, items, theme))
	result, err := p.Run()
	if err != nil {
		return PickerResult{Aborted: true}
	}

	final := result.(pickerModel)
	value, ok := final.selected()
	if final.aborted || !final.chosen || !ok {
		return PickerResult{Aborted: true}
	}
	return PickerResult{Value: value}
}
