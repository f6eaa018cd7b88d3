// Package tui provides the terminal presentation for sglink: styled status
// lines and the interactive file picker.
package tui

import "github.com/charmbracelet/lipgloss"

// Theme holds the colors used by status lines and the picker.
type Theme struct {
	Accent  lipgloss.Color
	Warning lipgloss.Color
	Link    lipgloss.Color
	Dim     lipgloss.Color
	Title   lipgloss.Color
}

// DefaultTheme returns the default palette.
func DefaultTheme() Theme {
	return Theme{
		Accent:  lipgloss.Color("#7C6FE0"),
		Warning: lipgloss.Color("#E5A50A"),
		Link:    lipgloss.Color("#4ECDC4"),
		Dim:     lipgloss.Color("#95A5A6"),
		Title:   lipgloss.Color("#6B7280"),
	}
}
