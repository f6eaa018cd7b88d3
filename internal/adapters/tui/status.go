package tui

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/xvierd/sglink/internal/ports"
)

// StatusLine writes transient status messages and links to a terminal.
// Colors are dropped automatically when w is not a terminal.
type StatusLine struct {
	mu       sync.Mutex
	w        io.Writer
	renderer *lipgloss.Renderer
	theme    Theme
}

// NewStatusLine creates a status line writing to w.
func NewStatusLine(w io.Writer, theme Theme) *StatusLine {
	return &StatusLine{
		w:        w,
		renderer: lipgloss.NewRenderer(w),
		theme:    theme,
	}
}

// Ensure StatusLine implements ports.StatusReporter.
var _ ports.StatusReporter = (*StatusLine)(nil)

// Status prints message. A terminal cannot retract a line, so d only
// selects the style: long-lived messages are warnings, short ones
// confirmations.
func (s *StatusLine) Status(message string, d time.Duration) {
	style := s.renderer.NewStyle().Foreground(s.theme.Accent)
	marker := "✓"
	if d > time.Second {
		style = s.renderer.NewStyle().Foreground(s.theme.Warning).Bold(true)
		marker = "!"
	}
	s.println(style.Render(marker + " " + message))
}

// Link prints a finished link.
func (s *StatusLine) Link(url string) {
	s.println(s.renderer.NewStyle().Foreground(s.theme.Link).Underline(true).Render(url))
}

// Error prints an error that ended a request.
func (s *StatusLine) Error(err error) {
	msg := strings.SplitN(err.Error(), "\n", 2)[0]
	s.println(s.renderer.NewStyle().Foreground(s.theme.Warning).Render("✗ " + msg))
}

func (s *StatusLine) println(line string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fmt.Fprintln(s.w, line)
}
