package tui

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"
)

func TestStatusLine_PlainWhenNotATerminal(t *testing.T) {
	var buf bytes.Buffer
	s := NewStatusLine(&buf, DefaultTheme())

	s.Status("Push revision deadbe upstream first!", 2500*time.Millisecond)
	s.Status("Copied Sourcegraph link!", time.Second)
	s.Link("https://sourcegraph.com/github.com/a/b@c")
	s.Error(errors.New("git command failed: git rev-parse HEAD\nstderr: fatal"))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	want := []string{
		"! Push revision deadbe upstream first!",
		"✓ Copied Sourcegraph link!",
		"https://sourcegraph.com/github.com/a/b@c",
		"✗ git command failed: git rev-parse HEAD",
	}
	if len(lines) != len(want) {
		t.Fatalf("got %d lines: %q", len(lines), lines)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, lines[i], want[i])
		}
	}
}
