// Package browser opens links in the user's default browser.
package browser

import (
	"fmt"
	"os/exec"

	"github.com/xvierd/sglink/internal/ports"
)

// CommandFunc builds the command that opens url.
type CommandFunc func(url string) *exec.Cmd

// Opener implements ports.LinkSink by launching the platform opener.
type Opener struct {
	command CommandFunc
}

// New creates an opener for the current platform.
func New() *Opener {
	return &Opener{command: openCommand}
}

// NewWithCommand creates an opener that runs command instead of the platform default.
func NewWithCommand(command CommandFunc) *Opener {
	return &Opener{command: command}
}

// Ensure Opener implements ports.LinkSink.
var _ ports.LinkSink = (*Opener)(nil)

// Deliver opens url in the browser.
func (o *Opener) Deliver(url string) error {
	if err := o.command(url).Run(); err != nil {
		return fmt.Errorf("failed to open browser: %w", err)
	}
	return nil
}
