// Package clipboard copies links to the system clipboard.
package clipboard

import (
	"fmt"
	"time"

	"github.com/atotto/clipboard"
	"github.com/xvierd/sglink/internal/domain"
	"github.com/xvierd/sglink/internal/ports"
)

// confirmDuration is how long the copy confirmation stays visible.
const confirmDuration = time.Second

// Copier implements ports.LinkSink with the system clipboard.
type Copier struct {
	status ports.StatusReporter
	write  func(string) error
}

// New creates a copier that confirms each copy through status.
func New(status ports.StatusReporter) *Copier {
	return &Copier{status: status, write: writeAll}
}

// Ensure Copier implements ports.LinkSink.
var _ ports.LinkSink = (*Copier)(nil)

// Deliver copies url and confirms once the clipboard holds it.
func (c *Copier) Deliver(url string) error {
	if err := c.write(url); err != nil {
		return fmt.Errorf("failed to copy link: %w", err)
	}
	if c.status != nil {
		c.status.Status(domain.MsgCopied, confirmDuration)
	}
	return nil
}

func writeAll(text string) error {
	if clipboard.Unsupported {
		return fmt.Errorf("clipboard is not supported on this system")
	}
	return clipboard.WriteAll(text)
}
