// Package notification provides desktop notification utilities.
package notification

import (
	"time"

	"github.com/gen2brain/beeep"
	"github.com/xvierd/sglink/internal/config"
	"github.com/xvierd/sglink/internal/logging"
	"github.com/xvierd/sglink/internal/ports"
)

const title = "Sourcegraph"

// Notifier delivers status messages as desktop notifications.
type Notifier struct {
	cfg    *config.NotificationConfig
	logger logging.Logger
	notify func(title, message string) error
}

// New creates a new notifier with the given configuration. A nil logger
// discards delivery failures.
func New(cfg *config.NotificationConfig, logger logging.Logger) *Notifier {
	if logger == nil {
		logger = logging.NewNoopLogger()
	}
	return &Notifier{cfg: cfg, logger: logger, notify: func(title, message string) error {
		return beeep.Notify(title, message, "")
	}}
}

// Ensure Notifier implements ports.StatusReporter.
var _ ports.StatusReporter = (*Notifier)(nil)

// Notify displays a desktop notification if enabled.
func (n *Notifier) Notify(message string) error {
	if !n.IsEnabled() {
		return nil
	}
	return n.notify(title, message)
}

// Status shows message as a notification. Desktop notifications expire on
// their own, so d is not used.
func (n *Notifier) Status(message string, d time.Duration) {
	if err := n.Notify(message); err != nil {
		n.logger.Debug("notification failed", "error", err.Error())
	}
}

// IsEnabled returns true if notifications are enabled.
func (n *Notifier) IsEnabled() bool {
	return n.cfg != nil && n.cfg.Enabled
}
