package notification

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/xvierd/sglink/internal/config"
	"github.com/xvierd/sglink/internal/logging"
)

func TestNotifier_Disabled(t *testing.T) {
	calls := 0
	n := New(&config.NotificationConfig{Enabled: false}, nil)
	n.notify = func(string, string) error { calls++; return nil }

	n.Status("Push revision abcdef upstream first!", time.Second)
	assert.False(t, n.IsEnabled())
	assert.Zero(t, calls)
}

func TestNotifier_Enabled(t *testing.T) {
	var gotTitle, gotMessage string
	n := New(&config.NotificationConfig{Enabled: true}, nil)
	n.notify = func(title, message string) error {
		gotTitle, gotMessage = title, message
		return nil
	}

	n.Status("Copied Sourcegraph link!", time.Second)
	assert.Equal(t, "Sourcegraph", gotTitle)
	assert.Equal(t, "Copied Sourcegraph link!", gotMessage)
}

func TestNotifier_NilConfig(t *testing.T) {
	n := New(nil, nil)
	assert.False(t, n.IsEnabled())
	assert.NoError(t, n.Notify("x"))
}

func TestNotifier_DeliveryFailureIsLogged(t *testing.T) {
	var buf bytes.Buffer
	n := New(&config.NotificationConfig{Enabled: true}, logging.New(&buf, zerolog.DebugLevel))
	n.notify = func(string, string) error { return errors.New("no notification daemon") }

	n.Status("Copied Sourcegraph link!", time.Second)
	assert.Contains(t, buf.String(), "notification failed")
	assert.Contains(t, buf.String(), "no notification daemon")
}
