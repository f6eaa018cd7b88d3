package ports

import "time"

// LinkSink consumes a finished link.
type LinkSink interface {
	Deliver(url string) error
}

// LinkSinkFunc adapts a function to LinkSink.
type LinkSinkFunc func(url string) error

// Deliver calls f(url).
func (f LinkSinkFunc) Deliver(url string) error {
	return f(url)
}

// StatusReporter shows transient human-readable status messages.
type StatusReporter interface {
	Status(message string, d time.Duration)
}
