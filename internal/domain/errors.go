package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for the link resolution pipeline.
var (
	ErrUnrecognizedRemoteFormat = errors.New("unrecognized remote format")
	ErrToolInvocation           = errors.New("git invocation failed")
	ErrInvocationContext        = errors.New("invalid invocation context")
	ErrNotInRepository          = errors.New("not in a git repository")
)

// RemoteFormatError reports an origin URL that is neither an HTTPS nor an
// SSH GitHub remote.
type RemoteFormatError struct {
	URL string
}

func (e *RemoteFormatError) Error() string {
	return fmt.Sprintf("unexpected origin url: %q", e.URL)
}

// Is returns true if the target error is ErrUnrecognizedRemoteFormat
func (e *RemoteFormatError) Is(target error) bool {
	return target == ErrUnrecognizedRemoteFormat
}

// GitCommandError represents a git invocation that wrote to stderr or could
// not be started.
type GitCommandError struct {
	Path   string
	Args   []string
	Stdout string
	Stderr string
	Err    error
}

func (e *GitCommandError) Error() string {
	msg := fmt.Sprintf("git command failed: %s %s", e.Path, strings.Join(e.Args, " "))
	if e.Stderr != "" {
		msg += fmt.Sprintf("\nstderr: %s", strings.TrimSpace(e.Stderr))
	}
	if e.Err != nil {
		msg += fmt.Sprintf("\n%v", e.Err)
	}
	return msg
}

// Is returns true if the target error is ErrToolInvocation
func (e *GitCommandError) Is(target error) bool {
	return target == ErrToolInvocation
}

func (e *GitCommandError) Unwrap() error {
	return e.Err
}

// InvocationContextError is returned when a link is requested with arguments
// that map to no target.
type InvocationContextError struct {
	Reason string
}

func (e *InvocationContextError) Error() string {
	return "unexpected options: " + e.Reason
}

// Is returns true if the target error is ErrInvocationContext
func (e *InvocationContextError) Is(target error) bool {
	return target == ErrInvocationContext
}
