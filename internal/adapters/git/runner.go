package git

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"sync"

	"github.com/xvierd/sglink/internal/domain"
	"github.com/xvierd/sglink/internal/logging"
	"github.com/xvierd/sglink/internal/ports"
)

// CommandRunner executes git subcommands. The executable is located once per
// runner.
type CommandRunner struct {
	locator ports.GitLocator
	logger  logging.Logger

	once sync.Once
	path string
}

// NewCommandRunner creates a runner that resolves git through locator.
func NewCommandRunner(locator ports.GitLocator, logger logging.Logger) *CommandRunner {
	if logger == nil {
		logger = logging.NewNoopLogger()
	}
	return &CommandRunner{locator: locator, logger: logger}
}

// Ensure CommandRunner implements ports.GitRunner.
var _ ports.GitRunner = (*CommandRunner)(nil)

// Executable returns the located git executable.
func (r *CommandRunner) Executable(ctx context.Context) string {
	r.once.Do(func() {
		r.path = r.locator.Locate(ctx)
	})
	return r.path
}

// Run executes git with args in dir and returns stdout untrimmed. Any output
// on stderr fails the invocation regardless of the exit code; a non-zero
// exit with a silent stderr is not an error.
func (r *CommandRunner) Run(ctx context.Context, dir string, args ...string) (string, error) {
	path := r.Executable(ctx)

	cmd := exec.CommandContext(ctx, path, args...)
	cmd.Dir = dir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	r.logger.Debug("running git", "path", path, "dir", dir, "args", args)

	err := cmd.Run()
	if stderr.Len() > 0 {
		return "", &domain.GitCommandError{
			Path:   path,
			Args:   args,
			Stdout: stdout.String(),
			Stderr: stderr.String(),
			Err:    err,
		}
	}
	if err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) || ctx.Err() != nil {
			return "", &domain.GitCommandError{Path: path, Args: args, Stdout: stdout.String(), Err: err}
		}
		r.logger.Debug("git exited non-zero without stderr", "args", args, "code", exitErr.ExitCode())
	}

	return stdout.String(), nil
}
