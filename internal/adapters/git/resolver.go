package git

import (
	"context"
	"strings"

	"github.com/xvierd/sglink/internal/domain"
	"github.com/xvierd/sglink/internal/logging"
	"github.com/xvierd/sglink/internal/ports"
)

// DetachedHead is what `rev-parse --abbrev-ref HEAD` prints without a branch.
const DetachedHead = "HEAD"

// Resolver answers link facts for one working copy by invoking git.
type Resolver struct {
	root   string
	runner ports.GitRunner
	logger logging.Logger
}

// NewResolver creates a resolver for the working copy at root.
func NewResolver(root string, runner ports.GitRunner, logger logging.Logger) *Resolver {
	if logger == nil {
		logger = logging.NewNoopLogger()
	}
	return &Resolver{root: root, runner: runner, logger: logger}
}

// Ensure Resolver implements ports.GitFacts.
var _ ports.GitFacts = (*Resolver)(nil)

// NewFactsFactory returns a ports.GitFactsFactory that builds a fresh runner
// and locator per working copy.
func NewFactsFactory(logger logging.Logger, opts ...LocatorOption) ports.GitFactsFactory {
	return func(root, gitPath string) ports.GitFacts {
		locator := NewLocator(gitPath, logger, opts...)
		return NewResolver(root, NewCommandRunner(locator, logger), logger)
	}
}

// Root returns the working-copy root.
func (r *Resolver) Root() string {
	return r.root
}

// RepositoryURI reads remote.origin.url and parses it.
func (r *Resolver) RepositoryURI(ctx context.Context) (domain.RepositoryURI, error) {
	out, err := r.runner.Run(ctx, r.root, "config", "--get", "remote.origin.url")
	if err != nil {
		return "", err
	}
	return domain.ParseRemoteURL(out)
}

// Revision returns the full commit id of HEAD.
func (r *Resolver) Revision(ctx context.Context) (string, error) {
	out, err := r.runner.Run(ctx, r.root, "rev-parse", "HEAD")
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}

// Branch returns the short branch name, or DetachedHead.
func (r *Resolver) Branch(ctx context.Context) (string, error) {
	out, err := r.runner.Run(ctx, r.root, "rev-parse", "--abbrev-ref", "HEAD")
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}

// IsRevUpstream reports whether HEAD has no commits beyond origin/<branch>.
// A detached HEAD or any git error yields false.
func (r *Resolver) IsRevUpstream(ctx context.Context, rev string) bool {
	branch, err := r.Branch(ctx)
	if err != nil {
		r.logger.Debug("branch lookup failed", "error", err.Error())
		return false
	}
	if branch == DetachedHead {
		return false
	}

	out, err := r.runner.Run(ctx, r.root, "show", "origin/"+branch+"..HEAD")
	if err != nil {
		r.logger.Debug("upstream comparison failed", "branch", branch, "rev", rev, "error", err.Error())
		return false
	}
	return strings.TrimSpace(out) == ""
}

// IsFileClean reports whether doc has no unsaved edits and no diff between
// origin and the working tree at the current revision. Git errors yield false.
func (r *Resolver) IsFileClean(ctx context.Context, doc domain.ActiveDocument) bool {
	if doc.Dirty {
		return false
	}

	rev, err := r.Revision(ctx)
	if err != nil {
		r.logger.Debug("revision lookup failed", "error", err.Error())
		return false
	}

	file := domain.TrimRootPath(r.root, doc.Path)
	out, err := r.runner.Run(ctx, r.root, "diff", "origin", rev, "--", file)
	if err != nil {
		r.logger.Debug("file diff failed", "file", file, "error", err.Error())
		return false
	}
	return strings.TrimSpace(out) == ""
}

// Ensure Resolver implements ports.FileLister.
var _ ports.FileLister = (*Resolver)(nil)

// TrackedFiles lists the files git tracks, relative to the root.
func (r *Resolver) TrackedFiles(ctx context.Context) ([]string, error) {
	out, err := r.runner.Run(ctx, r.root, "ls-files")
	if err != nil {
		return nil, err
	}
	out = strings.TrimSpace(out)
	if out == "" {
		return []string{}, nil
	}
	return strings.Split(out, "\n"), nil
}
