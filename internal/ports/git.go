// Package ports defines the interfaces between the link pipeline and its
// host environment following hexagonal architecture principles.
package ports

import (
	"context"

	"github.com/xvierd/sglink/internal/domain"
)

// GitLocator determines how to invoke git.
// This is a driven port (implemented by adapters).
type GitLocator interface {
	// Locate returns an absolute path or bare command name. It never fails.
	Locate(ctx context.Context) string
}

// GitRunner runs a single git subcommand in a working directory.
// This is a driven port (implemented by adapters).
type GitRunner interface {
	// Run returns stdout. Any stderr output is an error.
	Run(ctx context.Context, dir string, args ...string) (string, error)
}

// GitFacts resolves the repository facts a link depends on.
// This is a driven port (implemented by adapters).
type GitFacts interface {
	// RepositoryURI parses remote.origin.url.
	RepositoryURI(ctx context.Context) (domain.RepositoryURI, error)

	// Revision returns the commit id of HEAD.
	Revision(ctx context.Context) (string, error)

	// Branch returns the current branch, or "HEAD" when detached.
	Branch(ctx context.Context) (string, error)

	// IsRevUpstream reports whether HEAD equals its origin branch tip.
	// Errors degrade to false.
	IsRevUpstream(ctx context.Context, rev string) bool

	// IsFileClean reports whether the document has no unsaved edits and no
	// diff against origin. Errors degrade to false.
	IsFileClean(ctx context.Context, doc domain.ActiveDocument) bool
}

// GitFactsFactory creates a fact resolver bound to one working copy.
type GitFactsFactory func(root, gitPath string) GitFacts

// WorkspaceFinder locates the working-copy root that contains a path.
type WorkspaceFinder interface {
	FindRoot(path string) (string, error)
}

// FileLister lists files tracked in the working copy.
type FileLister interface {
	TrackedFiles(ctx context.Context) ([]string, error)
}
