// Package git resolves link facts from a git working copy: the executable
// locator, the command runner, the fact resolver and working-copy discovery.
package git

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-git/go-git/v5"
	"github.com/xvierd/sglink/internal/domain"
	"github.com/xvierd/sglink/internal/ports"
)

// Workspace finds working-copy roots using go-git.
type Workspace struct{}

// NewWorkspace creates a new working-copy finder.
func NewWorkspace() *Workspace {
	return &Workspace{}
}

// Ensure Workspace implements ports.WorkspaceFinder.
var _ ports.WorkspaceFinder = (*Workspace)(nil)

// FindRoot returns the absolute root of the working copy containing path.
// path may be a file or a directory.
func (w *Workspace) FindRoot(path string) (string, error) {
	if path == "" {
		var err error
		path, err = os.Getwd()
		if err != nil {
			return "", fmt.Errorf("failed to get working directory: %w", err)
		}
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("failed to resolve %s: %w", path, err)
	}

	if info, err := os.Stat(abs); err == nil && !info.IsDir() {
		abs = filepath.Dir(abs)
	}

	repo, err := git.PlainOpenWithOptions(abs, &git.PlainOpenOptions{
		DetectDotGit:          true,
		EnableDotGitCommonDir: true,
	})
	if err != nil {
		if errors.Is(err, git.ErrRepositoryNotExists) {
			return "", fmt.Errorf("%w: %s", domain.ErrNotInRepository, abs)
		}
		return "", fmt.Errorf("failed to open git repository: %w", err)
	}

	worktree, err := repo.Worktree()
	if err != nil {
		// bare repositories have no working copy
		return "", fmt.Errorf("%w: %v", domain.ErrNotInRepository, err)
	}

	return worktree.Filesystem.Root(), nil
}
