package services

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/xvierd/sglink/internal/domain"
)

// SelectTarget chooses the link target for an invocation: an explicit path
// is classified as Directory or File, an active document yields File or
// FileLine at the caret, and anything else yields RepoRoot.
func SelectTarget(ic domain.InvocationContext) (domain.LinkTarget, error) {
	switch {
	case ic.SelectedPath != "" && ic.Document != nil:
		return domain.LinkTarget{}, &domain.InvocationContextError{Reason: "both a path and an active document were given"}

	case ic.SelectedPath != "":
		abs := absPath(ic.Root, ic.SelectedPath)
		info, err := os.Stat(abs)
		if err != nil {
			return domain.LinkTarget{}, fmt.Errorf("failed to stat %s: %w", abs, err)
		}
		rel, err := relativeToRoot(ic.Root, abs)
		if err != nil {
			return domain.LinkTarget{}, err
		}
		if rel == "" {
			return domain.RepoRoot(), nil
		}
		if info.IsDir() {
			return domain.Directory(rel), nil
		}
		return domain.File(rel), nil

	case ic.Document != nil:
		rel, err := relativeToRoot(ic.Root, absPath(ic.Root, ic.Document.Path))
		if err != nil {
			return domain.LinkTarget{}, err
		}
		if rel == "" {
			return domain.LinkTarget{}, &domain.InvocationContextError{Reason: "active document is the repository root"}
		}
		if ic.LineSelection {
			if ic.Document.CaretLine < 0 {
				return domain.LinkTarget{}, &domain.InvocationContextError{Reason: fmt.Sprintf("caret line %d is negative", ic.Document.CaretLine)}
			}
			return domain.FileLine(rel, ic.Document.CaretLine+1), nil
		}
		return domain.File(rel), nil

	default:
		return domain.RepoRoot(), nil
	}
}

func absPath(root, path string) string {
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	if root == "" {
		if abs, err := filepath.Abs(path); err == nil {
			return abs
		}
	}
	return filepath.Join(root, path)
}

func relativeToRoot(root, abs string) (string, error) {
	rel := domain.TrimRootPath(filepath.Clean(root), abs)
	if filepath.IsAbs(rel) {
		return "", &domain.InvocationContextError{Reason: fmt.Sprintf("%s is outside the working copy %s", abs, root)}
	}
	return rel, nil
}
