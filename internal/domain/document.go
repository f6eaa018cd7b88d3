package domain

import (
	"path/filepath"
	"strings"
)

// ActiveDocument is a snapshot of the editor's current document taken at
// request start.
type ActiveDocument struct {
	// Path is the absolute file path.
	Path string
	// Dirty reports unsaved in-memory edits.
	Dirty bool
	// CaretLine is the 0-based line of the caret.
	CaretLine int
}

// InvocationContext carries everything a link request reads from its host.
type InvocationContext struct {
	// Root is the absolute working-copy root.
	Root string
	// SelectedPath is a file-tree entry chosen explicitly, if any.
	SelectedPath string
	// Document is the active editor, if any.
	Document *ActiveDocument
	// LineSelection requests a line-anchored link for Document.
	LineSelection bool
	// GitPath is the user-configured git executable override.
	GitPath string
}

// TrimRootPath returns path relative to root with forward slashes and no
// leading slash. A path outside root is returned unchanged.
func TrimRootPath(root, path string) string {
	root = strings.TrimRight(root, `/\`)
	if root == "" || !strings.HasPrefix(path, root) {
		return path
	}

	rest := path[len(root):]
	if rest != "" && rest[0] != '/' && rest[0] != '\\' {
		// sibling such as /home/u/proj2
		return path
	}

	rest = strings.TrimLeft(rest, `/\`)
	return filepath.ToSlash(rest)
}
