package domain

import "fmt"

// TargetKind identifies which location a link points at.
type TargetKind string

const (
	TargetRepoRoot  TargetKind = "repo"
	TargetDirectory TargetKind = "directory"
	TargetFile      TargetKind = "file"
	TargetFileLine  TargetKind = "line"
)

// LinkTarget is exactly one of RepoRoot, Directory(path), File(path) or
// FileLine(path, line). Path is repo-root-relative with forward slashes and no
// leading slash; Line is 1-based and only set for FileLine.
type LinkTarget struct {
	Kind TargetKind
	Path string
	Line int
}

// RepoRoot returns a target for the repository root.
func RepoRoot() LinkTarget {
	return LinkTarget{Kind: TargetRepoRoot}
}

// Directory returns a target for a directory inside the repository.
func Directory(path string) LinkTarget {
	return LinkTarget{Kind: TargetDirectory, Path: path}
}

// File returns a target for a file inside the repository.
func File(path string) LinkTarget {
	return LinkTarget{Kind: TargetFile, Path: path}
}

// FileLine returns a target for a single 1-based line of a file.
func FileLine(path string, line int) LinkTarget {
	return LinkTarget{Kind: TargetFileLine, Path: path, Line: line}
}

// Validate checks that the fields match the kind.
func (t LinkTarget) Validate() error {
	switch t.Kind {
	case TargetRepoRoot:
		return nil
	case TargetDirectory, TargetFile:
		if t.Path == "" {
			return &InvocationContextError{Reason: fmt.Sprintf("%s target without a path", t.Kind)}
		}
		return nil
	case TargetFileLine:
		if t.Path == "" {
			return &InvocationContextError{Reason: "line target without a file"}
		}
		if t.Line < 1 {
			return &InvocationContextError{Reason: fmt.Sprintf("line %d is not 1-based", t.Line)}
		}
		return nil
	default:
		return &InvocationContextError{Reason: fmt.Sprintf("unknown target kind %q", t.Kind)}
	}
}

func (t LinkTarget) String() string {
	switch t.Kind {
	case TargetFileLine:
		return fmt.Sprintf("%s:%d", t.Path, t.Line)
	case TargetRepoRoot:
		return "<repo>"
	default:
		return t.Path
	}
}
