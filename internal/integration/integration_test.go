package integration

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/xvierd/sglink/internal/adapters/git"
	"github.com/xvierd/sglink/internal/domain"
	"github.com/xvierd/sglink/internal/services"
	"github.com/xvierd/sglink/internal/testutil/gitrepo"
)

// setupLinkService wires the link service to real git adapters.
func setupLinkService(t *testing.T) *services.LinkService {
	t.Helper()
	gitrepo.RequireGit(t)
	return services.NewLinkService(git.NewFactsFactory(nil), "", nil)
}

// TestDirectoryLinkAtUpstream links a directory when HEAD equals origin/main.
func TestDirectoryLinkAtUpstream(t *testing.T) {
	svc := setupLinkService(t)
	ctx := context.Background()

	repo := gitrepo.New(t, "git@github.com:acme/widget.git")
	head := repo.Commit("pkg/x/x.go", "package x\n")
	repo.Push("main", head)

	result, err := svc.Link(ctx, domain.InvocationContext{
		Root:         repo.Root,
		SelectedPath: filepath.Join(repo.Root, "pkg", "x"),
	})
	if err != nil {
		t.Fatalf("Link() error = %v", err)
	}

	want := "https://sourcegraph.com/github.com/acme/widget@" + head.String() + "/-/tree/pkg/x"
	if result.URL != want {
		t.Errorf("URL = %q, want %q", result.URL, want)
	}
	if result.IsBlocked() {
		t.Errorf("unexpected block: %q", result.Blocked)
	}
}

// TestAheadOfUpstreamIsBlocked refuses to link commits that are not pushed.
func TestAheadOfUpstreamIsBlocked(t *testing.T) {
	svc := setupLinkService(t)
	ctx := context.Background()

	repo := gitrepo.New(t, "git@github.com:acme/widget.git")
	repo.Push("main", repo.Commit("a.txt", "one"))
	repo.Commit("a.txt", "two")
	head := repo.Commit("a.txt", "three")

	result, err := svc.Link(ctx, domain.InvocationContext{Root: repo.Root})
	if err != nil {
		t.Fatalf("Link() error = %v", err)
	}

	if result.URL != "" {
		t.Errorf("URL = %q, want none", result.URL)
	}
	if !strings.Contains(result.Blocked, head.String()[:6]) {
		t.Errorf("Blocked = %q, want it to name %s", result.Blocked, head.String()[:6])
	}
}

// TestUnsavedDocumentIsBlocked refuses line links into documents with unsaved edits.
func TestUnsavedDocumentIsBlocked(t *testing.T) {
	svc := setupLinkService(t)
	ctx := context.Background()

	repo := gitrepo.New(t, "https://github.com/acme/widget.git")
	repo.Push("main", repo.Commit("src/a.go", "package src\n"))

	result, err := svc.Link(ctx, domain.InvocationContext{
		Root: repo.Root,
		Document: &domain.ActiveDocument{
			Path:      filepath.Join(repo.Root, "src", "a.go"),
			Dirty:     true,
			CaretLine: 0,
		},
		LineSelection: true,
	})
	if err != nil {
		t.Fatalf("Link() error = %v", err)
	}

	if result.URL != "" {
		t.Errorf("URL = %q, want none", result.URL)
	}
	if result.Blocked != domain.MsgCommitAndPush {
		t.Errorf("Blocked = %q, want %q", result.Blocked, domain.MsgCommitAndPush)
	}
}

// TestCleanDocumentLineLink links the caret line of a clean document.
func TestCleanDocumentLineLink(t *testing.T) {
	svc := setupLinkService(t)
	ctx := context.Background()

	repo := gitrepo.New(t, "https://github.com/acme/widget")
	head := repo.Commit("src/a.go", "package src\n\nfunc A() {}\n")
	repo.Push("main", head)

	result, err := svc.Link(ctx, domain.InvocationContext{
		Root:          repo.Root,
		Document:      &domain.ActiveDocument{Path: filepath.Join(repo.Root, "src", "a.go"), CaretLine: 2},
		LineSelection: true,
	})
	if err != nil {
		t.Fatalf("Link() error = %v", err)
	}

	want := "https://sourcegraph.com/github.com/acme/widget@" + head.String() + "/-/blob/src/a.go#L3"
	if result.URL != want {
		t.Errorf("URL = %q, want %q", result.URL, want)
	}
}

// TestDetachedHeadIsBlocked never links a detached HEAD.
func TestDetachedHeadIsBlocked(t *testing.T) {
	svc := setupLinkService(t)
	ctx := context.Background()

	repo := gitrepo.New(t, "https://github.com/acme/widget.git")
	head := repo.Commit("a.txt", "one")
	repo.Push("main", head)
	repo.Detach(head)

	result, err := svc.Link(ctx, domain.InvocationContext{Root: repo.Root})
	if err != nil {
		t.Fatalf("Link() error = %v", err)
	}
	if result.Blocked != domain.PushUpstreamMessage(head.String()) {
		t.Errorf("Blocked = %q", result.Blocked)
	}
}
