// Package gitrepo builds throwaway git working copies for tests. Remote
// branches are recorded as remote-tracking refs, so nothing touches the
// network.
package gitrepo

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-git/go-git/v5"
	gitconfig "github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/require"
)

// Repo is a working copy on branch main with an optional origin remote.
type Repo struct {
	Root string

	t    testing.TB
	repo *git.Repository
}

// RequireGit skips the test when no git executable is on PATH.
func RequireGit(t testing.TB) {
	t.Helper()
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git executable not available")
	}
}

// New initializes a repository in a temp dir. An empty remoteURL leaves
// origin unset.
func New(t testing.TB, remoteURL string) *Repo {
	t.Helper()

	root := t.TempDir()
	repo, err := git.PlainInit(root, false)
	require.NoError(t, err)

	head := plumbing.NewSymbolicReference(plumbing.HEAD, plumbing.NewBranchReferenceName("main"))
	require.NoError(t, repo.Storer.SetReference(head))

	if remoteURL != "" {
		_, err = repo.CreateRemote(&gitconfig.RemoteConfig{Name: "origin", URLs: []string{remoteURL}})
		require.NoError(t, err)
	}

	return &Repo{Root: root, t: t, repo: repo}
}

// Write creates or overwrites rel without staging it and returns its
// absolute path.
func (r *Repo) Write(rel, content string) string {
	r.t.Helper()
	abs := filepath.Join(r.Root, filepath.FromSlash(rel))
	require.NoError(r.t, os.MkdirAll(filepath.Dir(abs), 0755))
	require.NoError(r.t, os.WriteFile(abs, []byte(content), 0644))
	return abs
}

// Commit writes rel and commits it.
func (r *Repo) Commit(rel, content string) plumbing.Hash {
	r.t.Helper()
	r.Write(rel, content)

	wt, err := r.repo.Worktree()
	require.NoError(r.t, err)
	_, err = wt.Add(rel)
	require.NoError(r.t, err)

	hash, err := wt.Commit("update "+rel, &git.CommitOptions{
		Author: &object.Signature{Name: "Test User", Email: "test@example.com", When: time.Now()},
	})
	require.NoError(r.t, err)
	return hash
}

// Push records hash as origin/<branch> and points origin/HEAD at it.
func (r *Repo) Push(branch string, hash plumbing.Hash) {
	r.t.Helper()
	remoteRef := plumbing.NewRemoteReferenceName("origin", branch)
	require.NoError(r.t, r.repo.Storer.SetReference(plumbing.NewHashReference(remoteRef, hash)))
	require.NoError(r.t, r.repo.Storer.SetReference(
		plumbing.NewSymbolicReference(plumbing.NewRemoteHEADReferenceName("origin"), remoteRef)))
}

// Detach points HEAD directly at hash.
func (r *Repo) Detach(hash plumbing.Hash) {
	r.t.Helper()
	require.NoError(r.t, r.repo.Storer.SetReference(plumbing.NewHashReference(plumbing.HEAD, hash)))
}

// CheckoutNewBranch creates name at HEAD and switches to it.
func (r *Repo) CheckoutNewBranch(name string) {
	r.t.Helper()
	head, err := r.repo.Head()
	require.NoError(r.t, err)
	branch := plumbing.NewBranchReferenceName(name)
	require.NoError(r.t, r.repo.Storer.SetReference(plumbing.NewHashReference(branch, head.Hash())))
	require.NoError(r.t, r.repo.Storer.SetReference(plumbing.NewSymbolicReference(plumbing.HEAD, branch)))
}
