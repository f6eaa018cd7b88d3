package git

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xvierd/sglink/internal/domain"
	"github.com/xvierd/sglink/internal/testutil/gitrepo"
)

func TestWorkspace_FindRoot(t *testing.T) {
	f := gitrepo.New(t, "")
	file := f.Write("pkg/deep/file.go", "package deep\n")

	want, err := filepath.EvalSymlinks(f.Root)
	require.NoError(t, err)

	w := NewWorkspace()
	for _, start := range []string{f.Root, filepath.Dir(file), file} {
		got, err := w.FindRoot(start)
		require.NoError(t, err, start)

		got, err = filepath.EvalSymlinks(got)
		require.NoError(t, err)
		assert.Equal(t, want, got, "start %s", start)
	}
}

func TestWorkspace_FindRoot_NotARepository(t *testing.T) {
	dir := t.TempDir()
	if _, err := os.Stat(filepath.Join(filepath.Dir(dir), ".git")); err == nil {
		t.Skip("temp dir is inside a git repository")
	}

	_, err := NewWorkspace().FindRoot(dir)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrNotInRepository), "got %v", err)
}
