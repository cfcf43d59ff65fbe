package cli

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	werrors "github.com/naoray/workhere/internal/errors"
	wexec "github.com/naoray/workhere/internal/exec"
)

func requireNoError(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

// createRepo initialises a repository with one commit on main and makes the
// commands run from its root against the real git binary.
func createRepo(t *testing.T) string {
	t.Helper()
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not available")
	}

	root := tempRoot(t)
	for _, args := range [][]string{
		{"init", "-b", "main"},
		{"config", "user.email", "test@example.com"},
		{"config", "user.name", "Test User"},
	} {
		cmd := exec.Command("git", args...)
		cmd.Dir = root
		requireNoError(t, cmd.Run())
	}
	requireNoError(t, os.WriteFile(filepath.Join(root, "README.md"), []byte("test"), 0644))
	for _, args := range [][]string{{"add", "."}, {"commit", "-m", "Initial commit"}} {
		cmd := exec.Command("git", args...)
		cmd.Dir = root
		requireNoError(t, cmd.Run())
	}

	setup(t, root, root)
	newCommander = func() wexec.Commander { return &wexec.RealCommander{} }

	return root
}

func TestEndToEnd_AddListRemove(t *testing.T) {
	root := createRepo(t)
	path := filepath.Join(root, ".git", "worktree", "feature")

	_, _, err := execute(t, "add", "feature", "--script", "touch setup-ran")
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(path, "README.md"))
	assert.FileExists(t, filepath.Join(path, "setup-ran"))

	out, _, err := execute(t, "list")
	require.NoError(t, err)
	assert.Equal(t, "Current worktrees:\n  feature -> "+path+"\n", out)

	_, _, err = execute(t, "add", "feature")
	assert.ErrorIs(t, err, werrors.ErrWorktreeExists)

	out, _, err = execute(t, "remove", "feature", "--force")
	require.NoError(t, err)
	assert.Contains(t, out, "Deleted branch 'feature'")
	assert.NoDirExists(t, path)

	out, _, err = execute(t, "list")
	require.NoError(t, err)
	assert.Equal(t, "No worktrees found.\n", out)
}

func TestEndToEnd_Reset(t *testing.T) {
	root := createRepo(t)

	for _, branch := range []string{"one", "two"} {
		_, _, err := execute(t, "add", branch)
		require.NoError(t, err)
	}

	out, _, err := execute(t, "reset")
	require.NoError(t, err)
	assert.Contains(t, out, "Found 2 worktree(s) to remove:")
	assert.Contains(t, out, "All worktrees removed successfully.")
	assert.DirExists(t, root)

	out, _, err = execute(t, "reset")
	require.NoError(t, err)
	assert.Equal(t, "No worktrees found to remove.\n", out)
}

func TestEndToEnd_SymlinkedCheckout(t *testing.T) {
	root := createRepo(t)
	link := filepath.Join(t.TempDir(), "link")
	requireNoError(t, os.Symlink(root, link))
	t.Chdir(link)
	t.Setenv("PWD", link)
	getwd = os.Getwd

	out, _, err := execute(t, "list")

	require.NoError(t, err)
	assert.Equal(t, "No worktrees found.\n", out)
}
