package worktree

import (
	"context"
	"fmt"

	werrors "github.com/naoray/workhere/internal/errors"
	"github.com/naoray/workhere/internal/git"
)

// CheckGitRepository verifies that client's directory is inside a git
// working directory.
func CheckGitRepository(ctx context.Context, client *git.Client) error {
	if _, err := client.GitDir(ctx); err != nil {
		return werrors.ErrNotGitRepository
	}
	return nil
}

// CheckRepositoryRoot verifies that cwd is exactly the repository's top-level
// directory as reported by git, and returns cwd unchanged when it is.
func CheckRepositoryRoot(ctx context.Context, client *git.Client, cwd string) (string, error) {
	top, err := client.TopLevel(ctx)
	if err != nil {
		return "", fmt.Errorf("%w: %v", werrors.ErrNotRepositoryRoot, err)
	}
	if top != cwd {
		return "", werrors.ErrNotRepositoryRoot
	}
	return cwd, nil
}
