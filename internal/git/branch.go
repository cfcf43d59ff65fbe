package git

import (
	"context"
	"fmt"

	werrors "github.com/naoray/workhere/internal/errors"
)

// DeleteBranch deletes a local branch with `git branch -d`, or `-D` when
// force is set. Git's output is captured rather than shown.
func (c *Client) DeleteBranch(ctx context.Context, branch string, force bool) error {
	flag := "-d"
	if force {
		flag = "-D"
	}

	if _, err := c.run(ctx, "branch", flag, branch); err != nil {
		return fmt.Errorf("%w: deleting branch: %v", werrors.ErrGitOperationFailed, err)
	}
	return nil
}
