package git

import (
	"context"
	"strings"
)

// GitDir runs `git rev-parse --git-dir`. It succeeds only inside a git
// working directory; the output is discarded by callers that merely probe.
func (c *Client) GitDir(ctx context.Context) (string, error) {
	output, err := c.run(ctx, "rev-parse", "--git-dir")
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(output), nil
}

// TopLevel returns the absolute path of the repository's top-level directory
// with surrounding whitespace removed.
func (c *Client) TopLevel(ctx context.Context) (string, error) {
	output, err := c.run(ctx, "rev-parse", "--show-toplevel")
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(output), nil
}
