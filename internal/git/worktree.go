package git

import (
	"context"
	"io"
	"strings"
)

const (
	worktreePrefix = "worktree "
	branchPrefix   = "branch "
	headsPrefix    = "refs/heads/"

	// branchLookahead is how many lines after a worktree line are searched
	// for its branch line.
	branchLookahead = 4
)

// Worktree represents a git worktree
type Worktree struct {
	Path   string `json:"path"`
	Branch string `json:"branch"`
}

// ListWorktrees returns the worktrees git knows about, in the order git
// reports them. A failing `git worktree list` yields an empty list: callers
// cannot tell "no worktrees" from "listing failed".
func (c *Client) ListWorktrees(ctx context.Context) []Worktree {
	output, err := c.run(ctx, "worktree", "list", "--porcelain")
	if err != nil {
		c.logger.Debug("listing worktrees failed", "err", err)
		return []Worktree{}
	}
	return ParseWorktreeList(output)
}

// ParseWorktreeList parses `git worktree list --porcelain` output.
//
// Blocks are separated by blank lines. A block opened by a `worktree <path>`
// line becomes an entry when one of the following four lines of the same
// block is `branch refs/heads/<name>`; blocks without a branch (the detached
// main worktree, for example) are dropped.
func ParseWorktreeList(output string) []Worktree {
	worktrees := []Worktree{}

	output = strings.TrimSpace(output)
	if output == "" {
		return worktrees
	}

	lines := strings.Split(output, "\n")
	for i := range lines {
		lines[i] = strings.TrimRight(lines[i], "\r")
	}

	i := 0
	for i < len(lines) {
		if !strings.HasPrefix(lines[i], worktreePrefix) {
			i++
			continue
		}

		path := lines[i][len(worktreePrefix):]
		branch := ""
		for j := i + 1; j < len(lines) && j <= i+branchLookahead; j++ {
			if lines[j] == "" {
				break
			}
			if strings.HasPrefix(lines[j], branchPrefix) {
				branch = strings.TrimPrefix(lines[j][len(branchPrefix):], headsPrefix)
				break
			}
		}

		if branch != "" {
			worktrees = append(worktrees, Worktree{Path: path, Branch: branch})
		}

		for i < len(lines) && lines[i] != "" {
			i++
		}
		i++
	}

	return worktrees
}

// AddWorktree runs `git worktree add <path> -b <branch>`, creating branch
// from the current HEAD. Git's output is streamed to stdout and stderr.
func (c *Client) AddWorktree(ctx context.Context, path, branch string, stdout, stderr io.Writer) error {
	return c.stream(ctx, stdout, stderr, "worktree", "add", path, "-b", branch)
}

// RemoveWorktree runs `git worktree remove`, adding --force when requested so
// that worktrees with local modifications can be removed.
func (c *Client) RemoveWorktree(ctx context.Context, path string, force bool, stdout, stderr io.Writer) error {
	args := []string{"worktree", "remove"}
	if force {
		args = append(args, "--force")
	}
	args = append(args, path)

	return c.stream(ctx, stdout, stderr, args...)
}
