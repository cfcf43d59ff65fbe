package git

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"

	werrors "github.com/naoray/workhere/internal/errors"
	wexec "github.com/naoray/workhere/internal/exec"
)

// Client runs git subcommands in a single working directory.
type Client struct {
	commander wexec.Commander
	dir       string
	logger    *log.Logger
}

// NewClient returns a Client that runs git in dir through commander.
// A nil commander uses the real operating system; a nil logger discards output.
func NewClient(commander wexec.Commander, dir string, logger *log.Logger) *Client {
	if commander == nil {
		commander = &wexec.RealCommander{}
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Client{commander: commander, dir: dir, logger: logger}
}

// run executes git with output captured and returns stdout.
func (c *Client) run(ctx context.Context, args ...string) (string, error) {
	c.logger.Debug("running git", "args", strings.Join(args, " "), "dir", c.dir)

	output, err := c.commander.Run(ctx, c.dir, "git", args...)
	if err != nil {
		return string(output), fmt.Errorf("git %s: %w", strings.Join(args, " "), err)
	}
	return string(output), nil
}

// stream executes git with output passed through to stdout and stderr.
// Stderr is also captured so the returned error carries git's own message.
func (c *Client) stream(ctx context.Context, stdout, stderr io.Writer, args ...string) error {
	c.logger.Debug("running git", "args", strings.Join(args, " "), "dir", c.dir, "streamed", true)

	if stdout == nil {
		stdout = io.Discard
	}
	if stderr == nil {
		stderr = io.Discard
	}

	var captured bytes.Buffer
	err := c.commander.Stream(ctx, c.dir, stdout, io.MultiWriter(stderr, &captured), "git", args...)
	if err != nil {
		msg := strings.TrimSpace(captured.String())
		if msg != "" {
			return fmt.Errorf("%w: git %s: %v\n%s", werrors.ErrGitOperationFailed, strings.Join(args, " "), err, msg)
		}
		return fmt.Errorf("%w: git %s: %v", werrors.ErrGitOperationFailed, strings.Join(args, " "), err)
	}
	return nil
}
