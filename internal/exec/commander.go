// Package exec provides the subprocess seam used by workhere.
// Every git invocation and post-creation script goes through a Commander so
// that tests can substitute a MockCommander for the real operating system.
package exec

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
)

// Commander defines the interface for executing commands.
type Commander interface {
	// Run executes a command in dir and returns its captured stdout.
	// On failure the returned error carries the trimmed stderr text.
	Run(ctx context.Context, dir string, command string, args ...string) ([]byte, error)

	// Stream executes a command in dir with its output written directly to
	// stdout and stderr and the process stdin inherited.
	Stream(ctx context.Context, dir string, stdout, stderr io.Writer, command string, args ...string) error
}

// RealCommander executes commands using the real operating system.
type RealCommander struct{}

// Run executes the command using exec.CommandContext.
func (c *RealCommander) Run(ctx context.Context, dir string, command string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, command, args...)
	cmd.Dir = dir

	var stderr strings.Builder
	cmd.Stderr = &stderr

	output, err := cmd.Output()
	if err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return output, fmt.Errorf("%w: %s", err, msg)
		}
		return output, err
	}
	return output, nil
}

// Stream executes the command with the given writers attached.
func (c *RealCommander) Stream(ctx context.Context, dir string, stdout, stderr io.Writer, command string, args ...string) error {
	cmd := exec.CommandContext(ctx, command, args...)
	cmd.Dir = dir
	cmd.Stdin = os.Stdin
	cmd.Stdout = stdout
	cmd.Stderr = stderr
	return cmd.Run()
}

// CommandExecutor provides a higher-level interface for common execution patterns.
type CommandExecutor struct {
	commander Commander
}

// NewCommandExecutor creates a new CommandExecutor with the given Commander.
// If commander is nil, a RealCommander is used.
func NewCommandExecutor(commander Commander) *CommandExecutor {
	if commander == nil {
		commander = &RealCommander{}
	}
	return &CommandExecutor{commander: commander}
}

// StreamShell executes a command through sh -c with output streamed to the
// given writers. User scripts run this way so that their output reaches the
// terminal as it is produced.
func (e *CommandExecutor) StreamShell(ctx context.Context, dir string, stdout, stderr io.Writer, command string) error {
	if strings.TrimSpace(command) == "" {
		return fmt.Errorf("empty shell command")
	}
	return e.commander.Stream(ctx, dir, stdout, stderr, "sh", "-c", command)
}
