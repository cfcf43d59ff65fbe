// Package worktree implements workhere's commands on top of the git client:
// creating worktrees under the managed directory, removing them one at a time
// or all at once, and listing them.
package worktree

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	werrors "github.com/naoray/workhere/internal/errors"
	wexec "github.com/naoray/workhere/internal/exec"
	"github.com/naoray/workhere/internal/git"
	"github.com/naoray/workhere/internal/names"
	"github.com/naoray/workhere/internal/ui"
	"github.com/naoray/workhere/internal/utils"
)

// Options configures a Manager. Zero values select production defaults.
type Options struct {
	Commander wexec.Commander
	Printer   *ui.Printer
	Logger    *log.Logger
	Names     *names.Generator
	Getwd     func() (string, error)
}

// Manager runs worktree commands. All subprocesses run sequentially.
type Manager struct {
	commander wexec.Commander
	scripts   *wexec.CommandExecutor
	printer   *ui.Printer
	logger    *log.Logger
	names     *names.Generator
	getwd     func() (string, error)
}

// NewManager creates a Manager from opts.
func NewManager(opts Options) *Manager {
	if opts.Commander == nil {
		opts.Commander = &wexec.RealCommander{}
	}
	if opts.Printer == nil {
		opts.Printer = ui.NewPrinter(os.Stdout, os.Stderr)
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Names == nil {
		opts.Names = names.NewGenerator()
	}
	if opts.Getwd == nil {
		opts.Getwd = os.Getwd
	}

	return &Manager{
		commander: opts.Commander,
		scripts:   wexec.NewCommandExecutor(opts.Commander),
		printer:   opts.Printer,
		logger:    opts.Logger,
		names:     opts.Names,
		getwd:     opts.Getwd,
	}
}

// AddOptions configures Add.
type AddOptions struct {
	// Branch is created for the worktree; empty generates a random name.
	Branch string

	// Script runs through sh -c inside the new worktree.
	Script string

	// Prefix names the folder <repo>-<branch> instead of <branch>.
	Prefix bool

	// Dir overrides the managed directory (see utils.WorktreeDir).
	Dir string
}

// RemoveOptions configures Remove.
type RemoveOptions struct {
	Branch string
	Force  bool
	Dir    string
}

// ResetOptions configures Reset.
type ResetOptions struct {
	Force bool
	Dir   string

	// Confirm, when set, is asked before anything is removed.
	Confirm func(count int) (bool, error)
}

// ListOptions configures List.
type ListOptions struct {
	Dir  string
	JSON bool
}

// Guard checks that the process runs at the root of a git repository and
// returns that root. Symlinks in the working directory are resolved first
// because git reports the physical top-level path.
func (m *Manager) Guard(ctx context.Context) (string, error) {
	cwd, err := m.getwd()
	if err != nil {
		return "", fmt.Errorf("getting current directory: %w", err)
	}
	if resolved, err := filepath.EvalSymlinks(cwd); err == nil {
		cwd = resolved
	}

	client := m.client(cwd)
	if err := CheckGitRepository(ctx, client); err != nil {
		return "", err
	}
	return CheckRepositoryRoot(ctx, client, cwd)
}

// Add creates a worktree on a new branch under the managed directory and
// returns its path. A failing script leaves the worktree in place.
func (m *Manager) Add(ctx context.Context, root string, opts AddOptions) (string, error) {
	branch := opts.Branch
	if branch == "" {
		branch = m.names.Generate()
		m.logger.Debug("generated branch name", "branch", branch)
	}

	dir := utils.WorktreeDir(root, opts.Dir)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("creating worktree directory: %w", err)
	}

	path := filepath.Join(dir, utils.FolderName(root, branch, opts.Prefix))
	m.logger.Debug("resolved worktree path", "dir", dir, "path", path)

	client := m.client(root)
	for _, wt := range client.ListWorktrees(ctx) {
		if wt.Path == path {
			return "", fmt.Errorf("%w: '%s' at %s", werrors.ErrWorktreeExists, branch, path)
		}
	}

	m.printer.Info("Creating worktree '%s' at %s...", branch, path)
	if err := client.AddWorktree(ctx, path, branch, m.printer.Out, m.printer.Err); err != nil {
		return "", fmt.Errorf("creating worktree: %w", err)
	}
	m.printer.Success("Worktree '%s' created successfully at %s", branch, path)

	if opts.Script != "" {
		m.printer.Info("Executing script: %s", opts.Script)
		if err := m.scripts.StreamShell(ctx, path, m.printer.Out, m.printer.Err, opts.Script); err != nil {
			return path, fmt.Errorf("%w: %s: %v", werrors.ErrScriptFailed, opts.Script, err)
		}
	}

	m.printer.Linef("")
	m.printer.Linef("Next steps:")
	m.printer.Linef("cd %s", path)

	return path, nil
}

// Remove removes the managed worktree checked out on opts.Branch and then
// tries to delete the branch. Branch deletion failures are reported but do
// not fail the command.
func (m *Manager) Remove(ctx context.Context, root string, opts RemoveOptions) error {
	dir := utils.WorktreeDir(root, opts.Dir)
	client := m.client(root)

	var target *git.Worktree
	for _, wt := range client.ListWorktrees(ctx) {
		if wt.Branch == opts.Branch && utils.IsWithin(dir, wt.Path) {
			target = &wt
			break
		}
	}
	if target == nil {
		return fmt.Errorf("%w: '%s'", werrors.ErrWorktreeNotFound, opts.Branch)
	}

	m.printer.Info("Removing worktree '%s' at %s...", opts.Branch, target.Path)
	if err := client.RemoveWorktree(ctx, target.Path, opts.Force, m.printer.Out, m.printer.Err); err != nil {
		if !opts.Force {
			m.printer.Muted("Use --force to force removal")
		}
		return fmt.Errorf("removing worktree: %w", err)
	}
	m.printer.Success("Worktree '%s' removed successfully.", opts.Branch)

	m.deleteBranch(ctx, client, opts.Branch, opts.Force)
	return nil
}

// Reset removes every managed worktree, continuing past failures, and always
// finishes with a summary line.
func (m *Manager) Reset(ctx context.Context, root string, opts ResetOptions) error {
	worktrees := m.Managed(ctx, root, opts.Dir)
	if len(worktrees) == 0 {
		m.printer.Linef("No worktrees found to remove.")
		return nil
	}

	m.printer.Linef("Found %d worktree(s) to remove:", len(worktrees))
	for _, wt := range worktrees {
		m.printer.Linef("  - %s at %s", wt.Branch, wt.Path)
	}

	if opts.Confirm != nil {
		ok, err := opts.Confirm(len(worktrees))
		if err != nil {
			return err
		}
		if !ok {
			m.printer.Linef("Aborted.")
			return nil
		}
	}

	client := m.client(root)
	failed := 0
	for _, wt := range worktrees {
		m.printer.Linef("")
		m.printer.Info("Removing worktree '%s'...", wt.Branch)

		if err := client.RemoveWorktree(ctx, wt.Path, opts.Force, m.printer.Out, m.printer.Err); err != nil {
			failed++
			m.printer.Error("removing worktree '%s': %v", wt.Branch, err)
			if !opts.Force {
				m.printer.Muted("Use --force to force removal")
			}
			continue
		}

		m.deleteBranch(ctx, client, wt.Branch, opts.Force)
	}

	m.printer.Linef("")
	if failed == 0 {
		m.printer.Success("All worktrees removed successfully.")
	} else {
		m.printer.Warn("Removed %d of %d worktree(s); %d failed.", len(worktrees)-failed, len(worktrees), failed)
	}
	return nil
}

// List prints the managed worktrees as "branch -> path" lines, or as a JSON
// array when opts.JSON is set.
func (m *Manager) List(ctx context.Context, root string, opts ListOptions) error {
	worktrees := m.Managed(ctx, root, opts.Dir)

	if opts.JSON {
		data, err := json.MarshalIndent(worktrees, "", "  ")
		if err != nil {
			return fmt.Errorf("encoding worktrees: %w", err)
		}
		m.printer.Linef("%s", data)
		return nil
	}

	if len(worktrees) == 0 {
		m.printer.Linef("No worktrees found.")
		return nil
	}

	m.printer.Linef("Current worktrees:")
	for _, wt := range worktrees {
		m.printer.Linef("  %s -> %s", wt.Branch, wt.Path)
	}
	return nil
}

// Managed returns the registered worktrees that live inside the managed
// directory, excluding the repository root itself.
func (m *Manager) Managed(ctx context.Context, root, customDir string) []git.Worktree {
	dir := utils.WorktreeDir(root, customDir)

	managed := []git.Worktree{}
	for _, wt := range m.client(root).ListWorktrees(ctx) {
		if wt.Path != root && utils.IsWithin(dir, wt.Path) {
			managed = append(managed, wt)
		}
	}
	return managed
}

// deleteBranch tries a safe delete first and, when force is set, falls back
// to a forced delete.
func (m *Manager) deleteBranch(ctx context.Context, client *git.Client, branch string, force bool) {
	err := client.DeleteBranch(ctx, branch, false)
	if err == nil {
		m.printer.Success("Deleted branch '%s'", branch)
		return
	}
	m.logger.Debug("safe branch delete failed", "branch", branch, "err", err)

	if !force {
		m.printer.Warn("Could not delete branch '%s' (use --force to force delete)", branch)
		return
	}

	if err := client.DeleteBranch(ctx, branch, true); err != nil {
		m.printer.Warn("Could not delete branch '%s': %v", branch, err)
		return
	}
	m.printer.Success("Force deleted branch '%s'", branch)
}

func (m *Manager) client(dir string) *git.Client {
	return git.NewClient(m.commander, dir, m.logger)
}
