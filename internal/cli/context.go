package cli

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/naoray/workhere/internal/config"
	wexec "github.com/naoray/workhere/internal/exec"
	"github.com/naoray/workhere/internal/ui"
	"github.com/naoray/workhere/internal/worktree"
)

// Replaced in tests.
var (
	newCommander  = func() wexec.Commander { return &wexec.RealCommander{} }
	getwd         = os.Getwd
	isInteractive = ui.IsInteractive
	confirm       = ui.Confirm
)

// ProjectContext is everything a command needs once the repository guard
// has passed.
type ProjectContext struct {
	Root    string
	Config  *config.Config
	Logger  *log.Logger
	Printer *ui.Printer
	Manager *worktree.Manager
}

// OpenProject checks that the command runs at a repository root, loads the
// layered configuration and wires a worktree manager for it.
func OpenProject(cmd *cobra.Command) (*ProjectContext, error) {
	logger := log.NewWithOptions(cmd.ErrOrStderr(), log.Options{
		Prefix: "workhere",
		Level:  log.WarnLevel,
	})
	printer := ui.NewPrinter(cmd.OutOrStdout(), cmd.ErrOrStderr())

	manager := worktree.NewManager(worktree.Options{
		Commander: newCommander(),
		Printer:   printer,
		Logger:    logger,
		Getwd:     getwd,
	})

	root, err := manager.Guard(cmd.Context())
	if err != nil {
		return nil, err
	}

	cfg, err := config.Load(root, cmd.Flags())
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	logger.SetLevel(cfg.Level())
	logger.Debug("loaded config", "root", root, "dir", cfg.Dir, "prefix", cfg.Prefix)

	return &ProjectContext{
		Root:    root,
		Config:  cfg,
		Logger:  logger,
		Printer: printer,
		Manager: manager,
	}, nil
}
