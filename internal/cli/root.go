package cli

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/naoray/workhere/internal/ui"
)

var rootCmd = &cobra.Command{
	Use:   "workhere",
	Short: "Create and remove git worktrees inside the current repository",
	Long: `workhere manages git worktrees under <repo>/.git/worktree.

New worktrees get their own branch, named by you or generated, and can run a
setup script as soon as they are created. Run every command from the
repository root.`,
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command. Errors are printed to stderr as
// "Error: <message>" and returned so main can set the exit status.
func Execute() error {
	rootCmd.Version = Version

	err := rootCmd.ExecuteContext(context.Background())
	if err != nil {
		ui.NewPrinter(os.Stdout, rootCmd.ErrOrStderr()).Error("%v", err)
	}
	return err
}
