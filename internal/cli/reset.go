package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/naoray/workhere/internal/ui"
	"github.com/naoray/workhere/internal/worktree"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Remove every managed worktree",
	Long: `Removes every worktree under the managed directory along with its branch.
The repository itself is never touched.

Failures are reported per worktree and do not stop the remaining removals.
On a terminal you are asked to confirm first. Pass --yes to skip the prompt,
for example when scripting in a terminal. Without a terminal nothing is asked.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		pc, err := OpenProject(cmd)
		if err != nil {
			return err
		}

		force, _ := cmd.Flags().GetBool("force")
		yes, _ := cmd.Flags().GetBool("yes")

		opts := worktree.ResetOptions{
			Force: force,
			Dir:   pc.Config.Dir,
		}
		if !yes && isInteractive() {
			opts.Confirm = func(count int) (bool, error) {
				return confirm(
					fmt.Sprintf("Remove %d worktree(s)?", count),
					"Their branches are deleted as well.",
				)
			}
		}

		err = pc.Manager.Reset(cmd.Context(), pc.Root, opts)
		if ui.IsAbort(err) {
			pc.Printer.Linef("Aborted.")
			return nil
		}
		return err
	},
}

func init() {
	rootCmd.AddCommand(resetCmd)

	resetCmd.Flags().BoolP("force", "f", false, "Remove dirty worktrees and unmerged branches")
	resetCmd.Flags().BoolP("yes", "y", false, "Skip the confirmation prompt")
}
