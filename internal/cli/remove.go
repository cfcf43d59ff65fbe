package cli

import (
	"github.com/spf13/cobra"

	"github.com/naoray/workhere/internal/worktree"
)

var removeCmd = &cobra.Command{
	Use:     "remove BRANCH",
	Aliases: []string{"rm"},
	Short:   "Remove a worktree and its branch",
	Long: `Removes the managed worktree checked out on BRANCH, then deletes the branch.

Arguments:
  BRANCH  Branch of the worktree to remove

An unmerged branch is kept unless --force is given.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		pc, err := OpenProject(cmd)
		if err != nil {
			return err
		}

		force, _ := cmd.Flags().GetBool("force")

		return pc.Manager.Remove(cmd.Context(), pc.Root, worktree.RemoveOptions{
			Branch: args[0],
			Force:  force,
			Dir:    pc.Config.Dir,
		})
	},
}

func init() {
	rootCmd.AddCommand(removeCmd)

	removeCmd.Flags().BoolP("force", "f", false, "Remove dirty worktrees and unmerged branches")
}
