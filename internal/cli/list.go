package cli

import (
	"github.com/spf13/cobra"

	"github.com/naoray/workhere/internal/worktree"
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List managed worktrees",
	Long: `Lists the worktrees under the managed directory as "branch -> path".

Examples:
  workhere list
  workhere ls --json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		pc, err := OpenProject(cmd)
		if err != nil {
			return err
		}

		asJSON, _ := cmd.Flags().GetBool("json")

		return pc.Manager.List(cmd.Context(), pc.Root, worktree.ListOptions{
			Dir:  pc.Config.Dir,
			JSON: asJSON,
		})
	},
}

func init() {
	rootCmd.AddCommand(listCmd)

	listCmd.Flags().Bool("json", false, "Print worktrees as a JSON array")
}
