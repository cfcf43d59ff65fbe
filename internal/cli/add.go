package cli

import (
	"github.com/spf13/cobra"

	"github.com/naoray/workhere/internal/worktree"
)

var addCmd = &cobra.Command{
	Use:   "add [BRANCH]",
	Short: "Create a worktree on a new branch",
	Long: `Creates a worktree under the managed directory on a new branch.

Arguments:
  BRANCH  Name of the branch to create. If omitted, a name such as
          "ada-hopper-1f2e" is generated.

Examples:
  workhere add                       # Generated branch name
  workhere add feature/login         # Worktree at .git/worktree/feature/login
  workhere add fix -p                # Worktree at .git/worktree/<repo>-fix
  workhere add fix -s "npm install"  # Run a setup script in the new worktree`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		pc, err := OpenProject(cmd)
		if err != nil {
			return err
		}

		opts := worktree.AddOptions{
			Script: pc.Config.Script,
			Prefix: pc.Config.Prefix,
			Dir:    pc.Config.Dir,
		}
		if len(args) == 1 {
			opts.Branch = args[0]
		}

		_, err = pc.Manager.Add(cmd.Context(), pc.Root, opts)
		return err
	},
}

func init() {
	rootCmd.AddCommand(addCmd)

	addCmd.Flags().StringP("script", "s", "", "Shell command to run in the new worktree")
	addCmd.Flags().BoolP("prefix", "p", false, "Prefix the folder name with the repository name")
}
