package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/xvierd/sglink/internal/adapters/git"
)

var gitPathCmd = &cobra.Command{
	Use:   "git-path",
	Short: "Show which git executable is used",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		locator := git.NewLocator(app.config.Git.Path, app.logger)
		path := locator.Locate(setupSignalHandler())

		if jsonOutput {
			return printJSON(cmd, map[string]string{"git_path": path})
		}
		fmt.Fprintln(cmd.OutOrStdout(), path)
		return nil
	},
}
