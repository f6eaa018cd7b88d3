package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/x/term"
	"github.com/spf13/cobra"
	"github.com/xvierd/sglink/internal/adapters/browser"
	"github.com/xvierd/sglink/internal/adapters/clipboard"
	"github.com/xvierd/sglink/internal/adapters/git"
	"github.com/xvierd/sglink/internal/adapters/tui"
	"github.com/xvierd/sglink/internal/domain"
	"github.com/xvierd/sglink/internal/ports"
)

var pickCopy bool

var pickCmd = &cobra.Command{
	Use:   "pick",
	Short: "Pick a tracked file and open its Sourcegraph link",
	Long: `Fuzzy-find a file tracked by git and open its Sourcegraph permalink,
or copy it with --copy.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !term.IsTerminal(os.Stdin.Fd()) {
			return fmt.Errorf("pick needs an interactive terminal")
		}

		cwd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("failed to get working directory: %w", err)
		}
		root, err := resolveRoot(cwd)
		if err != nil {
			return err
		}

		ctx := setupSignalHandler()
		var lister ports.FileLister = git.NewResolver(root, git.NewCommandRunner(git.NewLocator(app.config.Git.Path, app.logger), app.logger), app.logger)
		files, err := lister.TrackedFiles(ctx)
		if err != nil {
			return fmt.Errorf("failed to list tracked files: %w", err)
		}
		if len(files) == 0 {
			return fmt.Errorf("no tracked files in %s", root)
		}

		result := tui.RunPicker("Link:", files, tui.DefaultTheme())
		if result.Aborted {
			return nil
		}

		var sink ports.LinkSink = browser.New()
		if pickCopy {
			sink = clipboard.New(app.status)
		}

		return runLink(cmd, domain.InvocationContext{
			Root:         root,
			SelectedPath: filepath.Join(root, filepath.FromSlash(result.Value)),
			GitPath:      app.config.Git.Path,
		}, sink)
	},
}

func init() {
	pickCmd.Flags().BoolVar(&pickCopy, "copy", false, "Copy the link instead of opening it")
}
