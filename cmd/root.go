// Package cmd provides the CLI commands for sglink.
package cmd

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/xvierd/sglink/internal/adapters/tui"
)

var (
	// Version info (set at build time via ldflags)
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"

	// Global flags
	rootFlag    string
	gitPathFlag string
	configFlag  string
	jsonOutput  bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "sglink",
	Short: "sglink - Sourcegraph permalinks for your git working copy",
	Long: `sglink builds Sourcegraph permalinks for the repository, a directory,
a file or a single line of a local git working copy, pinned to the
current commit.

Links are only produced when the commit is pushed and, for line links,
when the file has no local changes, so a shared link never points at
code others cannot see.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initializeServices(cmd)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		reportError(os.Stderr, err)
		os.Exit(1)
	}
}

func reportError(w io.Writer, err error) {
	tui.NewStatusLine(w, tui.DefaultTheme()).Error(err)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&rootFlag, "root", "", "Working-copy root (default: discovered from the current directory)")
	rootCmd.PersistentFlags().StringVar(&gitPathFlag, "git-path", "", "Path to the git executable (overrides git.path)")
	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "Path to the config file (default: ~/.sglink/config.toml)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output results in JSON format")

	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("sglink\nVersion: {{.Version}}\n")

	rootCmd.AddCommand(openCmd)
	rootCmd.AddCommand(copyCmd)
	rootCmd.AddCommand(urlCmd)
	rootCmd.AddCommand(pickCmd)
	rootCmd.AddCommand(mcpCmd)
	rootCmd.AddCommand(gitPathCmd)
	rootCmd.AddCommand(configCmd)
}
