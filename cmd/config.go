package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/xvierd/sglink/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the configuration",
	Long: `Show the effective configuration. Use "config set" to change a value
and "config path" to locate the file.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := app.config
		values := map[string]string{
			"git.path":              cfg.Git.Path,
			"sourcegraph.url":       cfg.Sourcegraph.URL,
			"notifications.enabled": fmt.Sprint(cfg.Notifications.Enabled),
			"status.duration":       cfg.Status.Duration.String(),
			"logging.level":         cfg.Logging.Level,
			"logging.file":          cfg.Logging.File,
			"logging.console":       fmt.Sprint(cfg.Logging.Console),
		}

		if jsonOutput {
			return printJSON(cmd, values)
		}

		out := cmd.OutOrStdout()
		for _, key := range config.Keys {
			fmt.Fprintf(out, "  %-22s %s\n", key, values[key])
		}
		return nil
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file path",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprintln(cmd.OutOrStdout(), app.configPath)
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a config value",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.Set(app.configPath, args[0], args[1]); err != nil {
			return fmt.Errorf("failed to save config: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "  Saved: %s = %s\n", args[0], args[1])
		return nil
	},
}

func init() {
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configSetCmd)
}
