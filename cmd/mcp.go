package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/xvierd/sglink/internal/adapters/mcp"
)

// mcpCmd represents the mcp command
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the MCP server",
	Long: `Start the Model Context Protocol (MCP) server for integration with AI assistants.
The server provides a tool that builds Sourcegraph links for local working copies.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprintln(cmd.ErrOrStderr(), "Starting MCP server on stdio, press Ctrl+C to stop")

		ctx := setupSignalHandler()

		server := mcp.NewServer(app.links, app.workspace, app.config.Git.Path)
		defer server.Stop()
		if err := server.Start(ctx); err != nil {
			return fmt.Errorf("MCP server error: %w", err)
		}

		return nil
	},
}
