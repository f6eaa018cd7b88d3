package cmd

import (
	"github.com/spf13/cobra"
	"github.com/xvierd/sglink/internal/adapters/clipboard"
	"github.com/xvierd/sglink/internal/ports"
)

var copyCmd = &cobra.Command{
	Use:   "copy [path]",
	Short: "Copy a Sourcegraph link to the clipboard",
	Long: `Copy a Sourcegraph permalink to the clipboard.

Takes the same arguments as "sglink open".`,
	Args: cobra.ArbitraryArgs,
	RunE: linkCommand(func(cmd *cobra.Command) ports.LinkSink {
		return clipboard.New(app.status)
	}),
}

func init() {
	addLinkFlags(copyCmd)
}
