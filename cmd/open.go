package cmd

import (
	"github.com/spf13/cobra"
	"github.com/xvierd/sglink/internal/adapters/browser"
	"github.com/xvierd/sglink/internal/ports"
)

var openCmd = &cobra.Command{
	Use:   "open [path]",
	Short: "Open the current location on Sourcegraph",
	Long: `Open a Sourcegraph permalink in the browser.

With a path, links that directory or file. With --file, links the
document, or the line given by --line. With neither, links the
repository root.`,
	Example: `  sglink open
  sglink open internal/domain
  sglink open --file main.go --line 12`,
	Args: cobra.ArbitraryArgs,
	RunE: linkCommand(func(cmd *cobra.Command) ports.LinkSink {
		return browser.New()
	}),
}

func init() {
	addLinkFlags(openCmd)
}
