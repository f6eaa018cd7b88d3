package cmd

import (
	"github.com/spf13/cobra"
	"github.com/xvierd/sglink/internal/adapters/tui"
	"github.com/xvierd/sglink/internal/ports"
)

var urlCmd = &cobra.Command{
	Use:   "url [path]",
	Short: "Print a Sourcegraph link",
	Long: `Print a Sourcegraph permalink to stdout.

Takes the same arguments as "sglink open". Status messages go to
stderr, so the output can be captured by scripts.`,
	Args: cobra.ArbitraryArgs,
	RunE: linkCommand(func(cmd *cobra.Command) ports.LinkSink {
		if jsonOutput {
			return ports.LinkSinkFunc(func(string) error { return nil })
		}
		out := tui.NewStatusLine(cmd.OutOrStdout(), tui.DefaultTheme())
		return ports.LinkSinkFunc(func(url string) error {
			out.Link(url)
			return nil
		})
	}),
}

func init() {
	addLinkFlags(urlCmd)
}
