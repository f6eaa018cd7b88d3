package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/xvierd/sglink/internal/domain"
	"github.com/xvierd/sglink/internal/ports"
)

// linkOptions are the active-document flags shared by open, copy and url.
type linkOptions struct {
	file  string
	line  int
	dirty bool
}

var linkOpts linkOptions

func addLinkFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&linkOpts.file, "file", "", "Active document to link")
	cmd.Flags().IntVar(&linkOpts.line, "line", 0, "1-based caret line in --file; links that line")
	cmd.Flags().BoolVar(&linkOpts.dirty, "dirty", false, "--file has unsaved edits")
}

// linkOutput is the --json shape of a link request.
type linkOutput struct {
	URL     string `json:"url,omitempty"`
	Blocked string `json:"blocked,omitempty"`
}

// buildInvocation maps arguments and flags onto an InvocationContext.
func buildInvocation(cmd *cobra.Command, args []string) (domain.InvocationContext, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return domain.InvocationContext{}, fmt.Errorf("failed to get working directory: %w", err)
	}

	lineSet := cmd.Flags().Changed("line")
	switch {
	case len(args) > 1:
		return domain.InvocationContext{}, &domain.InvocationContextError{Reason: fmt.Sprintf("expected at most one path, got %d", len(args))}
	case lineSet && linkOpts.file == "":
		return domain.InvocationContext{}, &domain.InvocationContextError{Reason: "--line requires --file"}
	case lineSet && linkOpts.line < 1:
		return domain.InvocationContext{}, &domain.InvocationContextError{Reason: fmt.Sprintf("--line must be at least 1, got %d", linkOpts.line)}
	case len(args) == 1 && linkOpts.file != "":
		return domain.InvocationContext{}, &domain.InvocationContextError{Reason: "a path and --file are mutually exclusive"}
	case linkOpts.dirty && linkOpts.file == "":
		return domain.InvocationContext{}, &domain.InvocationContextError{Reason: "--dirty requires --file"}
	}

	root, err := resolveRoot(cwd)
	if err != nil {
		return domain.InvocationContext{}, err
	}

	ic := domain.InvocationContext{
		Root:    root,
		GitPath: app.config.Git.Path,
	}
	if len(args) == 1 {
		ic.SelectedPath = absFrom(cwd, args[0])
	}
	if linkOpts.file != "" {
		ic.Document = &domain.ActiveDocument{
			Path:      absFrom(cwd, linkOpts.file),
			Dirty:     linkOpts.dirty,
			CaretLine: linkOpts.line - 1,
		}
		ic.LineSelection = lineSet
	}
	return ic, nil
}

// resolveRoot returns --root, or the working copy containing cwd.
func resolveRoot(cwd string) (string, error) {
	if rootFlag != "" {
		return absFrom(cwd, rootFlag), nil
	}
	return app.workspace.FindRoot(cwd)
}

func absFrom(cwd, p string) string {
	if filepath.IsAbs(p) {
		return filepath.Clean(p)
	}
	return filepath.Join(cwd, p)
}

// runLink builds the link for ic and hands it to sink. Invocation errors and
// policy blocks end up as status messages and do not fail the command.
func runLink(cmd *cobra.Command, ic domain.InvocationContext, sink ports.LinkSink) error {
	ctx := setupSignalHandler()

	result, err := app.links.Link(ctx, ic)
	if err != nil {
		return reportInvocationError(cmd, err)
	}

	if jsonOutput {
		if err := printJSON(cmd, linkOutput{URL: result.URL, Blocked: result.Blocked}); err != nil {
			return err
		}
	}

	if result.IsBlocked() {
		app.status.Status(result.Blocked, statusDuration())
		return nil
	}

	if err := sink.Deliver(result.URL); err != nil {
		return fmt.Errorf("failed to deliver link: %w", err)
	}
	return nil
}

// reportInvocationError shows an InvocationContextError as a status message
// and returns every other error unchanged.
func reportInvocationError(cmd *cobra.Command, err error) error {
	var ice *domain.InvocationContextError
	if !errors.As(err, &ice) {
		return err
	}
	app.logger.Debug("unexpected options", "error", err.Error())
	app.status.Status(ice.Error(), statusDuration())
	return nil
}

func printJSON(cmd *cobra.Command, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}

// linkCommand returns the RunE shared by open, copy and url.
func linkCommand(sink func(cmd *cobra.Command) ports.LinkSink) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		ic, err := buildInvocation(cmd, args)
		if err != nil {
			return reportInvocationError(cmd, err)
		}
		return runLink(cmd, ic, sink(cmd))
	}
}
