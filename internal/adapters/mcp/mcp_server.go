// Package mcp provides the MCP (Model Context Protocol) server implementation.
package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/xvierd/sglink/internal/domain"
	"github.com/xvierd/sglink/internal/ports"
)

// Server implements the MCP server using mark3labs/mcp-go.
type Server struct {
	server   *server.MCPServer
	provider ports.LinkProvider
	roots    ports.WorkspaceFinder
	gitPath  string
	cancel   context.CancelFunc
}

// NewServer creates a new MCP server instance. gitPath is passed through to
// every invocation and may be empty.
func NewServer(provider ports.LinkProvider, roots ports.WorkspaceFinder, gitPath string) *Server {
	s := &Server{
		provider: provider,
		roots:    roots,
		gitPath:  gitPath,
	}

	s.server = server.NewMCPServer(
		"sglink",
		"1.0.0",
		server.WithLogging(),
	)

	s.registerTools()

	return s
}

// registerTools registers all available MCP tools.
func (s *Server) registerTools() {
	linkTool := mcp.NewTool(
		"get_sourcegraph_link",
		mcp.WithDescription("Build a Sourcegraph permalink for a repository, directory, file or line in a local git working copy"),
		mcp.WithString(
			"root",
			mcp.Required(),
			mcp.Description("A path inside the git working copy; relative path and file arguments resolve against it, or against its directory when it is a file"),
		),
		mcp.WithString(
			"path",
			mcp.Description("File or directory to link; omit for the repository root"),
		),
		mcp.WithString(
			"file",
			mcp.Description("Open document to link; combine with line for a line link"),
		),
		mcp.WithNumber(
			"line",
			mcp.Description("1-based line in file"),
		),
		mcp.WithBoolean(
			"dirty",
			mcp.Description("Whether file has unsaved edits"),
		),
	)
	s.server.AddTool(linkTool, s.handleGetLink)
}

// Start serves MCP requests via stdio until ctx is cancelled or Stop is called.
func (s *Server) Start(ctx context.Context) error {
	ctx, s.cancel = context.WithCancel(ctx)

	return server.NewStdioServer(s.server).Listen(ctx, os.Stdin, os.Stdout)
}

// Stop gracefully shuts down the server.
func (s *Server) Stop() error {
	if s.cancel != nil {
		s.cancel()
	}
	return nil
}

// Ensure Server implements ports.MCPHandler.
var _ ports.MCPHandler = (*Server)(nil)

// invocationFromRequest maps tool arguments onto an InvocationContext.
func (s *Server) invocationFromRequest(request mcp.CallToolRequest) (domain.InvocationContext, error) {
	rootArg, err := request.RequireString("root")
	if err != nil {
		return domain.InvocationContext{}, &domain.InvocationContextError{Reason: "root is required"}
	}

	root, err := s.roots.FindRoot(rootArg)
	if err != nil {
		return domain.InvocationContext{}, err
	}

	ic := domain.InvocationContext{
		Root:         root,
		SelectedPath: absolute(rootArg, request.GetString("path", "")),
		GitPath:      s.gitPath,
	}

	line, hasLine, err := lineArgument(request)
	if err != nil {
		return domain.InvocationContext{}, err
	}

	file := request.GetString("file", "")
	switch {
	case file != "":
		ic.Document = &domain.ActiveDocument{
			Path:      absolute(rootArg, file),
			Dirty:     request.GetBool("dirty", false),
			CaretLine: line - 1,
		}
		ic.LineSelection = hasLine
	case hasLine:
		return domain.InvocationContext{}, &domain.InvocationContextError{Reason: "line requires file"}
	}

	return ic, nil
}

// lineArgument reads the optional 1-based line. A present line must be a
// whole number of at least 1.
func lineArgument(request mcp.CallToolRequest) (int, bool, error) {
	if _, ok := request.GetArguments()["line"]; !ok {
		return 0, false, nil
	}
	line := request.GetFloat("line", math.NaN())
	if math.IsNaN(line) || math.IsInf(line, 0) || line != math.Trunc(line) || line < 1 {
		return 0, false, &domain.InvocationContextError{Reason: fmt.Sprintf("line must be a whole number of at least 1, got %v", request.GetArguments()["line"])}
	}
	return int(line), true, nil
}

// handleGetLink handles the get_sourcegraph_link tool.
func (s *Server) handleGetLink(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	ic, err := s.invocationFromRequest(request)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result, err := s.provider.Link(ctx, ic)
	if err != nil {
		var ice *domain.InvocationContextError
		if errors.As(err, &ice) {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return nil, fmt.Errorf("failed to build link: %w", err)
	}

	payload := map[string]interface{}{
		"url": result.URL,
	}
	if result.IsBlocked() {
		payload["url"] = nil
		payload["blocked"] = result.Blocked
	}

	jsonData, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal link: %w", err)
	}

	return mcp.NewToolResultText(string(jsonData)), nil
}

// absolute resolves p against base. When base names a file, p resolves
// against the file's directory.
func absolute(base, p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	if info, err := os.Stat(base); err == nil && !info.IsDir() {
		base = filepath.Dir(base)
	}
	return filepath.Join(base, p)
}
