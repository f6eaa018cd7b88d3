package ports

import (
	"context"

	"github.com/xvierd/sglink/internal/domain"
)

// MCPHandler defines the interface for MCP server operations.
// This is a driving port (called by the application layer).
type MCPHandler interface {
	// Start begins serving MCP requests.
	Start(ctx context.Context) error

	// Stop gracefully shuts down the server.
	Stop() error
}

// LinkProvider resolves links for the MCP server.
// This is a driven port (implemented by services layer).
type LinkProvider interface {
	// Link selects a target from ic and builds its link.
	Link(ctx context.Context, ic domain.InvocationContext) (domain.LinkResult, error)
}
