// ABOUTME: MCP server setup for the stepup workout store.
// ABOUTME: Wraps the MCP server with storage and dashboard configuration.
package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"stepup/internal/storage"
)

// Server wraps the MCP server with storage access.
type Server struct {
	mcpServer         *mcp.Server
	store             *storage.Store
	weeklyGoalMinutes int
}

// NewServer creates a new MCP server over the given store.
func NewServer(store *storage.Store, weeklyGoalMinutes int) (*Server, error) {
	mcpServer := mcp.NewServer(
		&mcp.Implementation{
			Name:    "stepup",
			Version: "1.0.0",
		},
		nil,
	)

	s := &Server{
		mcpServer:         mcpServer,
		store:             store,
		weeklyGoalMinutes: weeklyGoalMinutes,
	}

	s.registerTools()
	s.registerResources()

	return s, nil
}

// Serve starts the MCP server using stdio transport.
func (s *Server) Serve(ctx context.Context) error {
	return s.mcpServer.Run(ctx, &mcp.StdioTransport{})
}
