// ABOUTME: MCP server for flashdeck integration with AI agents.
// ABOUTME: Provides tools, resources, and prompts for deck management.

package mcp

import (
	"context"
	"database/sql"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type Server struct {
	server     *mcp.Server
	db         *sql.DB
	storageDir string
}

// NewServer exposes the decks recorded in db. Archives are loaded with their
// attachment files copied under storageDir.
func NewServer(db *sql.DB, storageDir string) *Server {
	s := &Server{db: db, storageDir: storageDir}

	s.server = mcp.NewServer(
		&mcp.Implementation{
			Name:    "flashdeck",
			Version: "1.0.0",
		},
		&mcp.ServerOptions{
			HasTools:     true,
			HasResources: true,
			HasPrompts:   true,
		},
	)

	s.registerTools()
	s.registerResources()
	s.registerPrompts()

	return s
}

func (s *Server) Serve(ctx context.Context) error {
	return s.server.Run(ctx, &mcp.StdioTransport{})
}
