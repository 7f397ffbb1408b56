// Package mcpserver exposes the documentation retrieval operations as
// MCP tools over stdio. It only wires the use case into tool handlers,
// no business logic lives here.
package mcpserver

import (
	"context"
	"os"

	"github.com/m-mizutani/docdive/pkg/domain/interfaces"
	"github.com/mark3labs/mcp-go/server"
)

const serverName = "docdive"

// Version is set at build time via ldflags.
var Version = "dev"

// New builds an MCP server with the documentation tools registered.
func New(uc interfaces.UseCase) *server.MCPServer {
	s := server.NewMCPServer(
		serverName,
		Version,
		server.WithToolCapabilities(true),
		server.WithRecovery(),
	)

	fetch := NewFetchDocsTool(uc)
	s.AddTool(fetch.Definition(), fetch.Handle)

	search := NewSearchReposTool(uc)
	s.AddTool(search.Definition(), search.Handle)

	list := NewListLibrariesTool(uc)
	s.AddTool(list.Definition(), list.Handle)

	add := NewAddLibraryTool(uc)
	s.AddTool(add.Definition(), add.Handle)

	return s
}

// Serve runs the server on stdio until the client disconnects or ctx
// is cancelled.
func Serve(ctx context.Context, uc interfaces.UseCase) error {
	return server.NewStdioServer(New(uc)).Listen(ctx, os.Stdin, os.Stdout)
}
