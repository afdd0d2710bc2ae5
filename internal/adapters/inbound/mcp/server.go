package mcp

import (
	"github.com/mark3labs/mcp-go/server"
)

// NewRouteGuardMCPServer creates an MCP server with the RouteGuard tools
// registered. Tools are read-only: apply mode is deliberately not exposed,
// because a remote caller cannot guarantee the backup precondition.
func NewRouteGuardMCPServer(projectPath string) *server.MCPServer {
	s := server.NewMCPServer(
		"routeguard",
		"0.1.0",
		server.WithToolCapabilities(true),
	)

	registerTools(s, projectPath)

	return s
}
