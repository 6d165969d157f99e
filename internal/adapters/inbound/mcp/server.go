package mcp

import (
	"github.com/mark3labs/mcp-go/server"
)

// NewValidgenMCPServer creates a new MCP server with all validgen tools
// and resources registered. The projectPath is the root directory of
// the package tree to analyze.
func NewValidgenMCPServer(projectPath string) *server.MCPServer {
	s := server.NewMCPServer(
		"validgen",
		"0.1.0",
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(true, false),
	)

	registerTools(s, projectPath)
	registerResources(s, projectPath)

	return s
}
