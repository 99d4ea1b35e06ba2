package mcp

import (
	"github.com/mark3labs/mcp-go/server"
)

// NewBillcraftMCPServer creates an MCP server exposing invoice rendering,
// tax quoting and full processing as tools.
func NewBillcraftMCPServer() *server.MCPServer {
	s := server.NewMCPServer(
		"billcraft",
		"0.1.0",
		server.WithToolCapabilities(true),
	)

	registerTools(s)

	return s
}
