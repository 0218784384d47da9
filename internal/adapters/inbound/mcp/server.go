package mcp

import (
	"github.com/mark3labs/mcp-go/server"
)

// NewIssueCheckMCPServer creates an MCP server with the issuecheck tools and
// resources registered. The projectPath is the root directory whose case
// files the verify tool runs.
func NewIssueCheckMCPServer(projectPath string) *server.MCPServer {
	s := server.NewMCPServer(
		"issuecheck",
		"0.1.0",
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(true, false),
	)

	registerTools(s, projectPath)
	registerResources(s, projectPath)

	return s
}
