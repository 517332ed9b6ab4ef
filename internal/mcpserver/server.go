// Package mcpserver implements an MCP (Model Context Protocol) server
// that exposes casefy key renaming as MCP tools over stdio.
package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/viant/casefy"
)

const serverInstructions = `casefy MCP server renames the keys of JSON and YAML documents between camelCase, snake_case, PascalCase and kebab-case.

Configuration: defaults are configurable via CASEFY_* environment variables set in your MCP client config.

Key settings:
- CASEFY_DEFAULT_FROM (default: snake_case) source style used when from is omitted
- CASEFY_DEFAULT_TO (default: camelCase) target style used when to is omitted
- CASEFY_PRESERVE_TYPES (default: true) keep primitive value types
- CASEFY_MAX_DEPTH (default: 10000) nesting ceiling
- CASEFY_MAX_INLINE_SIZE (default: 10485760) maximum inline document size in bytes
- CASEFY_INDENT (default: none) JSON output indentation`

// Run starts the MCP server over stdio and blocks until the client disconnects
// or the context is cancelled.
func Run(ctx context.Context) error {
	server := newServer()
	return server.Run(ctx, &mcp.StdioTransport{})
}

func newServer() *mcp.Server {
	server := mcp.NewServer(
		&mcp.Implementation{Name: "casefy", Version: casefy.Version()},
		&mcp.ServerOptions{
			Instructions: serverInstructions,
		},
	)
	registerAllTools(server)
	return server
}

func registerAllTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "transform_keys",
		Description: "Rename the keys of a JSON or YAML document from one case style to another. Nested objects and array elements are processed by default. Use field_mappings for explicit renames and exclude_fields or include_fields to control which keys are eligible. Returns the transformed document and the number of renamed keys.",
	}, handleTransformKeys)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_styles",
		Description: "List the supported case styles with a short description of each.",
	}, handleListStyles)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "detect_style",
		Description: "Detect the case style of each supplied key. Keys matching no style are reported with an empty style.",
	}, handleDetectStyle)
}

// errResult creates an MCP error result from an error.
func errResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: err.Error()}},
	}
}

// makeSlice returns nil when n is 0 (preserving omitempty JSON semantics),
// otherwise returns make([]T, 0, n) for pre-allocated appending.
func makeSlice[T any](n int) []T {
	if n == 0 {
		return nil
	}
	return make([]T, 0, n)
}
