// Package mcpserver implements an MCP (Model Context Protocol) server
// that exposes paramval capabilities as MCP tools over stdio.
package mcpserver

import (
	"context"
	"regexp"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/paulway/paramval"
)

const serverInstructions = `paramval MCP server — validates request parameter values against declarative parameter documents.

Configuration: All defaults are configurable via PARAMVAL_* environment variables set in your MCP client config. The Go MCP SDK does not support initializationOptions; use env vars instead.

Key settings:
- PARAMVAL_TIME_ZONE (default: UTC) — IANA zone attached to validated dates and naive datetimes
- PARAMVAL_CACHE_FILE_TTL (default: 15m) — cache TTL for file-based documents
- PARAMVAL_CACHE_CONTENT_TTL (default: 15m) — cache TTL for inline documents
- PARAMVAL_CACHE_ENABLED (default: true) — disable document caching entirely
- PARAMVAL_CACHE_MAX_SIZE (default: 10) — maximum cached documents

Caching: Loaded documents are cached per session. File entries use path+mtime as key (auto-invalidated on change). Inline content is keyed by hash. A background sweeper removes expired entries every 60s.`

// Run starts the MCP server over stdio and blocks until the client disconnects
// or the context is cancelled.
func Run(ctx context.Context) error {
	if cfg.CacheEnabled {
		docCache.startSweeper(ctx, cfg.CacheSweepInterval)
	}

	server := mcp.NewServer(
		&mcp.Implementation{Name: "paramval", Version: paramval.Version()},
		&mcp.ServerOptions{
			Instructions: serverInstructions,
		},
	)
	registerAllTools(server)
	return server.Run(ctx, &mcp.StdioTransport{})
}

func registerAllTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "validate_param",
		Description: "Validate one raw request value against a named parameter definition from a document. Returns the coerced typed value on success, or the error kind (schema or validation) and message on failure. Pass values (plural) for multi-format collections; pass in to disambiguate parameters that share a name across locations. The zone used for dates and naive datetimes is configurable via PARAMVAL_TIME_ZONE.",
	}, handleValidateParam)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_params",
		Description: "List the parameter definitions in a document. Returns per-parameter summaries: name, location, type, format, required, collection format, whether a default or enum is declared. Use it to discover what validate_param can check.",
	}, handleListParams)
}

// sanitizeError strips absolute filesystem paths from error messages
// to prevent leaking internal directory structure to MCP clients.
var pathPattern = regexp.MustCompile(`(?:/(?:home|tmp|var|Users|etc|opt|usr|private|root|mnt|srv|run|snap|nix)[a-zA-Z0-9._/-]*)`)

func sanitizeError(err error) string {
	if err == nil {
		return ""
	}
	return pathPattern.ReplaceAllString(err.Error(), "<path>")
}

// errResult creates an MCP error result from an error.
func errResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: sanitizeError(err)}},
	}
}
