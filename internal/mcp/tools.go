package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/nileshkumar-sf/kt-agent/pkg/types"
)

// MCP error codes
const (
	ErrorCodeInvalidParams = -32602 // Invalid method parameters
	ErrorCodeInternalError = -32603 // Internal JSON-RPC error
	ErrorCodeEmptyQuery    = -32001 // Query parameter is empty
)

// searchPayload is the singleflight-shared result of one query.
type searchPayload struct {
	results []types.SearchResult
	stats   map[string]interface{}
}

// handleSearchCode handles the search_code tool invocation
func (s *Server) handleSearchCode(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, ok := request.Params.Arguments.(map[string]interface{})
	if !ok {
		return nil, newMCPError(ErrorCodeInvalidParams, "invalid arguments", nil)
	}

	query, ok := args["query"].(string)
	if !ok || query == "" {
		return nil, newMCPError(ErrorCodeEmptyQuery, "query parameter is required and cannot be empty", map[string]interface{}{
			"param":  "query",
			"reason": "missing or empty",
		})
	}

	includeImports := getBoolDefault(args, "include_imports", false)

	// Collapse identical concurrent queries into one engine call.
	shared, err, _ := s.group.Do(query, func() (interface{}, error) {
		results, stats, err := s.engine.SearchWithStats(query)
		if err != nil {
			return nil, err
		}
		return searchPayload{
			results: results,
			stats: map[string]interface{}{
				"files_scored":   stats.FilesScored,
				"files_retained": stats.FilesRetained,
				"duration_ms":    stats.Duration.Milliseconds(),
				"cache_hit":      stats.CacheHit,
			},
		}, nil
	})
	if err != nil {
		return nil, newMCPError(ErrorCodeInternalError, "search failed", map[string]interface{}{
			"error": err.Error(),
		})
	}

	payload := shared.(searchPayload)

	entries := make([]map[string]interface{}, len(payload.results))
	for i, r := range payload.results {
		entry := map[string]interface{}{
			"file":               r.File,
			"content":            r.Content,
			"context":            r.Context,
			"relevance":          r.Relevance,
			"line_number":        r.LineNumber,
			"matched_terms":      r.MatchedTerms,
			"is_technical_match": r.IsTechnicalMatch,
		}
		if includeImports {
			entry["imports"] = s.engine.FileImports(r.File)
		}
		entries[i] = entry
	}

	response := map[string]interface{}{
		"results": entries,
		"count":   len(entries),
		"stats":   payload.stats,
	}
	if len(entries) == 0 {
		response["message"] = "no relevant code found"
	}

	return mcp.NewToolResultText(formatJSON(response)), nil
}

// handleListImports handles the list_imports tool invocation
func (s *Server) handleListImports(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, ok := request.Params.Arguments.(map[string]interface{})
	if !ok {
		return nil, newMCPError(ErrorCodeInvalidParams, "invalid arguments", nil)
	}

	file, ok := args["file"].(string)
	if !ok || file == "" {
		return nil, newMCPError(ErrorCodeInvalidParams, "file parameter is required", map[string]interface{}{
			"param":  "file",
			"reason": "missing or empty",
		})
	}

	imports := s.engine.FileImports(file)
	return mcp.NewToolResultText(formatJSON(map[string]interface{}{
		"file":    file,
		"imports": imports,
		"count":   len(imports),
	})), nil
}

// handleGetStatus handles the get_status tool invocation
func (s *Server) handleGetStatus(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	status := s.engine.Status()
	return mcp.NewToolResultText(formatJSON(map[string]interface{}{
		"root":         status.Root,
		"project_type": string(status.ProjectType),
		"files":        status.Files,
		"loaded":       status.Loaded,
	})), nil
}

// newMCPError creates an MCP protocol error; the framework handles encoding.
func newMCPError(code int, message string, data interface{}) error {
	return &MCPError{Code: code, Message: message, Data: data}
}

// MCPError represents an MCP protocol error
type MCPError struct {
	Code    int
	Message string
	Data    interface{}
}

func (e *MCPError) Error() string {
	return fmt.Sprintf("MCP error %d: %s", e.Code, e.Message)
}

// formatJSON renders a response payload as indented JSON
func formatJSON(data map[string]interface{}) string {
	bytes, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Sprintf("%v", data)
	}
	return string(bytes)
}

// getBoolDefault extracts a boolean parameter with a default value
func getBoolDefault(args map[string]interface{}, key string, defaultValue bool) bool {
	if val, ok := args[key].(bool); ok {
		return val
	}
	return defaultValue
}
