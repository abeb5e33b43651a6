package mcp

import (
	"github.com/mark3labs/mcp-go/mcp"
)

// searchCodeTool returns the tool definition for search_code
func searchCodeTool() mcp.Tool {
	return mcp.Tool{
		Name:        "search_code",
		Description: "Search the project for source locations relevant to a natural-language question",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"query": map[string]interface{}{
					"type":        "string",
					"description": "Natural-language question or keywords about the codebase",
				},
				"include_imports": map[string]interface{}{
					"type":        "boolean",
					"description": "If true, annotate each result with the matched file's import list",
					"default":     false,
				},
			},
			Required: []string{"query"},
		},
	}
}

// listImportsTool returns the tool definition for list_imports
func listImportsTool() mcp.Tool {
	return mcp.Tool{
		Name:        "list_imports",
		Description: "List the deduplicated import sources of a single file",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"file": map[string]interface{}{
					"type":        "string",
					"description": "Absolute path to the file to analyze",
				},
			},
			Required: []string{"file"},
		},
	}
}

// getStatusTool returns the tool definition for get_status
func getStatusTool() mcp.Tool {
	return mcp.Tool{
		Name:        "get_status",
		Description: "Report the engine's project root, detected project type, and corpus size",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}
}
