package mcp

import (
	"github.com/mark3labs/mcp-go/mcp"
)

// extractDeclarationsTool returns the tool definition for extract_declarations
func extractDeclarationsTool() mcp.Tool {
	return mcp.Tool{
		Name:        "extract_declarations",
		Description: "Extract function, struct, and interface declarations from Go source files",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"files": map[string]interface{}{
					"type":        "array",
					"description": "Absolute paths of .go files to extract as one batch",
					"items": map[string]interface{}{
						"type": "string",
					},
					"minItems": 1,
				},
				"use_cache": map[string]interface{}{
					"type":        "boolean",
					"description": "If true, reuse cached per-file results for unchanged files",
					"default":     false,
				},
			},
			Required: []string{"files"},
		},
	}
}

// getStatusTool returns the tool definition for get_status
func getStatusTool() mcp.Tool {
	return mcp.Tool{
		Name:        "get_status",
		Description: "Report server version and extraction cache status",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}
}
