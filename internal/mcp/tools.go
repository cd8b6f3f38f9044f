package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/dshills/goextract/internal/batch"
	"github.com/dshills/goextract/internal/storage"
	"github.com/dshills/goextract/pkg/types"
)

// MCP error codes
const (
	ErrorCodeInvalidParams = -32602 // Invalid method parameters
	ErrorCodeInternalError = -32603 // Internal JSON-RPC error
)

// Parameter validation errors
var (
	ErrFilesRequired = errors.New("files parameter is required and cannot be empty")
	ErrNotGoFile     = errors.New("path does not name a .go file")
	ErrPathRelative  = errors.New("path must be absolute")
)

// extractResponse is the tool payload: the batch result document plus the
// per-file warnings that would go to stderr in CLI mode.
type extractResponse struct {
	*types.Result
	Warnings []string `json:"warnings,omitempty"`
}

// handleExtractDeclarations handles the extract_declarations tool invocation
func (s *Server) handleExtractDeclarations(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, ok := request.Params.Arguments.(map[string]interface{})
	if !ok {
		return nil, newMCPError(ErrorCodeInvalidParams, "invalid arguments", nil)
	}

	files, err := stringSlice(args, "files")
	if err != nil || len(files) == 0 {
		return nil, newMCPError(ErrorCodeInvalidParams, ErrFilesRequired.Error(), map[string]interface{}{
			"param":  "files",
			"reason": "missing or empty",
		})
	}

	for _, f := range files {
		if err := validateFilePath(f); err != nil {
			return nil, newMCPError(ErrorCodeInvalidParams, "invalid file path", map[string]interface{}{
				"param":  "files",
				"value":  f,
				"reason": err.Error(),
			})
		}
	}

	useCache, _ := args["use_cache"].(bool)

	var cache storage.Store
	if useCache {
		cache = s.store
	}
	runner := batch.New(&batch.Config{Cache: cache})

	result, warnings, err := runner.Run(ctx, files)
	if err != nil {
		return nil, newMCPError(ErrorCodeInternalError, "extraction failed", map[string]interface{}{
			"error": err.Error(),
		})
	}

	response := &extractResponse{Result: result}
	for _, w := range warnings {
		response.Warnings = append(response.Warnings, fmt.Sprintf("%s: %v", w.File, w.Err))
	}

	payload, err := json.MarshalIndent(response, "", "  ")
	if err != nil {
		return nil, newMCPError(ErrorCodeInternalError, "failed to encode result", map[string]interface{}{
			"error": err.Error(),
		})
	}

	return mcp.NewToolResultText(string(payload)), nil
}

// handleGetStatus handles the get_status tool invocation
func (s *Server) handleGetStatus(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cached, err := s.store.CountFiles(ctx)
	if err != nil {
		return nil, newMCPError(ErrorCodeInternalError, "failed to read cache status", map[string]interface{}{
			"error": err.Error(),
		})
	}

	response := map[string]interface{}{
		"server_version": ServerVersion,
		"cache": map[string]interface{}{
			"path":         s.dbFile,
			"cached_files": cached,
			"driver":       storage.DriverName,
			"build_mode":   storage.BuildMode,
		},
	}

	return mcp.NewToolResultText(formatJSON(response)), nil
}

// Helper functions

// newMCPError creates a properly formatted MCP error
func newMCPError(code int, message string, data interface{}) error {
	// MCP errors are returned as regular errors, the framework handles encoding
	return &MCPError{
		Code:    code,
		Message: message,
		Data:    data,
	}
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

// validateFilePath checks that a path is absolute and names a Go source file.
// Existence is not checked here; a missing file is a per-file warning, not an
// invocation error.
func validateFilePath(path string) error {
	if !filepath.IsAbs(path) {
		return ErrPathRelative
	}
	if !strings.HasSuffix(path, ".go") {
		return ErrNotGoFile
	}
	return nil
}

// stringSlice extracts a []string parameter from tool arguments
func stringSlice(args map[string]interface{}, key string) ([]string, error) {
	raw, ok := args[key].([]interface{})
	if !ok {
		return nil, fmt.Errorf("%s must be an array of strings", key)
	}
	out := make([]string, 0, len(raw))
	for _, v := range raw {
		s, ok := v.(string)
		if !ok {
			return nil, fmt.Errorf("%s must be an array of strings", key)
		}
		out = append(out, s)
	}
	return out, nil
}

// formatJSON formats a map as indented JSON
func formatJSON(data map[string]interface{}) string {
	bytes, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Sprintf("%v", data)
	}
	return string(bytes)
}
