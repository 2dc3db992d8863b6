// Package tools implements the MCP tool handlers for the thinking
// frameworks.
//
// Each tool is a struct that receives its engine via the constructor
// and exposes a Definition for registration plus a Handle compatible
// with mcp-go's CallToolRequest signature. Engine precondition
// failures surface as error results in the normal envelope; only
// infrastructure faults return Go errors.
package tools

import (
	"github.com/mark3labs/mcp-go/mcp"
)

// intArg extracts an integer argument. JSON numbers arrive as float64.
func intArg(req mcp.CallToolRequest, key string) (int, bool) {
	v, ok := req.GetArguments()[key]
	if !ok {
		return 0, false
	}
	f, ok := v.(float64)
	if !ok {
		return 0, false
	}
	return int(f), true
}

// boolArg extracts a boolean argument, reporting whether it was
// present and well-typed.
func boolArg(req mcp.CallToolRequest, key string) (bool, bool) {
	v, ok := req.GetArguments()[key]
	if !ok {
		return false, false
	}
	b, ok := v.(bool)
	if !ok {
		return false, false
	}
	return b, true
}

// stringListArg extracts a string-array argument. Non-string entries
// are skipped.
func stringListArg(req mcp.CallToolRequest, key string) []string {
	v, ok := req.GetArguments()[key]
	if !ok {
		return nil
	}
	items, ok := v.([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

// objectListArg extracts an array-of-objects argument.
func objectListArg(req mcp.CallToolRequest, key string) []map[string]any {
	v, ok := req.GetArguments()[key]
	if !ok {
		return nil
	}
	items, ok := v.([]any)
	if !ok {
		return nil
	}
	out := make([]map[string]any, 0, len(items))
	for _, item := range items {
		if m, ok := item.(map[string]any); ok {
			out = append(out, m)
		}
	}
	return out
}
