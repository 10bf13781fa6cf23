package tools

import (
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/spf13/cast"

	"github.com/numerics/newtonpoly/utils"
)

// numberArray is the JSON schema of the items of array arguments
var numberArray = mcp.Items(map[string]any{"type": "number"})

// GetFloats extracts a list of numbers from an MCP request.
// Numbers may be given as JSON numbers or numeric strings.
func GetFloats(req mcp.CallToolRequest, key string) ([]float64, error) {
	arg := mcp.ParseArgument(req, key, nil)
	if arg == nil {
		return nil, fmt.Errorf("%s parameter is required", key)
	}

	var values []float64
	switch arg := arg.(type) {
	case []float64:
		values = arg
	case []any:
		values = make([]float64, len(arg))
		for i := range arg {
			v, err := cast.ToFloat64E(arg[i])
			if err != nil {
				return nil, fmt.Errorf("%s[%d]: %w", key, i, err)
			}
			values[i] = v
		}
	default:
		return nil, fmt.Errorf("%s parameter must be an array of numbers, got %T", key, arg)
	}

	// Numeric strings such as "Inf" would otherwise get past JSON.
	for i := range values {
		if !utils.IsFinite(values[i]) {
			return nil, fmt.Errorf("%s[%d] must be finite, got %v", key, i, values[i])
		}
	}

	return values, nil
}

// GetFloat extracts a required number from an MCP request.
func GetFloat(req mcp.CallToolRequest, key string) (float64, error) {
	arg := mcp.ParseArgument(req, key, nil)
	if arg == nil {
		return 0, fmt.Errorf("%s parameter is required", key)
	}
	v, err := cast.ToFloat64E(arg)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return v, nil
}

// GetInt extracts a required integer from an MCP request.
func GetInt(req mcp.CallToolRequest, key string) (int, error) {
	v, err := GetFloat(req, key)
	if err != nil {
		return 0, err
	}
	if v != float64(int(v)) {
		return 0, fmt.Errorf("%s parameter must be an integer, got %v", key, v)
	}
	return int(v), nil
}

// jsonResult marshals a tool result into a text result
func jsonResult(v any) (*mcp.CallToolResult, error) {
	jsonBytes, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to marshal JSON: %v", err)), nil
	}
	return mcp.NewToolResultText(string(jsonBytes)), nil
}
