package tools

import (
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
)

func TestGetFloats(t *testing.T) {
	tests := []struct {
		name        string
		arguments   map[string]interface{}
		expected    []float64
		expectError bool
	}{
		{
			name:      "JSON numbers",
			arguments: map[string]interface{}{"x": []interface{}{float64(0), float64(1.5), float64(-2)}},
			expected:  []float64{0, 1.5, -2},
		},
		{
			name:      "Numeric strings",
			arguments: map[string]interface{}{"x": []interface{}{"1", "2.5"}},
			expected:  []float64{1, 2.5},
		},
		{
			name:      "Float slice",
			arguments: map[string]interface{}{"x": []float64{3, 4}},
			expected:  []float64{3, 4},
		},
		{
			name:      "Empty array",
			arguments: map[string]interface{}{"x": []interface{}{}},
			expected:  []float64{},
		},
		{
			name:        "Missing argument",
			arguments:   map[string]interface{}{},
			expectError: true,
		},
		{
			name:        "Not an array",
			arguments:   map[string]interface{}{"x": float64(1)},
			expectError: true,
		},
		{
			name:        "Infinite string",
			arguments:   map[string]interface{}{"x": []interface{}{"1", "Inf"}},
			expectError: true,
		},
		{
			name:        "Not a number",
			arguments:   map[string]interface{}{"x": []interface{}{float64(1), "one"}},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			request := mcp.CallToolRequest{}
			request.Params.Arguments = tt.arguments

			result, err := GetFloats(request, "x")

			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, result)
			}
		})
	}
}

func TestGetInt(t *testing.T) {
	tests := []struct {
		name        string
		arguments   map[string]interface{}
		expected    int
		expectError bool
	}{
		{
			name:      "Integer",
			arguments: map[string]interface{}{"n": float64(7)},
			expected:  7,
		},
		{
			name:      "Numeric string",
			arguments: map[string]interface{}{"n": "3"},
			expected:  3,
		},
		{
			name:        "Fractional",
			arguments:   map[string]interface{}{"n": float64(2.5)},
			expectError: true,
		},
		{
			name:        "Missing argument",
			arguments:   map[string]interface{}{},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			request := mcp.CallToolRequest{}
			request.Params.Arguments = tt.arguments

			result, err := GetInt(request, "n")

			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, result)
			}
		})
	}
}
