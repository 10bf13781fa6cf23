package tools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/numerics/newtonpoly/internal/results"
	"github.com/numerics/newtonpoly/newton"
)

// DividedDifferencesTool handles Newton coefficient requests
type DividedDifferencesTool struct{}

// NewDividedDifferencesTool creates a new divided differences tool
func NewDividedDifferencesTool() *DividedDifferencesTool {
	return &DividedDifferencesTool{}
}

// GetTool returns the MCP tool definition
func (t *DividedDifferencesTool) GetTool() mcp.Tool {
	tool := mcp.NewTool(ToolDividedDifferences,
		mcp.WithDescription("Compute the Newton divided difference coefficients of the polynomial interpolating the points (x[i], y[i])"),
		mcp.WithArray("x", mcp.Required(), numberArray, mcp.Description("Distinct interpolation nodes")),
		mcp.WithArray("y", mcp.Required(), numberArray, mcp.Description("Values at the nodes, same length as x")),
	)
	return tool
}

// Handle processes the tool request
func (t *DividedDifferencesTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	x, err := GetFloats(req, "x")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	y, err := GetFloats(req, "y")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	coeffs, err := newton.DividedDifferences(x, y)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to compute divided differences: %v", err)), nil
	}

	nullable, nonFinite := results.Nullable(coeffs)

	return jsonResult(results.DividedDifferencesToolResult{
		Degree:    len(coeffs) - 1,
		Nodes:     x,
		Coeffs:    nullable,
		NonFinite: nonFinite,
	})
}
