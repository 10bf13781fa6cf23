package tools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/numerics/newtonpoly/internal/results"
	"github.com/numerics/newtonpoly/newton"
)

// EvaluateTool handles Newton-form evaluation requests
type EvaluateTool struct{}

// NewEvaluateTool creates a new evaluation tool
func NewEvaluateTool() *EvaluateTool {
	return &EvaluateTool{}
}

// GetTool returns the MCP tool definition
func (t *EvaluateTool) GetTool() mcp.Tool {
	tool := mcp.NewTool(ToolEvaluate,
		mcp.WithDescription("Evaluate a Newton-form polynomial, given by its coefficients and nodes, at the points t"),
		mcp.WithArray("coeffs", mcp.Required(), numberArray, mcp.Description("Newton coefficients, as returned by "+ToolDividedDifferences)),
		mcp.WithArray("nodes", mcp.Required(), numberArray, mcp.Description("Nodes the coefficients were computed from")),
		mcp.WithArray("t", mcp.Required(), numberArray, mcp.Description("Query points")),
	)
	return tool
}

// Handle processes the tool request
func (t *EvaluateTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	coeffs, err := GetFloats(req, "coeffs")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	nodes, err := GetFloats(req, "nodes")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	ts, err := GetFloats(req, "t")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	values, err := newton.EvaluateSlice(coeffs, nodes, ts)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to evaluate polynomial: %v", err)), nil
	}

	nullable, nonFinite := results.Nullable(values)

	return jsonResult(results.EvaluateToolResult{
		Points:    ts,
		Values:    nullable,
		NonFinite: nonFinite,
	})
}
