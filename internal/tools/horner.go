package tools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/numerics/newtonpoly/internal/results"
	"github.com/numerics/newtonpoly/newton"
)

// HornerTool handles power-basis evaluation requests
type HornerTool struct{}

// NewHornerTool creates a new Horner tool
func NewHornerTool() *HornerTool {
	return &HornerTool{}
}

// GetTool returns the MCP tool definition
func (t *HornerTool) GetTool() mcp.Tool {
	tool := mcp.NewTool(ToolHorner,
		mcp.WithDescription("Evaluate a power-basis polynomial at the points t with Horner's method"),
		mcp.WithArray("coeffs", mcp.Required(), numberArray, mcp.Description("Coefficients, highest degree first")),
		mcp.WithArray("t", mcp.Required(), numberArray, mcp.Description("Query points")),
	)
	return tool
}

// Handle processes the tool request
func (t *HornerTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	coeffs, err := GetFloats(req, "coeffs")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	ts, err := GetFloats(req, "t")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	values, err := newton.HornerSlice(ts, coeffs)
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
