package tools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/numerics/newtonpoly/internal/results"
	"github.com/numerics/newtonpoly/newton"
)

// ChebyshevNodesTool handles Chebyshev node requests
type ChebyshevNodesTool struct{}

// NewChebyshevNodesTool creates a new Chebyshev nodes tool
func NewChebyshevNodesTool() *ChebyshevNodesTool {
	return &ChebyshevNodesTool{}
}

// GetTool returns the MCP tool definition
func (t *ChebyshevNodesTool) GetTool() mcp.Tool {
	tool := mcp.NewTool(ToolChebyshevNodes,
		mcp.WithDescription("Compute the n+1 Chebyshev nodes of the interval [a, b], in decreasing order"),
		mcp.WithNumber("a", mcp.Required(), mcp.Description("Left endpoint of the interval")),
		mcp.WithNumber("b", mcp.Required(), mcp.Description("Right endpoint of the interval, greater than a")),
		mcp.WithNumber("n", mcp.Required(), mcp.Description(fmt.Sprintf("Polynomial degree, between 0 and %d", MaxDegree))),
	)
	return tool
}

// Handle processes the tool request
func (t *ChebyshevNodesTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	a, err := GetFloat(req, "a")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	b, err := GetFloat(req, "b")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	n, err := GetInt(req, "n")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	if n > MaxDegree {
		return mcp.NewToolResultError(fmt.Sprintf("n must be at most %d, got %d", MaxDegree, n)), nil
	}

	nodes, err := newton.ChebyshevNodes(a, b, n)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to compute nodes: %v", err)), nil
	}

	return jsonResult(results.ChebyshevNodesToolResult{
		A:      a,
		B:      b,
		Degree: n,
		Nodes:  nodes,
	})
}
