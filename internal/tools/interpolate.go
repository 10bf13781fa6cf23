package tools

import (
	"context"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/numerics/newtonpoly/functions"
	"github.com/numerics/newtonpoly/internal/results"
	"github.com/numerics/newtonpoly/newton"
	"github.com/numerics/newtonpoly/utils/sampling"
)

// InterpolateTool interpolates catalogued functions at Chebyshev nodes
type InterpolateTool struct{}

// NewInterpolateTool creates a new interpolation tool
func NewInterpolateTool() *InterpolateTool {
	return &InterpolateTool{}
}

// GetTool returns the MCP tool definition
func (t *InterpolateTool) GetTool() mcp.Tool {
	tool := mcp.NewTool(ToolInterpolate,
		mcp.WithDescription("Interpolate a catalogued function at the Chebyshev nodes of [a, b] and report the interpolation error"),
		mcp.WithString("function", mcp.Required(), mcp.Description("Function name or id, one of: "+strings.Join(functions.Names(), ", "))),
		mcp.WithNumber("a", mcp.Description("Left endpoint, defaults to the function's plotting range")),
		mcp.WithNumber("b", mcp.Description("Right endpoint, defaults to the function's plotting range")),
		mcp.WithNumber("n", mcp.Required(), mcp.Description(fmt.Sprintf("Polynomial degree, between 0 and %d", MaxDegree))),
	)
	return tool
}

// Handle processes the tool request
func (t *InterpolateTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name := mcp.ParseString(req, "function", "")
	if name == "" {
		return mcp.NewToolResultError("function parameter is required"), nil
	}

	f, err := functions.Lookup(name)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	a := mcp.ParseFloat64(req, "a", f.XRange[0])
	b := mcp.ParseFloat64(req, "b", f.XRange[1])

	n, err := GetInt(req, "n")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	if n > MaxDegree {
		return mcp.NewToolResultError(fmt.Sprintf("n must be at most %d, got %d", MaxDegree, n)), nil
	}

	p, err := newton.NewChebyshevInterpolant(f.F, a, b, n)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to interpolate %s: %v", f.Label, err)), nil
	}

	ts := sampling.Linspace(a, b, DefaultSamples)

	approx, err := p.EvaluateSlice(ts)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to evaluate interpolant: %v", err)), nil
	}

	st, err := newton.CompareCurves(f.Sample(ts), approx)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to compare curves: %v", err)), nil
	}

	digest, err := p.Digest()
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return jsonResult(results.InterpolateToolResult{
		Function: f.Label,
		A:        a,
		B:        b,
		Degree:   p.Degree(),
		Nodes:    p.Nodes,
		Coeffs:   p.Coeffs,
		Digest:   hex.EncodeToString(digest[:]),
		Error: results.ErrorResult{
			Samples: st.Samples,
			Skipped: st.Skipped,
			Mean:    st.Mean,
			Median:  st.Median,
			StdDev:  st.StdDev,
			Max:     st.Max,
		},
		Message: fmt.Sprintf("Interpolated %s on [%g, %g] with %d Chebyshev nodes, max error %.3e.", f.Label, a, b, n+1, st.Max),
	})
}
