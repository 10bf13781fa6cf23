package tools

// Tool name prefix for all MCP tools
const ToolPrefix = "newton."

// Tool names
const (
	ToolChebyshevNodes     = ToolPrefix + "chebyshev_nodes"
	ToolDividedDifferences = ToolPrefix + "divided_differences"
	ToolEvaluate           = ToolPrefix + "evaluate"
	ToolHorner             = ToolPrefix + "horner"
	ToolInterpolate        = ToolPrefix + "interpolate"
)

// DefaultSamples is the size of the grid on which interpolation errors are measured.
const DefaultSamples = 400

// MaxDegree bounds the degree accepted by the tools that build nodes.
const MaxDegree = 200
