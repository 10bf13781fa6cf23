// Package results defines the JSON payloads returned by the MCP tools.
package results

import "math"

// ChebyshevNodesToolResult represents the result of the chebyshev_nodes tool
type ChebyshevNodesToolResult struct {
	A      float64   `json:"a"`
	B      float64   `json:"b"`
	Degree int       `json:"degree"`
	Nodes  []float64 `json:"nodes"`
}

// DividedDifferencesToolResult represents the result of the divided_differences tool.
// Coefficients that overflowed are null and counted in NonFinite.
type DividedDifferencesToolResult struct {
	Degree    int        `json:"degree"`
	Nodes     []float64  `json:"nodes"`
	Coeffs    []*float64 `json:"coeffs"`
	NonFinite int        `json:"non_finite,omitempty"`
}

// EvaluateToolResult represents the result of the evaluate and horner tools.
// Values that overflowed are null and counted in NonFinite.
type EvaluateToolResult struct {
	Points    []float64  `json:"points"`
	Values    []*float64 `json:"values"`
	NonFinite int        `json:"non_finite,omitempty"`
}

// Nullable maps the NaN and infinite entries of v, which JSON cannot
// encode, to nil and returns how many there were.
func Nullable(v []float64) (values []*float64, nonFinite int) {
	values = make([]*float64, len(v))
	for i := range v {
		if math.IsNaN(v[i]) || math.IsInf(v[i], 0) {
			nonFinite++
			continue
		}
		x := v[i]
		values[i] = &x
	}
	return
}

// InterpolateToolResult represents the result of the interpolate tool
type InterpolateToolResult struct {
	Function string      `json:"function"`
	A        float64     `json:"a"`
	B        float64     `json:"b"`
	Degree   int         `json:"degree"`
	Nodes    []float64   `json:"nodes"`
	Coeffs   []float64   `json:"coeffs"`
	Digest   string      `json:"digest"`
	Error    ErrorResult `json:"error"`
	Message  string      `json:"message"`
}

// ErrorResult summarizes the absolute interpolation error on a sampling grid
type ErrorResult struct {
	Samples int     `json:"samples"`
	Skipped int     `json:"skipped,omitempty"`
	Mean    float64 `json:"mean"`
	Median  float64 `json:"median"`
	StdDev  float64 `json:"std_dev"`
	Max     float64 `json:"max"`
}
