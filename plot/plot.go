// Package plot draws an interpolating polynomial against the function it
// approximates, together with the interpolation nodes.
package plot

import (
	"fmt"
	"image/color"
	"io"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/numerics/newtonpoly/utils"
)

// XYs implements the gonum.org/v1/plot/plotter.XYer interface.
type XYs []XY

// XY is an x and y value.
type XY struct{ X, Y float64 }

// NewXYs pairs x[i] with y[i], dropping the pairs where either value is
// NaN or infinite. Extra values of the longer slice are ignored.
func NewXYs(x, y []float64) (xys XYs) {
	n := len(x)
	if len(y) < n {
		n = len(y)
	}
	xys = make(XYs, 0, n)
	for i := 0; i < n; i++ {
		if utils.IsFinite(x[i]) && utils.IsFinite(y[i]) {
			xys = append(xys, XY{x[i], y[i]})
		}
	}
	return
}

// Len returns the number of X,Y pairs.
func (xys XYs) Len() int {
	return len(xys)
}

// XY return the x and y values at index i, where i < Len()
func (xys XYs) XY(i int) (float64, float64) {
	return xys[i].X, xys[i].Y
}

// YRange returns the range of the y values of all the curves, extended by
// a margin of 10% of its width on each side, or by 1 if all the values are
// equal. ok is false if the curves have no point.
func YRange(curves ...XYs) (min, max float64, ok bool) {

	min, max = math.Inf(1), math.Inf(-1)

	for _, xys := range curves {
		for _, xy := range xys {
			min = math.Min(min, xy.Y)
			max = math.Max(max, xy.Y)
			ok = true
		}
	}

	if !ok {
		return 0, 0, false
	}

	margin := 1.0
	if max > min {
		margin = (max - min) * 0.1
	}

	return min - margin, max + margin, true
}

var (
	referenceColor   = color.RGBA{B: 255, A: 255}
	interpolantColor = color.RGBA{G: 128, A: 255}
	nodesColor       = color.RGBA{R: 255, A: 255}
)

// Chart compares an interpolating polynomial with a reference curve.
// Curves with no point are not drawn.
type Chart struct {
	Title string

	Reference      XYs
	ReferenceLabel string

	Interpolant      XYs
	InterpolantLabel string

	Nodes      XYs
	NodesLabel string

	Width, Height vg.Length
}

// Plot builds the gonum plot of the chart.
func (c *Chart) Plot() (p *plot.Plot, err error) {

	p = plot.New()
	p.Title.Text = c.Title
	p.X.Label.Text = "x"
	p.Y.Label.Text = "y"
	p.Add(plotter.NewGrid())

	if c.Reference.Len() > 0 {
		var line *plotter.Line
		if line, err = plotter.NewLine(c.Reference); err != nil {
			return nil, fmt.Errorf("cannot Plot: reference: %w", err)
		}
		line.LineStyle.Color = referenceColor
		line.LineStyle.Dashes = []vg.Length{vg.Points(6), vg.Points(4)}
		p.Add(line)
		p.Legend.Add(c.ReferenceLabel, line)
	}

	if c.Interpolant.Len() > 0 {
		var line *plotter.Line
		if line, err = plotter.NewLine(c.Interpolant); err != nil {
			return nil, fmt.Errorf("cannot Plot: interpolant: %w", err)
		}
		line.LineStyle.Color = interpolantColor
		line.LineStyle.Width = vg.Points(1.5)
		p.Add(line)
		p.Legend.Add(c.InterpolantLabel, line)
	}

	if c.Nodes.Len() > 0 {
		var scatter *plotter.Scatter
		if scatter, err = plotter.NewScatter(c.Nodes); err != nil {
			return nil, fmt.Errorf("cannot Plot: nodes: %w", err)
		}
		scatter.GlyphStyle.Color = nodesColor
		scatter.GlyphStyle.Shape = draw.CircleGlyph{}
		scatter.GlyphStyle.Radius = vg.Points(3)
		p.Add(scatter)
		p.Legend.Add(c.NodesLabel, scatter)
	}

	if min, max, ok := YRange(c.Reference, c.Interpolant, c.Nodes); ok {
		p.Y.Min, p.Y.Max = min, max
	}

	return p, nil
}

func (c *Chart) size() (w, h vg.Length) {
	w, h = c.Width, c.Height
	if w <= 0 {
		w = 10 * vg.Inch
	}
	if h <= 0 {
		h = 6 * vg.Inch
	}
	return
}

// Save renders the chart to file. The image format is chosen from the
// file extension, e.g. .png or .svg.
func (c *Chart) Save(file string) (err error) {

	p, err := c.Plot()
	if err != nil {
		return err
	}

	w, h := c.size()

	if err = p.Save(w, h, file); err != nil {
		return fmt.Errorf("cannot Save: %w", err)
	}

	return
}

// WriteTo renders the chart in the given format ("png", "svg", "pdf", ...) on w.
func (c *Chart) WriteTo(w io.Writer, format string) (n int64, err error) {

	p, err := c.Plot()
	if err != nil {
		return 0, err
	}

	width, height := c.size()

	wt, err := p.WriterTo(width, height, format)
	if err != nil {
		return 0, fmt.Errorf("cannot WriteTo: %w", err)
	}

	return wt.WriteTo(w)
}
