package command

import (
	"fmt"

	"github.com/codegangsta/cli"
	"github.com/hashicorp/errwrap"

	"github.com/numerics/newtonpoly/dataset"
	"github.com/numerics/newtonpoly/newton"
	"github.com/numerics/newtonpoly/plot"
	"github.com/numerics/newtonpoly/utils/sampling"
)

var FitAction = func(ctx *cli.Context) error {
	conf, err := loadConfig(ctx)
	if err != nil {
		return err
	}

	x, y, err := loadPoints(ctx)
	if err != nil {
		return err
	}

	p, err := newton.NewInterpolant(x, y)
	if err != nil {
		return errwrap.Wrapf("Failed to interpolate points: {{err}}", err)
	}

	table := &dataset.Table{X: x, Y: y}
	a, b := table.Range()

	w := out(ctx)
	fmt.Fprintf(w, "points: %d\ninterval: [%g, %g]\ndegree: %d\n", len(x), a, b, p.Degree())
	printInterpolant(w, p)

	if conf.Plot.Output == "" {
		return nil
	}

	ts := sampling.Linspace(a, b, conf.Samples)

	approx, err := p.EvaluateSlice(ts)
	if err != nil {
		return errwrap.Wrapf("Failed to evaluate interpolant: {{err}}", err)
	}

	return saveChart(&plot.Chart{
		Title:            "Interpolating polynomial of the data",
		Interpolant:      plot.NewXYs(ts, approx),
		InterpolantLabel: fmt.Sprintf("Newton polynomial (n=%d)", p.Degree()),
		Nodes:            plot.NewXYs(x, y),
		NodesLabel:       fmt.Sprintf("Data nodes (%d)", len(x)),
	}, conf)
}

var Fit = cli.Command{
	Name:  "fit",
	Usage: "interpolate points read from a file and optionally plot the polynomial",
	Flags: append([]cli.Flag{
		configFlag,
		cli.IntFlag{Name: "samples", Value: 400, Usage: "size of the evaluation grid"},
		cli.StringFlag{Name: "plot", Usage: "write a plot to this file (.png, .svg, .pdf)"},
	}, pointFlags...),
	Action: errAction(FitAction),
}
