package command

import (
	"encoding/hex"
	"fmt"
	"io"
	"math/big"

	"github.com/codegangsta/cli"
	"github.com/hashicorp/errwrap"
	"gonum.org/v1/plot/vg"

	"github.com/numerics/newtonpoly/config"
	"github.com/numerics/newtonpoly/functions"
	"github.com/numerics/newtonpoly/newton"
	"github.com/numerics/newtonpoly/plot"
	"github.com/numerics/newtonpoly/utils/bignum"
	"github.com/numerics/newtonpoly/utils/sampling"
)

// loadConfig reads the --config file, or the defaults, and applies the flags
// that were explicitly set on top of it
func loadConfig(ctx *cli.Context) (conf *config.Config, err error) {
	conf = config.DefaultConfig()

	if fpath := ctx.String("config"); fpath != "" {
		if conf, err = config.ReadConfig(fpath); err != nil {
			return nil, err
		}
	}

	if ctx.IsSet("function") {
		conf.Function = ctx.String("function")
	}
	if ctx.IsSet("a") {
		conf.A = ctx.Float64("a")
	}
	if ctx.IsSet("b") {
		conf.B = ctx.Float64("b")
	}
	if ctx.IsSet("degree") {
		conf.Degree = ctx.Int("degree")
	}
	if ctx.IsSet("samples") {
		conf.Samples = ctx.Int("samples")
	}
	if ctx.IsSet("precision") {
		prec := ctx.Int("precision")
		if prec < 0 {
			return nil, fmt.Errorf("%w: negative precision %d", config.ErrInvalidConfig, prec)
		}
		conf.Precision = uint(prec)
	}
	if ctx.IsSet("plot") {
		conf.Plot.Output = ctx.String("plot")
	}

	return conf, nil
}

// interpolate builds the interpolant of f at the Chebyshev nodes of [a, b] and
// evaluates it on ts. Above 53 bits of precision the whole computation is
// carried out on big.Float.
func interpolate(f functions.Function, conf *config.Config, ts []float64) (p *newton.Interpolant, approx []float64, err error) {

	if conf.Precision <= 53 {
		if p, err = newton.NewChebyshevInterpolant(f.F, conf.A, conf.B, conf.Degree); err != nil {
			return
		}
		approx, err = p.EvaluateSlice(ts)
		return
	}

	prec := conf.Precision

	nodes, err := newton.ChebyshevNodesBig(bignum.NewFloat(conf.A, prec), bignum.NewFloat(conf.B, prec), conf.Degree)
	if err != nil {
		return
	}

	coeffs, err := newton.DividedDifferencesBig(nodes, f.SampleBig(nodes))
	if err != nil {
		return
	}

	approx = make([]float64, len(ts))
	for i := range ts {
		var y *big.Float
		if y, err = newton.EvaluateBig(coeffs, nodes, bignum.NewFloat(ts[i], prec)); err != nil {
			return
		}
		approx[i], _ = y.Float64()
	}

	p = &newton.Interpolant{
		Nodes:  bignum.Float64Slice(nodes),
		Coeffs: bignum.Float64Slice(coeffs),
	}

	return
}

func printInterpolant(w io.Writer, p *newton.Interpolant) {
	fmt.Fprintf(w, "%-5s %-24s %s\n", "i", "node", "coeff")
	for i := range p.Nodes {
		fmt.Fprintf(w, "%-5d %-24.17g %.17g\n", i, p.Nodes[i], p.Coeffs[i])
	}
}

func printStats(w io.Writer, st newton.ErrorStats) {
	fmt.Fprintf(w, "error on %d samples: max %.6e, mean %.6e, median %.6e, std dev %.6e\n", st.Samples, st.Max, st.Mean, st.Median, st.StdDev)
	if st.Skipped > 0 {
		fmt.Fprintf(w, "skipped %d non-finite samples\n", st.Skipped)
	}
}

func saveChart(c *plot.Chart, conf *config.Config) error {
	c.Width = vg.Length(conf.Plot.Width) * vg.Inch
	c.Height = vg.Length(conf.Plot.Height) * vg.Inch

	if err := c.Save(conf.Plot.Output); err != nil {
		return errwrap.Wrapf(fmt.Sprintf("Failed to save plot to '%s': {{err}}", conf.Plot.Output), err)
	}

	Clog.Printf("Wrote plot to '%s'", conf.Plot.Output)

	return nil
}

var DemoAction = func(ctx *cli.Context) error {
	conf, err := loadConfig(ctx)
	if err != nil {
		return err
	}

	if conf.Function == "" {
		return fmt.Errorf("No function given, use --function with one of %v", functions.Names())
	}

	f, err := functions.Lookup(conf.Function)
	if err != nil {
		return errwrap.Wrapf("Failed to select function: {{err}}", err)
	}

	// Without an explicit interval, use the function's own domain.
	if ctx.String("config") == "" && !ctx.IsSet("a") && !ctx.IsSet("b") {
		conf.A, conf.B = f.XRange[0], f.XRange[1]
	}

	if err = conf.Validate(); err != nil {
		return err
	}

	Clog.Printf("Interpolating %s on [%g, %g] with %d Chebyshev nodes at %d bits", f.Label, conf.A, conf.B, conf.Degree+1, conf.Precision)

	ts := sampling.Linspace(conf.A, conf.B, conf.Samples)

	p, approx, err := interpolate(f, conf, ts)
	if err != nil {
		return errwrap.Wrapf(fmt.Sprintf("Failed to interpolate %s: {{err}}", f.Label), err)
	}

	reference := f.Sample(ts)

	st, err := newton.CompareCurves(reference, approx)
	if err != nil {
		return errwrap.Wrapf("Failed to compare curves: {{err}}", err)
	}

	digest, err := p.Digest()
	if err != nil {
		return err
	}

	w := out(ctx)
	fmt.Fprintf(w, "function: %s\ninterval: [%g, %g]\ndegree: %d\n", f.Label, conf.A, conf.B, p.Degree())
	printInterpolant(w, p)
	printStats(w, st)
	fmt.Fprintf(w, "digest: %s\n", hex.EncodeToString(digest[:]))

	if conf.Plot.Output == "" {
		return nil
	}

	values := f.Sample(p.Nodes)

	return saveChart(&plot.Chart{
		Title:            fmt.Sprintf("Newton interpolation of %s", f.Label),
		Reference:        plot.NewXYs(ts, reference),
		ReferenceLabel:   f.Label,
		Interpolant:      plot.NewXYs(ts, approx),
		InterpolantLabel: fmt.Sprintf("Newton polynomial (n=%d)", p.Degree()),
		Nodes:            plot.NewXYs(p.Nodes, values),
		NodesLabel:       fmt.Sprintf("Chebyshev nodes (%d)", len(p.Nodes)),
	}, conf)
}

var configFlag = cli.StringFlag{Name: "config", Usage: "JSON configuration file, flags take precedence"}

var Demo = cli.Command{
	Name:  "demo",
	Usage: "interpolate a catalogued function at Chebyshev nodes and report the error",
	Flags: []cli.Flag{
		configFlag,
		cli.StringFlag{Name: "function,f", Usage: "function name or id"},
		cli.Float64Flag{Name: "a", Usage: "left endpoint, defaults to the function's domain"},
		cli.Float64Flag{Name: "b", Usage: "right endpoint, defaults to the function's domain"},
		cli.IntFlag{Name: "degree,n", Value: 10, Usage: fmt.Sprintf("polynomial degree, between 1 and %d", config.MaxDegree)},
		cli.IntFlag{Name: "samples", Value: 400, Usage: "size of the evaluation grid"},
		cli.IntFlag{Name: "precision,p", Value: 53, Usage: "bits of precision, above 53 big.Float arithmetic is used"},
		cli.StringFlag{Name: "plot", Usage: "write a plot to this file (.png, .svg, .pdf)"},
	},
	Action: errAction(DemoAction),
}
