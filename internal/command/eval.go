package command

import (
	"fmt"
	"io"

	"github.com/codegangsta/cli"
	"github.com/hashicorp/errwrap"

	"github.com/numerics/newtonpoly/newton"
	"github.com/numerics/newtonpoly/utils"
	"github.com/numerics/newtonpoly/utils/sampling"
)

var EvalAction = func(ctx *cli.Context) error {
	x, y, err := loadPoints(ctx)
	if err != nil {
		return err
	}

	p, err := newton.NewInterpolant(x, y)
	if err != nil {
		return errwrap.Wrapf("Failed to interpolate points: {{err}}", err)
	}

	ts, err := parseFloats(ctx.String("t"))
	if err != nil {
		return errwrap.Wrapf("Failed to parse --t: {{err}}", err)
	}

	// Random query points within the range of the nodes.
	if k := ctx.Int("random"); k > 0 {
		var prng io.Reader
		if seed := ctx.String("seed"); seed != "" {
			prng, err = sampling.NewSeededPRNG(seed)
		} else {
			prng, err = sampling.NewPRNG()
		}
		if err != nil {
			return errwrap.Wrapf("Failed to seed PRNG: {{err}}", err)
		}
		a, b := utils.MinMax(x)
		ts = append(ts, sampling.Float64Slice(prng, k, a, b)...)
	}

	if len(ts) == 0 {
		return fmt.Errorf("No query points given, use --t or --random")
	}

	values, err := p.EvaluateSlice(ts)
	if err != nil {
		return errwrap.Wrapf("Failed to evaluate interpolant: {{err}}", err)
	}

	printValues(out(ctx), ts, values)

	return nil
}

var Eval = cli.Command{
	Name:  "eval",
	Usage: "evaluate the polynomial interpolating the given points",
	Flags: append([]cli.Flag{
		cli.StringFlag{Name: "t", Usage: "comma separated query points"},
		cli.IntFlag{Name: "random,r", Usage: "number of random query points to add"},
		cli.StringFlag{Name: "seed", Value: "newton", Usage: "seed of the random query points, empty for a secure source"},
	}, pointFlags...),
	Action: errAction(EvalAction),
}
