package command

import (
	"github.com/codegangsta/cli"
	"github.com/hashicorp/errwrap"

	"github.com/numerics/newtonpoly/newton"
)

var HornerAction = func(ctx *cli.Context) error {
	coeffs, err := parseFloats(ctx.String("coeffs"))
	if err != nil {
		return errwrap.Wrapf("Failed to parse --coeffs: {{err}}", err)
	}

	ts, err := parseFloats(ctx.String("t"))
	if err != nil {
		return errwrap.Wrapf("Failed to parse --t: {{err}}", err)
	}

	values, err := newton.HornerSlice(ts, coeffs)
	if err != nil {
		return errwrap.Wrapf("Failed to evaluate polynomial: {{err}}", err)
	}

	printValues(out(ctx), ts, values)

	return nil
}

var Horner = cli.Command{
	Name:  "horner",
	Usage: "evaluate a polynomial given by its coefficients, highest degree first",
	Flags: []cli.Flag{
		cli.StringFlag{Name: "coeffs,c", Usage: "comma separated coefficients, highest degree first"},
		cli.StringFlag{Name: "t", Usage: "comma separated query points"},
	},
	Action: errAction(HornerAction),
}
