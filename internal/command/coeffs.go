package command

import (
	"github.com/codegangsta/cli"
	"github.com/hashicorp/errwrap"

	"github.com/numerics/newtonpoly/newton"
)

var CoeffsAction = func(ctx *cli.Context) error {
	x, y, err := loadPoints(ctx)
	if err != nil {
		return err
	}

	coeffs, err := newton.DividedDifferences(x, y)
	if err != nil {
		return errwrap.Wrapf("Failed to compute divided differences: {{err}}", err)
	}

	printList(out(ctx), coeffs)

	return nil
}

var Coeffs = cli.Command{
	Name:   "coeffs",
	Usage:  "print the Newton coefficients of the polynomial interpolating the given points",
	Flags:  pointFlags,
	Action: errAction(CoeffsAction),
}
