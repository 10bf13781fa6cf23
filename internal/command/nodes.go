package command

import (
	"github.com/codegangsta/cli"
	"github.com/hashicorp/errwrap"

	"github.com/numerics/newtonpoly/newton"
)

var NodesAction = func(ctx *cli.Context) error {
	a, b, n := ctx.Float64("a"), ctx.Float64("b"), ctx.Int("degree")

	nodes, err := newton.ChebyshevNodes(a, b, n)
	if err != nil {
		return errwrap.Wrapf("Failed to compute Chebyshev nodes: {{err}}", err)
	}

	printList(out(ctx), nodes)

	return nil
}

var Nodes = cli.Command{
	Name:  "nodes",
	Usage: "print the Chebyshev nodes of [a, b] for a polynomial of the given degree",
	Flags: []cli.Flag{
		cli.Float64Flag{Name: "a", Value: -1, Usage: "left endpoint of the interval"},
		cli.Float64Flag{Name: "b", Value: 1, Usage: "right endpoint of the interval"},
		cli.IntFlag{Name: "degree,n", Value: 10, Usage: "polynomial degree, n+1 nodes are printed"},
	},
	Action: errAction(NodesAction),
}
