package command

import (
	"github.com/codegangsta/cli"

	"github.com/numerics/newtonpoly/internal/server"
)

var ServeAction = func(ctx *cli.Context) error {
	return server.NewNewtonServer(Clog).Start()
}

var Serve = cli.Command{
	Name:   "serve",
	Usage:  "serve the interpolation tools over MCP on stdin and stdout",
	Flags:  []cli.Flag{},
	Action: errAction(ServeAction),
}
