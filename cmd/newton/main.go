package main

import (
	"os"

	"github.com/codegangsta/cli"

	"github.com/numerics/newtonpoly"
	"github.com/numerics/newtonpoly/internal/command"
)

func main() {
	app := cli.NewApp()
	app.Name = newtonpoly.Name
	app.Usage = "Newton-form polynomial interpolation"
	app.Version = newtonpoly.Version
	app.Flags = []cli.Flag{}

	app.Commands = []cli.Command{
		command.Init,
		command.Nodes,
		command.Coeffs,
		command.Eval,
		command.Horner,
		command.Demo,
		command.Fit,
		command.Serve,
	}

	app.Run(os.Args)
}
