package command

import (
	"github.com/codegangsta/cli"

	"github.com/numerics/newtonpoly/config"
)

var InitAction = func(ctx *cli.Context) error {
	fpath := ctx.Args().First()
	if fpath == "" {
		fpath = config.FileName
	}

	conf := config.DefaultConfig()
	conf.Function = ctx.String("function")

	Clog.Printf("Writing default configuration to '%s'", fpath)

	return config.WriteConfig(fpath, conf)
}

var Init = cli.Command{
	Name:  "init",
	Usage: "write a default configuration file",
	Flags: []cli.Flag{
		cli.StringFlag{Name: "function,f", Value: "runge", Usage: "function name or id"},
	},
	Action: errAction(InitAction),
}
