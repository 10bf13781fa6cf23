package command

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/codegangsta/cli"
	"github.com/hashicorp/errwrap"
	"github.com/spf13/cast"

	"github.com/numerics/newtonpoly/dataset"
)

//All commands log on Clog, it is made public to
//let unit tests capture the output
var Clog = log.New(os.Stderr, "newton: ", 0)

type errFunc func(ctx *cli.Context) error

func errAction(f errFunc) func(ctx *cli.Context) {
	return func(ctx *cli.Context) {
		err := f(ctx)
		if err != nil {
			Clog.Fatal(err)
		}
	}
}

// out returns the writer results are printed on
func out(ctx *cli.Context) io.Writer {
	if ctx.App != nil && ctx.App.Writer != nil {
		return ctx.App.Writer
	}
	return os.Stdout
}

// parseFloats parses a comma separated list of numbers
func parseFloats(s string) (values []float64, err error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return []float64{}, nil
	}

	for i, field := range strings.Split(s, ",") {
		v, err := cast.ToFloat64E(strings.TrimSpace(field))
		if err != nil {
			return nil, errwrap.Wrapf(fmt.Sprintf("Failed to parse value %d of '%s': {{err}}", i, s), err)
		}
		values = append(values, v)
	}

	return values, nil
}

// loadPoints reads interpolation points from the --data file, or from the
// --x and --y lists when no file is given
func loadPoints(ctx *cli.Context) (x, y []float64, err error) {
	if fpath := ctx.String("data"); fpath != "" {
		f, err := os.Open(fpath)
		if err != nil {
			return nil, nil, errwrap.Wrapf(fmt.Sprintf("Failed to open data file '%s': {{err}}", fpath), err)
		}

		defer f.Close()

		table, err := dataset.Parse(f)
		if err != nil {
			return nil, nil, errwrap.Wrapf(fmt.Sprintf("Failed to load points from '%s': {{err}}", fpath), err)
		}

		if table.Dropped > 0 {
			Clog.Printf("Dropped %d rows with missing values from '%s'", table.Dropped, fpath)
		}

		if table.HasDuplicates {
			Clog.Printf("Warning: nodes read from '%s' are not distinct, interpolation will fail", fpath)
		}

		return table.X, table.Y, nil
	}

	if x, err = parseFloats(ctx.String("x")); err != nil {
		return nil, nil, errwrap.Wrapf("Failed to parse --x: {{err}}", err)
	}

	if y, err = parseFloats(ctx.String("y")); err != nil {
		return nil, nil, errwrap.Wrapf("Failed to parse --y: {{err}}", err)
	}

	if len(x) == 0 {
		return nil, nil, fmt.Errorf("No points given, use --data or --x and --y")
	}

	return x, y, nil
}

// printValues prints one "x y" pair per line
func printValues(w io.Writer, x, y []float64) {
	for i := range x {
		fmt.Fprintf(w, "%.17g %.17g\n", x[i], y[i])
	}
}

// printList prints a list of values, one per line
func printList(w io.Writer, values []float64) {
	for _, v := range values {
		fmt.Fprintf(w, "%.17g\n", v)
	}
}

var pointFlags = []cli.Flag{
	cli.StringFlag{Name: "data,d", Usage: "two column file with the interpolation points"},
	cli.StringFlag{Name: "x", Usage: "comma separated interpolation nodes"},
	cli.StringFlag{Name: "y", Usage: "comma separated values at the nodes"},
}
