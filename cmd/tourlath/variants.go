package main

import (
	"fmt"

	"github.com/ttacon/chalk"
	"github.com/urfave/cli"

	"github.com/katalvlaran/tourlath/tsp"
)

func variantsAction(c *cli.Context) error {
	w := c.App.Writer
	for _, v := range tsp.Variants() {
		opts, err := tsp.OptionsFor(v)
		if err != nil {
			return err
		}
		fmt.Fprint(w, chalk.Yellow, fmt.Sprintf("%-13s", v), chalk.Reset)
		fmt.Fprintf(w, " multistart=%t crossings=%t moves=%s anneal=%t\n",
			opts.MultiStart, opts.ResolveCrossings, opts.Moves, opts.Anneal)
	}

	return nil
}
