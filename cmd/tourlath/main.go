// Command tourlath solves, scores and generates Euclidean TSP instances.
//
//	tourlath solve --input cities.csv --output tour.csv --variant hybrid --time 30s
//	tourlath score --input cities.csv --tour tour.csv
//	tourlath generate --kind clusters --n 200 --output cities.csv
//	tourlath variants
package main

import (
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli"

	"github.com/katalvlaran/tourlath/config"
)

func main() {
	app := makeapp()
	if err := app.Run(os.Args); err != nil {
		log.Error().Err(err).Msg("tourlath failed")
		os.Exit(1)
	}
}

func makeapp() *cli.App {
	app := cli.NewApp()
	app.Name = "tourlath"
	app.Usage = "Euclidean travelling-salesman tours"
	app.Description = "Construction, local search and annealing for planar TSP instances"
	app.Flags = []cli.Flag{
		cli.StringFlag{Name: "config", Value: "", Usage: "Directory holding .env and tourlath.env"},
		cli.BoolFlag{Name: "debug", Usage: "Enable debug logging"},
	}

	app.Commands = []cli.Command{
		{
			Name:    "solve",
			Aliases: []string{"s"},
			Usage:   "Compute a tour for a point file",
			Flags: []cli.Flag{
				cli.StringFlag{Name: "input, i", Usage: "Point file (.csv or .json5); required"},
				cli.StringFlag{Name: "output, o", Usage: "Tour file (.csv or .xlsx); required"},
				cli.StringFlag{Name: "variant", Usage: "Solver preset (see `tourlath variants`)"},
				cli.DurationFlag{Name: "time", Usage: "Annealing time limit"},
				cli.IntFlag{Name: "iterations", Usage: "Annealing iteration limit"},
				cli.Int64Flag{Name: "seed", Usage: "Random seed"},
				cli.IntFlag{Name: "workers", Usage: "Parallel workers; 0 uses every CPU"},
				cli.IntFlag{Name: "start", Usage: "Anchor point index"},
				cli.BoolFlag{Name: "quiet, q", Usage: "Hide the progress bar"},
			},
			Action: solveAction,
		},
		{
			Name:  "score",
			Usage: "Report the length and crossings of an existing tour",
			Flags: []cli.Flag{
				cli.StringFlag{Name: "input, i", Usage: "Point file; required"},
				cli.StringFlag{Name: "tour, t", Usage: "Tour file (.csv); required"},
			},
			Action: scoreAction,
		},
		{
			Name:    "generate",
			Aliases: []string{"gen"},
			Usage:   "Write a synthetic point set",
			Flags: []cli.Flag{
				cli.StringFlag{Name: "kind", Value: "uniform", Usage: "uniform, grid, circle or clusters"},
				cli.IntFlag{Name: "n", Value: 100, Usage: "Number of points (grid: side; clusters: points per cluster)"},
				cli.IntFlag{Name: "k", Value: 4, Usage: "Number of clusters"},
				cli.Int64Flag{Name: "seed", Value: 1, Usage: "Random seed"},
				cli.Float64Flag{Name: "scale", Value: 1000, Usage: "Square side, grid spacing or circle radius"},
				cli.Float64Flag{Name: "jitter", Usage: "Grid and circle perturbation, as a fraction of scale"},
				cli.StringFlag{Name: "output, o", Usage: "Destination .csv; stdout when empty"},
			},
			Action: generateAction,
		},
		{
			Name:   "variants",
			Usage:  "List solver presets",
			Action: variantsAction,
		},
	}

	return app
}

// setup loads the configuration and installs the global logger.
func setup(c *cli.Context) (config.Config, zerolog.Logger, error) {
	cfg, err := config.Load(c.GlobalString("config"))
	if err != nil {
		return cfg, log.Logger, err
	}

	level := cfg.Level()
	if c.GlobalBool("debug") {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)

	var out io.Writer = errWriter(c)
	if cfg.Development() {
		out = zerolog.ConsoleWriter{Out: out}
	}
	log.Logger = zerolog.New(out).With().Timestamp().Logger()

	return cfg, log.Logger, nil
}

func errWriter(c *cli.Context) io.Writer {
	if c.App.ErrWriter != nil {
		return c.App.ErrWriter
	}

	return os.Stderr
}
