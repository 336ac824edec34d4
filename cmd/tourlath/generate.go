package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/urfave/cli"

	"github.com/katalvlaran/tourlath/builder"
	"github.com/katalvlaran/tourlath/geom"
	"github.com/katalvlaran/tourlath/tspio"
)

func generateAction(c *cli.Context) error {
	_, logger, err := setup(c)
	if err != nil {
		return err
	}

	opts := []builder.Option{builder.WithSeed(c.Int64("seed"))}
	if s := c.Float64("scale"); s > 0 {
		opts = append(opts, builder.WithScale(s))
	}
	if j := c.Float64("jitter"); j > 0 {
		opts = append(opts, builder.WithJitter(j))
	}

	n := c.Int("n")
	var pts []geom.Point
	switch kind := strings.ToLower(c.String("kind")); kind {
	case "uniform":
		pts, err = builder.Uniform(n, opts...)
	case "grid":
		pts, err = builder.Grid(n, n, opts...)
	case "circle":
		pts, err = builder.Circle(n, opts...)
	case "clusters":
		pts, err = builder.Clusters(c.Int("k"), n, opts...)
	default:
		return fmt.Errorf("generate: unknown kind %q", kind)
	}
	if err != nil {
		return err
	}

	out := c.String("output")
	if out == "" {
		return tspio.WritePoints(c.App.Writer, pts)
	}
	f, err := os.Create(out)
	if err != nil {
		return err
	}
	if err = tspio.WritePoints(f, pts); err != nil {
		f.Close()
		return err
	}
	logger.Info().Str("output", out).Int("points", len(pts)).Msg("points written")

	return f.Close()
}
