package main

import (
	"context"
	"fmt"
	"os"

	"github.com/ttacon/chalk"
	"github.com/urfave/cli"

	"github.com/katalvlaran/tourlath/matrix"
	"github.com/katalvlaran/tourlath/tsp"
	"github.com/katalvlaran/tourlath/tspio"
)

func scoreAction(c *cli.Context) error {
	_, logger, err := setup(c)
	if err != nil {
		return err
	}
	input, tourPath := c.String("input"), c.String("tour")
	if input == "" || tourPath == "" {
		return fmt.Errorf("score: --input and --tour: %w", errMissingFlag)
	}

	pts, err := tspio.ReadPointsFile(input)
	if err != nil {
		return err
	}
	f, err := os.Open(tourPath)
	if err != nil {
		return err
	}
	defer f.Close()
	order, err := tspio.ReadTour(f)
	if err != nil {
		return err
	}

	// Files hold the open order; a trailing repeat of the first index is tolerated.
	if len(order) == len(pts)+1 && order[0] == order[len(order)-1] {
		order = order[:len(pts)]
	}
	tour, err := tsp.MakeTourFromPermutation(order, order[0])
	if err != nil {
		return fmt.Errorf("score: %s is not a tour over %d points: %w", tourPath, len(pts), err)
	}

	dist, err := matrix.NewEuclidean(context.Background(), pts)
	if err != nil {
		return err
	}
	cost, err := tsp.TourCost(dist, tour)
	if err != nil {
		return err
	}
	crossings := tsp.CountCrossings(tour, pts)
	logger.Debug().Str("tour", tourPath).Float64("cost", cost).Int("crossings", crossings).Msg("scored")

	w := c.App.Writer
	fmt.Fprint(w, chalk.Green, "length ", chalk.Reset)
	fmt.Fprintf(w, "%.4f", cost)
	fmt.Fprint(w, chalk.Cyan, "  crossings ", chalk.Reset)
	fmt.Fprintf(w, "%d\n", crossings)

	return nil
}
