package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/cheggaaa/pb"
	"github.com/ttacon/chalk"
	"github.com/urfave/cli"

	"github.com/katalvlaran/tourlath/config"
	"github.com/katalvlaran/tourlath/geom"
	"github.com/katalvlaran/tourlath/matrix"
	"github.com/katalvlaran/tourlath/tsp"
	"github.com/katalvlaran/tourlath/tspio"
)

var errMissingFlag = errors.New("missing required flag")

func solveAction(c *cli.Context) error {
	cfg, logger, err := setup(c)
	if err != nil {
		return err
	}
	input, output := c.String("input"), c.String("output")
	if input == "" || output == "" {
		return fmt.Errorf("solve: --input and --output: %w", errMissingFlag)
	}

	opts, err := solveOptions(c, cfg)
	if err != nil {
		return err
	}

	pts, err := tspio.ReadPointsFile(input)
	if err != nil {
		return err
	}
	rect, err := geom.Bounds(pts)
	if err != nil {
		return err
	}
	logger.Info().
		Str("input", input).
		Int("points", len(pts)).
		Float64("width", rect.X.Length()).
		Float64("height", rect.Y.Length()).
		Msg("points loaded")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	began := time.Now()
	dist, err := matrix.NewEuclidean(ctx, pts, matrix.WithWorkers(opts.Workers))
	if err != nil {
		return err
	}
	logger.Debug().
		Float64("longest_edge", dist.MaxEntry()).
		Dur("took", time.Since(began)).
		Msg("distance matrix ready")

	opts.Logger = &logger
	var bar *budgetBar
	if opts.Anneal && !c.Bool("quiet") {
		if bar = newBudgetBar(opts, errWriter(c)); bar != nil {
			opts.OnImprove = bar.improve
		}
	}

	res, err := tsp.SolveWithMatrix(ctx, dist, pts, opts)
	bar.finish()
	if err != nil {
		return err
	}
	if err = tspio.WriteTourFile(output, res.Tour, pts); err != nil {
		return err
	}
	logger.Info().
		Str("output", output).
		Float64("cost", res.Cost).
		Str("stopped", res.Stats.Stopped.String()).
		Dur("took", time.Since(began)).
		Msg("tour written")

	bopts := tsp.DefaultBoundOptions()
	bopts.UB = res.Cost
	lb, err := tsp.LowerBound(dist, bopts)
	if err != nil {
		return err
	}
	logger.Debug().Float64("lower_bound", lb).Msg("held-karp bound")

	printSummary(c.App.Writer, res, pts, lb)

	return nil
}

// solveOptions layers command-line flags over the configuration.
func solveOptions(c *cli.Context, cfg config.Config) (tsp.Options, error) {
	if c.IsSet("variant") {
		cfg.Variant = c.String("variant")
	}
	if c.IsSet("time") {
		cfg.TimeLimit = c.Duration("time")
	}
	if c.IsSet("iterations") {
		cfg.MaxIterations = c.Int("iterations")
	}
	if c.IsSet("seed") {
		cfg.Seed = c.Int64("seed")
	}
	if c.IsSet("workers") {
		cfg.Workers = c.Int("workers")
	}

	opts, err := cfg.Options()
	if err != nil {
		return opts, err
	}
	opts.Start = c.Int("start")

	return opts, nil
}

func printSummary(w io.Writer, res tsp.TSResult, pts []geom.Point, lb float64) {
	fmt.Fprint(w, chalk.Green, "length ", chalk.Reset)
	fmt.Fprintf(w, "%.4f", res.Cost)
	if lb > 0 {
		fmt.Fprint(w, chalk.Magenta, "  gap ", chalk.Reset)
		fmt.Fprintf(w, "≤%.2f%%", 100*(res.Cost-lb)/lb)
	}
	fmt.Fprint(w, chalk.Cyan, "  points ", chalk.Reset)
	fmt.Fprintf(w, "%d", len(pts))
	fmt.Fprint(w, chalk.Cyan, "  crossings ", chalk.Reset)
	fmt.Fprintf(w, "%d", tsp.CountCrossings(res.Tour, pts))
	if res.Stats.Iterations > 0 {
		fmt.Fprint(w, chalk.Yellow, "  iterations ", chalk.Reset)
		fmt.Fprintf(w, "%d (%d resets, %s)", res.Stats.Iterations, res.Stats.Resets, res.Stats.Stopped)
	}
	fmt.Fprintln(w)
}

// budgetBar renders annealing progress against the time or iteration budget.
type budgetBar struct {
	bar   *pb.ProgressBar
	byIt  bool
	done  chan struct{}
	once  sync.Once
	start time.Time
}

// newBudgetBar returns nil when neither budget is finite.
func newBudgetBar(opts tsp.Options, w io.Writer) *budgetBar {
	var total int
	var byIt bool
	switch {
	case opts.TimeLimit > 0 && opts.TimeLimit != tsp.Unlimited:
		total = int(opts.TimeLimit / time.Millisecond)
	case opts.MaxIterations > 0:
		total, byIt = opts.MaxIterations, true
	default:
		return nil
	}

	b := &budgetBar{
		bar:   pb.New(total),
		byIt:  byIt,
		done:  make(chan struct{}),
		start: time.Now(),
	}
	b.bar.Output = w
	b.bar.SetWidth(80)
	b.bar.ShowCounters = byIt
	b.bar.ShowSpeed = false
	b.bar.Prefix("anneal ")
	b.bar.Start()

	if !byIt {
		go b.tick(total)
	}

	return b
}

func (b *budgetBar) tick(total int) {
	t := time.NewTicker(200 * time.Millisecond)
	defer t.Stop()
	for {
		select {
		case <-b.done:
			return
		case <-t.C:
			b.bar.Set(min(int(time.Since(b.start)/time.Millisecond), total))
		}
	}
}

func (b *budgetBar) improve(p tsp.Progress) {
	if b.byIt {
		b.bar.Set(p.Iteration)
	}
}

// finish is safe on a nil bar.
func (b *budgetBar) finish() {
	if b == nil {
		return
	}
	b.once.Do(func() {
		close(b.done)
		b.bar.Finish()
	})
}
