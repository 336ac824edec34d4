// Package tsp - solver dispatcher.
//
// Pipeline (every stage but construction is switched by Options):
//
//	construct → [ResolveCrossings] → [LocalSearch(Moves)] → [Anneal] → normalize
//
// With MultiStart the first three stages run once per start city on a
// bounded errgroup pool; the shortest result (ties → lowest start city)
// continues. Each trial owns its tour and RNG stream; the distance matrix is
// shared read-only.
//
// Normalization rotates the tour to Options.Start and fixes its direction
// with CanonicalizeOrientationInPlace, so equal cycles print identically.
package tsp

import (
	"context"
	"fmt"
	"math/rand"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/tourlath/geom"
	"github.com/katalvlaran/tourlath/matrix"
)

// Solve builds the Euclidean distance matrix for pts and runs SolveWithMatrix.
// pts[i].ID must equal i.
func Solve(ctx context.Context, pts []geom.Point, opts Options) (TSResult, error) {
	if len(pts) == 0 {
		return TSResult{}, fmt.Errorf("Solve: %w", ErrEmptyInput)
	}
	if err := validateOptionsStandalone(opts); err != nil {
		return TSResult{}, fmt.Errorf("Solve: %w", err)
	}
	if err := validatePoints(pts, len(pts)); err != nil {
		return TSResult{}, fmt.Errorf("Solve: %w", err)
	}

	dist, err := matrix.NewEuclidean(ctx, pts, matrix.WithWorkers(opts.Workers))
	if err != nil {
		return TSResult{}, fmt.Errorf("Solve: %w", err)
	}

	return SolveWithMatrix(ctx, dist, pts, opts)
}

// SolveWithMatrix runs the configured pipeline on a prebuilt matrix.
// pts may be nil when neither ResolveCrossings nor the untangling
// construction is enabled.
//
// Degenerate sizes: n == 1 yields [s, s] with cost 0; n ≤ 3 skips every
// improvement stage (a triangle has a single cycle).
//
// Errors: ErrEmptyInput, ErrDimensionMismatch, ErrStartOutOfRange,
// ErrInvalidOptions, ErrNoBudget, ErrNotConverged, or a ctx error raised
// before annealing. A ctx cancelled during annealing still yields the best
// tour found.
func SolveWithMatrix(ctx context.Context, dist *matrix.Distance, pts []geom.Point, opts Options) (TSResult, error) {
	n, err := validateAll(dist, pts, opts)
	if err != nil {
		return TSResult{}, fmt.Errorf("SolveWithMatrix: %w", err)
	}
	log := opts.logger()

	if n <= 3 {
		tour := IdentityRing(n, opts.Start)
		stats := Stats{Starts: 1, BestStart: opts.Start}
		if opts.Anneal {
			stats.Stopped = StopTrivial
		}

		return finish(dist, tour, stats)
	}

	var (
		tour  []int
		stats Stats
	)
	if opts.MultiStart {
		tour, stats, err = multiStart(ctx, dist, pts, n, opts)
	} else {
		tour, stats, err = runTrial(ctx, dist, pts, opts.Start, opts)
		stats.Starts, stats.BestStart = 1, opts.Start
	}
	if err != nil {
		return TSResult{}, fmt.Errorf("SolveWithMatrix: %w", err)
	}
	log.Debug().
		Int("starts", stats.Starts).
		Int("best_start", stats.BestStart).
		Int("crossings", stats.Crossings).
		Float64("cost", round1e9(tourLength(dist, tour))).
		Msg("construction done")

	if opts.Anneal {
		res, err := Anneal(ctx, dist, tour, opts)
		if err != nil {
			return TSResult{}, fmt.Errorf("SolveWithMatrix: %w", err)
		}
		tour = res.Tour
		stats.Iterations = res.Stats.Iterations
		stats.Accepted = res.Stats.Accepted
		stats.Uphill = res.Stats.Uphill
		stats.Resets = res.Stats.Resets
		stats.Improvements = res.Stats.Improvements
		stats.Stopped = res.Stats.Stopped
	}

	return finish(dist, tour, stats)
}

// runTrial builds one tour from start and cleans it up, returning it rotated
// to opts.Start.
func runTrial(ctx context.Context, dist *matrix.Distance, pts []geom.Point, start int, opts Options) ([]int, Stats, error) {
	var (
		n     = dist.N()
		tour  []int
		stats Stats
		err   error
	)
	if err = ctx.Err(); err != nil {
		return nil, stats, err
	}

	tour, err = construct(dist, pts, start, deriveRNG(opts.Seed, uint64(start)), opts.Construction)
	if err != nil {
		return nil, stats, err
	}
	if opts.ResolveCrossings {
		if stats.Crossings, err = ResolveCrossings(ctx, tour, pts, opts); err != nil {
			return nil, stats, err
		}
	}
	if opts.Moves != 0 {
		if _, err = LocalSearch(dist, tour, opts.Moves, opts); err != nil {
			return nil, stats, err
		}
	}
	if start != opts.Start {
		if tour, err = RotateTourToStart(tour, opts.Start); err != nil {
			return nil, stats, err
		}
	}
	if err = ValidateTour(tour, n, opts.Start); err != nil {
		return nil, stats, err
	}

	return tour, stats, nil
}

// construct dispatches to the initial-tour builder selected by c.
func construct(dist *matrix.Distance, pts []geom.Point, start int, rng *rand.Rand, c Construction) ([]int, error) {
	switch c {
	case ConstructNearestNeighbor:
		return NearestNeighbor(dist, start)
	case ConstructNearestNeighborUntangled:
		return NearestNeighborUntangled(dist, pts, start)
	case ConstructRandom:
		return RandomTour(dist.N(), start, rng)
	case ConstructIdentity:
		return IdentityRing(dist.N(), start), nil
	default:
		return nil, fmt.Errorf("construction %d: %w", c, ErrInvalidOptions)
	}
}

// multiStart runs runTrial for every start city and keeps the shortest tour.
//
// Workers: opts.Workers, 0 ⇒ GOMAXPROCS. Results are indexed by start city,
// so the winner does not depend on scheduling.
func multiStart(ctx context.Context, dist *matrix.Distance, pts []geom.Point, n int, opts Options) ([]int, Stats, error) {
	workers := opts.Workers
	if workers == 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	var (
		tours = make([][]int, n)
		stats = make([]Stats, n)
		costs = make([]float64, n)
	)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	var s int
	for s = 0; s < n; s++ {
		start := s
		g.Go(func() error {
			tour, st, err := runTrial(gctx, dist, pts, start, opts)
			if err != nil {
				return fmt.Errorf("start %d: %w", start, err)
			}
			tours[start], stats[start] = tour, st
			costs[start] = tourLength(dist, tour)

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, Stats{}, err
	}

	best := 0
	for s = 1; s < n; s++ {
		if costs[s] < costs[best] {
			best = s
		}
	}
	out := stats[best]
	out.Starts, out.BestStart = n, best

	return tours[best], out, nil
}

// finish normalizes the tour and packages the result.
func finish(dist *matrix.Distance, tour []int, stats Stats) (TSResult, error) {
	if err := ValidateTour(tour, dist.N(), tour[0]); err != nil {
		return TSResult{}, fmt.Errorf("SolveWithMatrix: %w", err)
	}
	if err := CanonicalizeOrientationInPlace(tour); err != nil {
		return TSResult{}, fmt.Errorf("SolveWithMatrix: %w", err)
	}
	cost, err := TourCost(dist, tour)
	if err != nil {
		return TSResult{}, fmt.Errorf("SolveWithMatrix: %w", err)
	}

	return TSResult{Tour: tour, Cost: cost, Stats: stats}, nil
}
