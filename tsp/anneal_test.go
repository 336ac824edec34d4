package tsp_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tourlath/geom"
	"github.com/katalvlaran/tourlath/tsp"
)

// annealOpts returns options for a short, clock-driven annealing run.
func annealOpts(iterations int) tsp.Options {
	opts := tsp.DefaultOptions()
	opts.Anneal = true
	opts.MaxIterations = iterations
	opts.Now = fakeClock(clockStep)

	return opts
}

func TestAnneal_IterationBudgetAndBestTracking(t *testing.T) {
	pts := scatter(t, 40, 13)
	d := mustDist(t, pts)
	init, err := tsp.NearestNeighbor(d, startV)
	require.NoError(t, err)
	initCost := length(pts, init)

	var seen []float64
	opts := annealOpts(60)
	opts.OnImprove = func(p tsp.Progress) { seen = append(seen, p.Cost) }

	res, err := tsp.Anneal(context.Background(), d, init, opts)
	require.NoError(t, err)
	requireTour(t, res.Tour, len(pts), startV)
	require.Equal(t, tsp.StopIterations, res.Stats.Stopped)
	require.Equal(t, 60, res.Stats.Iterations)
	require.LessOrEqual(t, res.Cost, initCost+1e-9)
	require.InDelta(t, length(pts, res.Tour), res.Cost, 1e-9)

	// The best never gets worse, and the last report is the result.
	require.Len(t, seen, res.Stats.Improvements)
	for i := 1; i < len(seen); i++ {
		require.Less(t, seen[i], seen[i-1])
	}
	if len(seen) > 0 {
		require.Equal(t, res.Cost, seen[len(seen)-1])
	}
}

func TestAnneal_ResetsKeepAllTimeBest(t *testing.T) {
	pts := scatter(t, 30, 17)
	d := mustDist(t, pts)
	init, err := tsp.NearestNeighbor(d, startV)
	require.NoError(t, err)
	initCost := length(pts, init)

	// p drops below 0.1 after ~46% of the cooling period (5 clock steps).
	opts := annealOpts(80)
	opts.CoolingPeriod = 100 * time.Millisecond

	res, err := tsp.Anneal(context.Background(), d, init, opts)
	require.NoError(t, err)
	require.Positive(t, res.Stats.Resets)
	require.LessOrEqual(t, res.Cost, initCost+1e-9)
	requireTour(t, res.Tour, len(pts), startV)
}

func TestAnneal_TimeLimit(t *testing.T) {
	pts := scatter(t, 25, 1)
	d := mustDist(t, pts)
	init, err := tsp.NearestNeighbor(d, startV)
	require.NoError(t, err)

	opts := tsp.DefaultOptions()
	opts.TimeLimit = 200 * time.Millisecond
	opts.Now = fakeClock(clockStep)

	res, err := tsp.Anneal(context.Background(), d, init, opts)
	require.NoError(t, err)
	require.Equal(t, tsp.StopTimeLimit, res.Stats.Stopped)
	require.Equal(t, 19, res.Stats.Iterations)
}

func TestAnneal_Deterministic(t *testing.T) {
	pts := scatter(t, 35, 5)
	d := mustDist(t, pts)
	init, err := tsp.NearestNeighbor(d, startV)
	require.NoError(t, err)

	first, err := tsp.Anneal(context.Background(), d, init, annealOpts(40))
	require.NoError(t, err)
	Repeat(t, 3, func(t *testing.T) {
		again, err := tsp.Anneal(context.Background(), d, init, annealOpts(40))
		require.NoError(t, err)
		require.Equal(t, first.Tour, again.Tour)
		require.Equal(t, first.Cost, again.Cost)
		require.Equal(t, first.Stats, again.Stats)
	})
}

func TestAnneal_CancelledReturnsInit(t *testing.T) {
	pts := scatter(t, 20, 9)
	d := mustDist(t, pts)
	init, err := tsp.NearestNeighbor(d, startV)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	opts := tsp.DefaultOptions()
	opts.TimeLimit = tsp.Unlimited

	res, err := tsp.Anneal(ctx, d, init, opts)
	require.NoError(t, err)
	require.Equal(t, tsp.StopCancelled, res.Stats.Stopped)
	require.Zero(t, res.Stats.Iterations)
	require.Equal(t, init, res.Tour)
}

func TestAnneal_TrivialAndErrors(t *testing.T) {
	tri := geom.FromCoords([][2]float64{{0, 0}, {3, 0}, {0, 4}})
	d := mustDist(t, tri)
	res, err := tsp.Anneal(context.Background(), d, []int{0, 1, 2, 0}, annealOpts(5))
	require.NoError(t, err)
	require.Equal(t, tsp.StopTrivial, res.Stats.Stopped)
	require.Equal(t, 12.0, res.Cost)

	pts := scatter(t, 10, 1)
	d = mustDist(t, pts)
	init := tsp.IdentityRing(10, 0)

	_, err = tsp.Anneal(context.Background(), d, init, tsp.DefaultOptions())
	require.ErrorIs(t, err, tsp.ErrNoBudget)

	bad := annealOpts(5)
	bad.ResetThreshold = 1.5
	_, err = tsp.Anneal(context.Background(), d, init, bad)
	require.ErrorIs(t, err, tsp.ErrInvalidOptions)

	bad = annealOpts(5)
	bad.DecayRate = 0
	_, err = tsp.Anneal(context.Background(), d, init, bad)
	require.ErrorIs(t, err, tsp.ErrInvalidOptions)

	_, err = tsp.Anneal(context.Background(), d, init[:5], annealOpts(5))
	require.ErrorIs(t, err, tsp.ErrDimensionMismatch)
}
