package tsp_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tourlath/geom"
	"github.com/katalvlaran/tourlath/tsp"
)

// variantOpts returns the preset for v with a small deterministic annealing budget.
func variantOpts(t *testing.T, v tsp.Variant) tsp.Options {
	t.Helper()
	opts, err := tsp.OptionsFor(v)
	require.NoError(t, err)
	if opts.Anneal {
		opts.MaxIterations = 25
		opts.Now = fakeClock(clockStep)
	}

	return opts
}

func TestSolve_KnownOptima(t *testing.T) {
	cases := []struct {
		name string
		pts  []geom.Point
		want float64
	}{
		{"square", squarePts(), 4.0},
		{"collinear", collinearPts(), 6.0},
		{"collinear-mixed", collinearMixedPts(), 6.0},
	}
	for _, tc := range cases {
		for _, v := range tsp.Variants() {
			t.Run(tc.name+"/"+v.String(), func(t *testing.T) {
				res, err := tsp.Solve(context.Background(), tc.pts, variantOpts(t, v))
				require.NoError(t, err)
				requireTour(t, res.Tour, len(tc.pts), startV)
				require.Equal(t, tc.want, res.Cost)
			})
		}
	}
}

func TestSolve_SquareTour(t *testing.T) {
	res, err := tsp.Solve(context.Background(), squarePts(), tsp.DefaultOptions())
	require.NoError(t, err)
	require.Equal(t, []int{0, 1, 2, 3, 0}, res.Tour)
}

func TestSolve_DegenerateSizes(t *testing.T) {
	_, err := tsp.Solve(context.Background(), nil, tsp.DefaultOptions())
	require.ErrorIs(t, err, tsp.ErrEmptyInput)

	res, err := tsp.Solve(context.Background(), geom.FromCoords([][2]float64{{2, 2}}), tsp.DefaultOptions())
	require.NoError(t, err)
	require.Equal(t, []int{0, 0}, res.Tour)
	require.Zero(t, res.Cost)

	res, err = tsp.Solve(context.Background(), geom.FromCoords([][2]float64{{0, 0}, {3, 4}}), tsp.DefaultOptions())
	require.NoError(t, err)
	require.Equal(t, []int{0, 1, 0}, res.Tour)
	require.Equal(t, 10.0, res.Cost)

	// Every point in one place: any tour has length 0.
	same := geom.FromCoords([][2]float64{{1, 1}, {1, 1}, {1, 1}, {1, 1}, {1, 1}})
	for _, v := range tsp.Variants() {
		res, err = tsp.Solve(context.Background(), same, variantOpts(t, v))
		require.NoError(t, err, v.String())
		requireTour(t, res.Tour, len(same), startV)
		require.Zero(t, res.Cost)
	}
}

func TestSolve_AnchorAndValidity(t *testing.T) {
	pts := scatter(t, 45, 31)

	for _, v := range tsp.Variants() {
		t.Run(v.String(), func(t *testing.T) {
			opts := variantOpts(t, v)
			opts.Start = 7
			res, err := tsp.Solve(context.Background(), pts, opts)
			require.NoError(t, err)
			requireTour(t, res.Tour, len(pts), 7)
			require.InDelta(t, length(pts, res.Tour), res.Cost, 1e-9)
			require.LessOrEqual(t, res.Tour[1], res.Tour[len(pts)-1], "orientation is canonical")
			if opts.Moves.Has(tsp.MoveTwoOpt) || opts.ResolveCrossings {
				require.Zero(t, tsp.CountCrossings(res.Tour, pts))
			}
		})
	}
}

func TestSolve_MultiStartIndependentOfWorkers(t *testing.T) {
	pts := scatter(t, 40, 8)
	opts := variantOpts(t, tsp.VariantLocalSearch)

	opts.Workers = 1
	serial, err := tsp.Solve(context.Background(), pts, opts)
	require.NoError(t, err)
	require.Equal(t, len(pts), serial.Stats.Starts)

	opts.Workers = 4
	parallel, err := tsp.Solve(context.Background(), pts, opts)
	require.NoError(t, err)
	require.Equal(t, serial.Tour, parallel.Tour)
	require.Equal(t, serial.Stats.BestStart, parallel.Stats.BestStart)

	single := opts
	single.MultiStart = false
	one, err := tsp.Solve(context.Background(), pts, single)
	require.NoError(t, err)
	require.LessOrEqual(t, serial.Cost, one.Cost)
}

func TestSolve_LocalSearchNotWorseThanGreedy(t *testing.T) {
	pts := scatter(t, 60, 42)

	greedy := tsp.DefaultOptions()
	greedy.Moves = 0
	g, err := tsp.Solve(context.Background(), pts, greedy)
	require.NoError(t, err)

	ls, err := tsp.Solve(context.Background(), pts, tsp.DefaultOptions())
	require.NoError(t, err)
	require.LessOrEqual(t, ls.Cost, g.Cost)
}

func TestSolve_HybridReportsAnnealStats(t *testing.T) {
	pts := scatter(t, 30, 3)
	res, err := tsp.Solve(context.Background(), pts, variantOpts(t, tsp.VariantHybrid))
	require.NoError(t, err)
	require.Equal(t, tsp.StopIterations, res.Stats.Stopped)
	require.Equal(t, 25, res.Stats.Iterations)
	require.Equal(t, len(pts), res.Stats.Starts)
}

func TestSolveWithMatrix_Errors(t *testing.T) {
	pts := scatter(t, 12, 4)
	d := mustDist(t, pts)

	opts := tsp.DefaultOptions()
	opts.Start = 12
	_, err := tsp.SolveWithMatrix(context.Background(), d, pts, opts)
	require.ErrorIs(t, err, tsp.ErrStartOutOfRange)

	opts = tsp.DefaultOptions()
	opts.Eps = -1
	_, err = tsp.SolveWithMatrix(context.Background(), d, pts, opts)
	require.ErrorIs(t, err, tsp.ErrInvalidOptions)

	opts = tsp.DefaultOptions()
	opts.Anneal = true
	_, err = tsp.SolveWithMatrix(context.Background(), d, pts, opts)
	require.ErrorIs(t, err, tsp.ErrNoBudget)

	opts = tsp.DefaultOptions()
	opts.ResolveCrossings = true
	_, err = tsp.SolveWithMatrix(context.Background(), d, nil, opts)
	require.ErrorIs(t, err, tsp.ErrInvalidOptions)

	_, err = tsp.SolveWithMatrix(context.Background(), d, pts[:5], tsp.DefaultOptions())
	require.ErrorIs(t, err, tsp.ErrDimensionMismatch)

	_, err = tsp.SolveWithMatrix(context.Background(), nil, nil, tsp.DefaultOptions())
	require.ErrorIs(t, err, tsp.ErrEmptyInput)

	// Coordinates are optional when nothing geometric is requested.
	res, err := tsp.SolveWithMatrix(context.Background(), d, nil, tsp.DefaultOptions())
	require.NoError(t, err)
	requireTour(t, res.Tour, len(pts), startV)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = tsp.SolveWithMatrix(ctx, d, pts, tsp.DefaultOptions())
	require.ErrorIs(t, err, context.Canceled)
}

func TestSolve_RejectsMisnumberedPoints(t *testing.T) {
	pts := []geom.Point{geom.NewPoint(0, 0, 0), geom.NewPoint(2, 1, 1), geom.NewPoint(1, 2, 0)}
	_, err := tsp.Solve(context.Background(), pts, tsp.DefaultOptions())
	require.ErrorIs(t, err, tsp.ErrDimensionMismatch)
}

func TestVariants_ParseAndPresets(t *testing.T) {
	for _, v := range tsp.Variants() {
		got, err := tsp.ParseVariant(v.String())
		require.NoError(t, err)
		require.Equal(t, v, got)
	}
	got, err := tsp.ParseVariant("  Hybrid ")
	require.NoError(t, err)
	require.Equal(t, tsp.VariantHybrid, got)

	_, err = tsp.ParseVariant("christofides")
	require.ErrorIs(t, err, tsp.ErrUnsupportedVariant)
	_, err = tsp.OptionsFor(tsp.Variant(99))
	require.ErrorIs(t, err, tsp.ErrUnsupportedVariant)
	require.Equal(t, "Variant(99)", tsp.Variant(99).String())

	o, err := tsp.OptionsFor(tsp.VariantUntangle)
	require.NoError(t, err)
	require.Equal(t, tsp.ConstructNearestNeighborUntangled, o.Construction)
	require.True(t, o.ResolveCrossings)
	require.Zero(t, o.Moves)

	o, err = tsp.OptionsFor(tsp.VariantAnnealing)
	require.NoError(t, err)
	require.True(t, o.Anneal)
	require.Equal(t, tsp.ConstructRandom, o.Construction)
	require.Equal(t, tsp.DefaultDecayRate, o.DecayRate)
}
