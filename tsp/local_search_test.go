package tsp_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tourlath/geom"
	"github.com/katalvlaran/tourlath/tsp"
)

func TestTwoOptPass_UncrossesSquare(t *testing.T) {
	pts := squarePts()
	d := mustDist(t, pts)
	tour := []int{0, 2, 1, 3, 0}

	require.True(t, tsp.TwoOptPass(d, tour, epsTiny))
	require.True(t, sameCycleEitherDir([]int{0, 1, 2, 3, 0}, tour), "got %v", tour)
	require.False(t, tsp.TwoOptPass(d, tour, epsTiny))
}

func TestTwoOptPass_EpsSuppressesSmallGains(t *testing.T) {
	pts := squarePts()
	d := mustDist(t, pts)
	tour := []int{0, 2, 1, 3, 0}

	// The only gain is 2√2 − 2 ≈ 0.83.
	require.False(t, tsp.TwoOptPass(d, tour, 1))
	require.Equal(t, []int{0, 2, 1, 3, 0}, tour)
}

func TestOrOpt1Pass_RelocatesPoint(t *testing.T) {
	// Point 1 sits far from its neighbours; it belongs between 3 and 4.
	pts := geom.FromCoords([][2]float64{{0, 0}, {5, 1}, {1, 0}, {2, 0}, {6, 0}, {3, -3}})
	d := mustDist(t, pts)
	tour := []int{0, 1, 2, 3, 4, 5, 0}
	before := length(pts, tour)

	require.True(t, tsp.OrOpt1Pass(d, tour, epsTiny))
	requireTour(t, tour, len(pts), 0)
	require.Less(t, length(pts, tour), before)
	require.Equal(t, []int{0, 2, 3, 1, 4, 5, 0}, tour)
}

func TestOrOpt2Pass_RelocatesPair(t *testing.T) {
	// The pair 1,2 belongs between 4 and 5.
	pts := geom.FromCoords([][2]float64{
		{0, 0}, {6, 1}, {7, 1}, {1, 0}, {2, 0}, {9, 0}, {4, -4},
	})
	d := mustDist(t, pts)
	tour := []int{0, 1, 2, 3, 4, 5, 6, 0}
	before := length(pts, tour)

	require.True(t, tsp.OrOpt2Pass(d, tour, epsTiny))
	requireTour(t, tour, len(pts), 0)
	require.Less(t, length(pts, tour), before)
	require.Equal(t, []int{0, 3, 4, 1, 2, 5, 6, 0}, tour)
}

func TestLocalSearch_MonotoneAndIdempotent(t *testing.T) {
	pts := scatter(t, 80, 4)
	d := mustDist(t, pts)
	rng := rand.New(rand.NewSource(8))

	Repeat(t, 4, func(t *testing.T) {
		tour, err := tsp.RandomTour(len(pts), 0, rng)
		require.NoError(t, err)
		before := length(pts, tour)

		improved, err := tsp.LocalSearch(d, tour, tsp.AllMoves, tsp.DefaultOptions())
		require.NoError(t, err)
		require.True(t, improved)
		requireTour(t, tour, len(pts), 0)
		after := length(pts, tour)
		require.Less(t, after, before)

		// A local optimum: no single pass of any kind changes it.
		probe := tsp.CopyTour(tour)
		require.False(t, tsp.TwoOptPass(d, probe, epsTiny))
		require.False(t, tsp.OrOpt1Pass(d, probe, epsTiny))
		require.False(t, tsp.OrOpt2Pass(d, probe, epsTiny))

		again, err := tsp.LocalSearch(d, tour, tsp.AllMoves, tsp.DefaultOptions())
		require.NoError(t, err)
		require.False(t, again)
		require.Equal(t, after, length(pts, tour))
	})
}

func TestLocalSearch_SubsetsAndSmallTours(t *testing.T) {
	pts := scatter(t, 30, 6)
	d := mustDist(t, pts)
	tour, err := tsp.RandomTour(len(pts), 2, rand.New(rand.NewSource(2)))
	require.NoError(t, err)

	for _, moves := range []tsp.MoveSet{tsp.MoveTwoOpt, tsp.MoveOrOpt1, tsp.MoveOrOpt2, tsp.MoveTwoOpt | tsp.MoveOrOpt2} {
		work := tsp.CopyTour(tour)
		_, err = tsp.LocalSearch(d, work, moves, tsp.DefaultOptions())
		require.NoError(t, err, moves.String())
		requireTour(t, work, len(pts), 2)
		require.LessOrEqual(t, length(pts, work), length(pts, tour))
	}

	work := tsp.CopyTour(tour)
	changed, err := tsp.LocalSearch(d, work, 0, tsp.DefaultOptions())
	require.NoError(t, err)
	require.False(t, changed)
	require.Equal(t, tour, work)

	tri := geom.FromCoords([][2]float64{{0, 0}, {1, 0}, {0, 1}})
	triTour := []int{0, 2, 1, 0}
	changed, err = tsp.LocalSearch(mustDist(t, tri), triTour, tsp.AllMoves, tsp.DefaultOptions())
	require.NoError(t, err)
	require.False(t, changed)
	require.Equal(t, []int{0, 2, 1, 0}, triTour)

	_, err = tsp.LocalSearch(d, []int{0, 1, 0}, tsp.AllMoves, tsp.DefaultOptions())
	require.ErrorIs(t, err, tsp.ErrDimensionMismatch)
}

func TestLocalSearch_PassCap(t *testing.T) {
	pts := scatter(t, 60, 12)
	d := mustDist(t, pts)
	tour, err := tsp.RandomTour(len(pts), 0, rand.New(rand.NewSource(3)))
	require.NoError(t, err)

	opts := tsp.DefaultOptions()
	opts.MaxPasses = 1
	_, err = tsp.LocalSearch(d, tour, tsp.AllMoves, opts)
	require.ErrorIs(t, err, tsp.ErrNotConverged)
	requireTour(t, tour, len(pts), 0)
}

func TestMoveSet_String(t *testing.T) {
	require.Equal(t, "none", tsp.MoveSet(0).String())
	require.Equal(t, "2opt|oropt1|oropt2", tsp.AllMoves.String())
	require.True(t, tsp.AllMoves.Has(tsp.MoveOrOpt1))
	require.False(t, tsp.MoveTwoOpt.Has(tsp.MoveOrOpt2))
}
