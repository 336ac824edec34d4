// Package tsp_test provides helpers shared across *_test.go files in this
// package: instance builders, tour assertions and a deterministic clock.
package tsp_test

import (
	"context"
	"math"
	"slices"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tourlath/builder"
	"github.com/katalvlaran/tourlath/geom"
	"github.com/katalvlaran/tourlath/matrix"
	"github.com/katalvlaran/tourlath/tsp"
)

// -----------------------------------------------------------------------------
// Constants - single source of truth for test knobs
// -----------------------------------------------------------------------------

const (
	// epsTiny matches tsp.DefaultEps.
	epsTiny = 1e-12

	// seedDet is the deterministic seed for RNG-based components.
	seedDet = int64(0)

	// startV is the canonical anchor used across tests.
	startV = 0

	// clockStep is how far the fake clock advances per reading.
	clockStep = 10 * time.Millisecond
)

// -----------------------------------------------------------------------------
// Instances
// -----------------------------------------------------------------------------

// squarePts is the unit square listed in perimeter order.
func squarePts() []geom.Point {
	return geom.FromCoords([][2]float64{{0, 0}, {0, 1}, {1, 1}, {1, 0}})
}

// collinearPts is four points on a line; every tour has length 6.
func collinearPts() []geom.Point {
	return geom.FromCoords([][2]float64{{0, 0}, {1, 0}, {2, 0}, {3, 0}})
}

// collinearMixedPts is the same line listed out of order, so nearest
// neighbour has to reorder it.
func collinearMixedPts() []geom.Point {
	return geom.FromCoords([][2]float64{{0, 0}, {3, 0}, {1, 0}, {2, 0}})
}

// scatter returns n uniform points in [0,100)² for seed.
func scatter(t testing.TB, n int, seed int64) []geom.Point {
	t.Helper()
	pts, err := builder.Uniform(n, builder.WithSeed(seed), builder.WithScale(100))
	require.NoError(t, err)

	return pts
}

// ring returns n points on a slightly rippled circle (no distance ties).
func ring(t testing.TB, n int) []geom.Point {
	t.Helper()
	pts, err := builder.Circle(n, builder.WithScale(10), builder.WithJitter(0.05), builder.WithSeed(7))
	require.NoError(t, err)

	return pts
}

// mustDist builds the Euclidean matrix for pts.
func mustDist(t testing.TB, pts []geom.Point) *matrix.Distance {
	t.Helper()
	d, err := matrix.NewEuclidean(context.Background(), pts)
	require.NoError(t, err)

	return d
}

// length is an independent tour length (no rounding) used as ground truth.
func length(pts []geom.Point, tour []int) float64 {
	var (
		sum float64
		i   int
	)
	for i = 0; i+1 < len(tour); i++ {
		sum += math.Hypot(pts[tour[i]].X-pts[tour[i+1]].X, pts[tour[i]].Y-pts[tour[i+1]].Y)
	}

	return sum
}

// -----------------------------------------------------------------------------
// Assertions
// -----------------------------------------------------------------------------

// requireTour asserts the closed-tour invariant for n points anchored at start.
func requireTour(t testing.TB, tour []int, n, start int) {
	t.Helper()
	require.NoError(t, tsp.ValidateTour(tour, n, start), "tour %s", tsp.DebugString(tour))
}

// Repeat runs fn n times. Useful for determinism checks.
func Repeat(t *testing.T, n int, fn func(t *testing.T)) {
	t.Helper()
	var i int
	for i = 0; i < n; i++ {
		fn(t)
	}
}

// sameCycleEitherDir reports whether two closed tours anchored at the same
// point describe the same cycle, in either direction.
func sameCycleEitherDir(a, b []int) bool {
	if len(a) != len(b) || len(a) < 2 || a[0] != b[0] {
		return false
	}
	if slices.Equal(a, b) {
		return true
	}
	rev := slices.Clone(a)
	slices.Reverse(rev)

	return slices.Equal(rev, b)
}

// -----------------------------------------------------------------------------
// Clock
// -----------------------------------------------------------------------------

// fakeClock returns a clock that advances by step on every reading.
func fakeClock(step time.Duration) func() time.Time {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	return func() time.Time {
		now = now.Add(step)

		return now
	}
}
