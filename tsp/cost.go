// Package tsp - tour length.
//
// Design:
//   - Fast path for *matrix.Distance (already validated at build time) and a
//     generic path for any matrix.Matrix.
//   - Sums are rounded to 1e-9 so the same tour reports the same cost on
//     every platform; move deltas are compared unrounded.
//
// Complexity: O(n) time, O(1) extra space.
package tsp

import (
	"fmt"
	"math"

	"github.com/katalvlaran/tourlath/matrix"
)

// roundScale is the cost stabilization precision (1e-9).
const roundScale = 1e9

// TourCost returns the length of the closed tour under dist.
//
// Errors: ErrDimensionMismatch for a nil matrix, a tour shorter than two
// entries or out-of-range indices; non-finite or negative weights on the
// generic path are reported with the matrix sentinel wrapped.
func TourCost(dist matrix.Matrix, tour []int) (float64, error) {
	if dist == nil || len(tour) < 2 {
		return 0, ErrDimensionMismatch
	}
	if d, ok := dist.(*matrix.Distance); ok {
		n := d.N()
		var v int
		for _, v = range tour {
			if v < 0 || v >= n {
				return 0, ErrDimensionMismatch
			}
		}

		return round1e9(tourLength(d, tour)), nil
	}

	return tourCostGeneric(dist, tour)
}

// tourLength is the unchecked, unrounded sum used inside search loops.
func tourLength(d *matrix.Distance, tour []int) float64 {
	var (
		sum float64
		i   int
	)
	for i = 0; i+1 < len(tour); i++ {
		sum += d.Dist(tour[i], tour[i+1])
	}

	return sum
}

// tourCostGeneric sums weights through the Matrix interface with per-edge checks.
func tourCostGeneric(m matrix.Matrix, tour []int) (float64, error) {
	if m.Rows() != m.Cols() || m.Rows() == 0 {
		return 0, ErrDimensionMismatch
	}

	var (
		sum float64
		w   float64
		err error
		i   int
	)
	for i = 0; i+1 < len(tour); i++ {
		w, err = m.At(tour[i], tour[i+1])
		if err != nil {
			return 0, ErrDimensionMismatch
		}
		if math.IsNaN(w) || math.IsInf(w, 0) {
			return 0, fmt.Errorf("TourCost: edge %d→%d: %w", tour[i], tour[i+1], matrix.ErrNaNInf)
		}
		if w < 0 {
			return 0, fmt.Errorf("TourCost: edge %d→%d: %w", tour[i], tour[i+1], matrix.ErrNegativeDistance)
		}
		sum += w
	}

	return round1e9(sum), nil
}

// round1e9 returns x rounded to 1e-9 absolute precision.
func round1e9(x float64) float64 {
	return math.Round(x*roundScale) / roundScale
}
