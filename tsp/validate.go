// Package tsp - validation shared by the solver entry points.
//
// This file contains small helpers that:
//  1. Validate Options on their own (signs, ranges, budget).
//  2. Validate the point list against the distance matrix.
//  3. Validate the anchor vertex.
//
// Design principles:
//   - Side-effect free; sentinel errors from types.go wrapped with the offending value.
//   - O(n) for points, O(1) otherwise; the matrix itself is validated when built.
package tsp

import (
	"fmt"
	"math"

	"github.com/katalvlaran/tourlath/geom"
	"github.com/katalvlaran/tourlath/matrix"
)

// validateOptionsStandalone checks internal consistency of Options.
//
// Complexity: O(1).
func validateOptionsStandalone(opts Options) error {
	if opts.Eps < 0 || math.IsNaN(opts.Eps) {
		return fmt.Errorf("eps %v: %w", opts.Eps, ErrInvalidOptions)
	}
	if opts.TimeLimit < 0 || opts.CoolingPeriod < 0 {
		return fmt.Errorf("negative duration: %w", ErrInvalidOptions)
	}
	if opts.MaxIterations < 0 || opts.MaxPasses < 0 || opts.Workers < 0 {
		return fmt.Errorf("negative limit: %w", ErrInvalidOptions)
	}
	if opts.Moves&^AllMoves != 0 {
		return fmt.Errorf("moves %b: %w", opts.Moves, ErrInvalidOptions)
	}
	switch opts.Construction {
	case ConstructNearestNeighbor, ConstructNearestNeighborUntangled, ConstructRandom, ConstructIdentity:
	default:
		return fmt.Errorf("construction %d: %w", opts.Construction, ErrInvalidOptions)
	}
	if !opts.Anneal {
		return nil
	}

	return validateAnnealOptions(opts)
}

// validateAnnealOptions checks the schedule knobs used only by Anneal.
func validateAnnealOptions(opts Options) error {
	if !(opts.DecayRate > 0) || math.IsInf(opts.DecayRate, 0) {
		return fmt.Errorf("decay rate %v: %w", opts.DecayRate, ErrInvalidOptions)
	}
	if !(opts.ResetThreshold >= 0 && opts.ResetThreshold < 1) {
		return fmt.Errorf("reset threshold %v: %w", opts.ResetThreshold, ErrInvalidOptions)
	}
	if opts.TimeLimit == 0 && opts.MaxIterations == 0 {
		return ErrNoBudget
	}

	return nil
}

// validatePoints checks that pts lines up with a matrix of order n:
// same length, pts[i].ID == i.
//
// Complexity: O(n).
func validatePoints(pts []geom.Point, n int) error {
	if len(pts) != n {
		return fmt.Errorf("%d points for order %d: %w", len(pts), n, ErrDimensionMismatch)
	}

	var i int
	for i = range pts {
		if pts[i].ID != i {
			return fmt.Errorf("point %d has id %d: %w", i, pts[i].ID, ErrDimensionMismatch)
		}
	}

	return nil
}

// validateStartVertex verifies that start ∈ [0..n-1].
func validateStartVertex(n int, start int) error {
	if start < 0 || start >= n {
		return fmt.Errorf("start %d, n %d: %w", start, n, ErrStartOutOfRange)
	}

	return nil
}

// validateAll runs every check needed before SolveWithMatrix does any work
// and returns the instance size.
func validateAll(dist *matrix.Distance, pts []geom.Point, opts Options) (int, error) {
	if dist == nil {
		return 0, fmt.Errorf("nil distance matrix: %w", ErrEmptyInput)
	}
	n := dist.N()
	if n == 0 {
		return 0, ErrEmptyInput
	}
	if err := validateOptionsStandalone(opts); err != nil {
		return 0, err
	}
	if err := validateStartVertex(n, opts.Start); err != nil {
		return 0, err
	}
	needPoints := opts.ResolveCrossings || opts.Construction == ConstructNearestNeighborUntangled
	if pts == nil {
		if needPoints {
			return 0, fmt.Errorf("crossing resolution without coordinates: %w", ErrInvalidOptions)
		}

		return n, nil
	}
	if err := validatePoints(pts, n); err != nil {
		return 0, err
	}

	return n, nil
}

// maxPasses returns the improving-pass cap for one LocalSearch or
// ResolveCrossings call on an instance of size n. Every counted pass strictly
// shortens the tour, so a run that exceeds this indicates a defect rather
// than a hard instance. The derived cap is clamped to math.MaxInt.
func maxPasses(n int, opts Options) int {
	if opts.MaxPasses > 0 {
		return opts.MaxPasses
	}

	limit := 64*int64(n)*int64(n) + 1024
	if limit > int64(math.MaxInt) {
		return math.MaxInt
	}

	return int(limit)
}
