// SPDX-License-Identifier: MIT
// Package: tourlath/builder
//
// impl_uniform.go - Uniform(n): i.i.d. points in a square.
//
// Contract:
//   • n ≥ MinPoints (else ErrTooFewPoints); n ≤ MaxPoints (else ErrTooManyPoints).
//   • Point i has ID i and lies in [origin, origin+scale]² (half-open).
//   • Draw order: X then Y per point, ascending i.
//
// Complexity: O(n) time and space.

package builder

import (
	"github.com/golang/geo/r2"

	"github.com/katalvlaran/tourlath/geom"
)

// Uniform returns n points drawn uniformly from the square of side scale
// whose lower-left corner is origin.
func Uniform(n int, opts ...Option) ([]geom.Point, error) {
	if err := validateMin(MethodUniform, "n", n, MinPoints); err != nil {
		return nil, err
	}
	if err := validateTotal(MethodUniform, n, 1); err != nil {
		return nil, err
	}

	cfg := newBuilderConfig(opts...)
	rng := cfg.random()
	pts := make([]geom.Point, n)
	for i := range pts {
		x := cfg.origin.X + cfg.scale*rng.Float64()
		y := cfg.origin.Y + cfg.scale*rng.Float64()
		pts[i] = geom.Point{Point: r2.Point{X: x, Y: y}, ID: i}
	}

	return pts, nil
}
