// SPDX-License-Identifier: MIT
// Package: tourlath/builder
//
// impl_circle.go - Circle(n): points evenly spaced on a circle.
//
// Contract:
//   • n ≥ MinPoints (else ErrTooFewPoints).
//   • Point k sits at angle 2πk/n on the circle of radius scale centred on
//     origin, counter-clockwise from the positive x-axis, then shaken by jitter.
//   • Without jitter the identity order 0,1,…,n-1 is an optimal tour.

package builder

import (
	"math"

	"github.com/golang/geo/r2"

	"github.com/katalvlaran/tourlath/geom"
)

// Circle returns n points on a circle of radius scale around origin.
func Circle(n int, opts ...Option) ([]geom.Point, error) {
	if err := validateMin(MethodCircle, "n", n, MinPoints); err != nil {
		return nil, err
	}
	if err := validateTotal(MethodCircle, n, 1); err != nil {
		return nil, err
	}

	cfg := newBuilderConfig(opts...)
	rng := cfg.random()
	step := 2 * math.Pi / float64(n)
	pts := make([]geom.Point, n)
	for k := range pts {
		a := float64(k) * step
		p := r2.Point{
			X: cfg.origin.X + cfg.scale*math.Cos(a),
			Y: cfg.origin.Y + cfg.scale*math.Sin(a),
		}
		pts[k] = geom.Point{Point: cfg.shake(p, rng), ID: k}
	}

	return pts, nil
}
