// SPDX-License-Identifier: MIT
// Package: tourlath/builder
//
// impl_grid.go - Grid(rows, cols): an orthogonal lattice of points.
//
// Contract:
//   • rows ≥ 1 and cols ≥ 1 (else ErrTooFewPoints).
//   • Points are emitted row-major; ID = r*cols + c.
//   • Cell (r,c) sits at origin + (c*scale, r*scale), then shaken by jitter.
//
// Determinism:
//   • Stable order (r asc, then c asc); with zero jitter no RNG is consumed.

package builder

import (
	"github.com/golang/geo/r2"

	"github.com/katalvlaran/tourlath/geom"
)

// Grid returns rows×cols points spaced scale apart.
// Unjittered grids are full of equal-length ties, which makes them good
// fixtures for tie-breaking.
func Grid(rows, cols int, opts ...Option) ([]geom.Point, error) {
	if err := validateMin(MethodGrid, "rows", rows, MinPoints); err != nil {
		return nil, err
	}
	if err := validateMin(MethodGrid, "cols", cols, MinPoints); err != nil {
		return nil, err
	}
	if err := validateTotal(MethodGrid, rows, cols); err != nil {
		return nil, err
	}

	cfg := newBuilderConfig(opts...)
	rng := cfg.random()
	pts := make([]geom.Point, 0, rows*cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			p := r2.Point{
				X: cfg.origin.X + float64(c)*cfg.scale,
				Y: cfg.origin.Y + float64(r)*cfg.scale,
			}
			pts = append(pts, geom.Point{Point: cfg.shake(p, rng), ID: len(pts)})
		}
	}

	return pts, nil
}
