// SPDX-License-Identifier: MIT
// Package: tourlath/builder
//
// impl_clusters.go - Clusters(k, per): Gaussian blobs around random centres.
//
// Contract:
//   • k ≥ 1 and per ≥ 1 (else ErrTooFewPoints); k*per ≤ MaxPoints.
//   • Centres are drawn uniformly from [origin, origin+scale]² first, in order.
//   • Cluster c owns IDs c*per .. c*per+per-1; each coordinate is
//     centre + N(0, (spread*scale)²).
//
// Complexity: O(k*per) time and space.

package builder

import (
	"github.com/golang/geo/r2"

	"github.com/katalvlaran/tourlath/geom"
)

// Clusters returns k groups of per points each.
func Clusters(k, per int, opts ...Option) ([]geom.Point, error) {
	if err := validateMin(MethodClusters, "k", k, MinPoints); err != nil {
		return nil, err
	}
	if err := validateMin(MethodClusters, "per", per, MinPoints); err != nil {
		return nil, err
	}
	if err := validateTotal(MethodClusters, k, per); err != nil {
		return nil, err
	}

	cfg := newBuilderConfig(opts...)
	rng := cfg.random()

	centres := make([]r2.Point, k)
	for c := range centres {
		centres[c] = r2.Point{
			X: cfg.origin.X + cfg.scale*rng.Float64(),
			Y: cfg.origin.Y + cfg.scale*rng.Float64(),
		}
	}

	sigma := cfg.spread * cfg.scale
	pts := make([]geom.Point, 0, k*per)
	for _, ctr := range centres {
		for i := 0; i < per; i++ {
			p := r2.Point{
				X: ctr.X + sigma*rng.NormFloat64(),
				Y: ctr.Y + sigma*rng.NormFloat64(),
			}
			pts = append(pts, geom.Point{Point: p, ID: len(pts)})
		}
	}

	return pts, nil
}
