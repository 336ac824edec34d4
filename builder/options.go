// SPDX-License-Identifier: MIT
// Package: tourlath/builder
//
// options.go - functional options for the builder package.
//
// Contract (strict):
//   • Options are functional (type Option func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Generators themselves never panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import (
	"math"
	"math/rand"

	"github.com/golang/geo/r2"
)

// Option customizes a generator by mutating a builderConfig before the
// points are drawn.
type Option func(*builderConfig)

// WithRand provides an explicit RNG. Generators composed on the same RNG
// continue one stream. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed.
func WithSeed(seed int64) Option {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithScale sets the side length of the sampling square, the grid spacing,
// or the circle radius. Panics unless s is positive and finite.
func WithScale(s float64) Option {
	if !(s > 0) || math.IsInf(s, 0) {
		panic("builder: WithScale requires a positive finite value")
	}
	return func(c *builderConfig) {
		c.scale = s
	}
}

// WithOrigin translates every generated point by (x, y).
func WithOrigin(x, y float64) Option {
	if math.IsNaN(x) || math.IsNaN(y) || math.IsInf(x, 0) || math.IsInf(y, 0) {
		panic("builder: WithOrigin requires finite coordinates")
	}
	return func(c *builderConfig) {
		c.origin = r2.Point{X: x, Y: y}
	}
}

// WithJitter perturbs Grid and Circle points by up to j*scale per axis.
// Panics on negative or non-finite j.
func WithJitter(j float64) Option {
	if !(j >= 0) || math.IsInf(j, 0) {
		panic("builder: WithJitter requires a non-negative finite value")
	}
	return func(c *builderConfig) {
		c.jitter = j
	}
}

// WithSpread sets the per-axis standard deviation of Clusters, as a fraction
// of scale. Panics unless s is positive and finite.
func WithSpread(s float64) Option {
	if !(s > 0) || math.IsInf(s, 0) {
		panic("builder: WithSpread requires a positive finite value")
	}
	return func(c *builderConfig) {
		c.spread = s
	}
}
