// SPDX-License-Identifier: MIT
// Package: tourlath/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Design:
//   • builderConfig is the single source of truth for all generator knobs.
//   • Defaults are deterministic and documented; no globals.
//   • newBuilderConfig applies options in-order (later overrides earlier).
//
// Deterministic defaults:
//   • rng     = nil    (a generator seeded with defaultSeed is created per call)
//   • scale   = 1.0    (unit square / unit circle / unit grid spacing)
//   • origin  = (0,0)
//   • jitter  = 0.0    (no perturbation)
//   • spread  = 0.05   (cluster standard deviation, as a fraction of scale)

package builder

import (
	"math/rand"

	"github.com/golang/geo/r2"
)

// builderConfig aggregates all knobs used by generators.
// It is passed by VALUE to generators (immutable to callers).
type builderConfig struct {
	// RNG for stochastic choices; nil means "seed with defaultSeed".
	rng *rand.Rand

	scale  float64  // >0, finite
	origin r2.Point // lower-left corner (Uniform/Grid/Clusters) or centre (Circle)
	jitter float64  // >=0, fraction of scale
	spread float64  // >0, fraction of scale
}

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order.
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...Option) builderConfig {
	cfg := builderConfig{
		scale:  defaultScale,
		jitter: defaultJitter,
		spread: defaultSpread,
	}

	// Last-wins semantics.
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// random returns the configured RNG, or a fresh one seeded with defaultSeed.
// Two calls with the same options therefore draw the same stream.
func (c builderConfig) random() *rand.Rand {
	if c.rng != nil {
		return c.rng
	}

	return rand.New(rand.NewSource(defaultSeed))
}

// shake displaces p by a uniform offset in [-jitter*scale, +jitter*scale] per
// axis. With zero jitter the RNG is not consumed.
func (c builderConfig) shake(p r2.Point, rng *rand.Rand) r2.Point {
	if c.jitter == 0 {
		return p
	}
	amp := c.jitter * c.scale

	return r2.Point{
		X: p.X + amp*(2*rng.Float64()-1),
		Y: p.Y + amp*(2*rng.Float64()-1),
	}
}
