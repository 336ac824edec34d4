// Package builder contains unit tests for the configuration primitives
// (builderConfig and Option) to ensure correct application and override behavior.
package builder

import (
	"math/rand"
	"testing"

	"github.com/golang/geo/r2"
)

func TestNewBuilderConfig_Defaults(t *testing.T) {
	t.Parallel()

	cfg := newBuilderConfig()
	if cfg.rng != nil {
		t.Errorf("default rng: expected nil, got %v", cfg.rng)
	}
	if cfg.scale != defaultScale || cfg.jitter != defaultJitter || cfg.spread != defaultSpread {
		t.Errorf("defaults: got scale=%v jitter=%v spread=%v", cfg.scale, cfg.jitter, cfg.spread)
	}
	if cfg.origin != (r2.Point{}) {
		t.Errorf("default origin: got %v", cfg.origin)
	}
}

func TestNewBuilderConfig_LastWins(t *testing.T) {
	t.Parallel()

	cfg := newBuilderConfig(WithScale(2), WithScale(7), WithOrigin(1, 2), WithOrigin(3, 4))
	if cfg.scale != 7 {
		t.Errorf("scale: expected 7, got %v", cfg.scale)
	}
	if cfg.origin != (r2.Point{X: 3, Y: 4}) {
		t.Errorf("origin: expected (3,4), got %v", cfg.origin)
	}
}

func TestRandom_SeedAndSharedStream(t *testing.T) {
	t.Parallel()

	a := newBuilderConfig(WithSeed(11)).random().Int63()
	b := newBuilderConfig(WithSeed(11)).random().Int63()
	if a != b {
		t.Errorf("WithSeed: expected equal draws, got %d and %d", a, b)
	}

	// A shared RNG is consumed, not copied.
	r := rand.New(rand.NewSource(1))
	cfg := newBuilderConfig(WithRand(r))
	first := cfg.random().Int63()
	second := cfg.random().Int63()
	if first == second {
		t.Errorf("WithRand: expected the stream to advance")
	}
}

func TestShake_ZeroJitterConsumesNothing(t *testing.T) {
	t.Parallel()

	r := rand.New(rand.NewSource(1))
	want := rand.New(rand.NewSource(1)).Int63()

	p := r2.Point{X: 1, Y: 2}
	if got := newBuilderConfig().shake(p, r); got != p {
		t.Errorf("shake: expected %v, got %v", p, got)
	}
	if got := r.Int63(); got != want {
		t.Errorf("shake consumed the RNG")
	}
}
