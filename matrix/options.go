// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for distance-matrix builders.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that resolves defaults.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package matrix

import (
	"math"
	"runtime"
)

// DefaultEpsilon is the tolerance used by symmetry and diagonal checks.
const DefaultEpsilon = 1e-9

// DefaultWorkers = 0 resolves to runtime.GOMAXPROCS(0) at build time.
const DefaultWorkers = 0

const (
	panicEpsilonInvalid = "matrix: WithEpsilon: eps must be finite, non-negative"
	panicWorkersInvalid = "matrix: WithWorkers: workers must be non-negative"
)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option`.
type Options struct {
	eps     float64 // >= 0; DefaultEpsilon
	workers int     // > 0 after gatherOptions
}

// WithEpsilon sets the numeric tolerance eps used by FromMatrix validation.
//
// Errors:
//   - Panics with a stable message when eps is NaN, ±Inf or negative.
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithWorkers bounds the number of goroutines filling rows in NewEuclidean.
// 0 means runtime.GOMAXPROCS(0); 1 forces a sequential fill.
func WithWorkers(workers int) Option {
	if workers < 0 {
		panic(panicWorkersInvalid)
	}

	return func(o *Options) { o.workers = workers }
}

// gatherOptions applies opts over the defaults, last-wins.
// Complexity: O(len(opts)).
func gatherOptions(opts ...Option) Options {
	o := Options{eps: DefaultEpsilon, workers: DefaultWorkers}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.workers == 0 {
		o.workers = runtime.GOMAXPROCS(0)
	}

	return o
}
