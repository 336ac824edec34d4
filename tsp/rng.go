// Package tsp - deterministic random streams for random construction,
// perturbation and restarts.
//
// Goals:
//   - Determinism: same Options.Seed ⇒ same construction, same perturbation
//     sequence (wall-clock dependence only enters through the schedule).
//   - A single factory; no time-seeded sources anywhere.
//
// Concurrency:
//   - *rand.Rand is not goroutine-safe. Multi-start workers receive their own
//     stream from deriveRNG; nothing shares one.
package tsp

import "math/rand"

// defaultRNGSeed replaces Options.Seed == 0.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand; seed 0 ⇒ defaultRNGSeed.
func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultRNGSeed
	}

	return rand.New(rand.NewSource(seed))
}

// deriveSeed mixes a parent seed and a stream id (SplitMix64 finalizer) so
// that per-trial streams are uncorrelated even for adjacent ids.
//
// Complexity: O(1).
func deriveSeed(parent int64, stream uint64) int64 {
	var x uint64
	x = uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return int64(x)
}

// deriveRNG returns the stream for trial id under seed. Unlike drawing from a
// shared parent, the result depends only on (seed, id), so multi-start trials
// are reproducible whatever order the workers run in.
func deriveRNG(seed int64, stream uint64) *rand.Rand {
	if seed == 0 {
		seed = defaultRNGSeed
	}

	return rand.New(rand.NewSource(deriveSeed(seed, stream)))
}

// shuffleIntsInPlace is a Fisher–Yates shuffle of a.
//
// Complexity: O(n) time, O(1) extra space.
func shuffleIntsInPlace(a []int, rng *rand.Rand) {
	if len(a) <= 1 {
		return
	}
	if rng == nil {
		rng = rngFromSeed(0)
	}

	var i, j int
	for i = len(a) - 1; i > 0; i-- {
		j = rng.Intn(i + 1)
		a[i], a[j] = a[j], a[i]
	}
}

// randomSpan draws 1 ≤ i < j ≤ n-1 uniformly over pairs. Requires n ≥ 3.
func randomSpan(n int, rng *rand.Rand) (int, int) {
	i := 1 + rng.Intn(n-1)
	j := 1 + rng.Intn(n-2)
	if j >= i {
		j++
	}
	if i > j {
		i, j = j, i
	}

	return i, j
}
