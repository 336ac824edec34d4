// Package tsp - 2-opt move.
//
// For segments (a,b) at positions (i,i+1) and (c,d) at (j,j+1), 2-opt
// replaces them with (a,c),(b,d) by reversing tour[i+1..j]:
//
//	Δ = w(a,c) + w(b,d) − w(a,b) − w(c,d)
//
// The move is applied when Δ < −eps. Indices run over i ∈ [0, n-2],
// j ∈ [i+2, n-1], so the reversal range always lies inside [1, n-1] and the
// anchor never moves. The pair (0, n-1) shares the anchor; both sums then add
// the same two weights, so Δ is exactly 0 and the move is never applied.
//
// Contracts:
//   - tour is closed (len n+1, tour[0] == tour[n]); checked by the callers.
//   - dist is symmetric; reversal does not change the interior cost.
//
// Complexity: one pass is O(n²) checks plus O(n) per applied move.
package tsp

import "github.com/katalvlaran/tourlath/matrix"

// TwoOptPass performs one full 2-opt pass, applying every improving move it
// meets and continuing the scan on the mutated tour. It reports whether the
// tour changed.
func TwoOptPass(dist *matrix.Distance, tour []int, eps float64) bool {
	var (
		n          = len(tour) - 1
		improved   bool
		a, b, c, d int
		i, j       int
		delta      float64
	)
	for i = 0; i <= n-2; i++ {
		for j = i + 2; j <= n-1; j++ {
			a, b = tour[i], tour[i+1]
			c, d = tour[j], tour[j+1]
			delta = (dist.Dist(a, c) + dist.Dist(b, d)) - (dist.Dist(a, b) + dist.Dist(c, d))
			if delta < -eps {
				reverseArcInPlace(tour, i+1, j)
				improved = true
			}
		}
	}

	return improved
}
