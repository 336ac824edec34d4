// Package tsp - Or-opt moves (relocate a block of one or two points).
//
// Or-opt(1): with a,b,c at positions i..i+2 and d,e at j,j+1, move b
// between d and e:
//
//	Δ = w(a,c) + w(d,b) + w(b,e) − w(a,b) − w(b,c) − w(d,e)
//	i ∈ [0, n-3], j ∈ [i+3, n-1]
//
// Or-opt(2): with a,b,c,d at positions i..i+3 and e,f at j,j+1, move the
// pair b,c (same orientation) between e and f:
//
//	Δ = w(a,d) + w(e,b) + w(c,f) − w(a,b) − w(c,d) − w(e,f)
//	i ∈ [0, n-4], j ∈ [i+4, n-1]
//
// Blocks only ever travel forward, so the relocation is a left shift of
// tour[i+1+k..j] by the block size k followed by writing the block at the end.
// Positions 0 and n are never written.
//
// Complexity: one pass is O(n²) checks plus O(n) per applied move.
package tsp

import "github.com/katalvlaran/tourlath/matrix"

// OrOpt1Pass performs one full Or-opt(1) pass and reports whether the tour changed.
func OrOpt1Pass(dist *matrix.Distance, tour []int, eps float64) bool {
	var (
		n             = len(tour) - 1
		improved      bool
		a, b, c, d, e int
		i, j          int
		delta         float64
	)
	for i = 0; i <= n-3; i++ {
		for j = i + 3; j <= n-1; j++ {
			a, b, c = tour[i], tour[i+1], tour[i+2]
			d, e = tour[j], tour[j+1]
			delta = (dist.Dist(a, c) + dist.Dist(d, b) + dist.Dist(b, e)) -
				(dist.Dist(a, b) + dist.Dist(b, c) + dist.Dist(d, e))
			if delta < -eps {
				shiftBlockInPlace(tour, i+1, j, 1)
				improved = true
			}
		}
	}

	return improved
}

// OrOpt2Pass performs one full Or-opt(2) pass and reports whether the tour changed.
func OrOpt2Pass(dist *matrix.Distance, tour []int, eps float64) bool {
	var (
		n                = len(tour) - 1
		improved         bool
		a, b, c, d, e, f int
		i, j             int
		delta            float64
	)
	for i = 0; i <= n-4; i++ {
		for j = i + 4; j <= n-1; j++ {
			a, b, c, d = tour[i], tour[i+1], tour[i+2], tour[i+3]
			e, f = tour[j], tour[j+1]
			delta = (dist.Dist(a, d) + dist.Dist(e, b) + dist.Dist(c, f)) -
				(dist.Dist(a, b) + dist.Dist(c, d) + dist.Dist(e, f))
			if delta < -eps {
				shiftBlockInPlace(tour, i+1, j, 2)
				improved = true
			}
		}
	}

	return improved
}
