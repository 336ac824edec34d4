// Package tsp - initial tour construction.
//
// Builders:
//   - NearestNeighbor: greedy nearest unvisited point, ties to the lowest identity.
//   - NearestNeighborUntangled: the same expansion, but every newly appended
//     segment is checked against the earlier path and the first crossing it
//     forms is undone on the spot.
//   - RandomTour: anchor fixed, every other point shuffled.
//   - IdentityRing: 0,1,…,n-1 rotated to the anchor.
//
// Every builder returns a closed tour of length n+1 beginning and ending at
// the anchor. n == 1 yields [start, start].
package tsp

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/katalvlaran/tourlath/geom"
	"github.com/katalvlaran/tourlath/matrix"
)

// NearestNeighbor builds a tour by repeatedly moving to the closest unvisited
// point. Among equally close candidates the one with the lowest identity wins,
// so the result is fully determined by dist and start.
//
// Complexity: O(n²) time, O(n) space.
func NearestNeighbor(dist *matrix.Distance, start int) ([]int, error) {
	if dist == nil || dist.N() == 0 {
		return nil, ErrEmptyInput
	}
	n := dist.N()
	if err := validateStartVertex(n, start); err != nil {
		return nil, fmt.Errorf("NearestNeighbor: %w", err)
	}

	return nearestNeighbor(dist, start, nil), nil
}

// nearestNeighbor is the unchecked builder. When onAppend is non-nil it is
// called with the path length after every appended point (including the
// closing anchor) and may reorder tour[1..length-2].
func nearestNeighbor(dist *matrix.Distance, start int, onAppend func(tour []int, length int)) []int {
	var (
		n       = dist.N()
		tour    = make([]int, n+1)
		visited = make([]bool, n)
		cur     = start
		next    int
		best    float64
		d       float64
		k, v    int
	)
	tour[0] = start
	visited[start] = true
	for k = 1; k < n; k++ {
		next, best = -1, math.Inf(1)
		for v = 0; v < n; v++ {
			if visited[v] {
				continue
			}
			d = dist.Dist(cur, v)
			if d < best {
				next, best = v, d
			}
		}
		tour[k] = next
		visited[next] = true
		cur = next
		if onAppend != nil {
			onAppend(tour, k+1)
		}
	}
	tour[n] = start
	if onAppend != nil && n > 1 {
		onAppend(tour, n+1)
	}

	return tour
}

// NearestNeighborUntangled is NearestNeighbor with incremental untangling:
// after each point is appended, the segment just added is compared with every
// earlier segment of the open path, and the first proper crossing found is
// resolved by reversing the path between the two segments. The closing
// segment back to start is treated the same way. The expansion always
// continues from the point that was just appended, which a resolution never moves.
//
// pts[i] must be the point with identity i.
//
// Complexity: O(n²) time, O(n) space.
func NearestNeighborUntangled(dist *matrix.Distance, pts []geom.Point, start int) ([]int, error) {
	if dist == nil || dist.N() == 0 {
		return nil, ErrEmptyInput
	}
	n := dist.N()
	if err := validatePoints(pts, n); err != nil {
		return nil, fmt.Errorf("NearestNeighborUntangled: %w", err)
	}
	if err := validateStartVertex(n, start); err != nil {
		return nil, fmt.Errorf("NearestNeighborUntangled: %w", err)
	}

	return nearestNeighbor(dist, start, func(tour []int, length int) {
		untieLast(tour, length, pts)
	}), nil
}

// RandomTour returns a closed tour that starts at anchor and visits every
// other point in an order drawn from rng.
//
// Complexity: O(n) time, O(n) space.
func RandomTour(n, anchor int, rng *rand.Rand) ([]int, error) {
	if n <= 0 {
		return nil, ErrEmptyInput
	}
	if err := validateStartVertex(n, anchor); err != nil {
		return nil, fmt.Errorf("RandomTour: %w", err)
	}

	tour := IdentityRing(n, anchor)
	shuffleIntsInPlace(tour[1:n], rng)

	return tour, nil
}

// IdentityRing returns the ring 0,1,…,n-1 rotated to start and closed.
// The caller guarantees 0 ≤ start < n.
//
// Complexity: O(n).
func IdentityRing(n, start int) []int {
	tour := make([]int, n+1)

	var i int
	for i = 0; i < n; i++ {
		tour[i] = (start + i) % n
	}
	tour[n] = start

	return tour
}
