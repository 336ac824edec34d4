// Package tsp - Held–Karp 1-tree (Lagrangian) lower bound.
//
// For multipliers π the reduced costs are c'_{ij} = c_{ij} + π_i + π_j. A
// minimum 1-tree T(π) is an MST on V\{root} plus the two cheapest root edges,
// and
//
//	L(π) = cost_c'(T(π)) − 2·Σ π_i
//
// is at most the optimal tour length for every π. Subgradient ascent with
// s_i = deg_T(i) − 2 tightens it. The bound is used to report how far a tour
// can be from optimal; it never feeds back into the search.
//
// Complexity: O(MaxIter · n²) time, O(n) extra space (the matrix is shared).
// Determinism: no RNG; Prim and root-edge selection break ties by index.
package tsp

import (
	"math"

	"github.com/katalvlaran/tourlath/matrix"
)

// BoundOptions controls the subgradient loop of LowerBound.
type BoundOptions struct {
	// MaxIter is the number of subgradient steps (≥ 1).
	MaxIter int
	// Alpha ∈ (0, 2) scales every step.
	Alpha float64
	// UB is a known tour length; when positive and finite it drives the
	// Polyak step α·(UB − L)/‖s‖². Otherwise steps decay as α/(1+iter).
	UB float64
}

// DefaultBoundOptions returns a small fixed budget without UB feedback.
func DefaultBoundOptions() BoundOptions {
	return BoundOptions{MaxIter: 64, Alpha: 0.9, UB: math.Inf(1)}
}

// LowerBound returns the best Held–Karp 1-tree bound found, rooted at 0 and
// rounded to 1e−9. n=1 yields 0 and n=2 yields the exact round trip.
func LowerBound(dist *matrix.Distance, opts BoundOptions) (float64, error) {
	if dist == nil || dist.N() == 0 {
		return 0, ErrEmptyInput
	}
	n := dist.N()
	switch n {
	case 1:
		return 0, nil
	case 2:
		return round1e9(2 * dist.Dist(0, 1)), nil
	}
	if opts.MaxIter <= 0 {
		opts.MaxIter = 1
	}
	if !(opts.Alpha > 0 && opts.Alpha < 2) {
		opts.Alpha = DefaultBoundOptions().Alpha
	}
	useUB := opts.UB > 0 && !math.IsInf(opts.UB, 0) && !math.IsNaN(opts.UB)

	t := oneTree{
		dist:   dist,
		n:      n,
		pi:     make([]float64, n),
		deg:    make([]int, n),
		inTree: make([]bool, n),
		parent: make([]int, n),
		key:    make([]float64, n),
	}

	best := math.Inf(-1)
	for iter := 0; iter < opts.MaxIter; iter++ {
		reduced := t.build()

		var sumPi float64
		for i := 0; i < n; i++ {
			sumPi += t.pi[i]
		}
		bound := reduced - 2*sumPi
		if bound > best {
			best = bound
		}

		var norm2 float64
		for i := 0; i < n; i++ {
			s := float64(t.deg[i] - 2)
			norm2 += s * s
		}
		if norm2 == 0 {
			// T(π) is a tour: the bound is tight.
			break
		}

		var step float64
		if useUB {
			step = opts.Alpha * math.Max(opts.UB-bound, 0) / norm2
		} else {
			step = opts.Alpha / (1 + float64(iter))
		}
		if step == 0 {
			break
		}
		for i := 0; i < n; i++ {
			t.pi[i] += step * float64(t.deg[i]-2)
		}
	}

	return round1e9(best), nil
}

// oneTree holds the reusable buffers of the 1-tree construction. The root
// is vertex 0.
type oneTree struct {
	dist   *matrix.Distance
	n      int
	pi     []float64
	deg    []int
	inTree []bool
	parent []int
	key    []float64
}

func (t *oneTree) reduced(u, v int) float64 {
	return t.dist.Dist(u, v) + t.pi[u] + t.pi[v]
}

// build computes a minimum 1-tree on reduced costs, fills deg and returns
// the reduced-cost total. Requires n ≥ 3.
func (t *oneTree) build() float64 {
	const root = 0
	inf := math.Inf(1)
	for v := 0; v < t.n; v++ {
		t.deg[v] = 0
		t.inTree[v] = false
		t.parent[v] = -1
		t.key[v] = inf
	}

	// Prim over V\{root}, seeded at vertex 1.
	var total float64
	t.key[1] = 0
	for k := 0; k < t.n-1; k++ {
		best := -1
		for v := 1; v < t.n; v++ {
			if !t.inTree[v] && (best == -1 || t.key[v] < t.key[best]) {
				best = v
			}
		}
		t.inTree[best] = true
		if p := t.parent[best]; p != -1 {
			total += t.reduced(best, p)
			t.deg[best]++
			t.deg[p]++
		}
		for v := 1; v < t.n; v++ {
			if t.inTree[v] {
				continue
			}
			if c := t.reduced(best, v); c < t.key[v] {
				t.key[v] = c
				t.parent[v] = best
			}
		}
	}

	// Two cheapest root edges.
	m1, m2 := inf, inf
	a, b := -1, -1
	for v := 1; v < t.n; v++ {
		c := t.reduced(root, v)
		switch {
		case c < m1:
			m2, b = m1, a
			m1, a = c, v
		case c < m2:
			m2, b = c, v
		}
	}
	total += m1 + m2
	t.deg[root] += 2
	t.deg[a]++
	t.deg[b]++

	return total
}
