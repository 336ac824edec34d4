// Package tourlath finds short closed tours through points in the plane.
//
// 🚀 What is tourlath?
//
//	A heuristic Euclidean TSP engine built from small, composable stages:
//		• Distance matrix: precomputed, symmetric, filled in parallel
//		• Construction: nearest neighbour (ties → lowest index), optional untangling
//		• Crossing resolution: reverse a sub-path until no two edges cross
//		• Local search: 2-opt → Or-opt(1) → Or-opt(2) to a joint fixed point
//		• Annealing: random segment reversals, p = exp(−5t), restarts when p < 0.1
//		• Lower bound: Held–Karp 1-tree, to report how far a tour can be from optimal
//
// ✨ Why tourlath?
//
//   - Deterministic – same points, options and seed ⇒ the same tour
//   - Anchored – every tour starts and ends at the chosen vertex
//   - Cancellable – budgets and contexts stop annealing with the best tour so far
//
// Packages:
//
//	geom/         - points, orientation, proper segment crossing
//	matrix/       - read-only Euclidean distance matrix + validators
//	tsp/          - tours, construction, moves, annealing, variants, Solve
//	builder/      - deterministic point-set generators for tests and demos
//	tspio/        - CSV / JSON5 point readers, CSV / XLSX tour writers
//	config/       - .env + TOURLATH_* configuration
//	cmd/tourlath/ - solve, score, generate, variants
//
// Quick ASCII example:
//
//	    1───2
//	    │   │
//	    0───3
//
//	the unit square; every variant returns [0 1 2 3 0] with length 4.
//
//	go install github.com/katalvlaran/tourlath/cmd/tourlath@latest
package tourlath
