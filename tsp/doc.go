// Package tsp finds short closed tours through points in the plane.
//
// The solver is a pipeline over a shared, read-only matrix.Distance:
//
//   - Construction: NearestNeighbor (ties → lowest identity),
//     NearestNeighborUntangled, RandomTour or IdentityRing.
//
//   - Crossing resolution: ResolveCrossings removes proper segment crossings
//     with 2-opt reversals until none is left.
//
//   - Local search: LocalSearch applies 2-opt, Or-opt(1) and Or-opt(2) passes
//     to a joint fixed point.
//
//   - Annealing: Anneal repeatedly perturbs the tour by a random reversal,
//     accepts longer tours with probability exp(−k·t) and re-runs local
//     search, restarting from a random tour when the probability gets low.
//
//   - Lower bound: LowerBound computes the Held–Karp 1-tree bound used to
//     report how far a tour can be from optimal.
//
// Solve and SolveWithMatrix chain these stages according to Options; the
// classic recipes are available as presets through OptionsFor(Variant).
//
// Tours are []int of length n+1 that begin and end at the anchor
// (Options.Start). The anchor is never moved by any move.
//
// Example:
//
//	pts := geom.FromCoords([][2]float64{{0, 0}, {0, 1}, {1, 1}, {1, 0}})
//	res, err := tsp.Solve(ctx, pts, tsp.DefaultOptions())
//	// res.Tour == [0 1 2 3 0], res.Cost == 4
//
// Errors are package sentinels (ErrEmptyInput, ErrDimensionMismatch, …)
// wrapped with context; test with errors.Is.
package tsp
