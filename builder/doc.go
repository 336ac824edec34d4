// Package builder generates deterministic point sets for tests, benchmarks
// and the command-line "generate" subcommand.
//
// Every generator returns []geom.Point with IDs 0..n-1 in emission order and
// is configured through functional options:
//
//   - WithSeed / WithRand:  RNG source (default: a generator seeded with 1).
//   - WithScale:            square side, grid spacing or circle radius.
//   - WithOrigin:           translation of the whole set.
//   - WithJitter:           uniform perturbation for Grid and Circle.
//   - WithSpread:           cluster standard deviation for Clusters.
//
// Generators:
//
//   - Uniform(n):         i.i.d. points in a square.
//   - Grid(rows, cols):   row-major lattice.
//   - Circle(n):          evenly spaced on a circle; identity order is optimal.
//   - Clusters(k, per):   Gaussian blobs around uniform centres.
//
// Guarantees:
//
//   - Same arguments and seed ⇒ identical output.
//   - Invalid sizes return errors wrapping ErrTooFewPoints or ErrTooManyPoints.
//   - Option constructors panic on meaningless values (negative jitter,
//     non-positive scale); generators never panic.
package builder
