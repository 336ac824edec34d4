// Package builder defines shared constants used by the point generators.
package builder

// Method name constants prefix errors with the generator name.
const (
	MethodUniform  = "Uniform"
	MethodGrid     = "Grid"
	MethodCircle   = "Circle"
	MethodClusters = "Clusters"
)

// MinPoints is the smallest size any generator accepts.
const MinPoints = 1

// MaxPoints bounds a single generated set. A dense distance matrix over
// MaxPoints points already needs 3.2 GB.
const MaxPoints = 20000

const (
	defaultSeed   = int64(1)
	defaultScale  = 1.0
	defaultJitter = 0.0
	defaultSpread = 0.05
)
