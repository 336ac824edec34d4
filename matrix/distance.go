// SPDX-License-Identifier: MIT

// Package matrix: Distance - the immutable, symmetric point-to-point table
// shared read-only by every tour component.
//
// Contract:
//   - n×n, d[i][j] == d[j][i], d[i][i] == 0, all entries finite and ≥ 0.
//   - Built exactly once per point set (NewEuclidean) or adopted from any
//     validated Matrix (FromMatrix); never mutated afterwards, so it is safe
//     to share across goroutines without locks.
//
// Complexity:
//   - Build: O(n²) time and memory; rows are filled concurrently.
//   - Dist: O(1), unchecked (hot path of local search).
package matrix

import (
	"context"
	"fmt"
	"math"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/tourlath/geom"
)

// Distance is a read-only symmetric distance matrix in row-major layout.
type Distance struct {
	n    int
	data []float64
}

var _ Matrix = (*Distance)(nil)

// NewEuclidean computes the Euclidean distance between every pair of pts.
// Row i is the distance from pts[i] to every other point; the input order
// defines the matrix index, so pts[i] must be the point with identity i.
//
// Stage 1 (Validate): non-empty input, finite coordinates.
// Stage 2 (Fill): one task per row on an errgroup bounded by WithWorkers;
// task i writes the cells (i,j) and (j,i) for j>i only, so tasks never share a cell.
// Stage 3 (Finalize): ctx cancellation surfaces as a wrapped ctx error.
//
// Complexity: O(n²) time, O(n²) memory.
func NewEuclidean(ctx context.Context, pts []geom.Point, opts ...Option) (*Distance, error) {
	n := len(pts)
	if n == 0 {
		return nil, fmt.Errorf("NewEuclidean: %w", ErrEmptyInput)
	}

	var i int
	for i = 0; i < n; i++ {
		if isNonFinite(pts[i].X) || isNonFinite(pts[i].Y) {
			return nil, fmt.Errorf("NewEuclidean: point %d: %w", i, ErrNaNInf)
		}
	}

	o := gatherOptions(opts...)
	d := &Distance{n: n, data: make([]float64, n*n)}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.workers)
	for i = 0; i < n-1; i++ {
		row := i
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			var (
				j int
				w float64
			)
			for j = row + 1; j < n; j++ {
				w = geom.Distance(pts[row], pts[j])
				d.data[row*n+j] = w
				d.data[j*n+row] = w
			}

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("NewEuclidean: %w", err)
	}

	return d, nil
}

// FromMatrix validates m as a distance table (see ValidateDistance) and
// copies it into a read-only Distance. Entries within eps of symmetric are
// averaged so that Dist(i,j) == Dist(j,i) holds exactly afterwards.
//
// Complexity: O(n²).
func FromMatrix(m Matrix, opts ...Option) (*Distance, error) {
	o := gatherOptions(opts...)
	if err := ValidateDistance(m, o.eps); err != nil {
		return nil, fmt.Errorf("FromMatrix: %w", err)
	}

	var (
		n        = m.Rows()
		d        = &Distance{n: n, data: make([]float64, n*n)}
		i, j     int
		aij, aji float64
	)
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			// Bounds were checked by ValidateDistance.
			aij, _ = m.At(i, j)
			aji, _ = m.At(j, i)
			aij = (aij + aji) / 2
			d.data[i*n+j] = aij
			d.data[j*n+i] = aij
		}
	}

	return d, nil
}

// N returns the number of points (matrix order).
func (d *Distance) N() int { return d.n }

// Dist returns d[i][j] without bounds checks beyond the slice's own.
// Callers in hot loops are expected to hold valid indices.
func (d *Distance) Dist(i, j int) float64 { return d.data[i*d.n+j] }

// Rows returns the matrix order.
func (d *Distance) Rows() int { return d.n }

// Cols returns the matrix order.
func (d *Distance) Cols() int { return d.n }

// At is the bounds-checked accessor satisfying Matrix.
func (d *Distance) At(i, j int) (float64, error) {
	if i < 0 || i >= d.n || j < 0 || j >= d.n {
		return 0, fmt.Errorf("Distance.At(%d,%d): %w", i, j, ErrOutOfRange)
	}

	return d.data[i*d.n+j], nil
}

// Set always fails: a Distance is immutable once built.
func (d *Distance) Set(i, j int, _ float64) error {
	return fmt.Errorf("Distance.Set(%d,%d): %w", i, j, ErrReadOnly)
}

// Clone returns an independent copy.
func (d *Distance) Clone() Matrix {
	cp := make([]float64, len(d.data))
	copy(cp, d.data)

	return &Distance{n: d.n, data: cp}
}

// ToDense copies the table into a mutable Dense.
func (d *Distance) ToDense() *Dense {
	cp := make([]float64, len(d.data))
	copy(cp, d.data)

	return &Dense{r: d.n, c: d.n, data: cp}
}

// MaxEntry returns the largest distance in the table (the point-set diameter
// for Euclidean input). Returns 0 for n ≤ 1.
//
// Complexity: O(n²).
func (d *Distance) MaxEntry() float64 {
	var (
		best float64
		i    int
	)
	for i = range d.data {
		best = math.Max(best, d.data[i])
	}

	return best
}
