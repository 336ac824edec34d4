// Package tsp - geometric crossing resolution.
//
// Segment k of a closed tour joins positions k and k+1, k ∈ [0, n-1]. Two
// segments cross when geom.SegmentsCross says so; segments that share an
// endpoint (neighbours, including segment 0 and segment n-1 through the
// anchor) never count.
//
// Resolving the crossing of segments i < j reverses tour[i+1..j], replacing
// edges (a,b),(c,d) with (a,c),(b,d). For a proper crossing this is strictly
// shorter, so the resolve loop cannot revisit a tour and always terminates.
// It does not follow that the total number of crossings drops: a reversal
// may create new crossings elsewhere.
package tsp

import (
	"context"
	"fmt"

	"github.com/katalvlaran/tourlath/geom"
)

// FindCrossing returns the first pair of crossing segments (i, j), i < j, in
// scan order (i ascending, then j ascending). ok is false when the tour has
// no crossing. pts[v] must be the point with identity v.
//
// Complexity: O(n²).
func FindCrossing(tour []int, pts []geom.Point) (i, j int, ok bool) {
	segs := len(tour) - 1
	for i = 0; i < segs-1; i++ {
		for j = i + 2; j < segs; j++ {
			if geom.SegmentsCross(pts[tour[i]], pts[tour[i+1]], pts[tour[j]], pts[tour[j+1]]) {
				return i, j, true
			}
		}
	}

	return 0, 0, false
}

// CountCrossings returns the number of crossing segment pairs in tour.
//
// Complexity: O(n²).
func CountCrossings(tour []int, pts []geom.Point) int {
	var (
		segs  = len(tour) - 1
		count int
		i, j  int
	)
	for i = 0; i < segs-1; i++ {
		for j = i + 2; j < segs; j++ {
			if geom.SegmentsCross(pts[tour[i]], pts[tour[i+1]], pts[tour[j]], pts[tour[j+1]]) {
				count++
			}
		}
	}

	return count
}

// ResolveCrossings repeatedly finds the first crossing and undoes it until a
// full scan finds none. It returns the number of resolutions applied. The
// tour is mutated in place; its anchor stays put.
//
// ctx is checked once per scan. opts.MaxPasses (or the default derived from n)
// caps the number of resolutions; a crossing left over after the cap returns
// ErrNotConverged with the tour still valid.
//
// Complexity: O(n²) per scan.
func ResolveCrossings(ctx context.Context, tour []int, pts []geom.Point, opts Options) (int, error) {
	n := len(tour) - 1
	if n < 1 {
		return 0, fmt.Errorf("ResolveCrossings: %w", ErrDimensionMismatch)
	}
	if err := validatePoints(pts, n); err != nil {
		return 0, fmt.Errorf("ResolveCrossings: %w", err)
	}
	if err := ValidateTour(tour, n, tour[0]); err != nil {
		return 0, fmt.Errorf("ResolveCrossings: %w", err)
	}
	if n < 4 {
		return 0, nil
	}

	var (
		log      = opts.logger()
		limit    = maxPasses(n, opts)
		resolved int
		i, j     int
		found    bool
	)
	for {
		if err := ctx.Err(); err != nil {
			return resolved, fmt.Errorf("ResolveCrossings: %w", err)
		}
		if i, j, found = FindCrossing(tour, pts); !found {
			log.Debug().Int("resolved", resolved).Msg("crossings resolved")

			return resolved, nil
		}
		if resolved >= limit {
			return resolved, fmt.Errorf("ResolveCrossings: %d resolutions: %w", limit, ErrNotConverged)
		}
		// Reverse from the far end of the first segment to the near end of the second.
		reverseArcInPlace(tour, i+1, j)
		resolved++
	}
}

// untieLast checks the newest segment of the path tour[0..length-1] against
// every earlier segment and resolves the first crossing. It reports whether
// a resolution happened. The last point of the path never moves.
func untieLast(tour []int, length int, pts []geom.Point) bool {
	last := length - 2
	if last < 2 {
		return false
	}

	var (
		a = pts[tour[last]]
		b = pts[tour[last+1]]
		k int
	)
	for k = 0; k < last-1; k++ {
		if geom.SegmentsCross(pts[tour[k]], pts[tour[k+1]], a, b) {
			reverseArcInPlace(tour, k+1, last)

			return true
		}
	}

	return false
}
