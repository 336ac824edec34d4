// Package tsp - closed-tour helpers shared by every stage of the pipeline.
//
// A tour over n points is []int of length n+1 with tour[0] == tour[n] == anchor
// and tour[0..n-1] a permutation of 0..n-1. Helpers here touch only that index
// structure; distances live in cost.go.
//
// Provided helpers:
//   - ValidatePermutation / MakeTourFromPermutation: open permutation → closed tour.
//   - ValidateTour: closure + permutation check.
//   - RotateTourToStart / CanonicalizeOrientationInPlace: normal form for output and comparison.
//   - reverseArcInPlace / shiftBlockInPlace: the two mutation primitives of every move.
//   - Positions: identity → position index for callers that hold identities.
//   - OpenTour, CopyTour, EqualToursModuloRotation, DebugString.
//
// Complexity: O(n) time for every helper unless noted; mutations are in place.
package tsp

import (
	"strconv"
	"strings"
)

// ValidatePermutation checks that perm is a permutation of {0..n-1}.
//
// Complexity: O(n) time, O(n) space.
func ValidatePermutation(perm []int, n int) error {
	if n <= 0 || len(perm) != n {
		return ErrDimensionMismatch
	}
	seen := make([]bool, n)

	var v int
	for _, v = range perm {
		if v < 0 || v >= n || seen[v] {
			return ErrDimensionMismatch
		}
		seen[v] = true
	}

	return nil
}

// MakeTourFromPermutation rotates perm so that start comes first and closes it.
// The returned tour is a fresh slice of length n+1.
//
// Complexity: O(n) time, O(n) space.
func MakeTourFromPermutation(perm []int, start int) ([]int, error) {
	n := len(perm)
	if err := ValidatePermutation(perm, n); err != nil {
		return nil, err
	}
	if start < 0 || start >= n {
		return nil, ErrStartOutOfRange
	}

	var (
		i     int
		pivot int
	)
	for i = 0; i < n; i++ {
		if perm[i] == start {
			pivot = i
			break
		}
	}

	tour := make([]int, n+1)
	for i = 0; i < n; i++ {
		tour[i] = perm[(pivot+i)%n]
	}
	tour[n] = start

	return tour, nil
}

// ValidateTour enforces the closed-tour invariant:
//
//	len(tour) == n+1, tour[0] == tour[n] == start,
//	every v ∈ [0..n-1] appears exactly once in tour[0..n-1].
//
// Complexity: O(n) time, O(n) space.
func ValidateTour(tour []int, n int, start int) error {
	if n <= 0 || len(tour) != n+1 {
		return ErrDimensionMismatch
	}
	if start < 0 || start >= n {
		return ErrStartOutOfRange
	}
	if tour[0] != start || tour[n] != start {
		return ErrDimensionMismatch
	}

	return ValidatePermutation(tour[:n], n)
}

// RotateTourToStart returns a copy of tour shifted so that it begins and ends
// at start. tour may be closed (len n+1, first == last) or an open path (len n).
// A closed tour over a single point is [v, v].
//
// Complexity: O(n) time, O(n) space.
func RotateTourToStart(tour []int, start int) ([]int, error) {
	if len(tour) == 0 {
		return nil, ErrDimensionMismatch
	}
	n := len(tour)
	if n > 1 && tour[0] == tour[n-1] {
		n--
	}
	if start < 0 || start >= n {
		return nil, ErrStartOutOfRange
	}

	pivot := indexOf(tour[:n], start)
	if pivot < 0 {
		return nil, ErrDimensionMismatch
	}

	out := make([]int, n+1)

	var i int
	for i = 0; i < n; i++ {
		out[i] = tour[(pivot+i)%n]
	}
	out[n] = start

	return out, nil
}

// CanonicalizeOrientationInPlace picks one of the two directions of a cycle:
// if tour[1] > tour[n-1] the interior tour[1..n-1] is reversed. Length is
// unchanged, and two tours describing the same cycle become identical.
// Tours with fewer than three points are already canonical.
//
// Complexity: O(n) time, O(1) space.
func CanonicalizeOrientationInPlace(tour []int) error {
	if len(tour) < 2 || tour[0] != tour[len(tour)-1] {
		return ErrDimensionMismatch
	}
	n := len(tour) - 1
	if n < 3 {
		return nil
	}
	if tour[1] > tour[n-1] {
		reverseArcInPlace(tour, 1, n-1)
	}

	return nil
}

// reverseArcInPlace reverses tour[i..k] inclusive. Callers guarantee
// 1 ≤ i ≤ k ≤ n-1, which keeps the anchor at both ends untouched.
//
// Complexity: O(k-i) time, O(1) space.
func reverseArcInPlace(tour []int, i, k int) {
	for i < k {
		tour[i], tour[k] = tour[k], tour[i]
		i++
		k--
	}
}

// shiftBlockInPlace moves the block tour[i..i+size-1] so that it ends at
// position j, shifting tour[i+size..j] left by size. Order inside the block
// is preserved. Callers guarantee 1 ≤ i and i+size ≤ j ≤ n-1.
//
// Complexity: O(j-i) time, O(size) space (size ≤ 2 on the hot path).
func shiftBlockInPlace(tour []int, i, j, size int) {
	var (
		buf [2]int
		blk []int
	)
	if size <= len(buf) {
		blk = buf[:size]
	} else {
		blk = make([]int, size)
	}
	copy(blk, tour[i:i+size])
	copy(tour[i:], tour[i+size:j+1])
	copy(tour[j-size+1:], blk)
}

// indexOf returns the first index of v within tour, or -1.
//
// Complexity: O(n) time.
func indexOf(tour []int, v int) int {
	var i int
	for i = range tour {
		if tour[i] == v {
			return i
		}
	}

	return -1
}

// OpenTour returns the first n entries of a closed tour (the visiting order
// without the repeated anchor), as a fresh slice.
func OpenTour(tour []int) []int {
	if len(tour) < 2 {
		return CopyTour(tour)
	}

	return CopyTour(tour[:len(tour)-1])
}

// CopyTour returns an independent copy of tour.
func CopyTour(tour []int) []int {
	if tour == nil {
		return nil
	}
	out := make([]int, len(tour))
	copy(out, tour)

	return out
}

// EqualToursModuloRotation reports whether two closed tours visit the same
// cycle in the same direction, regardless of where each one starts.
//
// Complexity: O(n) time.
func EqualToursModuloRotation(a, b []int) bool {
	if len(a) != len(b) || len(a) < 2 {
		return false
	}
	n := len(a) - 1
	if a[n] != a[0] || b[n] != b[0] {
		return false
	}
	p := indexOf(b[:n], a[0])
	if p < 0 {
		return false
	}

	var i int
	for i = 0; i < n; i++ {
		if a[i] != b[(p+i)%n] {
			return false
		}
	}

	return true
}

// DebugString renders a closed tour as "[0 3 1 2 | 0]".
func DebugString(tour []int) string {
	if len(tour) == 0 {
		return "[]"
	}

	var (
		sb strings.Builder
		n  = len(tour) - 1
		i  int
	)
	sb.WriteByte('[')
	for i = 0; i < n; i++ {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(strconv.Itoa(tour[i]))
	}
	sb.WriteString(" | ")
	sb.WriteString(strconv.Itoa(tour[n]))
	sb.WriteByte(']')

	return sb.String()
}

// Positions maps a point identity to its position in a closed tour.
// The anchor maps to 0, never to n.
type Positions []int

// NewPositions builds the index for tour.
//
// Complexity: O(n) time, O(n) space.
func NewPositions(tour []int) Positions {
	n := len(tour) - 1
	if n < 1 {
		n = len(tour)
	}
	p := make(Positions, n)
	p.Update(tour)

	return p
}

// Update recomputes the index after tour was mutated. tour must cover the
// same identities as the tour the index was built from.
func (p Positions) Update(tour []int) {
	var i int
	for i = len(p) - 1; i >= 0; i-- {
		p[tour[i]] = i
	}
}

// Of returns the position of identity v.
func (p Positions) Of(v int) int { return p[v] }
