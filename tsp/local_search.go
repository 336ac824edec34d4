// Package tsp - local search engine.
//
// LocalSearch drives the move passes to a joint local optimum:
//
//	repeat:
//	    2-opt    until a pass makes no change
//	    Or-opt(1) until a pass makes no change
//	    Or-opt(2) until a pass makes no change
//	while Or-opt(1) or Or-opt(2) changed anything
//
// On return no single enabled move shortens the tour by more than eps, which
// makes a second call a no-op.
package tsp

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/tourlath/matrix"
)

// MoveSet selects local-search neighbourhoods.
type MoveSet uint8

const (
	// MoveTwoOpt enables segment reversal.
	MoveTwoOpt MoveSet = 1 << iota
	// MoveOrOpt1 enables relocating a single point.
	MoveOrOpt1
	// MoveOrOpt2 enables relocating a pair of consecutive points.
	MoveOrOpt2

	// AllMoves enables every neighbourhood.
	AllMoves = MoveTwoOpt | MoveOrOpt1 | MoveOrOpt2
)

// Has reports whether every move in m is enabled.
func (s MoveSet) Has(m MoveSet) bool { return s&m == m }

// String implements fmt.Stringer, e.g. "2opt|oropt1".
func (s MoveSet) String() string {
	if s == 0 {
		return "none"
	}
	var parts []string
	if s.Has(MoveTwoOpt) {
		parts = append(parts, "2opt")
	}
	if s.Has(MoveOrOpt1) {
		parts = append(parts, "oropt1")
	}
	if s.Has(MoveOrOpt2) {
		parts = append(parts, "oropt2")
	}

	return strings.Join(parts, "|")
}

// movePass is the shape shared by TwoOptPass, OrOpt1Pass and OrOpt2Pass.
type movePass func(dist *matrix.Distance, tour []int, eps float64) bool

// LocalSearch improves tour in place with the moves in moves, in the fixed
// order 2-opt → Or-opt(1) → Or-opt(2), and reports whether anything changed.
//
// Every applied move strictly shortens the tour, so the loop is finite;
// exceeding the pass cap (opts.MaxPasses or a default derived from n) returns
// ErrNotConverged with the tour still valid.
//
// Complexity: O(n²) per pass.
func LocalSearch(dist *matrix.Distance, tour []int, moves MoveSet, opts Options) (bool, error) {
	if dist == nil {
		return false, fmt.Errorf("LocalSearch: %w", ErrEmptyInput)
	}
	n := dist.N()
	if len(tour) != n+1 || tour[0] != tour[n] {
		return false, fmt.Errorf("LocalSearch: tour length %d for n=%d: %w", len(tour), n, ErrDimensionMismatch)
	}
	if moves == 0 || n < 4 {
		return false, nil
	}

	var (
		eps      = opts.Eps
		limit    = maxPasses(n, opts)
		passes   int
		improved bool
		again    bool
		changed  bool
		err      error
	)
	// fixpoint runs one move kind until a pass makes no change.
	fixpoint := func(pass movePass) (bool, error) {
		var moved bool
		for pass(dist, tour, eps) {
			moved = true
			passes++
			if passes > limit {
				return moved, fmt.Errorf("LocalSearch: %d passes: %w", limit, ErrNotConverged)
			}
		}

		return moved, nil
	}

	for {
		again = false
		if moves.Has(MoveTwoOpt) {
			if changed, err = fixpoint(TwoOptPass); err != nil {
				return true, err
			}
			improved = improved || changed
		}
		if moves.Has(MoveOrOpt1) {
			if changed, err = fixpoint(OrOpt1Pass); err != nil {
				return true, err
			}
			improved = improved || changed
			again = again || changed
		}
		if moves.Has(MoveOrOpt2) {
			if changed, err = fixpoint(OrOpt2Pass); err != nil {
				return true, err
			}
			improved = improved || changed
			again = again || changed
		}
		// A relocation can open new 2-opt or Or-opt(1) moves.
		if !again {
			return improved, nil
		}
	}
}
