// Package tsp - shared types, sentinel errors and options.
//
// This file is the single source of truth for:
//   - sentinel errors returned by every solver stage,
//   - TSResult / Stats / Progress,
//   - Options (pipeline configuration) and its documented defaults,
//   - the Variant presets mapping the classic solver recipes onto Options.
package tsp

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Sentinel errors. Callers branch with errors.Is; context is attached with %w.
var (
	// ErrEmptyInput is returned when no points (or a 0×0 matrix) are supplied.
	ErrEmptyInput = errors.New("tsp: empty input")

	// ErrDimensionMismatch flags shape violations: tour length ≠ n+1, a broken
	// closure, duplicate or out-of-range vertices, points whose ID differs from
	// their index, coordinates that do not match the matrix order.
	ErrDimensionMismatch = errors.New("tsp: dimension mismatch")

	// ErrStartOutOfRange is returned when the anchor vertex is not in [0..n-1].
	ErrStartOutOfRange = errors.New("tsp: start vertex out of range")

	// ErrInvalidOptions flags an Options combination that cannot be honoured
	// (negative eps, threshold outside (0,1), crossing work without coordinates…).
	ErrInvalidOptions = errors.New("tsp: invalid options")

	// ErrNoBudget is returned when annealing is requested without a time limit
	// and without an iteration limit. "Run forever" must be asked for
	// explicitly with TimeLimit = Unlimited.
	ErrNoBudget = errors.New("tsp: annealing requires a time or iteration budget")

	// ErrNotConverged signals that crossing resolution or local search hit the
	// pass cap. Both are provably finite, so this indicates a logic defect.
	ErrNotConverged = errors.New("tsp: search did not reach a fixed point")

	// ErrUnsupportedVariant is returned by ParseVariant/OptionsFor for unknown names.
	ErrUnsupportedVariant = errors.New("tsp: unsupported variant")
)

// Unlimited is the explicit "no wall-clock limit" budget for annealing.
const Unlimited time.Duration = math.MaxInt64

// Defaults (single source of truth for DefaultOptions).
const (
	// DefaultEps is the strict-improvement threshold: a move is applied only
	// when it shortens the tour by more than Eps.
	DefaultEps = 1e-12

	// DefaultDecayRate is k in p = exp(−k·t).
	DefaultDecayRate = 5.0

	// DefaultResetThreshold restarts annealing from a fresh random tour once p drops below it.
	DefaultResetThreshold = 0.1

	// DefaultCoolingPeriod is used when neither CoolingPeriod nor a finite
	// TimeLimit defines the schedule length.
	DefaultCoolingPeriod = time.Minute
)

// TSResult holds the outcome of a solver run.
type TSResult struct {
	// Tour is the closed sequence of point indices, starting and ending at
	// the anchor. For n points, len(Tour) == n+1 and Tour[0] == Tour[n].
	Tour []int

	// Cost is the total Euclidean length of the cycle, rounded to 1e-9.
	Cost float64

	// Stats describes the work performed.
	Stats Stats
}

// StopReason tells why the annealing loop returned.
type StopReason int

const (
	// StopNone means annealing was not run.
	StopNone StopReason = iota
	// StopTimeLimit means the wall-clock budget expired.
	StopTimeLimit
	// StopIterations means MaxIterations was reached.
	StopIterations
	// StopCancelled means the context was cancelled or hit its deadline.
	StopCancelled
	// StopTrivial means the instance is too small for any perturbation (n ≤ 3).
	StopTrivial
)

// String implements fmt.Stringer.
func (r StopReason) String() string {
	switch r {
	case StopNone:
		return "none"
	case StopTimeLimit:
		return "time-limit"
	case StopIterations:
		return "iterations"
	case StopCancelled:
		return "cancelled"
	case StopTrivial:
		return "trivial"
	default:
		return fmt.Sprintf("StopReason(%d)", int(r))
	}
}

// Stats aggregates counters over a run.
type Stats struct {
	Starts       int // construction trials performed (1 unless MultiStart)
	BestStart    int // start city of the winning construction trial
	Crossings    int // crossing resolutions applied (winning trial)
	Iterations   int // annealing iterations
	Accepted     int // perturbations accepted
	Uphill       int // accepted perturbations that lengthened the tour
	Resets       int // random restarts triggered by the reset threshold
	Improvements int // times the all-time best was improved during annealing
	Stopped      StopReason
}

// Progress is handed to Options.OnImprove whenever annealing records a new best.
type Progress struct {
	Iteration   int
	Elapsed     time.Duration
	Cost        float64 // cost of the tour that became the best
	Probability float64 // acceptance probability at that iteration
	Resets      int
}

// Construction selects how the initial tour is built.
type Construction int

const (
	// ConstructNearestNeighbor is the greedy nearest-unvisited expansion.
	ConstructNearestNeighbor Construction = iota
	// ConstructNearestNeighborUntangled resolves crossings of every newly added segment while building.
	ConstructNearestNeighborUntangled
	// ConstructRandom shuffles every non-anchor point.
	ConstructRandom
	// ConstructIdentity is the ring 0,1,…,n−1 rotated to the start.
	ConstructIdentity
)

// Options configures the solver pipeline:
//
//	construct → [ResolveCrossings] → [LocalSearch(Moves)] → [Anneal]
//
// Variants of the classic recipes differ only in these switches; see OptionsFor.
type Options struct {
	// Start is the anchor vertex: every returned tour begins and ends here.
	Start int

	// Construction picks the initial tour builder.
	Construction Construction

	// MultiStart repeats construction and cleanup from every start city
	// and keeps the shortest result (rotated to Start).
	MultiStart bool

	// Workers bounds the goroutines used by MultiStart and the distance
	// matrix fill. 0 ⇒ GOMAXPROCS.
	Workers int

	// ResolveCrossings runs the geometric untangling pass after construction.
	ResolveCrossings bool

	// Moves enables local-search neighbourhoods; 0 disables local search.
	Moves MoveSet

	// Anneal enables the perturbation/acceptance loop.
	Anneal bool

	// TimeLimit bounds the annealing phase. 0 ⇒ unset; Unlimited ⇒ no limit.
	TimeLimit time.Duration

	// CoolingPeriod is the schedule length that maps elapsed time to t∈[0,1].
	// 0 ⇒ TimeLimit when finite, DefaultCoolingPeriod otherwise.
	CoolingPeriod time.Duration

	// MaxIterations bounds the annealing phase by iteration count. 0 ⇒ unset.
	MaxIterations int

	// DecayRate is k in p = exp(−k·t).
	DecayRate float64

	// ResetThreshold triggers a random restart once p falls below it.
	ResetThreshold float64

	// Eps is the strict-improvement threshold for every move.
	Eps float64

	// MaxPasses caps the improving passes of one LocalSearch call, counted
	// across all move kinds and rounds, and the resolutions of one
	// ResolveCrossings call. 0 ⇒ derived from n.
	MaxPasses int

	// Seed drives every random choice; 0 ⇒ a fixed default seed.
	Seed int64

	// Logger receives debug events; nil ⇒ disabled.
	Logger *zerolog.Logger

	// OnImprove is called on every new all-time best during annealing.
	OnImprove func(Progress)

	// Now is the clock used by the annealing schedule; nil ⇒ time.Now.
	Now func() time.Time
}

// DefaultOptions returns nearest-neighbour construction followed by a full
// 2-opt → Or-opt(1) → Or-opt(2) local search, no annealing.
func DefaultOptions() Options {
	return Options{
		Start:          0,
		Construction:   ConstructNearestNeighbor,
		Moves:          AllMoves,
		DecayRate:      DefaultDecayRate,
		ResetThreshold: DefaultResetThreshold,
		Eps:            DefaultEps,
	}
}

// logger resolves the optional logger.
func (o Options) logger() zerolog.Logger {
	if o.Logger == nil {
		return zerolog.Nop()
	}

	return *o.Logger
}

// clock resolves the optional clock.
func (o Options) clock() func() time.Time {
	if o.Now == nil {
		return time.Now
	}

	return o.Now
}

// Variant names a preset pipeline.
type Variant int

const (
	// VariantGreedy2Opt: nearest neighbour from every start city, 2-opt to a fixed point.
	VariantGreedy2Opt Variant = iota
	// VariantUntangle: nearest neighbour with incremental untangling, then geometric crossing resolution.
	VariantUntangle
	// VariantLocalSearch: nearest neighbour from every start city, 2-opt → Or-opt(1) → Or-opt(2).
	VariantLocalSearch
	// VariantAnnealing: random tour improved by the annealing loop.
	VariantAnnealing
	// VariantHybrid: multi-start local search, crossing cleanup, then annealing.
	VariantHybrid
)

var variantNames = [...]string{
	VariantGreedy2Opt:  "greedy-2opt",
	VariantUntangle:    "untangle",
	VariantLocalSearch: "local-search",
	VariantAnnealing:   "annealing",
	VariantHybrid:      "hybrid",
}

// String implements fmt.Stringer.
func (v Variant) String() string {
	if v < 0 || int(v) >= len(variantNames) {
		return fmt.Sprintf("Variant(%d)", int(v))
	}

	return variantNames[v]
}

// Variants lists every preset in declaration order.
func Variants() []Variant {
	out := make([]Variant, len(variantNames))
	for i := range variantNames {
		out[i] = Variant(i)
	}

	return out
}

// ParseVariant maps a name produced by Variant.String back to the Variant.
// Matching is case-insensitive.
func ParseVariant(s string) (Variant, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, name := range variantNames {
		if name == s {
			return Variant(i), nil
		}
	}

	return 0, fmt.Errorf("ParseVariant(%q): %w", s, ErrUnsupportedVariant)
}

// OptionsFor returns DefaultOptions adjusted to the preset v. Annealing
// presets still need a TimeLimit or MaxIterations from the caller.
func OptionsFor(v Variant) (Options, error) {
	o := DefaultOptions()
	switch v {
	case VariantGreedy2Opt:
		o.MultiStart = true
		o.Moves = MoveTwoOpt
	case VariantUntangle:
		o.Construction = ConstructNearestNeighborUntangled
		o.ResolveCrossings = true
		o.Moves = 0
	case VariantLocalSearch:
		o.MultiStart = true
		o.Moves = AllMoves
	case VariantAnnealing:
		o.Construction = ConstructRandom
		o.Moves = AllMoves
		o.Anneal = true
	case VariantHybrid:
		o.MultiStart = true
		o.ResolveCrossings = true
		o.Moves = AllMoves
		o.Anneal = true
	default:
		return Options{}, fmt.Errorf("OptionsFor(%d): %w", int(v), ErrUnsupportedVariant)
	}

	return o, nil
}
