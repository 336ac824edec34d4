// Package tsp - annealing driver.
//
// Each iteration:
//  1. Perturb a copy of the working tour by reversing tour[i..j] for a random
//     1 ≤ i < j ≤ n-1 (the anchor stays put).
//  2. Accept the copy if it is shorter; otherwise accept it with probability
//     p = exp(−DecayRate·t), where t ∈ [0,1] is the time since the current
//     epoch began divided by the cooling period.
//  3. Run LocalSearch on the working tour.
//  4. Record the best tour of the epoch and the best tour overall.
//  5. If p < ResetThreshold, replace the working tour with a fresh random tour
//     and start a new epoch. The overall best survives every reset.
//
// The loop stops when the time budget expires, MaxIterations is reached or
// ctx is done, and always returns the overall best (a complete tour).
//
// Concurrency: Anneal owns its tours and RNG; dist is only read.
package tsp

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/tourlath/matrix"
)

// AnnealResult is the outcome of Anneal.
type AnnealResult struct {
	// Tour is the best closed tour seen, starting at the anchor of init.
	Tour []int
	// Cost is the length of Tour, rounded to 1e-9.
	Cost float64
	// Stats holds Iterations, Accepted, Uphill, Resets, Improvements and Stopped.
	Stats Stats
}

// annealState is the mutable search state of one Anneal call.
type annealState struct {
	n      int
	anchor int

	cur     []int // working tour
	curCost float64
	scratch []int // perturbation buffer, swapped with cur on acceptance

	best     []int // overall best
	bestCost float64

	epochBest  float64 // best cost since the last reset
	epochStart time.Time

	stats Stats
}

// Anneal runs the perturb → accept → local search loop from init.
//
// Budget: opts.TimeLimit (> 0, or Unlimited) and/or opts.MaxIterations must be
// set, otherwise ErrNoBudget. The cooling period is opts.CoolingPeriod, or
// TimeLimit when finite, or DefaultCoolingPeriod.
//
// n ≤ 3 has a single cycle; init is returned as is with Stopped == StopTrivial.
//
// Errors: shape and option errors up front; ErrNotConverged from LocalSearch.
// Running out of budget or a cancelled ctx is not an error.
func Anneal(ctx context.Context, dist *matrix.Distance, init []int, opts Options) (AnnealResult, error) {
	if dist == nil || dist.N() == 0 {
		return AnnealResult{}, fmt.Errorf("Anneal: %w", ErrEmptyInput)
	}
	n := dist.N()
	if len(init) != n+1 {
		return AnnealResult{}, fmt.Errorf("Anneal: tour length %d for n=%d: %w", len(init), n, ErrDimensionMismatch)
	}
	if err := ValidateTour(init, n, init[0]); err != nil {
		return AnnealResult{}, fmt.Errorf("Anneal: %w", err)
	}
	if err := validateAnnealOptions(opts); err != nil {
		return AnnealResult{}, fmt.Errorf("Anneal: %w", err)
	}
	if opts.Eps < 0 {
		return AnnealResult{}, fmt.Errorf("Anneal: eps %v: %w", opts.Eps, ErrInvalidOptions)
	}

	if n <= 3 {
		return AnnealResult{
			Tour:  CopyTour(init),
			Cost:  round1e9(tourLength(dist, init)),
			Stats: Stats{Stopped: StopTrivial},
		}, nil
	}

	var (
		now      = opts.clock()
		log      = opts.logger()
		rng      = rngFromSeed(opts.Seed)
		begin    = now()
		cooling  = coolingPeriod(opts)
		deadline time.Time
		useLimit = opts.TimeLimit > 0 && opts.TimeLimit != Unlimited
		st       = newAnnealState(dist, init, begin)
		t        time.Time
		p        float64
		err      error
	)
	if useLimit {
		deadline = begin.Add(opts.TimeLimit)
	}
	log.Debug().
		Int("n", n).
		Dur("time_limit", opts.TimeLimit).
		Int("max_iterations", opts.MaxIterations).
		Dur("cooling", cooling).
		Float64("cost", st.curCost).
		Msg("anneal start")

	for {
		if ctx.Err() != nil {
			st.stats.Stopped = StopCancelled
			break
		}
		if opts.MaxIterations > 0 && st.stats.Iterations >= opts.MaxIterations {
			st.stats.Stopped = StopIterations
			break
		}
		t = now()
		if useLimit && !t.Before(deadline) {
			st.stats.Stopped = StopTimeLimit
			break
		}

		p = acceptanceProbability(t.Sub(st.epochStart), cooling, opts.DecayRate)
		st.perturb(dist, rng, p)

		if _, err = LocalSearch(dist, st.cur, opts.Moves, opts); err != nil {
			return st.result(), fmt.Errorf("Anneal: iteration %d: %w", st.stats.Iterations, err)
		}
		st.curCost = tourLength(dist, st.cur)

		if st.curCost < st.epochBest {
			st.epochBest = st.curCost
		}
		if st.curCost < st.bestCost {
			copy(st.best, st.cur)
			st.bestCost = st.curCost
			st.stats.Improvements++
			log.Debug().
				Int("iteration", st.stats.Iterations).
				Float64("p", p).
				Float64("cost", st.bestCost).
				Msg("anneal new best")
			if opts.OnImprove != nil {
				opts.OnImprove(Progress{
					Iteration:   st.stats.Iterations,
					Elapsed:     t.Sub(begin),
					Cost:        round1e9(st.bestCost),
					Probability: p,
					Resets:      st.stats.Resets,
				})
			}
		}

		if p < opts.ResetThreshold {
			st.reset(dist, rng, t, log)
		}
		st.stats.Iterations++
	}

	log.Debug().
		Stringer("stopped", st.stats.Stopped).
		Int("iterations", st.stats.Iterations).
		Int("resets", st.stats.Resets).
		Float64("cost", st.bestCost).
		Msg("anneal done")

	return st.result(), nil
}

// newAnnealState seeds the search with a copy of init.
func newAnnealState(dist *matrix.Distance, init []int, begin time.Time) *annealState {
	n := len(init) - 1
	cost := tourLength(dist, init)

	return &annealState{
		n:          n,
		anchor:     init[0],
		cur:        CopyTour(init),
		curCost:    cost,
		scratch:    make([]int, n+1),
		best:       CopyTour(init),
		bestCost:   cost,
		epochBest:  math.Inf(1),
		epochStart: begin,
	}
}

// perturb reverses a random span of a copy of cur and applies the
// acceptance rule with probability p for a longer candidate.
func (s *annealState) perturb(dist *matrix.Distance, rng *rand.Rand, p float64) {
	copy(s.scratch, s.cur)
	i, j := randomSpan(s.n, rng)
	reverseArcInPlace(s.scratch, i, j)
	cand := tourLength(dist, s.scratch)

	switch {
	case cand < s.curCost:
	case rng.Float64() < p:
		if cand > s.curCost {
			s.stats.Uphill++
		}
	default:
		return
	}
	s.cur, s.scratch = s.scratch, s.cur
	s.curCost = cand
	s.stats.Accepted++
}

// reset starts a new epoch from a random tour. The overall best is kept.
func (s *annealState) reset(dist *matrix.Distance, rng *rand.Rand, at time.Time, log zerolog.Logger) {
	log.Debug().
		Int("iteration", s.stats.Iterations).
		Float64("epoch_best", s.epochBest).
		Float64("best", s.bestCost).
		Msg("anneal reset")

	// n ≥ 4 and anchor < n here, so RandomTour cannot fail.
	s.cur, _ = RandomTour(s.n, s.anchor, rng)
	s.curCost = tourLength(dist, s.cur)
	s.epochStart = at
	s.epochBest = math.Inf(1)
	s.stats.Resets++
}

// result packages the overall best.
func (s *annealState) result() AnnealResult {
	return AnnealResult{
		Tour:  CopyTour(s.best),
		Cost:  round1e9(s.bestCost),
		Stats: s.stats,
	}
}

// coolingPeriod resolves the schedule length.
func coolingPeriod(opts Options) time.Duration {
	switch {
	case opts.CoolingPeriod > 0:
		return opts.CoolingPeriod
	case opts.TimeLimit > 0 && opts.TimeLimit != Unlimited:
		return opts.TimeLimit
	default:
		return DefaultCoolingPeriod
	}
}

// acceptanceProbability returns exp(−k·t) for t = elapsed/cooling clamped to [0,1].
func acceptanceProbability(elapsed, cooling time.Duration, k float64) float64 {
	t := float64(elapsed) / float64(cooling)
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}

	return math.Exp(-k * t)
}
