package strongin

import (
	"fmt"
	"log/slog"
	"math"
	"runtime"

	"github.com/cwbudde/strongin/internal/comm"
)

// coordinator is the distinguished rank that partitions work and
// aggregates partial results in the distributed strategy.
const coordinator = 0

// State reports how a search ended.
type State string

const (
	// StateConverged means the winning segment shrank below epsilon.
	StateConverged State = "converged"
	// StateExhausted means the iteration cap was reached first.
	StateExhausted State = "exhausted"
)

// Config holds the tunable parameters of a search.
type Config struct {
	// Epsilon is the convergence tolerance on segment length.
	Epsilon float64

	// Contraction is the safety ratio r applied to the Lipschitz
	// estimate. It must exceed 1 for the search to stay globally
	// convergent.
	Contraction float64

	// MaxIterations caps the loop; a search that has not converged by
	// then reports failure through a NaN result.
	MaxIterations int

	// Workers is the pool size used by SearchDistributed.
	Workers int
}

// DefaultConfig returns the standard search parameters.
func DefaultConfig() Config {
	return Config{
		Epsilon:       1e-6,
		Contraction:   2.0,
		MaxIterations: 100000,
		Workers:       runtime.NumCPU(),
	}
}

// Result carries the outcome of one search.
type Result struct {
	// Minimum is the estimated global minimum of the objective; NaN when
	// State is StateExhausted.
	Minimum float64

	// ArgMin is the sample point that produced Minimum.
	ArgMin float64

	// Iterations is the number of refinement iterations performed.
	Iterations int

	State State
}

// correction derives the working constant m from the Lipschitz estimate M:
// 1 when M is zero, r*M otherwise. M must be non-negative and r must
// exceed 1; a violation is a programming error, not a runtime condition.
func correction(M, r float64) float64 {
	if M < 0 || r <= 1 {
		panic(fmt.Sprintf("strongin: invalid correction inputs M=%v r=%v", M, r))
	}
	if M == 0 {
		return 1
	}
	return r * M
}

// minimize runs the characteristic search with the given strategy. In a
// distributed run every worker executes this identical body against its
// own copy of the segment collection; the two shared values per iteration
// keep those copies in lockstep.
func minimize(strat executionStrategy, f Objective, a, b float64, cfg Config) Result {
	segments := []Segment{{Begin: a, End: b}}

	for iteration := 0; iteration < cfg.MaxIterations; iteration++ {
		M := strat.shareEstimate(strat.lipschitz(f, segments))
		m := correction(M, cfg.Contraction)
		best := strat.shareCandidate(strat.selectMax(f, segments, m))

		winner := segments[best.Index]
		if winner.Length() < cfg.Epsilon {
			slog.Debug("search converged",
				"iterations", iteration,
				"segments", len(segments),
				"arg_min", winner.End,
			)
			return Result{
				Minimum:    f(winner.End),
				ArgMin:     winner.End,
				Iterations: iteration,
				State:      StateConverged,
			}
		}

		yn := winner.Begin + (winner.End-winner.Begin)/2 + (f(winner.End)-f(winner.Begin))/(2*m)
		segments = append(segments, Segment{Begin: winner.Begin, End: yn})
		segments[best.Index].Begin = yn

		slog.Debug("segment refined",
			"iteration", iteration,
			"estimate", M,
			"characteristic", best.Value,
			"index", best.Index,
			"sample", yn,
		)
	}

	slog.Warn("iteration cap reached without convergence",
		"max_iterations", cfg.MaxIterations,
		"epsilon", cfg.Epsilon,
	)
	return Result{
		Minimum:    math.NaN(),
		ArgMin:     math.NaN(),
		Iterations: cfg.MaxIterations,
		State:      StateExhausted,
	}
}

// Search finds the global minimum of f over [a, b] on a single worker.
func Search(f Objective, a, b float64, cfg Config) Result {
	return minimize(sequentialStrategy{}, f, a, b, cfg)
}

// SearchDistributed runs the identical search body on a pool of
// cfg.Workers cooperating workers. Every worker converges on the same
// result; the coordinator's is returned.
func SearchDistributed(f Objective, a, b float64, cfg Config) Result {
	pool := comm.NewPool(cfg.Workers)
	results := make([]Result, cfg.Workers)
	pool.Run(func(c *comm.Comm) {
		results[c.Rank()] = minimize(distributedStrategy{c: c}, f, a, b, cfg)
	})
	return results[coordinator]
}

// Minimize finds the global minimum of f over [a, b] with the default
// parameters and the given tolerance. It returns the estimated minimum
// value, or NaN when the iteration cap is reached before convergence.
func Minimize(f Objective, a, b, epsilon float64) float64 {
	cfg := DefaultConfig()
	cfg.Epsilon = epsilon
	return Search(f, a, b, cfg).Minimum
}

// MinimizeDistributed is Minimize across a pool of the given number of
// workers. Every worker observes the same value; with one worker the
// computation reduces exactly to Minimize.
func MinimizeDistributed(f Objective, a, b, epsilon float64, workers int) float64 {
	cfg := DefaultConfig()
	cfg.Epsilon = epsilon
	cfg.Workers = workers
	return SearchDistributed(f, a, b, cfg).Minimum
}
