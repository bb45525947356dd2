package opt

import "github.com/cwbudde/strongin/internal/strongin"

// StronginAdapter runs the characteristic search behind the Optimizer
// interface so it can be raced against other algorithms.
type StronginAdapter struct {
	epsilon float64
	workers int
}

// NewStrongin creates a Strongin optimizer adapter. With workers > 1 the
// search runs on a distributed worker pool.
func NewStrongin(epsilon float64, workers int) Optimizer {
	return &StronginAdapter{
		epsilon: epsilon,
		workers: workers,
	}
}

// Run executes the characteristic search
func (s *StronginAdapter) Run(eval func(float64) float64, a, b float64) (float64, float64) {
	cfg := strongin.DefaultConfig()
	cfg.Epsilon = s.epsilon
	cfg.Workers = s.workers

	var result strongin.Result
	if s.workers > 1 {
		result = strongin.SearchDistributed(eval, a, b, cfg)
	} else {
		result = strongin.Search(eval, a, b, cfg)
	}
	return result.ArgMin, result.Minimum
}
