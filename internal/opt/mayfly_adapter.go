package opt

import (
	"math/rand"

	"github.com/cwbudde/mayfly"
)

// MayflyAdapter wraps the external Mayfly library to conform to our Optimizer interface
type MayflyAdapter struct {
	maxIters int
	popSize  int
	seed     int64
}

// NewMayfly creates a new Mayfly optimizer adapter
func NewMayfly(maxIters, popSize int, seed int64) Optimizer {
	return &MayflyAdapter{
		maxIters: maxIters,
		popSize:  popSize,
		seed:     seed,
	}
}

// Run executes the Mayfly optimization using the external library
func (m *MayflyAdapter) Run(eval func(float64) float64, a, b float64) (float64, float64) {
	// Create config for external Mayfly library
	config := mayfly.NewDefaultConfig()

	// The library optimizes vectors; lift the scalar objective
	config.ObjectiveFunc = func(x []float64) float64 { return eval(x[0]) }
	config.ProblemSize = 1
	config.MaxIterations = m.maxIters
	config.NPop = m.popSize

	// Set bounds (external library uses scalar bounds)
	config.LowerBound = a
	config.UpperBound = b

	// Set random seed for reproducibility
	config.Rand = rand.New(rand.NewSource(m.seed))

	// Run optimization
	result, err := mayfly.Optimize(config)
	if err != nil {
		// Fallback to the midpoint if optimization fails
		mid := (a + b) / 2
		return mid, eval(mid)
	}

	return result.GlobalBest.Position[0], result.GlobalBest.Cost
}
