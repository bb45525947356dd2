package opt

// Optimizer defines a scalar minimization algorithm over a closed interval
type Optimizer interface {
	// Run executes the optimization
	// eval: objective function to minimize
	// a, b: interval bounds
	// Returns: best point and best value
	Run(eval func(float64) float64, a, b float64) (float64, float64)
}
