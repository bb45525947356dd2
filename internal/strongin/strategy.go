package strongin

import "github.com/cwbudde/strongin/internal/comm"

// executionStrategy selects how the two per-iteration sub-computations run
// and how their results are shared so that every worker proceeds with the
// same values. The loop body is identical for both implementations.
type executionStrategy interface {
	// lipschitz computes the M estimate; in the distributed form the
	// result is meaningful only on the coordinator.
	lipschitz(f Objective, segments []Segment) float64

	// selectMax computes the maximum-characteristic record; in the
	// distributed form the result is meaningful only on the coordinator.
	selectMax(f Objective, segments []Segment, m float64) candidate

	// shareEstimate and shareCandidate make the coordinator's value
	// visible to every worker.
	shareEstimate(M float64) float64
	shareCandidate(best candidate) candidate
}

// sequentialStrategy runs everything on the calling goroutine; sharing is
// the identity.
type sequentialStrategy struct{}

func (sequentialStrategy) lipschitz(f Objective, segments []Segment) float64 {
	return lipschitzEstimate(f, segments)
}

func (sequentialStrategy) selectMax(f Objective, segments []Segment, m float64) candidate {
	return maxCharacteristic(f, segments, m)
}

func (sequentialStrategy) shareEstimate(M float64) float64 {
	return M
}

func (sequentialStrategy) shareCandidate(best candidate) candidate {
	return best
}

// distributedStrategy fans each sub-computation out over the worker pool;
// the coordinator aggregates and sharing is a broadcast from it. With a
// pool of one worker it reduces exactly to the sequential strategy.
type distributedStrategy struct {
	c *comm.Comm
}

func (d distributedStrategy) lipschitz(f Objective, segments []Segment) float64 {
	return lipschitzEstimateDistributed(d.c, f, segments)
}

func (d distributedStrategy) selectMax(f Objective, segments []Segment, m float64) candidate {
	return maxCharacteristicDistributed(d.c, f, segments, m)
}

func (d distributedStrategy) shareEstimate(M float64) float64 {
	return d.c.Broadcast(coordinator, M).(float64)
}

func (d distributedStrategy) shareCandidate(best candidate) candidate {
	return d.c.Broadcast(coordinator, best).(candidate)
}
