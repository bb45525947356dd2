package strongin

import (
	"math"

	"github.com/cwbudde/strongin/internal/comm"
)

// lipschitzEstimate computes M, the finite-difference proxy for the
// Lipschitz constant of f over the given segments:
//
//	M = max over i of |f(End_i) - f(Begin_i)| / (End_i - Begin_i)
//
// An empty collection yields 0.
func lipschitzEstimate(f Objective, segments []Segment) float64 {
	M := 0.0
	for _, s := range segments {
		zDif := f(s.End) - f(s.Begin)
		yDif := s.End - s.Begin
		if current := math.Abs(zDif / yDif); current > M {
			M = current
		}
	}
	return M
}

// lipschitzEstimateDistributed partitions the segments across the pool,
// runs the sequential estimate on each worker's slice and max-reduces the
// partial results to the coordinator. Only the coordinator's return value
// is meaningful; the caller is responsible for broadcasting it.
func lipschitzEstimateDistributed(c *comm.Comm, f Objective, segments []Segment) float64 {
	split := NewWorkSplitter(len(segments), c.Size())
	local := scatterSegments(c, split, segments)
	return c.ReduceMax(coordinator, lipschitzEstimate(f, local))
}

// scatterSegments hands each worker its contiguous share of the segment
// collection. The coordinator keeps its own prefix and sends every other
// worker a block starting at that worker's prefix offset; workers owning
// zero units neither send nor receive.
func scatterSegments(c *comm.Comm, split *WorkSplitter, segments []Segment) []Segment {
	own := split.PartWork(c.Rank())
	if c.Rank() == coordinator {
		for peer := 1; peer < c.Size(); peer++ {
			units := split.PartWork(peer)
			if units == 0 {
				continue
			}
			offset := split.PrevPartWork(peer)
			block := make(segmentBlock, units)
			copy(block, segments[offset:offset+units])
			c.Send(peer, block)
		}
		return segments[:own]
	}
	if own == 0 {
		return nil
	}
	return c.Recv(coordinator).(segmentBlock)
}
