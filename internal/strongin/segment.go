// Package strongin implements Strongin's adaptive characteristic-search
// algorithm for finding the global minimum of a continuous one-dimensional
// function over a closed interval. The search runs either on a single
// worker or across a fixed pool of workers that cooperate through the
// collective primitives in internal/comm.
package strongin

// Objective is the scalar function being minimized. It must be pure: the
// search evaluates it repeatedly at the same points and on every worker.
type Objective func(x float64) float64

// Segment is one sub-interval of the search domain, bounded by two
// previously sampled points. The current ordered collection of segments
// always covers the whole input interval without gaps or overlaps; each
// iteration splits exactly one segment and none are ever merged or removed.
type Segment struct {
	Begin float64
	End   float64
}

// Length returns the segment's extent.
func (s Segment) Length() float64 {
	return s.End - s.Begin
}

// segmentBlock is the message schema for shipping a contiguous run of
// segments from the coordinator to another worker.
type segmentBlock []Segment
