package strongin

import (
	"math"

	"github.com/cwbudde/strongin/internal/comm"
)

// candidate pairs a characteristic value with the index of the segment
// that produced it. The index is local to whatever slice was scanned until
// the coordinator translates it into the global segment ordering. It is
// also the message schema for the gather and broadcast of the selection.
type candidate struct {
	Value float64
	Index int
}

func worstCandidate() candidate {
	return candidate{Value: -math.MaxFloat64, Index: -1}
}

// maxCharacteristic scans the segments for the largest characteristic
//
//	R_i = m*yDif + zDif^2/(m*yDif) - 2*zSum
//
// with yDif the segment length, zDif and zSum the difference and sum of
// the endpoint samples. The comparison is strictly greater-than, so the
// first occurrence of a tied maximum wins.
func maxCharacteristic(f Objective, segments []Segment, m float64) candidate {
	best := worstCandidate()
	for i, s := range segments {
		yDif := s.End - s.Begin
		zDif := f(s.End) - f(s.Begin)
		zSum := f(s.End) + f(s.Begin)
		R := m*yDif + zDif*zDif/(m*yDif) - 2*zSum
		if R > best.Value {
			best = candidate{Value: R, Index: i}
		}
	}
	return best
}

// maxCharacteristicDistributed partitions the segments exactly as the
// Lipschitz pass does, has every worker scan its slice, and gathers the
// per-worker (value, local index) records at the coordinator. The
// coordinator selects the overall maximum, corrects the winning record's
// index by the owning worker's prefix offset and returns that same record.
// Non-coordinator workers return a zero candidate; the caller broadcasts
// the coordinator's result.
func maxCharacteristicDistributed(c *comm.Comm, f Objective, segments []Segment, m float64) candidate {
	split := NewWorkSplitter(len(segments), c.Size())
	local := scatterSegments(c, split, segments)
	best := maxCharacteristic(f, local, m)

	if c.Rank() != coordinator {
		if split.PartWork(c.Rank()) != 0 {
			c.Send(coordinator, best)
		}
		return candidate{}
	}

	results := make([]candidate, c.Size())
	for peer := range results {
		results[peer] = worstCandidate()
	}
	results[coordinator] = best
	for peer := 1; peer < c.Size(); peer++ {
		if split.PartWork(peer) != 0 {
			results[peer] = c.Recv(peer).(candidate)
		}
	}

	winner := 0
	for peer := 1; peer < c.Size(); peer++ {
		if results[peer].Value > results[winner].Value {
			winner = peer
		}
	}
	// Translate the worker-local index into the global ordering before
	// handing the record back.
	results[winner].Index += split.PrevPartWork(winner)
	return results[winner]
}
