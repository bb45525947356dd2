package strongin

// WorkSplitter deterministically assigns a number of work units to a number
// of workers. Both distributed sub-computations rebuild one from the same
// inputs each iteration, so every worker derives identical partition
// boundaries without communicating.
type WorkSplitter struct {
	distribution []int
}

// NewWorkSplitter computes the distribution of unitCount units across
// workerCount workers. When there are at least as many workers as units,
// the first unitCount workers get exactly one unit each. Otherwise units
// are assigned worker by worker, each taking the integer share of the
// remaining units over the remaining workers, which pushes any remainder
// toward the earlier workers.
func NewWorkSplitter(unitCount, workerCount int) *WorkSplitter {
	distribution := make([]int, workerCount)
	if unitCount <= workerCount {
		for worker := 0; worker < unitCount; worker++ {
			distribution[worker] = 1
		}
	} else {
		remaining := unitCount
		for worker := 0; remaining != 0; worker++ {
			share := remaining / workerCount
			distribution[worker] = share
			remaining -= share
			workerCount--
		}
	}
	return &WorkSplitter{distribution: distribution}
}

// PartWork returns how many units the given worker owns. The worker index
// must be in range; callers always know the worker count.
func (w *WorkSplitter) PartWork(worker int) int {
	return w.distribution[worker]
}

// PrevPartWork returns how many units workers 0 through worker-1 own
// combined, i.e. the offset of the given worker's block in the global unit
// ordering.
func (w *WorkSplitter) PrevPartWork(worker int) int {
	work := 0
	for i := 0; i < worker; i++ {
		work += w.distribution[i]
	}
	return work
}
