package strongin

import (
	"math"
	"testing"

	"github.com/cwbudde/strongin/internal/comm"
)

// wavy is a multimodal objective used to exercise the estimator and
// selector on a non-trivial partition.
func wavy(x float64) float64 {
	return math.Sin(3*x) + x*x/10
}

// segmentsOver splits [a, b] at the given interior points, which must be
// strictly increasing.
func segmentsOver(a, b float64, points ...float64) []Segment {
	segments := make([]Segment, 0, len(points)+1)
	begin := a
	for _, p := range points {
		segments = append(segments, Segment{Begin: begin, End: p})
		begin = p
	}
	return append(segments, Segment{Begin: begin, End: b})
}

func TestLipschitzEstimateEmpty(t *testing.T) {
	if got := lipschitzEstimate(wavy, nil); got != 0 {
		t.Errorf("lipschitzEstimate over empty collection = %v, want 0", got)
	}
}

func TestLipschitzEstimateDistributedAgreement(t *testing.T) {
	segments := segmentsOver(0, 3, 0.2, 0.5, 0.9, 1.4, 1.5, 2.1, 2.8)
	want := lipschitzEstimate(wavy, segments)

	for _, workers := range []int{1, 2, 3, 4, 8, 12} {
		pool := comm.NewPool(workers)
		got := make([]float64, workers)
		pool.Run(func(c *comm.Comm) {
			M := lipschitzEstimateDistributed(c, wavy, segments)
			got[c.Rank()] = c.Broadcast(0, M).(float64)
		})

		for rank, M := range got {
			if M != want {
				t.Errorf("workers=%d rank=%d: M = %v, want %v", workers, rank, M, want)
			}
		}
	}
}

func TestMaxCharacteristicDistributedAgreement(t *testing.T) {
	segments := segmentsOver(0, 3, 0.2, 0.5, 0.9, 1.4, 1.5, 2.1, 2.8)
	m := correction(lipschitzEstimate(wavy, segments), 2.0)
	want := maxCharacteristic(wavy, segments, m)

	for _, workers := range []int{1, 2, 3, 4, 8, 12} {
		pool := comm.NewPool(workers)
		got := make([]candidate, workers)
		pool.Run(func(c *comm.Comm) {
			best := maxCharacteristicDistributed(c, wavy, segments, m)
			got[c.Rank()] = c.Broadcast(0, best).(candidate)
		})

		for rank, best := range got {
			if best.Value != want.Value || best.Index != want.Index {
				t.Errorf("workers=%d rank=%d: got (%v, %d), want (%v, %d)",
					workers, rank, best.Value, best.Index, want.Value, want.Index)
			}
		}
	}
}

func TestMaxCharacteristicFirstOccurrenceWins(t *testing.T) {
	// Equal-length segments of a constant function produce identical
	// characteristics; the scan must keep the first.
	f := func(x float64) float64 { return 0 }
	segments := []Segment{{0, 1}, {1, 2}}
	m := correction(lipschitzEstimate(f, segments), 2.0)

	best := maxCharacteristic(f, segments, m)
	if best.Index != 0 {
		t.Errorf("tie broke to index %d, want first occurrence 0", best.Index)
	}
}

func TestCorrection(t *testing.T) {
	tests := []struct {
		name string
		M    float64
		r    float64
		want float64
	}{
		{"zero estimate", 0, 2.0, 1},
		{"positive estimate", 3, 2.0, 6},
		{"fractional estimate", 0.5, 2.0, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := correction(tt.M, tt.r); got != tt.want {
				t.Errorf("correction(%v, %v) = %v, want %v", tt.M, tt.r, got, tt.want)
			}
		})
	}
}

func TestCorrectionPanicsOnBadInputs(t *testing.T) {
	tests := []struct {
		name string
		M    float64
		r    float64
	}{
		{"negative estimate", -1, 2.0},
		{"ratio at one", 1, 1.0},
		{"ratio below one", 1, 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Errorf("correction(%v, %v) did not panic", tt.M, tt.r)
				}
			}()
			correction(tt.M, tt.r)
		})
	}
}

func TestMinimizeQuadratic(t *testing.T) {
	f := func(x float64) float64 {
		d := x - 2
		return d * d
	}

	got := Minimize(f, 0, 5, 1e-4)
	if math.Abs(got) > 1e-3 {
		t.Errorf("Minimize((x-2)^2) = %v, want ~0", got)
	}
}

func TestMinimizeSine(t *testing.T) {
	got := Minimize(math.Sin, 0, 2*math.Pi, 1e-5)
	if math.Abs(got-(-1)) > 1e-3 {
		t.Errorf("Minimize(sin) = %v, want ~-1", got)
	}
}

func TestMinimizeDistributedMatchesSequential(t *testing.T) {
	f := func(x float64) float64 {
		return math.Sin(x) + math.Sin(10*x/3)
	}

	sequential := Minimize(f, 2.7, 7.5, 1e-4)
	for _, workers := range []int{1, 2, 4} {
		distributed := MinimizeDistributed(f, 2.7, 7.5, 1e-4, workers)
		if math.Abs(distributed-sequential) > 1e-4 {
			t.Errorf("workers=%d: distributed = %v, sequential = %v", workers, distributed, sequential)
		}
	}
}

func TestMinimizeDistributedSingleWorkerExact(t *testing.T) {
	// A one-worker pool runs the same partition, scan and (degenerate)
	// collectives, so the result must be bit-identical.
	sequential := Minimize(math.Sin, 0, 2*math.Pi, 1e-5)
	distributed := MinimizeDistributed(math.Sin, 0, 2*math.Pi, 1e-5, 1)
	if sequential != distributed {
		t.Errorf("single-worker distributed = %v, sequential = %v", distributed, sequential)
	}
}

func TestMinimizeDeterministic(t *testing.T) {
	f := func(x float64) float64 {
		return x*x/20 - math.Cos(3*x)
	}

	first := Minimize(f, -5, 5, 1e-5)
	second := Minimize(f, -5, 5, 1e-5)
	if first != second {
		t.Errorf("repeated calls differ: %v vs %v", first, second)
	}

	firstDist := MinimizeDistributed(f, -5, 5, 1e-5, 4)
	secondDist := MinimizeDistributed(f, -5, 5, 1e-5, 4)
	if firstDist != secondDist {
		t.Errorf("repeated distributed calls differ: %v vs %v", firstDist, secondDist)
	}
}

func TestMinimizeImmediateConvergence(t *testing.T) {
	// A tolerance wider than the whole interval converges on the first
	// iteration, sampling the end of the only segment.
	f := func(x float64) float64 { return x * x }

	cfg := DefaultConfig()
	cfg.Epsilon = 10

	result := Search(f, 0, 5, cfg)
	if result.State != StateConverged {
		t.Fatalf("state = %v, want %v", result.State, StateConverged)
	}
	if result.Iterations != 0 {
		t.Errorf("iterations = %d, want 0", result.Iterations)
	}
	if result.Minimum != f(5) {
		t.Errorf("minimum = %v, want f(5) = %v", result.Minimum, f(5))
	}
}

func TestSearchExhaustion(t *testing.T) {
	// A constant objective splits the longest segment forever, so a
	// tolerance far below what the cap allows must exhaust the loop.
	flat := func(x float64) float64 { return 1 }

	cfg := DefaultConfig()
	cfg.Epsilon = 1e-9
	cfg.MaxIterations = 200

	result := Search(flat, 0, 5, cfg)
	if result.State != StateExhausted {
		t.Fatalf("state = %v, want %v", result.State, StateExhausted)
	}
	if !math.IsNaN(result.Minimum) {
		t.Errorf("minimum = %v, want NaN sentinel", result.Minimum)
	}
	if result.Iterations != cfg.MaxIterations {
		t.Errorf("iterations = %d, want %d", result.Iterations, cfg.MaxIterations)
	}
}

func TestSearchDistributedExhaustion(t *testing.T) {
	flat := func(x float64) float64 { return 1 }

	cfg := DefaultConfig()
	cfg.Epsilon = 1e-9
	cfg.MaxIterations = 100
	cfg.Workers = 3

	result := SearchDistributed(flat, 0, 5, cfg)
	if result.State != StateExhausted {
		t.Fatalf("state = %v, want %v", result.State, StateExhausted)
	}
	if !math.IsNaN(result.Minimum) {
		t.Errorf("minimum = %v, want NaN sentinel", result.Minimum)
	}
}

func TestSearchReportsArgMin(t *testing.T) {
	f := func(x float64) float64 {
		d := x - 2
		return d * d
	}

	cfg := DefaultConfig()
	cfg.Epsilon = 1e-5

	result := Search(f, 0, 5, cfg)
	if result.State != StateConverged {
		t.Fatalf("state = %v, want %v", result.State, StateConverged)
	}
	if math.Abs(result.ArgMin-2) > 1e-3 {
		t.Errorf("arg_min = %v, want ~2", result.ArgMin)
	}
}
