// Package objective provides the named benchmark functions addressable
// from the CLI and exercised by the tests.
package objective

import "math"

// Benchmark couples a named objective with its search interval and its
// known global minimum value.
type Benchmark struct {
	Name string
	Desc string
	F    func(x float64) float64

	// A and B bound the search interval.
	A float64
	B float64

	// Minimum is the known global minimum of F over [A, B], used for
	// reporting and verification.
	Minimum float64
}

var benchmarks = []Benchmark{
	{
		Name: "quadratic",
		Desc: "(x-2)^2, single bowl",
		F: func(x float64) float64 {
			d := x - 2
			return d * d
		},
		A:       0,
		B:       5,
		Minimum: 0,
	},
	{
		Name:    "sine",
		Desc:    "sin(x) over one period",
		F:       math.Sin,
		A:       0,
		B:       2 * math.Pi,
		Minimum: -1,
	},
	{
		Name: "damped",
		Desc: "sin(x) + sin(10x/3), classic multimodal test problem",
		F: func(x float64) float64 {
			return math.Sin(x) + math.Sin(10*x/3)
		},
		A:       2.7,
		B:       7.5,
		Minimum: -1.899599,
	},
	{
		Name: "ripple",
		Desc: "x^2/20 - cos(3x), shallow bowl with local minima",
		F: func(x float64) float64 {
			return x*x/20 - math.Cos(3*x)
		},
		A:       -5,
		B:       5,
		Minimum: -1,
	},
}

// Lookup returns the benchmark registered under the given name.
func Lookup(name string) (Benchmark, bool) {
	for _, b := range benchmarks {
		if b.Name == name {
			return b, true
		}
	}
	return Benchmark{}, false
}

// Names lists the registered benchmark names in registration order.
func Names() []string {
	names := make([]string, len(benchmarks))
	for i, b := range benchmarks {
		names[i] = b.Name
	}
	return names
}

// All returns the registered benchmarks.
func All() []Benchmark {
	return append([]Benchmark{}, benchmarks...)
}
