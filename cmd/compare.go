package cmd

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/cwbudde/strongin/internal/objective"
	"github.com/cwbudde/strongin/internal/opt"
	"github.com/spf13/cobra"
)

var (
	cmpFnName  string
	cmpEps     float64
	cmpWorkers int
	cmpIters   int
	cmpPopSize int
	cmpSeed    int64
)

var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Race the characteristic search against the mayfly optimizer",
	Long: `Runs both the Strongin characteristic search and the mayfly population
optimizer on the same objective and reports the results side by side.`,
	RunE: runCompare,
}

func init() {
	compareCmd.Flags().StringVar(&cmpFnName, "fn", "damped", "Objective name (see 'strongin functions')")
	compareCmd.Flags().Float64Var(&cmpEps, "eps", 1e-6, "Convergence tolerance for the characteristic search")
	compareCmd.Flags().IntVar(&cmpWorkers, "workers", 1, "Worker pool size for the characteristic search")
	compareCmd.Flags().IntVar(&cmpIters, "iters", 100, "Max iterations for mayfly")
	compareCmd.Flags().IntVar(&cmpPopSize, "pop", 30, "Population size for mayfly")
	compareCmd.Flags().Int64Var(&cmpSeed, "seed", 42, "Random seed for mayfly")

	rootCmd.AddCommand(compareCmd)
}

func runCompare(cmd *cobra.Command, args []string) error {
	bench, ok := objective.Lookup(cmpFnName)
	if !ok {
		return fmt.Errorf("unknown objective %q (available: %s)", cmpFnName, strings.Join(objective.Names(), ", "))
	}
	if cmpEps <= 0 {
		return fmt.Errorf("epsilon must be positive, got %v", cmpEps)
	}
	if cmpWorkers < 1 {
		return fmt.Errorf("workers must be at least 1, got %d", cmpWorkers)
	}

	slog.Info("Starting comparison", "objective", cmpFnName, "a", bench.A, "b", bench.B, "known_minimum", bench.Minimum)

	entries := []struct {
		name      string
		optimizer opt.Optimizer
	}{
		{"strongin", opt.NewStrongin(cmpEps, cmpWorkers)},
		{"mayfly", opt.NewMayfly(cmpIters, cmpPopSize, cmpSeed)},
	}

	for _, entry := range entries {
		start := time.Now()
		x, fx := entry.optimizer.Run(bench.F, bench.A, bench.B)
		elapsed := time.Since(start)

		slog.Info("Optimizer finished",
			"optimizer", entry.name,
			"arg_min", x,
			"minimum", fx,
			"error", fx-bench.Minimum,
			"elapsed", elapsed,
		)
		fmt.Printf("%-10s min f = %.6g at x = %.6g (%s)\n", entry.name, fx, x, elapsed)
	}

	return nil
}
