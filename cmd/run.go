package cmd

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/cwbudde/strongin/internal/objective"
	"github.com/cwbudde/strongin/internal/strongin"
	"github.com/spf13/cobra"
)

var (
	fnName  string
	lower   float64
	upper   float64
	eps     float64
	workers int
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run one minimization",
	Long:  `Runs the characteristic search on a named benchmark objective.`,
	RunE:  runSearch,
}

func init() {
	runCmd.Flags().StringVar(&fnName, "fn", "quadratic", "Objective name (see 'strongin functions')")
	runCmd.Flags().Float64Var(&lower, "a", 0, "Lower interval bound (defaults to the objective's own)")
	runCmd.Flags().Float64Var(&upper, "b", 0, "Upper interval bound (defaults to the objective's own)")
	runCmd.Flags().Float64Var(&eps, "eps", 1e-6, "Convergence tolerance on segment length")
	runCmd.Flags().IntVar(&workers, "workers", 1, "Worker pool size (1 runs the single-worker path)")

	rootCmd.AddCommand(runCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	bench, ok := objective.Lookup(fnName)
	if !ok {
		return fmt.Errorf("unknown objective %q (available: %s)", fnName, strings.Join(objective.Names(), ", "))
	}

	a, b := bench.A, bench.B
	if cmd.Flags().Changed("a") {
		a = lower
	}
	if cmd.Flags().Changed("b") {
		b = upper
	}
	if a >= b {
		return fmt.Errorf("invalid interval [%v, %v]", a, b)
	}
	if eps <= 0 {
		return fmt.Errorf("epsilon must be positive, got %v", eps)
	}
	if workers < 1 {
		return fmt.Errorf("workers must be at least 1, got %d", workers)
	}

	slog.Info("Starting search", "objective", fnName, "a", a, "b", b, "epsilon", eps, "workers", workers)

	cfg := strongin.DefaultConfig()
	cfg.Epsilon = eps
	cfg.Workers = workers

	start := time.Now()
	var result strongin.Result
	if workers == 1 {
		result = strongin.Search(bench.F, a, b, cfg)
	} else {
		result = strongin.SearchDistributed(bench.F, a, b, cfg)
	}
	elapsed := time.Since(start)

	if result.State == strongin.StateExhausted {
		return fmt.Errorf("no convergence within %d iterations (epsilon %v)", cfg.MaxIterations, cfg.Epsilon)
	}

	slog.Info("Search complete",
		"elapsed", elapsed,
		"iterations", result.Iterations,
		"minimum", result.Minimum,
		"arg_min", result.ArgMin,
	)

	fmt.Printf("min f = %.6g at x = %.6g (%d iterations, %s)\n", result.Minimum, result.ArgMin, result.Iterations, elapsed)

	return nil
}
