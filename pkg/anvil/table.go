package anvil

import (
	"context"
	"fmt"

	"github.com/gitrdm/anvilsolver/internal/parallel"
)

// GaugeTargets returns every reachable gauge value, MinGauge to MaxGauge.
func GaugeTargets() []int {
	targets := make([]int, 0, MaxGauge-MinGauge+1)
	for t := MinGauge; t <= MaxGauge; t++ {
		targets = append(targets, t)
	}
	return targets
}

// SolveTable solves each target with the same required categories. Targets
// are independent, so they run on a worker pool of the given size (<= 0
// selects the CPU count). Results are in input order.
func (s *Solver) SolveTable(ctx context.Context, targets []int, required []Move, workers int) ([]Result, error) {
	pool := parallel.NewWorkerPool(workers)
	defer pool.Shutdown()

	results := make([]Result, len(targets))
	err := pool.Run(ctx, len(targets), func(i int) {
		results[i] = s.Solve(targets[i], required)
	})
	if err != nil {
		return nil, fmt.Errorf("solve table: %w", err)
	}
	return results, nil
}

// SolveTable is Solver.SolveTable without logging.
func SolveTable(ctx context.Context, targets []int, required []Move, workers int) ([]Result, error) {
	return NewSolver().SolveTable(ctx, targets, required, workers)
}
