package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gitrdm/anvilsolver/pkg/anvil"
)

func newTableCmd(a *app) *cobra.Command {
	var (
		from, to int
		workers  int
	)

	cmd := &cobra.Command{
		Use:   "table [third-to-last] [second-to-last] [last]",
		Short: "Solve every target in a range",
		Long: `Solve each target from --from to --to with the same required trailing
categories and print one line per target: target, move count, moves.

Examples:
  # Every gauge value
  anvil table

  # Targets 60..80 that must end with hit, punch
  anvil table --from 60 --to 80 hit punch`,
		RunE: func(cmd *cobra.Command, args []string) error {
			defer a.log.Sync() //nolint:errcheck

			if from > to {
				return fmt.Errorf("--from %d is greater than --to %d", from, to)
			}
			required, err := anvil.ParseMoves(args)
			if err != nil {
				return err
			}
			n := workers
			if !cmd.Flags().Changed("workers") {
				n = a.cfg.Table.Workers
			}

			targets := make([]int, 0, to-from+1)
			for t := from; t <= to; t++ {
				targets = append(targets, t)
			}
			results, err := a.solver.SolveTable(cmd.Context(), targets, required, n)
			if err != nil {
				return err
			}
			return a.renderer(cmd).Table(results)
		},
	}

	cmd.Flags().IntVar(&from, "from", anvil.MinGauge, "first target")
	cmd.Flags().IntVar(&to, "to", anvil.MaxGauge, "last target")
	cmd.Flags().IntVarP(&workers, "workers", "w", 0, "concurrent solves (0 = one per CPU)")
	return cmd
}
