// Package main implements the anvil command, which prints the shortest move
// sequence that brings the forging gauge to a target value.
package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gitrdm/anvilsolver/internal/config"
	"github.com/gitrdm/anvilsolver/internal/logging"
	"github.com/gitrdm/anvilsolver/pkg/anvil"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// app holds state shared by the commands of one invocation.
type app struct {
	configPath string
	logLevel   string
	output     string
	color      string

	cfg    *config.Config
	log    *zap.Logger
	solver *anvil.Solver
}

func newRootCmd() *cobra.Command {
	a := &app{}
	moves := moveNames()

	root := &cobra.Command{
		Use:   "anvil <target> [third-to-last] [second-to-last] [last]",
		Short: "Find the shortest forging sequence for an anvil target",
		Long: fmt.Sprintf(`anvil computes the shortest sequence of forging moves that moves the gauge
from %d to <target>, keeping it within [%d, %d] after every move and using at
most %d moves.

Optional trailing arguments name the categories the sequence must end with,
in order. Each is one of %s.

Examples:
  # Shortest sequence for 42
  anvil 42

  # Sequence for 75 ending with punch, punch, hit
  anvil 75 punch punch hit

  # JSON output
  anvil --output json 5 punch`,
			anvil.MinGauge, anvil.MinGauge, anvil.MaxGauge, anvil.MaxStepCount, moves),
		Version:           anvil.Version,
		Args:              cobra.ArbitraryArgs,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		RunE:              a.runSolve,
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "config file (default ~/.config/anvil/config.yaml)")
	flags.StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn, error")
	flags.StringVarP(&a.output, "output", "o", "", "output format: text or json")
	flags.StringVar(&a.color, "color", "", "colour mode: auto, always or never")

	root.AddCommand(newTableCmd(a), newVersionCmd(a))
	return root
}

func newVersionCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			info := anvil.GetVersionInfo()
			r := a.renderer(cmd)
			if r.json {
				return r.encode(info)
			}
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "anvil %s (%s)\n", info.Version, info.GoVersion)
			return err
		},
	}
}

func moveNames() string {
	names := make([]string, 0, len(anvil.AllMoves()))
	for _, m := range anvil.AllMoves() {
		names = append(names, m.String())
	}
	return strings.Join(names, ", ")
}

// setup loads configuration, applies flag overrides and builds the solver.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.Log.Level = a.logLevel
	}
	if flags.Changed("output") {
		cfg.Output.Format = a.output
	}
	if flags.Changed("color") {
		cfg.Output.Color = a.color
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	log, err := logging.New(cfg.Log, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.log = log
	a.solver = anvil.NewSolver(anvil.WithLogger(log.Named("solver")))
	return nil
}

func (a *app) renderer(cmd *cobra.Command) *renderer {
	return newRenderer(cmd.OutOrStdout(), a.cfg.Output.Format, a.cfg.Output.Color)
}

func (a *app) runSolve(cmd *cobra.Command, args []string) error {
	defer a.log.Sync() //nolint:errcheck

	if len(args) < 1 {
		return cmd.Usage()
	}
	target, err := parseTarget(args[0])
	if err != nil {
		return err
	}
	required, err := anvil.ParseMoves(args[1:])
	if err != nil {
		return err
	}

	res := a.solver.Solve(target, required)
	return a.renderer(cmd).Result(res)
}

func parseTarget(s string) (int, error) {
	target, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("invalid target %q: must be an integer", s)
	}
	return target, nil
}
