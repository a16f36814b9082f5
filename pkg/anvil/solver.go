package anvil

import (
	"time"

	"go.uber.org/zap"
)

// Option configures a Solver.
type Option func(*Solver)

// WithLogger attaches a logger. Candidates are logged at debug level and a
// summary of each solve at info level. A nil logger is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(s *Solver) {
		if l != nil {
			s.log = l
		}
	}
}

// Solver runs SolveBest with logging and search statistics. It holds no
// state between calls and is safe for concurrent use.
type Solver struct {
	log *zap.Logger
}

// NewSolver creates a Solver. Without options it logs nothing.
func NewSolver(opts ...Option) *Solver {
	s := &Solver{log: zap.NewNop()}
	for _, o := range opts {
		if o != nil {
			o(s)
		}
	}
	return s
}

// Stats describes the work done by one solve.
type Stats struct {
	// Nodes is the number of DFS states visited over all prefix searches.
	Nodes int `json:"nodes"`
	// Candidates is the number of concrete suffixes examined.
	Candidates int `json:"candidates"`
	// Skipped counts suffixes dropped because the gauge would leave its
	// bounds while applying them.
	Skipped int           `json:"skipped"`
	Elapsed time.Duration `json:"elapsed"`
}

// Result is the outcome of one solve.
type Result struct {
	Target   int      `json:"target"`
	Required []Move   `json:"-"`
	Solution Solution `json:"-"`
	Found    bool     `json:"found"`
	Stats    Stats    `json:"stats"`
}

// Solve is SolveBest plus statistics.
func (s *Solver) Solve(target int, required []Move) Result {
	start := time.Now()
	log := s.log.With(zap.Int("target", target), zap.Stringers("required", required))

	e := enumeration{target: target, required: required}
	if ce := log.Check(zap.DebugLevel, "suffix candidate"); ce != nil {
		e.onCandidate = func(suffix, prefix Sequence, ok bool) {
			log.Debug("suffix candidate",
				zap.String("suffix", suffix.String()),
				zap.String("prefix", prefix.String()),
				zap.Bool("found", ok),
			)
		}
	}
	e.run()

	res := Result{
		Target:   target,
		Required: required,
		Solution: e.best,
		Found:    e.found,
		Stats: Stats{
			Nodes:      e.s.nodes,
			Candidates: e.candidates,
			Skipped:    e.skipped,
			Elapsed:    time.Since(start),
		},
	}
	log.Info("solve finished",
		zap.Bool("found", res.Found),
		zap.Int("length", res.Solution.Len()),
		zap.Int("nodes", res.Stats.Nodes),
		zap.Int("candidates", res.Stats.Candidates),
		zap.Duration("elapsed", res.Stats.Elapsed),
	)
	return res
}
