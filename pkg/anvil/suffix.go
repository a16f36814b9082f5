package anvil

// SolveBest returns the shortest sequence reaching target whose trailing
// moves have the required categories, in order. The suffix is enumerated over
// every delta assignment of the categories and each candidate's prefix is
// searched with a budget that tightens as shorter solutions are found.
//
// Equal-length solutions are resolved by enumeration order: the first one
// found is kept.
func SolveBest(target int, required []Move) (Solution, bool) {
	e := enumeration{target: target, required: required}
	e.run()
	return e.best, e.found
}

// enumeration carries the best-so-far across suffix candidates.
type enumeration struct {
	target   int
	required []Move
	s        searcher

	best  Solution
	found bool

	candidates int
	skipped    int

	// onCandidate, when set, observes every candidate after it is evaluated.
	onCandidate func(suffix Sequence, prefix Sequence, ok bool)
}

func (e *enumeration) run() {
	if len(e.required) == 0 {
		e.candidates = 1
		if prefix, ok := e.s.solveMinimal(e.target, MaxStepCount); ok {
			e.best = Solution{Prefix: prefix, Suffix: Sequence{}}
			e.found = true
		}
		return
	}
	choices := make([][]Delta, len(e.required))
	for i, m := range e.required {
		choices[i] = m.Deltas()
	}
	suffix := make(Sequence, len(e.required))
	e.product(choices, suffix, 0)
}

// product walks the cartesian product of choices left to right, outermost
// category varying slowest.
func (e *enumeration) product(choices [][]Delta, suffix Sequence, i int) {
	if i == len(choices) {
		e.consider(suffix)
		return
	}
	for _, d := range choices[i] {
		suffix[i] = d
		e.product(choices, suffix, i+1)
	}
}

func (e *enumeration) consider(suffix Sequence) {
	e.candidates++
	remaining := e.target - suffix.Sum()
	if !walkInBounds(remaining, suffix) {
		e.skipped++
		if e.onCandidate != nil {
			e.onCandidate(suffix, nil, false)
		}
		return
	}

	budget := MaxStepCount - len(e.required)
	if e.found {
		budget = min(budget, e.best.Len()-1)
	}

	prefix, ok := e.s.solveMinimal(remaining, budget)
	if e.onCandidate != nil {
		e.onCandidate(suffix, prefix, ok)
	}
	if !ok {
		return
	}
	if !e.found || len(prefix)+len(suffix) < e.best.Len() {
		kept := make(Sequence, len(suffix))
		copy(kept, suffix)
		e.best = Solution{Prefix: prefix, Suffix: kept}
		e.found = true
	}
}
