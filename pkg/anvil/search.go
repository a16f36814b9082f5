package anvil

// explorationOrder is the delta tried at each DFS level. It decides which of
// several equal-length sequences is reported, so it must not change.
var explorationOrder = [...]Delta{+16, +13, +7, +2, -15, -9, -6, -3}

// gaugeRow marks, per gauge value, whether the target is still reachable.
type gaugeRow [MaxGauge + 1]bool

// searcher holds one bounded DFS. nodes counts visited states across every
// call made through the same searcher.
//
// reach[r][g] is true when the target can be hit in exactly r more moves
// from gauge g without leaving the bounds. Subtrees it rules out contain no
// accepting sequence, so skipping them never changes which sequence the DFS
// reports first; it only keeps unreachable targets from exhausting 8^length
// paths.
type searcher struct {
	target int
	length int
	path   []Delta
	reach  []gaugeRow
	nodes  int
}

// Search returns the first sequence, in exploration order, of exactly length
// moves that reaches target without the gauge leaving its bounds.
func Search(target, length int) (Sequence, bool) {
	var s searcher
	return s.search(target, length)
}

// SolveMinimal tries every length from 0 to maxLength and returns the first
// (and therefore shortest) sequence reaching target.
func SolveMinimal(target, maxLength int) (Sequence, bool) {
	var s searcher
	return s.solveMinimal(target, maxLength)
}

func (s *searcher) search(target, length int) (Sequence, bool) {
	if length < 0 {
		return nil, false
	}
	if s.target != target || s.reach == nil {
		s.target = target
		s.reach = s.reach[:0]
	}
	s.extendReach(length)
	s.length = length
	s.path = s.path[:0]
	if !s.visit(MinGauge) {
		return nil, false
	}
	out := make(Sequence, len(s.path))
	copy(out, s.path)
	return out, true
}

// extendReach grows the feasibility table up to depth rows.
func (s *searcher) extendReach(depth int) {
	if len(s.reach) == 0 {
		var base gaugeRow
		if inGauge(s.target) {
			base[s.target] = true
		}
		s.reach = append(s.reach, base)
	}
	for r := len(s.reach); r <= depth; r++ {
		prev := &s.reach[r-1]
		var row gaugeRow
		for g := MinGauge; g <= MaxGauge; g++ {
			for _, d := range explorationOrder {
				if n := g + int(d); inGauge(n) && prev[n] {
					row[g] = true
					break
				}
			}
		}
		s.reach = append(s.reach, row)
	}
}

// visit extends s.path from gauge g. On success s.path holds the answer.
func (s *searcher) visit(g int) bool {
	s.nodes++
	if !inGauge(g) || len(s.path) > s.length {
		return false
	}
	if !s.reach[s.length-len(s.path)][g] {
		return false
	}
	if g == s.target && len(s.path) == s.length {
		return true
	}
	for _, d := range explorationOrder {
		s.path = append(s.path, d)
		if s.visit(g + int(d)) {
			return true
		}
		s.path = s.path[:len(s.path)-1]
	}
	return false
}

func (s *searcher) solveMinimal(target, maxLength int) (Sequence, bool) {
	for length := 0; length <= maxLength; length++ {
		if seq, ok := s.search(target, length); ok {
			return seq, true
		}
	}
	return nil, false
}
