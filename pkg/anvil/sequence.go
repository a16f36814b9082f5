package anvil

import "strings"

// Gauge bounds. The gauge starts at MinGauge and must stay within the closed
// range after every move.
const (
	MinGauge = 0
	MaxGauge = 149
)

// MaxStepCount is the ceiling on total moves (prefix plus suffix).
const MaxStepCount = 16

// Sequence is an ordered list of deltas applied to the gauge.
type Sequence []Delta

// Sum returns the gauge value after applying every delta from zero.
func (s Sequence) Sum() int {
	total := 0
	for _, d := range s {
		total += int(d)
	}
	return total
}

// Moves maps each delta to its category.
func (s Sequence) Moves() []Move {
	out := make([]Move, len(s))
	for i, d := range s {
		out[i] = d.Move()
	}
	return out
}

// InBounds reports whether every running total, starting from zero, lies
// within the gauge range.
func (s Sequence) InBounds() bool {
	return walkInBounds(MinGauge, s)
}

func walkInBounds(start int, s Sequence) bool {
	g := start
	if !inGauge(g) {
		return false
	}
	for _, d := range s {
		g += int(d)
		if !inGauge(g) {
			return false
		}
	}
	return true
}

func inGauge(g int) bool {
	return g >= MinGauge && g <= MaxGauge
}

// Terms renders the sequence with runs of identical deltas collapsed.
func (s Sequence) Terms() []string {
	return formatTerms(s)
}

// String joins Terms with single spaces.
func (s Sequence) String() string {
	return strings.Join(s.Terms(), " ")
}

// Solution pairs a freely chosen prefix with a suffix realising the required
// trailing categories.
type Solution struct {
	Prefix Sequence
	Suffix Sequence
}

// Sequence returns prefix followed by suffix.
func (s Solution) Sequence() Sequence {
	out := make(Sequence, 0, len(s.Prefix)+len(s.Suffix))
	out = append(out, s.Prefix...)
	return append(out, s.Suffix...)
}

// Len is the total number of moves.
func (s Solution) Len() int {
	return len(s.Prefix) + len(s.Suffix)
}
