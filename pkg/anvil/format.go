package anvil

import (
	"fmt"
	"strconv"
	"strings"
)

// Term is one run of identical consecutive deltas.
type Term struct {
	Delta Delta `json:"delta"`
	Count int   `json:"count"`
}

// String renders the run as a signed value with an optional "*count".
func (t Term) String() string {
	var b strings.Builder
	if t.Delta >= 0 {
		b.WriteByte('+')
	}
	b.WriteString(strconv.Itoa(int(t.Delta)))
	if t.Count > 1 {
		b.WriteByte('*')
		b.WriteString(strconv.Itoa(t.Count))
	}
	return b.String()
}

// Group collapses adjacent equal deltas. Repeats separated by a different
// delta stay in separate runs.
func (s Sequence) Group() []Term {
	var terms []Term
	for _, d := range s {
		if n := len(terms); n > 0 && terms[n-1].Delta == d {
			terms[n-1].Count++
			continue
		}
		terms = append(terms, Term{Delta: d, Count: 1})
	}
	return terms
}

func formatTerms(s Sequence) []string {
	groups := s.Group()
	out := make([]string, len(groups))
	for i, t := range groups {
		out[i] = t.String()
	}
	return out
}

// NoSolutionMessage is printed when nothing fits within MaxStepCount moves.
const NoSolutionMessage = "No solutions found"

// Report renders a solve outcome the way the command line prints it.
func Report(target int, sol Solution, found bool) string {
	if !found {
		return NoSolutionMessage
	}
	return fmt.Sprintf("Best solution for %d with length %d:\n%s", target, sol.Len(), sol.Sequence())
}
