package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"

	"github.com/gitrdm/anvilsolver/pkg/anvil"
)

// renderer prints solve results as plain or coloured text, or JSON.
type renderer struct {
	w    io.Writer
	json bool

	color    bool
	heading  lipgloss.Style
	positive lipgloss.Style
	negative lipgloss.Style
	muted    lipgloss.Style
}

func newRenderer(w io.Writer, format, color string) *renderer {
	r := &renderer{w: w, json: format == "json", color: useColor(w, color)}
	if r.color {
		lr := lipgloss.NewRenderer(w)
		lr.SetColorProfile(termenv.ANSI256)
		r.heading = lr.NewStyle().Bold(true)
		r.positive = lr.NewStyle().Foreground(lipgloss.Color("2"))
		r.negative = lr.NewStyle().Foreground(lipgloss.Color("1"))
		r.muted = lr.NewStyle().Faint(true)
	}
	return r
}

func useColor(w io.Writer, mode string) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	}
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	f, ok := w.(*os.File)
	return ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()))
}

// resultJSON is the machine-readable form of one solve.
type resultJSON struct {
	Target   int          `json:"target"`
	Required []string     `json:"required"`
	Found    bool         `json:"found"`
	Length   int          `json:"length"`
	Moves    []int        `json:"moves"`
	Prefix   []int        `json:"prefix"`
	Suffix   []int        `json:"suffix"`
	Terms    []anvil.Term `json:"terms"`
	Text     string       `json:"text"`
	Stats    anvil.Stats  `json:"stats"`
}

func toJSON(res anvil.Result) resultJSON {
	out := resultJSON{
		Target:   res.Target,
		Required: make([]string, len(res.Required)),
		Found:    res.Found,
		Moves:    []int{},
		Prefix:   []int{},
		Suffix:   []int{},
		Terms:    []anvil.Term{},
		Stats:    res.Stats,
	}
	for i, m := range res.Required {
		out.Required[i] = m.String()
	}
	if res.Found {
		seq := res.Solution.Sequence()
		out.Length = len(seq)
		out.Moves = ints(seq)
		out.Prefix = ints(res.Solution.Prefix)
		out.Suffix = ints(res.Solution.Suffix)
		out.Terms = append(out.Terms, seq.Group()...)
		out.Text = seq.String()
	}
	return out
}

func ints(s anvil.Sequence) []int {
	out := make([]int, len(s))
	for i, d := range s {
		out[i] = int(d)
	}
	return out
}

// Result prints a single solve.
func (r *renderer) Result(res anvil.Result) error {
	if r.json {
		return r.encode(toJSON(res))
	}
	if !res.Found {
		_, err := fmt.Fprintln(r.w, r.style(r.muted, anvil.NoSolutionMessage))
		return err
	}
	seq := res.Solution.Sequence()
	heading := fmt.Sprintf("Best solution for %d with length %d:", res.Target, len(seq))
	_, err := fmt.Fprintf(r.w, "%s\n%s\n", r.style(r.heading, heading), r.terms(seq))
	return err
}

// Table prints one line per target.
func (r *renderer) Table(results []anvil.Result) error {
	if r.json {
		rows := make([]resultJSON, len(results))
		for i, res := range results {
			rows[i] = toJSON(res)
		}
		return r.encode(rows)
	}
	for _, res := range results {
		var line string
		if res.Found {
			line = fmt.Sprintf("%3d  %2d  %s", res.Target, res.Solution.Len(), r.terms(res.Solution.Sequence()))
		} else {
			line = fmt.Sprintf("%3d   %s", res.Target, r.style(r.muted, "-"))
		}
		if _, err := fmt.Fprintln(r.w, strings.TrimRight(line, " ")); err != nil {
			return err
		}
	}
	return nil
}

func (r *renderer) terms(seq anvil.Sequence) string {
	groups := seq.Group()
	parts := make([]string, len(groups))
	for i, t := range groups {
		style := r.positive
		if t.Delta < 0 {
			style = r.negative
		}
		parts[i] = r.style(style, t.String())
	}
	return strings.Join(parts, " ")
}

func (r *renderer) style(s lipgloss.Style, text string) string {
	if !r.color {
		return text
	}
	return s.Render(text)
}

func (r *renderer) encode(v any) error {
	enc := json.NewEncoder(r.w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
