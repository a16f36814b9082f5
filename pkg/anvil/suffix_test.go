package anvil

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSolveBest_Scenarios(t *testing.T) {
	cases := []struct {
		name     string
		target   int
		required []Move
		prefix   Sequence
		suffix   Sequence
	}{
		{"zero target", 0, nil, Sequence{}, Sequence{}},
		{"single punch", 2, nil, Sequence{2}, Sequence{}},
		{"single shrink", 16, nil, Sequence{16}, Sequence{}},
		{"ends with punch", 5, []Move{Punch}, Sequence{16, 2, -15}, Sequence{2}},
		{"zero ending with hit", 0, []Move{Hit}, Sequence{7, 2}, Sequence{-9}},
		{"first hit pair wins ties", 60, []Move{Hit, Hit}, Sequence{16, 16, 16, 16, 2}, Sequence{-3, -3}},
		{"bend upset", 37, []Move{Bend, Upset}, Sequence{16, 16, -15}, Sequence{7, 13}},
		{"three last hits", 100, []Move{Hit, Draw, Punch}, Sequence{16, 16, 16, 16, 16, 16, 13, 7}, Sequence{-3, -15, 2}},
		{"two punches then hit", 75, []Move{Punch, Punch, Hit}, Sequence{16, 16, 16, 13, 13}, Sequence{2, 2, -3}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			sol, ok := SolveBest(tc.target, tc.required)
			if !ok {
				t.Fatalf("SolveBest(%d, %v): no solution", tc.target, tc.required)
			}
			if diff := cmp.Diff(tc.prefix, sol.Prefix); diff != "" {
				t.Errorf("prefix mismatch (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(tc.suffix, sol.Suffix); diff != "" {
				t.Errorf("suffix mismatch (-want +got):\n%s", diff)
			}
			full := sol.Sequence()
			if full.Sum() != tc.target {
				t.Errorf("solution sums to %d", full.Sum())
			}
			if !full.InBounds() {
				t.Errorf("solution %v leaves the gauge", full)
			}
			if len(tc.required) > 0 {
				if diff := cmp.Diff(tc.required, sol.Suffix.Moves()); diff != "" {
					t.Errorf("suffix categories mismatch (-want +got):\n%s", diff)
				}
			}
		})
	}
}

func TestSolveBest_NoSolution(t *testing.T) {
	cases := []struct {
		name     string
		target   int
		required []Move
	}{
		{"unreachable", 1000, nil},
		{"negative", -1, nil},
		{"above gauge", 150, nil},
		{"suffix exceeds gauge", 148, []Move{Shrink, Hit}},
		{"suffix needs negative prefix", 10, []Move{Shrink, Shrink, Shrink}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if sol, ok := SolveBest(tc.target, tc.required); ok {
				t.Fatalf("expected no solution, got %v", sol.Sequence())
			}
		})
	}
}

func TestSolveBest_EmptyRequiredMatchesSolveMinimal(t *testing.T) {
	for target := -3; target <= MaxGauge+3; target++ {
		want, wantOK := SolveMinimal(target, MaxStepCount)
		sol, ok := SolveBest(target, nil)
		if ok != wantOK {
			t.Fatalf("target %d: SolveBest found=%v, SolveMinimal found=%v", target, ok, wantOK)
		}
		if !ok {
			continue
		}
		if diff := cmp.Diff(want, sol.Prefix); diff != "" {
			t.Fatalf("target %d mismatch (-want +got):\n%s", target, diff)
		}
		if len(sol.Suffix) != 0 {
			t.Fatalf("target %d: expected empty suffix, got %v", target, sol.Suffix)
		}
	}
}

func TestSolveBest_Idempotent(t *testing.T) {
	required := []Move{Hit, Bend}
	a, okA := SolveBest(88, required)
	b, okB := SolveBest(88, required)
	if okA != okB {
		t.Fatalf("found flag differs between runs")
	}
	if diff := cmp.Diff(a, b); diff != "" {
		t.Errorf("results differ between runs:\n%s", diff)
	}
}

func TestSolveBest_EveryGaugeWithSuffixStaysInBounds(t *testing.T) {
	required := []Move{Hit, Punch}
	for target := MinGauge; target <= MaxGauge; target++ {
		sol, ok := SolveBest(target, required)
		if !ok {
			continue
		}
		full := sol.Sequence()
		if !full.InBounds() || full.Sum() != target {
			t.Fatalf("target %d: invalid solution %v", target, full)
		}
		if sol.Len() > MaxStepCount {
			t.Fatalf("target %d: %d moves exceeds the ceiling", target, sol.Len())
		}
	}
}

func TestEnumeration_CandidateOrder(t *testing.T) {
	var seen []Sequence
	e := enumeration{target: 40, required: []Move{Hit, Hit}}
	e.onCandidate = func(suffix, _ Sequence, _ bool) {
		seen = append(seen, append(Sequence{}, suffix...))
	}
	e.run()

	want := []Sequence{
		{-3, -3}, {-3, -6}, {-3, -9},
		{-6, -3}, {-6, -6}, {-6, -9},
		{-9, -3}, {-9, -6}, {-9, -9},
	}
	if diff := cmp.Diff(want, seen); diff != "" {
		t.Errorf("candidate order mismatch (-want +got):\n%s", diff)
	}
	if e.candidates != len(want) {
		t.Errorf("expected %d candidates, got %d", len(want), e.candidates)
	}
}
