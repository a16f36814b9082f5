package anvil

import (
	"context"
	"fmt"
)

// ExampleSolveBest finds a plan for gauge value 5 that must end with a punch.
func ExampleSolveBest() {
	sol, ok := SolveBest(5, []Move{Punch})
	fmt.Println(Report(5, sol, ok))
	fmt.Println(sol.Suffix.Moves())
	// Output:
	// Best solution for 5 with length 4:
	// +16 +2 -15 +2
	// [punch]
}

// ExampleSolveMinimal shows that runs of the same delta are collapsed.
func ExampleSolveMinimal() {
	seq, _ := SolveMinimal(MaxGauge, MaxStepCount)
	fmt.Println(len(seq), seq)
	// Output:
	// 11 +16*8 +7*3
}

// ExampleSolveTable solves several targets concurrently.
func ExampleSolveTable() {
	results, err := SolveTable(context.Background(), []int{0, 1, 2, 1000}, nil, 2)
	if err != nil {
		fmt.Println(err)
		return
	}
	for _, r := range results {
		fmt.Printf("%d: %v %q\n", r.Target, r.Found, r.Solution.Sequence().String())
	}
	// Output:
	// 0: true ""
	// 1: true "+16 -15"
	// 2: true "+2"
	// 1000: false ""
}
