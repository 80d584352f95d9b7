package main

import (
	"testing"

	"github.com/sverzijl/planning-latest-sub008/pkg/planner"
	"github.com/sverzijl/planning-latest-sub008/pkg/solver"
)

func TestExitCodeForError(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"input validation", &planner.InputValidationError{Issues: []string{"bad"}}, 4},
		{"network infeasibility", &planner.NetworkInfeasibilityError{UnreachableNodes: []string{"X"}}, 4},
		{"infeasible", &planner.InfeasibleError{}, 3},
		{"time limit", &planner.TimeLimitWithoutSolutionError{}, 2},
		{"solver error", &planner.SolverError{}, 5},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := exitCodeForError(c.err); got != c.want {
				t.Errorf("exitCodeForError(%v) = %d, want %d", c.err, got, c.want)
			}
		})
	}
}

func TestExitCodeForStatus(t *testing.T) {
	if got := exitCodeForStatus(solver.Optimal); got != 0 {
		t.Errorf("Optimal = %d, want 0", got)
	}
	if got := exitCodeForStatus(solver.FeasibleWithGap); got != 1 {
		t.Errorf("FeasibleWithGap = %d, want 1", got)
	}
}
