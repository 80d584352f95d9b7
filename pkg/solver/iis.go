package solver

import "github.com/sverzijl/planning-latest-sub008/pkg/algebra"

// FindIIS performs a best-effort irreducible-infeasible-set search over
// problem's constraints. It runs the classic deletion-filter algorithm
// against the LP relaxation: drop one constraint at a time and recheck
// feasibility with solveLP; a constraint whose removal restores
// feasibility is necessary and stays in the reported set, a constraint
// whose removal leaves the rest still infeasible is redundant to the
// infeasibility and is dropped permanently.
//
// This only checks LP feasibility, ignoring integrality, so the reported
// set may be a superset of the true MILP-level IIS: good enough for
// pointing a human at the right handful of constraints, not a certificate.
func FindIIS(problem *algebra.Problem) []string {
	rows, _ := buildBaseRows(problem)
	names := make([]string, len(problem.Constraints))
	for i, c := range problem.Constraints {
		names[i] = c.Name
	}
	// buildBaseRows appends variable-upper-bound rows after the named
	// constraint rows; those are never candidates for removal since they
	// aren't user-facing constraints.
	numConstraintRows := len(problem.Constraints)
	boundRows := rows[numConstraintRows:]
	zeroCost := make([]float64, len(problem.Vars))

	active := make([]int, numConstraintRows)
	for i := range active {
		active[i] = i
	}

	for idx := 0; idx < len(active); {
		trial := make([]lpRow, 0, len(active)-1+len(boundRows))
		for j, r := range active {
			if j == idx {
				continue
			}
			trial = append(trial, rows[r])
		}
		trial = append(trial, boundRows...)

		result := solveLP(len(problem.Vars), trial, zeroCost)
		if result.feasible {
			// removing active[idx] restored feasibility: it's necessary.
			idx++
			continue
		}
		// still infeasible without it: it's redundant to the IIS.
		active = append(active[:idx], active[idx+1:]...)
	}

	out := make([]string, 0, len(active))
	for _, r := range active {
		out = append(out, names[r])
	}
	return out
}
