package solver

import (
	"math"
	"time"

	"github.com/sverzijl/planning-latest-sub008/pkg/algebra"
)

// bound overrides the box constraint on one variable for a branch-and-bound
// node, tightening whatever algebra.VarRef already declared.
type bound struct {
	lower, upper float64
}

// node is one branch-and-bound subproblem: the root problem plus a set of
// tightened variable bounds accumulated from branching decisions.
type node struct {
	overrides map[algebra.VarID]bound
}

// solveMILP runs branch-and-bound over problem's LP relaxation (solveLP),
// branching on the most-fractional integer/binary variable at each node:
// simple, and adequate at the scale this planner's problems reach.
func solveMILP(problem *algebra.Problem, cfg Config) *Solution {
	deadline := time.Now().Add(cfg.TimeLimit)
	rows, cost := buildBaseRows(problem)
	intVars := integerVarIndices(problem)

	var best *Solution
	bestObj := math.Inf(1)

	stack := []node{{overrides: map[algebra.VarID]bound{}}}
	timedOut := false

	for len(stack) > 0 {
		if time.Now().After(deadline) {
			timedOut = true
			break
		}
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		result := solveNode(problem, rows, cost, n.overrides)
		if !result.feasible || result.unbounded {
			continue
		}
		if result.objective >= bestObj-simplexEpsilon && best != nil {
			continue // this branch cannot improve on the incumbent
		}

		fracVar, fracVal, isFractional := mostFractional(result.x, intVars)
		if !isFractional {
			if result.objective < bestObj {
				bestObj = result.objective
				best = &Solution{
					Status:         Optimal,
					Values:         toVarMap(result.x),
					ObjectiveValue: result.objective,
				}
			}
			continue
		}

		current, ok := n.overrides[fracVar]
		if !ok {
			current = bound{lower: problem.Vars[fracVar].Lower, upper: problem.Vars[fracVar].Upper}
		}
		ceilOverrides := cloneOverrides(n.overrides)
		ceilOverrides[fracVar] = bound{lower: math.Ceil(fracVal), upper: current.upper}
		floorOverrides := cloneOverrides(n.overrides)
		floorOverrides[fracVar] = bound{lower: current.lower, upper: math.Floor(fracVal)}

		stack = append(stack, node{overrides: ceilOverrides}, node{overrides: floorOverrides})
	}

	if best == nil {
		if timedOut {
			return &Solution{Status: TimeLimitWithoutSolution}
		}
		return &Solution{Status: Infeasible}
	}
	if timedOut {
		best.Status = FeasibleWithGap
		best.Gap = cfg.MIPGap
	}
	return best
}

func cloneOverrides(m map[algebra.VarID]bound) map[algebra.VarID]bound {
	out := make(map[algebra.VarID]bound, len(m)+1)
	for k, v := range m {
		out[k] = v
	}
	return out
}

func toVarMap(x []float64) map[algebra.VarID]float64 {
	out := make(map[algebra.VarID]float64, len(x))
	for i, v := range x {
		out[algebra.VarID(i)] = v
	}
	return out
}

func integerVarIndices(problem *algebra.Problem) []algebra.VarID {
	var out []algebra.VarID
	for _, v := range problem.Vars {
		if v.Kind == algebra.Integer || v.Kind == algebra.Binary {
			out = append(out, v.ID)
		}
	}
	return out
}

// mostFractional returns the integer/binary variable furthest from an
// integral value, for branching.
func mostFractional(x []float64, intVars []algebra.VarID) (algebra.VarID, float64, bool) {
	var best algebra.VarID
	bestDist := simplexEpsilon
	found := false
	for _, v := range intVars {
		val := x[v]
		frac := val - math.Floor(val)
		dist := math.Min(frac, 1-frac)
		if dist > bestDist {
			bestDist = dist
			best = v
			found = true
		}
	}
	return best, x[best], found
}

// solveNode solves the LP relaxation for one branch-and-bound node, with
// per-variable bound overrides folded in as extra rows.
func solveNode(problem *algebra.Problem, rows []lpRow, cost []float64, overrides map[algebra.VarID]bound) lpResult {
	if len(overrides) == 0 {
		return solveLP(len(problem.Vars), rows, cost)
	}
	extra := append([]lpRow(nil), rows...)
	for v, b := range overrides {
		coeffs := make([]float64, len(problem.Vars))
		coeffs[v] = 1
		extra = append(extra, lpRow{coeffs: coeffs, sense: rowLessEq, rhs: b.upper})
		if b.lower > 0 {
			lowCoeffs := make([]float64, len(problem.Vars))
			lowCoeffs[v] = 1
			extra = append(extra, lpRow{coeffs: lowCoeffs, sense: rowGreaterEq, rhs: b.lower})
		}
	}
	return solveLP(len(problem.Vars), extra, cost)
}

// buildBaseRows converts problem's constraints and variable upper bounds
// into the dense-row form solveLP expects.
func buildBaseRows(problem *algebra.Problem) ([]lpRow, []float64) {
	n := len(problem.Vars)
	rows := make([]lpRow, 0, len(problem.Constraints)+n)

	for _, c := range problem.Constraints {
		coeffs := make([]float64, n)
		for _, t := range c.Expr.Terms {
			coeffs[t.Var] += t.Coef
		}
		rhs := c.RHS - c.Expr.Constant
		var sense rowSense
		switch c.Sense {
		case algebra.LessEq:
			sense = rowLessEq
		case algebra.GreaterEq:
			sense = rowGreaterEq
		default:
			sense = rowEqual
		}
		rows = append(rows, lpRow{coeffs: coeffs, sense: sense, rhs: rhs})
	}

	for _, v := range problem.Vars {
		if v.Upper <= 0 {
			continue
		}
		coeffs := make([]float64, n)
		coeffs[v.ID] = 1
		rows = append(rows, lpRow{coeffs: coeffs, sense: rowLessEq, rhs: v.Upper})
	}

	cost := make([]float64, n)
	for _, t := range problem.Objective.Terms {
		cost[t.Var] += t.Coef
	}
	if problem.Direction == algebra.Maximize {
		for i := range cost {
			cost[i] = -cost[i]
		}
	}
	return rows, cost
}
