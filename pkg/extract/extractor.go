package extract

import (
	"fmt"
	"math"
	"strings"

	"github.com/sverzijl/planning-latest-sub008/pkg/algebra"
	"github.com/sverzijl/planning-latest-sub008/pkg/model"
	"github.com/sverzijl/planning-latest-sub008/pkg/solver"
)

// Extractor turns a solved Problem into a Result. It holds the three
// collaborators a solve produces: the Builder that declared every
// variable, the Problem those variables live in, and the Solution the
// solver returned. The same "hold every collaborator, run a fixed
// sequence of passes" shape pkg/model.Builder itself uses.
type Extractor struct {
	builder  *model.Builder
	problem  *algebra.Problem
	solution *solver.Solution
}

// New constructs an Extractor over a completed solve.
func New(builder *model.Builder, problem *algebra.Problem, solution *solver.Solution) *Extractor {
	return &Extractor{builder: builder, problem: problem, solution: solution}
}

// Extract runs the full materialization pipeline and returns the Result.
// Callers should only call this for a solve whose Solution.Status.IsSuccess()
// is true; an infeasible or errored solve has no realized values to extract.
func (e *Extractor) Extract() (*Result, error) {
	if e.solution == nil || !e.solution.Status.IsSuccess() {
		return nil, fmt.Errorf("extract: solution is not a success status (%v)", statusOf(e.solution))
	}

	batches := e.extractBatches()
	shipments := e.extractShipments(batches)
	cohortInventory := e.extractCohortInventory()
	costs := e.extractCosts()

	packagingIssues, packagingOK := e.validatePackaging(batches)
	balanceIssues, balanceOK := e.validateMassBalance()

	issues := make([]string, 0, len(packagingIssues)+len(balanceIssues))
	issues = append(issues, packagingIssues...)
	issues = append(issues, balanceIssues...)

	return &Result{
		Batches:         batches,
		Shipments:       shipments,
		CohortInventory: cohortInventory,
		CostBreakdown:   costs,
		Validation: ValidationReport{
			PackagingOK:   packagingOK,
			MassBalanceOK: balanceOK,
			Issues:        issues,
		},
	}, nil
}

func statusOf(s *solver.Solution) solver.Status {
	if s == nil {
		return solver.Infeasible
	}
	return s.Status
}

// validateMassBalance re-checks every balance.* constraint in the problem
// against the solved values, within 1e-6 of units. A failure here means
// the solver returned a solution outside its own declared tolerance, not
// that the model omitted a term.
func (e *Extractor) validateMassBalance() ([]string, bool) {
	var issues []string
	ok := true
	for _, c := range e.problem.Constraints {
		if !strings.HasPrefix(c.Name, "balance.") {
			continue
		}
		lhs := c.Expr.Constant
		for _, t := range c.Expr.Terms {
			lhs += t.Coef * e.solution.Value(t.Var)
		}
		diff := lhs - c.RHS
		if c.Sense == algebra.Equal && math.Abs(diff) > 1e-6 {
			issues = append(issues, fmt.Sprintf("mass balance violated at %s: lhs=%.6f rhs=%.6f", c.Name, lhs, c.RHS))
			ok = false
		}
	}
	return issues, ok
}
