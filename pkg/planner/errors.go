package planner

import "fmt"

// InputValidationError wraps a structural problem in the raw planning
// inputs: missing/invalid fields, labor calendar gaps,
// unreachable demand nodes, negative quantities. Fatal before solve.
type InputValidationError struct {
	Issues []string
}

func (e *InputValidationError) Error() string {
	return fmt.Sprintf("input validation failed with %d issue(s): %v", len(e.Issues), e.Issues)
}

// NetworkInfeasibilityError reports a demand node with no route path
// reachable within any cohort state's shelf life. Fatal before solve.
type NetworkInfeasibilityError struct {
	UnreachableNodes []string
}

func (e *NetworkInfeasibilityError) Error() string {
	return fmt.Sprintf("network infeasible: %d demand node(s) unreachable within shelf life: %v",
		len(e.UnreachableNodes), e.UnreachableNodes)
}

// ModelBuildError indicates a programming defect: a constraint referring
// to a variable outside the sparse cohort set, or similarly inconsistent
// index sets.
type ModelBuildError struct {
	Cause error
}

func (e *ModelBuildError) Error() string { return fmt.Sprintf("model build error: %v", e.Cause) }
func (e *ModelBuildError) Unwrap() error { return e.Cause }

// SolverError wraps a solver-level failure not attributable to the
// problem's feasibility (solver unavailable, internal failure). Fatal for
// this invocation; the caller may retry with a different solver.
type SolverError struct {
	Cause error
}

func (e *SolverError) Error() string { return fmt.Sprintf("solver error: %v", e.Cause) }
func (e *SolverError) Unwrap() error { return e.Cause }

// InfeasibleError reports a proven-infeasible termination, carrying the
// best-effort IIS (pkg/solver.FindIIS) when the solver produced one.
type InfeasibleError struct {
	IIS []string
}

func (e *InfeasibleError) Error() string {
	if len(e.IIS) == 0 {
		return "problem is infeasible"
	}
	return fmt.Sprintf("problem is infeasible; implicated constraints: %v", e.IIS)
}

// TimeLimitWithoutSolutionError reports a solve that exhausted its time
// limit without finding any feasible solution. The caller decides whether
// to retry with a relaxed gap or a shorter horizon; pkg/solver's Adapter
// already retries once at a relaxed gap before this error ever reaches
// here.
type TimeLimitWithoutSolutionError struct{}

func (e *TimeLimitWithoutSolutionError) Error() string {
	return "time limit reached without a feasible solution"
}

// Warning is a non-fatal condition attached to a successful PlanResult
// rather than returned as an error:
// missing labor calendar coverage, missing holding-cost rates, forecast
// entries outside the horizon.
type Warning struct {
	Message string
}

func (w Warning) String() string { return w.Message }
