package solver

import (
	"fmt"

	retry "github.com/avast/retry-go"
	"go.uber.org/zap"

	"github.com/sverzijl/planning-latest-sub008/pkg/algebra"
	"github.com/sverzijl/planning-latest-sub008/pkg/events"
)

// Adapter is the built-in Solver implementation: the pure-Go simplex/B&B
// engine in this package, wrapped with retry-on-relaxed-gap behavior
// (mip_gap default 0.01, relaxed to 0.05 for production use) and
// solve-event emission.
type Adapter struct {
	Log      *zap.Logger
	Recorder *events.Recorder
}

// NewAdapter builds an Adapter. Either field may be left nil.
func NewAdapter(log *zap.Logger, recorder *events.Recorder) *Adapter {
	return &Adapter{Log: log, Recorder: recorder}
}

// Solve runs the MILP solve, retrying once at a relaxed gap if the first attempt times out without a solution. avast/retry-go
// drives the retry loop, since that's a concern its pack already
// wires an ecosystem library for elsewhere (network calls); a solve retry
// is the same "try, back off, try again with different parameters" shape.
func (a *Adapter) Solve(problem *algebra.Problem, cfg Config) (*Solution, error) {
	a.emit("solve.start", map[string]any{"vars": problem.NumVars(), "constraints": problem.NumConstraints()})

	var sol *Solution
	attempt := 0
	err := retry.Do(
		func() error {
			attempt++
			c := cfg
			if attempt > 1 {
				c = cfg.Relaxed()
			}
			sol = solveMILP(problem, c)
			if sol.Status == TimeLimitWithoutSolution {
				return fmt.Errorf("solver: time limit reached without a feasible solution")
			}
			return nil
		},
		retry.Attempts(2),
		retry.LastErrorOnly(true),
	)

	if sol == nil {
		return nil, err
	}

	if sol.Status == Infeasible {
		sol.IIS = FindIIS(problem)
		a.emit("solve.infeasible", map[string]any{"iis_size": len(sol.IIS)})
		return sol, nil
	}

	a.emit("solve.finished", map[string]any{"status": sol.Status.String(), "objective": sol.ObjectiveValue, "attempts": attempt})
	return sol, nil
}

func (a *Adapter) emit(eventType string, data map[string]any) {
	if a.Recorder != nil {
		a.Recorder.Emit(eventType, "solve", data)
	}
}
