package solver

import (
	"time"

	"github.com/sverzijl/planning-latest-sub008/pkg/algebra"
)

// Config configures one solve invocation.
type Config struct {
	TimeLimit time.Duration
	MIPGap    float64 // default 0.01, relaxed to 0.05 for production use

	// WarmStart holds a prior solution's variable values. The built-in
	// branch-and-bound does not read it: every search starts from the root
	// LP relaxation with no incumbent.
	WarmStart map[algebra.VarID]float64
}

// DefaultConfig returns the documented solver defaults.
func DefaultConfig() Config {
	return Config{TimeLimit: 60 * time.Second, MIPGap: 0.01}
}

// Relaxed returns a copy of cfg with the production-use relaxed gap (0.05).
func (c Config) Relaxed() Config {
	c.MIPGap = 0.05
	return c
}

// Solution is the outcome of a solve attempt.
type Solution struct {
	Status         Status
	Values         map[algebra.VarID]float64
	ObjectiveValue float64
	Gap            float64
	IIS            []string // constraint names implicated in infeasibility, best-effort
}

// Value returns the solved value for v, or 0 if unknown.
func (s *Solution) Value(v algebra.VarID) float64 {
	if s == nil {
		return 0
	}
	return s.Values[v]
}

// Solver is the interface pkg/model's output is handed to. A second solver
// backend (e.g. a commercial MILP engine) implements this interface without
// any change to pkg/model or pkg/algebra.
type Solver interface {
	Solve(problem *algebra.Problem, cfg Config) (*Solution, error)
}
