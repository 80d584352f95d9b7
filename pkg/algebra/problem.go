package algebra

import "fmt"

// Direction is the objective's optimization sense.
type Direction int

const (
	Minimize Direction = iota
	Maximize
)

// Problem is the solver-agnostic MILP the model builder assembles and the
// solver adapter consumes. It owns variable and constraint storage; callers
// hold onto the VarID returned by NewVar rather than a pointer, storing
// entries in a slice and handing out indices rather than pointers.
type Problem struct {
	Vars        []VarRef
	Constraints []Constraint
	Objective   *LinExpr
	Direction   Direction

	names map[string]VarID
}

// NewProblem returns an empty minimization problem.
func NewProblem() *Problem {
	return &Problem{
		Objective: NewExpr(),
		names:     make(map[string]VarID),
	}
}

// NewVar declares a variable and returns its ID. name must be unique within
// the problem: it is the handle used for IIS reports and warm-start
// seeding.
func (p *Problem) NewVar(name string, kind VarKind, lower, upper float64) (VarID, error) {
	if _, exists := p.names[name]; exists {
		return 0, fmt.Errorf("algebra: duplicate variable name %q", name)
	}
	id := VarID(len(p.Vars))
	p.Vars = append(p.Vars, VarRef{ID: id, Name: name, Kind: kind, Lower: lower, Upper: upper})
	p.names[name] = id
	return id, nil
}

// VarByName looks up a previously declared variable, for callers that build
// constraints across packages and only have the name (e.g. warm-start
// seeding from a prior solve's solution map).
func (p *Problem) VarByName(name string) (VarID, bool) {
	id, ok := p.names[name]
	return id, ok
}

// AddConstraint appends c to the problem.
func (p *Problem) AddConstraint(c Constraint) {
	p.Constraints = append(p.Constraints, c)
}

// SetObjective replaces the objective expression and direction.
func (p *Problem) SetObjective(e *LinExpr, dir Direction) {
	p.Objective = e
	p.Direction = dir
}

// NumVars and NumConstraints report problem size, used for the diagnostics
// endpoint and solve-event logging (pkg/events).
func (p *Problem) NumVars() int        { return len(p.Vars) }
func (p *Problem) NumConstraints() int { return len(p.Constraints) }
