package domain

import "fmt"

// InputValidator performs structural validation over raw planning inputs
// before any index is built: a standalone checker returning an accumulated
// result rather than failing on the first error, so a caller can report
// every problem in one pass.
type InputValidator struct{}

// NewInputValidator constructs a validator.
func NewInputValidator() *InputValidator { return &InputValidator{} }

// ValidationResult accumulates every structural problem found.
type ValidationResult struct {
	Errors   []string
	Warnings []string
}

// OK reports whether no fatal errors were found. Warnings do not affect OK.
func (r *ValidationResult) OK() bool { return len(r.Errors) == 0 }

func (r *ValidationResult) addError(format string, args ...any) {
	r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
}

func (r *ValidationResult) addWarning(format string, args ...any) {
	r.Warnings = append(r.Warnings, fmt.Sprintf(format, args...))
}

// Validate checks structural invariants across the whole
// input set: node/route/truck/labor self-consistency, route endpoint
// existence, and negative-quantity forecast entries. It does not check
// network reachability or shelf-life-vs-transit feasibility: that is
// pkg/network's NetworkInfeasibilityError territory, since it requires the
// routing graph, not just the raw lists.
func (v *InputValidator) Validate(in PlanningInputs) *ValidationResult {
	result := &ValidationResult{}

	nodeSet := make(map[NodeID]Node, len(in.Nodes))
	for _, n := range in.Nodes {
		if err := n.Validate(); err != nil {
			result.addError("%v", err)
			continue
		}
		if _, dup := nodeSet[n.ID]; dup {
			result.addError("duplicate node id %q", n.ID)
			continue
		}
		nodeSet[n.ID] = n
	}

	for _, r := range in.Routes {
		if err := r.Validate(); err != nil {
			result.addError("%v", err)
			continue
		}
		if _, ok := nodeSet[r.OriginNodeID]; !ok {
			result.addError("route %s: unknown origin node %q", r.ID(), r.OriginNodeID)
		}
		if _, ok := nodeSet[r.DestinationNodeID]; !ok {
			result.addError("route %s: unknown destination node %q", r.ID(), r.DestinationNodeID)
		}
	}

	for _, t := range in.TruckSchedules {
		if err := t.Validate(); err != nil {
			result.addError("%v", err)
			continue
		}
		if _, ok := nodeSet[t.OriginNodeID]; !ok {
			result.addError("truck %s: unknown origin node %q", t.ID, t.OriginNodeID)
		}
		if _, ok := nodeSet[t.DestinationNodeID]; !ok {
			result.addError("truck %s: unknown destination node %q", t.ID, t.DestinationNodeID)
		}
	}

	for _, d := range in.LaborDays {
		if err := d.Validate(); err != nil {
			result.addError("%v", err)
		}
	}

	for _, f := range in.Forecast {
		if err := f.Validate(); err != nil {
			result.addError("%v", err)
			continue
		}
		if _, ok := nodeSet[f.LocationID]; !ok {
			result.addError("forecast entry for unknown location %q", f.LocationID)
			continue
		}
		if n := nodeSet[f.LocationID]; !n.Capabilities.HasDemand {
			result.addWarning("forecast entry at %q on a node without has_demand=true", f.LocationID)
		}
	}

	if len(in.LaborDays) == 0 {
		result.addWarning("labor calendar is empty; all production dates will use zero-capacity defaults")
	}

	return result
}
