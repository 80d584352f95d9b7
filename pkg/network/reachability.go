package network

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/sverzijl/planning-latest-sub008/pkg/domain"
)

// Reachability answers "how soon, and in what state, can a cohort born at a
// manufacturing node reach every other node": the question the sparse
// cohort index (pkg/cohort) needs to bound its enumeration, and that
// NetworkInfeasibilityError needs to report unreachable demand nodes or
// transit-exceeds-shelf-life combinations.
//
// The traversal accumulates transit days from every manufacturing node
// outward and wants the *shortest* path (earliest arrival), so it runs
// Dijkstra-shaped rather than a longest-path walk.
type Reachability struct {
	// EarliestArrivalDays is the minimum cumulative transit time, in days,
	// from any manufacturing node to this node. A node absent from this map
	// is unreachable.
	EarliestArrivalDays map[domain.NodeID]decimal.Decimal

	// StatesAtNode lists every cohort state that can arrive at a node from
	// any single-hop-or-longer path (a node can receive both ambient and
	// frozen shipments from different legs).
	StatesAtNode map[domain.NodeID]map[domain.CohortState]bool
}

// IsReachable reports whether any manufacturing node can reach id.
func (r *Reachability) IsReachable(id domain.NodeID) bool {
	_, ok := r.EarliestArrivalDays[id]
	return ok
}

// Compute runs the earliest-arrival analysis over idx, starting cohorts at
// every manufacturing node with zero elapsed transit time in the node's
// own production state (ambient, per Node.ProductionState).
func Compute(idx *Index) *Reachability {
	r := &Reachability{
		EarliestArrivalDays: make(map[domain.NodeID]decimal.Decimal),
		StatesAtNode:        make(map[domain.NodeID]map[domain.CohortState]bool),
	}

	for _, mfgID := range idx.ManufacturingNodes {
		r.EarliestArrivalDays[mfgID] = decimal.Zero
		r.markState(mfgID, domain.StateAmbient)
	}

	// Classic Dijkstra over a small graph: repeatedly relax the frontier
	// node with the smallest known arrival time. V is the node count, which
	// for this domain (single site, one hub tier, breadroom leaves) is
	// small enough that an O(V^2) selection loop is simpler and just as
	// fast in practice as a heap.
	visited := make(map[domain.NodeID]bool)
	for {
		frontier, frontierTime, ok := r.nextFrontier(visited)
		if !ok {
			break
		}
		visited[frontier] = true

		node, exists := idx.Node(frontier)
		if !exists {
			continue
		}

		for _, route := range idx.RoutesFromOrigin(frontier) {
			destNode, ok := idx.Node(route.DestinationNodeID)
			if !ok {
				continue
			}
			arrivalState := route.ArrivalState(destNode.Capabilities.StorageMode)
			candidate := frontierTime.Add(route.TransitDays)

			existing, known := r.EarliestArrivalDays[route.DestinationNodeID]
			if !known || candidate.LessThan(existing) {
				r.EarliestArrivalDays[route.DestinationNodeID] = candidate
			}
			r.markState(route.DestinationNodeID, arrivalState)
			_ = node
		}
	}

	return r
}

// CeilDays rounds a (possibly half-integer) transit-day figure up to a
// whole number of calendar days. Inventory cohorts are tracked at daily
// granularity, so a leg with transit_days=0.5 is modeled as delivering on
// the next calendar date rather than splitting the day: the resolved,
// documented convention for an otherwise ambiguous sub-day case (see
// DESIGN.md).
func CeilDays(d decimal.Decimal) int {
	if d.IsZero() {
		return 0
	}
	whole := d.Truncate(0)
	if d.Equal(whole) {
		return int(whole.IntPart())
	}
	return int(whole.IntPart()) + 1
}

func (r *Reachability) markState(id domain.NodeID, s domain.CohortState) {
	set, ok := r.StatesAtNode[id]
	if !ok {
		set = make(map[domain.CohortState]bool)
		r.StatesAtNode[id] = set
	}
	set[s] = true
}

// nextFrontier returns the unvisited node with the smallest known earliest
// arrival time, for deterministic tie-breaking sorted by node ID.
func (r *Reachability) nextFrontier(visited map[domain.NodeID]bool) (domain.NodeID, decimal.Decimal, bool) {
	type candidate struct {
		id   domain.NodeID
		time decimal.Decimal
	}
	var candidates []candidate
	for id, t := range r.EarliestArrivalDays {
		if visited[id] {
			continue
		}
		candidates = append(candidates, candidate{id, t})
	}
	if len(candidates) == 0 {
		return "", decimal.Zero, false
	}
	sort.Slice(candidates, func(i, j int) bool {
		if !candidates[i].time.Equal(candidates[j].time) {
			return candidates[i].time.LessThan(candidates[j].time)
		}
		return candidates[i].id < candidates[j].id
	})
	best := candidates[0]
	return best.id, best.time, true
}
