package cohort

import (
	"sort"

	"github.com/sverzijl/planning-latest-sub008/pkg/domain"
	"github.com/sverzijl/planning-latest-sub008/pkg/network"
)

// stateKey is the (node, state) pair the offset search relaxes over.
type stateKey struct {
	node  domain.NodeID
	state domain.CohortState
}

// OffsetTable gives the minimum number of elapsed calendar days from a
// cohort's production date to the earliest date it can be present, in a
// given state, at a given node. It is the per-(node,state) sibling of
// network.Reachability, computed the same Dijkstra-shaped way but tracked
// per arrival state rather than per node, and using whole-day per-leg
// offsets (network.CeilDays) since cohorts live on a daily grid.
//
// A thawed arrival resets the elapsed-day clock to zero for any further hop
// out of that node, so the search relaxes onward edges from a thawed state
// starting at offset 0 rather than continuing to accumulate from
// production.
type OffsetTable map[stateKey]int

// Lookup returns the offset for (node, state) and whether it is reachable.
func (t OffsetTable) Lookup(node domain.NodeID, state domain.CohortState) (int, bool) {
	d, ok := t[stateKey{node, state}]
	return d, ok
}

// ComputeOffsets runs the search seeded at every manufacturing node in its
// production state (ambient, offset 0).
func ComputeOffsets(idx *network.Index) OffsetTable {
	dist := make(OffsetTable)
	for _, mfgID := range idx.ManufacturingNodes {
		dist[stateKey{mfgID, domain.StateAmbient}] = 0
	}

	visited := make(map[stateKey]bool)
	for {
		frontier, frontierDist, ok := nextOffsetFrontier(dist, visited)
		if !ok {
			break
		}
		visited[frontier] = true

		base := frontierDist
		if frontier.state == domain.StateThawed {
			base = 0
		}

		for _, route := range idx.RoutesFromOrigin(frontier.node) {
			destNode, ok := idx.Node(route.DestinationNodeID)
			if !ok {
				continue
			}
			arrivalState := route.ArrivalState(destNode.Capabilities.StorageMode)
			candidate := base + network.CeilDays(route.TransitDays)

			key := stateKey{route.DestinationNodeID, arrivalState}
			existing, known := dist[key]
			if !known || candidate < existing {
				dist[key] = candidate
			}
		}
	}

	return dist
}

func nextOffsetFrontier(dist OffsetTable, visited map[stateKey]bool) (stateKey, int, bool) {
	type candidate struct {
		key stateKey
		d   int
	}
	var candidates []candidate
	for key, d := range dist {
		if visited[key] {
			continue
		}
		candidates = append(candidates, candidate{key, d})
	}
	if len(candidates) == 0 {
		return stateKey{}, 0, false
	}
	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].d != candidates[j].d {
			return candidates[i].d < candidates[j].d
		}
		if candidates[i].key.node != candidates[j].key.node {
			return candidates[i].key.node < candidates[j].key.node
		}
		return candidates[i].key.state < candidates[j].key.state
	})
	best := candidates[0]
	return best.key, best.d, true
}
