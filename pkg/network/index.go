// Package network implements the network preprocessor: it
// classifies nodes, enumerates routing legs, derives per-leg arrival state,
// and builds the reverse indices the sparse cohort index and model builder
// iterate over. The index layout (parallel slices plus map-of-indices)
// stores routes and trucks in a flat slice and indexes them by
// origin/destination node.
package network

import (
	"fmt"
	"sort"

	"github.com/samber/lo"

	"github.com/sverzijl/planning-latest-sub008/pkg/domain"
)

// Index holds every derived set and reverse-index the rest of the pipeline
// needs.
type Index struct {
	nodes map[domain.NodeID]domain.Node

	ManufacturingNodes []domain.NodeID
	DemandNodes        []domain.NodeID
	FrozenStorageNodes []domain.NodeID
	AmbientStorageNodes []domain.NodeID
	HubNodes           []domain.NodeID

	routes           []domain.Route
	routesByOrigin   map[domain.NodeID][]int // indices into routes
	routesByDestination map[domain.NodeID][]int

	trucks            []domain.TruckSchedule
	trucksByODPair    map[odKey][]int // indices into trucks, keyed by (origin,destination)
}

type odKey struct {
	origin domain.NodeID
	dest   domain.NodeID
}

// Node returns the node record for id, and whether it exists.
func (idx *Index) Node(id domain.NodeID) (domain.Node, bool) {
	n, ok := idx.nodes[id]
	return n, ok
}

// RoutesFromOrigin returns every leg departing origin, in input order.
func (idx *Index) RoutesFromOrigin(origin domain.NodeID) []domain.Route {
	return lo.Map(idx.routesByOrigin[origin], func(i int, _ int) domain.Route { return idx.routes[i] })
}

// RoutesToDestination returns every leg arriving at dest, in input order.
func (idx *Index) RoutesToDestination(dest domain.NodeID) []domain.Route {
	return lo.Map(idx.routesByDestination[dest], func(i int, _ int) domain.Route { return idx.routes[i] })
}

// AllRoutes returns every leg in the network, in input order.
func (idx *Index) AllRoutes() []domain.Route { return idx.routes }

// TrucksForLeg returns every truck schedule serving the (origin,
// destination) pair, regardless of active day.
func (idx *Index) TrucksForLeg(origin, dest domain.NodeID) []domain.TruckSchedule {
	return lo.Map(idx.trucksByODPair[odKey{origin, dest}], func(i int, _ int) domain.TruckSchedule { return idx.trucks[i] })
}

// AllTrucks returns every configured truck schedule.
func (idx *Index) AllTrucks() []domain.TruckSchedule { return idx.trucks }

// Build constructs an Index from raw planning inputs. It does not validate
// structural invariants (pkg/domain.InputValidator already did that); it
// focuses on derived classification.
func Build(in domain.PlanningInputs) (*Index, error) {
	idx := &Index{
		nodes:               make(map[domain.NodeID]domain.Node, len(in.Nodes)),
		routesByOrigin:      make(map[domain.NodeID][]int),
		routesByDestination: make(map[domain.NodeID][]int),
		trucksByODPair:      make(map[odKey][]int),
		routes:              append([]domain.Route(nil), in.Routes...),
		trucks:              append([]domain.TruckSchedule(nil), in.TruckSchedules...),
	}

	for _, n := range in.Nodes {
		idx.nodes[n.ID] = n
		if n.Capabilities.CanManufacture {
			idx.ManufacturingNodes = append(idx.ManufacturingNodes, n.ID)
		}
		if n.Capabilities.HasDemand {
			idx.DemandNodes = append(idx.DemandNodes, n.ID)
		}
		if n.Capabilities.CanStore {
			switch n.Capabilities.StorageMode {
			case domain.StorageFrozen:
				idx.FrozenStorageNodes = append(idx.FrozenStorageNodes, n.ID)
			case domain.StorageAmbient:
				idx.AmbientStorageNodes = append(idx.AmbientStorageNodes, n.ID)
			case domain.StorageBoth:
				idx.FrozenStorageNodes = append(idx.FrozenStorageNodes, n.ID)
				idx.AmbientStorageNodes = append(idx.AmbientStorageNodes, n.ID)
			}
		}
	}

	for i, r := range idx.routes {
		if _, ok := idx.nodes[r.OriginNodeID]; !ok {
			return nil, fmt.Errorf("network: route %s references unknown origin %q", r.ID(), r.OriginNodeID)
		}
		if _, ok := idx.nodes[r.DestinationNodeID]; !ok {
			return nil, fmt.Errorf("network: route %s references unknown destination %q", r.ID(), r.DestinationNodeID)
		}
		idx.routesByOrigin[r.OriginNodeID] = append(idx.routesByOrigin[r.OriginNodeID], i)
		idx.routesByDestination[r.DestinationNodeID] = append(idx.routesByDestination[r.DestinationNodeID], i)
	}

	for i, t := range idx.trucks {
		key := odKey{t.OriginNodeID, t.DestinationNodeID}
		idx.trucksByODPair[key] = append(idx.trucksByODPair[key], i)
	}

	// A hub is any node with outbound legs other than a manufacturing node.
	manufacturing := lo.SliceToMap(idx.ManufacturingNodes, func(id domain.NodeID) (domain.NodeID, struct{}) { return id, struct{}{} })
	var hubs []domain.NodeID
	for originID := range idx.routesByOrigin {
		if _, isMfg := manufacturing[originID]; isMfg {
			continue
		}
		hubs = append(hubs, originID)
	}
	sort.Slice(hubs, func(i, j int) bool { return hubs[i] < hubs[j] })
	idx.HubNodes = hubs

	sortNodeIDs(idx.ManufacturingNodes)
	sortNodeIDs(idx.DemandNodes)
	sortNodeIDs(idx.FrozenStorageNodes)
	sortNodeIDs(idx.AmbientStorageNodes)

	return idx, nil
}

// sortNodeIDs sorts in place for a stable, lexicographic node/product ID
// enumeration order.
func sortNodeIDs(ids []domain.NodeID) {
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
}
