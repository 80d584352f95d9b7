package cohort

import (
	"sort"
	"time"

	"github.com/sverzijl/planning-latest-sub008/pkg/domain"
	"github.com/sverzijl/planning-latest-sub008/pkg/network"
	"github.com/sverzijl/planning-latest-sub008/pkg/temporal"
)

// Index holds the three sparse sets the model builder (pkg/model) iterates
// over instead of the full (node, product, prod_date, curr_date, state)
// cartesian product.
type Index struct {
	InventoryCohorts []InventoryCohortKey
	ShipmentCohorts  []ShipmentCohortKey
	DemandCohorts    []DemandCohortKey
}

// Build enumerates every cohort key reachable within horizon for each
// product in products, given idx (the preprocessed network) and offsets
// (the per-(node,state) elapsed-day table from ComputeOffsets).
//
// The enumeration walks every (manufacturing node, product, production
// date) triple and, for each node and state the offset table says is
// reachable from it, emits one InventoryCohortKey per valid current_date,
// bounded below by the elapsed transit time and above by the state's
// shelf-life ceiling. Not every (node, state, date) combination shows up:
// some are simply unreachable, or reachable only after the product would
// already be expired.
func Build(idx *network.Index, offsets OffsetTable, horizon temporal.Horizon, products []domain.ProductID) *Index {
	ci := &Index{}
	reachable := reachableStatesPerNode(offsets)

	for _, prodDate := range horizon.Dates {
		for _, product := range products {
			for nodeID, states := range reachable {
				for _, state := range states {
					offset, ok := offsets.Lookup(nodeID, state)
					if !ok {
						continue
					}
					ci.InventoryCohorts = append(ci.InventoryCohorts,
						inventoryCohortsFor(nodeID, product, prodDate, state, offset, horizon)...)
				}
			}
		}
	}

	ci.ShipmentCohorts = buildShipmentCohorts(idx, horizon, products)
	ci.DemandCohorts = buildDemandCohorts(ci.InventoryCohorts, idx)

	sortInventoryCohorts(ci.InventoryCohorts)
	sortShipmentCohorts(ci.ShipmentCohorts)
	sortDemandCohorts(ci.DemandCohorts)

	return ci
}

// inventoryCohortsFor emits the InventoryCohortKey set for one (node,
// product, production date, state) combination.
//
// For ambient and frozen cohorts, ProdDate keeps the original production
// date and CurrDate ranges from the earliest possible arrival
// (prodDate + offset) through the state's shelf-life ceiling. For thawed
// cohorts, the thaw event itself resets the clock, so
// ProdDate becomes the arrival/thaw date and CurrDate ranges over the
// 14-day post-thaw window starting there.
func inventoryCohortsFor(nodeID domain.NodeID, product domain.ProductID, prodDate time.Time, state domain.CohortState, offset int, horizon temporal.Horizon) []InventoryCohortKey {
	var out []InventoryCohortKey

	if state == domain.StateThawed {
		thawDate := prodDate.AddDate(0, 0, offset)
		if !horizon.Contains(thawDate) {
			return nil
		}
		for age := 0; age <= state.MaxLifeDays(); age++ {
			curr := thawDate.AddDate(0, 0, age)
			if !horizon.Contains(curr) {
				break
			}
			out = append(out, InventoryCohortKey{
				NodeID: nodeID, ProductID: product,
				ProdDate: thawDate, CurrDate: curr, State: state,
			})
		}
		return out
	}

	for age := offset; age <= state.MaxLifeDays(); age++ {
		curr := prodDate.AddDate(0, 0, age)
		if !horizon.Contains(curr) {
			if age > offset {
				break
			}
			continue
		}
		out = append(out, InventoryCohortKey{
			NodeID: nodeID, ProductID: product,
			ProdDate: prodDate, CurrDate: curr, State: state,
		})
	}
	return out
}

// reachableStatesPerNode inverts an OffsetTable into node -> sorted states,
// so Build can iterate nodes without scanning the whole table per node.
func reachableStatesPerNode(offsets OffsetTable) map[domain.NodeID][]domain.CohortState {
	out := make(map[domain.NodeID][]domain.CohortState)
	for key := range offsets {
		out[key.node] = append(out[key.node], key.state)
	}
	for node := range out {
		sort.Slice(out[node], func(i, j int) bool { return out[node][i] < out[node][j] })
	}
	return out
}

// buildShipmentCohorts enumerates one ShipmentCohortKey per (route, product,
// departure date, origin production date) combination whose delivery date
// falls within horizon and whose age at departure has not exceeded the
// origin state's shelf life. Bounding the production-date search to the
// shelf-life window (rather than the whole horizon) is what keeps this set
// sparse.
func buildShipmentCohorts(idx *network.Index, horizon temporal.Horizon, products []domain.ProductID) []ShipmentCohortKey {
	var out []ShipmentCohortKey

	for _, route := range idx.AllRoutes() {
		destNode, ok := idx.Node(route.DestinationNodeID)
		if !ok {
			continue
		}
		arrivalState := route.ArrivalState(destNode.Capabilities.StorageMode)
		transitDays := network.CeilDays(route.TransitDays)

		// The transport mode dictates what state the cohort must be loaded
		// in: an ambient truck carries an ambient cohort, a reefer carries
		// a frozen one. Freezing or thawing happens on arrival, never at
		// load time.
		originState := domain.StateAmbient
		if route.TransportMode == domain.TransportFrozen {
			originState = domain.StateFrozen
		}

		for _, departureDate := range horizon.Dates {
			deliveryDate := departureDate.AddDate(0, 0, transitDays)
			if !horizon.Contains(deliveryDate) {
				continue
			}
			for _, product := range products {
				for age := 0; age <= originState.MaxLifeDays(); age++ {
					prodDate := departureDate.AddDate(0, 0, -age)
					if !horizon.Contains(prodDate) && age > 0 {
						continue
					}
					out = append(out, ShipmentCohortKey{
						Route: route.ID(), Origin: route.OriginNodeID, Destination: route.DestinationNodeID,
						ProductID: product, ProdDate: prodDate,
						DepartureDate: departureDate, DeliveryDate: deliveryDate,
						OriginState:  originState,
						ArrivalState: arrivalState,
					})
				}
			}
		}
	}
	return out
}

// buildDemandCohorts derives the demand-draw key set directly from the
// already-built inventory cohort set: any inventory cohort present at a
// demand node in a sellable state (frozen cohorts cannot be sold directly;
// demand can only be satisfied from ambient or thawed cohorts) is a
// candidate to draw down against demand on its current date.
func buildDemandCohorts(inventory []InventoryCohortKey, idx *network.Index) []DemandCohortKey {
	demandNodes := make(map[domain.NodeID]bool, len(idx.DemandNodes))
	for _, id := range idx.DemandNodes {
		demandNodes[id] = true
	}

	var out []DemandCohortKey
	for _, k := range inventory {
		if k.State == domain.StateFrozen {
			continue
		}
		if !demandNodes[k.NodeID] {
			continue
		}
		out = append(out, DemandCohortKey{
			NodeID: k.NodeID, ProductID: k.ProductID,
			ProdDate: k.ProdDate, Date: k.CurrDate,
		})
	}
	return out
}

func sortInventoryCohorts(ks []InventoryCohortKey) {
	sort.Slice(ks, func(i, j int) bool {
		a, b := ks[i], ks[j]
		if a.NodeID != b.NodeID {
			return a.NodeID < b.NodeID
		}
		if a.ProductID != b.ProductID {
			return a.ProductID < b.ProductID
		}
		if !a.ProdDate.Equal(b.ProdDate) {
			return a.ProdDate.Before(b.ProdDate)
		}
		if !a.CurrDate.Equal(b.CurrDate) {
			return a.CurrDate.Before(b.CurrDate)
		}
		return a.State < b.State
	})
}

func sortShipmentCohorts(ks []ShipmentCohortKey) {
	sort.Slice(ks, func(i, j int) bool {
		a, b := ks[i], ks[j]
		if a.Route != b.Route {
			return a.Route < b.Route
		}
		if !a.DepartureDate.Equal(b.DepartureDate) {
			return a.DepartureDate.Before(b.DepartureDate)
		}
		if a.ProductID != b.ProductID {
			return a.ProductID < b.ProductID
		}
		return a.ProdDate.Before(b.ProdDate)
	})
}

func sortDemandCohorts(ks []DemandCohortKey) {
	sort.Slice(ks, func(i, j int) bool {
		a, b := ks[i], ks[j]
		if a.NodeID != b.NodeID {
			return a.NodeID < b.NodeID
		}
		if a.ProductID != b.ProductID {
			return a.ProductID < b.ProductID
		}
		if !a.Date.Equal(b.Date) {
			return a.Date.Before(b.Date)
		}
		return a.ProdDate.Before(b.ProdDate)
	})
}
