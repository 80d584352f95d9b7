package model

import (
	"fmt"
	"time"

	"github.com/sverzijl/planning-latest-sub008/pkg/algebra"
	"github.com/sverzijl/planning-latest-sub008/pkg/domain"
	"github.com/sverzijl/planning-latest-sub008/pkg/network"
)

// addTruckConstraints implements the rule that shipments on a leg must
// ride a truck, a truck's load is bounded by its unit and pallet capacity
// (with the ceiling link between the two), and nodes requiring truck
// schedules cannot ship outside one.
func (b *Builder) addTruckConstraints() error {
	routeTransitDays := b.routeTransitIndex()

	for _, truck := range b.Index.AllTrucks() {
		transit, ok := routeTransitDays[odPair{truck.OriginNodeID, truck.DestinationNodeID}]
		if !ok {
			continue // no matching route; truck schedule references an unconfigured leg
		}

		for _, departureDate := range b.Horizon.Dates {
			if !truck.IsActive(departureDate) {
				continue
			}
			deliveryDate := departureDate.AddDate(0, 0, transit)
			usedVar, ok := b.truckUsedVars[truckDateKey{truck.ID, departureDate}]
			if !ok {
				continue
			}
			palletVar := b.palletVars[palletKey{truck.ID, truck.DestinationNodeID, departureDate}]

			unitsExpr := algebra.NewExpr()
			for _, product := range b.Products {
				loadVar, ok := b.truckLoadVars[truckLoadKey{truck.ID, product, deliveryDate}]
				if !ok {
					continue
				}

				// truck_load <= capacity_units * truck_used
				c := algebra.NewExpr().Add(loadVar, 1).Add(usedVar, -float64(truck.CapacityUnits))
				b.problem.AddConstraint(algebra.Constraint{
					Name: fmt.Sprintf("truck_cap.%s.%s.%s", truck.ID, product, dateKey(deliveryDate)),
					Expr: c, Sense: algebra.LessEq, RHS: 0,
				})

				unitsExpr.Add(loadVar, 1)
			}

			// sum_P truck_load <= pallets_loaded * 320
			upper := algebra.NewExpr()
			upper.Terms = append(upper.Terms, unitsExpr.Terms...)
			upper.Add(palletVar, -float64(domain.UnitsPerPallet))
			b.problem.AddConstraint(algebra.Constraint{
				Name: fmt.Sprintf("pallet_upper.%s.%s", truck.ID, dateKey(departureDate)),
				Expr: upper, Sense: algebra.LessEq, RHS: 0,
			})

			// pallets_loaded * 320 <= sum_P truck_load + 319 (ceil link)
			lower := algebra.NewExpr().Add(palletVar, float64(domain.UnitsPerPallet))
			for _, t := range unitsExpr.Terms {
				lower.Add(t.Var, -t.Coef)
			}
			b.problem.AddConstraint(algebra.Constraint{
				Name: fmt.Sprintf("pallet_ceil.%s.%s", truck.ID, dateKey(departureDate)),
				Expr: lower, Sense: algebra.LessEq, RHS: float64(domain.UnitsPerPallet - 1),
			})

			// pallets_loaded <= pallet_capacity * truck_used
			palletCap := algebra.NewExpr().Add(palletVar, 1).Add(usedVar, -float64(truck.EffectivePalletCapacity()))
			b.problem.AddConstraint(algebra.Constraint{
				Name: fmt.Sprintf("pallet_truck_used.%s.%s", truck.ID, dateKey(departureDate)),
				Expr: palletCap, Sense: algebra.LessEq, RHS: 0,
			})

			if err := b.addLegShipmentEquality(truck, departureDate, deliveryDate); err != nil {
				return err
			}
		}
	}

	return b.addRequiresTruckScheduleConstraints(routeTransitDays)
}

// addLegShipmentEquality ties shipment_cohort volumes on a leg to the
// trucks that actually carry them.
func (b *Builder) addLegShipmentEquality(truck domain.TruckSchedule, departureDate, deliveryDate time.Time) error {
	for _, product := range b.Products {
		shipExpr := algebra.NewExpr()
		for state := domain.StateAmbient; state <= domain.StateThawed; state++ {
			dk := shipmentDestKey{Dest: truck.DestinationNodeID, Product: product, ArrivalState: state, DeliveryDate: deliveryDate}
			for _, sk := range b.shipmentsByDestArrival[dk] {
				if sk.Origin != truck.OriginNodeID || !sk.DepartureDate.Equal(departureDate) {
					continue
				}
				shipExpr.Add(b.shipmentVars[sk], 1)
			}
		}
		if len(shipExpr.Terms) == 0 {
			continue
		}
		loadVar, ok := b.truckLoadVars[truckLoadKey{truck.ID, product, deliveryDate}]
		if !ok {
			continue
		}
		shipExpr.Add(loadVar, -1)
		b.problem.AddConstraint(algebra.Constraint{
			Name: fmt.Sprintf("leg_equality.%s.%s.%s", truck.ID, product, dateKey(deliveryDate)),
			Expr: shipExpr, Sense: algebra.Equal, RHS: 0,
		})
	}
	return nil
}

// addRequiresTruckScheduleConstraints implements the closing rule: a node
// flagged requires_truck_schedules cannot ship any volume on a date with no
// active truck, and its shipped volume on an active date must match the sum
// of truck loads departing that date.
func (b *Builder) addRequiresTruckScheduleConstraints(routeTransitDays map[odPair]int) error {
	for _, nodeID := range allStorageNodes(b.Index) {
		node, _ := b.Index.Node(nodeID)
		if !node.Capabilities.RequiresTruckSchedules {
			continue
		}

		for _, date := range b.Horizon.Dates {
			outboundExpr := algebra.NewExpr()
			for _, product := range b.Products {
				ok := shipmentOriginKey{Origin: nodeID, Product: product, OriginState: domain.StateAmbient, DepartureDate: date}
				for _, sk := range b.shipmentsByOrigin[ok] {
					outboundExpr.Add(b.shipmentVars[sk], 1)
				}
				okFrozen := shipmentOriginKey{Origin: nodeID, Product: product, OriginState: domain.StateFrozen, DepartureDate: date}
				for _, sk := range b.shipmentsByOrigin[okFrozen] {
					outboundExpr.Add(b.shipmentVars[sk], 1)
				}
			}
			if len(outboundExpr.Terms) == 0 {
				continue
			}

			loadExpr := algebra.NewExpr()
			for _, truck := range b.Index.AllTrucks() {
				if truck.OriginNodeID != nodeID || !truck.IsActive(date) {
					continue
				}
				transit := routeTransitDays[odPair{truck.OriginNodeID, truck.DestinationNodeID}]
				delivery := date.AddDate(0, 0, transit)
				for _, product := range b.Products {
					if lv, ok := b.truckLoadVars[truckLoadKey{truck.ID, product, delivery}]; ok {
						loadExpr.Add(lv, 1)
					}
				}
			}

			outboundExpr.Terms = append(outboundExpr.Terms, negate(loadExpr.Terms)...)
			b.problem.AddConstraint(algebra.Constraint{
				Name: fmt.Sprintf("requires_truck.%s.%s", nodeID, dateKey(date)),
				Expr: outboundExpr, Sense: algebra.Equal, RHS: 0,
			})
		}
	}
	return nil
}

func negate(terms []algebra.Term) []algebra.Term {
	out := make([]algebra.Term, len(terms))
	for i, t := range terms {
		out[i] = algebra.Term{Var: t.Var, Coef: -t.Coef}
	}
	return out
}

type odPair struct {
	origin domain.NodeID
	dest   domain.NodeID
}

// routeTransitIndex maps each (origin, destination) pair with a configured
// route to its whole-day transit time, for trucks (which reference an OD
// pair, not a route ID directly).
func (b *Builder) routeTransitIndex() map[odPair]int {
	out := make(map[odPair]int)
	for _, r := range b.Index.AllRoutes() {
		out[odPair{r.OriginNodeID, r.DestinationNodeID}] = network.CeilDays(r.TransitDays)
	}
	return out
}
