package model

import (
	"fmt"
	"time"

	"github.com/sverzijl/planning-latest-sub008/pkg/algebra"
	"github.com/sverzijl/planning-latest-sub008/pkg/cohort"
	"github.com/sverzijl/planning-latest-sub008/pkg/domain"
)

// bigM bounds variables that have no tighter natural upper bound (e.g. a
// shipment on a route with no explicit truck capacity). It is generous
// enough not to bind any realistic bakery-scale quantity while still giving
// the solver a finite box.
const bigM = 1_000_000.0

// indexCohorts builds the lookup maps variables.go and balance.go/demand.go
// need to find "the other" cohort a given cohort links to (yesterday's
// inventory, an arriving shipment, a demand draw) without rescanning the
// full sparse sets on every constraint.
func (b *Builder) indexCohorts() {
	b.inventoryByNodeProductDate = make(map[inventoryLookupKey][]cohort.InventoryCohortKey)
	for _, k := range b.Cohorts.InventoryCohorts {
		lk := inventoryLookupKey{Node: k.NodeID, Product: k.ProductID, State: k.State, ProdDate: k.ProdDate}
		b.inventoryByNodeProductDate[lk] = append(b.inventoryByNodeProductDate[lk], k)
	}

	b.shipmentsByDestArrival = make(map[shipmentDestKey][]cohort.ShipmentCohortKey)
	b.shipmentsByOrigin = make(map[shipmentOriginKey][]cohort.ShipmentCohortKey)
	for _, s := range b.Cohorts.ShipmentCohorts {
		dk := shipmentDestKey{Dest: s.Destination, Product: s.ProductID, ArrivalState: s.ArrivalState, DeliveryDate: s.DeliveryDate}
		b.shipmentsByDestArrival[dk] = append(b.shipmentsByDestArrival[dk], s)

		ok := shipmentOriginKey{Origin: s.Origin, Product: s.ProductID, OriginState: s.OriginState, DepartureDate: s.DepartureDate}
		b.shipmentsByOrigin[ok] = append(b.shipmentsByOrigin[ok], s)
	}
}

func (b *Builder) declareVariables() error {
	b.productionVars = make(map[productionKey]algebra.VarID)
	b.productionCasesVars = make(map[productionKey]algebra.VarID)
	b.producesVars = make(map[producesKey]algebra.VarID)
	b.producesProductVars = make(map[producesProductKey]algebra.VarID)
	b.inventoryVars = make(map[cohort.InventoryCohortKey]algebra.VarID)
	b.shipmentVars = make(map[cohort.ShipmentCohortKey]algebra.VarID)
	b.demandVars = make(map[cohort.DemandCohortKey]algebra.VarID)
	b.shortageVars = make(map[shortageKey]algebra.VarID)
	b.truckUsedVars = make(map[truckDateKey]algebra.VarID)
	b.truckLoadVars = make(map[truckLoadKey]algebra.VarID)
	b.palletVars = make(map[palletKey]algebra.VarID)
	b.invPalletVars = make(map[invPalletKey]algebra.VarID)
	b.laborFixedVars = make(map[time.Time]algebra.VarID)
	b.laborOvertimeVars = make(map[time.Time]algebra.VarID)
	b.laborNonFixedVars = make(map[time.Time]algebra.VarID)

	if err := b.declareProductionVars(); err != nil {
		return err
	}
	if err := b.declareCohortVars(); err != nil {
		return err
	}
	if err := b.declareTruckVars(); err != nil {
		return err
	}
	if err := b.declareLaborVars(); err != nil {
		return err
	}
	if b.UsePalletHolding {
		if err := b.declareInvPalletVars(); err != nil {
			return err
		}
	}
	return nil
}

func (b *Builder) declareProductionVars() error {
	for _, mfgID := range b.Index.ManufacturingNodes {
		node, _ := b.Index.Node(mfgID)
		rate := float64(node.Capabilities.ProductionRatePerHr)

		for _, date := range b.Horizon.Dates {
			maxHours := 24.0
			if day, ok := b.Labor.Lookup(date); ok {
				if !day.IsProductionCapable() {
					continue
				}
				maxHours = toFloat(day.MaximumHours)
			}
			upper := rate * maxHours
			if upper <= 0 {
				upper = bigM
			}

			for _, product := range b.Products {
				name := fmt.Sprintf("production.%s.%s.%s", mfgID, product, dateKey(date))
				v, err := b.problem.NewVar(name, algebra.Continuous, 0, upper)
				if err != nil {
					return err
				}
				b.productionVars[productionKey{mfgID, product, date}] = v

				casesName := fmt.Sprintf("production_cases.%s.%s.%s", mfgID, product, dateKey(date))
				casesV, err := b.problem.NewVar(casesName, algebra.Integer, 0, upper/float64(domain.UnitsPerCase))
				if err != nil {
					return err
				}
				b.productionCasesVars[productionKey{mfgID, product, date}] = casesV

				pname := fmt.Sprintf("produces_product.%s.%s.%s", mfgID, product, dateKey(date))
				pv, err := b.problem.NewVar(pname, algebra.Binary, 0, 1)
				if err != nil {
					return err
				}
				b.producesProductVars[producesProductKey{mfgID, product, date}] = pv
			}

			name := fmt.Sprintf("produces.%s.%s", mfgID, dateKey(date))
			v, err := b.problem.NewVar(name, algebra.Binary, 0, 1)
			if err != nil {
				return err
			}
			b.producesVars[producesKey{mfgID, date}] = v
		}
	}
	return nil
}

func (b *Builder) declareCohortVars() error {
	for _, k := range b.Cohorts.InventoryCohorts {
		name := fmt.Sprintf("inv.%s.%s.%s.%s.%s", k.NodeID, k.ProductID, dateKey(k.ProdDate), dateKey(k.CurrDate), k.State)
		v, err := b.problem.NewVar(name, algebra.Continuous, 0, bigM)
		if err != nil {
			return err
		}
		b.inventoryVars[k] = v
	}

	for _, k := range b.Cohorts.ShipmentCohorts {
		name := fmt.Sprintf("ship.%s.%s.%s.%s.%s", k.Route, k.ProductID, dateKey(k.ProdDate), dateKey(k.DepartureDate), k.ArrivalState)
		v, err := b.problem.NewVar(name, algebra.Continuous, 0, bigM)
		if err != nil {
			return err
		}
		b.shipmentVars[k] = v
	}

	for _, k := range b.Cohorts.DemandCohorts {
		name := fmt.Sprintf("demand_from.%s.%s.%s.%s", k.NodeID, k.ProductID, dateKey(k.ProdDate), dateKey(k.Date))
		v, err := b.problem.NewVar(name, algebra.Continuous, 0, bigM)
		if err != nil {
			return err
		}
		b.demandVars[k] = v
	}

	if b.ShortagesAllowed {
		for _, f := range b.Forecast {
			key := shortageKey{f.LocationID, f.ProductID, domain.NormalizeDate(f.Date)}
			if _, exists := b.shortageVars[key]; exists {
				continue
			}
			name := fmt.Sprintf("shortage.%s.%s.%s", key.Node, key.Product, dateKey(key.Date))
			v, err := b.problem.NewVar(name, algebra.Continuous, 0, bigM)
			if err != nil {
				return err
			}
			b.shortageVars[key] = v
		}
	}
	return nil
}

func (b *Builder) declareTruckVars() error {
	routeTransitDays := b.routeTransitIndex()

	for _, truck := range b.Index.AllTrucks() {
		transit, hasRoute := routeTransitDays[odPair{truck.OriginNodeID, truck.DestinationNodeID}]

		for _, date := range b.Horizon.Dates {
			if !truck.IsActive(date) {
				continue
			}
			ukey := truckDateKey{truck.ID, date}
			uname := fmt.Sprintf("truck_used.%s.%s", truck.ID, dateKey(date))
			uv, err := b.problem.NewVar(uname, algebra.Binary, 0, 1)
			if err != nil {
				return err
			}
			b.truckUsedVars[ukey] = uv

			pkey := palletKey{truck.ID, truck.DestinationNodeID, date}
			pname := fmt.Sprintf("pallets_loaded.%s.%s.%s", truck.ID, truck.DestinationNodeID, dateKey(date))
			pv, err := b.problem.NewVar(pname, algebra.Integer, 0, float64(truck.EffectivePalletCapacity()))
			if err != nil {
				return err
			}
			b.palletVars[pkey] = pv

			if !hasRoute {
				continue // no matching route; truck schedule references an unconfigured leg
			}
			deliveryDate := date.AddDate(0, 0, transit)
			for _, product := range b.Products {
				lkey := truckLoadKey{truck.ID, product, deliveryDate}
				if _, exists := b.truckLoadVars[lkey]; exists {
					continue
				}
				lname := fmt.Sprintf("truck_load.%s.%s.%s", truck.ID, product, dateKey(deliveryDate))
				lv, err := b.problem.NewVar(lname, algebra.Continuous, 0, float64(truck.CapacityUnits))
				if err != nil {
					return err
				}
				b.truckLoadVars[lkey] = lv
			}
		}
	}
	return nil
}

func (b *Builder) declareLaborVars() error {
	for _, date := range b.Horizon.Dates {
		day, ok := b.Labor.Lookup(date)
		if !ok || !day.IsProductionCapable() {
			continue
		}

		fname := fmt.Sprintf("labor_fixed.%s", dateKey(date))
		fv, err := b.problem.NewVar(fname, algebra.Continuous, 0, toFloat(day.FixedHours))
		if err != nil {
			return err
		}
		b.laborFixedVars[date] = fv

		oname := fmt.Sprintf("labor_overtime.%s", dateKey(date))
		ov, err := b.problem.NewVar(oname, algebra.Continuous, 0, toFloat(day.MaximumHours))
		if err != nil {
			return err
		}
		b.laborOvertimeVars[date] = ov

		nname := fmt.Sprintf("labor_non_fixed.%s", dateKey(date))
		nv, err := b.problem.NewVar(nname, algebra.Continuous, 0, toFloat(day.MaximumHours))
		if err != nil {
			return err
		}
		b.laborNonFixedVars[date] = nv
	}
	return nil
}

func (b *Builder) declareInvPalletVars() error {
	states := []domain.CohortState{domain.StateAmbient, domain.StateFrozen, domain.StateThawed}
	held := make(map[invPalletKey][]algebra.VarID)
	for _, k := range b.Cohorts.InventoryCohorts {
		key := invPalletKey{k.NodeID, k.State, k.CurrDate}
		held[key] = append(held[key], b.inventoryVars[k])
	}
	for _, nodeID := range allStorageNodes(b.Index) {
		for _, date := range b.Horizon.Dates {
			for _, s := range states {
				key := invPalletKey{nodeID, s, date}
				name := fmt.Sprintf("inv_pallets.%s.%s.%s", nodeID, s, dateKey(date))
				v, err := b.problem.NewVar(name, algebra.Integer, 0, bigM)
				if err != nil {
					return err
				}
				b.invPalletVars[key] = v

				// ceil link: units held <= UnitsPerPallet * inv_pallets
				link := algebra.NewExpr()
				link.Add(v, -float64(domain.UnitsPerPallet))
				for _, iv := range held[key] {
					link.Add(iv, 1)
				}
				b.problem.AddConstraint(algebra.Constraint{
					Name: fmt.Sprintf("inv_pallet_link.%s.%s.%s", nodeID, s, dateKey(date)), Expr: link, Sense: algebra.LessEq, RHS: 0,
				})
			}
		}
	}
	return nil
}

func dateKey(t time.Time) string { return t.Format("2006-01-02") }
