package model

import (
	"fmt"

	"github.com/sverzijl/planning-latest-sub008/pkg/algebra"
	"github.com/sverzijl/planning-latest-sub008/pkg/domain"
)

// earliestProdDatePerTriple finds, for each (node, product, state), the
// minimum ProdDate appearing in the sparse inventory set: the cohort that
// receives starting inventory, since it is always the one whose "yesterday"
// falls outside the enumerated horizon.
func (b *Builder) earliestProdDatePerTriple() map[inventoryLookupKey]bool {
	type triple struct {
		node    domain.NodeID
		product domain.ProductID
		state   domain.CohortState
	}
	earliest := make(map[triple]inventoryLookupKey)
	for lk := range b.inventoryByNodeProductDate {
		t := triple{lk.Node, lk.Product, lk.State}
		cur, ok := earliest[t]
		if !ok || lk.ProdDate.Before(cur.ProdDate) {
			earliest[t] = lk
		}
	}
	out := make(map[inventoryLookupKey]bool, len(earliest))
	for _, lk := range earliest {
		out[lk] = true
	}
	return out
}

// addBalanceConstraints implements the single inventory rule that applies
// uniformly across every node and state: what's here today equals what was
// here yesterday, plus what arrived or was produced, minus what left or
// was consumed.
func (b *Builder) addBalanceConstraints() error {
	entryPoints := b.earliestProdDatePerTriple()

	for _, k := range b.Cohorts.InventoryCohorts {
		expr := algebra.NewExpr()
		rhsConstant := 0.0

		prevDate := k.CurrDate.AddDate(0, 0, -1)
		lk := inventoryLookupKey{Node: k.NodeID, Product: k.ProductID, State: k.State, ProdDate: k.ProdDate}
		var prevVar algebra.VarID
		havePrev := false
		for _, prevKey := range b.inventoryByNodeProductDate[lk] {
			if prevKey.CurrDate.Equal(prevDate) {
				prevVar = b.inventoryVars[prevKey]
				havePrev = true
				break
			}
		}
		if havePrev {
			expr.Add(prevVar, 1)
		} else if entryPoints[lk] {
			initKey := domain.InitialInventoryKey{NodeID: k.NodeID, ProductID: k.ProductID, State: k.State}
			rhsConstant += float64(b.Initial[initKey])
		}

		if qty, ok := b.PreArrivals[PreArrival{NodeID: k.NodeID, ProductID: k.ProductID, State: k.State, Date: k.CurrDate}]; ok {
			rhsConstant += float64(qty)
		}

		node, _ := b.Index.Node(k.NodeID)
		if node.Capabilities.CanManufacture && k.State == domain.StateAmbient && k.CurrDate.Equal(k.ProdDate) {
			if pv, ok := b.productionVars[productionKey{k.NodeID, k.ProductID, k.CurrDate}]; ok {
				expr.Add(pv, 1)
			}
		}

		destKey := shipmentDestKey{Dest: k.NodeID, Product: k.ProductID, ArrivalState: k.State, DeliveryDate: k.CurrDate}
		for _, sk := range b.shipmentsByDestArrival[destKey] {
			if k.State == domain.StateThawed {
				if !k.ProdDate.Equal(k.CurrDate) {
					continue // thawed cohorts key on arrival date, not the pre-thaw prod date
				}
			} else if !sk.ProdDate.Equal(k.ProdDate) {
				continue // others must match exactly
			}
			expr.Add(b.shipmentVars[sk], 1)
		}

		if node.Capabilities.HasDemand && (k.State == domain.StateAmbient || k.State == domain.StateThawed) {
			dck := demandCohortMatch(k)
			if dv, ok := b.demandVars[dck]; ok {
				expr.Add(dv, -1)
			}
		}

		originKey := shipmentOriginKey{Origin: k.NodeID, Product: k.ProductID, OriginState: k.State, DepartureDate: k.CurrDate}
		for _, sk := range b.shipmentsByOrigin[originKey] {
			if !sk.ProdDate.Equal(k.ProdDate) {
				continue
			}
			expr.Add(b.shipmentVars[sk], -1)
		}

		expr.Add(b.inventoryVars[k], -1)

		name := fmt.Sprintf("balance.%s.%s.%s.%s.%s", k.NodeID, k.ProductID, dateKey(k.ProdDate), dateKey(k.CurrDate), k.State)
		b.problem.AddConstraint(algebra.Constraint{
			Name: name, Expr: expr, Sense: algebra.Equal, RHS: -rhsConstant,
		})
	}
	return nil
}
