package model

import (
	"fmt"

	"github.com/sverzijl/planning-latest-sub008/pkg/algebra"
	"github.com/sverzijl/planning-latest-sub008/pkg/cohort"
	"github.com/sverzijl/planning-latest-sub008/pkg/domain"
)

// demandCohortMatch derives the DemandCohortKey an inventory cohort can be
// drawn down through, since pkg/cohort builds the demand set directly from
// the inventory set with the same (node, product, prod_date, date) tuple.
func demandCohortMatch(k cohort.InventoryCohortKey) cohort.DemandCohortKey {
	return cohort.DemandCohortKey{NodeID: k.NodeID, ProductID: k.ProductID, ProdDate: k.ProdDate, Date: k.CurrDate}
}

// addDemandConstraints implements the rule that every forecast record's
// quantity is covered exactly by the sum of demand draws plus shortage.
func (b *Builder) addDemandConstraints() error {
	demandByLocationProductDate := make(map[shortageKey][]cohort.DemandCohortKey)
	for _, dck := range b.Cohorts.DemandCohorts {
		key := shortageKey{dck.NodeID, dck.ProductID, dck.Date}
		demandByLocationProductDate[key] = append(demandByLocationProductDate[key], dck)
	}

	for _, f := range b.Forecast {
		date := domain.NormalizeDate(f.Date)
		if !b.Horizon.Contains(date) {
			continue
		}
		key := shortageKey{f.LocationID, f.ProductID, date}

		expr := algebra.NewExpr()
		for _, dck := range demandByLocationProductDate[key] {
			if dv, ok := b.demandVars[dck]; ok {
				expr.Add(dv, 1)
			}
		}
		if sv, ok := b.shortageVars[key]; ok {
			expr.Add(sv, 1)
		}

		name := fmt.Sprintf("demand.%s.%s.%s", f.LocationID, f.ProductID, dateKey(date))
		b.problem.AddConstraint(algebra.Constraint{
			Name: name, Expr: expr, Sense: algebra.Equal, RHS: float64(f.Quantity),
		})
	}
	return nil
}
