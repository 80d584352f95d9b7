package model

import (
	"fmt"
	"time"

	"github.com/sverzijl/planning-latest-sub008/pkg/algebra"
	"github.com/sverzijl/planning-latest-sub008/pkg/domain"
)

// addProductionConstraints implements case-count linking,
// the rate/labor capacity envelope (startup, shutdown, and a linear
// changeover approximation), and the labor-hours piecewise split.
func (b *Builder) addProductionConstraints() error {
	for key, productionVar := range b.productionVars {
		casesVar := b.productionCasesVars[key]
		producesProductVar := b.producesProductVars[producesProductKey(key)]

		// production = 10 * cases.
		expr := algebra.NewExpr().Add(productionVar, 1).Add(casesVar, -float64(domain.UnitsPerCase))
		b.problem.AddConstraint(algebra.Constraint{
			Name: fmt.Sprintf("case_link.%s.%s.%s", key.Node, key.Product, dateKey(key.Date)),
			Expr: expr, Sense: algebra.Equal, RHS: 0,
		})

		// production[N,P,t] <= bigM * produces_product[N,P,t]: a product
		// can only be produced on a date its per-product binary is set.
		node, _ := b.Index.Node(key.Node)
		upper := float64(node.Capabilities.ProductionRatePerHr) * 24
		if upper <= 0 {
			upper = bigM
		}
		link := algebra.NewExpr().Add(productionVar, 1).Add(producesProductVar, -upper)
		b.problem.AddConstraint(algebra.Constraint{
			Name: fmt.Sprintf("product_active_link.%s.%s.%s", key.Node, key.Product, dateKey(key.Date)),
			Expr: link, Sense: algebra.LessEq, RHS: 0,
		})

		// produces_product[N,P,t] <= produces[N,t]: any product implies the
		// node is producing at all on that date.
		producesVar, ok := b.producesVars[producesKey{key.Node, key.Date}]
		if ok {
			implies := algebra.NewExpr().Add(producesProductVar, 1).Add(producesVar, -1)
			b.problem.AddConstraint(algebra.Constraint{
				Name: fmt.Sprintf("produces_implies.%s.%s.%s", key.Node, key.Product, dateKey(key.Date)),
				Expr: implies, Sense: algebra.LessEq, RHS: 0,
			})
		}
	}

	for _, mfgID := range b.Index.ManufacturingNodes {
		node, _ := b.Index.Node(mfgID)
		rate := float64(node.Capabilities.ProductionRatePerHr)

		for _, date := range b.Horizon.Dates {
			producesVar, ok := b.producesVars[producesKey{mfgID, date}]
			if !ok {
				continue
			}

			capacityExpr := algebra.NewExpr()
			for _, product := range b.Products {
				if pv, ok := b.productionVars[productionKey{mfgID, product, date}]; ok {
					capacityExpr.Add(pv, 1)
				}
			}

			if lf, ok := b.laborFixedVars[date]; ok {
				capacityExpr.Add(lf, -rate)
			}
			if lo, ok := b.laborOvertimeVars[date]; ok {
				capacityExpr.Add(lo, -rate)
			}
			if ln, ok := b.laborNonFixedVars[date]; ok {
				capacityExpr.Add(ln, -rate)
			}

			overheadHours := node.Capabilities.DailyStartupHours + node.Capabilities.DailyShutdownHours
			capacityExpr.Add(producesVar, rate*overheadHours)

			// Linear changeover approximation: charge changeover hours for
			// every distinct product beyond the first.
			changeoverExpr := algebra.NewExpr()
			for _, product := range b.Products {
				if ppv, ok := b.producesProductVars[producesProductKey{mfgID, product, date}]; ok {
					changeoverExpr.Add(ppv, rate*node.Capabilities.DefaultChangeoverHrs)
				}
			}
			changeoverExpr.Add(producesVar, -rate*node.Capabilities.DefaultChangeoverHrs)
			capacityExpr.Terms = append(capacityExpr.Terms, changeoverExpr.Terms...)

			b.problem.AddConstraint(algebra.Constraint{
				Name: fmt.Sprintf("capacity.%s.%s", mfgID, dateKey(date)),
				Expr: capacityExpr, Sense: algebra.LessEq, RHS: 0,
			})

			if err := b.addLaborHoursConstraints(mfgID, date, producesVar); err != nil {
				return err
			}
			b.addLaborHoursCapConstraint(mfgID, date)
		}
	}
	return nil
}

// addLaborHoursCapConstraint bounds the total hours paid across all three
// labor buckets to maximum_hours(t): each bucket is already capped
// individually, but nothing otherwise stops the solver from stacking all
// three at once.
func (b *Builder) addLaborHoursCapConstraint(mfgID domain.NodeID, date time.Time) {
	day, ok := b.Labor.Lookup(date)
	if !ok {
		return
	}
	expr := algebra.NewExpr()
	if lf, ok := b.laborFixedVars[date]; ok {
		expr.Add(lf, 1)
	}
	if lo, ok := b.laborOvertimeVars[date]; ok {
		expr.Add(lo, 1)
	}
	if ln, ok := b.laborNonFixedVars[date]; ok {
		expr.Add(ln, 1)
	}
	if len(expr.Terms) == 0 {
		return
	}
	b.problem.AddConstraint(algebra.Constraint{
		Name: fmt.Sprintf("labor_hours_cap.%s.%s", mfgID, dateKey(date)),
		Expr: expr, Sense: algebra.LessEq, RHS: toFloat(day.MaximumHours),
	})
}

// addLaborHoursConstraints implements the piecewise labor-hours split and
// its bounds: on a non-fixed day, any production
// forces at least minimum_hours of non-fixed labor to be paid for.
func (b *Builder) addLaborHoursConstraints(mfgID domain.NodeID, date time.Time, producesVar algebra.VarID) error {
	day, ok := b.Labor.Lookup(date)
	if !ok || !day.IsNonFixedDay() || !day.MinimumHours.IsPositive() {
		return nil
	}
	nonFixedVar, ok := b.laborNonFixedVars[date]
	if !ok {
		return nil
	}

	expr := algebra.NewExpr().Add(nonFixedVar, 1).Add(producesVar, -toFloat(day.MinimumHours))
	b.problem.AddConstraint(algebra.Constraint{
		Name: fmt.Sprintf("minimum_hours.%s.%s", mfgID, dateKey(date)),
		Expr: expr, Sense: algebra.GreaterEq, RHS: 0,
	})
	return nil
}
