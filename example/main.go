// Command example walks through Scenario A end to end,
// printing what each pipeline stage produced. Run with `go run ./example`.
package main

import (
	"context"
	"fmt"

	"github.com/sverzijl/planning-latest-sub008/pkg/events"
	"github.com/sverzijl/planning-latest-sub008/pkg/planner"
	"github.com/sverzijl/planning-latest-sub008/pkg/scenario"
	"github.com/sverzijl/planning-latest-sub008/pkg/solver"
)

func main() {
	sc := scenario.A()
	fmt.Printf("scenario %s: %s\n\n", sc.Name, sc.Description)

	recorder := events.NewRecorder(nil)
	sv := solver.NewAdapter(nil, recorder)
	svc := planner.NewPlanningService(sv, nil, recorder)

	cfg := solver.DefaultConfig()
	result, err := svc.Solve(context.Background(), sc.Inputs, planner.DefaultOptions(), cfg)
	if err != nil {
		fmt.Printf("solve failed: %v\n", err)
		return
	}

	fmt.Printf("run id:      %s\n", recorder.RunID)
	fmt.Printf("termination: %s (gap %.4f, %s)\n\n", result.Solver.Termination, result.Solver.Gap, result.Solver.WallTime)

	fmt.Println("pipeline timeline:")
	for _, e := range result.Timeline {
		fmt.Printf("  %-18s stream=%-8s %v\n", e.Type, e.Stream, e.Data)
	}

	fmt.Println("\nproduction batches:")
	for _, b := range result.Batches {
		fmt.Printf("  %s  %s at %s  %d units (%s)\n",
			b.ID, b.ProductID, b.ManufacturingNodeID, b.Quantity, b.ProductionDate.Format("2006-01-02"))
	}

	fmt.Println("\nshipments:")
	for _, s := range result.Shipments {
		fmt.Printf("  %s  batch=%s  %s -> %s  depart %s arrive %s  %d units (%s)\n",
			s.ID, s.BatchID, s.Origin, s.Destination,
			s.DepartureDate.Format("2006-01-02"), s.DeliveryDate.Format("2006-01-02"),
			s.Quantity, s.ArrivalState)
	}

	fmt.Printf("\ncost breakdown: total=%s production=%s transport=%s holding=%s labor=%s shortage=%s\n",
		result.CostBreakdown.Total.StringFixed(2),
		result.CostBreakdown.Production.StringFixed(2),
		result.CostBreakdown.Transport.StringFixed(2),
		result.CostBreakdown.Holding.StringFixed(2),
		result.CostBreakdown.Labor.StringFixed(2),
		result.CostBreakdown.Shortage.StringFixed(2),
	)

	if !result.Validation.OK() {
		fmt.Println("\nvalidation issues:")
		for _, issue := range result.Validation.Issues {
			fmt.Printf("  - %s\n", issue)
		}
	}
}
