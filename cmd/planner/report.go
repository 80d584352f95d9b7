package main

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/sverzijl/planning-latest-sub008/pkg/planner"
	"github.com/sverzijl/planning-latest-sub008/pkg/scenario"
)

// printReport renders a PlanResult as a human-readable summary, with
// comma-grouped counts for readability.
func printReport(cmd *cobra.Command, sc scenario.Scenario, result *planner.PlanResult) {
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "scenario %s: %s\n", sc.Name, sc.Description)
	fmt.Fprintf(out, "termination:  %s", result.Solver.Termination)
	if len(result.Windows) > 0 {
		fmt.Fprintf(out, " (%d window(s))", len(result.Windows))
	}
	fmt.Fprintln(out)
	fmt.Fprintf(out, "wall time:    %s\n", result.Solver.WallTime.Round(1e6))
	fmt.Fprintf(out, "batches:      %s\n", humanize.Comma(int64(len(result.Batches))))
	fmt.Fprintf(out, "shipments:    %s\n", humanize.Comma(int64(len(result.Shipments))))

	var totalUnits int64
	for _, b := range result.Batches {
		totalUnits += b.Quantity
	}
	fmt.Fprintf(out, "units made:   %s\n", humanize.Comma(totalUnits))

	cb := result.CostBreakdown
	fmt.Fprintf(out, "total cost:   %s\n", cb.Total.StringFixed(2))
	fmt.Fprintf(out, "  production: %s\n", cb.Production.StringFixed(2))
	fmt.Fprintf(out, "  transport:  %s\n", cb.Transport.StringFixed(2))
	fmt.Fprintf(out, "  holding:    %s\n", cb.Holding.StringFixed(2))
	fmt.Fprintf(out, "  labor:      %s\n", cb.Labor.StringFixed(2))
	fmt.Fprintf(out, "  truck:      %s\n", cb.Truck.StringFixed(2))
	fmt.Fprintf(out, "  shortage:   %s\n", cb.Shortage.StringFixed(2))

	if !result.Validation.OK() {
		fmt.Fprintf(out, "validation issues:\n")
		for _, issue := range result.Validation.Issues {
			fmt.Fprintf(out, "  - %s\n", issue)
		}
	}
	for _, w := range result.Warnings {
		fmt.Fprintf(out, "warning: %s\n", w.Message)
	}

	if verbose {
		fmt.Fprintf(out, "timeline:\n")
		for _, e := range result.Timeline {
			fmt.Fprintf(out, "  %s  %-20s %s\n", e.Timestamp.Format("15:04:05.000"), e.Type, e.Stream)
		}
	}
}
