package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sverzijl/planning-latest-sub008/pkg/config"
	"github.com/sverzijl/planning-latest-sub008/pkg/scenario"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run every built-in scenario end to end and report the outcome",
	RunE:  runDemo,
}

func runDemo(cmd *cobra.Command, args []string) error {
	cfg := config.Default()
	svc := newService()
	out := cmd.OutOrStdout()

	worstCode := 0
	for _, sc := range scenario.All() {
		result, err := svc.Solve(context.Background(), sc.Inputs, cfg.Planning.ToOptions(), cfg.Solver.ToSolverConfig())
		if err != nil {
			fmt.Fprintf(out, "scenario %s: FAILED: %v\n\n", sc.Name, err)
			if code := exitCodeForError(err); code > worstCode {
				worstCode = code
			}
			continue
		}
		printReport(cmd, sc, result)
		fmt.Fprintln(out)
		if code := exitCodeForStatus(result.Solver.Termination); code > worstCode {
			worstCode = code
		}
	}

	exitCode = worstCode
	return nil
}
