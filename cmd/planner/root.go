package main

import (
	"errors"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sverzijl/planning-latest-sub008/pkg/planner"
	"github.com/sverzijl/planning-latest-sub008/pkg/solver"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "planner",
	Short: "Mixed-integer production-distribution planner for a perishable supply chain",
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable development-mode logging")
	rootCmd.AddCommand(solveCmd, rollingCmd, demoCmd, serveCmd)
}

// newLogger builds a zap.Logger: a development encoder under -verbose,
// otherwise a production JSON encoder at info level.
func newLogger() *zap.Logger {
	var log *zap.Logger
	var err error
	if verbose {
		log, err = zap.NewDevelopment()
	} else {
		log, err = zap.NewProduction()
	}
	if err != nil {
		log = zap.NewNop()
	}
	return log
}

// exitCodeForError maps a pkg/planner error (or a generic cobra/flag
// error) to this command's exit code contract.
func exitCodeForError(err error) int {
	if err == nil {
		return 0
	}
	var inputErr *planner.InputValidationError
	var netErr *planner.NetworkInfeasibilityError
	var infeasibleErr *planner.InfeasibleError
	var timeLimitErr *planner.TimeLimitWithoutSolutionError
	var solverErr *planner.SolverError

	switch {
	case errors.As(err, &inputErr), errors.As(err, &netErr):
		return 4
	case errors.As(err, &infeasibleErr):
		return 3
	case errors.As(err, &timeLimitErr):
		return 2
	case errors.As(err, &solverErr):
		return 5
	default:
		return 4
	}
}

// exitCodeForStatus maps a successful solve's termination status to this
// command's exit codes for the non-error outcomes.
func exitCodeForStatus(status solver.Status) int {
	switch status {
	case solver.Optimal:
		return 0
	case solver.FeasibleWithGap:
		return 1
	default:
		return 0
	}
}
