package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sverzijl/planning-latest-sub008/pkg/config"
	"github.com/sverzijl/planning-latest-sub008/pkg/events"
	"github.com/sverzijl/planning-latest-sub008/pkg/planner"
	"github.com/sverzijl/planning-latest-sub008/pkg/scenario"
	"github.com/sverzijl/planning-latest-sub008/pkg/solver"
)

var (
	solveScenario string
	configPath    string
)

var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Solve one scenario in single-shot (whole-horizon) mode",
	RunE:  runSolve,
}

var rollingCmd = &cobra.Command{
	Use:   "rolling",
	Short: "Solve one scenario as a rolling horizon of overlapping windows",
	RunE:  runRolling,
}

func init() {
	for _, cmd := range []*cobra.Command{solveCmd, rollingCmd} {
		cmd.Flags().StringVar(&solveScenario, "scenario", "A", "scenario to solve (A-F, see pkg/scenario)")
		cmd.Flags().StringVar(&configPath, "config", "", "path to a TOML config file (optional; defaults are used otherwise)")
	}
	rollingCmd.Flags().Int("window-days", 0, "override the configured rolling window width")
	rollingCmd.Flags().Int("overlap-days", 0, "override the configured rolling window overlap")
}

func loadConfig() (config.Config, error) {
	if configPath == "" {
		return config.Default(), nil
	}
	return config.Load(configPath)
}

func selectScenario(name string) (scenario.Scenario, error) {
	for _, sc := range scenario.All() {
		if sc.Name == name {
			return sc, nil
		}
	}
	return scenario.Scenario{}, fmt.Errorf("unknown scenario %q (want one of A-F)", name)
}

func newService() *planner.PlanningService {
	log := newLogger()
	recorder := events.NewRecorder(log)
	sv := solver.NewAdapter(log, recorder)
	return planner.NewPlanningService(sv, log, recorder)
}

func runSolve(cmd *cobra.Command, args []string) error {
	sc, err := selectScenario(solveScenario)
	if err != nil {
		exitCode = 4
		return err
	}
	cfg, err := loadConfig()
	if err != nil {
		exitCode = 4
		return err
	}

	svc := newService()
	result, err := svc.Solve(context.Background(), sc.Inputs, cfg.Planning.ToOptions(), cfg.Solver.ToSolverConfig())
	if err != nil {
		exitCode = exitCodeForError(err)
		return err
	}

	exitCode = exitCodeForStatus(result.Solver.Termination)
	printReport(cmd, sc, result)
	return nil
}

func runRolling(cmd *cobra.Command, args []string) error {
	sc, err := selectScenario(solveScenario)
	if err != nil {
		exitCode = 4
		return err
	}
	cfg, err := loadConfig()
	if err != nil {
		exitCode = 4
		return err
	}

	windowDays := cfg.Planning.RollingWindowDays
	if v, _ := cmd.Flags().GetInt("window-days"); v > 0 {
		windowDays = v
	}
	overlapDays := cfg.Planning.RollingOverlapDays
	if v, _ := cmd.Flags().GetInt("overlap-days"); v > 0 {
		overlapDays = v
	}

	svc := newService()
	result, err := svc.SolveRolling(context.Background(), sc.Inputs, cfg.Planning.ToOptions(), cfg.Solver.ToSolverConfig(), windowDays, overlapDays)
	if err != nil {
		exitCode = exitCodeForError(err)
		return err
	}

	if result.Validation.OK() {
		exitCode = 0
	} else {
		exitCode = 1
	}
	printReport(cmd, sc, result)
	return nil
}
