// Package planner wires the pipeline's components (pkg/domain through
// pkg/rolling) into the two operations a caller actually wants: solve a
// fixed horizon in one shot, or solve it as a rolling sequence of windows.
// It follows the same orchestrator shape throughout: a thin struct holding
// every collaborating service, calling them in a fixed sequence, and
// translating whatever goes wrong into the caller-facing error taxonomy.
package planner

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/sverzijl/planning-latest-sub008/pkg/algebra"
	"github.com/sverzijl/planning-latest-sub008/pkg/cohort"
	"github.com/sverzijl/planning-latest-sub008/pkg/domain"
	"github.com/sverzijl/planning-latest-sub008/pkg/events"
	"github.com/sverzijl/planning-latest-sub008/pkg/extract"
	"github.com/sverzijl/planning-latest-sub008/pkg/metrics"
	"github.com/sverzijl/planning-latest-sub008/pkg/model"
	"github.com/sverzijl/planning-latest-sub008/pkg/network"
	"github.com/sverzijl/planning-latest-sub008/pkg/rolling"
	"github.com/sverzijl/planning-latest-sub008/pkg/solver"
	"github.com/sverzijl/planning-latest-sub008/pkg/temporal"
)

// PlanningService is the single entry point a CLI, a daemon, or a test
// harness calls. It holds no repository references: this core never reads
// its own inputs from storage, only the solver it was built with and where
// to send structured events.
type PlanningService struct {
	Log      *zap.Logger
	Solver   solver.Solver
	Recorder *events.Recorder
}

// NewPlanningService builds a service over sv (the Solve backend). log and
// recorder may both be nil.
func NewPlanningService(sv solver.Solver, log *zap.Logger, recorder *events.Recorder) *PlanningService {
	return &PlanningService{Log: log, Solver: sv, Recorder: recorder}
}

func (s *PlanningService) emit(eventType, stream string, data interface{}) {
	if s.Recorder != nil {
		s.Recorder.Emit(eventType, stream, data)
	}
}

// Solve runs the full pipeline once over the inputs' natural horizon (the
// forecast's date span, padded with enough lead time for the network's
// longest leg) and returns a single PlanResult.
func (s *PlanningService) Solve(ctx context.Context, in domain.PlanningInputs, opts Options, cfg solver.Config) (*PlanResult, error) {
	start := time.Now()

	idx, products, warnings, err := s.prepare(in, opts)
	if err != nil {
		return nil, err
	}

	horizon := inferHorizon(in.Forecast)
	if len(horizon.Dates) == 0 {
		return nil, &InputValidationError{Issues: []string{"forecast is empty; cannot infer a planning horizon"}}
	}
	if maxDays := longestLegDays(idx); maxDays > 0 {
		horizon = temporal.BuildDaily(horizon.Start(), horizon.End(), maxDays)
	}

	offsets := cohort.ComputeOffsets(idx)
	if unreachable := unreachableDemandNodes(idx, offsets); len(unreachable) > 0 {
		return nil, &NetworkInfeasibilityError{UnreachableNodes: unreachable}
	}

	s.emit("preprocess.done", "global", map[string]any{"nodes": len(in.Nodes), "routes": len(in.Routes)})

	cohorts := cohort.Build(idx, offsets, horizon, products)
	s.emit("index.done", "global", map[string]any{
		"inventory_cohorts": len(cohorts.InventoryCohorts),
		"shipment_cohorts":  len(cohorts.ShipmentCohorts),
	})

	b := model.New(idx, cohorts, horizon, products, in.LaborCalendar(), in.Costs, in.InitialInventory, in.Forecast)
	b.ShortagesAllowed = opts.AllowShortages
	b.UsePalletHolding = opts.UsePalletHolding

	problem, err := b.Build()
	if err != nil {
		return nil, &ModelBuildError{Cause: err}
	}
	s.emit("build.done", "global", map[string]any{"vars": problem.NumVars(), "constraints": problem.NumConstraints()})
	metrics.ObserveProblemSize("single", problem.NumVars(), problem.NumConstraints())

	sol, status, err := s.runSolve(problem, cfg)
	if err != nil {
		metrics.ObserveSolve(statusLabelFor(err), "single", time.Since(start))
		return nil, err
	}
	metrics.ObserveSolve(status.String(), "single", time.Since(start))

	ex := extract.New(b, problem, sol)
	result, err := ex.Extract()
	if err != nil {
		return nil, &ModelBuildError{Cause: err}
	}
	s.emit("extract.done", "global", map[string]any{"batches": len(result.Batches), "shipments": len(result.Shipments)})

	return &PlanResult{
		Batches:         result.Batches,
		Shipments:       result.Shipments,
		CohortInventory: result.CohortInventory,
		CostBreakdown:   result.CostBreakdown,
		Solver:          SolverSummary{Termination: status, Gap: sol.Gap, WallTime: time.Since(start)},
		Validation:      result.Validation,
		Warnings:        warnings,
		Timeline:        s.timeline(),
	}, nil
}

// SolveRolling runs the pipeline as a sequence of overlapping windows over
// the inputs' natural horizon, windowDays wide, overlapping
// by overlapDays.
func (s *PlanningService) SolveRolling(ctx context.Context, in domain.PlanningInputs, opts Options, cfg solver.Config, windowDays, overlapDays int) (*PlanResult, error) {
	start := time.Now()

	idx, products, warnings, err := s.prepare(in, opts)
	if err != nil {
		return nil, err
	}

	horizon := inferHorizon(in.Forecast)
	if len(horizon.Dates) == 0 {
		return nil, &InputValidationError{Issues: []string{"forecast is empty; cannot infer a planning horizon"}}
	}
	if maxDays := longestLegDays(idx); maxDays > 0 {
		horizon = temporal.BuildDaily(horizon.Start(), horizon.End(), maxDays)
	}

	offsets := cohort.ComputeOffsets(idx)
	if unreachable := unreachableDemandNodes(idx, offsets); len(unreachable) > 0 {
		return nil, &NetworkInfeasibilityError{UnreachableNodes: unreachable}
	}

	driver := &rolling.Driver{
		Index: idx, Offsets: offsets, Products: products,
		Labor: in.LaborCalendar(), Costs: in.Costs, Forecast: in.Forecast,
		Solver: s.Solver, Config: cfg,
	}

	rollingResult, err := driver.Run(horizon, windowDays, overlapDays, in.InitialInventory)
	if err != nil {
		var mappedErr error = &ModelBuildError{Cause: err}
		if status, ok := statusFromSolveError(err); ok {
			mappedErr = status
		}
		metrics.ObserveSolve(statusLabelFor(mappedErr), "rolling", time.Since(start))
		return nil, mappedErr
	}

	var issues []string
	for _, w := range rollingResult.Windows {
		issues = append(issues, w.Result.Validation.Issues...)
	}
	metrics.RollingWindowsActive.Set(float64(len(rollingResult.Windows)))
	rollingStatus := "optimal"
	if len(issues) > 0 {
		rollingStatus = "feasible_with_warnings"
	}
	metrics.ObserveSolve(rollingStatus, "rolling", time.Since(start))

	return &PlanResult{
		Batches:       rollingResult.Batches,
		Shipments:     rollingResult.Shipments,
		CostBreakdown: rollingResult.Costs,
		Solver:        SolverSummary{WallTime: time.Since(start)},
		Validation:    extract.ValidationReport{PackagingOK: len(issues) == 0, MassBalanceOK: len(issues) == 0, Issues: issues},
		Warnings:      warnings,
		Timeline:      s.timeline(),
		Windows:       rollingResult.Windows,
	}, nil
}

// prepare runs the shared validation and network-build steps common to
// both Solve and SolveRolling.
func (s *PlanningService) prepare(in domain.PlanningInputs, opts Options) (*network.Index, []domain.ProductID, []Warning, error) {
	if !opts.UseBatchTracking {
		return nil, nil, nil, &InputValidationError{
			Issues: []string{"use_batch_tracking=false selects the aggregated legacy formulation, which this implementation does not provide"},
		}
	}

	validation := domain.NewInputValidator().Validate(in)
	if !validation.OK() {
		return nil, nil, nil, &InputValidationError{Issues: validation.Errors}
	}
	warnings := make([]Warning, 0, len(validation.Warnings))
	for _, w := range validation.Warnings {
		warnings = append(warnings, Warning{Message: w})
	}

	idx, err := network.Build(in)
	if err != nil {
		return nil, nil, nil, &InputValidationError{Issues: []string{err.Error()}}
	}

	return idx, distinctProducts(in.Forecast), warnings, nil
}

// runSolve invokes the solver and maps its outcome onto the error
// taxonomy: a proven-infeasible termination becomes InfeasibleError, a
// time-limit termination becomes TimeLimitWithoutSolutionError, and any
// other failure not attributable to the problem's own feasibility is a
// SolverError.
func (s *PlanningService) runSolve(problem *algebra.Problem, cfg solver.Config) (*solver.Solution, solver.Status, error) {
	if s.Solver == nil {
		return nil, solver.Infeasible, &SolverError{Cause: fmt.Errorf("no solver configured")}
	}

	sol, err := s.Solver.Solve(problem, cfg)
	if err != nil {
		if sol != nil && sol.Status == solver.TimeLimitWithoutSolution {
			return nil, sol.Status, &TimeLimitWithoutSolutionError{}
		}
		return nil, solver.Infeasible, &SolverError{Cause: err}
	}

	switch sol.Status {
	case solver.Infeasible:
		s.emit("solve.infeasible", "global", map[string]any{"iis_size": len(sol.IIS)})
		return nil, sol.Status, &InfeasibleError{IIS: sol.IIS}
	case solver.TimeLimitWithoutSolution:
		return nil, sol.Status, &TimeLimitWithoutSolutionError{}
	}

	s.emit("solve.done", "global", map[string]any{"status": sol.Status.String(), "gap": sol.Gap})
	return sol, sol.Status, nil
}

func (s *PlanningService) timeline() []events.Event {
	if s.Recorder == nil {
		return nil
	}
	return s.Recorder.Timeline()
}

func statusFromSolveError(err error) (error, bool) {
	var winErr *rolling.WindowSolveError
	if !errors.As(err, &winErr) {
		return nil, false
	}
	switch winErr.Status {
	case solver.Infeasible:
		return &InfeasibleError{IIS: winErr.IIS}, true
	case solver.TimeLimitWithoutSolution:
		return &TimeLimitWithoutSolutionError{}, true
	default:
		return &SolverError{Cause: winErr}, true
	}
}

func distinctProducts(forecast domain.Forecast) []domain.ProductID {
	seen := make(map[domain.ProductID]bool)
	var out []domain.ProductID
	for _, e := range forecast {
		if seen[e.ProductID] {
			continue
		}
		seen[e.ProductID] = true
		out = append(out, e.ProductID)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func inferHorizon(forecast domain.Forecast) temporal.Horizon {
	if len(forecast) == 0 {
		return temporal.Horizon{}
	}
	start, end := forecast[0].Date, forecast[0].Date
	for _, e := range forecast[1:] {
		if e.Date.Before(start) {
			start = e.Date
		}
		if e.Date.After(end) {
			end = e.Date
		}
	}
	return temporal.BuildDaily(start, end, 0)
}

func longestLegDays(idx *network.Index) int {
	max := 0
	for _, r := range idx.AllRoutes() {
		if d := network.CeilDays(r.TransitDays); d > max {
			max = d
		}
	}
	return max
}

// statusLabelFor gives a metrics label for a Solve/SolveRolling failure
// that never reached a solver.Status (input validation, network
// infeasibility, or a model-build defect).
func statusLabelFor(err error) string {
	switch {
	case asType[*InputValidationError](err):
		return "input_invalid"
	case asType[*NetworkInfeasibilityError](err):
		return "network_infeasible"
	case asType[*InfeasibleError](err):
		return solver.Infeasible.String()
	case asType[*TimeLimitWithoutSolutionError](err):
		return solver.TimeLimitWithoutSolution.String()
	case asType[*SolverError](err):
		return "solver_error"
	default:
		return "model_build_error"
	}
}

func asType[T error](err error) bool {
	var target T
	return errors.As(err, &target)
}

func unreachableDemandNodes(idx *network.Index, offsets cohort.OffsetTable) []string {
	var out []string
	for _, nodeID := range idx.DemandNodes {
		ambientDays, ambientOK := offsets.Lookup(nodeID, domain.StateAmbient)
		ambientOK = ambientOK && ambientDays <= domain.StateAmbient.MaxLifeDays()
		_, thawedOK := offsets.Lookup(nodeID, domain.StateThawed)
		if !ambientOK && !thawedOK {
			out = append(out, string(nodeID))
		}
	}
	return out
}
