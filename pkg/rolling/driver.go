package rolling

import (
	"fmt"

	"github.com/sverzijl/planning-latest-sub008/pkg/cohort"
	"github.com/sverzijl/planning-latest-sub008/pkg/domain"
	"github.com/sverzijl/planning-latest-sub008/pkg/extract"
	"github.com/sverzijl/planning-latest-sub008/pkg/model"
	"github.com/sverzijl/planning-latest-sub008/pkg/network"
	"github.com/sverzijl/planning-latest-sub008/pkg/solver"
	"github.com/sverzijl/planning-latest-sub008/pkg/temporal"
)

// Driver solves a global horizon as a sequence of overlapping windows,
// handing the committed region of one window's solution to the next as
// starting state: a fixed loop over successive batches of work, threading
// an accumulator between iterations.
type Driver struct {
	Index    *network.Index
	Offsets  cohort.OffsetTable
	Products []domain.ProductID
	Labor    domain.LaborCalendar
	Costs    domain.CostStructure
	Forecast domain.Forecast

	Solver solver.Solver
	Config solver.Config
}

// NewDriver builds a Driver, computing the reachability offsets once up
// front since they depend only on the network, not on any window.
func NewDriver(idx *network.Index, products []domain.ProductID, labor domain.LaborCalendar, costs domain.CostStructure, forecast domain.Forecast, sv solver.Solver, cfg solver.Config) *Driver {
	return &Driver{
		Index: idx, Offsets: cohort.ComputeOffsets(idx), Products: products,
		Labor: labor, Costs: costs, Forecast: forecast, Solver: sv, Config: cfg,
	}
}

// WindowSolveError reports a window whose solve did not reach a usable
// status (infeasible, unbounded, or time-limit-without-solution), so a
// caller higher up (pkg/planner) can translate it into the 
// error taxonomy without this package needing to know about that
// taxonomy itself.
type WindowSolveError struct {
	Window int
	Status solver.Status
	IIS    []string
}

func (e *WindowSolveError) Error() string {
	return fmt.Sprintf("rolling: window %d: solve did not succeed (status %s)", e.Window, e.Status)
}

// WindowResult pairs a solved window with the window description it
// corresponds to, so callers can see per-window diagnostics alongside the
// aggregated Result.
type WindowResult struct {
	Window   Window
	Result   *extract.Result
	Handoff  *HandoffState
}

// Result is the aggregated outcome of running every window to completion:
// the committed-region batches and shipments concatenated in window order,
// and a cost breakdown summed committed-region-only across windows.
type Result struct {
	Batches   []domain.ProductionBatch
	Shipments []domain.Shipment
	Costs     extract.CostBreakdown
	Windows   []WindowResult
}

// Run solves globalHorizon as windowDays-wide windows overlapping by
// overlapDays, in window order, committing each window's non-overlapping
// region before advancing.
func (d *Driver) Run(globalHorizon temporal.Horizon, windowDays, overlapDays int, initial domain.InitialInventory) (*Result, error) {
	windows := GenerateWindows(globalHorizon, windowDays, overlapDays)
	if len(windows) == 0 {
		return nil, fmt.Errorf("rolling: no windows generated for the given horizon")
	}

	handoff := NewHandoffState()
	if initial != nil {
		for k, v := range initial {
			handoff.Initial[k] = v
		}
	}

	result := &Result{}

	for _, w := range windows {
		winHorizon := globalHorizon.Slice(w.Start, w.End)
		cohorts := cohort.Build(d.Index, d.Offsets, winHorizon, d.Products)
		winForecast := filterForecast(d.Forecast, w.Start, w.End)

		b := model.New(d.Index, cohorts, winHorizon, d.Products, d.Labor, d.Costs, handoff.Initial, winForecast)
		b.PreArrivals = handoff.Arrivals

		problem, err := b.Build()
		if err != nil {
			return nil, fmt.Errorf("rolling: window %d: building model: %w", w.Index, err)
		}

		sol, err := d.Solver.Solve(problem, d.Config)
		if err != nil {
			return nil, fmt.Errorf("rolling: window %d: solving: %w", w.Index, err)
		}
		if !sol.Status.IsSuccess() {
			return nil, &WindowSolveError{Window: w.Index, Status: sol.Status, IIS: sol.IIS}
		}

		ex := extract.New(b, problem, sol)
		winResult, err := ex.Extract()
		if err != nil {
			return nil, fmt.Errorf("rolling: window %d: extracting: %w", w.Index, err)
		}
		if !winResult.Validation.OK() {
			return nil, fmt.Errorf("rolling: window %d: validation failed: %v", w.Index, winResult.Validation.Issues)
		}

		result.Batches = append(result.Batches, commitBatches(winResult.Batches, w)...)
		result.Shipments = append(result.Shipments, commitShipments(winResult.Shipments, w)...)
		commitCosts(ex, w, &result.Costs)

		nextHandoff := BuildHandoff(winResult, w.CommittedEnd)
		result.Windows = append(result.Windows, WindowResult{Window: w, Result: winResult, Handoff: nextHandoff})
		handoff = nextHandoff
	}

	return result, nil
}
