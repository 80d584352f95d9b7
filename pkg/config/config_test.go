package config

import "testing"

func TestDefaultConfig(t *testing.T) {
	cfg := Default()

	if cfg.Solver.SolverName != "builtin" {
		t.Errorf("Solver.SolverName = %q, want %q", cfg.Solver.SolverName, "builtin")
	}
	if cfg.Solver.TimeLimitSeconds != 60 {
		t.Errorf("Solver.TimeLimitSeconds = %d, want 60", cfg.Solver.TimeLimitSeconds)
	}
	if cfg.Solver.MIPGap != 0.01 {
		t.Errorf("Solver.MIPGap = %v, want 0.01", cfg.Solver.MIPGap)
	}

	if !cfg.Planning.UseBatchTracking {
		t.Error("Planning.UseBatchTracking should default to true")
	}
	if cfg.Planning.AllowShortages {
		t.Error("Planning.AllowShortages should default to false")
	}
	if cfg.Planning.RollingWindowDays != 21 || cfg.Planning.RollingOverlapDays != 7 {
		t.Errorf("rolling window defaults = (%d, %d), want (21, 7)",
			cfg.Planning.RollingWindowDays, cfg.Planning.RollingOverlapDays)
	}
}

func TestSolverConfigToSolverConfig(t *testing.T) {
	cfg := Default()
	sc := cfg.Solver.ToSolverConfig()
	if sc.MIPGap != 0.01 {
		t.Errorf("ToSolverConfig MIPGap = %v, want 0.01", sc.MIPGap)
	}
	if sc.TimeLimit.Seconds() != 60 {
		t.Errorf("ToSolverConfig TimeLimit = %v, want 60s", sc.TimeLimit)
	}
}

func TestPlanningConfigToOptions(t *testing.T) {
	cfg := Default()
	opts := cfg.Planning.ToOptions()
	if !opts.UseBatchTracking {
		t.Error("ToOptions should carry UseBatchTracking through")
	}
}
