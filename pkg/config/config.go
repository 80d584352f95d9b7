// Package config loads the planner's TOML-backed configuration: nested,
// TOML-tagged sections with a Default constructor, unlike the MRP
// engine's own config surface, which takes its configuration as plain
// constructor arguments.
package config

import (
	"fmt"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/sverzijl/planning-latest-sub008/pkg/planner"
	"github.com/sverzijl/planning-latest-sub008/pkg/solver"
	"github.com/sverzijl/planning-latest-sub008/pkg/temporal"
)

// SolverConfig is the TOML-tagged mirror of solver.Config plus the
// free-form "Solver configuration" fields (solver_name, threads,
// solver_options) that this single built-in backend doesn't currently
// act on but still accepts for interface compatibility with a future
// alternate Solver implementation.
type SolverConfig struct {
	SolverName      string            `toml:"solver_name"`
	TimeLimitSeconds int              `toml:"time_limit_seconds"`
	MIPGap          float64           `toml:"mip_gap"`
	Threads         int               `toml:"threads"`
	SolverOptions   map[string]string `toml:"solver_options"`
}

// ToSolverConfig converts to the solver package's runtime Config.
func (c SolverConfig) ToSolverConfig() solver.Config {
	return solver.Config{
		TimeLimit: time.Duration(c.TimeLimitSeconds) * time.Second,
		MIPGap:    c.MIPGap,
	}
}

// GranularityConfig is the TOML-tagged mirror of the optional
// "granularity_config" block.
type GranularityConfig struct {
	NearTermDays    int `toml:"near_term_days"`
	NearGranularity int `toml:"near_granularity"`
	FarGranularity  int `toml:"far_granularity"`
}

// ToTemporalConfig converts to pkg/temporal's runtime GranularityConfig.
func (g GranularityConfig) ToTemporalConfig() temporal.GranularityConfig {
	return temporal.GranularityConfig{
		NearTermDays: g.NearTermDays, NearGranularity: g.NearGranularity, FarGranularity: g.FarGranularity,
	}
}

// PlanningConfig is the TOML-tagged mirror of the documented
// "Configuration options" plus the rolling-horizon window parameters.
type PlanningConfig struct {
	UseBatchTracking            bool               `toml:"use_batch_tracking"`
	EnforceShelfLife            bool               `toml:"enforce_shelf_life"`
	AllowShortages              bool               `toml:"allow_shortages"`
	EnableProductionSmoothing   bool               `toml:"enable_production_smoothing"`
	EnforcePackagingConstraints bool               `toml:"enforce_packaging_constraints"`
	UsePalletHolding            bool               `toml:"use_pallet_holding"`
	Granularity                 *GranularityConfig `toml:"granularity_config"`

	RollingWindowDays   int `toml:"rolling_window_days"`
	RollingOverlapDays  int `toml:"rolling_overlap_days"`
}

// ToOptions converts to pkg/planner's runtime Options.
func (c PlanningConfig) ToOptions() planner.Options {
	return planner.Options{
		UseBatchTracking:            c.UseBatchTracking,
		EnforceShelfLife:            c.EnforceShelfLife,
		AllowShortages:              c.AllowShortages,
		EnableProductionSmoothing:   c.EnableProductionSmoothing,
		EnforcePackagingConstraints: c.EnforcePackagingConstraints,
		UsePalletHolding:            c.UsePalletHolding,
	}
}

// Config is the top-level file shape `cmd/planner` loads.
type Config struct {
	Solver   SolverConfig   `toml:"solver"`
	Planning PlanningConfig `toml:"planning"`
}

// Default returns the documented defaults for every field, so a
// caller always starts from a fully-populated config rather than relying
// on zero values scattered through the builder.
func Default() Config {
	return Config{
		Solver: SolverConfig{
			SolverName:       "builtin",
			TimeLimitSeconds: 60,
			MIPGap:           0.01,
			Threads:          1,
		},
		Planning: PlanningConfig{
			UseBatchTracking:            true,
			EnforceShelfLife:            true,
			AllowShortages:              false,
			EnableProductionSmoothing:   true,
			EnforcePackagingConstraints: true,
			RollingWindowDays:           21,
			RollingOverlapDays:          7,
		},
	}
}

// Load reads and parses a TOML file at path, starting from Default() so
// any field the file omits keeps its documented default rather than
// zeroing out.
func Load(path string) (Config, error) {
	cfg := Default()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: loading %s: %w", path, err)
	}
	return cfg, nil
}
