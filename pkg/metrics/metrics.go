// Package metrics exposes Prometheus instrumentation for solve telemetry,
// in the style Kubernetes controllers commonly register metrics:
// package-level vectors created with prometheus.NewXVec and registered
// once into a caller-supplied registry, rather than using the promauto
// global-registry shortcut, so a `planner serve` daemon can own its own
// registry instance.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "planner"

const (
	statusLabel = "status"
	modeLabel   = "mode" // "single" or "rolling"
)

var (
	// SolveDuration tracks wall-clock time per solve invocation, labeled
	// by termination status and solve mode.
	SolveDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "solve",
			Name:      "duration_seconds",
			Help:      "Wall-clock duration of a solve invocation, labeled by termination status and mode.",
			Buckets:   prometheus.ExponentialBuckets(0.1, 2, 12),
		},
		[]string{statusLabel, modeLabel},
	)

	// SolveTerminations counts solve outcomes by termination status.
	SolveTerminations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "solve",
			Name:      "terminations_total",
			Help:      "Number of solve invocations by termination status.",
		},
		[]string{statusLabel},
	)

	// ProblemVariables is the variable count of the most recently built
	// MILP, labeled by mode.
	ProblemVariables = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "model",
			Name:      "variables",
			Help:      "Number of decision variables in the most recently built problem.",
		},
		[]string{modeLabel},
	)

	// ProblemConstraints is the constraint count of the most recently
	// built MILP, labeled by mode.
	ProblemConstraints = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "model",
			Name:      "constraints",
			Help:      "Number of constraints in the most recently built problem.",
		},
		[]string{modeLabel},
	)

	// RollingWindowsActive is the number of rolling-horizon windows
	// solved so far in the current run.
	RollingWindowsActive = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "rolling",
			Name:      "windows_solved",
			Help:      "Number of rolling-horizon windows solved so far in the current run.",
		},
	)
)

// Registry bundles every collector this package defines for registration
// into a prometheus.Registerer (the default registry, or a caller-owned
// one for a long-running `planner serve` daemon).
func Registry() []prometheus.Collector {
	return []prometheus.Collector{
		SolveDuration, SolveTerminations, ProblemVariables, ProblemConstraints, RollingWindowsActive,
	}
}

// MustRegister registers every collector into r, panicking if a collector
// is already registered, the same fail-fast behavior used at init time
// elsewhere in this codebase.
func MustRegister(r prometheus.Registerer) {
	for _, c := range Registry() {
		r.MustRegister(c)
	}
}

// ObserveSolve records a completed solve's duration and termination
// status.
func ObserveSolve(status, mode string, duration time.Duration) {
	SolveDuration.WithLabelValues(status, mode).Observe(duration.Seconds())
	SolveTerminations.WithLabelValues(status).Inc()
}

// ObserveProblemSize records the variable/constraint counts of a just-built
// problem.
func ObserveProblemSize(mode string, vars, constraints int) {
	ProblemVariables.WithLabelValues(mode).Set(float64(vars))
	ProblemConstraints.WithLabelValues(mode).Set(float64(constraints))
}
