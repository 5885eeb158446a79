// Package collector implements the collectors of spec.md §4.2: one
// function per (domain, platform) pair reducing a platform.Context into a
// flat map of standardized metric names, using a RateReader to turn
// cumulative counters into per-second rates. The registry is assembled per
// platform in registry_linux.go / registry_darwin.go.
package collector

import (
	"fmt"
	"strings"

	"github.com/cubestat/cubestat-go/daemon/metricname"
	"github.com/cubestat/cubestat-go/daemon/platform"
)

// errUnexpectedContext reports a collector receiving the wrong raw.Context
// variant for its build (e.g. a PollingContext handed to a darwin-only
// collector) — a wiring bug in the registry, surfaced as an error rather
// than a type-assertion panic.
func errUnexpectedContext(collector string) error {
	return fmt.Errorf("collector %s: unexpected platform.Context variant", collector)
}

// clampPercent restricts a computed utilization to [0, 100], per spec.md
// §4.2's "individual utilizations are in [0, 100]" invariant.
func clampPercent(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

// activePercent converts a powermetrics dict's idle_ratio field (idle time
// as a fraction of the sampling interval just taken) to a busy percentage.
// Shared by the darwin CPU collector and the cross-platform GPU collector's
// Apple Silicon integrated-GPU reading.
func activePercent(v *platform.Value) float64 {
	idle := v.Get("idle_ratio").AsFloat()
	return clampPercent((1 - idle) * 100)
}

// Collector reduces one tick's raw platform observation to the standardized
// metrics it owns. Implementations keep their own RateReader and any other
// per-tick state (e.g. the darwin ANE max-watts lookup); the registry holds
// one long-lived instance per domain, not one per tick.
type Collector interface {
	// Name identifies the collector for logging and error attribution.
	Name() string

	// Collect returns this tick's metrics for raw, or an error. A non-nil
	// error is always errs.SourceTransient-worthy at the call site; a
	// collector that needs a first sample before it has data to report
	// returns an empty map, not an error.
	Collect(raw platform.Context) (map[metricname.Name]float64, error)
}

// sanitizeSegment turns an externally-sourced identifier (a disk device
// name, a network interface name, a GPU vendor string) into a valid
// metricname segment: lowercased, with every character outside
// [a-z0-9_] replaced by "_".
func sanitizeSegment(s string) string {
	s = strings.ToLower(s)
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '_':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	out := b.String()
	if out == "" {
		return "unknown"
	}
	return out
}
