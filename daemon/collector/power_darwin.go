//go:build darwin

package collector

import (
	"github.com/cubestat/cubestat-go/daemon/metricname"
	"github.com/cubestat/cubestat-go/daemon/platform"
)

var (
	powerTotal = metricname.MustNew("power.component.total.consumption.watts")
	powerCPU   = metricname.MustNew("power.component.cpu.consumption.watts")
	powerGPU   = metricname.MustNew("power.component.gpu.consumption.watts")
	powerANE   = metricname.MustNew("power.component.ane.consumption.watts")
)

// milliwattsToWatts converts powermetrics' mW power fields to watts.
const milliwattsToWatts = 1.0 / 1000.0

// PowerCollector emits power.component.{total,cpu,gpu,ane}.consumption.watts
// from the processor dict's *_power fields (spec.md §4.2 Power). Only
// available on the macOS subprocess path, as spec.md requires.
type PowerCollector struct{}

func NewPowerCollector() *PowerCollector { return &PowerCollector{} }

func (c *PowerCollector) Name() string { return "power" }

func (c *PowerCollector) Collect(raw platform.Context) (map[metricname.Name]float64, error) {
	doc, ok := raw.(platform.PowerMetricsDoc)
	if !ok {
		return nil, errUnexpectedContext("power")
	}

	proc := doc.Processor()
	cpuW := proc.Get("cpu_power").AsFloat() * milliwattsToWatts
	gpuW := proc.Get("gpu_power").AsFloat() * milliwattsToWatts
	aneW := proc.Get("ane_power").AsFloat() * milliwattsToWatts
	total := proc.Get("combined_power").AsFloat() * milliwattsToWatts
	if total == 0 {
		total = cpuW + gpuW + aneW
	}

	return map[metricname.Name]float64{
		powerTotal: total,
		powerCPU:   cpuW,
		powerGPU:   gpuW,
		powerANE:   aneW,
	}, nil
}

// ANEWatts exposes the processor.ane_power field (in watts) for the ANE
// collector, which needs the raw wattage rather than this collector's
// already-formatted map.
func ANEWatts(doc platform.PowerMetricsDoc) float64 {
	return doc.Processor().Get("ane_power").AsFloat() * milliwattsToWatts
}
