//go:build darwin

package collector

import (
	"strconv"

	"github.com/cubestat/cubestat-go/daemon/metricname"
	"github.com/cubestat/cubestat-go/daemon/platform"
)

// CPUCollector emits cpu.<cluster>.<idx>.core.<id>.utilization.percent and
// cpu.<cluster>.<idx>.total.utilization.percent for each cluster found in
// processor.clusters, plus cpu.total.count (spec.md §4.2 CPU, macOS branch).
// No RateReader is needed: powermetrics already reports idle_ratio as a
// fraction of the sampling interval just taken.
type CPUCollector struct{}

// NewCPUCollector constructs the darwin CPU collector.
func NewCPUCollector() *CPUCollector { return &CPUCollector{} }

func (c *CPUCollector) Name() string { return "cpu" }

func (c *CPUCollector) Collect(raw platform.Context) (map[metricname.Name]float64, error) {
	doc, ok := raw.(platform.PowerMetricsDoc)
	if !ok {
		return nil, errUnexpectedContext("cpu")
	}

	clusters := doc.Processor().Get("clusters").Items()
	out := make(map[metricname.Name]float64, len(clusters)*4)
	totalCores := 0

	for idx, cluster := range clusters {
		name := cluster.Get("name").AsString()
		if name == "" {
			name = "cluster"
		}

		cpus := cluster.Get("cpus").Items()
		var sum float64
		for _, cpu := range cpus {
			id := strconv.Itoa(int(cpu.Get("cpu").AsFloat()))
			active := activePercent(cpu)
			out[cpuMetric(name, idx, id)] = active
			sum += active
		}
		totalCores += len(cpus)

		if len(cpus) > 0 {
			out[cpuMetric(name, idx, "")] = sum / float64(len(cpus))
		} else {
			out[cpuMetric(name, idx, "")] = activePercent(cluster)
		}
	}

	out[cpuTotalCount] = float64(totalCores)
	return out, nil
}
