package collector

import (
	"strconv"

	"github.com/cubestat/cubestat-go/daemon/metricname"
)

// cpuMetric builds the per-core or per-cluster-total standardized name:
// cpu.<clusterName>.<clusterIdx>.core.<coreID>.utilization.percent, or the
// .total. variant when coreID is "".
func cpuMetric(cluster string, clusterIdx int, core string) metricname.Name {
	segs := []string{"cpu", sanitizeSegment(cluster), strconv.Itoa(clusterIdx)}
	if core == "" {
		segs = append(segs, "total")
	} else {
		segs = append(segs, "core", sanitizeSegment(core))
	}
	segs = append(segs, "utilization", "percent")
	n, err := metricname.Join(segs...)
	if err != nil {
		return metricname.MustNew("cpu.unknown.0.total.utilization.percent")
	}
	return n
}

var cpuTotalCount = metricname.MustNew("cpu.total.count")
