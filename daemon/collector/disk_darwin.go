//go:build darwin

package collector

import (
	"github.com/cubestat/cubestat-go/daemon/metricname"
	"github.com/cubestat/cubestat-go/daemon/platform"
)

// DiskCollector reads the already-a-rate `disk` section of the
// PowerMetricsDoc. powermetrics' disk sampler reports one aggregate
// rbytes_per_s/wbytes_per_s pair rather than a per-device breakdown, so
// this collector only ever populates the "disk0" device plus the totals.
type DiskCollector struct{}

func NewDiskCollector() *DiskCollector { return &DiskCollector{} }

func (c *DiskCollector) Name() string { return "disk" }

func (c *DiskCollector) Collect(raw platform.Context) (map[metricname.Name]float64, error) {
	doc, ok := raw.(platform.PowerMetricsDoc)
	if !ok {
		return nil, errUnexpectedContext("disk")
	}

	disk := doc.Disk()
	read := disk.Get("rbytes_per_s").AsFloat()
	write := disk.Get("wbytes_per_s").AsFloat()

	return map[metricname.Name]float64{
		diskMetric("disk0", "read"):  read,
		diskMetric("disk0", "write"): write,
		diskTotalRead:                read,
		diskTotalWrite:               write,
	}, nil
}
