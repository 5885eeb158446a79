package collector

import "github.com/cubestat/cubestat-go/daemon/metricname"

func diskMetric(device, direction string) metricname.Name {
	n, err := metricname.Join("disk", "device", sanitizeSegment(device), direction, "bytes_per_sec")
	if err != nil {
		return metricname.MustNew("disk.device.unknown." + direction + ".bytes_per_sec")
	}
	return n
}

var (
	diskTotalRead  = metricname.MustNew("disk.total.read.bytes_per_sec")
	diskTotalWrite = metricname.MustNew("disk.total.write.bytes_per_sec")
)
