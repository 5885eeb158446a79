//go:build linux

package collector

// NewRegistry returns the Linux collector set: every collector reads
// /proc or shells out to a CLI tool directly, independent of anything the
// sampler's PollingContext carries beyond its timestamp.
func NewRegistry(refreshIntervalSeconds float64) []Collector {
	return []Collector{
		NewCPUCollector(),
		NewMemoryCollector(),
		NewSwapCollector(),
		NewDiskCollector(refreshIntervalSeconds),
		NewNetworkCollector(refreshIntervalSeconds),
		NewGPUCollector(),
	}
}
