//go:build darwin

package collector

import "github.com/rs/zerolog"

// NewRegistry returns the darwin collector set: CPU/GPU/power/accel read
// the shared PowerMetricsDoc the subprocess sampler produces; memory/swap
// shell out to their own one-shot commands since powermetrics doesn't
// carry those samplers in the fixed set this program requests.
func NewRegistry(log *zerolog.Logger) []Collector {
	return []Collector{
		NewCPUCollector(),
		NewMemoryCollector(),
		NewSwapCollector(),
		NewDiskCollector(),
		NewNetworkCollector(),
		NewGPUCollector(),
		NewPowerCollector(),
		NewANECollector(log),
	}
}
