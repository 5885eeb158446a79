//go:build darwin

package collector

import (
	"github.com/cubestat/cubestat-go/daemon/metricname"
	"github.com/cubestat/cubestat-go/daemon/platform"
)

// NetworkCollector reads the already-a-rate `network` section of the
// PowerMetricsDoc (powermetrics samples its own delta internally, so no
// RateReader is involved here, unlike the Linux /proc/net/dev path).
type NetworkCollector struct{}

func NewNetworkCollector() *NetworkCollector { return &NetworkCollector{} }

func (c *NetworkCollector) Name() string { return "network" }

func (c *NetworkCollector) Collect(raw platform.Context) (map[metricname.Name]float64, error) {
	doc, ok := raw.(platform.PowerMetricsDoc)
	if !ok {
		return nil, errUnexpectedContext("network")
	}

	net := doc.Network()
	rx := net.Get("ibyte_rate").AsFloat()
	tx := net.Get("obyte_rate").AsFloat()

	return map[metricname.Name]float64{
		networkMetric("en0", "rx"): rx,
		networkMetric("en0", "tx"): tx,
		networkTotalRx:             rx,
		networkTotalTx:             tx,
	}, nil
}
