//go:build linux

package collector

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/cubestat/cubestat-go/daemon/metricname"
	"github.com/cubestat/cubestat-go/daemon/platform"
	"github.com/cubestat/cubestat-go/daemon/rate"
)

// NetworkCollector emits per-interface and total network.*.{rx,tx}.bytes_per_sec
// from /proc/net/dev cumulative counters via a RateReader (spec.md §4.2
// Network), filtering the same ephemeral interface classes as
// taniwha3-tidewatch's NetworkCollector.
type NetworkCollector struct {
	rates *rate.Reader
}

func NewNetworkCollector(intervalSeconds float64) *NetworkCollector {
	return &NetworkCollector{rates: rate.New(intervalSeconds)}
}

func (c *NetworkCollector) Name() string { return "network" }

func (c *NetworkCollector) Collect(_ platform.Context) (map[metricname.Name]float64, error) {
	f, err := os.Open("/proc/net/dev")
	if err != nil {
		return nil, fmt.Errorf("network: open /proc/net/dev: %w", err)
	}
	defer f.Close()

	out := make(map[metricname.Name]float64)
	var totalRx, totalTx float64

	scanner := bufio.NewScanner(f)
	line := 0
	for scanner.Scan() {
		line++
		if line <= 2 {
			continue // header lines
		}
		parts := strings.SplitN(scanner.Text(), ":", 2)
		if len(parts) != 2 {
			continue
		}
		iface := strings.TrimSpace(parts[0])
		if iface == "" || isExcludedInterface(iface) {
			continue
		}

		fields := strings.Fields(parts[1])
		if len(fields) < 16 {
			continue
		}
		rxBytes, _ := strconv.ParseUint(fields[0], 10, 64)
		txBytes, _ := strconv.ParseUint(fields[8], 10, 64)

		rxRate := c.rates.Next(iface+".rx", float64(rxBytes))
		txRate := c.rates.Next(iface+".tx", float64(txBytes))

		out[networkMetric(iface, "rx")] = rxRate
		out[networkMetric(iface, "tx")] = txRate
		totalRx += rxRate
		totalTx += txRate
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("network: scan /proc/net/dev: %w", err)
	}

	out[networkTotalRx] = totalRx
	out[networkTotalTx] = totalTx
	return out, nil
}
