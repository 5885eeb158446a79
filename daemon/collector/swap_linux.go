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
)

var swapUsedBytes = metricname.MustNew("swap.system.used.bytes")

// SwapCollector emits swap.system.used.bytes from /proc/meminfo's
// SwapTotal/SwapFree pair. Absolute bytes, not a rate (spec.md §4.2 Swap).
type SwapCollector struct{}

func NewSwapCollector() *SwapCollector { return &SwapCollector{} }

func (c *SwapCollector) Name() string { return "swap" }

func (c *SwapCollector) Collect(_ platform.Context) (map[metricname.Name]float64, error) {
	f, err := os.Open("/proc/meminfo")
	if err != nil {
		return nil, fmt.Errorf("swap: open /proc/meminfo: %w", err)
	}
	defer f.Close()

	var total, free uint64
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) < 2 {
			continue
		}
		switch strings.TrimSuffix(fields[0], ":") {
		case "SwapTotal":
			total, _ = strconv.ParseUint(fields[1], 10, 64)
		case "SwapFree":
			free, _ = strconv.ParseUint(fields[1], 10, 64)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("swap: scan /proc/meminfo: %w", err)
	}

	used := uint64(0)
	if total > free {
		used = total - free
	}
	return map[metricname.Name]float64{swapUsedBytes: float64(used) * 1024}, nil
}
