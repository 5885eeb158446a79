//go:build darwin

package collector

import (
	"fmt"
	"os/exec"
	"regexp"
	"strconv"

	"github.com/cubestat/cubestat-go/daemon/metricname"
	"github.com/cubestat/cubestat-go/daemon/platform"
)

var swapUsedBytes = metricname.MustNew("swap.system.used.bytes")

var swapUsedPattern = regexp.MustCompile(`used\s*=\s*([0-9.]+)M`)

// SwapCollector shells out to `sysctl vm.swapusage`, same one-command
// style as MemoryCollector.
type SwapCollector struct{}

func NewSwapCollector() *SwapCollector { return &SwapCollector{} }

func (c *SwapCollector) Name() string { return "swap" }

func (c *SwapCollector) Collect(_ platform.Context) (map[metricname.Name]float64, error) {
	out, err := exec.Command("sysctl", "vm.swapusage").Output()
	if err != nil {
		return nil, fmt.Errorf("swap: sysctl vm.swapusage: %w", err)
	}

	match := swapUsedPattern.FindSubmatch(out)
	if match == nil {
		return map[metricname.Name]float64{swapUsedBytes: 0}, nil
	}
	usedMB, err := strconv.ParseFloat(string(match[1]), 64)
	if err != nil {
		return map[metricname.Name]float64{swapUsedBytes: 0}, nil
	}
	return map[metricname.Name]float64{swapUsedBytes: usedMB * 1024 * 1024}, nil
}
