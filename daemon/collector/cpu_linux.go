//go:build linux

package collector

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/cubestat/cubestat-go/daemon/metricname"
	"github.com/cubestat/cubestat-go/daemon/platform"
)

// cpuTimes is one line of /proc/stat, in USER_HZ jiffies. Grounded on
// taniwha3-tidewatch's CPUStats: Total/Busy exclude guest time, which is
// already folded into User by the kernel.
type cpuTimes struct {
	user, nice, system, idle, iowait, irq, softirq, steal uint64
}

func (c cpuTimes) total() uint64 {
	return c.user + c.nice + c.system + c.idle + c.iowait + c.irq + c.softirq + c.steal
}

func (c cpuTimes) busy() uint64 {
	return c.total() - c.idle - c.iowait
}

// CPUCollector emits cpu.cpu.0.core.<i>.*, cpu.cpu.0.total.*, and
// cpu.total.count, computed as the busy-time delta between two
// /proc/stat reads (spec.md §4.2 CPU, Linux branch).
type CPUCollector struct {
	mu       sync.Mutex
	previous map[string]cpuTimes
	seeded   bool
}

// NewCPUCollector constructs the Linux CPU collector.
func NewCPUCollector() *CPUCollector {
	return &CPUCollector{previous: make(map[string]cpuTimes)}
}

func (c *CPUCollector) Name() string { return "cpu" }

// Collect requires two samples before it reports utilization, matching the
// RateReader "first call returns nothing usable" convention: the very
// first tick seeds the baseline and returns only cpu.total.count, not an
// error.
func (c *CPUCollector) Collect(_ platform.Context) (map[metricname.Name]float64, error) {
	current, err := readProcStat()
	if err != nil {
		return nil, fmt.Errorf("cpu: %w", err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.seeded {
		c.previous = current
		c.seeded = true
		return map[metricname.Name]float64{cpuTotalCount: float64(numCores(current))}, nil
	}

	out := make(map[metricname.Name]float64, len(current)+2)
	var sumBusy, sumTotal uint64

	for core, now := range current {
		prev, ok := c.previous[core]
		if !ok || now.total() < prev.total() {
			continue
		}
		deltaTotal := now.total() - prev.total()
		if deltaTotal == 0 {
			continue
		}
		deltaBusy := now.busy() - prev.busy()
		pct := clampPercent(float64(deltaBusy) / float64(deltaTotal) * 100)

		if core == "cpu" {
			continue // aggregate row is derived below, not from /proc/stat's own "cpu " line
		}
		id := strings.TrimPrefix(core, "cpu")
		out[cpuMetric("cpu", 0, id)] = pct
		sumBusy += deltaBusy
		sumTotal += deltaTotal
	}

	if sumTotal > 0 {
		out[cpuMetric("cpu", 0, "")] = clampPercent(float64(sumBusy) / float64(sumTotal) * 100)
	}
	out[cpuTotalCount] = float64(numCores(current))

	c.previous = current
	return out, nil
}

func numCores(stats map[string]cpuTimes) int {
	n := 0
	for core := range stats {
		if core != "cpu" {
			n++
		}
	}
	return n
}

// readProcStat parses /proc/stat into per-core counters, keyed by the
// field-0 label ("cpu" for the aggregate row, "cpu0", "cpu1", ... per core).
func readProcStat() (map[string]cpuTimes, error) {
	f, err := os.Open("/proc/stat")
	if err != nil {
		return nil, fmt.Errorf("open /proc/stat: %w", err)
	}
	defer f.Close()

	stats := make(map[string]cpuTimes)
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if !strings.HasPrefix(line, "cpu") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 8 {
			continue
		}
		var t cpuTimes
		vals := make([]uint64, 7)
		for i := 0; i < 7; i++ {
			vals[i], _ = strconv.ParseUint(fields[i+1], 10, 64)
		}
		t.user, t.nice, t.system, t.idle, t.iowait, t.irq, t.softirq = vals[0], vals[1], vals[2], vals[3], vals[4], vals[5], vals[6]
		if len(fields) > 8 {
			t.steal, _ = strconv.ParseUint(fields[8], 10, 64)
		}
		stats[fields[0]] = t
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan /proc/stat: %w", err)
	}
	return stats, nil
}
