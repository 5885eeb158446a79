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

var (
	memUsedPercent = metricname.MustNew("memory.system.total.used.percent")
	memUsedBytes   = metricname.MustNew("memory.system.total.used.bytes")
	memWiredBytes  = metricname.MustNew("memory.system.wired.bytes")
	memMappedBytes = metricname.MustNew("memory.system.mapped.bytes")
)

// MemoryCollector emits memory.system.total.used.{percent,bytes} and the
// platform-extended breakdown memory.system.{wired,mapped}.bytes parsed
// from /proc/meminfo (spec.md §4.2 Memory).
type MemoryCollector struct{}

func NewMemoryCollector() *MemoryCollector { return &MemoryCollector{} }

func (c *MemoryCollector) Name() string { return "memory" }

func (c *MemoryCollector) Collect(_ platform.Context) (map[metricname.Name]float64, error) {
	f, err := os.Open("/proc/meminfo")
	if err != nil {
		return nil, fmt.Errorf("memory: open /proc/meminfo: %w", err)
	}
	defer f.Close()

	kb := make(map[string]uint64)
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) < 2 {
			continue
		}
		key := strings.TrimSuffix(fields[0], ":")
		val, err := strconv.ParseUint(fields[1], 10, 64)
		if err != nil {
			continue
		}
		kb[key] = val
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("memory: scan /proc/meminfo: %w", err)
	}

	total := kb["MemTotal"]
	available, ok := kb["MemAvailable"]
	if !ok {
		available = kb["MemFree"] + kb["Buffers"] + kb["Cached"]
	}
	used := uint64(0)
	if total > available {
		used = total - available
	}

	out := map[metricname.Name]float64{
		memUsedBytes: float64(used) * 1024,
	}
	if total > 0 {
		out[memUsedPercent] = clampPercent(float64(used) / float64(total) * 100)
	}
	// Linux's closest analogues to macOS's "wired"/"mapped" breakdown: kernel
	// non-reclaimable memory (Mapped itself is reported directly).
	if v, ok := kb["Mapped"]; ok {
		out[memMappedBytes] = float64(v) * 1024
	}
	if v, ok := kb["Unevictable"]; ok {
		out[memWiredBytes] = float64(v) * 1024
	}
	return out, nil
}
