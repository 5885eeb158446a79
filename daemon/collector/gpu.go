package collector

import (
	"os/exec"
	"strconv"
	"strings"

	"github.com/cubestat/cubestat-go/daemon/metricname"
	"github.com/cubestat/cubestat-go/daemon/platform"
)

// GPUCollector probes nvidia-smi, rocm-smi and lspci in turn, adapted
// directly from the teacher's daemon/plugins/gpu/gpu.go GPUMonitor. It
// runs identically on every platform since GPUs are discovered through
// their own command-line tools rather than through the sampler's raw
// context; on darwin it additionally reads the PowerMetricsDoc's
// integrated-GPU section when present.
type GPUCollector struct{}

func NewGPUCollector() *GPUCollector { return &GPUCollector{} }

func (c *GPUCollector) Name() string { return "gpu" }

func (c *GPUCollector) Collect(raw platform.Context) (map[metricname.Name]float64, error) {
	out := make(map[metricname.Name]float64)
	count := 0

	count += collectNvidia(out)
	count += collectAMD(out)
	count += collectIntel(out)

	if doc, ok := raw.(platform.PowerMetricsDoc); ok {
		count += collectAppleIntegrated(out, doc)
	}

	out[metricname.MustNew("gpu.total.count")] = float64(count)
	return out, nil
}

func gpuMetric(vendor string, idx int, suffix ...string) metricname.Name {
	segs := append([]string{"gpu", sanitizeSegment(vendor), strconv.Itoa(idx)}, suffix...)
	n, err := metricname.Join(segs...)
	if err != nil {
		return metricname.MustNew("gpu.unknown.0.compute.utilization.percent")
	}
	return n
}

const notSupported = "[Not Supported]"

// collectNvidia shells out to nvidia-smi's CSV query mode, parsing exactly
// the fields the teacher's parseNvidiaCSVLine parsed, minus the
// temperature/fan/clock columns this viewer has no use for.
func collectNvidia(out map[metricname.Name]float64) int {
	data, err := exec.Command("nvidia-smi",
		"--query-gpu=index,utilization.gpu,memory.total,memory.used",
		"--format=csv,noheader,nounits",
	).Output()
	if err != nil {
		return 0
	}

	n := 0
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		fields := strings.Split(line, ",")
		if len(fields) < 4 {
			continue
		}
		for i := range fields {
			fields[i] = strings.TrimSpace(fields[i])
		}
		idx, err := strconv.Atoi(fields[0])
		if err != nil {
			continue
		}

		if fields[1] != notSupported && fields[1] != "" {
			if util, err := strconv.ParseFloat(fields[1], 64); err == nil {
				out[gpuMetric("nvidia", idx, "compute", "utilization", "percent")] = clampPercent(util)
			}
		}
		memTotal, totalOK := parseMiB(fields[2])
		memUsed, usedOK := parseMiB(fields[3])
		if totalOK {
			out[gpuMetric("nvidia", idx, "memory", "total", "bytes")] = memTotal
		}
		if usedOK {
			out[gpuMetric("nvidia", idx, "memory", "used", "bytes")] = memUsed
		}
		n++
	}
	return n
}

func parseMiB(field string) (float64, bool) {
	if field == notSupported || field == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(field, 64)
	if err != nil {
		return 0, false
	}
	return v * 1024 * 1024, true
}

// collectAMD shells out to rocm-smi; only utilization is reliably
// available across driver versions without deeper JSON parsing, matching
// the teacher's "simplified implementation" comment on getAMDGPUs.
func collectAMD(out map[metricname.Name]float64) int {
	data, err := exec.Command("rocm-smi", "--showuse").Output()
	if err != nil {
		return 0
	}
	n := 0
	for _, line := range strings.Split(string(data), "\n") {
		if !strings.Contains(line, "GPU use") {
			continue
		}
		fields := strings.Split(line, ":")
		if len(fields) < 2 {
			continue
		}
		util, err := strconv.ParseFloat(strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(fields[1]), "%")), 64)
		if err != nil {
			continue
		}
		out[gpuMetric("amd", n, "compute", "utilization", "percent")] = clampPercent(util)
		n++
	}
	return n
}

// collectIntel enumerates Intel GPUs via lspci; no standard CLI exposes
// Intel GPU utilization without extra privileges, so only presence
// (count) is reported, matching the teacher's getIntelGPUs.
func collectIntel(out map[metricname.Name]float64) int {
	data, err := exec.Command("lspci", "-d", "8086:", "-v").Output()
	if err != nil {
		return 0
	}
	n := 0
	for _, line := range strings.Split(string(data), "\n") {
		if strings.Contains(line, "VGA compatible controller") && strings.Contains(line, "Intel") {
			n++
		}
	}
	return n
}

// collectAppleIntegrated reads the gpu dict of a PowerMetricsDoc for
// Apple Silicon's unified-memory GPU: no separate VRAM, so only
// utilization is emitted (never a zero placeholder for memory).
func collectAppleIntegrated(out map[metricname.Name]float64, doc platform.PowerMetricsDoc) int {
	gpu := doc.GPU()
	if !gpu.Valid() {
		return 0
	}
	out[gpuMetric("apple", 0, "compute", "utilization", "percent")] = activePercent(gpu)
	return 1
}
