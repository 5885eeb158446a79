package collector

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeSegment(t *testing.T) {
	assert.Equal(t, "nvme0n1", sanitizeSegment("nvme0n1"))
	assert.Equal(t, "e_cluster", sanitizeSegment("E-Cluster"))
	assert.Equal(t, "unknown", sanitizeSegment(""))
}

func TestCPUMetricClusterTotal(t *testing.T) {
	assert.Equal(t, "cpu.performance.0.total.utilization.percent", cpuMetric("performance", 0, "").String())
}

func TestCPUMetricCore(t *testing.T) {
	assert.Equal(t, "cpu.cpu.0.core.3.utilization.percent", cpuMetric("cpu", 0, "3").String())
}

func TestDiskMetric(t *testing.T) {
	assert.Equal(t, "disk.device.nvme0n1.read.bytes_per_sec", diskMetric("nvme0n1", "read").String())
}

func TestNetworkMetric(t *testing.T) {
	assert.Equal(t, "network.interface.eth0.rx.bytes_per_sec", networkMetric("eth0", "rx").String())
}

func TestGPUMetric(t *testing.T) {
	assert.Equal(t, "gpu.nvidia.0.memory.used.bytes", gpuMetric("nvidia", 0, "memory", "used", "bytes").String())
}

func TestIsExcludedInterface(t *testing.T) {
	assert.True(t, isExcludedInterface("lo"))
	assert.True(t, isExcludedInterface("docker0"))
	assert.True(t, isExcludedInterface("veth1a2b"))
	assert.False(t, isExcludedInterface("eth0"))
	assert.False(t, isExcludedInterface("wlan0"))
}

func TestClampPercent(t *testing.T) {
	assert.Equal(t, 0.0, clampPercent(-5))
	assert.Equal(t, 100.0, clampPercent(150))
	assert.Equal(t, 42.0, clampPercent(42))
}
