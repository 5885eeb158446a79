package presenter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cubestat/cubestat-go/daemon/domain"
	"github.com/cubestat/cubestat-go/daemon/metricname"
)

func name(t *testing.T, raw string) metricname.Name {
	t.Helper()
	n, err := metricname.New(raw)
	require.NoError(t, err)
	return n
}

// TestCPUDisplayOrdering reproduces spec.md §8 scenario 2 literally: two
// clusters, performance {0,1} and efficiency {2,3}, under by_core mode.
func TestCPUDisplayOrdering(t *testing.T) {
	names := []metricname.Name{
		name(t, "cpu.efficiency.1.total.utilization.percent"),
		name(t, "cpu.efficiency.1.core.3.utilization.percent"),
		name(t, "cpu.efficiency.1.core.2.utilization.percent"),
		name(t, "cpu.performance.0.total.utilization.percent"),
		name(t, "cpu.performance.0.core.1.utilization.percent"),
		name(t, "cpu.performance.0.core.0.utilization.percent"),
	}

	p := cpuPresenter{}
	ordered := p.Order(names, domain.Modes{CPU: domain.CPUByCore})

	var titles []string
	for _, n := range ordered {
		title, visible := p.DisplayName(n, domain.Modes{CPU: domain.CPUByCore})
		require.True(t, visible)
		titles = append(titles, title)
	}

	assert.Equal(t, []string{
		"Performance total",
		"Performance CPU 0",
		"Performance CPU 1",
		"Efficiency total",
		"Efficiency CPU 2",
		"Efficiency CPU 3",
	}, titles)
}

func TestCPUByClusterHidesCoreRows(t *testing.T) {
	p := cpuPresenter{}
	_, visOfCore := p.DisplayName(name(t, "cpu.cpu.0.core.0.utilization.percent"), domain.Modes{CPU: domain.CPUByCluster})
	_, visOfTotal := p.DisplayName(name(t, "cpu.cpu.0.total.utilization.percent"), domain.Modes{CPU: domain.CPUByCluster})
	assert.False(t, visOfCore)
	assert.True(t, visOfTotal)
}

func TestCPUAllModeHidesClusterTotal(t *testing.T) {
	p := cpuPresenter{}
	_, visOfCore := p.DisplayName(name(t, "cpu.cpu.0.core.0.utilization.percent"), domain.Modes{CPU: domain.CPUAll})
	_, visOfTotal := p.DisplayName(name(t, "cpu.cpu.0.total.utilization.percent"), domain.Modes{CPU: domain.CPUAll})
	assert.True(t, visOfCore)
	assert.False(t, visOfTotal)
}

func TestFormatPercentAndWatts(t *testing.T) {
	assert.Equal(t, "78.5%", Format(metricname.Percent, 78.5))
	assert.Equal(t, "2.0W", Format(metricname.Watts, 2.0))
}

func TestFormatBytesPerSecBuckets(t *testing.T) {
	assert.Equal(t, "500B/s", Format(metricname.BytesPerSec, 500))
	assert.Equal(t, "1.5KB/s", Format(metricname.BytesPerSec, 1500))
	assert.Equal(t, "2.0MB/s", Format(metricname.BytesPerSec, 2_000_000))
}

func TestScalePolicyPercentIsAlways100(t *testing.T) {
	assert.Equal(t, 100.0, ScalePolicy(metricname.Percent, []float64{1, 50, 99}))
}

func TestScalePolicyRatePowerOf10Ceiling(t *testing.T) {
	assert.Equal(t, 1000.0, ScalePolicy(metricname.BytesPerSec, []float64{0, 250, 999}))
	assert.Equal(t, 10000.0, ScalePolicy(metricname.BytesPerSec, []float64{1000, 9999}))
}

// TestANEScalingScenario checks the watts/max_watts·100 arithmetic of the
// ANE scenario with a local clamp copy; the darwin-only ANE collector
// itself is not exercised here.
func TestANEScalingScenario(t *testing.T) {
	maxWatts := 8.0
	watts := 2.0
	assert.Equal(t, 25.0, clampPercentLocal(watts/maxWatts*100))
}

func clampPercentLocal(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
