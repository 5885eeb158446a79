package metricname

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewValid(t *testing.T) {
	n, err := New("cpu.performance.0.core.2.utilization.percent")
	require.NoError(t, err)
	assert.Equal(t, CPU, n.Domain())
	assert.Equal(t, Percent, n.Unit())
}

func TestNewRejectsUppercase(t *testing.T) {
	_, err := New("CPU.total.count")
	assert.Error(t, err)
}

func TestNewRejectsUnknownDomain(t *testing.T) {
	_, err := New("widget.total.count")
	assert.Error(t, err)
}

func TestNewRejectsUnknownUnit(t *testing.T) {
	_, err := New("cpu.total.frobnicates")
	assert.Error(t, err)
}

func TestNewRejectsEmptySegment(t *testing.T) {
	_, err := New("cpu..count")
	assert.Error(t, err)
}

func TestJoin(t *testing.T) {
	n, err := Join("disk", "device", "sda", "read", "bytes_per_sec")
	require.NoError(t, err)
	assert.Equal(t, "disk.device.sda.read.bytes_per_sec", n.String())
}
