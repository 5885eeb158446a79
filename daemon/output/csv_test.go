package output

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cubestat/cubestat-go/daemon/metricname"
)

func TestCSVWriterEmitsHeaderOnce(t *testing.T) {
	var buf bytes.Buffer
	w := NewCSVWriter(&buf)
	name := metricname.MustNew("memory.system.total.used.percent")

	require.NoError(t, w.WriteTick(1750693377.593887, map[metricname.Name]float64{name: 78.5}))
	require.NoError(t, w.WriteTick(1750693378.593887, map[metricname.Name]float64{name: 80}))

	lines := bytes.Split(bytes.TrimRight(buf.Bytes(), "\n"), []byte("\n"))
	require.Len(t, lines, 3)
	assert.Equal(t, "timestamp,metric,value", string(lines[0]))
}

func TestCSVWriterRowShapeMatchesScenario(t *testing.T) {
	var buf bytes.Buffer
	w := NewCSVWriter(&buf)
	name := metricname.MustNew("memory.system.total.used.percent")

	require.NoError(t, w.WriteTick(1750693377.593887, map[metricname.Name]float64{name: 78.5}))

	lines := bytes.Split(bytes.TrimRight(buf.Bytes(), "\n"), []byte("\n"))
	require.Len(t, lines, 2)
	assert.Equal(t, "1750693377.593887,memory.system.total.used.percent,78.5", string(lines[1]))
}

func TestCSVWriterPreservesFirstSeenOrderAcrossTicks(t *testing.T) {
	var buf bytes.Buffer
	w := NewCSVWriter(&buf)
	a := metricname.MustNew("cpu.cpu.0.total.utilization.percent")
	b := metricname.MustNew("memory.system.total.used.percent")

	require.NoError(t, w.WriteTick(1, map[metricname.Name]float64{b: 1}))
	require.NoError(t, w.WriteTick(2, map[metricname.Name]float64{a: 3, b: 2}))

	lines := bytes.Split(bytes.TrimRight(buf.Bytes(), "\n"), []byte("\n"))
	require.Len(t, lines, 4)
	assert.Contains(t, string(lines[2]), "memory.system.total.used.percent")
	assert.Contains(t, string(lines[3]), "cpu.cpu.0.total.utilization.percent")
}
