package store

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cubestat/cubestat-go/daemon/metricname"
)

func mustName(t *testing.T, raw string) metricname.Name {
	t.Helper()
	n, err := metricname.New(raw)
	require.NoError(t, err)
	return n
}

func TestIngestThenSnapshot(t *testing.T) {
	s := New(10, nil)
	name := mustName(t, "cpu.total.count")

	s.Ingest(map[metricname.Name]float64{name: 4})

	values, _ := s.Snapshot(name, 1, 0)
	assert.Equal(t, []float64{4}, values)
}

func TestSnapshotPadsWithZeros(t *testing.T) {
	s := New(10, nil)
	name := mustName(t, "cpu.total.count")
	s.Ingest(map[metricname.Name]float64{name: 1})
	s.Ingest(map[metricname.Name]float64{name: 2})

	values, max := s.Snapshot(name, 5, 0)
	assert.Equal(t, []float64{0, 0, 0, 1, 2}, values)
	assert.Equal(t, 2.0, max)
}

func TestSnapshotUnknownSeriesIsZeroed(t *testing.T) {
	s := New(10, nil)
	values, max := s.Snapshot(mustName(t, "cpu.total.count"), 3, 0)
	assert.Equal(t, []float64{0, 0, 0}, values)
	assert.Equal(t, 0.0, max)
}

func TestSnapshotZeroColsReturnsEmpty(t *testing.T) {
	s := New(10, nil)
	name := mustName(t, "cpu.total.count")
	s.Ingest(map[metricname.Name]float64{name: 1})
	values, _ := s.Snapshot(name, 0, 0)
	assert.Empty(t, values)
}

func TestBufferCapacityEnforced(t *testing.T) {
	s := New(3, nil)
	name := mustName(t, "cpu.total.count")
	for i := 0; i < 10; i++ {
		s.Ingest(map[metricname.Name]float64{name: float64(i)})
	}
	assert.Equal(t, 3, s.Len(name))
	values, _ := s.Snapshot(name, 3, 0)
	assert.Equal(t, []float64{7, 8, 9}, values)
}

func TestBufferSizeOneAlwaysLengthOne(t *testing.T) {
	s := New(1, nil)
	name := mustName(t, "cpu.total.count")
	for i := 0; i < 5; i++ {
		s.Ingest(map[metricname.Name]float64{name: float64(i)})
		assert.Equal(t, 1, s.Len(name))
	}
}

func TestSeriesPreserveInsertionOrder(t *testing.T) {
	s := New(10, nil)
	b := mustName(t, "cpu.total.count")
	a := mustName(t, "memory.system.total.used.percent")
	s.Ingest(map[metricname.Name]float64{b: 1})
	s.Ingest(map[metricname.Name]float64{a: 1})
	s.Ingest(map[metricname.Name]float64{b: 2})

	assert.Equal(t, []metricname.Name{b, a}, s.Names())
}

func TestScrollOffsetFreezesTail(t *testing.T) {
	s := New(10, nil)
	name := mustName(t, "cpu.total.count")
	for i := 1; i <= 5; i++ {
		s.Ingest(map[metricname.Name]float64{name: float64(i)})
	}
	frozen, _ := s.Snapshot(name, 1, 3)
	assert.Equal(t, []float64{2}, frozen)

	unfrozen, _ := s.Snapshot(name, 1, 0)
	assert.Equal(t, []float64{5}, unfrozen)
}

// TestConcurrentIngestAndSnapshot exercises the invariant that a snapshot
// taken after an ingest completes always includes that ingest's writes.
func TestConcurrentIngestAndSnapshot(t *testing.T) {
	s := New(50, nil)
	name := mustName(t, "cpu.total.count")

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < 200; i++ {
			s.Ingest(map[metricname.Name]float64{name: float64(i)})
		}
	}()

	for i := 0; i < 200; i++ {
		values, _ := s.Snapshot(name, 50, 0)
		for _, v := range values {
			assert.GreaterOrEqual(t, v, 0.0)
		}
	}
	wg.Wait()

	assert.Equal(t, 50, s.Len(name))
	latest, _ := s.Snapshot(name, 1, 0)
	assert.Equal(t, []float64{199}, latest)
}
