package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRingSnapshotWithinCapacity(t *testing.T) {
	r := newRing(5)
	r.push(1)
	r.push(2)
	r.push(3)
	assert.Equal(t, []float64{0, 0, 1, 2, 3}, r.snapshot(5, 0))
}

func TestRingSnapshotOverflowDropsOldest(t *testing.T) {
	r := newRing(3)
	for i := 1; i <= 5; i++ {
		r.push(float64(i))
	}
	assert.Equal(t, []float64{3, 4, 5}, r.snapshot(3, 0))
}

func TestRingSnapshotNarrowerThanBuffer(t *testing.T) {
	r := newRing(5)
	for i := 1; i <= 5; i++ {
		r.push(float64(i))
	}
	assert.Equal(t, []float64{4, 5}, r.snapshot(2, 0))
}

func TestRingSnapshotOffsetIntoPast(t *testing.T) {
	r := newRing(5)
	for i := 1; i <= 5; i++ {
		r.push(float64(i))
	}
	assert.Equal(t, []float64{3}, r.snapshot(1, 2))
}

func TestRingSnapshotOffsetBeyondHistoryClampsToZeroPad(t *testing.T) {
	r := newRing(5)
	r.push(1)
	r.push(2)
	assert.Equal(t, []float64{0, 0, 0}, r.snapshot(3, 10))
}
