package rate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNextSequence(t *testing.T) {
	r := New(1.0)
	samples := []float64{100, 300, 350, 350, 340, 500}
	want := []float64{0, 200, 50, 0, 0, 160}

	for i, s := range samples {
		got := r.Next("disk.read.bytes", s)
		assert.Equal(t, want[i], got, "sample %d", i)
	}
}

func TestNextFirstCallIsZero(t *testing.T) {
	r := New(1.0)
	assert.Equal(t, 0.0, r.Next("k", 42))
}

func TestNextClampsNegative(t *testing.T) {
	r := New(1.0)
	r.Next("k", 100)
	assert.Equal(t, 0.0, r.Next("k", 10))
}

func TestNextIndependentKeys(t *testing.T) {
	r := New(2.0)
	r.Next("a", 10)
	r.Next("b", 10)
	assert.Equal(t, 5.0, r.Next("a", 20))
	assert.Equal(t, 10.0, r.Next("b", 30))
}

func TestForgetResetsBaseline(t *testing.T) {
	r := New(1.0)
	r.Next("k", 100)
	r.Forget("k")
	assert.Equal(t, 0.0, r.Next("k", 5))
}
