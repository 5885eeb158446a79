package horizon

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultColorBandSizeIs3N(t *testing.T) {
	band := DefaultColorBand(8)
	require.Len(t, band, 24)
}

func TestColorBandIndexZeroAtZeroValue(t *testing.T) {
	band := DefaultColorBand(8)
	assert.Equal(t, 0, band.Index(0, 100))
}

func TestColorBandIndexClampsAtMax(t *testing.T) {
	band := DefaultColorBand(8)
	assert.Equal(t, len(band)-1, band.Index(1000, 100))
	assert.Equal(t, len(band)-1, band.Index(100, 100))
}

func TestColorBandIndexZeroWhenScaleMaxIsZero(t *testing.T) {
	band := DefaultColorBand(8)
	assert.Equal(t, 0, band.Index(5, 0))
}

func TestColorBandIndexMonotonic(t *testing.T) {
	band := DefaultColorBand(8)
	prev := -1
	for v := 0.0; v <= 100; v += 5 {
		idx := band.Index(v, 100)
		assert.GreaterOrEqual(t, idx, prev)
		prev = idx
	}
}
