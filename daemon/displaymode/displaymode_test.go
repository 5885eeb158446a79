package displaymode

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cubestat/cubestat-go/daemon/domain"
)

func TestRegistryAppliesBoundHotkeys(t *testing.T) {
	r := NewRegistry()
	modes := domain.DefaultModes()

	assert.True(t, r.Apply(&modes, 'c'))
	assert.Equal(t, domain.CPUByCluster, modes.CPU)

	assert.True(t, r.Apply(&modes, 'g'))
	assert.Equal(t, domain.GPULoadOnly, modes.GPU)

	assert.True(t, r.Apply(&modes, 'p'))
	assert.Equal(t, domain.PowerAll, modes.Power)
}

func TestRegistryRejectsUnboundHotkeys(t *testing.T) {
	r := NewRegistry()
	modes := domain.DefaultModes()

	assert.False(t, r.Apply(&modes, 'q'))
	assert.False(t, r.Apply(&modes, '0'))
	assert.False(t, r.Recognizes('q'))
	assert.False(t, r.Recognizes('x'))
}

func TestRegistryCyclesWrapAround(t *testing.T) {
	r := NewRegistry()
	modes := domain.DefaultModes()

	var seen []domain.ToggleMode
	for i := 0; i < 2; i++ {
		r.Apply(&modes, 's')
		seen = append(seen, modes.Swap)
	}
	assert.Equal(t, domain.Hide, seen[0])
	assert.Equal(t, domain.Show, seen[1])
}
