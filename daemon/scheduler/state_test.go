package scheduler

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cubestat/cubestat-go/daemon/displaymode"
	"github.com/cubestat/cubestat-go/daemon/domain"
)

func TestDisplayStateToggleCyclesMode(t *testing.T) {
	state := NewDisplayState()
	registry := displaymode.NewRegistry()

	assert.True(t, state.Toggle(registry, 'c'))
	_, modes := state.Snapshot()
	assert.Equal(t, domain.CPUByCluster, modes.CPU)
}

func TestDisplayStateToggleRejectsUnboundHotkey(t *testing.T) {
	state := NewDisplayState()
	registry := displaymode.NewRegistry()
	assert.False(t, state.Toggle(registry, 'q'))
}

func TestDisplayStateScrollAndReset(t *testing.T) {
	state := NewDisplayState()
	state.Scroll(3, 0, 10, 10)
	viewport, _ := state.Snapshot()
	assert.Equal(t, 3, viewport.ColsOff)
	assert.True(t, viewport.Paused())

	state.ResetScroll()
	viewport, _ = state.Snapshot()
	assert.False(t, viewport.Paused())
}
