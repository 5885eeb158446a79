package displaymode

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestViewportPausedFollowsColsOff(t *testing.T) {
	v := Viewport{}
	assert.False(t, v.Paused())

	v.Scroll(1, 0, 100, 100)
	assert.True(t, v.Paused())

	v.Reset()
	assert.False(t, v.Paused())
}

func TestViewportScrollClamps(t *testing.T) {
	v := Viewport{}
	v.Scroll(-5, -5, 10, 10)
	assert.Equal(t, 0, v.ColsOff)
	assert.Equal(t, 0, v.RowsOff)

	v.Scroll(20, 20, 10, 10)
	assert.Equal(t, 10, v.ColsOff)
	assert.Equal(t, 10, v.RowsOff)
}
