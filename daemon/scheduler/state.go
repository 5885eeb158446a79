// Package scheduler implements spec.md §4.7/§5: the thread model owning
// the sampler worker, the terminal/input main thread, and the locking
// discipline (store lock, then display-state lock) that keeps concurrent
// ingests and renders from ever observing a partial tick.
package scheduler

import (
	"sync"

	"github.com/cubestat/cubestat-go/daemon/displaymode"
	"github.com/cubestat/cubestat-go/daemon/domain"
)

// DisplayState is the `Mutex<DisplayState>` spec.md §5 names: the
// viewport and mode bundle written only by the input handler and read by
// the renderer, both on the main thread, but still guarded by a real
// mutex.
type DisplayState struct {
	mu       sync.Mutex
	Viewport displaymode.Viewport
	Modes    domain.Modes
}

// NewDisplayState seeds the state with cubestat's own startup defaults.
func NewDisplayState() *DisplayState {
	return &DisplayState{Modes: domain.DefaultModes()}
}

// Snapshot returns a copy of the current viewport and modes under lock,
// cheap enough to call once per frame.
func (s *DisplayState) Snapshot() (displaymode.Viewport, domain.Modes) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.Viewport, s.Modes
}

// Toggle applies a hotkey against the mode registry under lock.
func (s *DisplayState) Toggle(registry displaymode.Registry, hotkey rune) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return registry.Apply(&s.Modes, hotkey)
}

// Scroll adjusts the viewport under lock.
func (s *DisplayState) Scroll(dx, dy, maxColsOff, maxRowsOff int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Viewport.Scroll(dx, dy, maxColsOff, maxRowsOff)
}

// ResetScroll unpauses under lock.
func (s *DisplayState) ResetScroll() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Viewport.Reset()
}
