package displaymode

// Viewport is spec.md §3's scroll/pause state: rows_off paginates past the
// rows that don't fit on screen, cols_off scrolls left into history, and
// Paused is true exactly when cols_off > 0.
type Viewport struct {
	RowsOff int
	ColsOff int
}

// Paused reports the derived pause state: scrolled left from the present.
func (v Viewport) Paused() bool { return v.ColsOff > 0 }

// Scroll adjusts the viewport by (dx, dy), clamping rows_off to
// [0, maxRowsOff] and cols_off to [0, maxColsOff]. maxRowsOff/maxColsOff
// are supplied by the caller each frame since they depend on the current
// terminal size and series count.
func (v *Viewport) Scroll(dx, dy, maxColsOff, maxRowsOff int) {
	v.ColsOff = clamp(v.ColsOff+dx, 0, maxColsOff)
	v.RowsOff = clamp(v.RowsOff+dy, 0, maxRowsOff)
}

// Reset unpauses and returns to the present, per spec.md §4.5's "0 resets
// cols_off and unpauses".
func (v *Viewport) Reset() {
	v.ColsOff = 0
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		hi = lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
