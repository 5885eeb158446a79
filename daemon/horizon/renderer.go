package horizon

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/cubestat/cubestat-go/daemon/domain"
)

// Renderer draws horizon rows and ruler lines directly onto a tcell.Screen
// cell grid, per spec.md §4.6. It holds no series data of its own — the
// scheduler supplies a values slice and scale_max for each row, already
// resolved by the store snapshot and the presenter.
type Renderer struct {
	screen tcell.Screen
	band   ColorBand
}

func NewRenderer(screen tcell.Screen, band ColorBand) *Renderer {
	return &Renderer{screen: screen, band: band}
}

// DrawRow renders one series at screen row y, columns [x, x+cols), with
// the most recent value at the rightmost column and left-padding with
// spaces when fewer values than columns are available, per spec.md §4.6.
func (r *Renderer) DrawRow(x, y, cols int, values []float64, scaleMax float64) {
	if cols <= 0 {
		return
	}
	if len(values) > cols {
		values = values[len(values)-cols:]
	}
	pad := cols - len(values)
	for i := 0; i < pad; i++ {
		r.screen.SetContent(x+i, y, ' ', nil, tcell.StyleDefault)
	}
	for i, v := range values {
		cell := r.band[r.band.Index(v, scaleMax)]
		r.screen.SetContent(x+pad+i, y, cell.Rune, nil, tcell.StyleDefault.Foreground(cell.Color))
	}
}

// DrawLegend draws the separator row spec.md §4.6 names: the row title,
// the current formatted value when view ∈ {one, all}, and a percent
// annotation of current/scale_max when view = all.
func (r *Renderer) DrawLegend(x, y, width int, title, currentFormatted string, view domain.ViewMode, current, scaleMax float64) {
	line := title
	switch view {
	case domain.ViewOne:
		line = fmt.Sprintf("%s %s", title, currentFormatted)
	case domain.ViewAll:
		pct := 0.0
		if scaleMax > 0 {
			pct = current / scaleMax * 100
		}
		line = fmt.Sprintf("%s %s (%.0f%%)", title, currentFormatted, pct)
	}
	writeLine(r.screen, x, y, width, line, tcell.StyleDefault.Bold(true))
}

func writeLine(screen tcell.Screen, x, y, width int, text string, style tcell.Style) {
	runes := []rune(text)
	for i := 0; i < width; i++ {
		r := ' '
		if i < len(runes) {
			r = runes[i]
		}
		screen.SetContent(x+i, y, r, nil, style)
	}
}
