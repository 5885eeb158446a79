package horizon

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/require"

	"github.com/cubestat/cubestat-go/daemon/domain"
)

func newTestScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("")
	require.NoError(t, screen.Init())
	screen.SetSize(20, 5)
	t.Cleanup(screen.Fini)
	return screen
}

func TestDrawRowLeftPadsShortSeries(t *testing.T) {
	screen := newTestScreen(t)
	r := NewRenderer(screen, DefaultColorBand(8))

	r.DrawRow(0, 0, 10, []float64{50, 60}, 100)

	pad, _, _, _ := screen.GetContent(0, 0)
	require.Equal(t, ' ', pad)

	last, _, _, _ := screen.GetContent(9, 0)
	require.NotEqual(t, ' ', last)
}

func TestDrawRowTruncatesLongSeries(t *testing.T) {
	screen := newTestScreen(t)
	band := DefaultColorBand(8)
	r := NewRenderer(screen, band)

	values := make([]float64, 15)
	for i := range values {
		values[i] = float64(i)
	}
	r.DrawRow(0, 0, 10, values, 100)

	// the rightmost cell reflects the last (most recent) value, not a
	// stale earlier one.
	last, _, _, _ := screen.GetContent(9, 0)
	require.Equal(t, band[band.Index(14, 100)].Rune, last)
}

func TestDrawLegendAnnotatesUnderViewAll(t *testing.T) {
	screen := newTestScreen(t)
	r := NewRenderer(screen, DefaultColorBand(8))

	r.DrawLegend(0, 0, 20, "CPU total", "50.0%", domain.ViewAll, 50, 100)

	var runes []rune
	for i := 0; i < 20; i++ {
		ch, _, _, _ := screen.GetContent(i, 0)
		runes = append(runes, ch)
	}
	require.Contains(t, string(runes), "50%")
}
