package scheduler

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/require"

	"github.com/cubestat/cubestat-go/daemon/domain"
	"github.com/cubestat/cubestat-go/daemon/horizon"
	"github.com/cubestat/cubestat-go/daemon/metricname"
	"github.com/cubestat/cubestat-go/daemon/presenter"
	"github.com/cubestat/cubestat-go/daemon/store"
)

func newTestScheduler(t *testing.T, cols, rows int) (*Scheduler, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("")
	require.NoError(t, screen.Init())
	screen.SetSize(cols, rows)
	t.Cleanup(screen.Fini)

	st := store.New(500, nil)
	name, err := metricname.New("cpu.cpu.0.core.0.utilization.percent")
	require.NoError(t, err)
	st.Ingest(map[metricname.Name]float64{name: 42})

	sched := &Scheduler{
		Store:      st,
		Presenters: presenter.NewRegistry(),
		Config:     domain.DefaultConfig(),
		state:      &DisplayState{Modes: domain.DefaultModes()},
	}
	return sched, screen
}

func TestRenderDoesNotPanicOnMinimalTerminal(t *testing.T) {
	sched, screen := newTestScheduler(t, 1, 1)
	r := horizon.NewRenderer(screen, horizon.DefaultColorBand(8))
	sched.render(screen, r)
}

func TestRenderDrawsLegendAndChartRows(t *testing.T) {
	sched, screen := newTestScheduler(t, 40, 10)
	r := horizon.NewRenderer(screen, horizon.DefaultColorBand(8))

	sched.render(screen, r)

	// Row 0 is the legend line; it should carry the display title text.
	var legend []rune
	for i := 0; i < 20; i++ {
		ch, _, _, _ := screen.GetContent(i, 0)
		legend = append(legend, ch)
	}
	require.Contains(t, string(legend), "CPU")
}

func TestRenderClampsRowsOffToAvailableMetrics(t *testing.T) {
	sched, screen := newTestScheduler(t, 40, 10)
	r := horizon.NewRenderer(screen, horizon.DefaultColorBand(8))
	sched.state.Viewport.RowsOff = 1000

	sched.render(screen, r)
	require.Equal(t, 0, sched.lastMaxRowsOff) // only one metric, fits on screen
}
