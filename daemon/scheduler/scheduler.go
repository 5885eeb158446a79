package scheduler

import (
	"context"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"

	"github.com/cubestat/cubestat-go/daemon/collector"
	"github.com/cubestat/cubestat-go/daemon/displaymode"
	"github.com/cubestat/cubestat-go/daemon/domain"
	"github.com/cubestat/cubestat-go/daemon/errs"
	"github.com/cubestat/cubestat-go/daemon/horizon"
	"github.com/cubestat/cubestat-go/daemon/input"
	"github.com/cubestat/cubestat-go/daemon/logger"
	"github.com/cubestat/cubestat-go/daemon/metricname"
	"github.com/cubestat/cubestat-go/daemon/presenter"
	"github.com/cubestat/cubestat-go/daemon/sampler"
	"github.com/cubestat/cubestat-go/daemon/store"
)

// bandsPerColor is N in spec.md §4.6's 3·N-cell ColorBand.
const bandsPerColor = 8

// Scheduler owns the thread model of spec.md §4.7/§5: it starts the
// sampler worker, owns the terminal and input on the calling goroutine,
// and holds the locking discipline (store, then DisplayState) that keeps
// concurrent ingest and render from observing a partial tick.
type Scheduler struct {
	Store      *store.Store
	Collectors []collector.Collector
	Presenters presenter.Registry
	Sampler    sampler.Sampler
	Config     domain.Config
	Log        *zerolog.Logger
	Events     logger.Events

	state          *DisplayState
	registry       displaymode.Registry
	lastMaxRowsOff int
}

// New builds a Scheduler ready to Run.
func New(st *store.Store, collectors []collector.Collector, presenters presenter.Registry, smp sampler.Sampler, cfg domain.Config, log *zerolog.Logger) *Scheduler {
	state := &DisplayState{Modes: cfg.Modes}
	return &Scheduler{
		Store:      st,
		Collectors: collectors,
		Presenters: presenters,
		Sampler:    smp,
		Config:     cfg,
		Log:        log,
		Events:     logger.Events{Log: log},
		state:      state,
		registry:   displaymode.NewRegistry(),
	}
}

// Run drives the sampler in the background and the terminal/input/render
// loop on the calling goroutine until the user quits or the sampler
// fails fatally (spec.md §4.8). ctx's cancellation is the one guarantee
// that kills a darwin powermetrics subprocess on every exit path —
// normal quit, sampler error, or a panic unwinding through this defer.
func (s *Scheduler) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	screen, err := tcell.NewScreen()
	if err != nil {
		return errs.Wrap(errs.PlatformUnavailable, "allocate terminal screen", err)
	}
	if err := screen.Init(); err != nil {
		return errs.Wrap(errs.PlatformUnavailable, "initialize terminal", err)
	}
	defer screen.Fini()
	screen.HideCursor()

	renderer := horizon.NewRenderer(screen, horizon.DefaultColorBand(bandsPerColor))
	handler := input.NewHandler(screen, s.registry)

	ticks := s.Store.Subscribe()
	defer s.Store.Unsubscribe(ticks)

	sampleErr := make(chan error, 1)
	go func() {
		sampleErr <- s.Sampler.Run(ctx, s.Config.RefreshMS, s.ingest)
	}()

	dirty := true
	for {
		select {
		case err := <-sampleErr:
			if ctx.Err() != nil {
				return nil
			}
			return errs.Wrap(errs.SourceFatal, "sampler exited", err)
		default:
		}

		intent := handler.Next()
		switch intent.Kind {
		case displaymode.IntentQuit:
			return nil
		case displaymode.IntentToggle:
			if s.state.Toggle(s.registry, intent.Hotkey) {
				_, modes := s.state.Snapshot()
				s.Events.ModeToggled(hotkeyDomainName(intent.Hotkey), intent.Hotkey, modeValue(modes, intent.Hotkey))
				dirty = true
			}
		case displaymode.IntentScroll:
			s.state.Scroll(intent.DX, intent.DY, s.Config.BufferSize, s.lastMaxRowsOff)
			dirty = true
		case displaymode.IntentResetScroll:
			s.state.ResetScroll()
			dirty = true
		}

		select {
		case <-ticks:
			dirty = true
		default:
		}

		if dirty {
			s.render(screen, renderer)
			dirty = false
		}
	}
}

// ingest runs every registered collector over one raw sample and pushes
// the union of their metrics into the store as a single tick. A
// collector error omits that collector's keys for this tick only
// (spec.md §4.8 "Individual collector raises").
func (s *Scheduler) ingest(sample sampler.Sample) {
	values := make(map[metricname.Name]float64)
	for _, c := range s.Collectors {
		m, err := c.Collect(sample.Raw)
		if err != nil {
			if s.Log != nil {
				s.Events.SampleFailure(c.Name(), err)
			}
			continue
		}
		for name, v := range m {
			values[name] = v
		}
	}
	s.Store.Ingest(values)
}

// render draws one frame: a no-op on a too-small terminal (spec.md
// §4.8), otherwise two lines per visible metric when View is on (a
// legend line, then the horizon row) or one when View is off.
func (s *Scheduler) render(screen tcell.Screen, r *horizon.Renderer) {
	cols, rows := screen.Size()
	if rows < 1 || cols < 1 {
		return
	}
	screen.Clear()
	defer screen.Show()

	viewport, modes := s.state.Snapshot()
	rowsData := s.Presenters.BuildRows(s.Store.Names(), modes)

	linesPerMetric := 1
	if modes.View != domain.ViewOff {
		linesPerMetric = 2
	}
	visibleMetrics := rows / linesPerMetric
	if visibleMetrics < 1 {
		visibleMetrics = 1
	}
	s.lastMaxRowsOff = maxInt(0, len(rowsData)-visibleMetrics)

	rowsOff := viewport.RowsOff
	if rowsOff > s.lastMaxRowsOff {
		rowsOff = s.lastMaxRowsOff
	}
	if rowsOff > len(rowsData) {
		rowsOff = len(rowsData)
	}
	visible := rowsData[rowsOff:]

	y := 0
	for _, row := range visible {
		if y+linesPerMetric > rows {
			break
		}
		p, ok := s.Presenters[row.Name.Domain()]
		if !ok {
			continue
		}
		window, _ := s.Store.Snapshot(row.Name, cols, viewport.ColsOff)
		scaleMax := p.ScalePolicy(row.Name, window)

		if linesPerMetric == 2 {
			current := 0.0
			if len(window) > 0 {
				current = window[len(window)-1]
			}
			title := strings.Repeat("  ", row.Indent) + row.DisplayName
			r.DrawLegend(0, y, cols, title, p.Format(row.Name, current, scaleMax), modes.View, current, scaleMax)
			y++
		}
		if y >= rows {
			break
		}
		r.DrawRow(0, y, cols, window, scaleMax)
		y++
	}
}

func hotkeyDomainName(hotkey rune) string {
	switch hotkey {
	case 'v':
		return "view"
	case 'c':
		return "cpu"
	case 'g':
		return "gpu"
	case 'd':
		return "disk"
	case 'n':
		return "network"
	case 's':
		return "swap"
	case 'p':
		return "power"
	default:
		return "unknown"
	}
}

func modeValue(modes domain.Modes, hotkey rune) string {
	switch hotkey {
	case 'v':
		return modes.View.String()
	case 'c':
		return modes.CPU.String()
	case 'g':
		return modes.GPU.String()
	case 'd':
		return modes.Disk.String()
	case 'n':
		return modes.Network.String()
	case 's':
		return modes.Swap.String()
	case 'p':
		return modes.Power.String()
	default:
		return ""
	}
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
