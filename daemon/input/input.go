// Package input is the keyboard half of spec.md §4.5/§4.7: it blocks on
// tcell events with a small timeout and translates them into the
// displaymode.Intent enum, never touching domain.Modes or Viewport
// directly (Design Notes §9's cyclic-coupling fix).
package input

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/cubestat/cubestat-go/daemon/displaymode"
)

// PollTimeout bounds how long Next blocks before returning IntentNone, so
// the scheduler's main loop can still notice new samples between
// keypresses (spec.md §4.7: "blocks on input with a small timeout").
const PollTimeout = 100 * time.Millisecond

// Handler reads tcell events from a screen and turns them into Intents.
// PollEvent is only ever called from the single background goroutine
// started in NewHandler — tcell requires a lone caller per screen.
type Handler struct {
	modes  displaymode.Registry
	events chan tcell.Event
}

func NewHandler(screen tcell.Screen, modes displaymode.Registry) *Handler {
	h := &Handler{modes: modes, events: make(chan tcell.Event, 16)}
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return // screen finalized
			}
			h.events <- ev
		}
	}()
	return h
}

// Next blocks until an event arrives or PollTimeout elapses, returning the
// Intent it maps to. Resize events are reported as IntentNone — the
// scheduler re-queries screen.Size() on every frame regardless, so the
// event itself carries no state the Intent enum needs.
func (h *Handler) Next() displaymode.Intent {
	select {
	case ev := <-h.events:
		return h.translate(ev)
	case <-time.After(PollTimeout):
		return displaymode.Intent{Kind: displaymode.IntentNone}
	}
}

func (h *Handler) translate(ev tcell.Event) displaymode.Intent {
	key, ok := ev.(*tcell.EventKey)
	if !ok {
		return displaymode.Intent{Kind: displaymode.IntentNone}
	}

	switch key.Key() {
	case tcell.KeyCtrlC, tcell.KeyEscape:
		return displaymode.Intent{Kind: displaymode.IntentQuit}
	case tcell.KeyUp:
		return displaymode.Intent{Kind: displaymode.IntentScroll, DY: -1}
	case tcell.KeyDown:
		return displaymode.Intent{Kind: displaymode.IntentScroll, DY: 1}
	case tcell.KeyLeft:
		return displaymode.Intent{Kind: displaymode.IntentScroll, DX: 1}
	case tcell.KeyRight:
		return displaymode.Intent{Kind: displaymode.IntentScroll, DX: -1}
	}

	if key.Key() != tcell.KeyRune {
		return displaymode.Intent{Kind: displaymode.IntentNone}
	}

	switch r := key.Rune(); r {
	case 'q':
		return displaymode.Intent{Kind: displaymode.IntentQuit}
	case '0':
		return displaymode.Intent{Kind: displaymode.IntentResetScroll}
	default:
		if h.modes.Recognizes(r) {
			return displaymode.Intent{Kind: displaymode.IntentToggle, Hotkey: r}
		}
		return displaymode.Intent{Kind: displaymode.IntentNone}
	}
}
