// Package displaymode implements spec.md §4.5: a process-wide
// hotkey_char → callback table that cycles per-domain display modes, plus
// the Intent enum the Design Notes §9 redesign introduces to decouple the
// input handler from the scheduler's locked DisplayState.
package displaymode

import "github.com/cubestat/cubestat-go/daemon/domain"

// IntentKind discriminates the small set of things a keypress can ask the
// scheduler to do. The input handler only ever produces these; it never
// reaches into domain.Modes or Viewport directly.
type IntentKind int

const (
	IntentNone IntentKind = iota
	IntentQuit
	IntentToggle
	IntentScroll
	IntentResetScroll
)

// Intent is what the input handler emits and the scheduler consumes under
// its state lock. Hotkey is only meaningful for IntentToggle; DX/DY only
// for IntentScroll.
type Intent struct {
	Kind   IntentKind
	Hotkey rune
	DX, DY int
}

// Registry maps a hotkey rune to the mode it cycles. v/c/g/d/n/s/p mirror
// cubestat's own key scheme (View, CPU, GPU, Disk, Network, Swap, Power);
// q and 0 are handled by the scheduler directly (quit, reset scroll) and
// never reach this table.
type Registry map[rune]func(*domain.Modes)

// NewRegistry builds the hotkey table spec.md §4.5 names.
func NewRegistry() Registry {
	return Registry{
		'v': func(m *domain.Modes) { m.View = m.View.Next() },
		'c': func(m *domain.Modes) { m.CPU = m.CPU.Next() },
		'g': func(m *domain.Modes) { m.GPU = m.GPU.Next() },
		'd': func(m *domain.Modes) { m.Disk = m.Disk.Next() },
		'n': func(m *domain.Modes) { m.Network = m.Network.Next() },
		's': func(m *domain.Modes) { m.Swap = m.Swap.Next() },
		'p': func(m *domain.Modes) { m.Power = m.Power.Next() },
	}
}

// Apply cycles the mode bound to hotkey, if any. It reports whether the
// hotkey was recognized so callers can distinguish "handled" keys from
// ones that fall through.
func (r Registry) Apply(modes *domain.Modes, hotkey rune) bool {
	cycle, ok := r[hotkey]
	if !ok {
		return false
	}
	cycle(modes)
	return true
}

// Recognizes reports whether hotkey has a binding, without applying it —
// used by the input handler to decide whether a rune key becomes an
// IntentToggle at all.
func (r Registry) Recognizes(hotkey rune) bool {
	_, ok := r[hotkey]
	return ok
}
