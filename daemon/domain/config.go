// Package domain holds the configuration and shared context types consumed
// by the core pipeline. Flag parsing and config-file loading live outside
// this package (see daemon/cmd); domain only describes the already-resolved
// settings the sampler, collectors, store, presenters and outputs need.
package domain

import "time"

// CPUMode selects how CPU series are grouped for display.
type CPUMode int

const (
	CPUAll CPUMode = iota
	CPUByCluster
	CPUByCore
)

func (m CPUMode) Next() CPUMode { return (m + 1) % 3 }

func (m CPUMode) String() string {
	switch m {
	case CPUAll:
		return "all"
	case CPUByCluster:
		return "by_cluster"
	case CPUByCore:
		return "by_core"
	default:
		return "unknown"
	}
}

// GPUMode selects how much GPU detail is displayed.
type GPUMode int

const (
	GPUCollapsed GPUMode = iota
	GPULoadOnly
	GPULoadAndVRAM
)

func (m GPUMode) Next() GPUMode { return (m + 1) % 3 }

func (m GPUMode) String() string {
	switch m {
	case GPUCollapsed:
		return "collapsed"
	case GPULoadOnly:
		return "load_only"
	case GPULoadAndVRAM:
		return "load_and_vram"
	default:
		return "unknown"
	}
}

// ViewMode controls ruler/legend visibility.
type ViewMode int

const (
	ViewOff ViewMode = iota
	ViewOne
	ViewAll
)

func (m ViewMode) Next() ViewMode { return (m + 1) % 3 }

func (m ViewMode) String() string {
	switch m {
	case ViewOff:
		return "off"
	case ViewOne:
		return "one"
	case ViewAll:
		return "all"
	default:
		return "unknown"
	}
}

// ToggleMode is a simple show/hide mode used by swap, network and disk.
type ToggleMode int

const (
	Show ToggleMode = iota
	Hide
)

func (m ToggleMode) Next() ToggleMode { return (m + 1) % 2 }

func (m ToggleMode) String() string {
	if m == Show {
		return "show"
	}
	return "hide"
}

// PowerMode controls how the power domain is displayed.
type PowerMode int

const (
	PowerCombined PowerMode = iota
	PowerAll
	PowerOff
)

func (m PowerMode) Next() PowerMode { return (m + 1) % 3 }

func (m PowerMode) String() string {
	switch m {
	case PowerCombined:
		return "combined"
	case PowerAll:
		return "all"
	case PowerOff:
		return "off"
	default:
		return "unknown"
	}
}

// MemoryMode controls the level of memory breakdown shown.
type MemoryMode int

const (
	MemoryPercent MemoryMode = iota
	MemoryAll
)

func (m MemoryMode) Next() MemoryMode { return (m + 1) % 2 }

func (m MemoryMode) String() string {
	if m == MemoryPercent {
		return "percent"
	}
	return "all"
}

// Modes is the mutable bundle of per-domain display modes. It is the state
// the display-mode registry cycles through and the presenters read from.
type Modes struct {
	CPU     CPUMode
	GPU     GPUMode
	View    ViewMode
	Swap    ToggleMode
	Network ToggleMode
	Disk    ToggleMode
	Power   PowerMode
	Memory  MemoryMode
}

// DefaultModes mirrors cubestat's own startup defaults: everything visible,
// CPU shown per core without cluster totals, GPU collapsed until the user
// asks for more.
func DefaultModes() Modes {
	return Modes{
		CPU:     CPUAll,
		GPU:     GPUCollapsed,
		View:    ViewOne,
		Swap:    Show,
		Network: Show,
		Disk:    Show,
		Power:   PowerCombined,
		Memory:  MemoryPercent,
	}
}

// Config is the fully-resolved set of options the core pipeline runs with.
// cmd/ is responsible for building one from argv; the core never re-reads
// flags or a config file.
type Config struct {
	RefreshMS      int `validate:"required,gt=0"`
	BufferSize     int `validate:"required,gt=0"`
	Modes          Modes

	CSV             bool
	HTTPPort        uint16
	HTTPHost        string
	PrometheusPort  uint16

	LogFile string
	Version string
}

// RefreshInterval returns Config.RefreshMS as a time.Duration.
func (c Config) RefreshInterval() time.Duration {
	return time.Duration(c.RefreshMS) * time.Millisecond
}

// OutputCount reports how many of the mutually-exclusive alternate outputs
// are requested, used by cmd/ to enforce the exit-code-2 rule of spec.md §6.
func (c Config) OutputCount() int {
	n := 0
	if c.CSV {
		n++
	}
	if c.HTTPPort != 0 {
		n++
	}
	if c.PrometheusPort != 0 {
		n++
	}
	return n
}

// DefaultConfig returns a configuration with cubestat's own defaults.
func DefaultConfig() Config {
	return Config{
		RefreshMS:  1000,
		BufferSize: 500,
		Modes:      DefaultModes(),
		HTTPHost:   "localhost",
	}
}
