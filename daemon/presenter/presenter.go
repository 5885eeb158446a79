package presenter

import (
	"github.com/cubestat/cubestat-go/daemon/domain"
	"github.com/cubestat/cubestat-go/daemon/metricname"
)

// Presenter is the pure display-transform contract of spec.md §4.4. One
// Presenter exists per metric domain; it never touches the store or the
// terminal.
type Presenter interface {
	// DisplayName returns the row title for name under modes, or ok=false
	// when the metric is hidden by the current mode.
	DisplayName(name metricname.Name, modes domain.Modes) (title string, ok bool)

	// Format renders one value for display. name is consulted for its
	// Unit since several domains (memory, GPU) mix percent and byte
	// metrics under one Presenter.
	Format(name metricname.Name, value, scaleMax float64) string

	// ScalePolicy returns the renderer's intensity denominator for a
	// window of values belonging to name.
	ScalePolicy(name metricname.Name, values []float64) float64

	// Indent returns the display nesting depth for name (e.g. per-core
	// rows indent under their cluster's total row).
	Indent(name metricname.Name, modes domain.Modes) int

	// Order sorts a domain's visible names into presentation order
	// (spec.md §8 scenario 2: cluster-total before its cores, clusters
	// ordered by the minimum core id they contain).
	Order(names []metricname.Name, modes domain.Modes) []metricname.Name
}

// Registry maps each metric domain to the Presenter that owns it.
type Registry map[metricname.Domain]Presenter

// NewRegistry builds the presenter set for every domain spec.md §4.2's
// collectors emit.
func NewRegistry() Registry {
	return Registry{
		metricname.CPU:     cpuPresenter{},
		metricname.GPU:     gpuPresenter{},
		metricname.Memory:  memoryPresenter{},
		metricname.Swap:    togglePresenter{mode: func(m domain.Modes) domain.ToggleMode { return m.Swap }},
		metricname.Disk:    togglePresenter{mode: func(m domain.Modes) domain.ToggleMode { return m.Disk }},
		metricname.Network: togglePresenter{mode: func(m domain.Modes) domain.ToggleMode { return m.Network }},
		metricname.Power:   powerPresenter{},
		metricname.Accel:   accelPresenter{},
	}
}

// Row is one fully-resolved line the horizon renderer draws.
type Row struct {
	Name        metricname.Name
	DisplayName string
	Indent      int
}

// BuildRows groups names by domain, asks each domain's Presenter to filter
// and order its own names under modes, and flattens the result — domains
// in the fixed order below, matching cubestat's own top-to-bottom layout.
func (r Registry) BuildRows(names []metricname.Name, modes domain.Modes) []Row {
	byDomain := make(map[metricname.Domain][]metricname.Name)
	for _, n := range names {
		byDomain[n.Domain()] = append(byDomain[n.Domain()], n)
	}

	order := []metricname.Domain{
		metricname.CPU, metricname.GPU, metricname.Accel, metricname.Power,
		metricname.Memory, metricname.Swap, metricname.Disk, metricname.Network,
	}

	var rows []Row
	for _, d := range order {
		p, ok := r[d]
		if !ok {
			continue
		}
		ordered := p.Order(byDomain[d], modes)
		for _, name := range ordered {
			title, visible := p.DisplayName(name, modes)
			if !visible {
				continue
			}
			rows = append(rows, Row{Name: name, DisplayName: title, Indent: p.Indent(name, modes)})
		}
	}
	return rows
}
