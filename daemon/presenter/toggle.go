package presenter

import (
	"strings"

	"github.com/cubestat/cubestat-go/daemon/domain"
	"github.com/cubestat/cubestat-go/daemon/metricname"
)

// togglePresenter covers swap, disk and network: a single show/hide
// ToggleMode gates every row in the domain, and rows are just the name's
// own segments title-cased, with device/interface totals first.
type togglePresenter struct {
	mode func(domain.Modes) domain.ToggleMode
}

func (p togglePresenter) DisplayName(name metricname.Name, modes domain.Modes) (string, bool) {
	if p.mode(modes) == domain.Hide {
		return "", false
	}
	segs := name.Segments()
	// Drop the domain and unit segments; title-case what remains.
	mid := segs[1 : len(segs)-1]
	words := make([]string, len(mid))
	for i, s := range mid {
		s = strings.ReplaceAll(s, "_", " ")
		if s == "" {
			words[i] = s
			continue
		}
		words[i] = strings.ToUpper(s[:1]) + s[1:]
	}
	return strings.Join(words, " "), true
}

func (togglePresenter) Format(name metricname.Name, value, _ float64) string {
	return Format(name.Unit(), value)
}

func (togglePresenter) ScalePolicy(name metricname.Name, values []float64) float64 {
	return ScalePolicy(name.Unit(), values)
}

func (p togglePresenter) Indent(name metricname.Name, _ domain.Modes) int {
	segs := name.Segments()
	if len(segs) > 1 && segs[1] == "total" {
		return 0
	}
	return 1
}

// Order puts "total" rows first (device="total"), then the rest in
// lexical order for a stable, repeatable layout.
func (togglePresenter) Order(names []metricname.Name, _ domain.Modes) []metricname.Name {
	out := append([]metricname.Name(nil), names...)
	rank := func(n metricname.Name) int {
		segs := n.Segments()
		if len(segs) > 1 && segs[1] == "total" {
			return 0
		}
		return 1
	}
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && (rank(out[j-1]) > rank(out[j]) ||
			(rank(out[j-1]) == rank(out[j]) && out[j-1] > out[j])); j-- {
			out[j-1], out[j] = out[j], out[j-1]
		}
	}
	return out
}
