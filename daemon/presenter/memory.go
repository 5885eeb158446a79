package presenter

import (
	"strings"

	"github.com/cubestat/cubestat-go/daemon/domain"
	"github.com/cubestat/cubestat-go/daemon/metricname"
)

// memoryPresenter implements spec.md §4.4 for memory.system.*: the percent
// mode shows only the headline used.percent row, all shows the full
// platform-extended breakdown (spec.md §4.2 Memory).
type memoryPresenter struct{}

var memoryTitles = map[string]string{
	"total.used.percent": "Memory used",
	"total.used.bytes":   "Memory used",
	"wired.bytes":        "Memory wired",
	"mapped.bytes":        "Memory mapped",
}

func memoryAttr(name metricname.Name) string {
	segs := name.Segments()
	if len(segs) < 4 || segs[0] != "memory" || segs[1] != "system" {
		return ""
	}
	return strings.Join(segs[2:], ".")
}

func (memoryPresenter) DisplayName(name metricname.Name, modes domain.Modes) (string, bool) {
	attr := memoryAttr(name)
	if attr == "" {
		return "", false
	}
	if attr == "total.used.percent" {
		return memoryTitles[attr], true
	}
	if modes.Memory != domain.MemoryAll {
		return "", false
	}
	title, ok := memoryTitles[attr]
	return title, ok
}

func (memoryPresenter) Format(name metricname.Name, value, _ float64) string {
	return Format(name.Unit(), value)
}

func (memoryPresenter) ScalePolicy(name metricname.Name, values []float64) float64 {
	return ScalePolicy(name.Unit(), values)
}

func (memoryPresenter) Indent(name metricname.Name, _ domain.Modes) int {
	if memoryAttr(name) == "total.used.percent" || memoryAttr(name) == "total.used.bytes" {
		return 0
	}
	return 1
}

func (memoryPresenter) Order(names []metricname.Name, _ domain.Modes) []metricname.Name {
	out := append([]metricname.Name(nil), names...)
	rank := func(n metricname.Name) int {
		switch memoryAttr(n) {
		case "total.used.percent", "total.used.bytes":
			return 0
		default:
			return 1
		}
	}
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && rank(out[j-1]) > rank(out[j]); j-- {
			out[j-1], out[j] = out[j], out[j-1]
		}
	}
	return out
}
