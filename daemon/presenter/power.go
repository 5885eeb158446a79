package presenter

import (
	"strings"

	"github.com/cubestat/cubestat-go/daemon/domain"
	"github.com/cubestat/cubestat-go/daemon/metricname"
)

// powerPresenter covers power.component.{total,cpu,gpu,ane}.consumption.watts.
// PowerCombined shows only the total row; PowerAll shows every component;
// PowerOff hides the domain entirely.
type powerPresenter struct{}

func powerComponent(name metricname.Name) string {
	segs := name.Segments()
	if len(segs) < 3 || segs[0] != "power" || segs[1] != "component" {
		return ""
	}
	return segs[2]
}

func (powerPresenter) DisplayName(name metricname.Name, modes domain.Modes) (string, bool) {
	component := powerComponent(name)
	if component == "" || modes.Power == domain.PowerOff {
		return "", false
	}
	if modes.Power == domain.PowerCombined && component != "total" {
		return "", false
	}
	return strings.ToUpper(component[:1]) + component[1:] + " power", true
}

func (powerPresenter) Format(name metricname.Name, value, _ float64) string {
	return Format(name.Unit(), value)
}

func (powerPresenter) ScalePolicy(name metricname.Name, values []float64) float64 {
	return ScalePolicy(name.Unit(), values)
}

func (powerPresenter) Indent(name metricname.Name, _ domain.Modes) int {
	if powerComponent(name) == "total" {
		return 0
	}
	return 1
}

func (powerPresenter) Order(names []metricname.Name, _ domain.Modes) []metricname.Name {
	rankOf := map[string]int{"total": 0, "cpu": 1, "gpu": 2, "ane": 3}
	out := append([]metricname.Name(nil), names...)
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && rankOf[powerComponent(out[j-1])] > rankOf[powerComponent(out[j])]; j-- {
			out[j-1], out[j] = out[j], out[j-1]
		}
	}
	return out
}
