package presenter

import (
	"github.com/cubestat/cubestat-go/daemon/domain"
	"github.com/cubestat/cubestat-go/daemon/metricname"
)

// accelPresenter covers accel.ane.utilization.percent. No mode gates it;
// visibility simply follows whether the platform ever emits it.
type accelPresenter struct{}

func (accelPresenter) DisplayName(name metricname.Name, _ domain.Modes) (string, bool) {
	if name.String() != "accel.ane.utilization.percent" {
		return "", false
	}
	return "Neural Engine", true
}

func (accelPresenter) Format(name metricname.Name, value, _ float64) string {
	return Format(name.Unit(), value)
}

func (accelPresenter) ScalePolicy(name metricname.Name, values []float64) float64 {
	return ScalePolicy(name.Unit(), values)
}

func (accelPresenter) Indent(metricname.Name, domain.Modes) int { return 0 }

func (accelPresenter) Order(names []metricname.Name, _ domain.Modes) []metricname.Name {
	return names
}
