//go:build darwin

package collector

import (
	"os/exec"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"github.com/cubestat/cubestat-go/daemon/metricname"
	"github.com/cubestat/cubestat-go/daemon/platform"
)

var aneUtilization = metricname.MustNew("accel.ane.utilization.percent")

// aneMaxWatts is the model -> max_watts table spec.md §4.2 names but
// leaves unpopulated; supplemented here (SPEC_FULL.md §6) from the chip
// table cubestat itself ships, matching the handful of Apple Silicon
// generations that carry a Neural Engine.
var aneMaxWatts = map[string]float64{
	"Apple M1":      3.5,
	"Apple M1 Pro":  3.5,
	"Apple M1 Max":  3.5,
	"Apple M1 Ultra": 3.5,
	"Apple M2":      3.5,
	"Apple M2 Pro":  3.5,
	"Apple M2 Max":  3.5,
	"Apple M2 Ultra": 3.5,
	"Apple M3":      4.0,
	"Apple M3 Pro":  4.0,
	"Apple M3 Max":  4.0,
	"Apple M4":      4.5,
	"Apple M4 Pro":  4.5,
	"Apple M4 Max":  4.5,
}

// aneMaxWattsDefault is the conservative fallback for a chip model this
// table doesn't recognize yet (spec.md §4.2 "unknown models use a
// conservative default and log once").
const aneMaxWattsDefault = 4.0

// ANECollector emits accel.ane.utilization.percent, the instantaneous ANE
// power draw scaled against the detected chip's maximum (spec.md §4.2 ANE).
type ANECollector struct {
	log  *zerolog.Logger
	once sync.Once

	maxWatts float64
}

func NewANECollector(log *zerolog.Logger) *ANECollector {
	return &ANECollector{log: log}
}

func (c *ANECollector) Name() string { return "accel" }

func (c *ANECollector) Collect(raw platform.Context) (map[metricname.Name]float64, error) {
	doc, ok := raw.(platform.PowerMetricsDoc)
	if !ok {
		return nil, errUnexpectedContext("accel")
	}

	c.once.Do(func() { c.maxWatts = c.detectMaxWatts() })

	watts := ANEWatts(doc)
	pct := clampPercent(watts / c.maxWatts * 100)
	return map[metricname.Name]float64{aneUtilization: pct}, nil
}

func (c *ANECollector) detectMaxWatts() float64 {
	out, err := exec.Command("sysctl", "-n", "machdep.cpu.brand_string").Output()
	model := strings.TrimSpace(string(out))
	if err == nil {
		if w, ok := aneMaxWatts[model]; ok {
			return w
		}
	}
	if c.log != nil {
		c.log.Warn().Str("model", model).Msg("accel: unrecognized machine model, using conservative ANE max watts")
	}
	return aneMaxWattsDefault
}
