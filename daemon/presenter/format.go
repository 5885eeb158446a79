// Package presenter implements the presenter layer of spec.md §4.4: pure
// data transforms from a standardized metric name + value to what the
// horizon renderer draws. Presenters never touch the store or the
// terminal.
package presenter

import (
	"fmt"
	"math"

	"github.com/cubestat/cubestat-go/daemon/metricname"
)

// Format renders value according to its unit, matching spec.md §4.4's
// format contract: "{value:.1f}%" for percent, "{value:.1f}W" for watts,
// SI-byte formatting with buckets for rates, absolute bytes for
// swap/memory.
func Format(unit metricname.Unit, value float64) string {
	switch unit {
	case metricname.Percent:
		return fmt.Sprintf("%.1f%%", value)
	case metricname.Watts:
		return fmt.Sprintf("%.1fW", value)
	case metricname.BytesPerSec:
		return formatSI(value) + "/s"
	case metricname.Bytes:
		return formatSI(value)
	case metricname.Count:
		return fmt.Sprintf("%.0f", value)
	default:
		return fmt.Sprintf("%.1f", value)
	}
}

// siBuckets matches spec.md §4.4's {[0,1e3)->B, [1e3,1e6)->KB, ...} table.
var siBuckets = []struct {
	threshold float64
	suffix    string
}{
	{1e3, "B"},
	{1e6, "KB"},
	{1e9, "MB"},
	{1e12, "GB"},
	{math.Inf(1), "TB"},
}

func formatSI(value float64) string {
	abs := math.Abs(value)
	for i, b := range siBuckets {
		if abs < b.threshold {
			if i == 0 {
				return fmt.Sprintf("%.0f%s", value, b.suffix)
			}
			divisor := siBuckets[i-1].threshold
			return fmt.Sprintf("%.1f%s", value/divisor, b.suffix)
		}
	}
	return fmt.Sprintf("%.1fTB", value/siBuckets[3].threshold)
}

// ScalePolicy returns the renderer's intensity denominator for a window of
// values of the given unit: 100 for percents and other [0,100]-capped
// metrics, the power-of-10 ceiling of the observed max for open-ended
// rates/watts/bytes (spec.md §4.4 scale_policy).
func ScalePolicy(unit metricname.Unit, values []float64) float64 {
	if unit == metricname.Percent {
		return 100
	}

	max := 0.0
	for _, v := range values {
		if v > max {
			max = v
		}
	}
	if max <= 0 {
		return 1
	}
	return powerOf10Ceil(max)
}

func powerOf10Ceil(v float64) float64 {
	exp := math.Ceil(math.Log10(v))
	return math.Pow(10, exp)
}
