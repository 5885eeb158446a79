package output

import (
	"net/http"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/cubestat/cubestat-go/daemon/metricname"
	"github.com/cubestat/cubestat-go/daemon/store"
)

// NewPrometheusHandler wraps c in its own registry and returns the
// standard promhttp.Handler for it, so the caller's chi router can mount
// it exactly like the JSONHandler.
func NewPrometheusHandler(c *PrometheusCollector) http.Handler {
	reg := prometheus.NewRegistry()
	reg.MustRegister(c)
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
}

// PrometheusCollector implements prometheus.Collector directly against
// the store's point-in-time names rather than a fixed promauto descriptor
// set, since the metric namespace (one series per collector per core/
// cluster/interface/disk) is only known at runtime — the teacher's
// promauto style (daemon/services/api/metrics.go) assumes a fixed set of
// named metrics declared at package init and doesn't fit here.
type PrometheusCollector struct {
	Store *store.Store
}

// Describe sends no descriptors: a dynamic collector is allowed to skip
// Describe entirely, per the prometheus.Collector contract, since Collect
// is always authoritative for what it emits.
func (c *PrometheusCollector) Describe(ch chan<- *prometheus.Desc) {}

// Collect emits one gauge per standardized series currently in the store,
// named and labeled per spec.md §6's mapping
// (`cpu.performance.0.core.2.utilization.percent` ⇒
// `cpu_utilization_percent{cluster="performance",cluster_index="0",core="2"}`).
func (c *PrometheusCollector) Collect(ch chan<- prometheus.Metric) {
	for _, name := range c.Store.Names() {
		values, _ := c.Store.Snapshot(name, 1, 0)
		if len(values) == 0 {
			continue
		}
		metricName, labels := promMapping(name)
		desc := prometheus.NewDesc(metricName, "cubestat metric "+metricName, nil, labels)
		m, err := prometheus.NewConstMetric(desc, prometheus.GaugeValue, values[len(values)-1])
		if err != nil {
			continue
		}
		ch <- m
	}
}

// promMapping turns a dotted StandardMetricName into a Prometheus-safe
// metric name plus its label set, following spec.md §6's worked example:
// the instance-identifying segments each collector interposes (cluster +
// index, core id, device, interface, vendor + index, power component)
// become labels; everything else — the domain plus the attribute/unit
// words describing *what* is measured — becomes the metric name.
func promMapping(name metricname.Name) (string, prometheus.Labels) {
	segs := name.Segments()
	domain := segs[0]
	middle := segs[1 : len(segs)-1]
	labels := prometheus.Labels{}
	nameWords := []string{domain}

	switch name.Domain() {
	case metricname.CPU:
		nameWords = append(nameWords, cpuLabels(middle, labels)...)
	case metricname.GPU:
		nameWords = append(nameWords, gpuLabels(middle, labels)...)
	case metricname.Disk:
		nameWords = append(nameWords, instanceLabels(middle, "device", labels)...)
	case metricname.Network:
		nameWords = append(nameWords, instanceLabels(middle, "interface", labels)...)
	case metricname.Power:
		nameWords = append(nameWords, powerLabels(middle, labels)...)
	default:
		nameWords = append(nameWords, middle...)
	}
	nameWords = append(nameWords, segs[len(segs)-1])

	return sanitize(strings.Join(nameWords, "_")), labels
}

// cpuLabels splits cpu.<cluster>.<idx>.total.<attr...> or
// cpu.<cluster>.<idx>.core.<id>.<attr...> into cluster/cluster_index(/core)
// labels and returns the remaining attribute words for the metric name.
// The flat cpu.total.count shape (no cluster) carries no labels.
func cpuLabels(middle []string, labels prometheus.Labels) []string {
	if len(middle) < 2 || (middle[0] == "total") {
		return middle
	}
	labels["cluster"] = middle[0]
	labels["cluster_index"] = middle[1]
	if len(middle) >= 4 && middle[2] == "core" {
		labels["core"] = middle[3]
		return middle[4:]
	}
	if len(middle) >= 3 && middle[2] == "total" {
		return middle[3:]
	}
	return middle[2:]
}

// gpuLabels splits gpu.<vendor>.<idx>.<attr...> into vendor/index labels.
// The flat gpu.total.count shape carries no labels.
func gpuLabels(middle []string, labels prometheus.Labels) []string {
	if len(middle) < 2 || middle[0] == "total" {
		return middle
	}
	labels["vendor"] = middle[0]
	labels["index"] = middle[1]
	return middle[2:]
}

// instanceLabels handles the disk/network shape
// <domain>.<marker>.<instance>.<attr...>, e.g.
// disk.device.sda.read.bytes_per_sec or
// network.interface.eth0.rx.bytes_per_sec. The <domain>.total.<attr...>
// aggregate shape carries no instance label.
func instanceLabels(middle []string, marker string, labels prometheus.Labels) []string {
	if len(middle) >= 2 && middle[0] == marker {
		labels[marker] = middle[1]
		return middle[2:]
	}
	return middle
}

// powerLabels handles power.component.<name>.consumption.watts, labeling
// the component (including the "total" aggregate) rather than folding it
// into the metric name, so every power series shares one metric name.
func powerLabels(middle []string, labels prometheus.Labels) []string {
	if len(middle) >= 2 && middle[0] == "component" {
		labels["component"] = middle[1]
		return middle[2:]
	}
	return middle
}

func sanitize(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	return b.String()
}
