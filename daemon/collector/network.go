package collector

import "github.com/cubestat/cubestat-go/daemon/metricname"

// excludedInterfacePatterns lists the ephemeral/virtual interface name
// prefixes the Linux network collector skips (the darwin collector reads a
// single aggregate and never consults it), adapted from taniwha3-tidewatch's
// defaultExcludePatterns.
var excludedInterfacePatterns = []string{
	"lo", "docker", "veth", "br-", "virbr", "wwan", "wwp", "usb",
}

func isExcludedInterface(name string) bool {
	for _, p := range excludedInterfacePatterns {
		if len(name) >= len(p) && name[:len(p)] == p {
			return true
		}
	}
	return false
}

func networkMetric(iface, direction string) metricname.Name {
	n, err := metricname.Join("network", "interface", sanitizeSegment(iface), direction, "bytes_per_sec")
	if err != nil {
		return metricname.MustNew("network.interface.unknown." + direction + ".bytes_per_sec")
	}
	return n
}

var (
	networkTotalRx = metricname.MustNew("network.total.rx.bytes_per_sec")
	networkTotalTx = metricname.MustNew("network.total.tx.bytes_per_sec")
)
