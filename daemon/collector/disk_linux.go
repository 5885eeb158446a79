//go:build linux

package collector

import (
	"bufio"
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/cubestat/cubestat-go/daemon/metricname"
	"github.com/cubestat/cubestat-go/daemon/platform"
	"github.com/cubestat/cubestat-go/daemon/rate"
)

// wholeDevicePattern restricts /proc/diskstats rows to whole block devices,
// skipping partitions (sda1, nvme0n1p1, ...). Grounded on
// taniwha3-tidewatch's internal/collector/disk.go.
var wholeDevicePattern = regexp.MustCompile(`^(sd[a-z]+|nvme\d+n\d+|mmcblk\d+|hd[a-z]+|vd[a-z]+|xvd[a-z]+)$`)

const sectorBytes = 512 // always 512 regardless of the device's logical block size, per Documentation/admin-guide/iostats.rst

// DiskCollector emits per-device and total disk.*.{read,write}.bytes_per_sec
// by running cumulative sector counters from /proc/diskstats through a
// RateReader (spec.md §4.2 Disk).
type DiskCollector struct {
	rates *rate.Reader
}

func NewDiskCollector(intervalSeconds float64) *DiskCollector {
	return &DiskCollector{rates: rate.New(intervalSeconds)}
}

func (c *DiskCollector) Name() string { return "disk" }

func (c *DiskCollector) Collect(_ platform.Context) (map[metricname.Name]float64, error) {
	f, err := os.Open("/proc/diskstats")
	if err != nil {
		return nil, fmt.Errorf("disk: open /proc/diskstats: %w", err)
	}
	defer f.Close()

	out := make(map[metricname.Name]float64)
	var totalRead, totalWrite float64

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) < 14 {
			continue
		}
		device := fields[2]
		if !wholeDevicePattern.MatchString(device) {
			continue
		}

		sectorsRead, _ := strconv.ParseUint(fields[5], 10, 64)
		sectorsWritten, _ := strconv.ParseUint(fields[9], 10, 64)

		readRate := c.rates.Next(device+".read", float64(sectorsRead)*sectorBytes)
		writeRate := c.rates.Next(device+".write", float64(sectorsWritten)*sectorBytes)

		out[diskMetric(device, "read")] = readRate
		out[diskMetric(device, "write")] = writeRate
		totalRead += readRate
		totalWrite += writeRate
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("disk: scan /proc/diskstats: %w", err)
	}

	out[diskTotalRead] = totalRead
	out[diskTotalWrite] = totalWrite
	return out, nil
}
