// Package output implements the three alternate output surfaces of
// spec.md §6/§4.9: CSV to stdout, JSON over HTTP, and Prometheus text
// exposition. All three read standardized metric names directly off the
// store or the sampler callback; none goes through the presenter layer,
// since presentation (titles, hiding, indentation) is a TUI-only concern.
package output

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/cubestat/cubestat-go/daemon/metricname"
)

// CSVWriter emits one row per standardized metric per sample tick,
// synchronously on the sampler callback goroutine (spec.md §4.7 "CSV
// writer runs inline on the sampler callback") rather than off the
// store's pubsub tick, so the timestamp is the sample's own rather than
// whatever landed the snapshot. It writes the header once on first use.
//
// Row order within a tick follows first-seen order, the same decision
// DESIGN.md records for the store (§3 Series) — CSVWriter keeps its own
// order slice since it runs ahead of the store, not off a Snapshot.
type CSVWriter struct {
	w           *bufio.Writer
	wroteHeader bool
	order       []metricname.Name
	seen        map[metricname.Name]bool
}

// NewCSVWriter wraps w (os.Stdout in production, a bytes.Buffer in tests).
func NewCSVWriter(w io.Writer) *CSVWriter {
	return &CSVWriter{w: bufio.NewWriter(w), seen: make(map[metricname.Name]bool)}
}

// WriteTick emits one CSV row per entry in values, in first-seen order.
func (c *CSVWriter) WriteTick(timestamp float64, values map[metricname.Name]float64) error {
	if !c.wroteHeader {
		if _, err := io.WriteString(c.w, "timestamp,metric,value\n"); err != nil {
			return err
		}
		c.wroteHeader = true
	}

	for name := range values {
		if !c.seen[name] {
			c.seen[name] = true
			c.order = append(c.order, name)
		}
	}

	ts := strconv.FormatFloat(timestamp, 'f', 6, 64)
	for _, name := range c.order {
		v, ok := values[name]
		if !ok {
			continue
		}
		fv := strconv.FormatFloat(v, 'f', -1, 64)
		if _, err := fmt.Fprintf(c.w, "%s,%s,%s\n", ts, name.String(), fv); err != nil {
			return err
		}
	}
	return c.w.Flush()
}
