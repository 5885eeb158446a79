// Package metricname implements the StandardMetricName contract of
// spec.md §3: a dotted identifier component.type.instance.attribute.unit,
// lowercase ASCII with each segment matching [a-z0-9_]+.
package metricname

import (
	"fmt"
	"strings"
)

// Domain is the first segment of a standardized name.
type Domain string

const (
	CPU    Domain = "cpu"
	GPU    Domain = "gpu"
	Memory Domain = "memory"
	Swap   Domain = "swap"
	Disk   Domain = "disk"
	Network Domain = "network"
	Power  Domain = "power"
	ANE    Domain = "ane"
	Accel  Domain = "accel"
)

var validDomains = map[Domain]bool{
	CPU: true, GPU: true, Memory: true, Swap: true,
	Disk: true, Network: true, Power: true, ANE: true, Accel: true,
}

// Unit is the terminal segment of a standardized name.
type Unit string

const (
	Percent     Unit = "percent"
	Bytes       Unit = "bytes"
	BytesPerSec Unit = "bytes_per_sec"
	Watts       Unit = "watts"
	Count       Unit = "count"
)

var validUnits = map[Unit]bool{
	Percent: true, Bytes: true, BytesPerSec: true, Watts: true, Count: true,
}

// Name is a validated StandardMetricName. The zero value is not valid;
// construct one with New or Join.
type Name string

// New validates a raw dotted string and returns it as a Name.
func New(raw string) (Name, error) {
	if raw == "" {
		return "", fmt.Errorf("metricname: empty name")
	}
	segments := strings.Split(raw, ".")
	if len(segments) < 2 {
		return "", fmt.Errorf("metricname: %q needs at least domain and unit segments", raw)
	}
	for _, seg := range segments {
		if seg == "" || !isLowerAlnumUnderscore(seg) {
			return "", fmt.Errorf("metricname: %q has invalid segment %q", raw, seg)
		}
	}
	if !validDomains[Domain(segments[0])] {
		return "", fmt.Errorf("metricname: %q has unknown domain %q", raw, segments[0])
	}
	if !validUnits[Unit(segments[len(segments)-1])] {
		return "", fmt.Errorf("metricname: %q has unknown unit %q", raw, segments[len(segments)-1])
	}
	return Name(raw), nil
}

// MustNew is New but panics on an invalid name; reserved for compile-time
// constant names built inside the collectors themselves.
func MustNew(raw string) Name {
	n, err := New(raw)
	if err != nil {
		panic(err)
	}
	return n
}

// Join builds a Name from ordered segments, validating the result.
func Join(segments ...string) (Name, error) {
	return New(strings.Join(segments, "."))
}

func isLowerAlnumUnderscore(s string) bool {
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z':
		case r >= '0' && r <= '9':
		case r == '_':
		default:
			return false
		}
	}
	return true
}

// Segments splits the name back into its dotted components.
func (n Name) Segments() []string {
	return strings.Split(string(n), ".")
}

// Domain returns the first segment.
func (n Name) Domain() Domain {
	segs := n.Segments()
	if len(segs) == 0 {
		return ""
	}
	return Domain(segs[0])
}

// Unit returns the terminal segment.
func (n Name) Unit() Unit {
	segs := n.Segments()
	if len(segs) == 0 {
		return ""
	}
	return Unit(segs[len(segs)-1])
}

func (n Name) String() string { return string(n) }
