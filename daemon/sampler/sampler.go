// Package sampler runs the platform sampler of spec.md §4.1: a dedicated
// worker that emits one Sample per period to a callback, either by polling
// directly (Linux) or by driving a subprocess that streams self-delimited
// documents (macOS). The two implementations live in build-tagged files;
// this file holds the shared Sample type and the callback contract.
package sampler

import (
	"context"

	"github.com/cubestat/cubestat-go/daemon/platform"
)

// Sample is one tick's raw observation, handed to the registered collectors
// under no lock. Callback implementations are expected to complete well
// inside one refresh period.
type Sample struct {
	Timestamp float64
	Raw       platform.Context
}

// Callback receives one Sample per tick. It must not block for longer than
// a refresh period; the sampler does not enforce a deadline itself.
type Callback func(Sample)

// Sampler drives Callback once per period until Run's context is canceled.
type Sampler interface {
	Run(ctx context.Context, periodMS int, cb Callback) error
}
