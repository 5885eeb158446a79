//go:build linux

package sampler

import (
	"context"
	"time"

	"github.com/cubestat/cubestat-go/daemon/platform"
)

// PollingSampler implements the "Polling" variant of spec.md §4.1: a fixed
// deadline loop, correcting drift by sleeping max(0, deadline-now) instead
// of a plain time.Sleep(period) on every iteration.
type PollingSampler struct{}

// NewSampler returns the Linux sampler. macOS builds get a constructor of
// the same name (sampler_darwin.go) that also takes a logger; the
// build-tagged daemon/bootstrap files absorb that difference for main.
func NewSampler() *PollingSampler { return &PollingSampler{} }

// Run calls cb once per periodMS milliseconds until ctx is canceled.
func (s *PollingSampler) Run(ctx context.Context, periodMS int, cb Callback) error {
	period := time.Duration(periodMS) * time.Millisecond
	deadline := time.Now()

	for {
		now := time.Now()
		cb(Sample{
			Timestamp: float64(now.UnixNano()) / 1e9,
			Raw:       platform.PollingContext{Timestamp: float64(now.UnixNano()) / 1e9},
		})

		deadline = deadline.Add(period)
		sleep := time.Until(deadline)
		if sleep < 0 {
			deadline = time.Now()
			sleep = 0
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(sleep):
		}
	}
}
