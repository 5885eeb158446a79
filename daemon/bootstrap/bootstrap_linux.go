//go:build linux

// Package bootstrap assembles the platform-specific sampler and collector
// set main needs, isolating the one place cmd/main has to switch on build
// tags — mirroring how collector/registry_{linux,darwin}.go and
// sampler/sampler_{linux,darwin}.go already split by platform, just one
// layer up so main.go itself stays platform-neutral.
package bootstrap

import (
	"github.com/rs/zerolog"

	"github.com/cubestat/cubestat-go/daemon/collector"
	"github.com/cubestat/cubestat-go/daemon/domain"
	"github.com/cubestat/cubestat-go/daemon/sampler"
)

// New builds the Linux sampler (direct /proc polling) and collector set.
// log is unused on Linux since none of its collectors shell out in a way
// that needs structured warnings yet; it's accepted anyway so main.go's
// call site doesn't need a build-tagged branch.
func New(cfg domain.Config, _ *zerolog.Logger) (sampler.Sampler, []collector.Collector) {
	refreshSeconds := cfg.RefreshInterval().Seconds()
	return sampler.NewSampler(), collector.NewRegistry(refreshSeconds)
}
