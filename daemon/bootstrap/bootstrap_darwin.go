//go:build darwin

package bootstrap

import (
	"github.com/rs/zerolog"

	"github.com/cubestat/cubestat-go/daemon/collector"
	"github.com/cubestat/cubestat-go/daemon/domain"
	"github.com/cubestat/cubestat-go/daemon/sampler"
)

// New builds the darwin sampler (the powermetrics subprocess) and
// collector set, both of which read structured warnings through log.
func New(cfg domain.Config, log *zerolog.Logger) (sampler.Sampler, []collector.Collector) {
	_ = cfg
	return sampler.NewSampler(log), collector.NewRegistry(log)
}
