package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cubestat/cubestat-go/daemon/domain"
	"github.com/cubestat/cubestat-go/daemon/errs"
)

func defaultCLI() CLI {
	return CLI{
		RefreshMS:  1000,
		BufferSize: 500,
		View:       "one",
		CPU:        "all",
		GPU:        "collapsed",
		Swap:       "show",
		Network:    "show",
		Disk:       "show",
		Power:      "combined",
		Memory:     "percent",
		HTTPHost:   "localhost",
	}
}

func TestResolveBuildsDefaultConfig(t *testing.T) {
	cfg, err := Resolve(defaultCLI(), "1.0.0")
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultConfig().Modes, cfg.Modes)
	assert.Equal(t, "1.0.0", cfg.Version)
}

func TestResolveRejectsZeroRefresh(t *testing.T) {
	cli := defaultCLI()
	cli.RefreshMS = 0
	_, err := Resolve(cli, "")
	require.Error(t, err)
	kind, ok := errs.KindOf(err)
	require.True(t, ok)
	assert.Equal(t, errs.Configuration, kind)
}

func TestResolveRejectsMultipleOutputs(t *testing.T) {
	cli := defaultCLI()
	cli.CSV = true
	cli.HTTPPort = 9090
	_, err := Resolve(cli, "")
	require.Error(t, err)
	kind, ok := errs.KindOf(err)
	require.True(t, ok)
	assert.Equal(t, errs.Configuration, kind)
}

func TestResolveRejectsUnknownMode(t *testing.T) {
	cli := defaultCLI()
	cli.CPU = "bogus"
	_, err := Resolve(cli, "")
	require.Error(t, err)
}
