// Package cmd resolves argv into a domain.Config, the one job spec.md §1
// explicitly carves out of the core ("argument parsing... out of scope").
// It follows the teacher's kong-based flag struct (uma.go's `cli` literal)
// generalized from a subcommand dispatcher into a flat flag set, since
// cubestat-go has exactly one mode of operation rather than uma's
// boot/config subcommands.
package cmd

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/cubestat/cubestat-go/daemon/domain"
	"github.com/cubestat/cubestat-go/daemon/errs"
)

// CLI is the kong-tagged flag set. Field names are deliberately close to
// spec.md §6's flag list so `--help` reads like the spec's own vocabulary.
type CLI struct {
	RefreshMS  int    `name:"refresh-ms" default:"1000" help:"Sampling period in milliseconds."`
	BufferSize int    `name:"buffer-size" default:"500" help:"Ring buffer capacity per series."`

	View    string `default:"one" enum:"off,one,all" help:"Initial ruler/legend view mode."`
	CPU     string `default:"all" enum:"all,by_cluster,by_core" help:"Initial CPU grouping."`
	GPU     string `default:"collapsed" enum:"collapsed,load_only,load_and_vram" help:"Initial GPU detail level."`
	Swap    string `default:"show" enum:"show,hide" help:"Initial swap row visibility."`
	Network string `default:"show" enum:"show,hide" help:"Initial network row visibility."`
	Disk    string `default:"show" enum:"show,hide" help:"Initial disk row visibility."`
	Power   string `default:"combined" enum:"combined,all,off" help:"Initial power breakdown."`
	Memory  string `default:"percent" enum:"percent,all" help:"Initial memory breakdown."`

	CSV            bool   `help:"Emit CSV to stdout instead of the TUI; incompatible with http-port and prometheus-port."`
	HTTPPort       uint16 `name:"http-port" help:"Serve JSON metrics on this port."`
	HTTPHost       string `name:"http-host" default:"localhost" help:"Host to bind the JSON/Prometheus server to."`
	PrometheusPort uint16 `name:"prometheus-port" help:"Serve Prometheus text exposition on this port."`

	LogFile string `name:"log-file" default:"" help:"Optional file to additionally log to (rotated)."`
}

// Resolve turns a parsed CLI into a validated domain.Config, or a
// *errs.Error of Kind Configuration (exit code 2) per spec.md §6/§7. It
// never reads argv itself — kong.Parse(&cli) is the caller's job, left in
// main so tests can build a CLI literal directly.
func Resolve(cli CLI, version string) (domain.Config, error) {
	modes, err := resolveModes(cli)
	if err != nil {
		return domain.Config{}, errs.Wrap(errs.Configuration, "resolve display modes", err)
	}

	cfg := domain.Config{
		RefreshMS:      cli.RefreshMS,
		BufferSize:     cli.BufferSize,
		Modes:          modes,
		CSV:            cli.CSV,
		HTTPPort:       cli.HTTPPort,
		HTTPHost:       cli.HTTPHost,
		PrometheusPort: cli.PrometheusPort,
		LogFile:        cli.LogFile,
		Version:        version,
	}

	if err := validator.New().Struct(cfg); err != nil {
		return domain.Config{}, errs.Wrap(errs.Configuration, "validate configuration", err)
	}
	if cfg.OutputCount() > 1 {
		return domain.Config{}, errs.New(errs.Configuration, "csv, http-port and prometheus-port are mutually exclusive")
	}
	return cfg, nil
}

func resolveModes(cli CLI) (domain.Modes, error) {
	view, err := parseView(cli.View)
	if err != nil {
		return domain.Modes{}, err
	}
	cpu, err := parseCPU(cli.CPU)
	if err != nil {
		return domain.Modes{}, err
	}
	gpu, err := parseGPU(cli.GPU)
	if err != nil {
		return domain.Modes{}, err
	}
	swap, err := parseToggle(cli.Swap)
	if err != nil {
		return domain.Modes{}, err
	}
	network, err := parseToggle(cli.Network)
	if err != nil {
		return domain.Modes{}, err
	}
	disk, err := parseToggle(cli.Disk)
	if err != nil {
		return domain.Modes{}, err
	}
	power, err := parsePower(cli.Power)
	if err != nil {
		return domain.Modes{}, err
	}
	memory, err := parseMemory(cli.Memory)
	if err != nil {
		return domain.Modes{}, err
	}

	return domain.Modes{
		CPU:     cpu,
		GPU:     gpu,
		View:    view,
		Swap:    swap,
		Network: network,
		Disk:    disk,
		Power:   power,
		Memory:  memory,
	}, nil
}

func parseView(s string) (domain.ViewMode, error) {
	switch s {
	case "off":
		return domain.ViewOff, nil
	case "one":
		return domain.ViewOne, nil
	case "all":
		return domain.ViewAll, nil
	default:
		return 0, fmt.Errorf("unknown view mode %q", s)
	}
}

func parseCPU(s string) (domain.CPUMode, error) {
	switch s {
	case "all":
		return domain.CPUAll, nil
	case "by_cluster":
		return domain.CPUByCluster, nil
	case "by_core":
		return domain.CPUByCore, nil
	default:
		return 0, fmt.Errorf("unknown cpu mode %q", s)
	}
}

func parseGPU(s string) (domain.GPUMode, error) {
	switch s {
	case "collapsed":
		return domain.GPUCollapsed, nil
	case "load_only":
		return domain.GPULoadOnly, nil
	case "load_and_vram":
		return domain.GPULoadAndVRAM, nil
	default:
		return 0, fmt.Errorf("unknown gpu mode %q", s)
	}
}

func parseToggle(s string) (domain.ToggleMode, error) {
	switch s {
	case "show":
		return domain.Show, nil
	case "hide":
		return domain.Hide, nil
	default:
		return 0, fmt.Errorf("unknown toggle mode %q", s)
	}
}

func parsePower(s string) (domain.PowerMode, error) {
	switch s {
	case "combined":
		return domain.PowerCombined, nil
	case "all":
		return domain.PowerAll, nil
	case "off":
		return domain.PowerOff, nil
	default:
		return 0, fmt.Errorf("unknown power mode %q", s)
	}
}

func parseMemory(s string) (domain.MemoryMode, error) {
	switch s {
	case "percent":
		return domain.MemoryPercent, nil
	case "all":
		return domain.MemoryAll, nil
	default:
		return 0, fmt.Errorf("unknown memory mode %q", s)
	}
}
