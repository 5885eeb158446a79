package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/cskr/pubsub"
	"github.com/rs/zerolog"

	"github.com/cubestat/cubestat-go/daemon/bootstrap"
	"github.com/cubestat/cubestat-go/daemon/cmd"
	"github.com/cubestat/cubestat-go/daemon/collector"
	"github.com/cubestat/cubestat-go/daemon/domain"
	"github.com/cubestat/cubestat-go/daemon/errs"
	"github.com/cubestat/cubestat-go/daemon/logger"
	"github.com/cubestat/cubestat-go/daemon/metricname"
	"github.com/cubestat/cubestat-go/daemon/output"
	"github.com/cubestat/cubestat-go/daemon/presenter"
	"github.com/cubestat/cubestat-go/daemon/sampler"
	"github.com/cubestat/cubestat-go/daemon/scheduler"
	"github.com/cubestat/cubestat-go/daemon/store"
)

// Version is set at build time via -ldflags, matching the teacher's own
// package-level Version var (uma.go).
var Version = "dev"

func main() {
	var cli cmd.CLI
	kong.Parse(&cli)

	cfg, err := cmd.Resolve(cli, Version)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitCode(err))
	}

	log := logger.New(logger.Config{Component: "cubestat", FilePath: cfg.LogFile})
	logger.Banner(Version)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() {
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, syscall.SIGTERM, syscall.SIGINT)
		<-sig
		cancel()
	}()

	smp, collectors := bootstrap.New(cfg, log)

	if cfg.CSV {
		err = runCSV(ctx, smp, collectors, cfg, log)
	} else {
		err = runInteractive(ctx, smp, collectors, cfg, log)
	}

	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitCode(err))
	}
}

// runCSV suppresses the TUI entirely (spec.md §6 "csv ... suppresses
// TUI"): the CSV writer runs inline on the sampler callback (spec.md
// §4.7 "CSV writer runs inline on the sampler callback"), writing one row
// per standardized metric per tick straight to stdout, with no store in
// the loop at all.
func runCSV(ctx context.Context, smp sampler.Sampler, collectors []collector.Collector, cfg domain.Config, log *zerolog.Logger) error {
	csv := output.NewCSVWriter(os.Stdout)
	events := logger.Events{Log: log}

	cb := func(sample sampler.Sample) {
		values := make(map[metricname.Name]float64)
		for _, c := range collectors {
			m, err := c.Collect(sample.Raw)
			if err != nil {
				events.SampleFailure(c.Name(), err)
				continue
			}
			for name, v := range m {
				values[name] = v
			}
		}
		if err := csv.WriteTick(sample.Timestamp, values); err != nil {
			// A broken stdout pipe (e.g. `| head`) is OutputTransient
			// per spec.md §7: log at INFO and let the next SIGPIPE from
			// the OS terminate the process cleanly rather than treating
			// a write error as sampler-fatal.
			events.Log.Info().Err(err).Msg("csv: write failed, continuing")
		}
	}

	if err := smp.Run(ctx, cfg.RefreshMS, cb); err != nil {
		if ctx.Err() != nil {
			return nil
		}
		return errs.Wrap(errs.SourceFatal, "sampler exited", err)
	}
	return nil
}

// runInteractive drives the TUI scheduler and, when configured, an
// alternate HTTP output reading the same store through a protected
// snapshot (spec.md's "separate HTTP worker" control-flow split).
func runInteractive(ctx context.Context, smp sampler.Sampler, collectors []collector.Collector, cfg domain.Config, log *zerolog.Logger) error {
	// A 32-message backlog (the teacher's uma.go used pubsub.New(623)) so a
	// slow subscriber (the renderer racing a redraw) does not block the
	// sampler's publish.
	hub := pubsub.New(32)
	st := store.New(cfg.BufferSize, hub)

	sched := scheduler.New(st, collectors, presenter.NewRegistry(), smp, cfg, log)

	if cfg.HTTPPort != 0 || cfg.PrometheusPort != 0 {
		go serveHTTP(ctx, st, cfg, log)
	}

	return sched.Run(ctx)
}

// serveHTTP runs the alternate JSON/Prometheus output on its own
// goroutine (spec.md §5's "optional HTTP worker"); it never returns an
// error to the scheduler — a bind failure is logged and the rest of the
// program keeps running with the TUI alone, since the HTTP output is an
// OutputTransient-class concern, not a fatal one.
func serveHTTP(ctx context.Context, st *store.Store, cfg domain.Config, log *zerolog.Logger) {
	var handler http.Handler
	if cfg.PrometheusPort != 0 {
		handler = output.NewPrometheusHandler(&output.PrometheusCollector{Store: st})
	} else {
		handler = &output.JSONHandler{Store: st}
	}

	port := cfg.HTTPPort
	if cfg.PrometheusPort != 0 {
		port = cfg.PrometheusPort
	}

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", cfg.HTTPHost, port),
		Handler: output.NewRouter(handler),
	}

	go func() {
		<-ctx.Done()
		_ = srv.Close()
	}()

	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Warn().Err(err).Msg("http output: server exited")
	}
}

func exitCode(err error) int {
	if kind, ok := errs.KindOf(err); ok {
		return kind.ExitCode()
	}
	return 2
}
