// Package logger builds the per-component structured logger cubestat-go
// threads through the darwin sampler, the scheduler and the output paths
// (the store and the Linux sampler take none). There
// is no package-level logger instance: Design Notes §9 flags that pattern
// ("global logging handle") explicitly, so each component that logs gets
// its own *zerolog.Logger from New, passed by reference.
package logger

import (
	"io"
	"os"
	"time"

	"github.com/gookit/color"
	"github.com/rs/zerolog"
)

// Config controls one component's logger: its name (attached as a field
// on every line) and an optional rotated file sink.
type Config struct {
	Component string
	FilePath  string
	Rotation  RotationConfig
}

// New builds a console logger and, if cfg.FilePath is set, a rotated file
// sink alongside it — matching the teacher's zerolog.ConsoleWriter setup
// (daemon/logger/structured.go's initStructuredLogger) without the
// package-level Logger global it used.
func New(cfg Config) *zerolog.Logger {
	zerolog.TimeFieldFormat = time.RFC3339

	var writers []io.Writer
	writers = append(writers, zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: "15:04:05"})
	if cfg.FilePath != "" {
		writers = append(writers, cfg.Rotation.orDefault().sink(cfg.FilePath))
	}

	l := zerolog.New(zerolog.MultiLevelWriter(writers...)).
		With().
		Timestamp().
		Str("component", cfg.Component).
		Logger()
	return &l
}

// Banner prints the colored one-line startup banner the teacher's
// logger.Blue prints on boot (this file's former Blue helper), kept as a
// plain stdout print rather than routed through zerolog since it's a
// presentation flourish, not a structured log event.
func Banner(version string) {
	color.Blue.Printf("cubestat-go %s starting\n", version)
}
