package logger

import (
	"time"

	"github.com/rs/zerolog"
)

// Events wraps a *zerolog.Logger with the structured, field-heavy log
// lines the scheduler and outputs emit, mirroring the teacher's
// LogAPIRequest/LogBulkOperation shape (this file's former contents)
// generalized from HTTP/Docker events to the sampler/render/output
// events this program has.
type Events struct {
	Log *zerolog.Logger
}

// SampleFailure logs a collector returning an error for one tick; the
// sampler continues with whatever other collectors succeeded.
func (e Events) SampleFailure(domain string, err error) {
	e.Log.Warn().Str("domain", domain).Err(err).Msg("collector failed")
}

// ModeToggled logs a display-mode cycle triggered by a hotkey.
func (e Events) ModeToggled(domainName string, hotkey rune, newValue string) {
	e.Log.Debug().
		Str("domain", domainName).
		Str("hotkey", string(hotkey)).
		Str("value", newValue).
		Msg("display mode toggled")
}

// HTTPRequest logs one served HTTP request, matching the teacher's
// LogAPIRequest shape.
func (e Events) HTTPRequest(method, path string, status int, d time.Duration) {
	e.Log.Info().
		Str("method", method).
		Str("path", path).
		Int("status", status).
		Dur("duration", d).
		Msg("http request completed")
}

// SubprocessExit logs the platform sampler's privileged subprocess
// exiting, which spec.md §4.1 treats as fatal.
func (e Events) SubprocessExit(name string, err error) {
	e.Log.Error().Str("process", name).Err(err).Msg("sampler subprocess exited")
}
