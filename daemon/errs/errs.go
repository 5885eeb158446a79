// Package errs models the error taxonomy of the telemetry pipeline as a
// small set of kinds rather than a growing enum of domain-specific codes.
// It generalizes the teacher daemon's APIError/ErrorCode pattern: a fixed
// kind carries the exit code and propagation policy, while the message and
// optional cause stay free-form.
package errs

import "fmt"

// Kind is one of the error taxonomy entries from spec.md §7.
type Kind string

const (
	// Configuration: mutually exclusive flags, out-of-range values,
	// missing required values. Fails fast with exit code 2.
	Configuration Kind = "configuration"

	// PlatformUnavailable: unsupported OS, or a required privileged
	// tool is absent. Fails fast with exit code 1.
	PlatformUnavailable Kind = "platform_unavailable"

	// SourceTransient: a parse miss on one document, a one-shot file
	// read error, a network interface that disappeared. Never fatal.
	SourceTransient Kind = "source_transient"

	// SourceFatal: the sampler subprocess terminated unexpectedly.
	// Exit code 1.
	SourceFatal Kind = "source_fatal"

	// RenderTransient: terminal resize race, color pair exhaustion.
	// Recovered on the next frame.
	RenderTransient Kind = "render_transient"

	// OutputTransient: HTTP client disconnect, broken stdout pipe in
	// CSV mode. Logged and ignored.
	OutputTransient Kind = "output_transient"
)

// ExitCode returns the process exit code a fatal Error of this kind should
// produce. Non-fatal kinds return 0 and are never used to terminate main.
func (k Kind) ExitCode() int {
	switch k {
	case Configuration:
		return 2
	case PlatformUnavailable, SourceFatal:
		return 1
	default:
		return 0
	}
}

// Fatal reports whether an error of this kind must terminate the process.
func (k Kind) Fatal() bool {
	return k == Configuration || k == PlatformUnavailable || k == SourceFatal
}

// Error is a taxonomy-tagged error. Collectors, presenters and outputs wrap
// their failures in one of these so the scheduler can decide, by Kind
// alone, whether to log-and-continue or shut down.
type Error struct {
	Kind    Kind
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error { return e.Cause }

// New creates a taxonomy error with no underlying cause.
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Wrap attaches a Kind to an existing error.
func Wrap(kind Kind, message string, cause error) *Error {
	return &Error{Kind: kind, Message: message, Cause: cause}
}

// KindOf extracts the Kind from err if it (or something it wraps) is an
// *Error, returning ok=false otherwise.
func KindOf(err error) (Kind, bool) {
	var e *Error
	for err != nil {
		if ae, isErr := err.(*Error); isErr {
			e = ae
			break
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			break
		}
		err = u.Unwrap()
	}
	if e == nil {
		return "", false
	}
	return e.Kind, true
}
