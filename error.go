// Package errchain defines the minimal, composable error-chain model used
// across errchain projects. It focuses on per-level messages, explicit
// provenance, and uniform rendering, while remaining perfectly interoperable
// with the Go standard library.
//
// Design tenets:
//   - Interop-first: play nicely with errors.Is/As via Unwrap.
//   - Minimal surface: no logging/HTTP/JSON in core.
//   - Non-mutating ergonomics: fluent methods return a new value.
//   - Explicit provenance: trace frames are attached by callers, never captured.
package errchain

// Error is the minimal, fluent, interop-friendly contract for chain errors.
//
// All fluent methods MUST be non-mutating: they return a new Error value
// (copy-on-write) and MUST NOT alter the receiver state. This guarantees
// thread-safety for shared error values and keeps rendered output reproducible
// without external synchronization.
//
// Error() returns only the receiver's own message; the cause chain is
// rendered by Format or the fmt verbs, never folded into Error().
type Error interface {
	// error provides this level's message string. Keep it concise; chain
	// rendering belongs to Format, not Error().
	error

	// Unwrap returns the causal parent error (if any) to enable stdlib
	// traversal via errors.Is/As. Implementations that do not wrap anything
	// return nil.
	Unwrap() error

	// Frames returns a COPY of the trace frames attached to this level.
	// The returned slice is safe to mutate by callers without affecting the
	// stored trace (copy-on-read). A nil result means no frames.
	Frames() []Frame

	// WithFrames appends caller-supplied frames to this level's trace and
	// returns a NEW Error. Frames accumulate innermost-first: attach the
	// deepest call site first, then outer sites as the error propagates.
	//
	// Example:
	//   err = err.WithFrames(errchain.At("generator.go:33"))
	WithFrames(frames ...Frame) Error
}

// framer is the structural capability checked by the formatting engine when
// rendering trace frames for an arbitrary chain level.
type framer interface {
	Frames() []Frame
}

// framesOf returns the frames a chain level exposes, or nil.
func framesOf(err error) []Frame {
	if f, ok := err.(framer); ok {
		return f.Frames()
	}
	return nil
}
