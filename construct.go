// construct.go — constructors & concrete error types for errchain core.
//
// Scope (tiny core):
//   - Provide the three error kinds as concrete types: leaf/wrapped chain
//     values and opaque values.
//   - Implement the errchain.Error interface with NON-MUTATING fluent methods.
//   - Keep policy out (no logging/HTTP/JSON/retry policy here).
//
// Interop:
//   - errors.Is/As work via Unwrap chains.
//   - Opaque values deliberately break Is/As matching against the originals:
//     they store only strings, so no typed escape hatch exists.
//
// Notes:
//   - Copy-on-write everywhere: each fluent method returns a fresh value.
//   - Error() returns only the receiver's own message; chains render via
//     Format or the fmt verbs (format.go).
//   - Chains must be acyclic. Construction cannot create a cycle (each value
//     is built before anything can point back at it); only deliberate
//     post-hoc aliasing through foreign types can, and that is a caller bug.
package errchain

import "fmt"

// compile-time interface guarantees
var (
	_ Error         = (*chainError)(nil)
	_ Error         = (*opaqueError)(nil)
	_ fmt.Formatter = (*chainError)(nil)
	_ fmt.Formatter = (*opaqueError)(nil)
)

// chainError is the concrete value behind New and Wrap: one message, an
// optional exclusively-owned cause, and an optional caller-supplied trace.
type chainError struct {
	msg    string
	cause  error
	frames []Frame
}

func (e *chainError) Error() string   { return e.msg }
func (e *chainError) Unwrap() error   { return e.cause }
func (e *chainError) Frames() []Frame { return cloneFrames(e.frames) }

func (e *chainError) WithFrames(frames ...Frame) Error {
	if len(frames) == 0 {
		return e
	}
	n := e.clone()
	n.frames = append(n.frames, frames...)
	return n
}

func (e *chainError) clone() *chainError {
	n := *e
	// defensively copy the frame slice to preserve immutability guarantees
	n.frames = cloneFrames(e.frames)
	return &n
}

func (e *chainError) Format(s fmt.State, verb rune) { formatValue(s, verb, e) }

// opaqueError is a message-only snapshot of one level of a foreign chain.
// Depth and trace frames are preserved; type identity is erased.
type opaqueError struct {
	msg    string
	cause  error
	frames []Frame
}

func (e *opaqueError) Error() string   { return e.msg }
func (e *opaqueError) Unwrap() error   { return e.cause }
func (e *opaqueError) Frames() []Frame { return cloneFrames(e.frames) }

func (e *opaqueError) WithFrames(frames ...Frame) Error {
	if len(frames) == 0 {
		return e
	}
	n := *e
	n.frames = append(cloneFrames(e.frames), frames...)
	return &n
}

func (e *opaqueError) Format(s fmt.State, verb rune) { formatValue(s, verb, e) }

// -----------------------------------------------------------------------------
// Constructors
// -----------------------------------------------------------------------------

// New creates a leaf error with the given message, no cause, and no trace.
func New(message string) Error {
	return &chainError{msg: message}
}

// Wrap creates a new error that carries message on top of cause. The new
// value owns the cause: callers should treat the passed-in error as part of
// the returned chain rather than a standalone root.
//
// A nil cause yields a leaf, as with New. The new level starts with no trace
// frames; attach them explicitly with WithFrames.
func Wrap(message string, cause error) Error {
	return &chainError{msg: message, cause: cause}
}

// Opaque snapshots err's entire chain as message-only levels, preserving
// depth and trace frames while erasing all type identity. The result prints
// exactly like the original under every formatting mode, but errors.Is and
// errors.As can no longer match the original values, and no typed escape
// hatch exists to recover them.
//
// Opaque(nil) returns nil.
func Opaque(err error) Error {
	if err == nil {
		return nil
	}
	var head, tail *opaqueError
	for level := range Iter(err) {
		n := &opaqueError{
			msg:    level.Error(),
			frames: cloneFrames(framesOf(level)),
		}
		if head == nil {
			head = n
		} else {
			tail.cause = n
		}
		tail = n
	}
	return head
}
