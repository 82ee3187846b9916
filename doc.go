// doc.go — package documentation for errchain
//
// Package errchain provides a tiny, policy-free model for building, chaining,
// inspecting, and formatting error values with optional caller-supplied trace
// frames. It is designed to be:
//   - Ergonomic at call sites (three constructors, one formatting entry point)
//   - Interoperable with the stdlib (errors.Is/As via Unwrap, fmt.Formatter)
//   - Policy-free (no logging/HTTP/JSON rules in core)
//
// # Creating Errors
//
// When an error condition has nothing special about it besides a message,
// create one with New:
//
//	err := errchain.New("out of memory")
//
// Errors tend to wrap others to provide more context. Wrap builds a new value
// whose cause is the wrapped error:
//
//	err := errchain.Wrap("ship exploded", errchain.New("cat hair in generator"))
//
// Sometimes you want an error to keep helping users debug a problem, without
// letting callers programmatically react to the causes underneath. Opaque
// copies a chain's messages and trace frames level by level while erasing all
// type identity, so errors.Is and errors.As can no longer match the originals:
//
//	err := errchain.Opaque(timeoutErr) // still prints like the original chain
//
// # Message Semantics
//
// Error() returns only the receiver's own message. The cause chain renders via
// Format (or the fmt verbs below); it is never concatenated into Error().
// This keeps per-level messages stable and makes chain output reproducible.
//
// # Trace Frames
//
// A Frame is a caller-supplied provenance record, not a captured call stack.
// Frames are attached explicitly and accumulate innermost-first as an error
// propagates outward:
//
//	err = err.WithFrames(errchain.At("generator.go:33"), errchain.Caller(0))
//
// # Inspecting Errors
//
// Iter returns a lazy, restartable iterator over an error and its causes,
// following both Unwrap() error and Cause() error conventions:
//
//	for level := range errchain.Iter(err) {
//		fmt.Println(level.Error())
//	}
//
// # Formatting
//
// Format renders an error under an explicit mode selected by options:
//   - TopOnly (default): the root message only
//   - Chain: every message in the chain, joined by ": "
//   - WithTrace: the root message plus its indented trace frames
//   - ChainWithTrace: every level's message and frames, levels separated by
//     a "Caused by: " marker
//   - MaxDepth(n): limit chain modes to n levels (root counts as 1)
//
// The same rendering is available through fmt for values produced by this
// package (and for foreign errors via Adapt):
//   - %v, %s → root message only
//   - %q     → quoted root message
//   - %+v    → ChainWithTrace; precision limits depth (%+.2v)
//
// # Interop
//
// Foreign error types participate without conversion: Adapt returns a thin
// read-only view exposing the message/cause capability, and Format accepts
// any error directly. Chains are linear; multi-error containers
// (Unwrap() []error) are treated as leaves.
//
// Chains must be finite. The package performs no cycle detection; a cyclic
// caller-constructed chain is a programming error and will not terminate.
package errchain
