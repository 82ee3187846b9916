// adapt.go — read-only views that let foreign errors format like natives.
//
// Purpose
//   - Give ANY error value the errchain rendering surface (Frames, fmt verbs)
//     without converting it into a native value.
//   - Preserve perfect interop: the view delegates message and source lookup
//     to the underlying error on every call.
//   - Stay policy-free: adaptation adds a thin wrapper and nothing else.
//
// Background
//   - Go error traversal hinges on Unwrap() error (stdlib) and the older
//     Cause() error convention (github.com/pkg/errors). The view follows
//     both, so a pkg/errors chain renders level by level like a native one.
package errchain

import "fmt"

var (
	_ Error         = (*foreignView)(nil)
	_ fmt.Formatter = (*foreignView)(nil)
)

// foreignView is a transient projection over an arbitrary error. It stores
// the underlying error plus any frames attached through the view; nothing is
// copied or persisted from the foreign chain.
type foreignView struct {
	err    error
	frames []Frame
}

func (v *foreignView) Error() string { return v.err.Error() }
func (v *foreignView) Unwrap() error { return sourceOf(v.err) }

// Frames surfaces the underlying error's own frames (when it exposes any)
// followed by frames attached to the view.
func (v *foreignView) Frames() []Frame {
	under := framesOf(v.err)
	if len(v.frames) == 0 {
		return cloneFrames(under)
	}
	out := make([]Frame, 0, len(under)+len(v.frames))
	out = append(out, under...)
	out = append(out, v.frames...)
	return out
}

func (v *foreignView) WithFrames(frames ...Frame) Error {
	if len(frames) == 0 {
		return v
	}
	n := &foreignView{err: v.err}
	n.frames = append(cloneFrames(v.frames), frames...)
	return n
}

func (v *foreignView) Format(s fmt.State, verb rune) { formatValue(s, verb, v) }

// Adapt wraps any error in the uniform view used by the chain iterator and
// the formatting engine, so foreign error types participate in rendering
// without being converted into native values.
//
//   - nil → nil
//   - native errchain.Error → returned as-is
//   - other error → thin read-only view (one small allocation)
//
// Example:
//
//	err := fmt.Errorf("request failed: %w", cause)
//	fmt.Printf("%+v", errchain.Adapt(err))
func Adapt(err error) Error {
	if err == nil {
		return nil
	}
	if ce, ok := err.(Error); ok {
		return ce
	}
	return &foreignView{err: err}
}
