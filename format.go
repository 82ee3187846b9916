// format.go — the rendering engine and fmt.Formatter glue for errchain.
//
// Behavior:
//
//	TopOnly (default) → root message only:
//	    ship exploded
//	Chain             → every message, ": "-joined:
//	    ship exploded: cat hair in generator
//	WithTrace         → root message plus its frames:
//	    ship exploded
//	        at ship.go:89
//	ChainWithTrace    → message and frames per level, "Caused by: " between:
//	    ship exploded
//	        at ship.go:89
//	    Caused by: cat hair in generator
//	        at generator.go:33
//
// Rationale:
//   - Configuration is an explicit option list, not a flag mini-language;
//     the fmt verbs below map Go's own formatting flags onto the same engine
//     at the boundary.
//   - Rendering is a pure function of (chain, options); no state is kept
//     across calls, so repeated formatting is idempotent.
//   - Fprint surfaces writer failures verbatim and abandons rendering at the
//     failed write; partial output is not rolled back.
package errchain

import (
	"fmt"
	"io"
	"strings"
)

// literal rendering contract: separators and markers used by every mode.
const (
	chainSep    = ": "
	causedBySep = "\nCaused by: "
	framePrefix = "\n    at "
)

type formatMode uint8

const (
	modeTopOnly formatMode = iota
	modeChain
	modeWithTrace
	modeChainWithTrace
)

// formatOptions is the resolved configuration for one render.
// maxDepth == 0 means unlimited.
type formatOptions struct {
	mode     formatMode
	maxDepth int
}

// FormatOption configures Format and Fprint.
type FormatOption func(*formatOptions)

// TopOnly renders only the root message. This is the default mode.
func TopOnly() FormatOption {
	return func(o *formatOptions) { o.mode = modeTopOnly }
}

// Chain renders every message in the cause chain, joined by ": ".
func Chain() FormatOption {
	return func(o *formatOptions) { o.mode = modeChain }
}

// WithTrace renders the root message followed by its trace frames, one per
// indented line. Causes beyond the root are not rendered in this mode.
func WithTrace() FormatOption {
	return func(o *formatOptions) { o.mode = modeWithTrace }
}

// ChainWithTrace renders each level's message and trace frames; levels after
// the first are introduced by a "Caused by: " marker.
func ChainWithTrace() FormatOption {
	return func(o *formatOptions) { o.mode = modeChainWithTrace }
}

// MaxDepth limits Chain and ChainWithTrace rendering to n chain levels; the
// root counts as depth 1 and deeper levels are omitted silently. Values
// below 1 behave as 1. Without this option the whole chain is rendered.
// TopOnly and WithTrace ignore the limit.
func MaxDepth(n int) FormatOption {
	if n < 1 {
		n = 1
	}
	return func(o *formatOptions) { o.maxDepth = n }
}

func resolveOptions(opts []FormatOption) formatOptions {
	var o formatOptions
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Format renders err under the given options and returns the string.
// It never fails for finite chains; Format(nil) returns "".
func Format(err error, opts ...FormatOption) string {
	var b strings.Builder
	// strings.Builder writes cannot fail
	_ = render(&b, err, resolveOptions(opts))
	return b.String()
}

// Fprint renders err to w under the given options. A write failure is
// returned verbatim and rendering stops at the failed write; anything
// already written stays written.
func Fprint(w io.Writer, err error, opts ...FormatOption) error {
	return render(w, err, resolveOptions(opts))
}

// render walks the chain snapshot produced by Iter and assembles the output
// for the selected mode. Pure: no state survives the call.
func render(w io.Writer, err error, o formatOptions) error {
	if err == nil {
		return nil
	}
	switch o.mode {
	case modeChain:
		depth := 0
		for level := range Iter(err) {
			if o.maxDepth > 0 && depth == o.maxDepth {
				break
			}
			if depth > 0 {
				if werr := writeString(w, chainSep); werr != nil {
					return werr
				}
			}
			if werr := writeString(w, level.Error()); werr != nil {
				return werr
			}
			depth++
		}
		return nil

	case modeWithTrace:
		if werr := writeString(w, err.Error()); werr != nil {
			return werr
		}
		return writeFrames(w, err)

	case modeChainWithTrace:
		depth := 0
		for level := range Iter(err) {
			if o.maxDepth > 0 && depth == o.maxDepth {
				break
			}
			if depth > 0 {
				if werr := writeString(w, causedBySep); werr != nil {
					return werr
				}
			}
			if werr := writeString(w, level.Error()); werr != nil {
				return werr
			}
			if werr := writeFrames(w, level); werr != nil {
				return werr
			}
			depth++
		}
		return nil

	default: // modeTopOnly
		return writeString(w, err.Error())
	}
}

// writeFrames emits one "    at <location>" line per frame attached to the
// given level, in stored order. Levels without frames emit nothing.
func writeFrames(w io.Writer, level error) error {
	for _, fr := range framesOf(level) {
		if err := writeString(w, framePrefix); err != nil {
			return err
		}
		if err := writeString(w, fr.Location); err != nil {
			return err
		}
	}
	return nil
}

func writeString(w io.Writer, s string) error {
	_, err := io.WriteString(w, s)
	return err
}

// -----------------------------------------------------------------------------
// fmt.Formatter glue (shared by chainError, opaqueError, foreignView)
// -----------------------------------------------------------------------------

// formatValue maps fmt state onto the engine:
//
//	%s, %v   → root message (Error()).
//	%q       → quoted root message.
//	%+v      → ChainWithTrace; precision limits depth (%+.2v), with the
//	           same below-1 ⇒ 1 policy as MaxDepth.
func formatValue(s fmt.State, verb rune, err error) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			o := formatOptions{mode: modeChainWithTrace}
			if p, ok := s.Precision(); ok {
				if p < 1 {
					p = 1
				}
				o.maxDepth = p
			}
			// fmt has no error channel; ignore write errors here
			_ = render(s, err, o)
			return
		}
		_, _ = io.WriteString(s, err.Error())
	case 'q':
		_, _ = fmt.Fprintf(s, "%q", err.Error())
	default: // 's' and anything else
		_, _ = io.WriteString(s, err.Error())
	}
}
