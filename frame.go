// frame.go — caller-supplied trace frames for errchain core.
//
// Design goals:
//   - Explicit provenance: frames are location records that callers attach;
//     nothing here walks the stack behind the caller's back.
//   - Minimal policy: a frame is one opaque location string; structure
//     (file:line, symbolic paths, request ids) is the caller's choice.
//   - Pragmatic convenience: Caller records the single immediate call site
//     via runtime.Caller for callers that want file:line without typing it.
package errchain

import (
	"path/filepath"
	"runtime"
	"strconv"
)

// Frame represents a single provenance entry attached to one chain level.
// The location is opaque caller-supplied data; the formatting engine renders
// it verbatim after the "at " marker.
type Frame struct {
	Location string
}

// At returns a Frame for an arbitrary location string.
//
// Example:
//
//	errchain.At("ship.go:89")
func At(location string) Frame {
	return Frame{Location: location}
}

// AtLine returns a Frame for a file and line pair, rendered as "file:line".
func AtLine(file string, line int) Frame {
	return Frame{Location: file + ":" + strconv.Itoa(line)}
}

// Caller returns a Frame recording the call site of the caller, skipping
// 'skip' additional frames (0 = the caller of Caller itself). The file path
// is trimmed to its base name to keep rendered traces short.
//
// This records exactly one location at the moment of the call. It is a typing
// convenience, not stack capture: propagation paths are still traced only
// where callers attach frames.
func Caller(skip int) Frame {
	_, file, line, ok := runtime.Caller(skip + 1)
	if !ok {
		return Frame{Location: "unknown"}
	}
	return Frame{Location: filepath.Base(file) + ":" + strconv.Itoa(line)}
}

// cloneFrames copies a frame slice, preserving nil for empty input so that
// "no trace" and "empty trace" stay indistinguishable.
func cloneFrames(frames []Frame) []Frame {
	if len(frames) == 0 {
		return nil
	}
	out := make([]Frame, len(frames))
	copy(out, frames)
	return out
}
