package errchain

import (
	"strings"
	"testing"
)

func TestAt(t *testing.T) {
	fr := At("ship.go:89")
	if fr.Location != "ship.go:89" {
		t.Fatalf("At = %q", fr.Location)
	}
}

func TestAtLine(t *testing.T) {
	fr := AtLine("generator.go", 33)
	if fr.Location != "generator.go:33" {
		t.Fatalf("AtLine = %q", fr.Location)
	}
}

func TestCaller_RecordsThisFile(t *testing.T) {
	fr := Caller(0)
	if !strings.HasPrefix(fr.Location, "frame_test.go:") {
		t.Fatalf("Caller(0) = %q, want frame_test.go:<line>", fr.Location)
	}
}

func TestCaller_SkipWalksOutward(t *testing.T) {
	var fr Frame
	helper := func() { fr = Caller(1) } // skip the helper itself
	helper()
	if !strings.HasPrefix(fr.Location, "frame_test.go:") {
		t.Fatalf("Caller(1) = %q, want frame_test.go:<line>", fr.Location)
	}
}

func TestCloneFrames_NilStaysNil(t *testing.T) {
	if cloneFrames(nil) != nil {
		t.Fatalf("cloneFrames(nil) must stay nil")
	}
	if cloneFrames([]Frame{}) != nil {
		t.Fatalf("empty trace must normalize to nil (absent)")
	}

	in := []Frame{At("a.go:1")}
	out := cloneFrames(in)
	out[0] = At("mutated")
	if in[0].Location != "a.go:1" {
		t.Fatalf("cloneFrames must isolate its input")
	}
}
