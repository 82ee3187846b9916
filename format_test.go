package errchain

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// shipwreck builds the chain used throughout the rendering contracts:
// "ship exploded" wrapping "cat hair in generator", frames on both levels.
func shipwreck() Error {
	cause := New("cat hair in generator").
		WithFrames(At("generator.rs:33"), At("engine.rs:789"))
	return Wrap("ship exploded", cause).
		WithFrames(At("ship.rs:89"))
}

func TestFormat_TopOnly(t *testing.T) {
	err := shipwreck()

	assert.Equal(t, "ship exploded", Format(err))
	assert.Equal(t, "ship exploded", Format(err, TopOnly()))
	// Independent of chain length and trace content.
	assert.Equal(t, "leaf", Format(New("leaf")))
}

func TestFormat_Chain(t *testing.T) {
	err := shipwreck()

	assert.Equal(t, "ship exploded: cat hair in generator", Format(err, Chain()))
	// No trailing separator on a leaf.
	assert.Equal(t, "leaf", Format(New("leaf"), Chain()))
}

func TestFormat_WithTrace(t *testing.T) {
	err := shipwreck()

	want := "ship exploded\n    at ship.rs:89"
	assert.Equal(t, want, Format(err, WithTrace()))

	// Causes beyond the first level are ignored in this mode.
	assert.NotContains(t, Format(err, WithTrace()), "cat hair")

	// A level without frames emits no "at" lines.
	assert.Equal(t, "bare", Format(New("bare"), WithTrace()))
}

func TestFormat_ChainWithTrace(t *testing.T) {
	err := shipwreck()

	want := "ship exploded\n" +
		"    at ship.rs:89\n" +
		"Caused by: cat hair in generator\n" +
		"    at generator.rs:33\n" +
		"    at engine.rs:789"
	assert.Equal(t, want, Format(err, ChainWithTrace()))
}

func TestFormat_ChainWithTrace_FramelessLevels(t *testing.T) {
	err := Wrap("top", New("bottom").WithFrames(At("deep.go:7")))

	want := "top\nCaused by: bottom\n    at deep.go:7"
	assert.Equal(t, want, Format(err, ChainWithTrace()))
}

func TestFormat_MaxDepth(t *testing.T) {
	err := Wrap("c", Wrap("b", New("a")))

	assert.Equal(t, "c", Format(err, Chain(), MaxDepth(1)))
	assert.Equal(t, "c: b", Format(err, Chain(), MaxDepth(2)))
	assert.Equal(t, "c: b: a", Format(err, Chain(), MaxDepth(3)))
	// Levels beyond the chain are not a problem; no truncation marker either.
	assert.Equal(t, "c: b: a", Format(err, Chain(), MaxDepth(99)))
}

func TestFormat_MaxDepthBelowOneBehavesAsOne(t *testing.T) {
	err := Wrap("b", New("a"))

	assert.Equal(t, "b", Format(err, Chain(), MaxDepth(0)))
	assert.Equal(t, "b", Format(err, Chain(), MaxDepth(-5)))
	assert.Equal(t, "b", Format(err, ChainWithTrace(), MaxDepth(0)))
}

func TestFormat_ChainWithTraceDepthOneEqualsWithTrace(t *testing.T) {
	chains := []error{
		New("leaf"),
		shipwreck(),
		Wrap("x", Wrap("y", New("z").WithFrames(At("z.go:1")))),
	}
	for _, err := range chains {
		assert.Equal(t,
			Format(err, WithTrace()),
			Format(err, ChainWithTrace(), MaxDepth(1)),
			"chainWithTrace@1 must equal withTrace for %q", err.Error())
	}
}

func TestFormat_Idempotent(t *testing.T) {
	err := shipwreck()
	first := Format(err, Chain())
	second := Format(err, Chain())
	assert.Equal(t, first, second)
}

func TestFormat_NilError(t *testing.T) {
	assert.Equal(t, "", Format(nil, ChainWithTrace()))
}

func TestFormat_ForeignChain(t *testing.T) {
	err := fmt.Errorf("b: %w", errors.New("a"))

	// Foreign levels contribute their own Error() text as the message.
	assert.Equal(t, "b: a: a", Format(err, Chain()))
	assert.Equal(t, "b: a", Format(err, TopOnly()))
}

// blowupWriter fails once its byte budget is spent.
type blowupWriter struct {
	buf    bytes.Buffer
	budget int
}

var errSinkClosed = errors.New("sink closed")

func (w *blowupWriter) Write(p []byte) (int, error) {
	if w.buf.Len()+len(p) > w.budget {
		return 0, errSinkClosed
	}
	return w.buf.Write(p)
}

func TestFprint_SurfacesWriterFailure(t *testing.T) {
	err := shipwreck()

	w := &blowupWriter{budget: len("ship exploded")}
	got := Fprint(w, err, ChainWithTrace())

	// The writer's error comes back verbatim; partial output stays written.
	require.ErrorIs(t, got, errSinkClosed)
	assert.Equal(t, "ship exploded", w.buf.String())
}

func TestFprint_Succeeds(t *testing.T) {
	var b strings.Builder
	require.NoError(t, Fprint(&b, shipwreck(), Chain()))
	assert.Equal(t, "ship exploded: cat hair in generator", b.String())
}

func TestFormatVerbs(t *testing.T) {
	err := shipwreck()

	assert.Equal(t, "ship exploded", fmt.Sprintf("%v", err))
	assert.Equal(t, "ship exploded", fmt.Sprintf("%s", err))
	assert.Equal(t, `"ship exploded"`, fmt.Sprintf("%q", err))

	assert.Equal(t, Format(err, ChainWithTrace()), fmt.Sprintf("%+v", err))
	assert.Equal(t, Format(err, ChainWithTrace(), MaxDepth(1)), fmt.Sprintf("%+.1v", err))
	assert.Equal(t, Format(err, ChainWithTrace(), MaxDepth(1)), fmt.Sprintf("%+.0v", err))
	assert.Equal(t, Format(err, ChainWithTrace(), MaxDepth(2)), fmt.Sprintf("%+.2v", err))
}

func FuzzFormatChain(f *testing.F) {
	f.Add("ship exploded", "cat hair in generator", 2)
	f.Add("", "", 0)
	f.Add("a", "b", -1)
	f.Fuzz(func(t *testing.T, top, cause string, depth int) {
		err := Wrap(top, New(cause))

		if got := Format(err); got != top {
			t.Fatalf("topOnly = %q, want %q", got, top)
		}
		if got, want := Format(err, Chain()), top+": "+cause; got != want {
			t.Fatalf("chain = %q, want %q", got, want)
		}
		want := top // depth below 1 clamps to 1
		if depth >= 2 {
			want = top + ": " + cause
		}
		if got := Format(err, Chain(), MaxDepth(depth)); got != want {
			t.Fatalf("chain@%d = %q, want %q", depth, got, want)
		}
	})
}
