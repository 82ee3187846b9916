// Package main demonstrates usage of the errchain package.
package main

import (
	"fmt"
	"os"

	pkgerrors "github.com/pkg/errors"

	"github.com/errchain-io/errchain"
)

func main() {
	// Build a chain with caller-supplied trace frames on both levels.
	cause := errchain.New("cat hair in generator").
		WithFrames(errchain.At("generator.go:33"), errchain.At("engine.go:789"))
	err := errchain.Wrap("ship exploded", cause).
		WithFrames(errchain.At("ship.go:89"), errchain.Caller(0))

	fmt.Println(errchain.Format(err))
	fmt.Println(errchain.Format(err, errchain.Chain()))
	fmt.Println(errchain.Format(err, errchain.Chain(), errchain.MaxDepth(1)))
	fmt.Println(errchain.Format(err, errchain.ChainWithTrace()))

	// Foreign errors participate through Adapt — here a pkg/errors chain.
	foreign := pkgerrors.Wrap(pkgerrors.New("connection reset"), "fetch manifest")
	fmt.Printf("%+v\n", errchain.Adapt(foreign))

	// Opaque keeps the story but erases the types.
	opaque := errchain.Wrap("too many attempts", errchain.Opaque(foreign))
	if err := errchain.Fprint(os.Stdout, opaque, errchain.ChainWithTrace()); err != nil {
		fmt.Fprintln(os.Stderr, "render failed:", err)
	}
	fmt.Println()
}
