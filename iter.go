// iter.go — lazy traversal over error cause chains.
//
// Scope (tiny core):
//   - One traversal primitive over single-cause links, exposed as stdlib
//     iter.Seq sequences: lazy, restartable, read-only.
//   - Cooperates with both source conventions in the wild: Unwrap() error
//     (stdlib, Go 1.13) and Cause() error (github.com/pkg/errors).
//   - No classification, no matching — inspection stays structural.
//
// Traversal semantics:
//   - Iter:    yields err itself, then each successive source, stopping at nil.
//   - Sources: yields only the sources, skipping err itself.
//   - Root:    the last element of Iter (err itself when there is no chain).
//
// Multi-error containers (Unwrap() []error) are treated as leaves: chains in
// this model are linear, and flattening a join into a line would fabricate
// an order the container never promised.
//
// Termination is bounded by chain length. The traversal performs no cycle
// detection; a cyclic chain is a caller programming error and will not
// terminate.
package errchain

import "iter"

// singleUnwrapper is the stdlib source convention (Go ≥ 1.13).
type singleUnwrapper interface{ Unwrap() error }

// causer is the legacy source convention used by github.com/pkg/errors.
type causer interface{ Cause() error }

// sourceOf returns the direct cause of err, following Unwrap() error first
// and Cause() error as a fallback, or nil when err is a leaf.
func sourceOf(err error) error {
	switch s := err.(type) {
	case singleUnwrapper:
		return s.Unwrap()
	case causer:
		return s.Cause()
	}
	return nil
}

// Iter returns a lazy sequence over err and its cause chain, beginning with
// err itself. The sequence is restartable: ranging over it again walks the
// same chain from the start. Iter(nil) yields nothing.
//
// Example:
//
//	err := errchain.Wrap("c", errchain.Wrap("b", errchain.New("a")))
//	for level := range errchain.Iter(err) {
//		fmt.Println(level.Error()) // "c", "b", "a"
//	}
func Iter(err error) iter.Seq[error] {
	return func(yield func(error) bool) {
		for e := err; e != nil; e = sourceOf(e) {
			if !yield(e) {
				return
			}
		}
	}
}

// Sources returns the sequence of err's causes, skipping err itself.
// Equivalent to Iter(err) without the first element.
func Sources(err error) iter.Seq[error] {
	return func(yield func(error) bool) {
		if err == nil {
			return
		}
		for e := sourceOf(err); e != nil; e = sourceOf(e) {
			if !yield(e) {
				return
			}
		}
	}
}

// Root returns the outermost cause of err: the last element of Iter(err).
// If err has no chain, Root returns err itself. Root(nil) returns nil.
func Root(err error) error {
	var last error
	for e := range Iter(err) {
		last = e
	}
	return last
}
