// Package window provides cursor-style iterators that produce candidate
// sub-views of text: fixed-width sliding windows, n-grams over delimited
// segments and a fair round-robin combinator.
//
// Every iterator is an explicit cursor with a Next method and is finite for
// finite input. Iterators never mutate their source view, so restarting one
// is just constructing it again.
package window

import "iter"

// Iterator is a forward-only cursor. Next reports false once the iterator is
// exhausted and keeps reporting false afterwards.
type Iterator[T any] interface {
	Next() (T, bool)
}

// Collect drains it into a slice.
func Collect[T any](it Iterator[T]) []T {
	var out []T
	for v, ok := it.Next(); ok; v, ok = it.Next() {
		out = append(out, v)
	}
	return out
}

// Seq adapts it to a range-over-func sequence. The sequence consumes it.
func Seq[T any](it Iterator[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for v, ok := it.Next(); ok; v, ok = it.Next() {
			if !yield(v) {
				return
			}
		}
	}
}
