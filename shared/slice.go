// Package shared provides immutable, cheaply copyable views over a shared
// backing array.
//
// A view is a (backing, start, end) triple. Copying a view is O(1) and never
// touches the backing data; every slicing operation returns a new view over
// the same backing. Backing memory is released by the garbage collector once
// the last view referencing it is gone, and nothing in this package ever
// writes to a backing array after construction, so views may be read from
// any number of goroutines without synchronization.
//
// Two containers are provided:
//   - Slice[T] for arbitrary element types
//   - Text for UTF-8 text, addressed by byte offset
//
// Basic usage:
//
//	text := shared.NewText("hello world")
//	left, right := text.SplitAt(5)
//	fmt.Println(left, right.SliceFrom(1)) // "hello" "world"
//
//	off, ok := left.RelativePosition(right) // 5, true
package shared

import "iter"

// backing is the immutable storage shared by every view derived from one
// constructor call. Views compare backing pointers for identity.
type backing[T any] struct {
	data []T
}

// Slice is an immutable view over a shared backing array.
//
// The zero value is an empty view.
type Slice[T any] struct {
	b     *backing[T]
	start int
	end   int
}

// NewSlice returns a view over all of data. The slice takes ownership of data;
// the caller must not modify it afterwards.
func NewSlice[T any](data []T) Slice[T] {
	return Slice[T]{
		b:     &backing[T]{data: data},
		start: 0,
		end:   len(data),
	}
}

// Collect builds a new backing array from seq.
func Collect[T any](seq iter.Seq[T]) Slice[T] {
	var data []T
	for v := range seq {
		data = append(data, v)
	}
	return NewSlice(data)
}

// Start returns the absolute start offset of the view in its backing array.
func (s Slice[T]) Start() int { return s.start }

// End returns the absolute end offset of the view in its backing array.
func (s Slice[T]) End() int { return s.end }

// Len returns the number of elements in the view.
func (s Slice[T]) Len() int { return s.end - s.start }

// IsEmpty reports whether the view has no elements.
func (s Slice[T]) IsEmpty() bool { return s.end == s.start }

// Get returns the element at idx relative to the view. It reports false when
// idx falls outside the view, even if the backing array is larger.
func (s Slice[T]) Get(idx int) (T, bool) {
	if idx < 0 || idx >= s.Len() {
		var zero T
		return zero, false
	}
	return s.b.data[s.start+idx], true
}

// Slice returns the sub-view [start, end) relative to this view. Both bounds
// are clamped into [0, Len()] and an end before start yields an empty view, so
// Slice never panics and never allocates a new backing array.
func (s Slice[T]) Slice(start, end int) Slice[T] {
	lo, hi := clampRange(s.start, s.end, start, end)
	return Slice[T]{b: s.b, start: lo, end: hi}
}

// SliceFrom returns the sub-view from start to the end of this view.
func (s Slice[T]) SliceFrom(start int) Slice[T] {
	return s.Slice(start, s.Len())
}

// SliceTo returns the sub-view from the beginning of this view to end.
func (s Slice[T]) SliceTo(end int) Slice[T] {
	return s.Slice(0, end)
}

// Select copies the elements at the given view-relative indices into a new
// backing array. Indices outside the view are silently dropped.
func (s Slice[T]) Select(indices []int) Slice[T] {
	data := make([]T, 0, len(indices))
	for _, idx := range indices {
		if v, ok := s.Get(idx); ok {
			data = append(data, v)
		}
	}
	return NewSlice(data)
}

// AsSlice returns the viewed elements. The returned slice aliases the backing
// array and must be treated as read-only.
func (s Slice[T]) AsSlice() []T {
	if s.b == nil {
		return nil
	}
	return s.b.data[s.start:s.end:s.end]
}

// ToSlice returns a copy of the viewed elements.
func (s Slice[T]) ToSlice() []T {
	out := make([]T, s.Len())
	copy(out, s.AsSlice())
	return out
}

// All iterates over the view yielding view-relative indices and elements.
func (s Slice[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, v := range s.AsSlice() {
			if !yield(i, v) {
				return
			}
		}
	}
}

// SameBacking reports whether s and other are views of the same backing array.
func (s Slice[T]) SameBacking(other Slice[T]) bool {
	return s.b != nil && s.b == other.b
}

// clampRange converts the relative request [start, end) into absolute offsets
// clamped to the window [lo, hi].
func clampRange(lo, hi, start, end int) (int, int) {
	n := hi - lo
	start = min(max(start, 0), n)
	end = min(max(end, start), n)
	return lo + start, lo + end
}
