// Package cutindex implements an index of cut points over an array.
//
// A cut point is the offset of an element that separates two segments, such
// as the position of a newline byte in a log file. The index stores
//
//	[0, cut_1, cut_2, ..., cut_n, len]
//
// so an index over n cut points addresses n+1 segments, and an index over an
// empty array still has exactly one (empty) segment. Segment 0 starts at 0;
// every other segment starts one past its predecessor's cut point and ends at
// its own cut point (exclusive).
//
// Indexes are immutable views over a shared cut array. Slicing an index to a
// sub-run of segments never copies the cut array.
//
// Parallel construction partitions the input into contiguous ranges before
// any goroutine starts and concatenates per-range results in range order, so
// BuildPar always returns exactly what Build returns.
package cutindex

import (
	"fmt"

	"github.com/coregx/logview/internal/parallel"
	"github.com/coregx/logview/internal/simd"
	"github.com/coregx/logview/shared"
)

// Index is a view over a cut-point array. The zero value has no segments.
type Index struct {
	cuts shared.Slice[int]
}

// Build scans arr once and records the index of every element for which cut
// returns true.
func Build[T any](arr []T, cut func(T) bool) Index {
	// Leading 0, every cut point, trailing length sentinel
	cuts := make([]int, 0, 16)
	cuts = append(cuts, 0)
	cuts = appendCuts(cuts, arr, 0, cut)
	cuts = append(cuts, len(arr))
	return Index{cuts: shared.NewSlice(cuts)}
}

// BuildPar is like Build but scans parallel.Workers() contiguous ranges of arr
// concurrently.
func BuildPar[T any](arr []T, cut func(T) bool) Index {
	return BuildParN(arr, cut, parallel.Workers())
}

// BuildParN is like BuildPar with an explicit number of ranges. It panics if
// parts is not positive.
func BuildParN[T any](arr []T, cut func(T) bool, parts int) Index {
	if parts <= 0 {
		panic(fmt.Sprintf("cutindex: invalid parallelism %d", parts))
	}
	// Ranges are fixed before any goroutine starts
	ranges := parallel.Partition(len(arr), parts)

	// Each goroutine reports absolute offsets for its own range
	found := parallel.Gather(len(ranges), func(i int) []int {
		r := ranges[i]
		return appendCuts(nil, arr[r.Start:r.End], r.Start, cut)
	})

	// Ranges are ascending and disjoint, so range order is offset order
	return assemble(found, len(arr))
}

// BuildBytes indexes every occurrence of delim in data.
//
// This is the fast path used for line indexing: occurrences are located with
// a word-at-a-time scan instead of a per-byte predicate call.
func BuildBytes(data []byte, delim byte) Index {
	// Capacity guess: one line per 64 bytes plus both sentinels
	cuts := make([]int, 0, len(data)/64+2)
	cuts = append(cuts, 0)
	cuts = simd.MemchrAll(cuts, data, delim, 0)
	cuts = append(cuts, len(data))
	return Index{cuts: shared.NewSlice(cuts)}
}

// BuildBytesPar is the parallel form of BuildBytes.
func BuildBytesPar(data []byte, delim byte) Index {
	return BuildBytesParN(data, delim, parallel.Workers())
}

// BuildBytesParN is like BuildBytesPar with an explicit number of ranges. It
// panics if parts is not positive.
func BuildBytesParN(data []byte, delim byte, parts int) Index {
	if parts <= 0 {
		panic(fmt.Sprintf("cutindex: invalid parallelism %d", parts))
	}
	ranges := parallel.Partition(len(data), parts)
	found := parallel.Gather(len(ranges), func(i int) []int {
		r := ranges[i]
		return simd.MemchrAll(nil, data[r.Start:r.End], delim, r.Start)
	})
	return assemble(found, len(data))
}

// FindAll returns the positions of every element of arr for which pred
// returns true, in ascending order.
//
// The result is an index list rather than a cut index; it is shaped for
// selecting, as in buf.Select(FindAll(flags, isSet).AsSlice()).
func FindAll[T any](arr []T, pred func(T) bool) shared.Slice[int] {
	return shared.NewSlice(appendCuts(nil, arr, 0, pred))
}

// FindAllPar is like FindAll but tests parallel.Workers() contiguous ranges of
// arr concurrently. pred must be safe for concurrent use.
func FindAllPar[T any](arr []T, pred func(T) bool) shared.Slice[int] {
	return FindAllParN(arr, pred, parallel.Workers())
}

// FindAllParN is like FindAllPar with an explicit number of ranges. It panics
// if parts is not positive.
func FindAllParN[T any](arr []T, pred func(T) bool, parts int) shared.Slice[int] {
	if parts <= 0 {
		panic(fmt.Sprintf("cutindex: invalid parallelism %d", parts))
	}
	ranges := parallel.Partition(len(arr), parts)
	found := parallel.Gather(len(ranges), func(i int) []int {
		r := ranges[i]
		return appendCuts(nil, arr[r.Start:r.End], r.Start, pred)
	})

	// Same ordering argument as BuildParN, without the sentinels
	return shared.NewSlice(parallel.Concat(found))
}

// appendCuts appends base+i for every arr[i] accepted by cut.
func appendCuts[T any](dst []int, arr []T, base int, cut func(T) bool) []int {
	for i, v := range arr {
		if cut(v) {
			dst = append(dst, base+i)
		}
	}
	return dst
}

// assemble joins per-range cut lists, in range order, between the leading 0
// and the trailing length sentinel.
func assemble(parts [][]int, n int) Index {
	// Size exactly once: both sentinels plus every cut
	total := 2
	for _, p := range parts {
		total += len(p)
	}
	cuts := make([]int, 0, total)
	cuts = append(cuts, 0)
	for _, p := range parts {
		cuts = append(cuts, p...)
	}
	cuts = append(cuts, n)
	return Index{cuts: shared.NewSlice(cuts)}
}

// Len returns the number of segments.
func (x Index) Len() int {
	return max(x.cuts.Len()-1, 0)
}

// IsEmpty reports whether the index has no segments. Only the zero Index and
// empty slices of an index are empty.
func (x Index) IsEmpty() bool {
	return x.Len() == 0
}

// Start returns the start offset of segment i.
func (x Index) Start(i int) (int, bool) {
	if i < 0 || i >= x.Len() {
		return 0, false
	}
	v, _ := x.cuts.Get(i)

	// Absolute position 0 of the cut array is the leading 0 of the root
	// index, not a cut point. Every other entry is a cut, and the segment
	// after it starts one past it.
	if x.cuts.Start()+i == 0 {
		return v, true
	}
	return v + 1, true
}

// End returns the end offset (exclusive) of segment i.
func (x Index) End(i int) (int, bool) {
	if i < 0 || i >= x.Len() {
		return 0, false
	}
	return x.cuts.Get(i + 1)
}

// Span returns both bounds of segment i.
func (x Index) Span(i int) (start, end int, ok bool) {
	if start, ok = x.Start(i); !ok {
		return 0, 0, false
	}
	end, _ = x.End(i)
	return start, end, true
}

// Slice returns the segments [start, end) as a new index sharing the cut
// array. Bounds are clamped like shared.Slice.
func (x Index) Slice(start, end int) Index {
	n := x.Len()
	start = min(max(start, 0), n)
	end = min(max(end, start), n)

	// Segments [start, end) are bounded by entries start..end of the cut
	// view, so the sub-view keeps one extra entry.
	return Index{cuts: x.cuts.Slice(start, end+1)}
}

// Cuts returns the raw cut array backing this view, including the leading 0
// (for a root index) and the trailing sentinel.
func (x Index) Cuts() []int {
	return x.cuts.AsSlice()
}

// SameBacking reports whether x and other share one cut array.
func (x Index) SameBacking(other Index) bool {
	return x.cuts.SameBacking(other.cuts)
}
