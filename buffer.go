package logview

import (
	"iter"

	"go.uber.org/zap"

	"github.com/coregx/logview/cutindex"
	"github.com/coregx/logview/internal/conv"
	"github.com/coregx/logview/internal/parallel"
	"github.com/coregx/logview/shared"
	"github.com/coregx/logview/window"
)

// Buffer is an immutable, line-addressable view over log text.
//
// A Buffer is a small value: copying it, slicing it and selecting from it
// never copies the log text. Line i of a buffer resolves through the optional
// selection, then through the line index, to a span of the backing text.
//
// Example:
//
//	buf := logview.New("line 1\nline 2\nline 3\nline 4")
//	mid := buf.Slice(1, 3)
//	l, _ := mid.Get(0)
//	fmt.Println(l) // "line 2"
type Buffer struct {
	text      shared.Text
	index     cutindex.Index
	selection shared.Slice[int]
	selected  bool
	workers   int
}

// New indexes content by line. Content at or above the parallel threshold is
// indexed concurrently.
func New(content string, opts ...Option) Buffer {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	data := conv.StringToBytes(content)
	par := o.threshold >= 0 && len(content) >= o.threshold && o.parallelism > 1

	var index cutindex.Index
	if par {
		index = cutindex.BuildBytesParN(data, '\n', o.parallelism)
	} else {
		index = cutindex.BuildBytes(data, '\n')
	}

	o.logger.Debug("log buffer indexed",
		zap.Int("bytes", len(content)),
		zap.Int("lines", index.Len()),
		zap.Bool("parallel", par),
		zap.Int("workers", o.parallelism),
	)

	return Buffer{
		text:    shared.NewText(content),
		index:   index,
		workers: o.parallelism,
	}
}

// BuildFrom returns a Buffer over raw with default options.
func BuildFrom(raw string) Buffer {
	return New(raw)
}

// Len returns the number of lines.
func (b Buffer) Len() int {
	if b.selected {
		return b.selection.Len()
	}
	return b.index.Len()
}

// IsEmpty reports whether the buffer has no lines.
func (b Buffer) IsEmpty() bool {
	return b.Len() == 0
}

// Get returns line i.
func (b Buffer) Get(i int) (Line, bool) {
	seg := i
	if b.selected {
		var ok bool
		if seg, ok = b.selection.Get(i); !ok {
			return Line{}, false
		}
	}
	start, end, ok := b.index.Span(seg)
	if !ok {
		return Line{}, false
	}
	return Line{text: b.text.Slice(start, end)}, true
}

// Slice returns lines [start, end). Bounds are clamped.
func (b Buffer) Slice(start, end int) Buffer {
	if b.selected {
		b.selection = b.selection.Slice(start, end)
	} else {
		b.index = b.index.Slice(start, end)
	}
	return b
}

// Select returns the lines at the given positions, in the given order.
// Positions refer to the buffer's current line numbering, so selections
// compose. Out-of-range positions are dropped.
func (b Buffer) Select(items []int) Buffer {
	if b.selected {
		b.selection = b.selection.Select(items)
		return b
	}
	n := b.Len()
	keep := make([]int, 0, len(items))
	for _, i := range items {
		if i >= 0 && i < n {
			keep = append(keep, i)
		}
	}
	b.selection = shared.NewSlice(keep)
	b.selected = true
	return b
}

// Iter returns a cursor over the lines of b.
func (b Buffer) Iter() *LineIter {
	return &LineIter{buf: b}
}

// All iterates over the lines of b with their positions.
func (b Buffer) All() iter.Seq2[int, Line] {
	return func(yield func(int, Line) bool) {
		for i := 0; ; i++ {
			l, ok := b.Get(i)
			if !ok || !yield(i, l) {
				return
			}
		}
	}
}

// String returns the text spanned by the line index, from the start of its
// first line to the end of its last. Selections are not applied.
func (b Buffer) String() string {
	n := b.index.Len()
	if n == 0 {
		return ""
	}
	start, _ := b.index.Start(0)
	end, _ := b.index.End(n - 1)
	return b.text.Slice(start, end).String()
}

// Text returns the complete backing text.
func (b Buffer) Text() shared.Text {
	return b.text
}

// Map applies f to every line in order.
func Map[O any](b Buffer, f func(Line) O) shared.Slice[O] {
	return shared.NewSlice(mapLines(b, f, make([]O, 0, b.Len())))
}

// ParMap applies f to every line using the buffer's parallelism. The result
// is identical to Map for any degree of parallelism.
func ParMap[O any](b Buffer, f func(Line) O) shared.Slice[O] {
	return ParMapN(b, f, b.workers)
}

// ParMapN is like ParMap with an explicit degree of parallelism p. Values of
// p below 1 are treated as 1.
//
// Lines are split into contiguous chunks of max(Len()/p, 1) lines. Each chunk
// is mapped by its own goroutine and the chunk results are concatenated in
// chunk order.
func ParMapN[O any](b Buffer, f func(Line) O, p int) shared.Slice[O] {
	n := b.Len()
	if n == 0 {
		return shared.NewSlice([]O{})
	}
	chunk := max(n/max(p, 1), 1)
	offsets := window.Collect(window.NewSteppedRange(0, n, chunk))
	parts := parallel.Gather(len(offsets), func(i int) []O {
		sub := b.Slice(offsets[i], offsets[i]+chunk)
		return mapLines(sub, f, make([]O, 0, sub.Len()))
	})
	return shared.NewSlice(parallel.Concat(parts))
}

// FindLines returns the positions of the lines for which pred returns true.
// The result can be passed to Select:
//
//	errs := buf.Select(logview.FindLines(buf, isError).AsSlice())
func FindLines(b Buffer, pred func(Line) bool) shared.Slice[int] {
	return cutindex.FindAll(Map(b, pred).AsSlice(), isSet)
}

// ParFindLines is like FindLines but evaluates pred with ParMap.
func ParFindLines(b Buffer, pred func(Line) bool) shared.Slice[int] {
	return cutindex.FindAllPar(ParMap(b, pred).AsSlice(), isSet)
}

func isSet(v bool) bool { return v }

func mapLines[O any](b Buffer, f func(Line) O, dst []O) []O {
	it := b.Iter()
	for l, ok := it.Next(); ok; l, ok = it.Next() {
		dst = append(dst, f(l))
	}
	return dst
}
