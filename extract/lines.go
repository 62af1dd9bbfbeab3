package extract

import (
	"github.com/coregx/logview"
	"github.com/coregx/logview/shared"
)

// Found is a value extracted from one line of a buffer.
type Found[V any] struct {
	// Line is the position of the line in the buffer.
	Line int
	// Span is the matched text, a view of the buffer's backing text.
	Span  shared.Text
	Value V
}

type lineResult[V any] struct {
	value V
	span  shared.Text
	ok    bool
}

// Lines runs ex over every line of buf and returns the hits in line order.
func Lines[V any](buf logview.Buffer, ex Finder[V]) []Found[V] {
	return collect(logview.Map(buf, apply(ex)).AsSlice())
}

// ParLines is like Lines but extracts from chunks of lines concurrently. The
// result is identical to Lines.
func ParLines[V any](buf logview.Buffer, ex Finder[V]) []Found[V] {
	return collect(logview.ParMap(buf, apply(ex)).AsSlice())
}

func apply[V any](ex Finder[V]) func(logview.Line) lineResult[V] {
	return func(l logview.Line) lineResult[V] {
		v, span, ok := ex.Find(l.Text())
		return lineResult[V]{value: v, span: span, ok: ok}
	}
}

func collect[V any](results []lineResult[V]) []Found[V] {
	var out []Found[V]
	for i, r := range results {
		if r.ok {
			out = append(out, Found[V]{Line: i, Span: r.span, Value: r.value})
		}
	}
	return out
}
