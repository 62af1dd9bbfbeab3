package window

import (
	"github.com/coregx/logview/cutindex"
	"github.com/coregx/logview/internal/conv"
	"github.com/coregx/logview/internal/simd"
	"github.com/coregx/logview/shared"
)

// NGrams yields every span of one or more consecutive segments of a text,
// where segments are separated by single delimiter bytes. Spans are produced
// by increasing start segment, then increasing end segment.
//
// For "hello world test" split on " " the sequence is
//
//	hello, hello world, hello world test, world, world test, test
type NGrams struct {
	text shared.Text
	cuts cutindex.Index
	i, j int
}

// NewNGrams segments t on every byte in delims. Delimiters are matched as
// bytes, so delims should be ASCII.
func NewNGrams(t shared.Text, delims string) *NGrams {
	table := simd.NewByteTable([]byte(delims))
	return &NGrams{
		text: t,
		cuts: cutindex.Build(conv.StringToBytes(t.String()), table.Contains),
	}
}

// Next returns the next n-gram.
func (g *NGrams) Next() (shared.Text, bool) {
	start, ok := g.cuts.Start(g.i)
	if !ok {
		return shared.Text{}, false
	}
	end, ok := g.cuts.End(g.j)
	if !ok {
		return shared.Text{}, false
	}
	if g.j < g.cuts.Len()-1 {
		g.j++
	} else {
		g.i++
		g.j = g.i
	}
	return g.text.Slice(start, end), true
}
