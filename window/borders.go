package window

import (
	"github.com/coregx/logview/internal/conv"
	"github.com/coregx/logview/internal/simd"
	"github.com/coregx/logview/shared"
)

// separators holds ASCII whitespace and ASCII punctuation.
var separators = simd.NewByteTable([]byte(" \t\n\f\r!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"))

type borderState uint8

const (
	borderStart borderState = iota
	borderFind
	borderFound
	borderEnd
)

// TokenBorders yields the offsets where tokens begin and end in a text.
//
// Every ASCII whitespace or punctuation byte is a token of its own, so it
// contributes two borders: its own offset and the offset just past it. The
// sequence always starts with 0 and ends with the length of the text, and
// may repeat an offset when separators are adjacent:
//
//	"a  b"  ->  0 1 2 2 3 4
//
// Offsets are relative to the view.
type TokenBorders struct {
	hay   []byte
	state borderState
	off   int
}

// NewTokenBorders returns the borders of t.
func NewTokenBorders(t shared.Text) *TokenBorders {
	return &TokenBorders{hay: conv.StringToBytes(t.String())}
}

// Next returns the next border.
func (b *TokenBorders) Next() (int, bool) {
	switch b.state {
	case borderStart:
		b.state = borderFind
		return 0, true
	case borderFind:
		// Next separator at or after off; none left means the final border
		i := simd.MemchrInTable(b.hay[b.off:], separators)
		if i < 0 {
			b.state = borderEnd
			return len(b.hay), true
		}
		// The separator's own offset now, the offset past it on the next call
		i += b.off
		b.state, b.off = borderFound, i+1
		return i, true
	case borderFound:
		b.state = borderFind
		return b.off, true
	default:
		return 0, false
	}
}
