package shared

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// textBacking is the immutable string shared by every Text derived from one
// NewText call.
type textBacking struct {
	s string
}

// Text is an immutable view over shared UTF-8 text. Offsets are byte offsets.
//
// Slicing clamps out-of-range bounds like Slice[T] does. A bound that lands
// inside a multi-byte UTF-8 sequence is a programming error and panics.
//
// The zero value is an empty view that shares no backing with anything.
type Text struct {
	b     *textBacking
	start int
	end   int
}

// NewText returns a view over all of s.
func NewText(s string) Text {
	return Text{
		b:     &textBacking{s: s},
		start: 0,
		end:   len(s),
	}
}

// Start returns the absolute byte offset of the view in its backing text.
func (t Text) Start() int { return t.start }

// End returns the absolute end byte offset of the view in its backing text.
func (t Text) End() int { return t.end }

// Len returns the length of the view in bytes.
func (t Text) Len() int { return t.end - t.start }

// IsEmpty reports whether the view is empty.
func (t Text) IsEmpty() bool { return t.end == t.start }

// String returns the viewed text. No bytes are copied.
func (t Text) String() string {
	if t.b == nil {
		return ""
	}
	return t.b.s[t.start:t.end]
}

// Backing returns the full backing text the view was derived from.
func (t Text) Backing() string {
	if t.b == nil {
		return ""
	}
	return t.b.s
}

// Slice returns the sub-view [start, end) relative to this view, with bounds
// clamped into [0, Len()]. It panics if a clamped bound is not on a UTF-8
// rune boundary.
func (t Text) Slice(start, end int) Text {
	lo, hi := clampRange(t.start, t.end, start, end)
	if t.b != nil {
		checkBoundary(t.b.s, lo)
		checkBoundary(t.b.s, hi)
	}
	return Text{b: t.b, start: lo, end: hi}
}

// SliceFrom returns the sub-view from start to the end of this view.
func (t Text) SliceFrom(start int) Text {
	return t.Slice(start, t.Len())
}

// SliceTo returns the sub-view from the beginning of this view to end.
func (t Text) SliceTo(end int) Text {
	return t.Slice(0, end)
}

// SplitAt splits the view at byte offset idx.
func (t Text) SplitAt(idx int) (Text, Text) {
	return t.SliceTo(idx), t.SliceFrom(idx)
}

// SplitAtTwo splits the view at two byte offsets, returning the text before
// idx1, between idx1 and idx2, and after idx2.
func (t Text) SplitAtTwo(idx1, idx2 int) (Text, Text, Text) {
	return t.SliceTo(idx1), t.Slice(idx1, idx2), t.SliceFrom(idx2)
}

// Find returns the first match of p in the view.
func (t Text) Find(p Pattern) (Text, bool) {
	start, end, ok := p.Searcher(t).NextMatch()
	if !ok {
		return Text{}, false
	}
	return t.Slice(start, end), true
}

// Contains reports whether other lies within t. A view of the same backing
// whose bounds fall inside t is contained; otherwise the check falls back to a
// byte-for-byte content search.
func (t Text) Contains(other Text) bool {
	if t.SameBacking(other) && t.start <= other.start && other.end <= t.end {
		return true
	}
	return strings.Contains(t.String(), other.String())
}

// RelativePosition returns the offset of other's start relative to t's start.
// It reports false when the two views do not share a backing; the check is by
// identity, not content.
//
// Example:
//
//	base := shared.NewText("hello world")
//	left, right := base.SliceTo(5), base.SliceFrom(6)
//	left.RelativePosition(right) // 6, true
//	right.RelativePosition(left) // -6, true
func (t Text) RelativePosition(other Text) (int, bool) {
	if !t.SameBacking(other) {
		return 0, false
	}
	return other.start - t.start, true
}

// SameBacking reports whether t and other are views of the same backing text.
func (t Text) SameBacking(other Text) bool {
	return t.b != nil && t.b == other.b
}

// Equal reports whether t and other have the same content.
func (t Text) Equal(other Text) bool {
	return t.String() == other.String()
}

// Compare orders t and other by content.
func (t Text) Compare(other Text) int {
	return strings.Compare(t.String(), other.String())
}

// CharCount returns the number of runes in the view.
func (t Text) CharCount() int {
	return utf8.RuneCountInString(t.String())
}

// GoString implements fmt.GoStringer.
func (t Text) GoString() string {
	return fmt.Sprintf("shared.Text(%q)", t.String())
}

func checkBoundary(s string, off int) {
	if off > 0 && off < len(s) && !utf8.RuneStart(s[off]) {
		panic(fmt.Sprintf("shared: byte offset %d is not a UTF-8 character boundary", off))
	}
}
