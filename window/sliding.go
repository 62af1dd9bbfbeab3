package window

import (
	"fmt"

	"github.com/coregx/logview/shared"
)

// SlidingWindow yields every run of exactly size runes in a text, advancing
// one rune at a time. It never yields a shorter window.
type SlidingWindow struct {
	text  shared.Text
	start *shared.CharIndices
	end   *shared.CharIndices
}

// NewSlidingWindow returns a sliding window of size runes over t. It panics if
// size is not positive.
func NewSlidingWindow(t shared.Text, size int) *SlidingWindow {
	if size <= 0 {
		panic(fmt.Sprintf("window: invalid size %d", size))
	}
	w := &SlidingWindow{
		text:  t,
		start: t.CharIndices(),
		end:   t.CharIndices(),
	}
	for range size - 1 {
		if _, _, ok := w.end.Next(); !ok {
			break
		}
	}
	return w
}

// Next returns the next window as a view of the source text.
func (w *SlidingWindow) Next() (shared.Text, bool) {
	_, _, ok := w.end.Next()
	if !ok {
		return shared.Text{}, false
	}
	start, _, _ := w.start.Next()
	return w.text.Slice(start, w.end.Offset()), true
}
