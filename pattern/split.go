package pattern

import (
	"iter"

	"github.com/coregx/logview/shared"
)

// Splitter yields the pieces of a text between the matches of a pattern.
//
// Splitting the empty text yields one empty piece. Consecutive, leading and
// trailing delimiters yield empty pieces. A pattern that never matches yields
// the whole text.
type Splitter struct {
	text     shared.Text
	searcher shared.Searcher
	start    int
	done     bool
}

// Split returns a Splitter over text.
func Split(text shared.Text, p shared.Pattern) *Splitter {
	return &Splitter{text: text, searcher: p.Searcher(text)}
}

// SplitAny splits text on every character in chars.
func SplitAny(text shared.Text, chars string) *Splitter {
	return Split(text, NewCharSet(chars))
}

// Next returns the next piece.
func (s *Splitter) Next() (shared.Text, bool) {
	if s.done {
		return shared.Text{}, false
	}
	if start, end, ok := s.searcher.NextMatch(); ok {
		piece := s.text.Slice(s.start, start)
		s.start = end
		return piece, true
	}
	s.done = true
	return s.text.SliceFrom(s.start), true
}

// All returns the remaining pieces as a sequence.
func (s *Splitter) All() iter.Seq[shared.Text] {
	return func(yield func(shared.Text) bool) {
		for t, ok := s.Next(); ok; t, ok = s.Next() {
			if !yield(t) {
				return
			}
		}
	}
}

// Collect returns the remaining pieces.
func (s *Splitter) Collect() []shared.Text {
	var out []shared.Text
	for t, ok := s.Next(); ok; t, ok = s.Next() {
		out = append(out, t)
	}
	return out
}
