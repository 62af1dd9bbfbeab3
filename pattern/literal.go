package pattern

import (
	"github.com/coregx/logview/internal/conv"
	"github.com/coregx/logview/internal/simd"
	"github.com/coregx/logview/shared"
)

// Literal matches an exact byte sequence.
type Literal string

// Searcher implements shared.Pattern.
func (l Literal) Searcher(haystack shared.Text) shared.Searcher {
	return &literalSearcher{
		hay:    conv.StringToBytes(haystack.String()),
		needle: conv.StringToBytes(string(l)),
	}
}

type literalSearcher struct {
	hay    []byte
	needle []byte
	pos    int
}

func (s *literalSearcher) NextMatch() (int, int, bool) {
	if len(s.needle) == 0 || s.pos > len(s.hay) {
		return 0, 0, false
	}
	i := simd.Memmem(s.hay[s.pos:], s.needle)
	if i < 0 {
		s.pos = len(s.hay) + 1
		return 0, 0, false
	}
	start := s.pos + i
	s.pos = start + len(s.needle)
	return start, s.pos, true
}
