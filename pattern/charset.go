package pattern

import (
	"strings"
	"unicode/utf8"

	"github.com/coregx/logview/internal/conv"
	"github.com/coregx/logview/internal/simd"
	"github.com/coregx/logview/shared"
)

// CharSet matches any single character from a set.
type CharSet struct {
	chars string
	table *simd.ByteTable
}

// NewCharSet returns a set of the characters in chars. Sets made only of ASCII
// characters are scanned with a byte table.
func NewCharSet(chars string) CharSet {
	cs := CharSet{chars: chars}
	if simd.IsASCIIString(chars) {
		cs.table = simd.NewByteTable(conv.StringToBytes(chars))
	}
	return cs
}

// Contains reports whether r is in the set.
func (c CharSet) Contains(r rune) bool {
	if c.table != nil {
		return r < utf8.RuneSelf && c.table.Contains(byte(r))
	}
	return strings.ContainsRune(c.chars, r)
}

// Searcher implements shared.Pattern.
func (c CharSet) Searcher(haystack shared.Text) shared.Searcher {
	return &charSetSearcher{set: c, hay: haystack.String()}
}

type charSetSearcher struct {
	set CharSet
	hay string
	pos int
}

func (s *charSetSearcher) NextMatch() (int, int, bool) {
	if s.set.chars == "" || s.pos >= len(s.hay) {
		return 0, 0, false
	}
	if s.set.table != nil {
		// ASCII bytes never occur inside multi-byte sequences.
		i := simd.MemchrInTable(conv.StringToBytes(s.hay[s.pos:]), s.set.table)
		if i < 0 {
			s.pos = len(s.hay)
			return 0, 0, false
		}
		start := s.pos + i
		s.pos = start + 1
		return start, s.pos, true
	}
	for s.pos < len(s.hay) {
		r, size := utf8.DecodeRuneInString(s.hay[s.pos:])
		start := s.pos
		s.pos += size
		if strings.ContainsRune(s.set.chars, r) {
			return start, s.pos, true
		}
	}
	return 0, 0, false
}
