package pattern

import (
	"bytes"

	"github.com/coregx/ahocorasick"

	"github.com/coregx/logview/internal/conv"
	"github.com/coregx/logview/shared"
)

// LiteralSet matches any of a set of literals. Matches are leftmost-first:
// the match with the smallest start wins, and when several literals match at
// that start the one added first wins.
type LiteralSet struct {
	auto *ahocorasick.Automaton
	lits []string
	pats [][]byte
}

// NewLiteralSet builds a set from lits. Empty literals are ignored; a set with
// no non-empty literal returns ErrEmptyPattern.
func NewLiteralSet(lits ...string) (*LiteralSet, error) {
	b := ahocorasick.NewBuilder()
	kept := make([]string, 0, len(lits))
	pats := make([][]byte, 0, len(lits))
	for _, l := range lits {
		if l == "" {
			continue
		}
		b.AddPattern([]byte(l))
		kept = append(kept, l)
		pats = append(pats, []byte(l))
	}
	if len(kept) == 0 {
		return nil, ErrEmptyPattern
	}
	auto, err := b.Build()
	if err != nil {
		return nil, err
	}
	return &LiteralSet{auto: auto, lits: kept, pats: pats}, nil
}

// Literals returns the literals in the set.
func (s *LiteralSet) Literals() []string {
	return s.lits
}

// Searcher implements shared.Pattern.
func (s *LiteralSet) Searcher(haystack shared.Text) shared.Searcher {
	return &literalSetSearcher{set: s, hay: conv.StringToBytes(haystack.String())}
}

type literalSetSearcher struct {
	set *LiteralSet
	hay []byte
	pos int
}

// NextMatch locates a candidate with the automaton, then resolves the
// leftmost-first match in the window before it.
//
// Algorithm:
//  1. The automaton reports the match that ends earliest at or after pos
//  2. Every match starting before that one must start in [pos, m.Start],
//     because m itself is a match starting at m.Start
//  3. Scan those starts left to right, trying literals in insertion order
//  4. The first literal that is a prefix of the haystack at a start wins
func (s *literalSetSearcher) NextMatch() (int, int, bool) {
	if s.pos >= len(s.hay) {
		return 0, 0, false
	}
	m := s.set.auto.Find(s.hay, s.pos)
	if m == nil || m.End <= m.Start {
		s.pos = len(s.hay)
		return 0, 0, false
	}
	for start := s.pos; start <= m.Start; start++ {
		for _, p := range s.set.pats {
			if bytes.HasPrefix(s.hay[start:], p) {
				s.pos = start + len(p)
				return start, s.pos, true
			}
		}
	}
	// Unreachable: the literal found by the automaton matches at m.Start.
	s.pos = m.End
	return m.Start, m.End, true
}
