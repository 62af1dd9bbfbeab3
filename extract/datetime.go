package extract

import (
	"fmt"
	"iter"
	"time"

	"github.com/coregx/logview/shared"
	"github.com/coregx/logview/window"
)

// Default window widths, in characters, scanned by DateTimeExtractor.
const (
	DefaultMinLen = 10
	DefaultMaxLen = 42
)

// DateTime is a date/time found in a text together with its span.
type DateTime struct {
	Time time.Time
	Span shared.Text
}

// DateTimeExtractor finds the first date/time in a text.
//
// Candidate windows of every width in [MinLen, MaxLen) slide over the text
// in lockstep: each round offers the windows starting at the next character
// position, widest first, to the parser. The first candidate the parser
// accepts is returned, so an earlier start always beats a later one and, at
// the same start, a wider match beats a narrower one.
//
// The zero value uses the default widths and format table.
type DateTimeExtractor struct {
	MinLen int
	MaxLen int
	// Parser defaults to the built-in FormatTable.
	Parser DateTimeParser
}

// NewDateTimeExtractor returns an extractor with the default configuration.
func NewDateTimeExtractor() DateTimeExtractor {
	return DateTimeExtractor{MinLen: DefaultMinLen, MaxLen: DefaultMaxLen}
}

func (e DateTimeExtractor) bounds() (int, int) {
	if e.MinLen == 0 && e.MaxLen == 0 {
		return DefaultMinLen, DefaultMaxLen
	}
	if e.MinLen <= 0 || e.MaxLen <= e.MinLen {
		panic(fmt.Sprintf("extract: invalid window range [%d, %d)", e.MinLen, e.MaxLen))
	}
	return e.MinLen, e.MaxLen
}

func (e DateTimeExtractor) parser() DateTimeParser {
	if e.Parser == nil {
		return defaultFormats
	}
	return e.Parser
}

// Extract implements Extractor. It panics if the width range is empty or not
// positive.
func (e DateTimeExtractor) Extract(t shared.Text) (DateTime, bool) {
	lo, hi := e.bounds()
	parser := e.parser()

	iters := make([]window.Iterator[shared.Text], 0, hi-lo)
	for size := hi - 1; size >= lo; size-- {
		iters = append(iters, window.NewSlidingWindow(t, size))
	}
	rr := window.NewRoundRobin(iters...)

	for w, ok := rr.Next(); ok; w, ok = rr.Next() {
		if ts, ok := parser.ParseDateTime(w.String()); ok {
			return DateTime{Time: ts, Span: w}, true
		}
	}
	return DateTime{}, false
}

// Find is like Extract but also returns the matched span.
func (e DateTimeExtractor) Find(t shared.Text) (DateTime, shared.Text, bool) {
	dt, ok := e.Extract(t)
	return dt, dt.Span, ok
}

// Matches returns every date/time in t that starts at a token border, in
// order of position. Candidates starting inside a previous match are
// skipped, so matches never overlap. At each border the widest accepted
// window wins.
//
// Matches panics like Extract on an invalid width range.
func (e DateTimeExtractor) Matches(t shared.Text) iter.Seq[DateTime] {
	lo, hi := e.bounds()
	parser := e.parser()
	return func(yield func(DateTime) bool) {
		borders := window.NewTokenBorders(t)
		next := 0
		for b, ok := borders.Next(); ok; b, ok = borders.Next() {
			if b < next {
				continue
			}
			next = b + 1
			dt, found := parseAt(t.SliceFrom(b), lo, hi, parser)
			if !found {
				continue
			}
			if !yield(dt) {
				return
			}
			next = b + dt.Span.Len()
		}
	}
}

// DateTimeMatches is Matches with the default configuration.
func DateTimeMatches(t shared.Text) iter.Seq[DateTime] {
	return DateTimeExtractor{}.Matches(t)
}

// parseAt tries the windows of rest that start at its first character, widest
// first, and returns the first one parser accepts.
func parseAt(rest shared.Text, lo, hi int, parser DateTimeParser) (DateTime, bool) {
	// ends[k] is the byte offset just past the (k+1)th character.
	ends := make([]int, 0, hi-1)
	chars := rest.CharIndices()
	for len(ends) < hi-1 {
		if _, _, ok := chars.Next(); !ok {
			break
		}
		ends = append(ends, chars.Offset())
	}
	for size := len(ends); size >= lo; size-- {
		cand := rest.SliceTo(ends[size-1])
		if ts, ok := parser.ParseDateTime(cand.String()); ok {
			return DateTime{Time: ts, Span: cand}, true
		}
	}
	return DateTime{}, false
}
