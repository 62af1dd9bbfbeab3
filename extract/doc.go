// Package extract locates semantically typed values in free-form log text.
//
// Three extractors are provided:
//   - DateTimeExtractor: the first date/time, found by sliding windows of
//     several widths interleaved round robin
//   - IPAddrExtractor: the first IPv4 or IPv6 address
//   - SocketAddrExtractor: the first address:port pair
//
// Extractors never fail: a text without a valid value simply reports false.
// Candidate substrings that the underlying parser rejects are skipped.
//
// Basic usage:
//
//	var ex extract.DateTimeExtractor
//	if dt, ok := ex.Extract(shared.NewText("job done at 2024-03-01 12:00:00")); ok {
//	    fmt.Println(dt.Time, dt.Span)
//	}
package extract

import "github.com/coregx/logview/shared"

// Extractor finds a value of type V in a text.
type Extractor[V any] interface {
	Extract(t shared.Text) (V, bool)
}

// Finder is an Extractor that also reports where the value was found. All
// extractors in this package are Finders.
type Finder[V any] interface {
	Extractor[V]
	Find(t shared.Text) (V, shared.Text, bool)
}
