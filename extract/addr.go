package extract

import (
	"net/netip"

	"github.com/coregx/logview/pattern"
	"github.com/coregx/logview/shared"
)

// DefaultDelimiters are the characters address candidates are split on.
// Brackets are included, so bracketed IPv6 socket addresses such as
// "[::1]:80" are not recognised.
const DefaultDelimiters = " \"$'(),;<>@[]`{|}="

// IPAddrExtractor finds the first IP address in a text.
type IPAddrExtractor struct {
	// Delimiters defaults to DefaultDelimiters.
	Delimiters string
}

// Extract implements Extractor.
func (e IPAddrExtractor) Extract(t shared.Text) (netip.Addr, bool) {
	addr, _, ok := firstParsed(t, e.Delimiters, netip.ParseAddr)
	return addr, ok
}

// Find is like Extract but also returns the matched span.
func (e IPAddrExtractor) Find(t shared.Text) (netip.Addr, shared.Text, bool) {
	return firstParsed(t, e.Delimiters, netip.ParseAddr)
}

// SocketAddrExtractor finds the first address:port pair in a text.
type SocketAddrExtractor struct {
	// Delimiters defaults to DefaultDelimiters.
	Delimiters string
}

// Extract implements Extractor.
func (e SocketAddrExtractor) Extract(t shared.Text) (netip.AddrPort, bool) {
	addr, _, ok := firstParsed(t, e.Delimiters, netip.ParseAddrPort)
	return addr, ok
}

// Find is like Extract but also returns the matched span.
func (e SocketAddrExtractor) Find(t shared.Text) (netip.AddrPort, shared.Text, bool) {
	return firstParsed(t, e.Delimiters, netip.ParseAddrPort)
}

func firstParsed[V any](t shared.Text, delims string, parse func(string) (V, error)) (V, shared.Text, bool) {
	if delims == "" {
		delims = DefaultDelimiters
	}
	for piece := range pattern.SplitAny(t, delims).All() {
		if piece.IsEmpty() {
			continue
		}
		if v, err := parse(piece.String()); err == nil {
			return v, piece, true
		}
	}
	var zero V
	return zero, shared.Text{}, false
}
