// Package tokenize splits log text into classified tokens.
//
// A line is scanned once, left to right. Every whitespace character and every
// ASCII punctuation character becomes a token of its own; everything between
// them becomes one run token classified as Alphabetic, Numeric or
// AlphaNumeric. The stream is framed by a Start and an End token:
//
//	"hello123 !world 456"
//	Start AlphaNumeric("hello123") Whitespace(" ") Symbolic("!")
//	Alphabetic("world") Whitespace(" ") Numeric("456") End
//
// Tokens are views of the input text. Tokenizing the same view again yields
// the same stream.
package tokenize

import (
	"strconv"
	"unicode/utf8"

	"github.com/coregx/logview/shared"
)

// Kind classifies a token.
type Kind uint8

const (
	Start Kind = iota
	End
	Alphabetic
	Numeric
	AlphaNumeric
	Symbolic
	Whitespace
)

var kindNames = [...]string{
	Start:        "Start",
	End:          "End",
	Alphabetic:   "Alphabetic",
	Numeric:      "Numeric",
	AlphaNumeric: "AlphaNumeric",
	Symbolic:     "Symbolic",
	Whitespace:   "Whitespace",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// Token is a classified span of text. Start and End tokens carry an empty
// view at the beginning and end of the input.
type Token struct {
	Kind Kind
	Text shared.Text
}

// Start returns the byte offset of the token in the backing text.
func (t Token) Start() int { return t.Text.Start() }

// End returns the byte offset just past the token in the backing text.
func (t Token) End() int { return t.Text.End() }

// String returns the token text.
func (t Token) String() string { return t.Text.String() }

// Char returns the character of a Symbolic or Whitespace token.
func (t Token) Char() (rune, bool) {
	if t.Kind != Symbolic && t.Kind != Whitespace {
		return 0, false
	}
	r, _ := utf8.DecodeRuneInString(t.Text.String())
	return r, true
}

// Uint32 returns the value of a Numeric token. It reports false for other
// kinds and for values that do not fit in 32 bits.
func (t Token) Uint32() (uint32, bool) {
	if t.Kind != Numeric {
		return 0, false
	}
	v, err := strconv.ParseUint(t.Text.String(), 10, 32)
	if err != nil {
		return 0, false
	}
	return uint32(v), true
}
