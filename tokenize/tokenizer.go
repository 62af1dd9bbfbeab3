package tokenize

import (
	"iter"
	"unicode"
	"unicode/utf8"

	"github.com/coregx/logview/shared"
)

type state uint8

const (
	stateStart state = iota
	stateText
	stateEnd
)

// Tokenizer is a cursor over the tokens of a text.
type Tokenizer struct {
	text  shared.Text
	rest  shared.Text
	state state
}

// Tokenize returns a tokenizer over t.
func Tokenize(t shared.Text) *Tokenizer {
	return &Tokenizer{text: t, rest: t}
}

// Next returns the next token.
func (z *Tokenizer) Next() (Token, bool) {
	switch z.state {
	case stateStart:
		z.state = stateText
		return Token{Kind: Start, Text: z.text.SliceTo(0)}, true
	case stateText:
		if z.rest.IsEmpty() {
			z.state = stateEnd
			return Token{Kind: End, Text: z.rest}, true
		}
		n := boundary(z.rest.String())
		tok, rest := z.rest.SplitAt(n)
		z.rest = rest
		return Token{Kind: classify(tok.String()), Text: tok}, true
	default:
		return Token{}, false
	}
}

// All returns the remaining tokens as a sequence.
func (z *Tokenizer) All() iter.Seq[Token] {
	return func(yield func(Token) bool) {
		for t, ok := z.Next(); ok; t, ok = z.Next() {
			if !yield(t) {
				return
			}
		}
	}
}

// Collect returns the remaining tokens.
func (z *Tokenizer) Collect() []Token {
	var out []Token
	for t, ok := z.Next(); ok; t, ok = z.Next() {
		out = append(out, t)
	}
	return out
}

// boundary returns the length of the next token in the non-empty string s.
func boundary(s string) int {
	for i, r := range s {
		if isSeparator(r) {
			if i == 0 {
				return utf8.RuneLen(r)
			}
			return i
		}
	}
	return len(s)
}

func isSeparator(r rune) bool {
	return unicode.IsSpace(r) || isASCIIPunct(r)
}

func isASCIIPunct(r rune) bool {
	return r < utf8.RuneSelf && (unicode.IsPunct(r) || unicode.IsSymbol(r))
}

func classify(s string) Kind {
	r, size := utf8.DecodeRuneInString(s)
	if size == len(s) {
		switch {
		case unicode.IsSpace(r):
			return Whitespace
		case isASCIIPunct(r):
			return Symbolic
		case unicode.IsNumber(r):
			return Numeric
		case unicode.IsLetter(r):
			return Alphabetic
		default:
			return Symbolic
		}
	}

	letters, numbers := true, true
	for _, r := range s {
		letters = letters && unicode.IsLetter(r)
		numbers = numbers && unicode.IsNumber(r)
	}
	switch {
	case letters:
		return Alphabetic
	case numbers:
		return Numeric
	default:
		return AlphaNumeric
	}
}
