package tokenize

import "github.com/coregx/logview/shared"

// TemplateKind classifies a template token.
type TemplateKind uint8

const (
	TemplateStart TemplateKind = iota
	TemplateEnd
	// TemplateNumeric is a number shared by both lines.
	TemplateNumeric
	// TemplateRange covers two different numbers in the same position.
	TemplateRange
	TemplateString
	TemplateSymbolic
	TemplateWhitespace
	// TemplateUnknown marks positions where the lines disagree.
	TemplateUnknown
)

// Template is one position of a line template: what two or more log lines
// have in common at that token position.
type Template struct {
	Kind TemplateKind
	// Lo and Hi hold the value of a TemplateNumeric (Lo == Hi) or the bounds
	// of a TemplateRange.
	Lo, Hi uint32
	Text   shared.Text
	Char   rune
}

// FromToken returns the template matching exactly t. Numbers that do not fit
// in 32 bits are kept as strings.
func FromToken(t Token) Template {
	switch t.Kind {
	case Start:
		return Template{Kind: TemplateStart}
	case End:
		return Template{Kind: TemplateEnd}
	case Numeric:
		if v, ok := t.Uint32(); ok {
			return Template{Kind: TemplateNumeric, Lo: v, Hi: v}
		}
		return Template{Kind: TemplateString, Text: t.Text}
	case Symbolic:
		c, _ := t.Char()
		return Template{Kind: TemplateSymbolic, Char: c}
	case Whitespace:
		c, _ := t.Char()
		return Template{Kind: TemplateWhitespace, Char: c}
	default:
		return Template{Kind: TemplateString, Text: t.Text}
	}
}

// Merge returns the template covering both a and b.
//
// Equal tokens merge into themselves. Two numbers merge into a range. Any
// other pair is TemplateUnknown.
func Merge(a, b Token) Template {
	if a.Kind != b.Kind {
		return Template{Kind: TemplateUnknown}
	}
	switch a.Kind {
	case Start, End:
		return FromToken(a)
	case Numeric:
		x, okx := a.Uint32()
		y, oky := b.Uint32()
		if okx && oky {
			return Template{Kind: TemplateNumeric, Lo: min(x, y), Hi: max(x, y)}.normalize()
		}
	}
	if a.Text.Equal(b.Text) {
		return FromToken(a)
	}
	return Template{Kind: TemplateUnknown}
}

func (t Template) normalize() Template {
	if t.Kind == TemplateNumeric && t.Lo != t.Hi {
		t.Kind = TemplateRange
	}
	return t
}

// MergeLines tokenizes a and b and merges them position by position. When
// one line has more tokens than the other, the surplus positions are
// TemplateUnknown.
func MergeLines(a, b shared.Text) []Template {
	ta := Tokenize(a).Collect()
	tb := Tokenize(b).Collect()
	out := make([]Template, max(len(ta), len(tb)))
	for i := range out {
		if i < len(ta) && i < len(tb) {
			out[i] = Merge(ta[i], tb[i])
		} else {
			out[i] = Template{Kind: TemplateUnknown}
		}
	}
	return out
}
