package shared

import "unicode/utf8"

// CharIndices is a cursor over the runes of a Text and their byte offsets.
// Offsets are relative to the view the cursor was created from.
type CharIndices struct {
	text   Text
	offset int
}

// CharIndices returns a cursor positioned at the first rune of t.
func (t Text) CharIndices() *CharIndices {
	return &CharIndices{text: t}
}

// Next returns the next rune and its offset.
func (c *CharIndices) Next() (offset int, r rune, ok bool) {
	s := c.text.String()
	if c.offset >= len(s) {
		return 0, 0, false
	}
	r, size := utf8.DecodeRuneInString(s[c.offset:])
	offset = c.offset
	c.offset += size
	return offset, r, true
}

// Offset returns the byte offset of the rune Next will return.
func (c *CharIndices) Offset() int {
	return c.offset
}
