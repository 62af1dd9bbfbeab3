package logview

import "github.com/coregx/logview/shared"

// Line is one line of a Buffer, without its line break.
type Line struct {
	text shared.Text
}

// Text returns the line as a view of the buffer's backing text.
func (l Line) Text() shared.Text { return l.text }

// String returns the line content.
func (l Line) String() string { return l.text.String() }

// Start returns the byte offset of the line in the buffer.
func (l Line) Start() int { return l.text.Start() }

// End returns the byte offset just past the line in the buffer.
func (l Line) End() int { return l.text.End() }

// Len returns the length of the line in bytes.
func (l Line) Len() int { return l.text.Len() }

// IsEmpty reports whether the line is blank.
func (l Line) IsEmpty() bool { return l.text.IsEmpty() }

// LineIter walks the lines of a Buffer in order.
type LineIter struct {
	buf Buffer
	pos int
}

// Next returns the next line.
func (it *LineIter) Next() (Line, bool) {
	l, ok := it.buf.Get(it.pos)
	if ok {
		it.pos++
	}
	return l, ok
}
