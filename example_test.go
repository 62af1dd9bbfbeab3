package logview_test

import (
	"fmt"
	"strings"

	"github.com/coregx/logview"
)

// ExampleNew demonstrates indexing log text by line.
func ExampleNew() {
	buf := logview.New("line 1\nline 2\nline 3")
	fmt.Println(buf.Len())

	line, _ := buf.Get(1)
	fmt.Println(line)
	// Output:
	// 3
	// line 2
}

// ExampleBuffer_Slice demonstrates narrowing a buffer to a range of lines.
func ExampleBuffer_Slice() {
	buf := logview.New("line 1\nline 2\nline 3\nline 4")
	mid := buf.Slice(1, 3)
	for _, l := range mid.All() {
		fmt.Println(l)
	}
	// Output:
	// line 2
	// line 3
}

// ExampleBuffer_Select demonstrates picking lines by position.
func ExampleBuffer_Select() {
	buf := logview.New("line 1\nline 2\nline 3\nline 4")
	sel := buf.Select([]int{3, 0, 42})
	for _, l := range sel.All() {
		fmt.Println(l)
	}
	// Output:
	// line 4
	// line 1
}

// ExampleParMap demonstrates an order-preserving parallel map.
func ExampleParMap() {
	buf := logview.New("INFO start\nWARN disk\nINFO done")
	levels := logview.ParMap(buf, func(l logview.Line) string {
		level, _, _ := strings.Cut(l.String(), " ")
		return level
	})
	fmt.Println(levels.AsSlice())
	// Output: [INFO WARN INFO]
}
