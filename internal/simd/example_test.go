package simd_test

import (
	"fmt"

	"github.com/coregx/logview/internal/simd"
)

// ExampleMemchr locates the first line break of a log buffer
func ExampleMemchr() {
	pos := simd.Memchr([]byte("line 1\nline 2"), '\n')
	fmt.Println(pos)
	// Output: 6
}

// ExampleMemmem searches a request line for the protocol
func ExampleMemmem() {
	pos := simd.Memmem([]byte("GET /index.html HTTP/1.1"), []byte("HTTP"))
	fmt.Println(pos)
	// Output: 16
}
