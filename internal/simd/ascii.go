package simd

import (
	"encoding/binary"

	"github.com/coregx/logview/internal/conv"
)

// IsASCII reports whether every byte of data is below 0x80.
//
// Eight bytes are checked at a time: ASCII bytes have bit 7 clear, so a chunk
// is pure ASCII exactly when chunk & 0x8080808080808080 is zero.
func IsASCII(data []byte) bool {
	n := len(data)
	idx := 0
	for idx+8 <= n {
		// Any set high bit marks a non-ASCII byte in the word
		if binary.LittleEndian.Uint64(data[idx:])&hi8 != 0 {
			return false
		}
		idx += 8
	}
	for ; idx < n; idx++ {
		if data[idx] >= 0x80 {
			return false
		}
	}
	return true
}

// IsASCIIString is IsASCII for strings.
func IsASCIIString(s string) bool {
	return IsASCII(conv.StringToBytes(s))
}
