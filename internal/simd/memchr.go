// Package simd provides word-at-a-time byte scanning primitives used by the
// line index builder and the literal and character-set searchers.
//
// All routines use SWAR (SIMD Within A Register): eight bytes are loaded into
// a uint64 and tested in parallel with bitwise arithmetic. The routines are
// pure Go and behave identically on every platform.
package simd

import (
	"encoding/binary"
	"math/bits"
)

const (
	lo8 = uint64(0x0101010101010101)
	hi8 = uint64(0x8080808080808080)
)

// Memchr returns the index of the first instance of needle in haystack,
// or -1 if needle is not present in haystack.
//
// Algorithm:
//  1. Broadcast needle to every byte of a uint64 mask
//  2. XOR each 8-byte chunk with the mask (matching bytes become 0x00)
//  3. Detect a zero byte with (v - 0x01..) & ^v & 0x80..
//  4. Convert the lowest set bit to a byte position
//
// Example:
//
//	pos := simd.Memchr([]byte("line 1\nline 2"), '\n')
//	// pos == 6
func Memchr(haystack []byte, needle byte) int {
	n := len(haystack)

	// Inputs shorter than one word are scanned byte by byte
	if n < 8 {
		for i := 0; i < n; i++ {
			if haystack[i] == needle {
				return i
			}
		}
		return -1
	}

	// Broadcast needle to all 8 bytes: needle=0x0a -> mask=0x0a0a0a0a0a0a0a0a
	mask := uint64(needle) * lo8

	idx := 0
	for idx+8 <= n {
		// Matching bytes become 0x00 after the XOR
		xor := binary.LittleEndian.Uint64(haystack[idx:]) ^ mask

		// Zero-byte detection (Hacker's Delight):
		//   - subtracting 0x01 from a 0x00 byte borrows into its high bit
		//   - AND with ^xor drops bytes whose high bit was already set
		//   - AND with 0x80.. keeps one marker bit per zero byte
		// Borrows can only mark bytes above the first zero byte, so the
		// lowest marker is always exact.
		if hasZero := (xor - lo8) & ^xor & hi8; hasZero != 0 {
			// Little-endian load: the lowest set bit is the first byte.
			// Example: hasZero=0x8000 -> TrailingZeros64=15 -> byte 1
			return idx + bits.TrailingZeros64(hasZero)/8
		}
		idx += 8
	}

	// Tail of 0-7 bytes
	for ; idx < n; idx++ {
		if haystack[idx] == needle {
			return idx
		}
	}
	return -1
}

// MemchrAll appends the offset of every instance of needle in haystack to dst,
// each shifted by base, and returns the extended slice.
//
// This is the inner loop of the line index builder: base is the position of
// haystack inside the full buffer so that partitions scanned independently
// still report absolute offsets.
func MemchrAll(dst []int, haystack []byte, needle byte, base int) []int {
	pos := 0
	for pos < len(haystack) {
		// Each search resumes one past the previous hit
		i := Memchr(haystack[pos:], needle)
		if i < 0 {
			break
		}
		// i is relative to pos; base shifts it into buffer coordinates
		dst = append(dst, base+pos+i)
		pos += i + 1
	}
	return dst
}
