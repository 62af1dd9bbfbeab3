package simd

import "bytes"

// Memmem returns the index of the first instance of needle in haystack,
// or -1 if needle is not present in haystack.
//
// An empty needle matches at position 0, as with bytes.Index. Callers that
// treat empty patterns as never matching must check for that themselves.
//
// The search uses a rare byte heuristic: candidates for the last byte of the
// needle are located with Memchr and each candidate is verified in full.
//
// Example:
//
//	pos := simd.Memmem([]byte("GET /index.html HTTP/1.1"), []byte("HTTP"))
//	// pos == 16
func Memmem(haystack, needle []byte) int {
	needleLen := len(needle)
	haystackLen := len(haystack)

	if needleLen == 0 {
		return 0
	}
	if haystackLen == 0 || needleLen > haystackLen {
		return -1
	}
	if needleLen == 1 {
		return Memchr(haystack, needle[0])
	}

	rareByte, rareIdx := selectRareByte(needle)

	// The rare byte cannot occur before rareIdx in a full match
	searchStart := rareIdx
	for searchStart < haystackLen {
		// Jump to the next occurrence of the rare byte
		candidate := Memchr(haystack[searchStart:], rareByte)
		if candidate < 0 {
			return -1
		}
		candidate += searchStart

		// Align the needle so its rare byte sits on the candidate
		start := candidate - rareIdx
		if start+needleLen > haystackLen {
			return -1
		}

		// Verify the whole needle
		if bytes.Equal(haystack[start:start+needleLen], needle) {
			return start
		}
		searchStart = candidate + 1
	}
	return -1
}

// selectRareByte returns the byte of needle used to seed the candidate scan.
// The last byte is used: word endings and terminators tend to be more
// distinctive than beginnings in both prose and log text.
func selectRareByte(needle []byte) (rareByte byte, index int) {
	last := len(needle) - 1
	return needle[last], last
}
