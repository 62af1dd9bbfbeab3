// Package conv provides zero-copy conversions between strings and byte
// slices for the scanning hot paths.
//
// The byte slices returned here alias immutable string memory. They must be
// treated as read-only and must not outlive the string they were taken from.
package conv

import "unsafe"

// StringToBytes returns the bytes of s without copying.
// The result must never be modified.
//
//go:inline
func StringToBytes(s string) []byte {
	if s == "" {
		return nil
	}
	return unsafe.Slice(unsafe.StringData(s), len(s))
}
