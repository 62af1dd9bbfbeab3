package simd

// ByteTable is a membership table over all byte values.
type ByteTable [256]bool

// NewByteTable returns a table with every byte of set marked as a member.
func NewByteTable(set []byte) *ByteTable {
	var t ByteTable
	for _, b := range set {
		t[b] = true
	}
	return &t
}

// Contains reports whether b is a member of the table.
func (t *ByteTable) Contains(b byte) bool {
	return t[b]
}

// MemchrInTable finds the first byte where table[byte] is true.
// Returns position or -1 if not found.
func MemchrInTable(haystack []byte, table *ByteTable) int {
	if len(haystack) == 0 || table == nil {
		return -1
	}
	for i, b := range haystack {
		if table[b] {
			return i
		}
	}
	return -1
}
