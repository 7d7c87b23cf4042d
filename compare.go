package rcbytes

import (
	"bytes"
	"hash/fnv"
)

// Equal reports whether h and other have identical visible bytes. It never
// compares storage identity: two handles sliced from entirely unrelated
// allocations are equal if their bytes match.
func (h Handle) Equal(other Handle) bool {
	return bytes.Equal(h.Bytes(), other.Bytes())
}

// EqualBytes reports whether h's visible bytes equal other.
func (h Handle) EqualBytes(other []byte) bool {
	return bytes.Equal(h.Bytes(), other)
}

// Compare returns -1, 0, or +1 depending on whether h sorts before, equal
// to, or after other, lexicographically over their visible bytes.
func (h Handle) Compare(other Handle) int {
	return bytes.Compare(h.Bytes(), other.Bytes())
}

// CompareBytes is like Compare but against a plain byte slice.
func (h Handle) CompareBytes(other []byte) int {
	return bytes.Compare(h.Bytes(), other)
}

// String returns h's visible bytes converted to a string (a copy).
func (h Handle) String() string {
	return string(h.Bytes())
}

// Hash returns the FNV-1a hash of h's visible bytes.
func (h Handle) Hash() uint64 {
	sum := fnv.New64a()
	sum.Write(h.Bytes())
	return sum.Sum64()
}
