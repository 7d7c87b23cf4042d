package rcbytes

import "iter"

// All returns an iterator over h's visible bytes in order.
//
//	for b := range h.All() {
//		...
//	}
func (h Handle) All() iter.Seq[byte] {
	return func(yield func(byte) bool) {
		for _, b := range h.Bytes() {
			if !yield(b) {
				return
			}
		}
	}
}
