package rcbytes

import (
	"fmt"
	"unsafe"

	"github.com/kolkov/rcbytes/internal/rcbytes/storage"
)

// Slice returns a new Handle referencing h.Bytes()[start:end], sharing h's
// underlying storage. It panics if start > end or end > h.Len().
//
// Slice does not consume h: both h and the result remain independently
// usable (and, for shareable storage kinds, now count as two references to
// the same backing allocation).
func (h *Handle) Slice(start, end int) Handle {
	if start > end {
		outOfRange("slice start > end", start, end)
	}
	if end > h.len {
		outOfRange("slice end", end, h.len)
	}
	if start == end {
		return New()
	}
	clone := h.Clone()
	clone.ptr = unsafe.Add(clone.ptr, start)
	clone.len = end - start
	return clone
}

// SliceRef returns a Handle equivalent to the one that would be produced by
// h.Slice, computed instead from a byte sub-slice sub that the caller
// already holds a reference into (typically obtained from h.Bytes() by some
// other piece of code). The offset is recovered by pointer subtraction
// against h's own visible range, and the result is identical to calling
// h.Slice with that offset.
//
// It panics if sub does not lie within h's currently visible byte range.
func (h *Handle) SliceRef(sub []byte) Handle {
	if len(sub) == 0 {
		return New()
	}

	hBase := uintptr(h.ptr)
	hLen := uintptr(h.len)
	subBase := uintptr(unsafe.Pointer(&sub[0]))
	subLen := uintptr(len(sub))

	if subBase < hBase {
		panic(fmt.Sprintf("rcbytes: slice_ref subset pointer (%#x) is smaller than handle pointer (%#x)", subBase, hBase))
	}
	if subBase+subLen > hBase+hLen {
		panic(fmt.Sprintf("rcbytes: slice_ref subset out of bounds: handle = (%#x, %d), subset = (%#x, %d)", hBase, hLen, subBase, subLen))
	}

	offset := int(subBase - hBase)
	return h.Slice(offset, offset+len(sub))
}

// SplitOff splits h at at, returning a new Handle covering
// h.Bytes()[at:]. After the call, h covers only h.Bytes()[:at]. The two
// resulting handles share the same backing storage. It panics if at >
// h.Len().
func (h *Handle) SplitOff(at int) Handle {
	if at > h.len {
		outOfRange("split_off index", at, h.len)
	}
	if at == h.len {
		return New()
	}
	if at == 0 {
		tail := *h
		*h = New()
		return tail
	}
	tail := h.Clone()
	tail.ptr = unsafe.Add(tail.ptr, at)
	tail.len = h.len - at
	h.len = at
	return tail
}

// SplitTo splits h at at, returning a new Handle covering h.Bytes()[:at].
// After the call, h covers only h.Bytes()[at:]. The two resulting handles
// share the same backing storage. It panics if at > h.Len().
func (h *Handle) SplitTo(at int) Handle {
	if at > h.len {
		outOfRange("split_to index", at, h.len)
	}
	if at == h.len {
		head := *h
		*h = New()
		return head
	}
	if at == 0 {
		return New()
	}
	head := h.Clone()
	head.len = at
	h.ptr = unsafe.Add(h.ptr, at)
	h.len -= at
	return head
}

// isPromotable reports whether h's storage kind is one of the two
// promotable tables — an allocation uniquely owned until its first clone,
// whose eventual shared block's capacity is only known by the amount of
// the allocation that remains visible at the moment it gets promoted.
func (h *Handle) isPromotable() bool {
	return h.table == storage.PromotableEvenTable || h.table == storage.PromotableOddTable
}

// Truncate shortens h's visible range to at most length bytes. It is a
// no-op if length >= h.Len().
//
// For a promotable handle, truncation is implemented as a SplitOff whose
// tail is immediately dropped, rather than simply shrinking len in place.
// A promotable handle's eventual shared block derives its capacity from
// how much of the allocation is still reachable at promotion time (see
// internal/rcbytes/storage.capacityFrom); shrinking len directly, before
// any clone has forced promotion, would permanently discard the trimmed
// tail bytes' capacity the moment this handle is later cloned or converted,
// rather than merely hiding them. Delegating through SplitOff forces that
// promotion now, while the true length is still visible, so the discarded
// tail is released through the ordinary refcount path instead of being
// silently forgotten.
func (h *Handle) Truncate(length int) {
	if length >= h.len {
		return
	}
	if h.isPromotable() {
		tail := h.SplitOff(length)
		tail.Drop()
		return
	}
	h.len = length
}

// Clear empties h's visible range. Equivalent to h.Truncate(0).
func (h *Handle) Clear() {
	h.Truncate(0)
}

// Advance drops the first n bytes from h's visible range, keeping the same
// backing storage. It panics if n > h.Len().
func (h *Handle) Advance(n int) {
	if n > h.len {
		outOfRange("advance", n, h.len)
	}
	h.ptr = unsafe.Add(h.ptr, n)
	h.len -= n
}
