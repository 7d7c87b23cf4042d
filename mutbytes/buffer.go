// Package mutbytes is the mutable companion to rcbytes.Handle.
//
// It is a collaborator, not part of the core engine: rcbytes's Non-goals
// explicitly exclude mutation through a shared handle, so a separate,
// exclusively-owned buffer type is where mutation lives. This package only
// implements the boundary rcbytes needs — construction from an owned
// growable allocation or from a raw/boxed slice (with copy), and the
// unchecked start-advance primitive the conversion path uses to preserve a
// handle's visible offset when it round-trips through here — not streaming
// cursors, formatting, or iterator plumbing, which stay out of scope.
package mutbytes

// Buffer is an exclusively-owned, growable byte buffer. Unlike
// rcbytes.Handle it is never shared: every method may freely mutate the
// buffer's contents because the type carries no refcount and cannot be
// cloned.
type Buffer struct {
	data  []byte
	start int // index into data where the visible region begins
}

// New copies src into a freshly allocated buffer. Used for the non-unique
// and static conversion paths, where the source storage cannot be handed
// over without a copy.
func New(src []byte) *Buffer {
	cp := make([]byte, len(src))
	copy(cp, src)
	return &Buffer{data: cp}
}

// FromVec takes ownership of an owned growable allocation without copying.
// The caller must not retain other references to data's backing array.
func FromVec(data []byte) *Buffer {
	return &Buffer{data: data}
}

// FromRawParts reconstructs a buffer over a raw allocation of cap bytes,
// of which the first total bytes are considered written. It is used by the
// promotable and shared storage dispatchers to rebuild the original vec
// after taking ownership of a (buf, cap) pair recovered from a handle.
func FromRawParts(buf []byte, total, capacity int) *Buffer {
	full := buf[:total:capacity]
	return &Buffer{data: full}
}

// AdvanceStartUnchecked shifts the buffer's visible start forward by n
// bytes without any bounds check. This is the primitive the conversion
// boundary needs: after reconstructing a vec covering the whole original
// allocation, the caller advances past whatever prefix the source handle
// had already sliced away, so subsequent mutation/append only sees the
// handle's visible suffix.
//
// It is unchecked because the only callers are the rcbytes conversion path,
// which has already validated n against the reconstructed allocation's
// length; exposing a checked variant here would just duplicate that check
// for no benefit to the one caller that exists.
func (b *Buffer) AdvanceStartUnchecked(n int) {
	b.start += n
}

// Len returns the number of visible bytes.
func (b *Buffer) Len() int { return len(b.data) - b.start }

// Bytes returns the visible region. The returned slice aliases the
// buffer's storage; callers must not retain it past further mutation.
func (b *Buffer) Bytes() []byte { return b.data[b.start:] }

// Cap returns the total capacity of the backing allocation, including any
// bytes below the visible start.
func (b *Buffer) Cap() int { return cap(b.data) }

// Append grows the buffer by appending p to its visible region.
func (b *Buffer) Append(p []byte) {
	b.data = append(b.data[:b.start+b.Len()], p...)
}

// TakeRaw consumes the buffer, returning its backing slice from index 0
// (including any bytes below the visible start) together with the visible
// start offset, so a caller can hand the allocation to a new owner, e.g.
// when converting back into an rcbytes Handle via full[start:]. The buffer
// must not be used afterward.
func (b *Buffer) TakeRaw() (full []byte, start int) {
	full, start = b.data, b.start
	b.data, b.start = nil, 0
	return full, start
}
