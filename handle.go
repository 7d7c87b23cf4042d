package rcbytes

import (
	"fmt"
	"unsafe"

	"github.com/kolkov/rcbytes/internal/rcbytes/shared"
	"github.com/kolkov/rcbytes/internal/rcbytes/storage"
	"github.com/kolkov/rcbytes/internal/rcbytes/vtable"
	"github.com/kolkov/rcbytes/mutbytes"
)

// Handle is an immutable, contiguous run of bytes that can be cheaply
// cloned and sub-sliced without copying the underlying bytes.
//
// The zero Handle reads as empty (Len, IsEmpty, Bytes and String work on
// it), but it carries no dispatch table: IsUnique, Clone, Drop, IntoVec,
// IntoMutable and TryIntoMutable panic on it. New() returns an empty
// Handle on which every method works.
//
// A Handle is safe to read concurrently from multiple goroutines (all its
// read operations only touch the visible byte range and its own
// immutable ptr/len fields). It is NOT safe to call mutating methods
// (Slice, SplitOff, SplitTo, Truncate, Clear, Advance, Drop, IntoVec,
// IntoMutable, TryIntoMutable) concurrently with any other method on the
// very same Handle value; the usual Go
// convention applies — a Handle held exclusively by one goroutine may be
// freely passed to others only after that goroutine is done mutating it.
// Clone, like the rest of the read surface, requires no such
// external synchronization: many goroutines may race to Clone the same
// Handle value, which is exactly the scenario the promotable storage
// kinds' compare-and-swap protocol exists to handle correctly.
type Handle struct {
	ptr   unsafe.Pointer
	len   int
	cell  *shared.Cell
	table *vtable.Table
}

// New returns a new empty Handle. This allocates nothing.
func New() Handle {
	return Handle{table: storage.StaticTable}
}

// FromStatic returns a new Handle backed directly by a program-lifetime
// byte slice. No allocation or copy occurs, and Clone on the result is
// always a no-op.
func FromStatic(b []byte) Handle {
	if len(b) == 0 {
		return New()
	}
	return Handle{
		ptr:   unsafe.Pointer(&b[0]),
		len:   len(b),
		table: storage.StaticTable,
	}
}

// CopyFromSlice returns a new Handle holding a copy of data.
func CopyFromSlice(data []byte) Handle {
	cp := make([]byte, len(data))
	copy(cp, data)
	return handleFromSlice(cp)
}

// Len returns the number of visible bytes.
func (h Handle) Len() int { return h.len }

// IsEmpty reports whether Len() == 0.
func (h Handle) IsEmpty() bool { return h.len == 0 }

// Bytes returns the visible byte range. The returned slice aliases the
// handle's backing storage and must not be mutated; it is only valid for
// as long as the Handle (or any clone sharing its storage) is reachable.
func (h Handle) Bytes() []byte {
	if h.len == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(h.ptr), h.len)
}

// IsUnique reports whether this Handle is the sole handle referencing its
// backing storage. A Handle constructed from static bytes always reports
// false, since static bytes are shared with the program image itself.
//
// This result is advisory in the presence of concurrent clones: its
// contract is that the caller holds this Handle value exclusively (no
// concurrent Clone of the very same value is in flight).
func (h Handle) IsUnique() bool {
	return h.table.IsUnique(h.cell)
}

// Clone returns a new Handle aliasing the same visible bytes as h. This
// never copies the underlying bytes; for shared storage it increments an
// atomic reference count, and for a not-yet-shared promotable allocation
// it lazily promotes the allocation to shared storage on this, its first,
// clone.
func (h *Handle) Clone() Handle {
	cell, ptr, length, table := h.table.Clone(h.cell, h.ptr, h.len)
	return Handle{ptr: ptr, len: length, cell: cell, table: table}
}

// Drop releases this Handle's reference to its storage. After Drop, h must
// not be used again. Unlike Rust's Bytes, Go has no destructors, so a
// handle that is never dropped keeps its reference counted: sibling
// handles sharing the storage then never report IsUnique again, and their
// IntoVec/IntoMutable conversions copy. Drop frees no memory itself; the
// garbage collector reclaims the backing array once it is unreachable.
func (h *Handle) Drop() {
	h.table.Drop(h.cell, h.ptr, h.len)
	h.cell, h.ptr, h.len, h.table = nil, nil, 0, nil
}

// IntoVec consumes h and returns an owned copy of its visible bytes as a
// plain []byte, reusing the backing allocation directly when h is the
// unique reference to it.
func (h *Handle) IntoVec() []byte {
	out := h.table.ToOwnedVec(h.cell, h.ptr, h.len)
	h.cell, h.ptr, h.len, h.table = nil, nil, 0, nil
	return out
}

// IntoMutable consumes h and returns a mutable buffer over its visible
// bytes, copying only if h was not the unique reference to its storage.
func (h *Handle) IntoMutable() *mutbytes.Buffer {
	buf := h.table.ToMutable(h.cell, h.ptr, h.len)
	h.cell, h.ptr, h.len, h.table = nil, nil, 0, nil
	return buf
}

// TryIntoMutable attempts to convert h into a mutable buffer without
// copying. It succeeds, consuming h, if and only if h.IsUnique() is true;
// otherwise it returns false and leaves h untouched.
func (h *Handle) TryIntoMutable() (*mutbytes.Buffer, bool) {
	if !h.IsUnique() {
		return nil, false
	}
	return h.IntoMutable(), true
}

func outOfRange(what string, value, limit int) {
	panic(fmt.Sprintf("rcbytes: %s out of range: %d (len = %d)", what, value, limit))
}
