// Package rcbytes provides Handle, a cheaply cloneable and sliceable
// contiguous run of bytes.
//
// A Handle is a small, efficient container for storing and operating on
// contiguous slices of bytes. It is designed for zero-copy network
// programming, but may be useful anywhere multiple consumers need to share
// read-only views of the same buffer.
//
// Handle enables this by letting multiple Handle values point at the same
// underlying memory. Handle is a single struct type whose storage-specific
// behavior is provided by one of four dynamically dispatched storage kinds — static, promotable-even, promotable-odd, or
// shared — and this package never branches on "which kind is this" in its
// hot read paths: every kind-specific operation is forwarded through the
// handle's dispatch table (see internal/rcbytes/vtable).
//
// All concrete storage kinds must satisfy two requirements: they are
// cheap to clone and shareable, and instances can be sliced to reference a
// subset of the original buffer.
//
//	h := rcbytes.FromString("Hello world")
//	a := h.Slice(0, 5)
//
//	// a.Bytes() == []byte("Hello")
//
//	b := h.SplitTo(6)
//
//	// h.Bytes() == []byte("world")
//	// b.Bytes() == []byte("Hello ")
//
// # Memory layout
//
// The Handle struct itself is kept small — four machine words — tracking
// just enough information to know which part of the backing allocation is
// currently visible: a pointer to the first visible byte, a length, a
// pointer to this handle's own data cell (nil for the static kind), and a
// reference to the dispatch table for its storage kind.
//
// # Sharing
//
// Handle's dispatch table makes the exact mechanics of sharing a
// per-storage-kind decision. When Clone is called, the dispatch table's
// Clone function is invoked to share the underlying storage across the
// resulting handles.
//
// For a Handle backed by static storage (e.g. constructed via FromStatic),
// the clone implementation is a no-op: static data never needs reference
// counting. For a Handle backed by shared storage, the clone implementation
// increments an atomic reference count. Because of this, multiple Handle
// values may end up referencing the same backing allocation; each may
// reference a different region of it, and their visible regions may or may
// not overlap.
package rcbytes
