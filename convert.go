package rcbytes

import (
	"unsafe"

	"github.com/kolkov/rcbytes/internal/rcbytes/shared"
	"github.com/kolkov/rcbytes/internal/rcbytes/storage"
	"github.com/kolkov/rcbytes/internal/rcbytes/tag"
	"github.com/kolkov/rcbytes/mutbytes"
)

// FromString returns a new Handle holding a copy of s's bytes.
func FromString(s string) Handle {
	return CopyFromSlice([]byte(s))
}

// FromVec takes ownership of data and returns a Handle backed by it without
// copying. The caller must not retain any other reference to data's backing
// array: ownership transfers to the returned Handle.
//
// If data has no spare capacity (len(data) == cap(data)), the result starts
// out as a uniquely-owned "promotable" handle: it behaves identically to
// any other Handle, but defers the cost of setting up atomic reference
// counting until (and unless) the handle is actually cloned. A Handle that
// is only read, advanced, or dropped never pays for a shared.Block at all;
// Slice of a non-empty range, SplitOff/SplitTo at an interior index, and
// Truncate to a shorter length all clone internally and so promote it.
//
// If data does have spare capacity (len(data) < cap(data), e.g. it grew via
// append), the result is immediately a "shared" handle instead, so that the
// spare capacity is recorded up front rather than silently discarded the
// way deriving it later from pointer arithmetic alone would.
func FromVec(data []byte) Handle {
	return handleFromSlice(data)
}

// handleFromSlice is the shared entry point for both FromVec and
// FromMutable: both hand over an owned []byte that may or may not carry
// spare capacity beyond its current length.
func handleFromSlice(data []byte) Handle {
	if len(data) == 0 {
		return New()
	}
	if cap(data) > len(data) {
		return fromGrowableVec(data)
	}
	return fromOwnedVec(data)
}

// fromOwnedVec builds a fresh, not-yet-promoted promotable Handle over an
// owned, non-empty slice with no spare capacity, picking the even or odd
// dispatch table to match the allocation's base address (see
// storage.PromotableEvenTable's doc comment for why that split no longer
// changes runtime behavior, only which static table a fresh handle
// adopts).
func fromOwnedVec(data []byte) Handle {
	base := unsafe.Pointer(&data[0])
	table := storage.PromotableEvenTable
	if tag.Of(uintptr(base)) == tag.KindVec {
		table = storage.PromotableOddTable
	}
	return Handle{
		ptr:   base,
		len:   len(data),
		cell:  shared.NewUnpromoted(base),
		table: table,
	}
}

// fromGrowableVec builds a Handle over an owned, non-empty slice whose
// backing array has spare capacity beyond len(data), going straight to
// shared storage so that capacity is preserved rather than derived later
// from pointer arithmetic over however much of the allocation is still
// visible at promotion time.
func fromGrowableVec(data []byte) Handle {
	base := unsafe.Pointer(&data[0])
	blk := shared.New(base, cap(data), 1)
	return Handle{
		ptr:   base,
		len:   len(data),
		cell:  shared.NewPromoted(blk),
		table: storage.SharedTable,
	}
}

// FromMutable consumes buf and returns a Handle over its visible bytes
// without copying.
func FromMutable(buf *mutbytes.Buffer) Handle {
	full, start := buf.TakeRaw()
	return handleFromSlice(full[start:])
}
