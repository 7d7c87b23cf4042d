package storage

import (
	"unsafe"

	"github.com/kolkov/rcbytes/internal/rcbytes/shared"
	"github.com/kolkov/rcbytes/internal/rcbytes/vtable"
	"github.com/kolkov/rcbytes/mutbytes"
)

// PromotableEvenTable and PromotableOddTable back handles constructed from
// a uniquely-owned boxed slice, before any clone has forced promotion to a
// shared.Block.
//
// These exist as two distinct tables because a tagged-pointer cell would
// need to know whether the raw base address already has its low bit set
// (an "odd" base needs no further tagging, an "even" one needs its tag bit
// masked off before use). Cell no longer tags the pointer — see
// shared.Cell's doc comment — so that distinction has nothing left to do at
// dispatch time; both tables share the same functions below and differ
// only in identity. The even/odd split is still made once, at construction
// (see the root package's conversion boundary), to decide which of the two
// tables a fresh handle gets, preserving the original data model even
// though the dispatch behavior no longer needs it.
var (
	PromotableEvenTable = &vtable.Table{
		Clone:      promotableClone,
		ToOwnedVec: promotableToOwnedVec,
		ToMutable:  promotableToMutable,
		IsUnique:   promotableIsUnique,
		Drop:       promotableDrop,
	}
	PromotableOddTable = &vtable.Table{
		Clone:      promotableClone,
		ToOwnedVec: promotableToOwnedVec,
		ToMutable:  promotableToMutable,
		IsUnique:   promotableIsUnique,
		Drop:       promotableDrop,
	}
)

// capacityFrom computes the full allocation's capacity given its base and
// the currently-visible (ptr, length): the visible range may already be a
// strict suffix of the original allocation if the handle was sliced before
// ever being cloned.
func capacityFrom(base, ptr unsafe.Pointer, length int) int {
	return int(uintptr(ptr)-uintptr(base)) + length
}

func promotableClone(cell *shared.Cell, ptr unsafe.Pointer, length int) (*shared.Cell, unsafe.Pointer, int, *vtable.Table) {
	if blk := cell.Load(); blk != nil {
		// Already promoted: ordinary shared clone.
		blk.Retain()
		return shared.NewPromoted(blk), ptr, length, SharedTable
	}

	// Lazy promotion: allocate a block with 2 references, one for self
	// (which keeps its own Table and simply starts observing a promoted
	// cell), one for the clone being produced (which adopts SharedTable
	// directly).
	base := cell.Base
	cap := capacityFrom(base, ptr, length)
	blk := shared.New(base, cap, 2)

	if cell.CompareAndSwapPromote(blk) {
		return shared.NewPromoted(blk), ptr, length, SharedTable
	}

	// Lost the race: another goroutine already installed a block. The
	// block allocated above is simply discarded — Go's garbage collector
	// reclaims it, and critically its Buf field aliases the very same
	// backing array the winner's block now owns, so there is no manual
	// free to perform here the way a non-GC'd allocator would require.
	actual := cell.Load()
	actual.Retain()
	return shared.NewPromoted(actual), ptr, length, SharedTable
}

func promotableToOwnedVec(cell *shared.Cell, ptr unsafe.Pointer, length int) []byte {
	if blk := cell.Load(); blk != nil {
		return sharedToOwnedVec(shared.NewPromoted(blk), ptr, length)
	}

	base := cell.Base
	cap := capacityFrom(base, ptr, length)
	full := unsafe.Slice((*byte)(base), cap)
	copy(full[:length], bytesAt(ptr, length))
	return full[:length:cap]
}

func promotableToMutable(cell *shared.Cell, ptr unsafe.Pointer, length int) *mutbytes.Buffer {
	if blk := cell.Load(); blk != nil {
		return sharedToMutable(shared.NewPromoted(blk), ptr, length)
	}

	base := cell.Base
	cap := capacityFrom(base, ptr, length)
	offset := int(uintptr(ptr) - uintptr(base))
	full := unsafe.Slice((*byte)(base), cap)

	buf := mutbytes.FromRawParts(full, cap, cap)
	buf.AdvanceStartUnchecked(offset)
	return buf
}

func promotableIsUnique(cell *shared.Cell) bool {
	if blk := cell.Load(); blk != nil {
		return blk.IsUnique()
	}
	return true
}

func promotableDrop(cell *shared.Cell, _ unsafe.Pointer, _ int) {
	if blk := cell.Load(); blk != nil {
		blk.Release()
		return
	}
	// Not yet promoted: this handle is the sole reference to the
	// backing array. Go's garbage collector reclaims it once the handle
	// (and cell.Base, the last pointer keeping it reachable) is gone;
	// there is no manual deallocate call to make.
}
