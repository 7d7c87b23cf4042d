package storage

import (
	"unsafe"

	"github.com/kolkov/rcbytes/internal/rcbytes/shared"
	"github.com/kolkov/rcbytes/internal/rcbytes/vtable"
	"github.com/kolkov/rcbytes/mutbytes"
)

// SharedTable backs handles whose storage is governed by a shared.Block:
// either produced directly from a growable allocation with spare capacity,
// or reached by promoting a promotable handle on its first clone.
//
// Its functions are filled in by init, because sharedClone returns
// SharedTable itself and a composite-literal initializer would form an
// initialization cycle.
var SharedTable = &vtable.Table{}

func init() {
	*SharedTable = vtable.Table{
		Clone:      sharedClone,
		ToOwnedVec: sharedToOwnedVec,
		ToMutable:  sharedToMutable,
		IsUnique:   sharedIsUnique,
		Drop:       sharedDrop,
	}
}

func sharedClone(cell *shared.Cell, ptr unsafe.Pointer, length int) (*shared.Cell, unsafe.Pointer, int, *vtable.Table) {
	blk := cell.Load()
	blk.Retain()
	return shared.NewPromoted(blk), ptr, length, SharedTable
}

func sharedToOwnedVec(cell *shared.Cell, ptr unsafe.Pointer, length int) []byte {
	blk := cell.Load()
	if blk.TryTakeUnique() {
		full := unsafe.Slice((*byte)(blk.Buf), blk.Cap)
		copy(full[:length], bytesAt(ptr, length))
		return full[:length:blk.Cap]
	}

	out := make([]byte, length)
	copy(out, bytesAt(ptr, length))
	blk.Release()
	return out
}

func sharedToMutable(cell *shared.Cell, ptr unsafe.Pointer, length int) *mutbytes.Buffer {
	blk := cell.Load()
	if blk.TryTakeUnique() {
		offset := int(uintptr(ptr) - uintptr(blk.Buf))
		full := unsafe.Slice((*byte)(blk.Buf), blk.Cap)
		// Unlike the promotable-vec path, a shared block's capacity may
		// include uninitialized spare capacity left over from normal Vec
		// growth, so the reconstructed buffer's written length is
		// offset+length, not the full capacity.
		buf := mutbytes.FromRawParts(full, offset+length, blk.Cap)
		buf.AdvanceStartUnchecked(offset)
		return buf
	}

	out := mutbytes.New(bytesAt(ptr, length))
	blk.Release()
	return out
}

func sharedIsUnique(cell *shared.Cell) bool {
	return cell.Load().IsUnique()
}

func sharedDrop(cell *shared.Cell, _ unsafe.Pointer, _ int) {
	cell.Load().Release()
}
