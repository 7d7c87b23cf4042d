// Package storage implements the four storage-kind dispatch tables: static,
// promotable-even, promotable-odd, and shared. Together they implement
// lazy vec->shared promotion and the atomic reference-count protocol that
// the rest of the handle's operations ride on top of.
package storage

import (
	"unsafe"

	"github.com/kolkov/rcbytes/internal/rcbytes/shared"
	"github.com/kolkov/rcbytes/internal/rcbytes/vtable"
	"github.com/kolkov/rcbytes/mutbytes"
)

// bytesAt views (ptr, length) as a byte slice without copying.
func bytesAt(ptr unsafe.Pointer, length int) []byte {
	if length == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(ptr), length)
}

// StaticTable backs handles constructed from a static, program-lifetime
// byte slice (string literals, compiled-in data). There is no allocation
// to share or free: every operation is either a no-op or a copy.
//
// Its functions are filled in by init, because staticClone returns
// StaticTable itself and a composite-literal initializer would form an
// initialization cycle.
var StaticTable = &vtable.Table{}

func init() {
	*StaticTable = vtable.Table{
		Clone:      staticClone,
		ToOwnedVec: staticToOwnedVec,
		ToMutable:  staticToMutable,
		IsUnique:   staticIsUnique,
		Drop:       staticDrop,
	}
}

func staticClone(cell *shared.Cell, ptr unsafe.Pointer, length int) (*shared.Cell, unsafe.Pointer, int, *vtable.Table) {
	return nil, ptr, length, StaticTable
}

func staticToOwnedVec(_ *shared.Cell, ptr unsafe.Pointer, length int) []byte {
	out := make([]byte, length)
	copy(out, bytesAt(ptr, length))
	return out
}

func staticToMutable(_ *shared.Cell, ptr unsafe.Pointer, length int) *mutbytes.Buffer {
	return mutbytes.New(bytesAt(ptr, length))
}

// staticIsUnique is conservatively false: static bytes are shared with the
// program text itself, so there is no sense in which a handle ever holds
// exclusive ownership of them.
func staticIsUnique(_ *shared.Cell) bool {
	return false
}

func staticDrop(_ *shared.Cell, _ unsafe.Pointer, _ int) {}
