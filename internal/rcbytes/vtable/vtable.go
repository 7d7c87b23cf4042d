// Package vtable defines the dispatch table that lets a single handle type
// behave differently per storage kind without branching in the hot read
// paths: every handle carries a *Table reference, and every mutating
// operation (clone, conversion, uniqueness check, drop) is forwarded
// through it.
//
// This mirrors the lock-free atomic-pointer dispatch style used throughout
// the shadow-memory package this module was adapted from (a fixed array of
// atomic.Pointer cells, each independently compare-and-swapped) — here the
// "array" has exactly one cell per handle, carrying either a raw allocation
// base or a pointer to a shared.Block, discriminated by whether the cell's
// block pointer has been promoted yet.
package vtable

import (
	"unsafe"

	"github.com/kolkov/rcbytes/internal/rcbytes/shared"
	"github.com/kolkov/rcbytes/mutbytes"
)

// Table is a record of five function pointers, one static instance per
// storage kind. Every method takes the handle's (cell, ptr, len) triple —
// the minimal state a dispatch function needs to act on a handle without
// depending on the handle's own (unexported) struct layout, which keeps
// this package free of any import cycle back to the root package.
type Table struct {
	// Clone produces the fields for a new handle that aliases the same
	// visible range as (cell, ptr, len). For promotable kinds this may
	// mutate *cell in place (the one-way Vec -> Shared promotion); the
	// existing handle keeps its own Table reference and simply observes
	// the promoted cell on its next dispatch.
	Clone func(cell *shared.Cell, ptr unsafe.Pointer, length int) (cloneCell *shared.Cell, clonePtr unsafe.Pointer, cloneLen int, cloneTable *Table)

	// ToOwnedVec consumes the handle's storage and returns an owned copy
	// of its visible bytes, reusing the backing allocation directly when
	// that can be done without a copy (the unique shared-block fast path).
	ToOwnedVec func(cell *shared.Cell, ptr unsafe.Pointer, length int) []byte

	// ToMutable consumes the handle's storage and returns a mutable
	// buffer over its visible bytes, again avoiding a copy when unique.
	ToMutable func(cell *shared.Cell, ptr unsafe.Pointer, length int) *mutbytes.Buffer

	// IsUnique reports whether this handle is the sole reference to its
	// backing storage. Advisory: true only if the caller holds the
	// handle exclusively (no concurrent Clone of the same handle value).
	IsUnique func(cell *shared.Cell) bool

	// Drop releases whatever resources this storage kind owns. Called at
	// most once per handle value.
	Drop func(cell *shared.Cell, ptr unsafe.Pointer, length int)
}
