// Package tag implements the low-bit tag arithmetic of a tagged-pointer
// data cell, as pure operations on uintptr values.
//
// In a tagged layout, a handle's data cell is a single machine word. For the
// promotable-even storage kind that word either holds a raw allocation base
// (low bit set to KindVec) or, after promotion, a pointer to a shared control
// block (low bit KindArc, i.e. zero). Stealing the low bit works because the
// shared control block is allocated with alignment >= 2, so its address
// never has that bit set on its own; a raw allocation base may or may not,
// which is why the promotable-odd kind exists as a separate table instead of
// trying to tag an already-odd address.
//
// This module's data cell (shared.Cell) does not store a tagged word. Of is
// used once, at construction, to choose between the promotable-even and
// promotable-odd tables; Strip and With are not called outside tests.
package tag

const (
	// KindArc marks a cell that holds a pointer to a shared control block.
	KindArc uintptr = 0

	// KindVec marks a cell that holds a raw allocation base with the tag
	// bit artificially set.
	KindVec uintptr = 1

	// Mask isolates the tag bit.
	Mask uintptr = 1
)

// Of extracts the tag bit from a tagged cell value.
func Of(cell uintptr) uintptr {
	return cell & Mask
}

// Strip masks off the tag bit, recovering the underlying address.
//
// Only meaningful for promotable-even cells; promotable-odd bases need no
// masking because their low bit is already 1 and was never touched.
func Strip(cell uintptr) uintptr {
	return cell &^ Mask
}

// With ORs the KindVec tag onto an address, producing the tagged word a
// promotable-even cell would hold before promotion.
func With(addr uintptr) uintptr {
	return addr | KindVec
}
