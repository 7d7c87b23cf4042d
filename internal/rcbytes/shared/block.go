// Package shared implements the heap control block that backs the "shared"
// storage kind: an allocation jointly owned by every handle that references
// it, reclaimed by an atomic reference count on the last release.
//
// The refcount protocol below is the classic atomic-refcount discipline used
// by shared-pointer types: fetch_add on clone, fetch_sub-then-maybe-free on
// release, with an Acquire synchronization point on the 1->0 transition so
// that writes made by every other holder are visible before the backing
// buffer is deallocated.
package shared

import (
	"fmt"
	"os"
	"sync/atomic"
	"unsafe"
)

// Block owns an allocation jointly referenced by one or more handles.
//
// Its address is required to be aligned to at least 2 bytes so that the low
// bit of a pointer to it reads as tag.KindArc (0). The init function below
// asserts the type's alignment once at package init (Go's allocator already
// guarantees word alignment for any type containing a pointer or an
// int64-sized field), and New additionally checks each allocated block's
// address.
type Block struct {
	Buf      unsafe.Pointer // base of the original allocation
	Cap      int            // capacity in bytes of that allocation
	refcount atomic.Int64
}

func init() {
	var b Block
	if unsafe.Alignof(b) < 2 {
		panic(fmt.Sprintf("shared.Block alignment is %d, need >= 2 for pointer tagging", unsafe.Alignof(b)))
	}
}

// New allocates a control block for (buf, cap) with the given initial
// refcount. Callers promoting a vec-style allocation pass 2: one reference
// for the handle doing the promoting, one for the clone it is producing.
// Ordinary from-vec construction passes 1.
func New(buf unsafe.Pointer, cap int, initial int64) *Block {
	b := &Block{Buf: buf, Cap: cap}
	b.refcount.Store(initial)
	if uintptr(unsafe.Pointer(b))&1 != 0 {
		panic("internal: *shared.Block should have an aligned pointer")
	}
	return b
}

// maxRefcount bounds the refcount to guard against overflow; beyond this
// many live clones something has gone wrong (a refcount leak, typically),
// and continuing would risk silently wrapping the counter.
const maxRefcount = 1<<62 - 1

// Retain increments the refcount for a new clone sharing this block.
//
// Relaxed ordering would suffice here, since retaining does not publish or
// consume any data beyond the refcount itself; Go's atomic Add is
// sequentially consistent, which is stronger.
func (b *Block) Retain() {
	old := b.refcount.Add(1) - 1
	if old > maxRefcount {
		abort(old)
	}
}

// Release decrements the refcount and reports whether this was the last
// reference, in which case the caller must not touch the block again
// afterward. Nothing is freed explicitly: the garbage collector reclaims
// Buf and the block once they are unreachable.
//
// The decrement itself only needs Release ordering (publishing this
// goroutine's prior writes to whoever performs the final Acquire). The
// 1->0 transition must additionally synchronize with every other
// goroutine's release before the buffer is reclaimed, which is handled by
// taking an Acquire-ordered load immediately after observing old == 1.
func (b *Block) Release() (last bool) {
	old := b.refcount.Add(-1) + 1
	if old != 1 {
		return false
	}
	// Acquire fence: observe every prior Release's writes before freeing.
	b.refcount.Load()
	return true
}

// IsUnique reports whether exactly one handle currently references this
// block. The load is Acquire so that, if the answer is true, the caller may
// safely treat the backing buffer as exclusively owned for mutation.
func (b *Block) IsUnique() bool {
	return b.refcount.Load() == 1
}

// TryTakeUnique attempts the compare-and-swap refcount: 1 -> 0 that hands
// sole ownership of (Buf, Cap) to the caller without running a destructor.
// On success the block itself is consumed: Buf/Cap must be read out by the
// caller before the block is discarded, and no further method may be
// called on it.
func (b *Block) TryTakeUnique() bool {
	return b.refcount.CompareAndSwap(1, 0)
}

// abortHook terminates the process on refcount overflow. It is a variable,
// not a direct os.Exit call, purely so tests can substitute a recorder and
// exercise the overflow branch without killing the test binary; production
// code never reassigns it.
var abortHook = func(msg string) {
	fmt.Fprintln(os.Stderr, msg)
	os.Exit(2)
}

// abort reaches the process-termination path described in spec §4.2: a
// refcount that has climbed past maxRefcount indicates a leak rather than
// legitimate sharing, and there is no recovery — continuing risks silently
// wrapping the counter and double-freeing the block.
func abort(observed int64) {
	abortHook(fmt.Sprintf("rcbytes: refcount overflow (observed %d live references), aborting", observed))
}
