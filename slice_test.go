package rcbytes_test

import (
	"testing"

	"github.com/kolkov/rcbytes"
)

func TestSliceRange(t *testing.T) {
	h := rcbytes.FromString("Hello world")
	a := h.Slice(0, 5)
	if a.String() != "Hello" {
		t.Fatalf("Slice(0,5) = %q", a.String())
	}
}

func TestSliceOutOfRangePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("Slice past len must panic")
		}
	}()
	h := rcbytes.FromString("abc")
	h.Slice(0, 10)
}

func TestSplitToAndSplitOff(t *testing.T) {
	h := rcbytes.FromString("Hello world")
	b := h.SplitTo(6)
	if h.String() != "world" {
		t.Fatalf("after SplitTo, h = %q", h.String())
	}
	if b.String() != "Hello " {
		t.Fatalf("SplitTo(6) = %q", b.String())
	}

	h2 := rcbytes.FromString("Hello world")
	tail := h2.SplitOff(5)
	if h2.String() != "Hello" {
		t.Fatalf("after SplitOff, h2 = %q", h2.String())
	}
	if tail.String() != " world" {
		t.Fatalf("SplitOff(5) = %q", tail.String())
	}
}

func TestTruncateAndClear(t *testing.T) {
	h := rcbytes.FromString("Hello world")
	h.Truncate(5)
	if h.String() != "Hello" {
		t.Fatalf("Truncate(5) = %q", h.String())
	}
	h.Truncate(100)
	if h.String() != "Hello" {
		t.Fatal("Truncate past len must be a no-op")
	}
	h.Clear()
	if !h.IsEmpty() {
		t.Fatal("Clear must empty the handle")
	}
}

func TestAdvance(t *testing.T) {
	h := rcbytes.FromString("Hello world")
	h.Advance(6)
	if h.String() != "world" {
		t.Fatalf("Advance(6) = %q", h.String())
	}
}

func TestAdvanceOutOfRangePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("Advance past len must panic")
		}
	}()
	h := rcbytes.FromString("abc")
	h.Advance(10)
}

func TestSliceSharesStorage(t *testing.T) {
	h := rcbytes.FromVec([]byte("Hello world"))
	a := h.Slice(0, 5)
	defer a.Drop()
	if h.IsUnique() || a.IsUnique() {
		t.Fatal("slicing must share storage with the original")
	}
}

func TestSliceEmptyRangeSkipsClone(t *testing.T) {
	h := rcbytes.FromVec([]byte("Hello world"))
	a := h.Slice(3, 3)
	if !a.IsEmpty() {
		t.Fatal("Slice(n,n) must be empty")
	}
	if !h.IsUnique() {
		t.Fatal("Slice(n,n) must not force promotion/cloning of the original")
	}
}

func TestSliceRefMatchesSlice(t *testing.T) {
	h := rcbytes.FromString("012345678")
	sub := h.Bytes()[2:6]
	s := h.SliceRef(sub)
	if s.String() != "2345" {
		t.Fatalf("SliceRef = %q, want %q", s.String(), "2345")
	}
}

func TestSliceRefEmptySubset(t *testing.T) {
	h := rcbytes.FromString("012345678")
	s := h.SliceRef(nil)
	if !s.IsEmpty() {
		t.Fatal("SliceRef(nil) must be empty")
	}
}

func TestSliceRefOutOfBoundsPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("SliceRef on an unrelated slice must panic")
		}
	}()
	h := rcbytes.FromString("012345678")
	other := []byte("not a subset")
	h.SliceRef(other)
}

func TestSplitOffAtLenReturnsEmptyWithoutTouchingSelf(t *testing.T) {
	h := rcbytes.FromVec([]byte("Hello world"))
	tail := h.SplitOff(h.Len())
	if !tail.IsEmpty() {
		t.Fatal("SplitOff(len) must return an empty handle")
	}
	if !h.IsUnique() {
		t.Fatal("SplitOff(len) must not clone or promote the original")
	}
	if h.String() != "Hello world" {
		t.Fatalf("h changed after SplitOff(len): %q", h.String())
	}
}

func TestSplitOffAtZeroSwapsWithoutCloning(t *testing.T) {
	h := rcbytes.FromVec([]byte("Hello world"))
	tail := h.SplitOff(0)
	if !h.IsEmpty() {
		t.Fatal("after SplitOff(0), the original must be empty")
	}
	if tail.String() != "Hello world" {
		t.Fatalf("SplitOff(0) tail = %q", tail.String())
	}
	if !tail.IsUnique() {
		t.Fatal("SplitOff(0) must move the original handle whole, not clone it")
	}
}

func TestSplitToAtZeroReturnsEmptyWithoutTouchingSelf(t *testing.T) {
	h := rcbytes.FromVec([]byte("Hello world"))
	head := h.SplitTo(0)
	if !head.IsEmpty() {
		t.Fatal("SplitTo(0) must return an empty handle")
	}
	if !h.IsUnique() {
		t.Fatal("SplitTo(0) must not clone or promote the original")
	}
}

func TestSplitToAtLenSwapsWithoutCloning(t *testing.T) {
	h := rcbytes.FromVec([]byte("Hello world"))
	head := h.SplitTo(h.Len())
	if !h.IsEmpty() {
		t.Fatal("after SplitTo(len), the original must be empty")
	}
	if head.String() != "Hello world" {
		t.Fatalf("SplitTo(len) head = %q", head.String())
	}
	if !head.IsUnique() {
		t.Fatal("SplitTo(len) must move the original handle whole, not clone it")
	}
}

func TestTruncatePromotableReleasesTailAndStaysUnique(t *testing.T) {
	h := rcbytes.FromVec([]byte("Hello world"))
	h.Truncate(5)
	if h.String() != "Hello" {
		t.Fatalf("Truncate(5) = %q", h.String())
	}
	if !h.IsUnique() {
		t.Fatal("after truncating and dropping the tail, h must be the sole owner again")
	}
}
