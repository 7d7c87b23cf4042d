package rcbytes

import (
	"testing"

	"github.com/kolkov/rcbytes/internal/rcbytes/storage"
	"github.com/kolkov/rcbytes/mutbytes"
)

func TestFromVecNoSpareCapacityStaysPromotable(t *testing.T) {
	data := make([]byte, 4, 4)
	copy(data, "abcd")
	h := FromVec(data)
	if h.table != storage.PromotableEvenTable && h.table != storage.PromotableOddTable {
		t.Fatal("FromVec with len == cap must start out promotable, not shared")
	}
}

func TestFromVecWithSpareCapacityGoesShared(t *testing.T) {
	data := make([]byte, 4, 64)
	copy(data, "abcd")
	h := FromVec(data)
	if h.table != storage.SharedTable {
		t.Fatal("FromVec with len < cap must go straight to shared storage")
	}
	if h.cell.Load() == nil {
		t.Fatal("a shared-table handle must already carry a promoted block")
	}
	if h.cell.Load().Cap != cap(data) {
		t.Fatalf("shared block Cap = %d, want %d (spare capacity must be preserved)", h.cell.Load().Cap, cap(data))
	}
}

func TestFromMutableWithSpareCapacityGoesShared(t *testing.T) {
	data := make([]byte, 4, 64)
	copy(data, "abcd")
	buf := mutbytes.FromVec(data)
	back := FromMutable(buf)
	if back.table != storage.SharedTable {
		t.Fatal("FromMutable must preserve spare capacity by going straight to shared storage")
	}
	if back.String() != "abcd" {
		t.Fatalf("FromMutable round trip = %q", back.String())
	}
}
