package rcbytes_test

import (
	"testing"

	"github.com/kolkov/rcbytes"
)

func TestFromVecEmpty(t *testing.T) {
	h := rcbytes.FromVec(nil)
	if !h.IsEmpty() {
		t.Fatal("FromVec(nil) must be empty")
	}
}

func TestFromVecTakesOwnership(t *testing.T) {
	data := []byte("owned")
	h := rcbytes.FromVec(data)
	if &h.Bytes()[0] != &data[0] {
		t.Fatal("FromVec must not copy")
	}
}

func TestFromMutableEmpty(t *testing.T) {
	empty := rcbytes.FromVec(nil)
	h := rcbytes.FromMutable(empty.IntoMutable())
	if !h.IsEmpty() {
		t.Fatal("FromMutable of an empty buffer must be empty")
	}
}
