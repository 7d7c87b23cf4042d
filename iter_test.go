package rcbytes_test

import (
	"testing"

	"github.com/kolkov/rcbytes"
)

func TestAllIteratesInOrder(t *testing.T) {
	h := rcbytes.FromString("abc")
	var got []byte
	for b := range h.All() {
		got = append(got, b)
	}
	if string(got) != "abc" {
		t.Fatalf("All() yielded %q", got)
	}
}

func TestAllStopsEarly(t *testing.T) {
	h := rcbytes.FromString("abcdef")
	var got []byte
	for b := range h.All() {
		got = append(got, b)
		if len(got) == 3 {
			break
		}
	}
	if string(got) != "abc" {
		t.Fatalf("early-stopped All() yielded %q", got)
	}
}
