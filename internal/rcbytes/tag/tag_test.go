package tag

import "testing"

func TestWithAndStrip(t *testing.T) {
	const addr uintptr = 0x1000 // artificially even for the test
	tagged := With(addr)

	if Of(tagged) != KindVec {
		t.Fatalf("Of(tagged) = %d, want KindVec", Of(tagged))
	}
	if Strip(tagged) != addr {
		t.Fatalf("Strip(tagged) = %#x, want %#x", Strip(tagged), addr)
	}
}

func TestOfSharedPointer(t *testing.T) {
	const addr uintptr = 0x2000 // even, as a >=2-aligned block address must be
	if Of(addr) != KindArc {
		t.Fatalf("Of(addr) = %d, want KindArc", Of(addr))
	}
}

func TestOddBaseNeedsNoTagging(t *testing.T) {
	const oddAddr uintptr = 0x3001
	if Of(oddAddr) != KindVec {
		t.Fatalf("an odd base must already read as KindVec without With()")
	}
	if Strip(oddAddr) != oddAddr&^Mask {
		t.Fatalf("Strip(%#x) = %#x, want %#x (Strip clears an odd base's low bit)", oddAddr, Strip(oddAddr), oddAddr&^Mask)
	}
}
