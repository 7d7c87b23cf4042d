package mutbytes

import "bytes"

import "testing"

func TestNewCopies(t *testing.T) {
	src := []byte("hello")
	b := New(src)
	src[0] = 'H'

	if !bytes.Equal(b.Bytes(), []byte("hello")) {
		t.Fatalf("New must copy, got %q after mutating source", b.Bytes())
	}
}

func TestFromVecNoCopy(t *testing.T) {
	src := []byte("hello")
	b := FromVec(src)
	src[0] = 'H'

	if !bytes.Equal(b.Bytes(), []byte("Hello")) {
		t.Fatalf("FromVec must alias, got %q", b.Bytes())
	}
}

func TestAdvanceStartUnchecked(t *testing.T) {
	b := FromVec([]byte("hello world"))
	b.AdvanceStartUnchecked(6)

	if !bytes.Equal(b.Bytes(), []byte("world")) {
		t.Fatalf("Bytes() = %q, want %q", b.Bytes(), "world")
	}
	if b.Len() != 5 {
		t.Fatalf("Len() = %d, want 5", b.Len())
	}
}

func TestFromRawParts(t *testing.T) {
	raw := make([]byte, 4, 16)
	copy(raw, "abcd")
	b := FromRawParts(raw, 4, 16)

	if b.Cap() != 16 {
		t.Fatalf("Cap() = %d, want 16", b.Cap())
	}
	if !bytes.Equal(b.Bytes(), []byte("abcd")) {
		t.Fatalf("Bytes() = %q, want %q", b.Bytes(), "abcd")
	}
}

func TestTakeRaw(t *testing.T) {
	b := FromVec([]byte("hello world"))
	b.AdvanceStartUnchecked(6)

	full, start := b.TakeRaw()
	if start != 6 {
		t.Fatalf("start = %d, want 6", start)
	}
	if !bytes.Equal(full[start:], []byte("world")) {
		t.Fatalf("full[start:] = %q, want %q", full[start:], "world")
	}
	if b.data != nil {
		t.Fatal("TakeRaw must clear the buffer's internal state")
	}
}
