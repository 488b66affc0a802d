package Go_Structs

import (
	"testing"
)

func TestBitArray(t *testing.T) {
	a := NewBitArray(100)
	if a.Len() < 100 {
		t.Fatalf("bit array holds %d bits, want at least 100", a.Len())
	}
	for i := uint(0); i < 100; i += 3 {
		a.Up(i)
	}
	for i := uint(0); i < 100; i++ {
		if a.Get(i) != (i%3 == 0) {
			t.Errorf("bit %d is %t", i, a.Get(i))
		}
	}
	a.Down(3)
	if a.Get(3) {
		t.Error("bit 3 is still up")
	}
	a.Clear()
	for i := uint(0); i < 100; i++ {
		if a.Get(i) {
			t.Errorf("bit %d is up after Clear", i)
		}
	}
}

func TestHasher(t *testing.T) {
	h := NewHasher()
	if h.HashString("abc") != h.HashString("abc") {
		t.Error("hasher is not deterministic for strings")
	}
	if h.HashBytes([]byte("abc")) != h.HashString("abc") {
		t.Error("byte and string hashes of the same content differ")
	}
	if h.HashInt(-1) != h.HashUint(^uint(0)) {
		t.Error("int hash does not match the same bit pattern as uint")
	}
	//seeded independently, so (almost surely) a different function
	if g := NewHasher(); g.HashString("abc") == h.HashString("abc") &&
		g.HashString("xyz") == h.HashString("xyz") {
		t.Error("two fresh hashers agree on every probe")
	}
}
