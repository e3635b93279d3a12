package bitarr

import "testing"

func TestBitArray(t *testing.T) {
	b := New(100)
	if b.Len() < 100 {
		t.Fatalf("Len is %d, want at least 100", b.Len())
	}
	for _, i := range []int{0, 63, 64, 99} {
		if b.Get(i) {
			t.Errorf("bit %d is up in a new array", i)
		}
		if b.Swap(i) {
			t.Errorf("Swap(%d) reported it up before", i)
		}
		if !b.Swap(i) {
			t.Errorf("second Swap(%d) reported it down before", i)
		}
	}
	if c := b.Count(); c != 4 {
		t.Errorf("Count is %d, want 4", c)
	}
	b.Down(63)
	if b.Get(63) {
		t.Errorf("bit 63 is still up")
	}
	b.Up(5)
	if !b.Get(5) || b.Count() != 4 {
		t.Errorf("Up(5) didn't take")
	}
}
