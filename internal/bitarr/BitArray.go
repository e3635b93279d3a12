package bitarr

import (
	"math/bits"

	"golang.org/x/exp/constraints"
)

// New BitArray holding at least size bits, all down.
func New[I constraints.Integer](size I) BitArray {
	return BitArray{bits: make([]uint, (uint64(size)+bits.UintSize-1)/bits.UintSize)}
}

// BitArray is a fixed array of bits. Indexes out of [0, Len) panic.
type BitArray struct {
	bits []uint
}

func (u BitArray) Len() int {
	return len(u.bits) * bits.UintSize
}

func (u BitArray) Get(i int) bool {
	return (u.bits[i/bits.UintSize]>>(i%bits.UintSize))&1 == 1
}

func (u BitArray) Up(i int) {
	u.bits[i/bits.UintSize] |= 1 << (i % bits.UintSize)
}

func (u BitArray) Down(i int) {
	u.bits[i/bits.UintSize] &^= 1 << (i % bits.UintSize)
}

// Swap sets bit i up and reports whether it was already up.
func (u BitArray) Swap(i int) bool {
	w, m := &u.bits[i/bits.UintSize], uint(1)<<(i%bits.UintSize)
	old := *w&m != 0
	*w |= m
	return old
}

// Count of bits that are up.
func (u BitArray) Count() (c int) {
	for _, w := range u.bits {
		c += bits.OnesCount(w)
	}
	return
}
