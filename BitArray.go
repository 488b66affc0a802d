package Go_Structs

import (
	"math/bits"
)

// NewBitArray makes a BitArray holding at least size bits, all down.
func NewBitArray(size uint) BitArray {
	return BitArray{bits: make([]uint, (size+bits.UintSize-1)/bits.UintSize)}
}

// BitArray is a fixed-size array of bits backed by a []uint. It's a value
// type: copies share the underlying words.
type BitArray struct {
	bits []uint
}

func (u BitArray) Len() uint {
	return uint(len(u.bits)) * bits.UintSize
}

func (u BitArray) Get(i uint) bool {
	return (u.bits[i/bits.UintSize]>>(i%bits.UintSize))&1 == 1
}

func (u BitArray) Up(i uint) {
	u.bits[i/bits.UintSize] |= 1 << (i % bits.UintSize)
}

func (u BitArray) Down(i uint) {
	u.bits[i/bits.UintSize] &^= 1 << (i % bits.UintSize)
}

// Clear puts all bits down without reallocating.
func (u BitArray) Clear() {
	for i := range u.bits {
		u.bits[i] = 0
	}
}
