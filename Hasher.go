package Go_Structs

import (
	"encoding/binary"
	"hash/maphash"
)

// NewHasher makes a Hasher with a fresh random seed. Two Hashers made by
// separate calls hash the same input to different values.
func NewHasher() Hasher {
	return Hasher{maphash.MakeSeed()}
}

// Hasher hashes primitive values with a fixed seed. The receivers are pure
// and safe for concurrent use.
type Hasher struct {
	seed maphash.Seed
}

// HashString hashes v.
func (u Hasher) HashString(v string) uint {
	return uint(maphash.String(u.seed, v))
}

// HashBytes hashes the given byte slice.
func (u Hasher) HashBytes(b []byte) uint {
	return uint(maphash.Bytes(u.seed, b))
}

// HashUint hashes v.
func (u Hasher) HashUint(v uint) uint {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], uint64(v))
	return uint(maphash.Bytes(u.seed, b[:]))
}

// HashInt hashes v.
func (u Hasher) HashInt(v int) uint {
	return u.HashUint(uint(v))
}
