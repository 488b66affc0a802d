package ProbeSet

import (
	"math/bits"

	Go_Structs "github.com/ndkovalev/go-structs"
)

// ProbeSet is a hash set over a single open-addressing table. A removal
// doesn't free its slot: the slot becomes a tombstone that probe sequences
// keep walking through, so elements displaced past it stay reachable. An
// insertion reuses the first tombstone of its probe sequence; a rehash drops
// all of them. The probe step grows by one on every collision, which visits
// every slot exactly once while the table length is a power of two.
// The element type only needs the hash and equality functions supplied at
// construction. Not thread-safe.
type ProbeSet[E any] struct {
	slots   []E
	live    Go_Structs.BitArray //slot holds an element
	dead    Go_Structs.BitArray //slot is a tombstone
	hash    func(E) uint
	eq      func(E, E) bool
	sz      uint
	tombs   uint
	maxLoad float64
}

// New ProbeSet with the given hash and equality functions. maxLoad in (0,1)
// is the occupied fraction of the table (elements plus tombstones) that
// triggers a doubling rehash; 0.75 is a good value. initCap is rounded up to
// a power of two, which the probing relies on.
func New[E any](hash func(E) uint, equal func(E, E) bool, maxLoad float64, initCap uint) *ProbeSet[E] {
	c := uint(8)
	if initCap > c {
		c = 1 << bits.Len(initCap-1)
	}
	return &ProbeSet[E]{
		slots:   make([]E, c),
		live:    Go_Structs.NewBitArray(c),
		dead:    Go_Structs.NewBitArray(c),
		hash:    hash,
		eq:      equal,
		maxLoad: maxLoad,
	}
}

// NewComparable is the New equivalence for types supporting ==.
func NewComparable[E comparable](hash func(E) uint, maxLoad float64, initCap uint) *ProbeSet[E] {
	return New[E](hash, func(a, b E) bool { return a == b }, maxLoad, initCap)
}

// Size of the set.
func (u *ProbeSet[E]) Size() uint {
	return u.sz
}

// lookUp probes for key. Found: the index of the matching live slot and true.
// Not found: false and the index an insertion of key should use, the first
// tombstone seen on the probe sequence if there was one, otherwise the empty
// slot that ended it.
func (u *ProbeSet[E]) lookUp(key E) (uint, bool) {
	m := uint(len(u.slots))
	i, step := u.hash(key)&(m-1), uint(1)
	insert, reuse := uint(0), false
	for probed := uint(0); probed < m; probed++ {
		if u.dead.Get(i) {
			if !reuse {
				insert, reuse = i, true
			}
		} else if !u.live.Get(i) {
			if !reuse {
				insert = i
			}
			return insert, false
		} else if u.eq(u.slots[i], key) {
			return i, true
		}
		i = (i + step) & (m - 1)
		step++
	}
	//every slot is an element or a tombstone; the load cap keeps at least one
	//tombstone on the sequence in this case
	return insert, false
}

// Put e in the set. Returning false if an equal element was already present.
// Time: amortized O(1)
func (u *ProbeSet[E]) Put(e E) bool {
	if float64(u.sz+u.tombs+1) > u.maxLoad*float64(len(u.slots)) {
		u.rehash(uint(len(u.slots)) * 2)
	}
	i, found := u.lookUp(e)
	if found {
		return false
	}
	if u.dead.Get(i) {
		u.dead.Down(i)
		u.tombs--
	}
	u.slots[i] = e
	u.live.Up(i)
	u.sz++
	return true
}

// Has e in the set.
// Time: O(1) expected
func (u *ProbeSet[E]) Has(e E) bool {
	_, found := u.lookUp(e)
	return found
}

// Remove e from the set, leaving a tombstone in its slot. Returning false if
// no equal element was present.
// Time: O(1) expected
func (u *ProbeSet[E]) Remove(e E) bool {
	if u.sz == 0 {
		return false
	}
	i, found := u.lookUp(e)
	if !found {
		return false
	}
	u.slots[i] = *new(E) //don't hold on to removed elements
	u.live.Down(i)
	u.dead.Up(i)
	u.sz--
	u.tombs++
	return true
}

// rehash moves every live element into a fresh table of c slots, dropping all
// tombstones.
func (u *ProbeSet[E]) rehash(c uint) {
	old, oldLive := u.slots, u.live
	u.slots = make([]E, c)
	u.live, u.dead = Go_Structs.NewBitArray(c), Go_Structs.NewBitArray(c)
	u.sz, u.tombs = 0, 0
	for i, e := range old {
		if oldLive.Get(uint(i)) {
			u.Put(e)
		}
	}
}
