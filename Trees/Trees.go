package Trees

import "fmt"

// OrderStatistic represents an ordered container that answers positional
// queries: beyond insertion and removal it can report the in-order position
// of an inserted element and fetch the element sitting at a given position.
// Positions (ranks) are 0-based. Methods implemented recursively are noted,
// otherwise receivers are implemented iteratively.
type OrderStatistic[T any] interface {
	//Insert v to the container. Returns the 0-based in-order position v
	//occupies immediately after the insertion. Insert never fails: a value
	//comparing equal to an existing element is kept as a distinct entry on
	//an adjacent position, since a strict-less comparator can't tell two
	//equal elements apart. Callers wanting set semantics must check
	//membership themselves before inserting.
	Insert(v T) uint
	//Remove the element comparing equal to key, returning it. The second
	//return value is false if no such element exists, in which case the
	//container is unchanged and the first return value is undefined.
	Remove(key T) (T, bool)
	//Select the element at 0-based position rank of the in-order sequence.
	//0<=rank<Size(); anything else is a caller bug and panics with RankError.
	Select(rank uint) T
	//Size of the container.
	Size() uint
}

// RankError is the panic value of Select when the requested rank lies outside
// [0, Size). It marks a programming error on the caller's side, not a
// recoverable condition: there is no in-range element to return.
type RankError struct {
	Rank, Size uint
}

func (e RankError) Error() string {
	return fmt.Sprintf("rank %d out of range: container holds %d elements", e.Rank, e.Size)
}
