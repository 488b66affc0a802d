package Queues

// ringQ is a queue over a circular array. head is the index of the oldest
// element, tail the index one past the newest; both wrap around.
type ringQ[T any] struct {
	sz, head, tail uint
	content        []T
}

// MakeRingQueue returns an empty Queue backed by a circular array of initCap
// slots. The array doubles when full.
func MakeRingQueue[T any](initCap uint) Queue[T] {
	if initCap == 0 {
		initCap = 1
	}
	return &ringQ[T]{0, 0, 0, make([]T, initCap)}
}

func (u *ringQ[T]) Empty() bool {
	return u.sz == 0
}

func (u *ringQ[T]) Size() uint {
	return u.sz
}

func (u *ringQ[T]) grow() {
	nc := make([]T, uint(len(u.content))*2)
	if u.head < u.tail {
		copy(nc, u.content[u.head:u.tail])
	} else {
		n := copy(nc, u.content[u.head:])
		copy(nc[n:], u.content[:u.tail])
	}
	u.head, u.tail = 0, u.sz
	u.content = nc
}

func (u *ringQ[T]) Push(item T) {
	if u.sz == uint(len(u.content)) {
		u.grow()
	}
	u.content[u.tail] = item
	u.tail = (u.tail + 1) % uint(len(u.content))
	u.sz++
}

func (u *ringQ[T]) Pop() (T, error) {
	if u.Empty() {
		return *new(T), &EmptyQueueError{}
	}
	t := u.content[u.head]
	u.content[u.head] = *new(T) //don't hold on to popped elements
	u.head = (u.head + 1) % uint(len(u.content))
	u.sz--
	return t, nil
}

func (u *ringQ[T]) Peek() T {
	if u.Empty() {
		return *new(T)
	}
	return u.content[u.head]
}
