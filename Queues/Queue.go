package Queues

// Queue is a FIFO container. Pop on an empty Queue returns EmptyQueueError,
// Peek on an empty Queue returns the zero value of T.
type Queue[T any] interface {
	Push(item T)
	Pop() (T, error)
	Peek() T
	Empty() bool
	Size() uint
}

type EmptyQueueError struct {
}

func (e *EmptyQueueError) Error() string {
	return "Queue is Empty: cannot Pop."
}
