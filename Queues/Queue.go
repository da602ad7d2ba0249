package Queues

// Queue is a first in first out container.
type Queue[T any] interface {
	Push(item T)
	// Pop the head. Returns *EmptyQueueError when there is nothing to pop.
	Pop() (T, error)
	// Peek at the head without removing it. Zero value when empty.
	Peek() T
	Empty() bool
}

type ArrayQueue[T any] interface {
	Queue[T]
	Shrink()
	Clear()
	Size() uint
	resize(newLen uint)
}

type EmptyQueueError struct {
}

func (e *EmptyQueueError) Error() string {
	return "Queue is Empty: cannot Pop."
}
