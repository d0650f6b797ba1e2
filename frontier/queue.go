package frontier

import "container/list"

// Queue is a FIFO container backed by a doubly linked list,
// giving O(1) push at the tail and pop at the head.
type Queue[T any] struct {
	l *list.List
}

// NewQueue returns an empty Queue.
func NewQueue[T any]() *Queue[T] {
	return &Queue[T]{l: list.New()}
}

// Empty reports whether the queue holds no items.
func (q *Queue[T]) Empty() bool { return q.l.Len() == 0 }

// Len returns the number of queued items.
func (q *Queue[T]) Len() int { return q.l.Len() }

// Push appends item at the tail.
func (q *Queue[T]) Push(item T) {
	q.l.PushBack(item)
}

// Pop removes and returns the item at the head.
func (q *Queue[T]) Pop() (T, error) {
	e := q.l.Front()
	if e == nil {
		var zero T
		return zero, ErrEmpty
	}
	q.l.Remove(e)

	return e.Value.(T), nil
}

// Peek returns the head item without removing it.
func (q *Queue[T]) Peek() (T, error) {
	e := q.l.Front()
	if e == nil {
		var zero T
		return zero, ErrEmpty
	}

	return e.Value.(T), nil
}
