package frontier

import "container/heap"

// PriorityQueue is a binary min-heap: Pop returns the item that is smallest
// under the Less it was built with. Equal items come out in no particular order.
type PriorityQueue[T any] struct {
	h itemHeap[T]
}

// NewPriorityQueue returns an empty PriorityQueue ordered by less.
// A nil less panics, as it is a programming error.
func NewPriorityQueue[T any](less Less[T]) *PriorityQueue[T] {
	if less == nil {
		panic("frontier: NewPriorityQueue with nil Less")
	}
	pq := &PriorityQueue[T]{h: itemHeap[T]{less: less}}
	heap.Init(&pq.h)

	return pq
}

// Empty reports whether the queue holds no items.
func (pq *PriorityQueue[T]) Empty() bool { return len(pq.h.items) == 0 }

// Len returns the number of queued items.
func (pq *PriorityQueue[T]) Len() int { return len(pq.h.items) }

// Push inserts item in O(log n).
func (pq *PriorityQueue[T]) Push(item T) {
	heap.Push(&pq.h, item)
}

// Pop removes and returns the smallest item in O(log n).
func (pq *PriorityQueue[T]) Pop() (T, error) {
	if len(pq.h.items) == 0 {
		var zero T
		return zero, ErrEmpty
	}

	return heap.Pop(&pq.h).(T), nil
}

// Peek returns the smallest item without removing it.
func (pq *PriorityQueue[T]) Peek() (T, error) {
	if len(pq.h.items) == 0 {
		var zero T
		return zero, ErrEmpty
	}

	return pq.h.items[0], nil
}

// itemHeap adapts a slice and a Less to container/heap.
type itemHeap[T any] struct {
	items []T
	less  Less[T]
}

func (h itemHeap[T]) Len() int           { return len(h.items) }
func (h itemHeap[T]) Less(i, j int) bool { return h.less(h.items[i], h.items[j]) }
func (h itemHeap[T]) Swap(i, j int)      { h.items[i], h.items[j] = h.items[j], h.items[i] }

// Push is called by heap.Push; x must be of type T.
func (h *itemHeap[T]) Push(x any) { h.items = append(h.items, x.(T)) }

// Pop is called by heap.Pop after the minimum has been swapped to the end.
func (h *itemHeap[T]) Pop() any {
	old := h.items
	n := len(old)
	item := old[n-1]
	var zero T
	old[n-1] = zero
	h.items = old[:n-1]

	return item
}
