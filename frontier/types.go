package frontier

import (
	"errors"

	"golang.org/x/exp/constraints"
)

// ErrEmpty is returned by Pop and Peek when the container holds no items.
var ErrEmpty = errors.New("frontier: container is empty")

// Frontier is the capability shared by Stack, Queue and PriorityQueue.
type Frontier[T any] interface {
	// Empty reports whether the container holds no items.
	Empty() bool
	// Len returns the number of items currently held.
	Len() int
	// Push inserts item.
	Push(item T)
	// Pop removes and returns one item, or ErrEmpty.
	Pop() (T, error)
	// Peek returns the item Pop would return without removing it.
	Peek() (T, error)
}

// Less reports whether a must be popped before b.
type Less[T any] func(a, b T) bool

// ByKey builds a Less that orders items by ascending key(item).
func ByKey[T any, K constraints.Ordered](key func(T) K) Less[T] {
	return func(a, b T) bool { return key(a) < key(b) }
}

// Compile-time interface checks.
var (
	_ Frontier[int] = (*Stack[int])(nil)
	_ Frontier[int] = (*Queue[int])(nil)
	_ Frontier[int] = (*PriorityQueue[int])(nil)
)
