// Package frontier provides the interchangeable containers used to order
// exploration in graph search: a LIFO Stack, a FIFO Queue and a min-heap
// PriorityQueue.
//
// What:
//
//   - Frontier[T]: the common capability (Empty, Len, Push, Pop, Peek).
//   - Stack[T]:    Pop returns the most recently pushed item.
//   - Queue[T]:    Pop returns the earliest pushed item still present.
//   - PriorityQueue[T]: Pop returns the smallest item under a caller supplied
//     ordering. Ties are broken arbitrarily.
//
// Complexity:
//
//   - Stack:         Push/Pop O(1) amortized.
//   - Queue:         Push/Pop O(1).
//   - PriorityQueue: Push/Pop O(log n).
//
// Errors:
//
//   - ErrEmpty: Pop or Peek on an empty container (underflow).
//
// The search packages (dfs, bfs, astar) each pick the container matching
// their exploration order; nothing here is safe for concurrent use.
package frontier
