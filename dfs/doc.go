// Package dfs implements depth-first search over any comparable state type.
//
// The caller supplies an initial state, a goal predicate and a successor
// function; DFS explores with a LIFO frontier and returns a
// searchtree.Result whose Path runs from the initial state to the goal.
//
// Key features:
//   - Generic over the state type S (any comparable value).
//   - Discovery-time explored set: each state is pushed at most once.
//   - Cancellation via context.Context, optional expansion cap.
//   - Debug logging through logrus.
//
// Complexity:
//
//   - Time:   O(V + E) over the reachable portion of the graph.
//   - Memory: O(V) for the explored set and node arena.
//
// DFS finds a path, not necessarily a shortest one; use bfs or astar
// when path length matters.
package dfs
