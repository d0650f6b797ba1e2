// Package bfs implements breadth-first search with a FIFO frontier.
//
// What:
//
//   - BFS(initial, goalTest, successors, opts...): generic over the state type.
//   - The explored set is updated when a state is discovered, so every state
//     is enqueued at most once and cyclic graphs terminate.
//   - The goal test runs when a node is dequeued.
//
// Why:
//
//   - On unweighted graphs the first goal dequeued is reached by a path with
//     the fewest edges; on a maze this is a shortest route.
//
// Complexity:
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Options:
//
//   - WithContext(ctx)       cancellation.
//   - WithLogger(l)          debug records via logrus.
//   - WithMaxExpansions(n)   cap on dequeued nodes.
//
// Errors:
//
//   - ErrNilGoalTest, ErrNilSuccessors: missing callbacks.
//   - ErrOptionViolation:  invalid option values.
//   - ErrExpansionLimit:   cap reached before a goal was found.
//   - context.Canceled:    search cancelled via context.
package bfs
