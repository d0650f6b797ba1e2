// Package searchtree holds the implicit search tree built while a graph search
// runs, and turns a terminal node back into a start→goal path.
//
// Nodes live in an arena (Tree) and refer to their parent by NodeID instead of
// by pointer. A parent is always added before its children, so every parent
// handle is strictly smaller than the handle of its child and any chain walked
// through Parent terminates at a root.
//
// What:
//
//   - Node[S]:   state, parent handle, accumulated cost, heuristic estimate.
//   - Tree[S]:   append-only arena of nodes owned by one search invocation.
//   - Result[S]: outcome of a search (Found, Goal handle, Expanded count).
//   - NodeToPath: walk parents to the root and reverse.
//
// Complexity:
//
//   - Tree.Add:   O(1) amortized.
//   - NodeToPath: O(depth).
//
// Errors:
//
//   - ErrNoSolution: Result.Path on a search that exhausted its frontier.
//   - ErrInvalidNode: a handle that does not address a node of the tree.
package searchtree
