// Package astar implements informed best-first search (A*).
//
// What:
//
//   - AStar(initial, goalTest, successors, heuristic, opts...): unit edge weights.
//   - Weighted(initial, goalTest, successors, heuristic, cost, opts...):
//     arbitrary non-negative edge weights.
//
// Unlike dfs and bfs, a state may be pushed more than once: whenever a
// cheaper route to it is found. Stale heap entries are left in place.
//
// Heuristics for grid mazes live in package maze (EuclideanDistance,
// ManhattanDistance); both are admissible for 4-connected unit-cost grids.
package astar
