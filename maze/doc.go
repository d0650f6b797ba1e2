// Package maze treats a rectangular grid of cells as an implicit graph for
// the search packages.
//
// What:
//
//   - New builds a random maze: each cell is blocked independently with
//     probability Sparseness, then Start and Goal are stamped on top.
//   - FromRows builds a maze from text for deterministic fixtures.
//   - Successors/GoalTest plug straight into dfs.DFS, bfs.BFS and astar.AStar.
//   - Mark/Clear overlay a solution path for display; String renders it.
//   - EuclideanDistance/ManhattanDistance are admissible A* heuristics.
//   - Regions/Connected report open connected components.
//
// Rendering:
//
//	Empty " "   Blocked "X"   Start "S"   Goal "G"   Path "*"
//
// Options:
//
//   - WithSize(rows, columns): default 10×10.
//   - WithSparseness(p):       default 0.2, must be within [0,1].
//   - WithStart(l):            default (0, 0).
//   - WithGoal(l):             default bottom-right corner.
//   - WithRand(r) / WithSeed(s): random source; default is time-seeded.
//
// Errors:
//
//   - ErrBadDimensions, ErrBadSparseness, ErrOutOfBounds: invalid New options.
//   - ErrEmptyGrid, ErrNonRectangular, ErrUnknownCell, ErrMissingStart,
//     ErrMissingGoal, ErrDuplicateMarker: malformed FromRows input.
package maze
