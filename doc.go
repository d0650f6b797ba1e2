// Package mazesearch is a small generic graph-search toolkit with a grid
// maze to exercise it.
//
// What is inside?
//
//	Searches work on any comparable state type S. The caller supplies the
//	initial state, a goal predicate and a successor function, so the graph
//	stays implicit and is never materialised:
//		• dfs/        depth-first search over a LIFO frontier
//		• bfs/        breadth-first search, fewest steps to the goal
//		• astar/      A* with a caller heuristic, unit or weighted edges
//
//	Supporting packages:
//		• frontier/   Stack, Queue and PriorityQueue behind one interface
//		• searchtree/ node arena, Result and path reconstruction
//		• maze/       random or hand-drawn grid mazes, heuristics, regions
//
// Every search returns a *searchtree.Result. Exhausting the frontier is not
// an error: Result.Found is false and Path reports searchtree.ErrNoSolution.
//
// Quick example:
//
//	S . X
//	X . X
//	X . G
//
//	m, _ := maze.FromRows([]string{"S.X", "X.X", "X.G"})
//	res, _ := bfs.BFS(m.Start(), m.GoalTest, m.Successors)
//	path, _ := res.Path() // (0,0) (0,1) (1,1) (2,1) (2,2)
//
// The mazesearch command in cmd/mazesearch generates a random maze, prints it
// and prints each configured search's solution overlaid on it.
package mazesearch
