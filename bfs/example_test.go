package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/mazesearch/bfs"
	"github.com/katalvlaran/mazesearch/maze"
)

// ExampleBFS finds a fewest-edges route through a small maze.
// Two routes of five edges exist; because successors are generated
// down before right, BFS settles on the left-hand one.
func ExampleBFS() {
	m, _ := maze.FromRows([]string{
		"S..X",
		".X.X",
		"...G",
	})
	res, err := bfs.BFS(m.Start(), m.GoalTest, m.Successors)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	path, err := res.Path()
	if err != nil {
		fmt.Println("No solution found")
		return
	}
	fmt.Println("states:", len(path), "expanded:", res.Expanded)
	m.Mark(path)
	fmt.Print(m)
	// Output:
	// states: 6 expanded: 9
	// S     X
	// * X   X
	// * * * G
}
