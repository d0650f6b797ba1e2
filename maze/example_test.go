package maze_test

import (
	"fmt"

	"github.com/katalvlaran/mazesearch/maze"
)

// ExampleMaze_Successors lists the open neighbours of the start cell
// in the fixed order down, up, right, left.
func ExampleMaze_Successors() {
	m, _ := maze.FromRows([]string{
		"S.X",
		"..X",
		"X.G",
	})
	fmt.Println(m.Successors(m.Start()))
	fmt.Println(m.Successors(maze.Location{Row: 1, Column: 1}))
	// Output:
	// [(1, 0) (0, 1)]
	// [(2, 1) (0, 1) (1, 0)]
}

// ExampleMaze_Mark overlays a path and renders the maze.
func ExampleMaze_Mark() {
	m, _ := maze.FromRows([]string{
		"SXX",
		".XX",
		"..G",
	})
	path := []maze.Location{{Row: 0, Column: 0}, {Row: 1, Column: 0}, {Row: 2, Column: 0}, {Row: 2, Column: 1}, {Row: 2, Column: 2}}
	m.Mark(path)
	fmt.Print(m)
	m.Clear(path)
	fmt.Print(m)
	// Output:
	// S X X
	// * X X
	// * * G
	// S X X
	//   X X
	//     G
}
