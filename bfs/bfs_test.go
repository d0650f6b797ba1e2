package bfs_test

import (
	"context"
	"fmt"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mazesearch/bfs"
	"github.com/katalvlaran/mazesearch/maze"
)

// graph is an undirected adjacency list used as a successor function.
type graph map[string][]string

func (g graph) addEdge(u, v string) {
	g[u] = append(g[u], v)
	g[v] = append(g[v], u)
}

func (g graph) successors(s string) []string { return g[s] }

func loc(row, col int) maze.Location { return maze.Location{Row: row, Column: col} }

func goalIs(goal string) func(string) bool {
	return func(s string) bool { return s == goal }
}

// TestBFS_Errors verifies that invalid inputs and options are rejected.
func TestBFS_Errors(t *testing.T) {
	g := graph{}
	_, err := bfs.BFS("A", nil, g.successors)
	assert.ErrorIs(t, err, bfs.ErrNilGoalTest)

	_, err = bfs.BFS("A", goalIs("A"), nil)
	assert.ErrorIs(t, err, bfs.ErrNilSuccessors)

	_, err = bfs.BFS("A", goalIs("A"), g.successors, bfs.WithMaxExpansions(-1))
	assert.ErrorIs(t, err, bfs.ErrOptionViolation)
}

// TestBFS_SingleState covers the trivial start == goal search.
func TestBFS_SingleState(t *testing.T) {
	g := graph{}
	res, err := bfs.BFS("A", goalIs("A"), g.successors)
	require.NoError(t, err)
	path, err := res.Path()
	require.NoError(t, err)
	assert.Equal(t, []string{"A"}, path)
}

// TestBFS_ShortestRoute finds the fewest-hop path when two routes compete.
func TestBFS_ShortestRoute(t *testing.T) {
	g := graph{}
	// Route1: A–B–C–D–K (4 hops)
	g.addEdge("A", "B")
	g.addEdge("B", "C")
	g.addEdge("C", "D")
	g.addEdge("D", "K")
	// Route2: A–E–F–K (3 hops)
	g.addEdge("A", "E")
	g.addEdge("E", "F")
	g.addEdge("F", "K")

	res, err := bfs.BFS("A", goalIs("K"), g.successors)
	require.NoError(t, err)
	path, err := res.Path()
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "E", "F", "K"}, path)
}

// TestBFS_CycleAndLayers checks dequeue order layer by layer on a 4-cycle.
func TestBFS_CycleAndLayers(t *testing.T) {
	g := graph{}
	g.addEdge("A", "B")
	g.addEdge("B", "C")
	g.addEdge("C", "D")
	g.addEdge("D", "A")

	var order []string
	res, err := bfs.BFS("A", func(s string) bool {
		order = append(order, s)
		return false
	}, g.successors)
	require.NoError(t, err)
	assert.False(t, res.Found)
	assert.Equal(t, []string{"A", "B", "D", "C"}, order)
}

// TestBFS_Disconnected ensures BFS only explores the component of the start state.
func TestBFS_Disconnected(t *testing.T) {
	g := graph{}
	g.addEdge("X", "Y")
	g.addEdge("P", "Q")

	res, err := bfs.BFS("X", goalIs("Q"), g.successors)
	require.NoError(t, err)
	assert.False(t, res.Found)
	assert.Equal(t, 2, res.Expanded)
}

// TestBFS_OpenGrid3x3 is the concrete 3×3 scenario: no obstacles,
// start (0,0), goal (2,2); the shortest path has 5 states.
func TestBFS_OpenGrid3x3(t *testing.T) {
	m, err := maze.New(maze.WithSize(3, 3), maze.WithSparseness(0),
		maze.WithStart(loc(0, 0)), maze.WithGoal(loc(2, 2)))
	require.NoError(t, err)

	assert.Equal(t, []maze.Location{loc(1, 0), loc(0, 1)}, m.Successors(m.Start()))

	res, err := bfs.BFS(m.Start(), m.GoalTest, m.Successors)
	require.NoError(t, err)
	path, err := res.Path()
	require.NoError(t, err)
	assert.Len(t, path, 5)
	want := []maze.Location{loc(0, 0), loc(1, 0), loc(2, 0), loc(2, 1), loc(2, 2)}
	assert.Equal(t, want, path)
}

func TestBFS_MaxExpansions(t *testing.T) {
	g := graph{}
	for i := 0; i < 10; i++ {
		g.addEdge("v"+strconv.Itoa(i), "v"+strconv.Itoa(i+1))
	}
	res, err := bfs.BFS("v0", goalIs("v10"), g.successors, bfs.WithMaxExpansions(4))
	assert.ErrorIs(t, err, bfs.ErrExpansionLimit)
	assert.Equal(t, 4, res.Expanded)

	res, err = bfs.BFS("v0", goalIs("v10"), g.successors, bfs.WithMaxExpansions(0))
	require.NoError(t, err)
	assert.True(t, res.Found)
}

// TestBFS_Cancellation verifies that a cancelled context halts BFS promptly.
func TestBFS_Cancellation(t *testing.T) {
	g := graph{}
	for i := 0; i < 100; i++ {
		g.addEdge(fmt.Sprintf("v%d", i), fmt.Sprintf("v%d", i+1))
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel() // immediate
	_, err := bfs.BFS("v0", goalIs("v100"), g.successors, bfs.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

// TestBFS_ConcurrentSafety runs two searches over the same maze at once;
// the maze is read-only during search, so they must agree.
func TestBFS_ConcurrentSafety(t *testing.T) {
	m, err := maze.FromRows([]string{
		"S...",
		".XX.",
		"...G",
	})
	require.NoError(t, err)
	lengths := make(chan int, 2)
	for i := 0; i < 2; i++ {
		go func() {
			res, err := bfs.BFS(m.Start(), m.GoalTest, m.Successors)
			if err != nil || !res.Found {
				lengths <- -1
				return
			}
			p, _ := res.Path()
			lengths <- len(p)
		}()
	}
	for i := 0; i < 2; i++ {
		assert.Equal(t, 6, <-lengths, "run #%d", i)
	}
}
