package app

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/mazesearch/astar"
	"github.com/katalvlaran/mazesearch/bfs"
	"github.com/katalvlaran/mazesearch/dfs"
	"github.com/katalvlaran/mazesearch/internal/config"
	"github.com/katalvlaran/mazesearch/maze"
	"github.com/katalvlaran/mazesearch/searchtree"
)

// searchFunc runs one search algorithm over m.
type searchFunc func(ctx context.Context, m *maze.Maze, log logrus.FieldLogger) (*searchtree.Result[maze.Location], error)

// search pairs a runnable algorithm with the name printed to users.
type search struct {
	title string
	run   searchFunc
}

// searches returns the registry of algorithms keyed by configuration name.
func searches(cfg config.SearchConfig) map[string]search {
	return map[string]search{
		config.AlgorithmDFS: {
			title: "depth-first search",
			run: func(ctx context.Context, m *maze.Maze, log logrus.FieldLogger) (*searchtree.Result[maze.Location], error) {
				return dfs.DFS(m.Start(), m.GoalTest, m.Successors, dfs.WithContext(ctx), dfs.WithLogger(log))
			},
		},
		config.AlgorithmBFS: {
			title: "breadth-first search",
			run: func(ctx context.Context, m *maze.Maze, log logrus.FieldLogger) (*searchtree.Result[maze.Location], error) {
				return bfs.BFS(m.Start(), m.GoalTest, m.Successors, bfs.WithContext(ctx), bfs.WithLogger(log))
			},
		},
		config.AlgorithmAStar: {
			title: "A* search",
			run: func(ctx context.Context, m *maze.Maze, log logrus.FieldLogger) (*searchtree.Result[maze.Location], error) {
				return astar.AStar(m.Start(), m.GoalTest, m.Successors, cfg.HeuristicFor(m.Goal()),
					astar.WithContext(ctx), astar.WithLogger(log))
			},
		},
	}
}
