package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/mazesearch/maze"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Algorithm names accepted in search.algorithms.
const (
	AlgorithmDFS   = "dfs"
	AlgorithmBFS   = "bfs"
	AlgorithmAStar = "astar"
)

// Heuristic names accepted in search.heuristic.
const (
	HeuristicEuclidean = "euclidean"
	HeuristicManhattan = "manhattan"
)

// Config is the fully resolved configuration of a mazesearch run.
type Config struct {
	LogLevel  string
	LogFormat string
	Maze      MazeConfig
	Search    SearchConfig
}

// MazeConfig mirrors the maze block.
type MazeConfig struct {
	Rows       int
	Columns    int
	Sparseness float64
	Start      maze.Location
	Goal       *maze.Location // nil: bottom-right corner
	Seed       *int64         // nil: seeded from the clock
}

// SearchConfig mirrors the search block.
type SearchConfig struct {
	Algorithms []string
	Heuristic  string
}

// Default returns the configuration used when no file is given: a random
// 10×10 maze at sparseness 0.2 solved depth-first.
func Default() *Config {
	return &Config{
		LogLevel:  "info",
		LogFormat: "text",
		Maze: MazeConfig{
			Rows:       10,
			Columns:    10,
			Sparseness: 0.2,
		},
		Search: SearchConfig{
			Algorithms: []string{AlgorithmDFS},
			Heuristic:  HeuristicEuclidean,
		},
	}
}

// Options converts the maze block into maze.New options.
func (m MazeConfig) Options() []maze.Option {
	opts := []maze.Option{
		maze.WithSize(m.Rows, m.Columns),
		maze.WithSparseness(m.Sparseness),
		maze.WithStart(m.Start),
	}
	if m.Goal != nil {
		opts = append(opts, maze.WithGoal(*m.Goal))
	}
	if m.Seed != nil {
		opts = append(opts, maze.WithSeed(*m.Seed))
	}

	return opts
}

// HeuristicFor returns the A* distance estimate toward goal named by
// s.Heuristic.
func (s SearchConfig) HeuristicFor(goal maze.Location) func(maze.Location) float64 {
	if s.Heuristic == HeuristicManhattan {
		return maze.ManhattanDistance(goal)
	}

	return maze.EuclideanDistance(goal)
}

// Validate checks every field and reports the first problem found.
func (c *Config) Validate() error {
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: log_level %q", ErrInvalidConfig, c.LogLevel)
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("%w: log_format must be \"text\" or \"json\", got %q", ErrInvalidConfig, c.LogFormat)
	}

	m := c.Maze
	if m.Rows < 1 || m.Columns < 1 {
		return fmt.Errorf("%w: maze size %d×%d", ErrInvalidConfig, m.Rows, m.Columns)
	}
	if m.Sparseness < 0 || m.Sparseness > 1 {
		return fmt.Errorf("%w: sparseness %g outside [0,1]", ErrInvalidConfig, m.Sparseness)
	}
	if !inside(m.Start, m.Rows, m.Columns) {
		return fmt.Errorf("%w: start %v outside %d×%d maze", ErrInvalidConfig, m.Start, m.Rows, m.Columns)
	}
	if m.Goal != nil && !inside(*m.Goal, m.Rows, m.Columns) {
		return fmt.Errorf("%w: goal %v outside %d×%d maze", ErrInvalidConfig, *m.Goal, m.Rows, m.Columns)
	}

	if len(c.Search.Algorithms) == 0 {
		return fmt.Errorf("%w: search.algorithms is empty", ErrInvalidConfig)
	}
	for _, a := range c.Search.Algorithms {
		switch a {
		case AlgorithmDFS, AlgorithmBFS, AlgorithmAStar:
		default:
			return fmt.Errorf("%w: unknown algorithm %q (want %s)", ErrInvalidConfig, a,
				strings.Join([]string{AlgorithmDFS, AlgorithmBFS, AlgorithmAStar}, ", "))
		}
	}
	switch c.Search.Heuristic {
	case HeuristicEuclidean, HeuristicManhattan:
	default:
		return fmt.Errorf("%w: unknown heuristic %q", ErrInvalidConfig, c.Search.Heuristic)
	}

	return nil
}

func inside(l maze.Location, rows, columns int) bool {
	return l.Row >= 0 && l.Row < rows && l.Column >= 0 && l.Column < columns
}
