package config_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mazesearch/internal/config"
	"github.com/katalvlaran/mazesearch/maze"
)

func TestDefault_IsValid(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, []string{config.AlgorithmDFS}, cfg.Search.Algorithms)
	assert.Nil(t, cfg.Maze.Goal)
	assert.Nil(t, cfg.Maze.Seed)
}

func TestLoad_EmptyPathReturnsDefault(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestLoad_FullFile(t *testing.T) {
	cfg, err := config.Load(filepath.Join("testdata", "full.hcl"))
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, 12, cfg.Maze.Rows)
	assert.Equal(t, 8, cfg.Maze.Columns)
	assert.InDelta(t, 0.3, cfg.Maze.Sparseness, 1e-9)
	assert.Equal(t, maze.Location{Row: 1, Column: 2}, cfg.Maze.Start)
	require.NotNil(t, cfg.Maze.Goal)
	assert.Equal(t, maze.Location{Row: 11, Column: 7}, *cfg.Maze.Goal)
	require.NotNil(t, cfg.Maze.Seed)
	assert.Equal(t, int64(42), *cfg.Maze.Seed)
	assert.Equal(t, []string{"dfs", "bfs", "astar"}, cfg.Search.Algorithms)
	assert.Equal(t, config.HeuristicManhattan, cfg.Search.Heuristic)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join("testdata", "does-not-exist.hcl"))
	assert.Error(t, err)
}

// TestParse_PartialKeepsDefaults sets a single attribute; everything else
// keeps its default.
func TestParse_PartialKeepsDefaults(t *testing.T) {
	cfg, err := config.Parse([]byte(`
maze {
  rows = 5
}
`), "partial.hcl")
	require.NoError(t, err)

	want := config.Default()
	want.Maze.Rows = 5
	assert.Equal(t, want, cfg)
}

func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name    string
		src     string
		invalid bool // wraps ErrInvalidConfig
	}{
		{"Syntax", `maze {`, false},
		{"UnknownAttribute", `colour = "red"`, false},
		{"WrongType", `maze { rows = "ten" }`, false},
		{"BadLevel", `log_level = "loud"`, true},
		{"BadFormat", `log_format = "xml"`, true},
		{"ZeroRows", `maze { rows = 0 }`, true},
		{"Sparseness", `maze { sparseness = 1.5 }`, true},
		{"StartShape", `maze { start = [1] }`, true},
		{"StartOutside", `maze { start = [10, 0] }`, true},
		{"GoalOutside", `maze {
  rows = 3
  goal = [3, 3]
}`, true},
		{"NoAlgorithms", `search { algorithms = [] }`, true},
		{"UnknownAlgorithm", `search { algorithms = ["dijkstra"] }`, true},
		{"UnknownHeuristic", `search { heuristic = "chebyshev" }`, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := config.Parse([]byte(tc.src), tc.name+".hcl")
			require.Error(t, err)
			if tc.invalid {
				assert.ErrorIs(t, err, config.ErrInvalidConfig)
			} else {
				assert.NotErrorIs(t, err, config.ErrInvalidConfig)
			}
		})
	}
}

func TestMazeConfig_Options(t *testing.T) {
	cfg := config.Default()
	seed := int64(7)
	goal := maze.Location{Row: 2, Column: 3}
	cfg.Maze.Rows, cfg.Maze.Columns = 4, 5
	cfg.Maze.Goal = &goal
	cfg.Maze.Seed = &seed

	a, err := maze.New(cfg.Maze.Options()...)
	require.NoError(t, err)
	b, err := maze.New(cfg.Maze.Options()...)
	require.NoError(t, err)
	assert.Equal(t, 4, a.Rows())
	assert.Equal(t, 5, a.Columns())
	assert.Equal(t, goal, a.Goal())
	assert.Equal(t, a.String(), b.String(), "same seed, same maze")
}

func TestSearchConfig_HeuristicFor(t *testing.T) {
	goal := maze.Location{Row: 3, Column: 4}
	origin := maze.Location{}

	s := config.SearchConfig{Heuristic: config.HeuristicEuclidean}
	assert.InDelta(t, 5.0, s.HeuristicFor(goal)(origin), 1e-9)

	s.Heuristic = config.HeuristicManhattan
	assert.Equal(t, 7.0, s.HeuristicFor(goal)(origin))
}
