package config

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/katalvlaran/mazesearch/maze"
)

// fileSchema is the decoding target for a config file. Pointer and slice
// fields stay nil when the attribute is absent, so only what the file sets
// is merged over Default.
type fileSchema struct {
	LogLevel  *string       `hcl:"log_level,optional"`
	LogFormat *string       `hcl:"log_format,optional"`
	Maze      *mazeSchema   `hcl:"maze,block"`
	Search    *searchSchema `hcl:"search,block"`
}

type mazeSchema struct {
	Rows       *int     `hcl:"rows,optional"`
	Columns    *int     `hcl:"columns,optional"`
	Sparseness *float64 `hcl:"sparseness,optional"`
	Start      []int    `hcl:"start,optional"`
	Goal       []int    `hcl:"goal,optional"`
	Seed       *int64   `hcl:"seed,optional"`
}

type searchSchema struct {
	Algorithms []string `hcl:"algorithms,optional"`
	Heuristic  *string  `hcl:"heuristic,optional"`
}

// Load reads and validates the HCL file at path. An empty path yields
// Default.
func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, diags)
	}

	return decode(file, path)
}

// Parse is Load for in-memory source; filename is used in diagnostics only.
func Parse(src []byte, filename string) (*Config, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse config %s: %w", filename, diags)
	}

	return decode(file, filename)
}

func decode(file *hcl.File, filename string) (*Config, error) {
	var schema fileSchema
	if diags := gohcl.DecodeBody(file.Body, nil, &schema); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode config %s: %w", filename, diags)
	}

	cfg := Default()
	if err := schema.mergeInto(cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}

	return cfg, nil
}

// mergeInto copies every attribute present in the file onto cfg.
func (s *fileSchema) mergeInto(cfg *Config) error {
	if s.LogLevel != nil {
		cfg.LogLevel = *s.LogLevel
	}
	if s.LogFormat != nil {
		cfg.LogFormat = *s.LogFormat
	}

	if m := s.Maze; m != nil {
		if m.Rows != nil {
			cfg.Maze.Rows = *m.Rows
		}
		if m.Columns != nil {
			cfg.Maze.Columns = *m.Columns
		}
		if m.Sparseness != nil {
			cfg.Maze.Sparseness = *m.Sparseness
		}
		if m.Start != nil {
			l, err := location("start", m.Start)
			if err != nil {
				return err
			}
			cfg.Maze.Start = l
		}
		if m.Goal != nil {
			l, err := location("goal", m.Goal)
			if err != nil {
				return err
			}
			cfg.Maze.Goal = &l
		}
		if m.Seed != nil {
			cfg.Maze.Seed = m.Seed
		}
	}

	if sr := s.Search; sr != nil {
		if sr.Algorithms != nil {
			cfg.Search.Algorithms = sr.Algorithms
		}
		if sr.Heuristic != nil {
			cfg.Search.Heuristic = *sr.Heuristic
		}
	}

	return nil
}

// location turns a [row, column] pair into a maze.Location.
func location(name string, pair []int) (maze.Location, error) {
	if len(pair) != 2 {
		return maze.Location{}, fmt.Errorf("%w: %s must be [row, column], got %d values", ErrInvalidConfig, name, len(pair))
	}

	return maze.Location{Row: pair[0], Column: pair[1]}, nil
}
