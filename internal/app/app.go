package app

import (
	"context"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/mazesearch/internal/config"
	"github.com/katalvlaran/mazesearch/maze"
)

// App holds the resolved configuration and the sinks a run writes to.
type App struct {
	outW   io.Writer
	logger *logrus.Logger
	config *config.Config
}

// New returns an App that prints mazes to outW and logs to logW.
// cfg must already be validated.
func New(outW, logW io.Writer, cfg *config.Config) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW)
	logger.WithFields(logrus.Fields{
		"rows":       cfg.Maze.Rows,
		"columns":    cfg.Maze.Columns,
		"sparseness": cfg.Maze.Sparseness,
		"algorithms": cfg.Search.Algorithms,
	}).Debug("app configured")

	return &App{outW: outW, logger: logger, config: cfg}
}

// Run generates the maze, prints it and runs every configured search. Each
// solution is overlaid, printed and cleared again before the next search, so
// all searches see the same maze. Exhaustion prints a notice and is not an
// error.
func (a *App) Run(ctx context.Context) error {
	m, err := maze.New(a.config.Maze.Options()...)
	if err != nil {
		return fmt.Errorf("failed to build maze: %w", err)
	}
	fmt.Fprintln(a.outW, m)

	registry := searches(a.config.Search)
	for _, name := range a.config.Search.Algorithms {
		s, ok := registry[name]
		if !ok {
			return fmt.Errorf("%w: unknown algorithm %q", config.ErrInvalidConfig, name)
		}
		if err := a.solve(ctx, m, name, s); err != nil {
			return err
		}
	}

	return nil
}

// solve runs one search and prints its outcome.
func (a *App) solve(ctx context.Context, m *maze.Maze, name string, s search) error {
	log := a.logger.WithField("algorithm", name)
	res, err := s.run(ctx, m, log)
	if err != nil {
		return fmt.Errorf("%s failed: %w", s.title, err)
	}
	if !res.Found {
		log.WithField("expanded", res.Expanded).Info("no solution")
		fmt.Fprintf(a.outW, "No solution found using %s!\n", s.title)
		return nil
	}

	path, err := res.Path()
	if err != nil {
		return err
	}
	log.WithFields(logrus.Fields{
		"length":   len(path),
		"expanded": res.Expanded,
	}).Info("solution found")

	m.Mark(path)
	fmt.Fprintln(a.outW, m)
	m.Clear(path)

	return nil
}
