package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/mazesearch/internal/config"
)

// ExitError is an error that carries the process exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// algorithmAll selects every search in a fixed order.
const algorithmAll = "all"

// Parse processes command-line arguments, loads the configuration file when
// one is named and applies flag overrides on top. It returns the resolved
// Config, a boolean telling the caller to exit cleanly (after -h), or an
// ExitError with code 2 for usage and configuration problems.
func Parse(args []string, output io.Writer) (*config.Config, bool, error) {
	flagSet := flag.NewFlagSet("mazesearch", flag.ContinueOnError)
	flagSet.SetOutput(output)
	flagSet.Usage = func() {
		fmt.Fprint(output, `
mazesearch - generate a random maze and solve it with DFS, BFS or A*.

Usage:
  mazesearch [options]

Options:
`)
		flagSet.PrintDefaults()
	}

	configFlag := flagSet.String("config", "", "Path to an HCL configuration file.")
	seedFlag := flagSet.Int64("seed", 0, "Seed for maze generation. Unset uses the clock.")
	algorithmFlag := flagSet.String("algorithm", "", "Search to run: 'dfs', 'bfs', 'astar' or 'all'.")
	logLevelFlag := flagSet.String("log-level", "", "Logging level: 'debug', 'info', 'warn' or 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	if flagSet.NArg() > 0 {
		return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("unexpected argument %q", flagSet.Arg(0))}
	}

	cfg, err := config.Load(*configFlag)
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	set := map[string]bool{}
	flagSet.Visit(func(f *flag.Flag) { set[f.Name] = true })

	if set["seed"] {
		seed := *seedFlag
		cfg.Maze.Seed = &seed
	}
	if set["algorithm"] {
		algorithm := strings.ToLower(*algorithmFlag)
		if algorithm == algorithmAll {
			cfg.Search.Algorithms = []string{config.AlgorithmDFS, config.AlgorithmBFS, config.AlgorithmAStar}
		} else {
			cfg.Search.Algorithms = []string{algorithm}
		}
	}
	if set["log-level"] {
		cfg.LogLevel = strings.ToLower(*logLevelFlag)
	}
	if err := cfg.Validate(); err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	logrus.WithField("config", *configFlag).Debug("command line parsed")

	return cfg, false, nil
}
