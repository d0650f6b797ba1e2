// Package maze defines core types, options, and sentinel errors
// for the maze subpackage of github.com/katalvlaran/mazesearch.
package maze

import (
	"errors"
	"fmt"
	"math/rand"
	"time"
)

// Sentinel errors for maze construction.
var (
	// ErrBadDimensions indicates rows or columns below 1.
	ErrBadDimensions = errors.New("maze: rows and columns must be positive")
	// ErrBadSparseness indicates a blocking probability outside [0,1].
	ErrBadSparseness = errors.New("maze: sparseness must be within [0,1]")
	// ErrOutOfBounds indicates a start or goal outside the grid.
	ErrOutOfBounds = errors.New("maze: location out of bounds")
	// ErrEmptyGrid indicates FromRows received no rows or an empty row.
	ErrEmptyGrid = errors.New("maze: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("maze: all rows must have the same length")
	// ErrUnknownCell indicates a character FromRows cannot interpret.
	ErrUnknownCell = errors.New("maze: unknown cell character")
	// ErrMissingStart indicates FromRows found no 'S'.
	ErrMissingStart = errors.New("maze: grid has no start cell")
	// ErrMissingGoal indicates FromRows found no 'G'.
	ErrMissingGoal = errors.New("maze: grid has no goal cell")
	// ErrDuplicateMarker indicates more than one 'S' or 'G'.
	ErrDuplicateMarker = errors.New("maze: start and goal must appear exactly once")
)

// Cell tags what occupies a grid position.
type Cell int

const (
	// Empty is an open cell.
	Empty Cell = iota
	// Blocked is an obstacle; successors never include it.
	Blocked
	// Start marks the initial location.
	Start
	// Goal marks the target location.
	Goal
	// Path marks a cell on an overlaid solution.
	Path
)

// String renders the cell as it appears in Maze.String.
func (c Cell) String() string {
	switch c {
	case Empty:
		return " "
	case Blocked:
		return "X"
	case Start:
		return "S"
	case Goal:
		return "G"
	case Path:
		return "*"
	default:
		return "?"
	}
}

// Location identifies a grid cell. It is comparable and used as the
// search state.
type Location struct {
	Row, Column int
}

// String formats the location as "(row, column)".
func (l Location) String() string {
	return fmt.Sprintf("(%d, %d)", l.Row, l.Column)
}

// Options holds the construction parameters for New.
type Options struct {
	// Rows and Columns fix the grid dimensions.
	Rows, Columns int
	// Sparseness is the probability each cell is independently blocked.
	Sparseness float64
	// Start is the initial location.
	Start Location
	// Goal is the target location. Unless set explicitly it follows the
	// bottom-right corner of the grid.
	Goal Location
	// Rand is the random source for obstacle placement.
	Rand *rand.Rand

	goalSet bool
}

// Option configures New.
type Option func(*Options)

// DefaultOptions returns a 10×10 grid, sparseness 0.2, start (0,0),
// goal at the bottom-right corner and a time-seeded random source.
func DefaultOptions() Options {
	return Options{
		Rows:       10,
		Columns:    10,
		Sparseness: 0.2,
		Start:      Location{Row: 0, Column: 0},
		Rand:       rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// WithSize sets the grid dimensions.
func WithSize(rows, columns int) Option {
	return func(o *Options) {
		o.Rows, o.Columns = rows, columns
	}
}

// WithSparseness sets the per-cell blocking probability.
func WithSparseness(p float64) Option {
	return func(o *Options) { o.Sparseness = p }
}

// WithStart sets the start location.
func WithStart(l Location) Option {
	return func(o *Options) { o.Start = l }
}

// WithGoal sets the goal location.
func WithGoal(l Location) Option {
	return func(o *Options) {
		o.Goal = l
		o.goalSet = true
	}
}

// WithRand injects the random source used for obstacle placement.
func WithRand(r *rand.Rand) Option {
	return func(o *Options) {
		if r != nil {
			o.Rand = r
		}
	}
}

// WithSeed is shorthand for WithRand(rand.New(rand.NewSource(seed))).
func WithSeed(seed int64) Option {
	return WithRand(rand.New(rand.NewSource(seed)))
}

// Maze is a fixed-size grid of cells with one start and one goal.
// Search treats it as read-only: Successors and GoalTest never mutate it,
// so the same Maze may back any number of sequential or concurrent searches.
// Mark and Clear do mutate it and must not race with a search.
type Maze struct {
	rows, columns int
	grid          [][]Cell
	start, goal   Location
}
