// Package maze models a rectangular grid maze as an implicit graph:
// Locations are states, Successors yields the open orthogonal neighbours,
// and GoalTest recognises the goal.
package maze

import (
	"fmt"
	"strings"
)

// neighborOffsets lists the axis-aligned moves in the order Successors
// emits them: down, up, right, left. This order decides which of several
// equally short paths DFS and BFS report.
var neighborOffsets = [4]Location{
	{Row: 1, Column: 0},
	{Row: -1, Column: 0},
	{Row: 0, Column: 1},
	{Row: 0, Column: -1},
}

// New builds a random maze. Each cell is blocked independently with
// probability Sparseness; Start and Goal are stamped afterwards, so they are
// never blocked.
// Returns ErrBadDimensions, ErrBadSparseness or ErrOutOfBounds for invalid
// options.
// Complexity: O(Rows×Columns).
func New(opts ...Option) (*Maze, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.Rows < 1 || o.Columns < 1 {
		return nil, fmt.Errorf("%w: got %d×%d", ErrBadDimensions, o.Rows, o.Columns)
	}
	if o.Sparseness < 0 || o.Sparseness > 1 {
		return nil, fmt.Errorf("%w: got %g", ErrBadSparseness, o.Sparseness)
	}
	if !o.goalSet {
		o.Goal = Location{Row: o.Rows - 1, Column: o.Columns - 1}
	}

	m := &Maze{rows: o.Rows, columns: o.Columns, start: o.Start, goal: o.Goal}
	if !m.InBounds(o.Start) {
		return nil, fmt.Errorf("%w: start %v in %d×%d grid", ErrOutOfBounds, o.Start, o.Rows, o.Columns)
	}
	if !m.InBounds(o.Goal) {
		return nil, fmt.Errorf("%w: goal %v in %d×%d grid", ErrOutOfBounds, o.Goal, o.Rows, o.Columns)
	}

	m.grid = make([][]Cell, o.Rows)
	for r := range m.grid {
		m.grid[r] = make([]Cell, o.Columns)
	}
	m.randomlyFill(o)
	m.stampEnds()

	return m, nil
}

// randomlyFill blocks each cell with probability o.Sparseness.
func (m *Maze) randomlyFill(o Options) {
	for r := 0; r < m.rows; r++ {
		for c := 0; c < m.columns; c++ {
			if o.Rand.Float64() < o.Sparseness {
				m.grid[r][c] = Blocked
			}
		}
	}
}

// stampEnds writes Start and Goal over whatever occupies their cells.
func (m *Maze) stampEnds() {
	m.grid[m.start.Row][m.start.Column] = Start
	m.grid[m.goal.Row][m.goal.Column] = Goal
}

// FromRows builds a maze from text rows, one character per cell:
//
//	'.' or ' '  Empty
//	'X'         Blocked
//	'S'         Start (exactly once)
//	'G'         Goal  (exactly once)
//
// It is the deterministic counterpart of New, used for fixtures and examples.
func FromRows(rows []string) (*Maze, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(rows), len(rows[0])
	for _, row := range rows {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}

	m := &Maze{rows: h, columns: w, grid: make([][]Cell, h)}
	var starts, goals int
	for r, row := range rows {
		m.grid[r] = make([]Cell, w)
		for c, ch := range []byte(row) {
			switch ch {
			case '.', ' ':
				m.grid[r][c] = Empty
			case 'X', 'x':
				m.grid[r][c] = Blocked
			case 'S':
				m.grid[r][c] = Start
				m.start = Location{Row: r, Column: c}
				starts++
			case 'G':
				m.grid[r][c] = Goal
				m.goal = Location{Row: r, Column: c}
				goals++
			default:
				return nil, fmt.Errorf("%w: %q at (%d, %d)", ErrUnknownCell, ch, r, c)
			}
		}
	}
	switch {
	case starts == 0:
		return nil, ErrMissingStart
	case goals == 0:
		return nil, ErrMissingGoal
	case starts > 1 || goals > 1:
		return nil, ErrDuplicateMarker
	}

	return m, nil
}

// Rows returns the number of rows.
func (m *Maze) Rows() int { return m.rows }

// Columns returns the number of columns.
func (m *Maze) Columns() int { return m.columns }

// Start returns the start location.
func (m *Maze) Start() Location { return m.start }

// Goal returns the goal location.
func (m *Maze) Goal() Location { return m.goal }

// InBounds reports whether l lies within the grid boundaries.
// Complexity: O(1).
func (m *Maze) InBounds(l Location) bool {
	return l.Row >= 0 && l.Row < m.rows && l.Column >= 0 && l.Column < m.columns
}

// At returns the cell at l, or Blocked when l is out of bounds.
func (m *Maze) At(l Location) Cell {
	if !m.InBounds(l) {
		return Blocked
	}

	return m.grid[l.Row][l.Column]
}

// GoalTest reports whether l is the goal.
func (m *Maze) GoalTest(l Location) bool {
	return l == m.goal
}

// Successors returns the in-bounds, non-blocked neighbours of l in the
// fixed order down, up, right, left.
func (m *Maze) Successors(l Location) []Location {
	locations := make([]Location, 0, len(neighborOffsets))
	for _, d := range neighborOffsets {
		n := Location{Row: l.Row + d.Row, Column: l.Column + d.Column}
		if m.InBounds(n) && m.grid[n.Row][n.Column] != Blocked {
			locations = append(locations, n)
		}
	}

	return locations
}

// Mark overlays Path on every location of path, then restamps Start and
// Goal so both stay visible.
func (m *Maze) Mark(path []Location) {
	m.fill(path, Path)
}

// Clear resets every location of path to Empty, then restamps Start and Goal.
func (m *Maze) Clear(path []Location) {
	m.fill(path, Empty)
}

func (m *Maze) fill(path []Location, c Cell) {
	for _, l := range path {
		if m.InBounds(l) {
			m.grid[l.Row][l.Column] = c
		}
	}
	m.stampEnds()
}

// String renders one line per row with cells joined by a single space.
func (m *Maze) String() string {
	var sb strings.Builder
	cells := make([]string, m.columns)
	for _, row := range m.grid {
		for c, cell := range row {
			cells[c] = cell.String()
		}
		sb.WriteString(strings.Join(cells, " "))
		sb.WriteByte('\n')
	}

	return sb.String()
}
