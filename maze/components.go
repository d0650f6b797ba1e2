package maze

// Regions finds all contiguous regions of open (non-Blocked) cells under the
// same four-neighbour rule Successors uses.
// Returns a slice of regions; each region lists its locations in BFS order
// from the region's first cell in row-major order.
//
// Time:   O(Rows·Columns·4).
// Memory: O(Rows·Columns) for visited flags and output.
func (m *Maze) Regions() [][]Location {
	seen := make([]bool, m.rows*m.columns)
	var regions [][]Location

	for r := 0; r < m.rows; r++ {
		for c := 0; c < m.columns; c++ {
			l := Location{Row: r, Column: c}
			if m.grid[r][c] == Blocked || seen[m.index(l)] {
				continue
			}
			regions = append(regions, m.flood(l, seen))
		}
	}

	return regions
}

// Connected reports whether b can be reached from a through open cells.
// Blocked or out-of-bounds endpoints are never connected.
func (m *Maze) Connected(a, b Location) bool {
	if m.At(a) == Blocked || m.At(b) == Blocked {
		return false
	}
	seen := make([]bool, m.rows*m.columns)
	for _, l := range m.flood(a, seen) {
		if l == b {
			return true
		}
	}

	return false
}

// flood collects the open region containing from, marking seen.
func (m *Maze) flood(from Location, seen []bool) []Location {
	seen[m.index(from)] = true
	queue := []Location{from}
	for qi := 0; qi < len(queue); qi++ {
		for _, n := range m.Successors(queue[qi]) {
			if i := m.index(n); !seen[i] {
				seen[i] = true
				queue = append(queue, n)
			}
		}
	}

	return queue
}

// index maps l to a row-major index: Row*Columns + Column.
func (m *Maze) index(l Location) int {
	return l.Row*m.columns + l.Column
}
