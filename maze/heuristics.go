package maze

import "math"

// EuclideanDistance returns a heuristic measuring the straight-line distance
// from a location to goal. Admissible on 4-connected unit-cost grids.
func EuclideanDistance(goal Location) func(Location) float64 {
	return func(l Location) float64 {
		dr := float64(l.Row - goal.Row)
		dc := float64(l.Column - goal.Column)
		return math.Sqrt(dr*dr + dc*dc)
	}
}

// ManhattanDistance returns a heuristic counting the orthogonal steps from a
// location to goal. It equals the true cost on an obstacle-free grid and is
// the tightest admissible estimate for 4-connected movement.
func ManhattanDistance(goal Location) func(Location) float64 {
	return func(l Location) float64 {
		dr := math.Abs(float64(l.Row - goal.Row))
		dc := math.Abs(float64(l.Column - goal.Column))
		return dr + dc
	}
}
