// Package astar implements A* search over an implicit graph.
//
// The frontier is a min-heap keyed by Cost + Heuristic. The explored record
// is a map from state to the best cost found so far, seeded with the initial
// state at cost 0. A successor is pushed when it is unseen or reached more
// cheaply than before; older, dominated entries stay in the heap
// ("lazy decrease-key") and expand into nothing, because none of their
// children can beat the recorded costs.
//
// Complexity:
//
//   - Time:  O((V + E) log V) for a consistent heuristic.
//   - Space: O(V + E) for the cost map and heap entries.
package astar

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/mazesearch/frontier"
	"github.com/katalvlaran/mazesearch/searchtree"
)

// unitCost is the edge weight used by AStar: every step costs 1.
func unitCost[S comparable](_, _ S) float64 { return 1 }

// AStar runs A* with unit edge weights, the setting of a grid maze.
// heuristic must not overestimate the number of remaining steps for the
// result to be a shortest path.
func AStar[S comparable](
	initial S,
	goalTest func(S) bool,
	successors func(S) []S,
	heuristic func(S) float64,
	opts ...Option,
) (*searchtree.Result[S], error) {
	return Weighted(initial, goalTest, successors, heuristic, unitCost[S], opts...)
}

// Weighted runs A* with a caller supplied edge weight cost(from, to).
//
// Returns:
//
//   - a Result with Found == true and the goal node, or Found == false when
//     the frontier is exhausted (not an error);
//   - ErrNilGoalTest, ErrNilSuccessors, ErrNilHeuristic, ErrNilCost for
//     missing callbacks, ErrOptionViolation for bad options;
//   - ErrNegativeCost if cost returns a negative weight;
//   - ErrExpansionLimit (with the partial Result) or the context error.
func Weighted[S comparable](
	initial S,
	goalTest func(S) bool,
	successors func(S) []S,
	heuristic func(S) float64,
	cost func(from, to S) float64,
	opts ...Option,
) (*searchtree.Result[S], error) {
	// 1) Validate callbacks
	switch {
	case goalTest == nil:
		return nil, ErrNilGoalTest
	case successors == nil:
		return nil, ErrNilSuccessors
	case heuristic == nil:
		return nil, ErrNilHeuristic
	case cost == nil:
		return nil, ErrNilCost
	}

	// 2) Build and validate Options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}

	// 3) Prepare runner state and seed the root
	tree := searchtree.NewTree[S](64)
	r := &runner[S]{
		goalTest:   goalTest,
		successors: successors,
		heuristic:  heuristic,
		cost:       cost,
		options:    cfg,
		tree:       tree,
		best:       map[S]float64{initial: 0},
		res:        &searchtree.Result[S]{Tree: tree, Goal: searchtree.NoParent},
	}
	r.pq = frontier.NewPriorityQueue[searchtree.NodeID](r.less)
	r.pq.Push(tree.AddRoot(initial, heuristic(initial)))

	// 4) Main loop
	err := r.process()
	cfg.Logger.WithFields(logrus.Fields{
		"algorithm": "astar",
		"expanded":  r.res.Expanded,
		"nodes":     tree.Len(),
		"found":     r.res.Found,
	}).Debug("search finished")

	return r.res, err
}

// runner holds the mutable state for a single A* execution.
type runner[S comparable] struct {
	goalTest   func(S) bool
	successors func(S) []S
	heuristic  func(S) float64
	cost       func(from, to S) float64
	options    Options
	tree       *searchtree.Tree[S]                       // node arena
	pq         *frontier.PriorityQueue[searchtree.NodeID] // ordered by Priority()
	best       map[S]float64                             // best known cost per state
	res        *searchtree.Result[S]
}

// less orders heap entries by Cost + Heuristic of the nodes they address.
func (r *runner[S]) less(a, b searchtree.NodeID) bool {
	na, _ := r.tree.At(a)
	nb, _ := r.tree.At(b)

	return na.Priority() < nb.Priority()
}

// process pops the lowest-priority node until a goal is popped, the heap
// empties, the context is cancelled or the expansion cap is reached.
func (r *runner[S]) process() error {
	for !r.pq.Empty() {
		select {
		case <-r.options.Ctx.Done():
			return r.options.Ctx.Err()
		default:
		}
		if r.options.MaxExpansions > 0 && r.res.Expanded >= r.options.MaxExpansions {
			return ErrExpansionLimit
		}

		id, err := r.pq.Pop()
		if err != nil {
			return err
		}
		r.res.Expanded++
		node, err := r.tree.At(id)
		if err != nil {
			return err
		}
		if r.goalTest(node.State) {
			r.res.Goal = id
			r.res.Found = true
			return nil
		}
		if err := r.relax(id, node); err != nil {
			return err
		}
	}

	return nil
}

// relax pushes every successor of node that is unseen or reached more
// cheaply than its recorded cost.
func (r *runner[S]) relax(id searchtree.NodeID, node searchtree.Node[S]) error {
	for _, child := range r.successors(node.State) {
		w := r.cost(node.State, child)
		if w < 0 {
			return fmt.Errorf("%w: %v→%v weight=%g", ErrNegativeCost, node.State, child, w)
		}
		newCost := node.Cost + w
		if prev, seen := r.best[child]; seen && prev <= newCost {
			continue
		}
		r.best[child] = newCost
		r.pq.Push(r.tree.Add(child, id, newCost, r.heuristic(child)))
	}

	return nil
}
