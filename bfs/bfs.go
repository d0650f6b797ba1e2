// Package bfs provides breadth-first search over an implicit graph given by
// an initial state, a goal predicate and a successor function.
//
// BFS explores states in increasing distance (edge count) from the initial
// state, so the first goal it dequeues is reached by a fewest-edges path.
package bfs

import (
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/mazesearch/frontier"
	"github.com/katalvlaran/mazesearch/searchtree"
)

// walker encapsulates mutable BFS state.
type walker[S comparable] struct {
	goalTest   func(S) bool
	successors func(S) []S
	opts       BFSOptions
	tree       *searchtree.Tree[S]
	queue      *frontier.Queue[searchtree.NodeID]
	explored   map[S]bool
	res        *searchtree.Result[S]
}

// BFS runs breadth-first search from initial, applying any number of
// functional Options.
// Returns ErrNilGoalTest or ErrNilSuccessors for invalid input,
// ErrOptionViolation for bad options, ErrExpansionLimit with the partial
// Result when the cap is hit, or the context error on cancellation.
// When no goal is reachable the Result has Found == false and err is nil.
func BFS[S comparable](initial S, goalTest func(S) bool, successors func(S) []S, opts ...Option) (*searchtree.Result[S], error) {
	if goalTest == nil {
		return nil, ErrNilGoalTest
	}
	if successors == nil {
		return nil, ErrNilSuccessors
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	tree := searchtree.NewTree[S](64)
	w := &walker[S]{
		goalTest:   goalTest,
		successors: successors,
		opts:       o,
		tree:       tree,
		queue:      frontier.NewQueue[searchtree.NodeID](),
		explored:   make(map[S]bool),
		res:        &searchtree.Result[S]{Tree: tree, Goal: searchtree.NoParent},
	}

	// Seed queue with the root (no parent)
	w.explored[initial] = true
	w.queue.Push(tree.AddRoot(initial, 0))

	err := w.loop()
	o.Logger.WithFields(logrus.Fields{
		"algorithm": "bfs",
		"expanded":  w.res.Expanded,
		"nodes":     tree.Len(),
		"found":     w.res.Found,
	}).Debug("search finished")

	return w.res, err
}

// loop processes the queue until success, exhaustion, error, or cancellation.
func (w *walker[S]) loop() error {
	for !w.queue.Empty() {
		// cancellation check (once per loop)
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}
		if w.opts.MaxExpansions > 0 && w.res.Expanded >= w.opts.MaxExpansions {
			return ErrExpansionLimit
		}

		id, node, err := w.dequeue()
		if err != nil {
			return err
		}
		if w.goalTest(node.State) {
			w.res.Goal = id
			w.res.Found = true
			return nil
		}
		w.enqueueNeighbors(id, node)
	}

	return nil
}

// dequeue pops the head of the queue and resolves its node.
func (w *walker[S]) dequeue() (searchtree.NodeID, searchtree.Node[S], error) {
	id, err := w.queue.Pop()
	if err != nil {
		return searchtree.NoParent, searchtree.Node[S]{}, err
	}
	w.res.Expanded++
	node, err := w.tree.At(id)

	return id, node, err
}

// enqueueNeighbors marks each first-seen successor explored and enqueues it.
func (w *walker[S]) enqueueNeighbors(parent searchtree.NodeID, node searchtree.Node[S]) {
	for _, nbr := range w.successors(node.State) {
		if w.explored[nbr] {
			continue
		}
		w.explored[nbr] = true
		w.queue.Push(w.tree.Add(nbr, parent, node.Cost+1, 0))
	}
}
