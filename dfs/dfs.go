package dfs

import (
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/mazesearch/frontier"
	"github.com/katalvlaran/mazesearch/searchtree"
)

// walker encapsulates the mutable state of one DFS invocation.
type walker[S comparable] struct {
	goalTest   func(S) bool
	successors func(S) []S
	opts       DFSOptions
	tree       *searchtree.Tree[S]
	stack      *frontier.Stack[searchtree.NodeID]
	explored   map[S]struct{}
	res        *searchtree.Result[S]
}

// DFS searches depth-first from initial until goalTest accepts a popped state
// or the frontier empties.
//
// A state is marked explored when it is discovered, so each state is pushed at
// most once and cycles cannot loop forever. The goal test runs when a node is
// popped, not when it is created.
//
// Exhausting the frontier is not an error: the Result has Found == false.
// Errors: ErrNilGoalTest, ErrNilSuccessors, ErrOptionViolation,
// ErrExpansionLimit (with the partial Result), or the context error.
func DFS[S comparable](initial S, goalTest func(S) bool, successors func(S) []S, opts ...Option) (*searchtree.Result[S], error) {
	if goalTest == nil {
		return nil, ErrNilGoalTest
	}
	if successors == nil {
		return nil, ErrNilSuccessors
	}
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
		stack:      frontier.NewStack[searchtree.NodeID](),
		explored:   map[S]struct{}{initial: {}},
		res:        &searchtree.Result[S]{Tree: tree, Goal: searchtree.NoParent},
	}
	w.stack.Push(tree.AddRoot(initial, 0))

	err := w.loop()
	o.Logger.WithFields(logrus.Fields{
		"algorithm": "dfs",
		"expanded":  w.res.Expanded,
		"nodes":     tree.Len(),
		"found":     w.res.Found,
	}).Debug("search finished")

	return w.res, err
}

// loop pops nodes until success, exhaustion, cancellation or the limit.
func (w *walker[S]) loop() error {
	for !w.stack.Empty() {
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}
		if w.opts.MaxExpansions > 0 && w.res.Expanded >= w.opts.MaxExpansions {
			return ErrExpansionLimit
		}

		id, err := w.stack.Pop()
		if err != nil {
			return err
		}
		w.res.Expanded++
		node, err := w.tree.At(id)
		if err != nil {
			return err
		}
		if w.goalTest(node.State) {
			w.res.Goal = id
			w.res.Found = true
			return nil
		}
		w.pushChildren(id, node)
	}

	return nil
}

// pushChildren marks each undiscovered successor explored and pushes it,
// in successor-generation order.
func (w *walker[S]) pushChildren(parent searchtree.NodeID, node searchtree.Node[S]) {
	for _, child := range w.successors(node.State) {
		if _, seen := w.explored[child]; seen {
			continue
		}
		w.explored[child] = struct{}{}
		w.stack.Push(w.tree.Add(child, parent, node.Cost+1, 0))
	}
}
