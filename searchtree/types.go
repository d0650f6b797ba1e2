package searchtree

import (
	"errors"
	"fmt"
)

var (
	// ErrNoSolution indicates the search exhausted its frontier without
	// reaching a goal state. It is an expected outcome, not a failure.
	ErrNoSolution = errors.New("searchtree: no solution found")

	// ErrInvalidNode indicates a NodeID outside the tree.
	ErrInvalidNode = errors.New("searchtree: invalid node handle")
)

// NodeID is a stable handle to a node stored in a Tree.
type NodeID int

// NoParent marks the root of a search tree.
const NoParent NodeID = -1

// Node is one entry of the implicit search tree.
type Node[S comparable] struct {
	State     S
	Parent    NodeID  // NoParent for the root
	Cost      float64 // accumulated path cost from the root
	Heuristic float64 // estimated remaining cost; 0 for uninformed search
}

// Priority is the A* order key: Cost + Heuristic.
func (n Node[S]) Priority() float64 { return n.Cost + n.Heuristic }

// IsRoot reports whether n has no parent.
func (n Node[S]) IsRoot() bool { return n.Parent == NoParent }

// Tree is an append-only arena of nodes.
type Tree[S comparable] struct {
	nodes []Node[S]
}

// NewTree returns an empty Tree with room for capacity nodes.
func NewTree[S comparable](capacity int) *Tree[S] {
	if capacity < 0 {
		capacity = 0
	}

	return &Tree[S]{nodes: make([]Node[S], 0, capacity)}
}

// AddRoot stores a parentless node and returns its handle.
func (t *Tree[S]) AddRoot(state S, heuristic float64) NodeID {
	t.nodes = append(t.nodes, Node[S]{State: state, Parent: NoParent, Heuristic: heuristic})

	return NodeID(len(t.nodes) - 1)
}

// Add stores a child of parent and returns its handle.
// Add panics if parent does not address an existing node: a dangling
// parent would break the termination guarantee of NodeToPath.
func (t *Tree[S]) Add(state S, parent NodeID, cost, heuristic float64) NodeID {
	if !t.Has(parent) {
		panic(fmt.Sprintf("searchtree: Add with parent %d outside tree of %d nodes", parent, len(t.nodes)))
	}
	t.nodes = append(t.nodes, Node[S]{State: state, Parent: parent, Cost: cost, Heuristic: heuristic})

	return NodeID(len(t.nodes) - 1)
}

// Has reports whether id addresses a node of t.
func (t *Tree[S]) Has(id NodeID) bool {
	return id >= 0 && int(id) < len(t.nodes)
}

// At returns the node addressed by id.
func (t *Tree[S]) At(id NodeID) (Node[S], error) {
	if !t.Has(id) {
		return Node[S]{}, fmt.Errorf("%w: %d", ErrInvalidNode, id)
	}

	return t.nodes[id], nil
}

// Len returns the number of nodes created so far.
func (t *Tree[S]) Len() int { return len(t.nodes) }

// Result captures the outcome of a single search invocation.
type Result[S comparable] struct {
	// Tree holds every node created during the search.
	Tree *Tree[S]

	// Goal is the handle of the node that passed the goal test.
	// Meaningful only when Found is true.
	Goal NodeID

	// Found is false when the frontier emptied without reaching a goal.
	Found bool

	// Expanded counts nodes popped from the frontier.
	Expanded int
}

// GoalNode returns the terminal node, or ErrNoSolution.
func (r *Result[S]) GoalNode() (Node[S], error) {
	if r == nil || !r.Found {
		return Node[S]{}, ErrNoSolution
	}

	return r.Tree.At(r.Goal)
}

// Path returns the states from the initial state to the goal, inclusive.
func (r *Result[S]) Path() ([]S, error) {
	if r == nil || !r.Found {
		return nil, ErrNoSolution
	}

	return NodeToPath(r.Tree, r.Goal)
}

// Cost returns the accumulated cost of the goal node, or ErrNoSolution.
func (r *Result[S]) Cost() (float64, error) {
	n, err := r.GoalNode()
	if err != nil {
		return 0, err
	}

	return n.Cost, nil
}
