// Package astar defines the configuration options and sentinel errors
// for A* search.
//
// A* orders its frontier by Cost + Heuristic, where Cost is the accumulated
// edge weight from the initial state and Heuristic estimates the remaining
// cost to a goal. With an admissible heuristic (never overestimating) the
// first goal popped is reached by a minimum-cost path. Admissibility is a
// caller contract; it is not checked at runtime.
//
// Options:
//
//	– Ctx:           cancellation, checked once per popped node.
//	– Logger:        logrus sink for Debug records.
//	– MaxExpansions: optional cap on popped nodes (0 = no cap).
package astar

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
)

// Sentinel errors returned by the A* implementation.
var (
	// ErrNilGoalTest indicates that no goal predicate was supplied.
	ErrNilGoalTest = errors.New("astar: goal test is nil")

	// ErrNilSuccessors indicates that no successor function was supplied.
	ErrNilSuccessors = errors.New("astar: successor function is nil")

	// ErrNilHeuristic indicates that no heuristic was supplied.
	ErrNilHeuristic = errors.New("astar: heuristic is nil")

	// ErrNilCost indicates that Weighted was called without a cost function.
	ErrNilCost = errors.New("astar: cost function is nil")

	// ErrNegativeCost indicates that the cost function returned a negative
	// edge weight, which breaks the optimality argument.
	ErrNegativeCost = errors.New("astar: negative edge cost encountered")

	// ErrOptionViolation indicates an invalid Option value.
	ErrOptionViolation = errors.New("astar: invalid option supplied")

	// ErrExpansionLimit indicates that MaxExpansions nodes were popped
	// without reaching a goal. The partial Result is returned with it.
	ErrExpansionLimit = errors.New("astar: expansion limit reached")
)

// Options configures the behavior of the A* algorithm.
type Options struct {
	Ctx           context.Context    // cancellation
	Logger        logrus.FieldLogger // Debug records
	MaxExpansions int                // 0 disables the cap

	err error
}

// Option represents a functional option for configuring A*.
type Option func(*Options)

// DefaultOptions returns an Options struct initialized with:
//   - Ctx:           context.Background()
//   - Logger:        logrus.StandardLogger()
//   - MaxExpansions: 0 (no cap)
func DefaultOptions() Options {
	return Options{
		Ctx:           context.Background(),
		Logger:        logrus.StandardLogger(),
		MaxExpansions: 0,
	}
}

// WithContext sets the context checked between expansions.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithLogger sets the logger that receives Debug records.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithMaxExpansions caps the number of popped nodes. Negative values are
// recorded and surface as ErrOptionViolation.
func WithMaxExpansions(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxExpansions cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxExpansions = n
	}
}
