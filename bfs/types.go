// Package bfs provides tunable options and error definitions
// for breadth-first search over an implicit graph.
package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
)

// Sentinel errors for BFS execution.
var (
	// ErrNilGoalTest is returned when no goal predicate is supplied.
	ErrNilGoalTest = errors.New("bfs: goal test is nil")

	// ErrNilSuccessors is returned when no successor function is supplied.
	ErrNilSuccessors = errors.New("bfs: successor function is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrExpansionLimit is returned, together with the partial Result,
	// when MaxExpansions nodes were dequeued without reaching a goal.
	ErrExpansionLimit = errors.New("bfs: expansion limit reached")
)

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. negative limit), it will be recorded
// internally and surfaced as ErrOptionViolation when BFS is invoked.
type Option func(*BFSOptions)

// BFSOptions holds parameters to customize BFS execution.
type BFSOptions struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// Logger receives Debug-level progress records.
	Logger logrus.FieldLogger

	// MaxExpansions, if > 0, stops after this many dequeued nodes.
	// A value of 0 explicitly disables the limit.
	MaxExpansions int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns a BFSOptions with sane defaults:
//   - Context.Background()
//   - logrus standard logger
//   - no expansion limit (MaxExpansions == 0)
func DefaultOptions() BFSOptions {
	return BFSOptions{
		Ctx:           context.Background(),
		Logger:        logrus.StandardLogger(),
		MaxExpansions: 0,
		err:           nil,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *BFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithLogger sets the logger that receives debug records.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *BFSOptions) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithMaxExpansions stops the search after n dequeued nodes.
//
//	n > 0:  limit to n expansions
//	n == 0: explicit no limit
//	n < 0:  invalid option → ErrOptionViolation
func WithMaxExpansions(n int) Option {
	return func(o *BFSOptions) {
		switch {
		case n < 0:
			o.err = fmt.Errorf("%w: MaxExpansions cannot be negative (%d)", ErrOptionViolation, n)
		default:
			o.MaxExpansions = n
		}
	}
}
