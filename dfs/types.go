// Package dfs defines options and errors for depth-first search,
// including cancellation, an expansion limit and debug logging.
package dfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
)

var (
	// ErrNilGoalTest is returned when no goal predicate is supplied.
	ErrNilGoalTest = errors.New("dfs: goal test is nil")

	// ErrNilSuccessors is returned when no successor function is supplied.
	ErrNilSuccessors = errors.New("dfs: successor function is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("dfs: invalid option supplied")

	// ErrExpansionLimit is returned when MaxExpansions nodes were popped
	// without reaching a goal. The partial Result is returned alongside it.
	ErrExpansionLimit = errors.New("dfs: expansion limit reached")
)

// Option configures DFS via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation
// when DFS is invoked.
type Option func(*DFSOptions)

// DFSOptions holds the tunables for a DFS invocation.
type DFSOptions struct {
	// Ctx allows cancellation; checked once per popped node.
	Ctx context.Context

	// Logger receives Debug-level progress records.
	Logger logrus.FieldLogger

	// MaxExpansions, if > 0, caps the number of popped nodes.
	// Zero means no limit.
	MaxExpansions int

	err error
}

// DefaultOptions returns DFSOptions with:
//   - context.Background()
//   - the logrus standard logger (Debug records are dropped at its default level)
//   - no expansion limit
func DefaultOptions() DFSOptions {
	return DFSOptions{
		Ctx:           context.Background(),
		Logger:        logrus.StandardLogger(),
		MaxExpansions: 0,
	}
}

// WithContext sets a custom context for cancellation.
// A nil context leaves the default in place.
func WithContext(ctx context.Context) Option {
	return func(o *DFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithLogger routes debug records to l.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *DFSOptions) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithMaxExpansions stops the search after n popped nodes.
//
//	n > 0:  limit to n expansions
//	n == 0: no limit
//	n < 0:  invalid → ErrOptionViolation
func WithMaxExpansions(n int) Option {
	return func(o *DFSOptions) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxExpansions cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxExpansions = n
	}
}
