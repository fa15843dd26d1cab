// Package backtrack defines options for the chronological backtracking
// solver: context-based cancellation via functional options.
package backtrack

import "context"

// Option configures optional behavior of Solve.
// Use with Solve(p, values, data, opts...).
type Option func(*Options)

// Options holds configurable parameters for the backtracking search.
type Options struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	// Cancelling the context aborts the search at the next recursive call.
	Ctx context.Context
}

// DefaultOptions returns Options with a background context.
func DefaultOptions() Options {
	return Options{
		Ctx: context.Background(),
	}
}

// WithContext returns an Option that sets the Context for the search.
// Passing a nil context has no effect (Background is retained).
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}
