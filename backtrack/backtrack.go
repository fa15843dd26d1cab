// Package backtrack implements chronological backtracking over a
// csp.Problem: depth-first search assigning variables in index order,
// pruning with the incremental consistency rule, honoring cancellation
// via context.Context.
//
// Key properties:
//   - Solve(p, values, data, opts...): fills values with a satisfying
//     assignment and returns csp.Solved, or csp.Unsatisfiable /
//     csp.Cancelled
//   - Values are tried in ascending order; constraints are evaluated
//     exactly when their last-indexed variable gets assigned
//   - No domain state is kept, so backtracking needs no undo
//
// Complexity:
//
//   - Time:   worst case exponential in the number of variables
//     (O(d^n) for uniform domain size d), no memoization.
//   - Memory: O(n) recursion depth; no allocations during search.
//
// Errors:
//
//   - csp.ErrNilProblem        if p is nil.
//   - csp.ErrAssignmentSize    if len(values) != p.NumVariables().
//   - csp.ErrConstraintUnset   if a constraint slot was never set.
//   - context error            alongside csp.Cancelled when the context ends.
package backtrack

import (
	"github.com/katalvlaran/lvlcsp/csp"
)

// searcher encapsulates state during the index-ordered search.
type searcher struct {
	problem *csp.Problem   // immutable problem description
	values  csp.Assignment // caller-owned assignment buffer
	data    any            // opaque payload forwarded to every checker
	opts    Options        // search options
}

// Solve runs chronological backtracking from variable 0. On csp.Solved
// the buffer holds a complete satisfying assignment; on any other
// result its contents are unspecified and must not be read as a partial
// solution.
func Solve(p *csp.Problem, values csp.Assignment, data any, opts ...Option) (csp.Result, error) {
	// 1. Validate input problem and buffer
	if p == nil {
		return csp.Unsatisfiable, csp.ErrNilProblem
	}
	if len(values) != p.NumVariables() {
		return csp.Unsatisfiable, csp.ErrAssignmentSize
	}
	if err := p.Validate(); err != nil {
		return csp.Unsatisfiable, err
	}

	// 2. Apply options
	sopts := DefaultOptions()
	for _, fn := range opts {
		fn(&sopts)
	}

	// 3. Recurse from the first variable
	s := &searcher{problem: p, values: values, data: data, opts: sopts}

	return s.assign(0)
}

// assign tries every value of variable idx and recurses on idx+1.
// It honors context cancellation at every entry.
func (s *searcher) assign(idx int) (csp.Result, error) {
	// 1. Cancellation check
	select {
	case <-s.opts.Ctx.Done():
		return csp.Cancelled, s.opts.Ctx.Err()
	default:
	}

	// 2. Base case: all variables assigned, every constraint already checked
	if idx == s.problem.NumVariables() {
		return csp.Solved, nil
	}

	// 3. Trial loop over the domain of idx, ascending
	size, _ := s.problem.Domain(idx)
	for val := 0; val < size; val++ {
		s.values[idx] = val

		// Only constraints fully below idx+1 are evaluated here; each
		// constraint is thus checked exactly when its last variable lands.
		if !s.problem.Consistent(s.values, s.data, idx+1) {
			continue
		}

		res, err := s.assign(idx + 1)
		if res == csp.Solved || res == csp.Cancelled {
			// Success keeps values[idx] as part of the solution;
			// cancellation propagates immediately.
			return res, err
		}
	}

	// 4. Exhaustion: signal the caller to try its next value
	return csp.Unsatisfiable, nil
}
